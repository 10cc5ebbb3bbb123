package models

import "time"

// Book is a tracked reading target. Author is a pointer so an absent author
// serializes as an explicit null, matching the API contract.
type Book struct {
	ID         int64
	Title      string
	Author     *string
	TotalPages int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BookResponse is the public projection of a Book. Only these fields ever
// leave the service; internal-only fields added later stay internal.
type BookResponse struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Author     *string `json:"author"`
	TotalPages int     `json:"totalPages"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

func (b *Book) ToResponse() BookResponse {
	return BookResponse{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		TotalPages: b.TotalPages,
		CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
