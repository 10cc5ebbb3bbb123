package models

import "time"

// ReadingLog is a dated record of pages read for one Book. Date is kept in
// YYYY-MM-DD form; the fixed width makes lexicographic order chronological.
type ReadingLog struct {
	ID        int64
	BookID    int64
	Date      string
	PagesRead int
	CreatedAt time.Time
}

type ReadingLogResponse struct {
	ID        int64  `json:"id"`
	BookID    int64  `json:"bookId"`
	Date      string `json:"date"`
	PagesRead int    `json:"pagesRead"`
	CreatedAt string `json:"createdAt"`
}

func (l *ReadingLog) ToResponse() ReadingLogResponse {
	return ReadingLogResponse{
		ID:        l.ID,
		BookID:    l.BookID,
		Date:      l.Date,
		PagesRead: l.PagesRead,
		CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
	}
}
