package books

import (
	"errors"
	"strings"
	"time"

	"github.com/tdat2209/Read-Track-Backend/internal/store"
	"github.com/tdat2209/Read-Track-Backend/internal/validation"
	"github.com/tdat2209/Read-Track-Backend/pkg/models"
)

// Service orchestrates validation and repository operations for books.
// It knows nothing about HTTP; failures come back as typed errors.
type Service struct {
	store *store.MemoryStore
}

func NewService(st *store.MemoryStore) *Service {
	return &Service{store: st}
}

// List returns every book in creation order.
func (s *Service) List() []models.BookResponse {
	stored := s.store.ListBooks()
	responses := make([]models.BookResponse, len(stored))
	for i := range stored {
		responses[i] = stored[i].ToResponse()
	}
	return responses
}

// Get returns one book by id.
func (s *Service) Get(id int64) (models.BookResponse, error) {
	book, ok := s.store.GetBook(id)
	if !ok {
		return models.BookResponse{}, store.ErrBookNotFound
	}
	return book.ToResponse(), nil
}

// Create validates the raw payload, stamps identical creation and update
// timestamps, and inserts. The title is stored trimmed; an absent author
// stays null.
func (s *Service) Create(payload map[string]interface{}) (models.BookResponse, error) {
	if result := validation.ValidateBookPayload(payload); !result.Valid {
		return models.BookResponse{}, &validation.Error{Message: result.Message}
	}

	now := time.Now().UTC()
	book := models.Book{
		Title:      strings.TrimSpace(payload["title"].(string)),
		Author:     authorFrom(payload["author"]),
		TotalPages: intFrom(payload["totalPages"]),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	stored := s.store.InsertBook(book)
	return stored.ToResponse(), nil
}

// Update applies partial-merge semantics keyed on field presence: a key
// present in the payload wins, including an explicit null author, which
// clears the stored author. Absent keys keep the stored value. The merged
// candidate goes through full book validation again, so unexpected keys and
// an explicitly empty title are rejected the same way creation rejects them.
func (s *Service) Update(id int64, payload map[string]interface{}) (models.BookResponse, error) {
	current, ok := s.store.GetBook(id)
	if !ok {
		return models.BookResponse{}, store.ErrBookNotFound
	}

	if payload == nil {
		return models.BookResponse{}, &validation.Error{Message: "Invalid payload"}
	}

	candidate := make(map[string]interface{}, len(payload)+3)
	for key, value := range payload {
		candidate[key] = value
	}
	if _, provided := candidate["title"]; !provided {
		candidate["title"] = current.Title
	}
	if _, provided := candidate["totalPages"]; !provided {
		candidate["totalPages"] = current.TotalPages
	}
	if _, provided := candidate["author"]; !provided {
		if current.Author != nil {
			candidate["author"] = *current.Author
		} else {
			candidate["author"] = nil
		}
	}

	if result := validation.ValidateBookPayload(candidate); !result.Valid {
		return models.BookResponse{}, &validation.Error{Message: result.Message}
	}

	updated := current
	updated.Title = strings.TrimSpace(candidate["title"].(string))
	updated.TotalPages = intFrom(candidate["totalPages"])
	if value := candidate["author"]; value == nil {
		updated.Author = nil
	} else {
		author := strings.TrimSpace(value.(string))
		updated.Author = &author
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.store.ReplaceBook(updated); err != nil {
		if errors.Is(err, store.ErrPagesCeiling) {
			return models.BookResponse{}, &validation.Error{Message: "totalPages cannot be less than the pages already logged"}
		}
		return models.BookResponse{}, err
	}
	return updated.ToResponse(), nil
}

// Delete removes the book and cascades to its logs. Returns how many logs
// were removed with it.
func (s *Service) Delete(id int64) (int, error) {
	removed, ok := s.store.DeleteBook(id)
	if !ok {
		return 0, store.ErrBookNotFound
	}
	return removed, nil
}

func authorFrom(value interface{}) *string {
	if value == nil {
		return nil
	}
	author, ok := value.(string)
	if !ok {
		return nil
	}
	return &author
}

// intFrom narrows the numeric shapes validation accepts. Only called on
// values that already passed the positive-integer check.
func intFrom(value interface{}) int {
	switch n := value.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}
