package logs

import (
	"errors"
	"time"

	"github.com/tdat2209/Read-Track-Backend/internal/store"
	"github.com/tdat2209/Read-Track-Backend/internal/validation"
	"github.com/tdat2209/Read-Track-Backend/pkg/models"
)

// Service orchestrates reading-log creation and listing. Logs are
// create-only: they disappear only when their book is deleted.
type Service struct {
	store *store.MemoryStore
}

func NewService(st *store.MemoryStore) *Service {
	return &Service{store: st}
}

// ListForBook returns the book's logs sorted by date ascending, or
// ErrBookNotFound if the book does not exist.
func (s *Service) ListForBook(bookID int64) ([]models.ReadingLogResponse, error) {
	stored, err := s.store.LogsForBook(bookID)
	if err != nil {
		return nil, err
	}
	responses := make([]models.ReadingLogResponse, len(stored))
	for i := range stored {
		responses[i] = stored[i].ToResponse()
	}
	return responses, nil
}

// Create validates the payload and inserts the log. The repository enforces
// date uniqueness and the pages-read ceiling atomically against the live
// aggregate; a ceiling violation surfaces as a validation error, a duplicate
// date as a conflict.
func (s *Service) Create(bookID int64, payload map[string]interface{}) (models.ReadingLogResponse, error) {
	if _, ok := s.store.GetBook(bookID); !ok {
		return models.ReadingLogResponse{}, store.ErrBookNotFound
	}

	if result := validation.ValidateLogPayload(payload); !result.Valid {
		return models.ReadingLogResponse{}, &validation.Error{Message: result.Message}
	}

	log := models.ReadingLog{
		BookID:    bookID,
		Date:      payload["date"].(string),
		PagesRead: pagesFrom(payload["pagesRead"]),
		CreatedAt: time.Now().UTC(),
	}

	stored, err := s.store.InsertLog(log)
	if err != nil {
		if errors.Is(err, store.ErrPagesCeiling) {
			return models.ReadingLogResponse{}, &validation.Error{Message: "Total pages read cannot exceed totalPages"}
		}
		return models.ReadingLogResponse{}, err
	}
	return stored.ToResponse(), nil
}

// pagesFrom narrows a value that already passed the positive-integer check.
func pagesFrom(value interface{}) int {
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
