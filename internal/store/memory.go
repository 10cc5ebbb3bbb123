package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/tdat2209/Read-Track-Backend/pkg/models"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrDuplicateLogDate = errors.New("a reading log already exists for this date")
	ErrPagesCeiling     = errors.New("total pages read cannot exceed totalPages")
)

// MemoryStore is the single source of truth for books and reading logs while
// the process lives. One RWMutex guards both collections: the date-uniqueness
// and pages-ceiling rules are check-then-act, so checks and writes must not
// interleave across requests.
type MemoryStore struct {
	mu         sync.RWMutex
	books      map[int64]*models.Book
	logs       map[int64]*models.ReadingLog
	nextBookID int64
	nextLogID  int64
}

// NewMemoryStore creates an empty store. Id counters are seeded from the
// current wall clock in milliseconds and only ever incremented under the
// write lock, so ids stay unique even under bursts of creations.
func NewMemoryStore() *MemoryStore {
	seed := time.Now().UnixMilli()
	return &MemoryStore{
		books:      make(map[int64]*models.Book),
		logs:       make(map[int64]*models.ReadingLog),
		nextBookID: seed,
		nextLogID:  seed,
	}
}

// InsertBook assigns the book its id and stores it. The returned copy is the
// stored state.
func (s *MemoryStore) InsertBook(book models.Book) models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextBookID++
	book.ID = s.nextBookID
	stored := book
	s.books[stored.ID] = &stored
	return stored
}

// GetBook returns a copy of the book, so callers never hold a reference into
// the guarded state.
func (s *MemoryStore) GetBook(id int64) (models.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return models.Book{}, false
	}
	return *book, true
}

// ListBooks returns all books in creation order (ids are monotonic).
func (s *MemoryStore) ListBooks() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]models.Book, 0, len(s.books))
	for _, book := range s.books {
		books = append(books, *book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books
}

// ReplaceBook swaps the stored book with the same id for the given one. The
// pages ceiling is re-checked against the live log aggregate in the same
// critical section, so an update can never shrink totalPages below what has
// already been logged. Boundary equality is allowed.
func (s *MemoryStore) ReplaceBook(book models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[book.ID]; !ok {
		return ErrBookNotFound
	}

	total := 0
	for _, log := range s.logs {
		if log.BookID == book.ID {
			total += log.PagesRead
		}
	}
	if total > book.TotalPages {
		return ErrPagesCeiling
	}

	stored := book
	s.books[stored.ID] = &stored
	return nil
}

// DeleteBook removes the book and every log referencing it inside one
// critical section, so no request can observe logs pointing at a deleted
// book. Returns the number of cascaded logs and whether the book existed.
func (s *MemoryStore) DeleteBook(id int64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return 0, false
	}
	delete(s.books, id)

	removed := 0
	for logID, log := range s.logs {
		if log.BookID == id {
			delete(s.logs, logID)
			removed++
		}
	}
	return removed, true
}

// InsertLog enforces the cross-entity invariants and inserts under a single
// write lock: the referenced book must exist, no log may exist for the same
// (book, date) pair, and the book's cumulative pages read must not exceed
// its total page count. Boundary equality is allowed.
func (s *MemoryStore) InsertLog(log models.ReadingLog) (models.ReadingLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[log.BookID]
	if !ok {
		return models.ReadingLog{}, ErrBookNotFound
	}

	total := 0
	for _, existing := range s.logs {
		if existing.BookID != log.BookID {
			continue
		}
		if existing.Date == log.Date {
			return models.ReadingLog{}, ErrDuplicateLogDate
		}
		total += existing.PagesRead
	}

	if total+log.PagesRead > book.TotalPages {
		return models.ReadingLog{}, ErrPagesCeiling
	}

	s.nextLogID++
	log.ID = s.nextLogID
	stored := log
	s.logs[stored.ID] = &stored
	return stored, nil
}

// LogsForBook returns the book's logs sorted by date ascending. The fixed
// YYYY-MM-DD width makes string comparison chronological.
func (s *MemoryStore) LogsForBook(bookID int64) ([]models.ReadingLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.books[bookID]; !ok {
		return nil, ErrBookNotFound
	}

	logs := make([]models.ReadingLog, 0)
	for _, log := range s.logs {
		if log.BookID == bookID {
			logs = append(logs, *log)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date < logs[j].Date })
	return logs, nil
}

// SumPagesRead aggregates pagesRead over the book's logs.
func (s *MemoryStore) SumPagesRead(bookID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, log := range s.logs {
		if log.BookID == bookID {
			total += log.PagesRead
		}
	}
	return total
}

// CountBooks and CountLogs exist for readiness and metrics reporting.
func (s *MemoryStore) CountBooks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

func (s *MemoryStore) CountLogs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs)
}
