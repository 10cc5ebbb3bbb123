package books

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tdat2209/Read-Track-Backend/internal/notify"
	"github.com/tdat2209/Read-Track-Backend/internal/store"
	"github.com/tdat2209/Read-Track-Backend/internal/validation"
	"github.com/tdat2209/Read-Track-Backend/pkg/metrics"
)

// Handler translates HTTP requests into book service calls and service
// errors back into status codes. The service layer never sees gin.
type Handler struct {
	service *Service
	hub     *notify.Hub
}

// NewHandler creates a book handler. hub may be nil when no event feed is
// wired, as in most tests.
func NewHandler(service *Service, hub *notify.Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// ListBooks handles GET /books.
func (h *Handler) ListBooks(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}

// GetBook handles GET /books/:id.
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	book, err := h.service.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook handles POST /books.
func (h *Handler) CreateBook(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	book, err := h.service.Create(payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	metrics.IncrementBooksCreated()
	h.publish(notify.EventBookCreated, book)
	c.JSON(http.StatusCreated, book)
}

// UpdateBook handles PATCH /books/:id with partial-merge semantics.
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	book, err := h.service.Update(id, payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.publish(notify.EventBookUpdated, book)
	c.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /books/:id, cascading to the book's logs.
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	removedLogs, err := h.service.Delete(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	metrics.IncrementBooksDeleted()
	h.publish(notify.EventBookDeleted, gin.H{"id": id, "removedLogs": removedLogs})
	c.Status(http.StatusNoContent)
}

// bookID parses the :id path segment. A non-numeric id can never address a
// book, so it reports not found rather than bad request.
func (h *Handler) bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, store.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (h *Handler) publish(eventType notify.EventType, payload interface{}) {
	if h.hub != nil {
		h.hub.Publish(eventType, payload)
	}
}
