package logs

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

type Handler struct {
	service *Service
	hub     *notify.Hub
}

// NewHandler creates a log handler. hub may be nil when no event feed is
// wired.
func NewHandler(service *Service, hub *notify.Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// ListLogs handles GET /books/:id/logs.
func (h *Handler) ListLogs(c *gin.Context) {
	bookID, ok := h.bookID(c)
	if !ok {
		return
	}

	entries, err := h.service.ListForBook(bookID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateLog handles POST /books/:id/logs.
func (h *Handler) CreateLog(c *gin.Context) {
	bookID, ok := h.bookID(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	entry, err := h.service.Create(bookID, payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	metrics.IncrementLogsCreated()
	if h.hub != nil {
		h.hub.Publish(notify.EventLogCreated, entry)
	}
	c.JSON(http.StatusCreated, entry)
}

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
	case errors.Is(err, store.ErrDuplicateLogDate):
		c.JSON(http.StatusConflict, gin.H{"error": "A reading log already exists for this date"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
