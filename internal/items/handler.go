package items

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tdat2209/Read-Track-Backend/pkg/models"
)

// Handler serves the generic items collection. Items carry no domain rules,
// so the handler owns its state directly instead of going through a service
// layer.
type Handler struct {
	mu     sync.Mutex
	items  []models.Item
	nextID int64
}

func NewHandler() *Handler {
	return &Handler{
		items:  make([]models.Item, 0),
		nextID: time.Now().UnixMilli(),
	}
}

// ListItems handles GET /items.
func (h *Handler) ListItems(c *gin.Context) {
	h.mu.Lock()
	out := make([]models.Item, len(h.items))
	copy(out, h.items)
	h.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

// GetItem handles GET /items/:id.
func (h *Handler) GetItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, item := range h.items {
		if item.ID == id {
			c.JSON(http.StatusOK, item)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// CreateItem handles POST /items. A missing name becomes the empty string;
// items deliberately have no validation rules.
func (h *Handler) CreateItem(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	name, _ := payload["name"].(string)

	h.mu.Lock()
	h.nextID++
	item := models.Item{ID: h.nextID, Name: name}
	h.items = append(h.items, item)
	h.mu.Unlock()

	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PATCH /items/:id; an absent name keeps the current one.
func (h *Handler) UpdateItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range h.items {
		if h.items[i].ID != id {
			continue
		}
		if name, provided := payload["name"].(string); provided {
			h.items[i].Name = name
		}
		c.JSON(http.StatusOK, h.items[i])
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// DeleteItem handles DELETE /items/:id. Deleting an absent item still
// returns 204: the end state is the same either way.
func (h *Handler) DeleteItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	h.mu.Lock()
	kept := h.items[:0]
	for _, item := range h.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	h.items = kept
	h.mu.Unlock()

	c.Status(http.StatusNoContent)
}

func itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return id, true
}
