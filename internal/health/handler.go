package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tdat2209/Read-Track-Backend/internal/store"
)

type Handler struct {
	store *store.MemoryStore
}

func NewHandler(st *store.MemoryStore) *Handler {
	return &Handler{store: st}
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (h *Handler) Readyz(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "reason": "store_not_initialized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"books":  h.store.CountBooks(),
		"logs":   h.store.CountLogs(),
	})
}
