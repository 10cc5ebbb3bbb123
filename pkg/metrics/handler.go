package metrics

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"books_created_total":   GetBooksCreated(),
		"books_deleted_total":   GetBooksDeleted(),
		"logs_created_total":    GetLogsCreated(),
		"broadcasts_total":      GetBroadcasts(),
		"broadcast_fails_total": GetBroadcastFails(),
		"active_connections":    GetActiveConnections(),
	})
}
