package history

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/handlers"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/repository"
)

type Handler struct {
	history repository.HistoryRepository
}

func NewHandler(history repository.HistoryRepository) *Handler {
	return &Handler{history: history}
}

// GetHistory
// @Summary List the session's query history
// @Description Entries are returned newest first
// @Tags history
// @Produce json
// @Param X-Session-ID header string true "Session identity"
// @Success 200 {array} models.HistoryEntry
// @Failure 400
// @Router /history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	sessionID := handlers.SessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session identity is required"})
		return
	}

	entries, err := h.history.List(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ClearHistory
// @Summary Empty the session's query history
// @Tags history
// @Param X-Session-ID header string true "Session identity"
// @Success 204
// @Failure 400
// @Router /history [delete]
func (h *Handler) ClearHistory(c *gin.Context) {
	sessionID := handlers.SessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session identity is required"})
		return
	}

	if err := h.history.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
