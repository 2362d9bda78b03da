package ranking

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/handlers"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/locations"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

type Ranker interface {
	Rank(ctx context.Context, locs []models.Location, year int) (models.Ranking, error)
}

type Handler struct {
	ranker   Ranker
	registry *locations.Registry
}

func NewHandler(ranker Ranker, registry *locations.Registry) *Handler {
	return &Handler{ranker: ranker, registry: registry}
}

// GetRanking
// @Summary Rank stores by mean max temperature
// @Description Runs a full sweep over the store registry for the given year, warmest store first; stores with no data sort last
// @Tags ranking
// @Produce json
// @Param year query int false "Year to sweep, defaults to the current year"
// @Success 200 {object} models.Ranking
// @Failure 400
// @Failure 502
// @Router /ranking [get]
func (h *Handler) GetRanking(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer", "params": c.Request.URL.Query()})
			return
		}
		year = parsed
	}

	board, err := h.ranker.Rank(c.Request.Context(), h.registry.All(), year)
	if err != nil {
		c.JSON(handlers.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, board)
}
