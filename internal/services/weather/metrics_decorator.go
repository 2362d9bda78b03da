package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/services/metrics"
)

// MetricsClient counts archive fetches and their failures per coordinate pair.
type MetricsClient struct {
	wrapped client
	m       *metrics.Metrics
}

func NewMetricsClient(wrapped client, m *metrics.Metrics) *MetricsClient {
	return &MetricsClient{wrapped: wrapped, m: m}
}

func (c *MetricsClient) Fetch(
	ctx context.Context,
	lat, lon float64,
	start, end time.Time,
) ([]models.DayRecord, error) {
	loc := fmt.Sprintf("%g,%g", lat, lon)
	c.m.FetchesTotal.WithLabelValues(loc).Inc()

	days, err := c.wrapped.Fetch(ctx, lat, lon, start, end)
	if err != nil {
		c.m.FetchErrorsTotal.WithLabelValues(loc, errorType(err)).Inc()
	}
	return days, err
}

func errorType(err error) string {
	var httpErr *models.UpstreamHTTPError
	var connErr *models.UpstreamConnectionError

	switch {
	case errors.As(err, &httpErr):
		return "http"
	case errors.As(err, &connErr):
		return "connection"
	case errors.Is(err, models.ErrDecode):
		return "decode"
	default:
		return "other"
	}
}
