package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

const (
	timeInterval = time.Duration(30) * time.Second
	timeTimeOut  = time.Duration(15) * time.Second

	repeatNumber = 5
)

// BreakerClient wraps an archive client with a circuit breaker so a dead
// upstream fails fast during a ranking sweep.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped client
}

func NewBreakerClient(name string, wrapped client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    timeInterval,
		Timeout:     timeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= repeatNumber
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) Fetch(
	ctx context.Context,
	lat, lon float64,
	start, end time.Time,
) ([]models.DayRecord, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.Fetch(ctx, lat, lon, start, end)
	})
	if err != nil {
		return nil, fmt.Errorf("%s unavailable: %w", b.name, err)
	}
	days, ok := result.([]models.DayRecord)
	if !ok {
		return nil, fmt.Errorf("%s unavailable: unexpected result type", b.name)
	}
	return days, nil
}
