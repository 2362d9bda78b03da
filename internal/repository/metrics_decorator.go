package repository

import (
	"context"
	"time"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

type metricsCollector interface {
	ObserveLatency(operation string, duration time.Duration)
	IncrementCounter(metric string, labels ...string)
}

// MetricsDecorator instruments a HistoryRepository with latency and outcome
// counters.
type MetricsDecorator struct {
	next      HistoryRepository
	collector metricsCollector
}

func NewMetricsDecorator(next HistoryRepository, collector metricsCollector) *MetricsDecorator {
	return &MetricsDecorator{next: next, collector: collector}
}

func (m *MetricsDecorator) Append(ctx context.Context, sessionID string, entry models.HistoryEntry) error {
	start := time.Now()
	err := m.next.Append(ctx, sessionID, entry)
	m.collector.ObserveLatency("history_append", time.Since(start))
	if err != nil {
		m.collector.IncrementCounter("history_append", "error")
	} else {
		m.collector.IncrementCounter("history_append", "success")
	}
	return err
}

func (m *MetricsDecorator) List(ctx context.Context, sessionID string) ([]models.HistoryEntry, error) {
	start := time.Now()
	entries, err := m.next.List(ctx, sessionID)
	m.collector.ObserveLatency("history_list", time.Since(start))
	if err != nil {
		m.collector.IncrementCounter("history_list", "error")
	} else {
		m.collector.IncrementCounter("history_list", "success")
	}
	return entries, err
}

func (m *MetricsDecorator) Clear(ctx context.Context, sessionID string) error {
	start := time.Now()
	err := m.next.Clear(ctx, sessionID)
	m.collector.ObserveLatency("history_clear", time.Since(start))
	if err != nil {
		m.collector.IncrementCounter("history_clear", "error")
	} else {
		m.collector.IncrementCounter("history_clear", "success")
	}
	return err
}
