package repository

import (
	"context"
	"sync"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

// HistoryRepository stores each session's query history, newest first. The
// backing store is ephemeral; nothing survives beyond its configured TTL.
type HistoryRepository interface {
	Append(ctx context.Context, sessionID string, entry models.HistoryEntry) error
	List(ctx context.Context, sessionID string) ([]models.HistoryEntry, error)
	Clear(ctx context.Context, sessionID string) error
}

// MemoryHistoryRepository keeps history in process memory. Used in tests and
// redis-less deployments.
type MemoryHistoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]models.HistoryEntry
}

func NewMemoryHistoryRepository() *MemoryHistoryRepository {
	return &MemoryHistoryRepository{entries: make(map[string][]models.HistoryEntry)}
}

func (r *MemoryHistoryRepository) Append(_ context.Context, sessionID string, entry models.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[sessionID] = append([]models.HistoryEntry{entry}, r.entries[sessionID]...)
	return nil
}

func (r *MemoryHistoryRepository) List(_ context.Context, sessionID string) ([]models.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.entries[sessionID]
	out := make([]models.HistoryEntry, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *MemoryHistoryRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
	return nil
}
