package storage

import (
	"context"
	"sync"

	"github.com/medscheduler/booking-core/internal/domain/entities"
	"github.com/medscheduler/booking-core/internal/domain/providers"
)

// MemoryAdapter is an in-process SlotStore for local development and
// tests. It keeps the same snapshot-replace contract as the Redis adapter.
type MemoryAdapter struct {
	mu    sync.RWMutex
	slots []entities.BookedSlot
}

// NewMemoryAdapter creates an empty in-memory slot store.
func NewMemoryAdapter() providers.SlotStore {
	return &MemoryAdapter{}
}

// LoadAll returns a copy of the stored collection.
func (a *MemoryAdapter) LoadAll(ctx context.Context) ([]entities.BookedSlot, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]entities.BookedSlot, len(a.slots))
	copy(out, a.slots)
	return out, nil
}

// SaveAll replaces the stored collection with a copy of the snapshot.
func (a *MemoryAdapter) SaveAll(ctx context.Context, slots []entities.BookedSlot) error {
	next := make([]entities.BookedSlot, len(slots))
	copy(next, slots)

	a.mu.Lock()
	a.slots = next
	a.mu.Unlock()
	return nil
}
