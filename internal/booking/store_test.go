package booking

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medscheduler/booking-core/internal/domain/entities"
)

func TestStore(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(WithClock(func() time.Time { return now }))

	slot := store.Book(testDoc, testDay, "10:00")
	assert.Equal(t, "Dr. Smith_2026-09-02_10:00", slot.ID)
	assert.Equal(t, now.UnixMilli(), slot.BookedTimeMS)
	assert.Equal(t, 1, store.Len())

	store.Cancel(slot.ID)
	snapshot := store.Snapshot()
	require.Len(t, snapshot, 1)
	assert.False(t, snapshot[0].IsBooked)

	t.Run("snapshot is a copy", func(t *testing.T) {
		snap := store.Snapshot()
		snap[0].IsBooked = true
		assert.False(t, store.Snapshot()[0].IsBooked)
	})

	t.Run("hydrate replaces the collection", func(t *testing.T) {
		store.Hydrate([]entities.BookedSlot{{ID: "x"}, {ID: "y"}})
		assert.Equal(t, 2, store.Len())

		store.Hydrate(nil)
		assert.Equal(t, 0, store.Len())
	})
}

func TestStoreConcurrentTransitions(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			label := fmt.Sprintf("%02d:00", 9+i)
			slot := store.Book(testDoc, testDay, label)
			store.Cancel(slot.ID)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 8, store.Len())
	for _, slot := range store.Snapshot() {
		assert.False(t, slot.IsBooked)
	}
}
