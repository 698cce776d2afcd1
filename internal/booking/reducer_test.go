package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medscheduler/booking-core/internal/domain/entities"
)

var (
	testDay = time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
	testDoc = entities.Doctor{Name: "Dr. Smith", Timezone: "America/New_York"}
)

func TestBook(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	t.Run("appends a new record with its deterministic id", func(t *testing.T) {
		next := Book(nil, testDoc, testDay, "10:00", now)
		require.Len(t, next, 1)

		slot := next[0]
		assert.Equal(t, "Dr. Smith_2026-09-02_10:00", slot.ID)
		assert.Equal(t, "Dr. Smith", slot.DoctorName)
		assert.Equal(t, "America/New_York", slot.DoctorTimeZone)
		assert.Equal(t, testDay.UnixMilli(), slot.DateMS)
		assert.Equal(t, now.UnixMilli(), slot.BookedTimeMS)
		assert.True(t, slot.IsBooked)
	})

	t.Run("booking the same identity twice collapses into one record", func(t *testing.T) {
		later := now.Add(time.Hour)

		next := Book(nil, testDoc, testDay, "10:00", now)
		next = Book(next, testDoc, testDay, "10:00", later)

		require.Len(t, next, 1)
		assert.Equal(t, later.UnixMilli(), next[0].BookedTimeMS)
	})

	t.Run("rebooking a canceled record revives it in place", func(t *testing.T) {
		next := Book(nil, testDoc, testDay, "10:00", now)
		next = Cancel(next, next[0].ID)
		require.False(t, next[0].IsBooked)

		next = Book(next, testDoc, testDay, "10:00", now.Add(time.Hour))
		require.Len(t, next, 1)
		assert.True(t, next[0].IsBooked)
		assert.Equal(t, "Dr. Smith_2026-09-02_10:00", next[0].ID)
	})

	t.Run("different time appends a second record", func(t *testing.T) {
		next := Book(nil, testDoc, testDay, "10:00", now)
		next = Book(next, testDoc, testDay, "10:30", now)
		assert.Len(t, next, 2)
	})

	t.Run("input slice is never modified", func(t *testing.T) {
		original := Book(nil, testDoc, testDay, "10:00", now)
		snapshot := original[0]

		_ = Book(original, testDoc, testDay, "10:00", now.Add(time.Hour))
		_ = Cancel(original, original[0].ID)

		assert.Equal(t, snapshot, original[0])
	})
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	slots := Book(nil, testDoc, testDay, "10:00", now)

	t.Run("flags the record, keeps it in the collection", func(t *testing.T) {
		next := Cancel(slots, slots[0].ID)
		require.Len(t, next, 1)
		assert.False(t, next[0].IsBooked)
		assert.Equal(t, slots[0].ID, next[0].ID)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		next := Cancel(slots, "Dr. Nobody_2026-09-02_10:00")
		assert.Equal(t, slots, next)
	})
}

func TestInit(t *testing.T) {
	seeded := []entities.BookedSlot{
		{ID: "a", IsBooked: true},
		{ID: "b"},
	}

	next := Init(seeded)
	assert.Equal(t, seeded, next)

	next[0].IsBooked = false
	assert.True(t, seeded[0].IsBooked)
}
