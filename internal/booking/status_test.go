package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medscheduler/booking-core/internal/domain/entities"
)

func bookedAt(day time.Time, label string, bookedMS int64) entities.BookedSlot {
	slot := entities.BookedSlot{
		DoctorName:     "Dr. Smith",
		DoctorTimeZone: "UTC",
		DateMS:         day.UnixMilli(),
		Time:           label,
		BookedTimeMS:   bookedMS,
		IsBooked:       true,
	}
	slot.ID = slot.UniqueID()
	return slot
}

func TestSlotStart(t *testing.T) {
	day := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)

	start, err := SlotStart(bookedAt(day, "10:30", 0), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 2, 10, 30, 0, 0, time.UTC), start)

	_, err = SlotStart(bookedAt(day, "sometime", 0), time.UTC)
	assert.Error(t, err)
}

func TestResolveStatus(t *testing.T) {
	day := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC)

	t.Run("canceled wins regardless of time", func(t *testing.T) {
		slot := bookedAt(day, "18:00", 0)
		slot.IsBooked = false
		assert.Equal(t, entities.AppointmentStatusCanceled, ResolveStatus(slot, time.UTC, now))
	})

	t.Run("past slot is completed", func(t *testing.T) {
		slot := bookedAt(day, "10:00", 0)
		assert.Equal(t, entities.AppointmentStatusCompleted, ResolveStatus(slot, time.UTC, now))
	})

	t.Run("future slot is scheduled", func(t *testing.T) {
		slot := bookedAt(day, "14:00", 0)
		assert.Equal(t, entities.AppointmentStatusScheduled, ResolveStatus(slot, time.UTC, now))
	})

	t.Run("slot starting exactly now is scheduled", func(t *testing.T) {
		slot := bookedAt(day, "12:00", 0)
		assert.Equal(t, entities.AppointmentStatusScheduled, ResolveStatus(slot, time.UTC, now))
	})

	t.Run("doctor timezone shifts the comparison", func(t *testing.T) {
		// 14:00 on the doctor's Shanghai clock was 06:00 UTC, already past,
		// even though 14:00 reads as future against a 12:00 UTC now.
		slot := bookedAt(day, "14:00", 0)
		slot.DoctorTimeZone = "Asia/Shanghai"
		assert.Equal(t, entities.AppointmentStatusCompleted, ResolveStatus(slot, time.UTC, now))
	})

	t.Run("unparseable slot time", func(t *testing.T) {
		slot := bookedAt(day, "sometime", 0)
		assert.Equal(t, entities.AppointmentStatusUnknown, ResolveStatus(slot, time.UTC, now))
	})
}

func TestAppointments(t *testing.T) {
	day := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC)

	older := bookedAt(day, "10:00", 1000)
	newer := bookedAt(day, "14:00", 2000)
	canceled := bookedAt(day, "15:00", 1500)
	canceled.IsBooked = false

	appointments := Appointments([]entities.BookedSlot{older, canceled, newer}, time.UTC, now)
	require.Len(t, appointments, 3)

	// Most recent booking action first.
	assert.Equal(t, newer.ID, appointments[0].TimeSlot.ID)
	assert.Equal(t, canceled.ID, appointments[1].TimeSlot.ID)
	assert.Equal(t, older.ID, appointments[2].TimeSlot.ID)

	assert.Equal(t, entities.AppointmentStatusScheduled, appointments[0].Status)
	assert.Equal(t, entities.AppointmentStatusCanceled, appointments[1].Status)
	assert.Equal(t, entities.AppointmentStatusCompleted, appointments[2].Status)

	t.Run("empty collection", func(t *testing.T) {
		assert.Empty(t, Appointments(nil, time.UTC, now))
	})
}
