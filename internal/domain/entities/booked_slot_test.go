package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookedSlot_UniqueID(t *testing.T) {
	day := time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)

	t.Run("doctor, utc day and time", func(t *testing.T) {
		slot := BookedSlot{DoctorName: "Dr. Smith", DateMS: day.UnixMilli(), Time: "10:00"}
		assert.Equal(t, "Dr. Smith_2023-10-01_10:00", slot.UniqueID())
	})

	t.Run("deterministic for the same identity", func(t *testing.T) {
		a := BookedSlot{DoctorName: "Dr. Smith", DateMS: day.UnixMilli(), Time: "10:00", IsBooked: true}
		b := BookedSlot{DoctorName: "Dr. Smith", DateMS: day.Add(6 * time.Hour).UnixMilli(), Time: "10:00"}
		assert.Equal(t, a.UniqueID(), b.UniqueID())
	})

	t.Run("empty segments degrade, never panic", func(t *testing.T) {
		slot := BookedSlot{DateMS: day.UnixMilli()}
		assert.Equal(t, "_2023-10-01_", slot.UniqueID())
	})

	t.Run("zero timestamp names the epoch day", func(t *testing.T) {
		slot := BookedSlot{DoctorName: "Dr. Smith", Time: "10:00"}
		assert.Equal(t, "Dr. Smith_1970-01-01_10:00", slot.UniqueID())
	})
}

func TestBookedSlot_JSONShape(t *testing.T) {
	slot := BookedSlot{
		ID:             "Dr. Smith_2023-10-01_10:00",
		DoctorName:     "Dr. Smith",
		DoctorTimeZone: "America/New_York",
		DateMS:         1696118400000,
		Time:           "10:00",
		BookedTimeMS:   1696000000000,
		IsBooked:       true,
	}

	raw, err := json.Marshal(slot)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, float64(1696118400000), fields["date"])
	assert.Equal(t, float64(1696000000000), fields["bookedTime"])
	assert.Equal(t, true, fields["isBooked"])
	assert.Equal(t, "Dr. Smith", fields["doctorName"])
}

func TestDoctor_Schedule(t *testing.T) {
	day := "Monday"
	at := "8:00AM"
	until := "3:00PM"

	t.Run("complete window", func(t *testing.T) {
		doc := Doctor{Name: "Dr. Smith", DayOfWeek: &day, AvailableAt: &at, AvailableUntil: &until}

		sched, ok := doc.Schedule()
		require.True(t, ok)
		assert.Equal(t, WeeklySchedule{DayOfWeek: "Monday", AvailableAt: "8:00AM", AvailableUntil: "3:00PM"}, sched)
	})

	t.Run("missing bound", func(t *testing.T) {
		doc := Doctor{Name: "Dr. Smith", AvailableAt: &at}
		_, ok := doc.Schedule()
		assert.False(t, ok)
	})

	t.Run("window without a weekday", func(t *testing.T) {
		doc := Doctor{Name: "Dr. Smith", AvailableAt: &at, AvailableUntil: &until}
		sched, ok := doc.Schedule()
		require.True(t, ok)
		assert.Empty(t, sched.DayOfWeek)
	})
}
