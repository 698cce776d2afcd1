package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medscheduler/booking-core/internal/domain/entities"
)

func TestBookable(t *testing.T) {
	now := time.Date(2026, time.September, 2, 9, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)

	t.Run("slot clears the lead interval", func(t *testing.T) {
		assert.True(t, Bookable(today, "10:00", "UTC", DefaultMinLead, now))
	})

	t.Run("slot inside the lead interval", func(t *testing.T) {
		assert.False(t, Bookable(today, "09:15", "UTC", DefaultMinLead, now))
	})

	t.Run("slot exactly at the lead boundary is not bookable", func(t *testing.T) {
		assert.False(t, Bookable(today, "09:30", "UTC", DefaultMinLead, now))
	})

	t.Run("past slot", func(t *testing.T) {
		assert.False(t, Bookable(today, "08:00", "UTC", DefaultMinLead, now))
	})

	t.Run("zero lead admits any future slot", func(t *testing.T) {
		assert.True(t, Bookable(today, "09:15", "UTC", 0, now))
		assert.False(t, Bookable(today, "08:00", "UTC", 0, now))
	})

	t.Run("timezone shifts the slot instant", func(t *testing.T) {
		// 18:00 in Shanghai on Sep 2 is 10:00 UTC, an hour ahead of now.
		assert.True(t, Bookable(today.Add(12*time.Hour), "18:00", "Asia/Shanghai", DefaultMinLead, now))
		// 10:00 in Shanghai was 02:00 UTC, long past.
		assert.False(t, Bookable(today.Add(12*time.Hour), "10:00", "Asia/Shanghai", DefaultMinLead, now))
	})

	t.Run("fails closed on bad input", func(t *testing.T) {
		assert.False(t, Bookable(time.Time{}, "10:00", "UTC", DefaultMinLead, now))
		assert.False(t, Bookable(today, "10:00", "Mars/Olympus_Mons", DefaultMinLead, now))
		assert.False(t, Bookable(today, "later", "UTC", DefaultMinLead, now))
	})
}

func TestMatchesBookingKey(t *testing.T) {
	day := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
	doctor := entities.Doctor{Name: "Dr. Smith", Timezone: "UTC"}
	slot := entities.BookedSlot{
		DoctorName: "Dr. Smith",
		DateMS:     day.UnixMilli(),
		Time:       "10:00",
	}

	assert.True(t, MatchesBookingKey(slot, doctor, day, "10:00"))
	assert.True(t, MatchesBookingKey(slot, doctor, day.Add(23*time.Hour), "10:00"))

	assert.False(t, MatchesBookingKey(slot, entities.Doctor{Name: "Dr. Jones"}, day, "10:00"))
	assert.False(t, MatchesBookingKey(slot, doctor, day.AddDate(0, 0, 1), "10:00"))
	assert.False(t, MatchesBookingKey(slot, doctor, day, "10:30"))
}
