package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_BookingConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("BOOKING_MIN_LEAD_MINUTES", "60")
	os.Setenv("BOOKING_SLOT_STORE_KEY", "test-slots")
	defer func() {
		os.Unsetenv("BOOKING_MIN_LEAD_MINUTES")
		os.Unsetenv("BOOKING_SLOT_STORE_KEY")
	}()

	// Load config
	cfg, err := Load()
	assert.NoError(t, err)

	// Verify booking config
	assert.Equal(t, 60, cfg.Booking.MinLeadMinutes)
	assert.Equal(t, time.Hour, cfg.Booking.MinLead())
	assert.Equal(t, "test-slots", cfg.Booking.SlotStoreKey)
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("BOOKING_MIN_LEAD_MINUTES")
	os.Unsetenv("BOOKING_SLOT_STORE_KEY")
	os.Unsetenv("DB_NAME")

	cfg, err := Load()
	assert.NoError(t, err)

	// Verify defaults
	assert.Equal(t, 30, cfg.Booking.MinLeadMinutes)
	assert.Equal(t, "BOOKED_SLOTS_TABLE", cfg.Booking.SlotStoreKey)
	assert.Equal(t, "medscheduler", cfg.Database.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.RedisAddr())
}
