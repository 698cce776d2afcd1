package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Booking  BookingConfig
}

// AppConfig holds process-wide settings
type AppConfig struct {
	Name string
	Env  string
}

// DatabaseConfig holds the doctor-directory database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// BookingConfig holds booking-core defaults
type BookingConfig struct {
	// MinLeadMinutes is the minimum gap between "now" and a bookable
	// slot's start time.
	MinLeadMinutes int

	// SlotStoreKey is the Redis key the booked-slot snapshot is mirrored
	// under.
	SlotStoreKey string

	// LocalTimezone is the observer zone appointment statuses are
	// resolved from. Empty means the process-local zone.
	LocalTimezone string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "booking-core"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "medscheduler"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Booking: BookingConfig{
			MinLeadMinutes: getEnvAsInt("BOOKING_MIN_LEAD_MINUTES", 30),
			SlotStoreKey:   getEnv("BOOKING_SLOT_STORE_KEY", "BOOKED_SLOTS_TABLE"),
			LocalTimezone:  getEnv("BOOKING_LOCAL_TIMEZONE", ""),
		},
	}, nil
}

// MinLead returns the configured minimum lead interval as a duration
func (c *BookingConfig) MinLead() time.Duration {
	return time.Duration(c.MinLeadMinutes) * time.Minute
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
