// Command seed populates the doctors table with generated reference data so
// the booking flow has a directory to read from in development.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/medscheduler/booking-core/internal/infrastructure/clients/postgres"
	"github.com/medscheduler/booking-core/internal/infrastructure/observability"
	"github.com/medscheduler/booking-core/pkg/config"
)

const createDoctorsTable = `
CREATE TABLE IF NOT EXISTS doctors (
	name            TEXT PRIMARY KEY,
	timezone        TEXT NOT NULL,
	day_of_week     TEXT,
	available_at    TEXT,
	available_until TEXT
)`

var timezones = []string{
	"America/New_York",
	"America/Chicago",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Madrid",
	"Asia/Tokyo",
	"Asia/Shanghai",
}

var weekdays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

type doctorRow struct {
	Name           string  `db:"name"`
	Timezone       string  `db:"timezone"`
	DayOfWeek      *string `db:"day_of_week"`
	AvailableAt    *string `db:"available_at"`
	AvailableUntil *string `db:"available_until"`
}

func fakeDoctor(faker *gofakeit.Faker) doctorRow {
	row := doctorRow{
		Name:     fmt.Sprintf("Dr. %s %s", faker.FirstName(), faker.LastName()),
		Timezone: timezones[faker.Number(0, len(timezones)-1)],
	}

	// Roughly one doctor in five has no published schedule.
	if faker.Number(1, 5) == 1 {
		return row
	}

	day := weekdays[faker.Number(0, len(weekdays)-1)]
	startHour := faker.Number(7, 11)
	endHour := startHour + faker.Number(4, 8)
	at := fmt.Sprintf("%02d:00", startHour)
	until := fmt.Sprintf("%02d:00", endHour)

	row.DayOfWeek = &day
	row.AvailableAt = &at
	row.AvailableUntil = &until
	return row
}

func main() {
	count := flag.Int("count", 25, "number of doctors to generate")
	seed := flag.Uint64("seed", 0, "faker seed, 0 means random")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	observability.InitLogger(cfg.App.Name, cfg.App.Env)

	client, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := client.DB().ExecContext(ctx, createDoctorsTable); err != nil {
		log.Fatal().Err(err).Msg("failed to create doctors table")
	}

	faker := gofakeit.New(*seed)
	rows := make([]any, 0, *count)
	for i := 0; i < *count; i++ {
		rows = append(rows, fakeDoctor(faker))
	}

	db := goqu.New("postgres", client.DB())
	query, args, err := db.Insert("doctors").
		Rows(rows...).
		OnConflict(goqu.DoNothing()).
		ToSQL()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build insert query")
	}

	result, err := client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to insert doctors")
	}

	inserted, _ := result.RowsAffected()
	log.Info().Int64("inserted", inserted).Int("generated", *count).Msg("seeded doctors")
}
