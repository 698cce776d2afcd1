// Command simulate walks the booking flow end to end against real
// collaborators: it hydrates from Redis when one is reachable (falling back
// to the in-memory store), generates a doctor's slots for the current week,
// books one, cancels it and books it again.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/medscheduler/booking-core/internal/adapters/directory"
	"github.com/medscheduler/booking-core/internal/adapters/events"
	"github.com/medscheduler/booking-core/internal/adapters/storage"
	"github.com/medscheduler/booking-core/internal/application/services"
	"github.com/medscheduler/booking-core/internal/domain/entities"
	"github.com/medscheduler/booking-core/internal/domain/providers"
	"github.com/medscheduler/booking-core/internal/infrastructure/clients/redis"
	"github.com/medscheduler/booking-core/internal/infrastructure/observability"
	"github.com/medscheduler/booking-core/internal/schedule"
	"github.com/medscheduler/booking-core/pkg/config"
)

func strPtr(s string) *string { return &s }

func sampleDoctors() []entities.Doctor {
	return []entities.Doctor{
		{
			Name:           "Dr. Sarah Chen",
			Timezone:       "America/New_York",
			DayOfWeek:      strPtr(time.Now().Weekday().String()),
			AvailableAt:    strPtr("8:00AM"),
			AvailableUntil: strPtr("3:00PM"),
		},
		{
			Name:           "Dr. Kenji Watanabe",
			Timezone:       "Asia/Tokyo",
			DayOfWeek:      strPtr(time.Now().Weekday().String()),
			AvailableAt:    strPtr("09:00"),
			AvailableUntil: strPtr("17:00"),
		},
		{
			Name:     "Dr. Maria Lopez",
			Timezone: "Europe/Madrid",
			// No published schedule: listed but never bookable.
		},
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	observability.InitLogger(cfg.App.Name, cfg.App.Env)

	ctx := context.Background()

	var slotStore providers.SlotStore
	var bus providers.EventBus
	if redisClient, err := redis.NewClient(&cfg.Redis); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, using in-memory slot store")
		slotStore = storage.NewMemoryAdapter()
	} else {
		defer redisClient.Close()
		slotStore = storage.NewRedisAdapter(redisClient, cfg.Booking.SlotStoreKey)
		bus = events.NewRedisEventBus(redisClient)
		defer bus.Close()
	}

	opts := []services.Option{services.WithMinLead(cfg.Booking.MinLead())}
	if bus != nil {
		opts = append(opts, services.WithEventBus(bus))
	}
	if cfg.Booking.LocalTimezone != "" {
		loc, err := time.LoadLocation(cfg.Booking.LocalTimezone)
		if err != nil {
			log.Fatal().Err(err).Str("timezone", cfg.Booking.LocalTimezone).Msg("invalid local timezone")
		}
		opts = append(opts, services.WithLocalZone(loc))
	}

	svc := services.NewBookingService(slotStore, directory.NewStaticAdapter(sampleDoctors()), opts...)
	svc.Hydrate(ctx)
	log.Info().Int("slots", len(svc.Snapshot())).Msg("hydrated booked slots")

	if bus != nil {
		go watchEvents(ctx, bus)
	}

	now := time.Now()
	week, err := schedule.WeekDates(now)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to compute week")
	}
	log.Info().
		Time("week_start", week[0]).
		Time("week_end", week[6]).
		Msg("current week")

	doctors, err := svc.DoctorsFor(ctx, now)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list doctors")
	}
	if len(doctors) == 0 {
		log.Info().Msg("no doctors available today")
		return
	}

	doctor := doctors[0]
	views, err := svc.TimeSlotsFor(doctor, now)
	if err != nil {
		log.Fatal().Err(err).Str("doctor", doctor.Name).Msg("failed to generate slots")
	}
	log.Info().Str("doctor", doctor.Name).Int("slots", len(views)).Msg("generated time slots")

	var chosen string
	for _, view := range views {
		if view.Bookable && !view.Booked {
			chosen = view.Time
			break
		}
	}
	if chosen == "" {
		log.Info().Str("doctor", doctor.Name).Msg("no bookable slot left today")
		return
	}

	slot := svc.Book(ctx, doctor, now, chosen)
	log.Info().Str("id", slot.ID).Str("time", slot.Time).Msg("booked slot")

	svc.CancelByID(ctx, slot.ID)
	log.Info().Str("id", slot.ID).Msg("canceled slot")

	rebooked := svc.Book(ctx, doctor, now, chosen)
	log.Info().Str("id", rebooked.ID).Msg("rebooked slot")

	for _, appt := range svc.Appointments() {
		log.Info().
			Str("doctor", appt.DoctorName).
			Str("time", appt.TimeSlot.Time).
			Str("status", string(appt.Status)).
			Msg("appointment")
	}

	// Give the bus a beat to deliver the final event before exiting.
	time.Sleep(200 * time.Millisecond)
}

func watchEvents(ctx context.Context, bus providers.EventBus) {
	eventsCh, err := bus.Subscribe(ctx, providers.EventChannelBookings)
	if err != nil {
		log.Warn().Err(err).Msg("failed to subscribe to booking events")
		return
	}
	for event := range eventsCh {
		log.Info().
			Str("type", string(event.Type)).
			Str("slot", event.Slot.ID).
			Msg("booking event")
	}
}
