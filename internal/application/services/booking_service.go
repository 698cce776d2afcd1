package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/medscheduler/booking-core/internal/booking"
	"github.com/medscheduler/booking-core/internal/domain/entities"
	"github.com/medscheduler/booking-core/internal/domain/providers"
	"github.com/medscheduler/booking-core/internal/schedule"
)

// TimeSlotView is one candidate slot for a doctor on a selected date, as
// the UI layer renders it: the start label plus whether the slot is
// already booked and whether it can still be booked.
type TimeSlotView struct {
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
	Booked   bool   `json:"isBooked"`
	Bookable bool   `json:"bookable"`
}

// BookingService glues the booking state machine to its collaborators: it
// hydrates the collection from the slot store at session start, mirrors a
// full snapshot back after every transition and publishes booking events.
// Mirror and publish failures are logged and absorbed; they never reach
// the state machine.
type BookingService struct {
	store     *booking.Store
	slotStore providers.SlotStore
	directory providers.DoctorDirectory
	bus       providers.EventBus

	logger  zerolog.Logger
	minLead time.Duration
	loc     *time.Location
	now     func() time.Time
}

// Option configures a BookingService.
type Option func(*BookingService)

// WithClock overrides the service's time source.
func WithClock(now func() time.Time) Option {
	return func(s *BookingService) { s.now = now }
}

// WithLocalZone sets the observer zone appointment statuses are resolved
// from. Defaults to the process-local zone.
func WithLocalZone(loc *time.Location) Option {
	return func(s *BookingService) { s.loc = loc }
}

// WithMinLead sets the minimum lead interval for bookable slots.
func WithMinLead(d time.Duration) Option {
	return func(s *BookingService) { s.minLead = d }
}

// WithEventBus attaches a bus for best-effort booking event publication.
func WithEventBus(bus providers.EventBus) Option {
	return func(s *BookingService) { s.bus = bus }
}

// NewBookingService creates a booking service over the given collaborators.
func NewBookingService(slotStore providers.SlotStore, directory providers.DoctorDirectory, opts ...Option) *BookingService {
	s := &BookingService{
		slotStore: slotStore,
		directory: directory,
		logger:    log.With().Str("component", "booking_service").Logger(),
		minLead:   booking.DefaultMinLead,
		loc:       time.Local,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.store = booking.NewStore(booking.WithClock(s.now))
	return s
}

// Hydrate seeds the collection from the slot store. A store failure
// degrades to an empty session rather than blocking the booking flow; the
// error is logged here, not surfaced.
func (s *BookingService) Hydrate(ctx context.Context) {
	slots, err := s.slotStore.LoadAll(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load booked slots, starting empty")
		slots = nil
	}
	s.store.Hydrate(slots)
}

// ListDoctors returns the directory's doctor records.
func (s *BookingService) ListDoctors(ctx context.Context) ([]entities.Doctor, error) {
	return s.directory.ListDoctors(ctx)
}

// DoctorsFor returns the doctors available on the weekday of date.
func (s *BookingService) DoctorsFor(ctx context.Context, date time.Time) ([]entities.Doctor, error) {
	doctors, err := s.directory.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.DoctorsForWeekday(doctors, date), nil
}

// TimeSlotsFor generates the doctor's candidate slots for date, each
// flagged with its booked state and current bookability.
func (s *BookingService) TimeSlotsFor(doctor entities.Doctor, date time.Time) ([]TimeSlotView, error) {
	labels, err := schedule.TimeSlots(doctor, date)
	if err != nil {
		return nil, err
	}

	snapshot := s.store.Snapshot()
	now := s.now()

	views := make([]TimeSlotView, 0, len(labels))
	for _, label := range labels {
		views = append(views, TimeSlotView{
			Time:     label,
			Timezone: doctor.Timezone,
			Booked:   isBooked(snapshot, doctor, date, label),
			Bookable: booking.Bookable(date, label, doctor.Timezone, s.minLead, now),
		})
	}
	return views, nil
}

func isBooked(slots []entities.BookedSlot, doctor entities.Doctor, date time.Time, label string) bool {
	for _, slot := range slots {
		if slot.IsBooked && booking.MatchesBookingKey(slot, doctor, date, label) {
			return true
		}
	}
	return false
}

// Book records a booking for (doctor, day of dateTime, timeStr), mirrors
// the new snapshot and publishes a booking.created event. It returns the
// resulting record.
func (s *BookingService) Book(ctx context.Context, doctor entities.Doctor, dateTime time.Time, timeStr string) entities.BookedSlot {
	slot := s.store.Book(doctor, dateTime, timeStr)
	s.mirror(ctx)
	s.publish(ctx, entities.BookingEventCreated, slot)
	return slot
}

// CancelByID cancels the record with the given id. An unknown id leaves
// the collection untouched and publishes nothing.
func (s *BookingService) CancelByID(ctx context.Context, id string) {
	s.store.Cancel(id)

	for _, slot := range s.store.Snapshot() {
		if slot.ID == id {
			s.mirror(ctx)
			s.publish(ctx, entities.BookingEventCanceled, slot)
			return
		}
	}
}

// Appointments derives the appointment view of every record, most recent
// booking action first.
func (s *BookingService) Appointments() []entities.Appointment {
	return booking.Appointments(s.store.Snapshot(), s.loc, s.now())
}

// Snapshot exposes the current collection, canceled records included.
func (s *BookingService) Snapshot() []entities.BookedSlot {
	return s.store.Snapshot()
}

func (s *BookingService) mirror(ctx context.Context) {
	if err := s.slotStore.SaveAll(ctx, s.store.Snapshot()); err != nil {
		s.logger.Warn().Err(err).Msg("failed to mirror booked slots")
	}
}

func (s *BookingService) publish(ctx context.Context, eventType entities.BookingEventType, slot entities.BookedSlot) {
	if s.bus == nil {
		return
	}

	event := &entities.BookingEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		Slot:       slot,
		OccurredAt: s.now(),
	}
	if err := s.bus.Publish(ctx, providers.EventChannelBookings, event); err != nil {
		s.logger.Warn().Str("type", string(eventType)).Err(err).Msg("failed to publish booking event")
	}
}
