// Package booking implements the appointment booking state machine and the
// predicates that gate it: slot availability across timezones, booking-key
// matching and appointment status resolution. Transitions are pure
// functions over the booked-slot collection; Store wraps them in a
// mutex-guarded container for multi-goroutine hosts.
package booking

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medscheduler/booking-core/internal/domain/entities"
	"github.com/medscheduler/booking-core/internal/schedule"
)

// DefaultMinLead is the minimum gap required between "now" and a bookable
// slot's start when the caller does not specify one.
const DefaultMinLead = 30 * time.Minute

// Bookable reports whether the slot starting at timeStr on date, read as
// wall-clock time in tz, is still more than minLead ahead of now. A
// non-positive minLead admits any instant not already past.
//
// The predicate fails closed: an unknown timezone, an unparseable time or a
// zero date all return false rather than an error, because a cosmetic data
// problem must never open a past slot for booking.
func Bookable(date time.Time, timeStr, tz string, minLead time.Duration, now time.Time) bool {
	if date.IsZero() {
		return false
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Warn().Str("timezone", tz).Msg("unknown timezone, slot treated as unavailable")
		return false
	}

	minutes, err := schedule.ParseClock(timeStr)
	if err != nil {
		return false
	}

	// The candidate instant uses tz's civil reading of the given date
	// combined with the slot's hour and minute.
	d := date.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), minutes/60, minutes%60, 0, 0, loc)

	return start.Sub(now) > minLead
}

// MatchesBookingKey reports whether an existing record occupies the booking
// identity (doctor, calendar day, start time) named by the arguments. The
// calendar-day comparison follows the UTC-day convention of the booking key.
func MatchesBookingKey(slot entities.BookedSlot, doctor entities.Doctor, dateTime time.Time, timeStr string) bool {
	return slot.DoctorName == doctor.Name &&
		schedule.SameCalendarDay(slot.Date(), dateTime) &&
		slot.Time == timeStr
}
