package booking

import (
	"time"

	"github.com/medscheduler/booking-core/internal/domain/entities"
)

// The reducer functions below are total over well-formed input and always
// return a fresh slice: a transition either fully applies or leaves the
// collection untouched, never half-updated.

// Book applies a booking action for the identity (doctor, calendar day of
// dateTime, timeStr). An existing record for that identity is overwritten
// in place — time refreshed, bookedTime set to now, isBooked true — so
// booking the same slot twice collapses into one record. Otherwise a new
// record is appended with its deterministic unique id.
func Book(slots []entities.BookedSlot, doctor entities.Doctor, dateTime time.Time, timeStr string, now time.Time) []entities.BookedSlot {
	next := make([]entities.BookedSlot, len(slots))
	copy(next, slots)

	for i, slot := range next {
		if MatchesBookingKey(slot, doctor, dateTime, timeStr) {
			slot.Time = timeStr
			slot.BookedTimeMS = now.UnixMilli()
			slot.IsBooked = true
			next[i] = slot
			return next
		}
	}

	created := entities.BookedSlot{
		DoctorName:     doctor.Name,
		DoctorTimeZone: doctor.Timezone,
		DateMS:         dateTime.UnixMilli(),
		Time:           timeStr,
		BookedTimeMS:   now.UnixMilli(),
		IsBooked:       true,
	}
	created.ID = created.UniqueID()
	return append(next, created)
}

// Cancel flags the record with the given id as no longer booked. The record
// stays in the collection. An absent id is a benign no-op, not an error.
func Cancel(slots []entities.BookedSlot, id string) []entities.BookedSlot {
	next := make([]entities.BookedSlot, len(slots))
	copy(next, slots)

	for i := range next {
		if next[i].ID == id {
			next[i].IsBooked = false
			break
		}
	}
	return next
}

// Init replaces the collection wholesale, used to hydrate from persistence.
func Init(slots []entities.BookedSlot) []entities.BookedSlot {
	next := make([]entities.BookedSlot, len(slots))
	copy(next, slots)
	return next
}
