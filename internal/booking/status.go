package booking

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medscheduler/booking-core/internal/domain/entities"
	"github.com/medscheduler/booking-core/internal/schedule"
	"github.com/medscheduler/booking-core/internal/timezone"
)

// SlotStart combines a booked slot's calendar date and "HH:MM" start label
// into a single instant read in loc. A nil loc means the process-local zone.
func SlotStart(slot entities.BookedSlot, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	minutes, err := schedule.ParseClock(slot.Time)
	if err != nil {
		return time.Time{}, err
	}

	d := slot.Date().In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), minutes/60, minutes%60, 0, 0, loc), nil
}

// ResolveStatus classifies a booked slot relative to now, as observed from
// loc. A canceled record is canceled no matter where its start time lies.
// Otherwise the slot's local instant is shifted into the doctor's timezone
// before the comparison: strictly before now is completed, at or after is
// scheduled. An unparseable slot yields AppointmentStatusUnknown.
func ResolveStatus(slot entities.BookedSlot, loc *time.Location, now time.Time) entities.AppointmentStatus {
	if !slot.IsBooked {
		return entities.AppointmentStatusCanceled
	}
	if loc == nil {
		loc = time.Local
	}

	start, err := SlotStart(slot, loc)
	if err != nil {
		log.Warn().
			Str("slot", slot.ID).
			Str("time", slot.Time).
			Msg("unparseable slot time, status unknown")
		return entities.AppointmentStatusUnknown
	}

	adjusted := start.Add(time.Duration(timezone.UTCIntervalMS(loc.String(), slot.DoctorTimeZone)) * time.Millisecond)
	if adjusted.Before(now) {
		return entities.AppointmentStatusCompleted
	}
	return entities.AppointmentStatusScheduled
}

// Appointments derives the display view of the collection: one appointment
// per record, status resolved against now, sorted by booking recency (most
// recent booking action first). The input is never modified.
func Appointments(slots []entities.BookedSlot, loc *time.Location, now time.Time) []entities.Appointment {
	appointments := make([]entities.Appointment, 0, len(slots))
	for _, slot := range slots {
		appointments = append(appointments, entities.Appointment{
			DoctorName:     slot.DoctorName,
			DoctorTimeZone: slot.DoctorTimeZone,
			TimeSlot:       slot,
			Status:         ResolveStatus(slot, loc, now),
		})
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].TimeSlot.BookedTimeMS > appointments[j].TimeSlot.BookedTimeMS
	})
	return appointments
}
