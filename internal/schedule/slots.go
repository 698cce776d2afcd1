package schedule

import (
	"fmt"
	"time"

	"github.com/medscheduler/booking-core/internal/domain/entities"
)

// TimeSlots generates the start labels of every bookable slot for a doctor
// on a given date, at the fixed 30-minute cadence. Labels run from
// available_at (inclusive) up to but excluding available_until, rendered as
// zero-padded 24h "HH:MM" regardless of the input format.
//
// Errors: ErrInvalidDoctorData when either availability bound is missing or
// unparseable, ErrInvalidInput when date is the zero time, ErrInvalidRange
// when the window is empty or inverted.
func TimeSlots(doctor entities.Doctor, date time.Time) ([]string, error) {
	sched, ok := doctor.Schedule()
	if !ok {
		return nil, ErrInvalidDoctorData
	}
	if date.IsZero() {
		return nil, ErrInvalidInput
	}

	from, err := ParseClock(sched.AvailableAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDoctorData, err)
	}
	until, err := ParseClock(sched.AvailableUntil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDoctorData, err)
	}
	if from >= until {
		return nil, ErrInvalidRange
	}

	slots := make([]string, 0, (until-from)/SlotIntervalMinutes)
	for minute := from; minute < until; minute += SlotIntervalMinutes {
		slots = append(slots, FormatClock(minute))
	}
	return slots, nil
}
