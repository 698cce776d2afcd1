package schedule

import (
	"strings"
	"time"

	"github.com/medscheduler/booking-core/internal/domain/entities"
)

// WeekDates returns the seven dates of the week containing date, Sunday
// first. Each entry keeps the clock time of the input. A zero date is
// rejected with ErrInvalidInput.
func WeekDates(date time.Time) ([]time.Time, error) {
	if date.IsZero() {
		return nil, ErrInvalidInput
	}

	start := date.AddDate(0, 0, -int(date.Weekday()))
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week, nil
}

// SameCalendarDay reports whether two timestamps fall on the same calendar
// day in their UTC representation. This deliberately ignores each value's
// location: the booking key uses the UTC day, so the dedup comparison must
// as well.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// IsPastDay reports whether date's (year, month, day) is strictly before
// now's, each read in its own location. Time of day never matters.
func IsPastDay(date, now time.Time) bool {
	y, m, d := date.Date()
	ny, nm, nd := now.Date()
	if y != ny {
		return y < ny
	}
	if m != nm {
		return m < nm
	}
	return d < nd
}

// DoctorsForWeekday filters doctors to those whose day_of_week names the
// weekday of date. Doctors without a day_of_week are excluded.
func DoctorsForWeekday(doctors []entities.Doctor, date time.Time) []entities.Doctor {
	weekday := date.Weekday().String()

	matched := make([]entities.Doctor, 0, len(doctors))
	for _, doc := range doctors {
		if doc.DayOfWeek == nil {
			continue
		}
		if strings.EqualFold(*doc.DayOfWeek, weekday) {
			matched = append(matched, doc)
		}
	}
	return matched
}
