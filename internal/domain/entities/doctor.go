package entities

// Doctor represents a doctor record supplied by the external directory.
// Schedule fields arrive as JSON null for doctors without a published
// availability window, so they are modeled as pointers.
type Doctor struct {
	Name           string  `json:"name" db:"name"`
	Timezone       string  `json:"timezone" db:"timezone"`
	DayOfWeek      *string `json:"day_of_week" db:"day_of_week"`
	AvailableAt    *string `json:"available_at" db:"available_at"`
	AvailableUntil *string `json:"available_until" db:"available_until"`
}

// WeeklySchedule is the availability window of a doctor on a single weekday.
// Times are wall-clock strings, either 24h ("09:00") or 12h with meridiem
// ("8:00AM").
type WeeklySchedule struct {
	DayOfWeek      string
	AvailableAt    string
	AvailableUntil string
}

// Schedule returns the doctor's availability window, or false when either
// bound is missing. Callers must treat false as "no bookable slots" rather
// than an error.
func (d Doctor) Schedule() (WeeklySchedule, bool) {
	if d.AvailableAt == nil || d.AvailableUntil == nil {
		return WeeklySchedule{}, false
	}
	sched := WeeklySchedule{
		AvailableAt:    *d.AvailableAt,
		AvailableUntil: *d.AvailableUntil,
	}
	if d.DayOfWeek != nil {
		sched.DayOfWeek = *d.DayOfWeek
	}
	return sched, true
}
