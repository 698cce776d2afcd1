// Package schedule computes weekly calendar spans and discrete appointment
// slots from doctor availability windows. All functions are pure; "now" is
// always an explicit argument so callers control the clock.
package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SlotIntervalMinutes is the fixed cadence between slot start times.
const SlotIntervalMinutes = 30

var (
	// ErrInvalidInput marks a malformed date passed to a date-producing
	// function. It always fails loudly: proceeding would corrupt the
	// calendar computation downstream.
	ErrInvalidInput = errors.New("invalid date input")

	// ErrInvalidDoctorData marks a doctor record missing or corrupting the
	// availability fields slot generation depends on.
	ErrInvalidDoctorData = errors.New("invalid doctor data: missing available_at or available_until fields")

	// ErrInvalidRange marks an availability window whose start is not
	// strictly earlier than its end.
	ErrInvalidRange = errors.New("invalid time range: available_at must be earlier than available_until")
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})((?i:AM|PM))?$`)

// ParseClock parses a wall-clock string in either 24h form ("09:00",
// "14:30") or 12h form with meridiem suffix ("8:00AM", "3:00PM") and
// returns minutes since midnight.
func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("unparseable clock value %q", s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return 0, fmt.Errorf("minute out of range in %q", s)
	}

	meridiem := strings.ToUpper(m[3])
	switch meridiem {
	case "":
		if hour > 23 {
			return 0, fmt.Errorf("hour out of range in %q", s)
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour out of range in %q", s)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour out of range in %q", s)
		}
		if hour != 12 {
			hour += 12
		}
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as a zero-padded 24h "HH:MM"
// slot label.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
