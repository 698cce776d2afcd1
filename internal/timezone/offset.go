// Package timezone converts IANA zone names into UTC offsets and computes
// the wall-clock delta between two zones. Unknown zones never produce an
// error: offset data is advisory, so failures degrade to a zero offset and
// are only logged.
package timezone

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// offsetSeconds resolves the UTC offset of an IANA zone at the reference
// instant. DST means the answer depends on when you ask.
func offsetSeconds(name string, at time.Time) (int, bool) {
	if name == "" {
		return 0, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return 0, false
	}
	_, offset := at.In(loc).Zone()
	return offset, true
}

// UTCOffsetLabel renders a zone's current UTC offset as a "UTC+8" style
// label. Unknown or unparseable zones yield the empty string; callers must
// treat that as "unknown, offset = 0".
func UTCOffsetLabel(name string) string {
	return offsetLabelAt(name, time.Now())
}

func offsetLabelAt(name string, at time.Time) string {
	offset, ok := offsetSeconds(name, at)
	if !ok {
		log.Warn().Str("timezone", name).Msg("unknown timezone, no offset label")
		return ""
	}
	return formatLabel(offset)
}

func formatLabel(offsetSec int) string {
	return fmt.Sprintf("UTC%+d", offsetSec/3600)
}

// UTCOffsetHours returns a zone's current UTC offset as a signed whole hour
// count, 0 when the zone is unknown. Fractional offsets truncate toward
// zero, matching the whole-hour label format.
func UTCOffsetHours(name string) int {
	return offsetHoursAt(name, time.Now())
}

func offsetHoursAt(name string, at time.Time) int {
	offset, ok := offsetSeconds(name, at)
	if !ok {
		log.Warn().Str("timezone", name).Msg("unknown timezone, offset defaults to 0")
		return 0
	}
	return offset / 3600
}

// UTCIntervalMS returns the signed millisecond delta that converts a
// timestamp anchored in from's wall-clock reading into to's. Textually
// identical zones always yield 0, and either zone being unknown degrades
// its offset to 0.
func UTCIntervalMS(from, to string) int64 {
	return intervalMSAt(from, to, time.Now())
}

func intervalMSAt(from, to string, at time.Time) int64 {
	if from == to {
		return 0
	}

	fromOffset, ok := offsetSeconds(from, at)
	if !ok {
		log.Warn().Str("timezone", from).Msg("unknown from timezone, offset defaults to 0")
	}
	toOffset, ok := offsetSeconds(to, at)
	if !ok {
		log.Warn().Str("timezone", to).Msg("unknown to timezone, offset defaults to 0")
	}

	// Both offsets are whole seconds from the zone database, scaled to
	// milliseconds in one place. A reading of 10:00 in `from` names an
	// instant (fromOffset-toOffset) away from the same reading in `to`.
	return int64(fromOffset-toOffset) * 1000
}
