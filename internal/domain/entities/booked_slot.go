package entities

import (
	"fmt"
	"time"
)

// BookedSlot is a single booking record. It is the unit owned by the booking
// state machine and the unit mirrored into the persistence collaborator.
//
// Date and BookedTime are epoch milliseconds so the persisted JSON shape is a
// plain array of records with numeric timestamps. Date carries day precision;
// the start time of the slot lives in Time as a 24h "HH:MM" string.
type BookedSlot struct {
	ID             string `json:"id"`
	DoctorName     string `json:"doctorName"`
	DoctorTimeZone string `json:"doctorTimeZone"`
	DateMS         int64  `json:"date"`
	Time           string `json:"time"`
	BookedTimeMS   int64  `json:"bookedTime"`
	IsBooked       bool   `json:"isBooked"`
}

// Date returns the slot's calendar date as a time.Time.
func (s BookedSlot) Date() time.Time {
	return time.UnixMilli(s.DateMS)
}

// BookedAt returns the timestamp of the last booking action.
func (s BookedSlot) BookedAt() time.Time {
	return time.UnixMilli(s.BookedTimeMS)
}

// UniqueID derives the deterministic booking key
// "{doctorName}_{YYYY-MM-DD}_{time}". The calendar day is taken from the
// slot date's UTC representation. Empty name or time segments degrade to a
// key with an empty segment; two bookings for the same doctor, day and time
// always produce the same key.
func (s BookedSlot) UniqueID() string {
	day := s.Date().UTC().Format("2006-01-02")
	return fmt.Sprintf("%s_%s_%s", s.DoctorName, day, s.Time)
}
