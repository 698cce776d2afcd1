package entities

import "time"

// BookingEventType identifies a booking state transition.
type BookingEventType string

const (
	BookingEventCreated  BookingEventType = "booking.created"
	BookingEventCanceled BookingEventType = "booking.canceled"
)

// BookingEvent is published on the event bus after a transition completes.
// Delivery is best effort; the state machine never waits on it.
type BookingEvent struct {
	ID         string           `json:"id"`
	Type       BookingEventType `json:"type"`
	Slot       BookedSlot       `json:"slot"`
	OccurredAt time.Time        `json:"occurred_at"`
}
