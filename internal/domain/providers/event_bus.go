package providers

import (
	"context"

	"github.com/medscheduler/booking-core/internal/domain/entities"
)

// EventBus fans out booking events to interested consumers (reminder
// schedulers, sync workers). Publishing is fire-and-forget from the core's
// point of view: a failed publish is logged by the caller, never surfaced
// into the state machine.
type EventBus interface {
	// Publish publishes an event to all subscribers of a channel.
	Publish(ctx context.Context, channel string, event *entities.BookingEvent) error

	// Subscribe subscribes to events on a channel. The returned channel is
	// closed when ctx is done or the bus shuts down.
	Subscribe(ctx context.Context, channel string) (<-chan *entities.BookingEvent, error)

	// Close closes the event bus and all subscriptions.
	Close() error
}

// EventChannelBookings is the channel carrying every booking transition.
const EventChannelBookings = "bookings:updates"

// DoctorChannel returns the per-doctor booking channel name.
func DoctorChannel(doctorName string) string {
	return "bookings:" + doctorName
}
