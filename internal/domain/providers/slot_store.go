package providers

import (
	"context"

	"github.com/medscheduler/booking-core/internal/domain/entities"
)

// SlotStore is the persistence collaborator for the booked-slot collection.
// The booking core mirrors its full snapshot after every transition and
// loads once at session start; the store owns durability, the core owns
// the collection.
type SlotStore interface {
	// LoadAll returns every persisted booking record. A store that has
	// never been written returns an empty slice, not an error.
	LoadAll(ctx context.Context) ([]entities.BookedSlot, error)

	// SaveAll replaces the persisted collection with the given snapshot.
	SaveAll(ctx context.Context, slots []entities.BookedSlot) error
}
