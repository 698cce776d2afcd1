package booking

import (
	"sync"
	"time"

	"github.com/medscheduler/booking-core/internal/domain/entities"
)

// Store owns the booked-slot collection for the lifetime of a client
// session. It is an explicit handle rather than a process-wide singleton;
// the host application creates one and passes it to whatever issues
// transitions. Transitions on the same identity do not commute, so the
// whole collection sits behind a single mutex.
type Store struct {
	mu    sync.Mutex
	slots []entities.BookedSlot
	now   func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the store's time source, used by tests to pin "now".
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty booking store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Book records a booking for (doctor, day of dateTime, timeStr) and returns
// the resulting record.
func (s *Store) Book(doctor entities.Doctor, dateTime time.Time, timeStr string) entities.BookedSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots = Book(s.slots, doctor, dateTime, timeStr, s.now())
	for _, slot := range s.slots {
		if MatchesBookingKey(slot, doctor, dateTime, timeStr) {
			return slot
		}
	}
	// Book always leaves a matching record behind.
	return entities.BookedSlot{}
}

// Cancel flags the record with the given id as unbooked; unknown ids are a
// no-op.
func (s *Store) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = Cancel(s.slots, id)
}

// Hydrate replaces the collection, typically with the snapshot loaded from
// persistence at session start.
func (s *Store) Hydrate(slots []entities.BookedSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = Init(slots)
}

// Snapshot returns a copy of the current collection.
func (s *Store) Snapshot() []entities.BookedSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]entities.BookedSlot, len(s.slots))
	copy(snapshot, s.slots)
	return snapshot
}

// Len returns the number of records, booked or canceled.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}
