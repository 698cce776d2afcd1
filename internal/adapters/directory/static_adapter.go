package directory

import (
	"context"

	"github.com/medscheduler/booking-core/internal/domain/entities"
	"github.com/medscheduler/booking-core/internal/domain/providers"
)

// StaticAdapter serves a fixed doctor list, for local development and
// tests where no directory database is running.
type StaticAdapter struct {
	doctors []entities.Doctor
}

// NewStaticAdapter creates a directory over the given records.
func NewStaticAdapter(doctors []entities.Doctor) providers.DoctorDirectory {
	return &StaticAdapter{doctors: doctors}
}

// ListDoctors returns a copy of the fixed records.
func (a *StaticAdapter) ListDoctors(ctx context.Context) ([]entities.Doctor, error) {
	out := make([]entities.Doctor, len(a.doctors))
	copy(out, a.doctors)
	return out, nil
}
