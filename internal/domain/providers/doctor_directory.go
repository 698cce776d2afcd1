package providers

import (
	"context"

	"github.com/medscheduler/booking-core/internal/domain/entities"
)

// DoctorDirectory supplies read-only doctor reference data. The booking core
// only consumes name, timezone and the weekly availability window.
type DoctorDirectory interface {
	ListDoctors(ctx context.Context) ([]entities.Doctor, error)
}
