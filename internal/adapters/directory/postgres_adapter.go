// Package directory provides DoctorDirectory implementations backed by the
// reference-data database and by static fixtures.
package directory

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/medscheduler/booking-core/internal/domain/entities"
	"github.com/medscheduler/booking-core/internal/domain/providers"
	"github.com/medscheduler/booking-core/internal/infrastructure/clients/postgres"
	apperrors "github.com/medscheduler/booking-core/pkg/errors"
)

// PostgresAdapter implements the DoctorDirectory interface against the
// read-only doctors table.
type PostgresAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPostgresAdapter creates a new doctor directory adapter.
func NewPostgresAdapter(client *postgres.Client) providers.DoctorDirectory {
	return &PostgresAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// ListDoctors returns every doctor record. Schedule columns are nullable;
// doctors without a published window come back with nil bounds.
func (a *PostgresAdapter) ListDoctors(ctx context.Context) ([]entities.Doctor, error) {
	query, args, err := a.db.Select(
		"name", "timezone", "day_of_week", "available_at", "available_until",
	).From("doctors").
		Order(goqu.I("name").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build doctors query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to list doctors", err)
	}
	defer rows.Close()

	var doctors []entities.Doctor
	for rows.Next() {
		var doc entities.Doctor
		var dayOfWeek, availableAt, availableUntil sql.NullString

		if err := rows.Scan(&doc.Name, &doc.Timezone, &dayOfWeek, &availableAt, &availableUntil); err != nil {
			return nil, apperrors.NewInternalError("failed to scan doctor row", err)
		}
		if dayOfWeek.Valid {
			doc.DayOfWeek = &dayOfWeek.String
		}
		if availableAt.Valid {
			doc.AvailableAt = &availableAt.String
		}
		if availableUntil.Valid {
			doc.AvailableUntil = &availableUntil.String
		}
		doctors = append(doctors, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewExternalError("failed to iterate doctor rows", err)
	}

	return doctors, nil
}
