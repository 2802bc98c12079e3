package repository

import (
	"context"

	"medecos/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	// FindByID returns the bare record, (nil, nil) when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// FindByIDExpanded additionally loads the referenced profiles and their
	// identities.
	FindByIDExpanded(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// FindAll lists expanded records; a nil filter returns everything.
	FindAll(ctx context.Context, filter *entity.RecordFilter) ([]entity.Appointment, error)
	// Update persists the whole record, last write wins.
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
