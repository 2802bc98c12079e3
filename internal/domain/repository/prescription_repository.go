package repository

import (
	"context"

	"medecos/internal/domain/entity"

	"github.com/google/uuid"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entity.Prescription) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	FindByIDExpanded(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	FindAll(ctx context.Context, filter *entity.RecordFilter) ([]entity.Prescription, error)
	Update(ctx context.Context, prescription *entity.Prescription) error
}
