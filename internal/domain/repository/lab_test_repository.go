package repository

import (
	"context"

	"medecos/internal/domain/entity"

	"github.com/google/uuid"
)

type LabTestRepository interface {
	Create(ctx context.Context, labTest *entity.LabTest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LabTest, error)
	FindByIDExpanded(ctx context.Context, id uuid.UUID) (*entity.LabTest, error)
	FindAll(ctx context.Context, filter *entity.RecordFilter) ([]entity.LabTest, error)
	Update(ctx context.Context, labTest *entity.LabTest) error
}
