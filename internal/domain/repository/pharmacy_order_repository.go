package repository

import (
	"context"

	"medecos/internal/domain/entity"

	"github.com/google/uuid"
)

type PharmacyOrderRepository interface {
	Create(ctx context.Context, order *entity.PharmacyOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PharmacyOrder, error)
	FindByIDExpanded(ctx context.Context, id uuid.UUID) (*entity.PharmacyOrder, error)
	FindAll(ctx context.Context, filter *entity.RecordFilter) ([]entity.PharmacyOrder, error)
	Update(ctx context.Context, order *entity.PharmacyOrder) error
}
