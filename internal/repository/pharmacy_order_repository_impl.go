package repository

import (
	"context"
	"errors"

	"medecos/internal/domain/entity"
	domainRepo "medecos/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pharmacyOrderRepository struct {
	db *gorm.DB
}

func NewPharmacyOrderRepository(db *gorm.DB) domainRepo.PharmacyOrderRepository {
	return &pharmacyOrderRepository{db: db}
}

func (r *pharmacyOrderRepository) Create(ctx context.Context, order *entity.PharmacyOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *pharmacyOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PharmacyOrder, error) {
	var order entity.PharmacyOrder
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *pharmacyOrderRepository) FindByIDExpanded(ctx context.Context, id uuid.UUID) (*entity.PharmacyOrder, error) {
	var order entity.PharmacyOrder
	err := r.db.WithContext(ctx).
		Preload("Patient.User").
		Preload("Pharmacist.User").
		Preload("Prescription").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *pharmacyOrderRepository) FindAll(ctx context.Context, filter *entity.RecordFilter) ([]entity.PharmacyOrder, error) {
	var orders []entity.PharmacyOrder
	err := applyRecordFilter(r.db.WithContext(ctx), filter).
		Preload("Patient.User").
		Preload("Pharmacist.User").
		Preload("Prescription").
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *pharmacyOrderRepository) Update(ctx context.Context, order *entity.PharmacyOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}
