package repository

import (
	"context"
	"errors"

	"medecos/internal/domain/entity"
	domainRepo "medecos/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pharmacistProfileRepository struct {
	db *gorm.DB
}

func NewPharmacistProfileRepository(db *gorm.DB) domainRepo.PharmacistProfileRepository {
	return &pharmacistProfileRepository{db: db}
}

func (r *pharmacistProfileRepository) Create(ctx context.Context, profile *entity.PharmacistProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *pharmacistProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PharmacistProfile, error) {
	var profile entity.PharmacistProfile
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *pharmacistProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PharmacistProfile, error) {
	var profile entity.PharmacistProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *pharmacistProfileRepository) FindAll(ctx context.Context) ([]entity.PharmacistProfile, error) {
	var profiles []entity.PharmacistProfile
	err := r.db.WithContext(ctx).Preload("User").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *pharmacistProfileRepository) Update(ctx context.Context, profile *entity.PharmacistProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
