package repository

import (
	"context"
	"errors"

	"medecos/internal/domain/entity"
	domainRepo "medecos/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type labTesterProfileRepository struct {
	db *gorm.DB
}

func NewLabTesterProfileRepository(db *gorm.DB) domainRepo.LabTesterProfileRepository {
	return &labTesterProfileRepository{db: db}
}

func (r *labTesterProfileRepository) Create(ctx context.Context, profile *entity.LabTesterProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *labTesterProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LabTesterProfile, error) {
	var profile entity.LabTesterProfile
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *labTesterProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.LabTesterProfile, error) {
	var profile entity.LabTesterProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *labTesterProfileRepository) FindAll(ctx context.Context) ([]entity.LabTesterProfile, error) {
	var profiles []entity.LabTesterProfile
	err := r.db.WithContext(ctx).Preload("User").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *labTesterProfileRepository) Update(ctx context.Context, profile *entity.LabTesterProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
