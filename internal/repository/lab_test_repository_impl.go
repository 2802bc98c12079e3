package repository

import (
	"context"
	"errors"

	"medecos/internal/domain/entity"
	domainRepo "medecos/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type labTestRepository struct {
	db *gorm.DB
}

func NewLabTestRepository(db *gorm.DB) domainRepo.LabTestRepository {
	return &labTestRepository{db: db}
}

func (r *labTestRepository) Create(ctx context.Context, labTest *entity.LabTest) error {
	return r.db.WithContext(ctx).Create(labTest).Error
}

func (r *labTestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LabTest, error) {
	var labTest entity.LabTest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&labTest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &labTest, nil
}

func (r *labTestRepository) FindByIDExpanded(ctx context.Context, id uuid.UUID) (*entity.LabTest, error) {
	var labTest entity.LabTest
	err := r.db.WithContext(ctx).
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("LabTester.User").
		Where("id = ?", id).
		First(&labTest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &labTest, nil
}

func (r *labTestRepository) FindAll(ctx context.Context, filter *entity.RecordFilter) ([]entity.LabTest, error) {
	var labTests []entity.LabTest
	err := applyRecordFilter(r.db.WithContext(ctx), filter).
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("LabTester.User").
		Order("created_at DESC").
		Find(&labTests).Error
	if err != nil {
		return nil, err
	}
	return labTests, nil
}

func (r *labTestRepository) Update(ctx context.Context, labTest *entity.LabTest) error {
	return r.db.WithContext(ctx).Save(labTest).Error
}
