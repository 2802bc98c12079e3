package repository

import (
	"context"

	"medecos/internal/domain/entity"

	"github.com/google/uuid"
)

// The four profile repositories share a shape: profiles are addressed by
// their own id from domain records and by user id from the calling identity.
// Find methods return (nil, nil) when no row matches.

type DoctorProfileRepository interface {
	Create(ctx context.Context, profile *entity.DoctorProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(ctx context.Context) ([]entity.DoctorProfile, error)
	Update(ctx context.Context, profile *entity.DoctorProfile) error
}

type PatientProfileRepository interface {
	Create(ctx context.Context, profile *entity.PatientProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PatientProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error)
	FindAll(ctx context.Context) ([]entity.PatientProfile, error)
	Update(ctx context.Context, profile *entity.PatientProfile) error
}

type PharmacistProfileRepository interface {
	Create(ctx context.Context, profile *entity.PharmacistProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PharmacistProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PharmacistProfile, error)
	FindAll(ctx context.Context) ([]entity.PharmacistProfile, error)
	Update(ctx context.Context, profile *entity.PharmacistProfile) error
}

type LabTesterProfileRepository interface {
	Create(ctx context.Context, profile *entity.LabTesterProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LabTesterProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.LabTesterProfile, error)
	FindAll(ctx context.Context) ([]entity.LabTesterProfile, error)
	Update(ctx context.Context, profile *entity.LabTesterProfile) error
}
