package usecase

import (
	"context"

	"medecos/internal/authz"
	"medecos/internal/domain/entity"
	"medecos/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SubjectResolver turns an authenticated identity into an authz.Subject,
// looking up the caller's role profile only when the policy for the target
// resource actually needs it.
type SubjectResolver struct {
	log            *logrus.Logger
	engine         *authz.Engine
	doctorRepo     repository.DoctorProfileRepository
	patientRepo    repository.PatientProfileRepository
	pharmacistRepo repository.PharmacistProfileRepository
	labTesterRepo  repository.LabTesterProfileRepository
}

func NewSubjectResolver(
	log *logrus.Logger,
	engine *authz.Engine,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	pharmacistRepo repository.PharmacistProfileRepository,
	labTesterRepo repository.LabTesterProfileRepository,
) *SubjectResolver {
	return &SubjectResolver{
		log:            log,
		engine:         engine,
		doctorRepo:     doctorRepo,
		patientRepo:    patientRepo,
		pharmacistRepo: pharmacistRepo,
		labTesterRepo:  labTesterRepo,
	}
}

// Resolve builds the Subject for a call against the given resource. When
// the caller's role has no reference on the resource the profile lookup is
// skipped and ProfileID stays zero.
func (r *SubjectResolver) Resolve(ctx context.Context, userID uuid.UUID, role entity.Role, res authz.Resource) (authz.Subject, error) {
	sub := authz.Subject{UserID: userID, Role: role}
	if !r.engine.NeedsProfile(role, res) {
		return sub, nil
	}

	profileID, err := r.profileID(ctx, userID, role)
	if err != nil {
		return authz.Subject{}, err
	}
	sub.ProfileID = profileID
	return sub, nil
}

func (r *SubjectResolver) profileID(ctx context.Context, userID uuid.UUID, role entity.Role) (uuid.UUID, error) {
	switch role {
	case entity.RoleDoctor:
		profile, err := r.doctorRepo.FindByUserID(ctx, userID)
		if err != nil {
			r.log.Warnf("Failed to find doctor profile: %+v", err)
			return uuid.Nil, err
		}
		if profile == nil {
			return uuid.Nil, ErrDoctorProfileNotFound
		}
		return profile.ID, nil
	case entity.RolePatient:
		profile, err := r.patientRepo.FindByUserID(ctx, userID)
		if err != nil {
			r.log.Warnf("Failed to find patient profile: %+v", err)
			return uuid.Nil, err
		}
		if profile == nil {
			return uuid.Nil, ErrPatientProfileNotFound
		}
		return profile.ID, nil
	case entity.RolePharmacist:
		profile, err := r.pharmacistRepo.FindByUserID(ctx, userID)
		if err != nil {
			r.log.Warnf("Failed to find pharmacist profile: %+v", err)
			return uuid.Nil, err
		}
		if profile == nil {
			return uuid.Nil, ErrPharmacistProfileNotFound
		}
		return profile.ID, nil
	case entity.RoleLabTester:
		profile, err := r.labTesterRepo.FindByUserID(ctx, userID)
		if err != nil {
			r.log.Warnf("Failed to find lab tester profile: %+v", err)
			return uuid.Nil, err
		}
		if profile == nil {
			return uuid.Nil, ErrLabTesterProfileNotFound
		}
		return profile.ID, nil
	}
	return uuid.Nil, ErrInvalidUserType
}
