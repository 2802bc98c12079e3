package usecase

import (
	"context"
	"time"

	"medecos/internal/authz"
	"medecos/internal/converter"
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"
	"medecos/internal/domain/repository"
	"medecos/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	List(ctx context.Context, callerRole entity.Role) ([]dto.PatientResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	engine      *authz.Engine
	patientRepo repository.PatientProfileRepository
	audit       service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	engine *authz.Engine,
	patientRepo repository.PatientProfileRepository,
	audit service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:         log,
		engine:      engine,
		patientRepo: patientRepo,
		audit:       audit,
	}
}

func (u *patientUsecase) List(ctx context.Context, callerRole entity.Role) ([]dto.PatientResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourcePatient, authz.ActionList); err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourcePatient, authz.ActionUpdate); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if err := u.engine.CheckProfileOwnership(authz.ResourcePatient, patient.UserID, callerUserID); err != nil {
		return nil, err
	}

	old := *patient

	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, &ValidationError{Message: ErrInvalidDateFormat.Error()}
		}
		patient.DateOfBirth = dob
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.BloodGroup != nil {
		patient.BloodGroup = *req.BloodGroup
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = *req.MedicalHistory
	}
	if req.Allergies != nil {
		patient.Allergies = *req.Allergies
	}
	if req.EmergencyContact != nil {
		patient.EmergencyContact = *req.EmergencyContact
	}

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, &callerUserID, entity.AuditActionProfileUpdate, "patient_profile", patient.ID.String(), old, patient)

	return converter.PatientToResponse(patient), nil
}
