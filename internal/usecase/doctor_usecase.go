package usecase

import (
	"context"

	"medecos/internal/authz"
	"medecos/internal/converter"
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"
	"medecos/internal/domain/repository"
	"medecos/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	List(ctx context.Context, callerRole entity.Role) ([]dto.DoctorResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	engine     *authz.Engine
	doctorRepo repository.DoctorProfileRepository
	audit      service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	engine *authz.Engine,
	doctorRepo repository.DoctorProfileRepository,
	audit service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		engine:     engine,
		doctorRepo: doctorRepo,
		audit:      audit,
	}
}

func (u *doctorUsecase) List(ctx context.Context, callerRole entity.Role) ([]dto.DoctorResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourceDoctor, authz.ActionList); err != nil {
		return nil, err
	}

	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourceDoctor, authz.ActionUpdate); err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if err := u.engine.CheckProfileOwnership(authz.ResourceDoctor, doctor.UserID, callerUserID); err != nil {
		return nil, err
	}

	old := *doctor

	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Qualifications != nil {
		doctor.Qualifications = *req.Qualifications
	}
	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = *req.ConsultationFee
	}
	if req.Availability != nil {
		doctor.Availability = *req.Availability
	}

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, &callerUserID, entity.AuditActionProfileUpdate, "doctor_profile", doctor.ID.String(), old, doctor)

	return converter.DoctorToResponse(doctor), nil
}
