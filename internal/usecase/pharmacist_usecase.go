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

type PharmacistUsecase interface {
	List(ctx context.Context, callerRole entity.Role) ([]dto.PharmacistResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PharmacistResponse, error)
	Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdatePharmacistRequest) (*dto.PharmacistResponse, error)
}

type pharmacistUsecase struct {
	log            *logrus.Logger
	engine         *authz.Engine
	pharmacistRepo repository.PharmacistProfileRepository
	audit          service.AuditService
}

func NewPharmacistUsecase(
	log *logrus.Logger,
	engine *authz.Engine,
	pharmacistRepo repository.PharmacistProfileRepository,
	audit service.AuditService,
) PharmacistUsecase {
	return &pharmacistUsecase{
		log:            log,
		engine:         engine,
		pharmacistRepo: pharmacistRepo,
		audit:          audit,
	}
}

func (u *pharmacistUsecase) List(ctx context.Context, callerRole entity.Role) ([]dto.PharmacistResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourcePharmacist, authz.ActionList); err != nil {
		return nil, err
	}

	pharmacists, err := u.pharmacistRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list pharmacists: %+v", err)
		return nil, err
	}

	return converter.PharmacistsToResponses(pharmacists), nil
}

func (u *pharmacistUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PharmacistResponse, error) {
	pharmacist, err := u.pharmacistRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacist: %+v", err)
		return nil, err
	}
	if pharmacist == nil {
		return nil, ErrPharmacistNotFound
	}

	return converter.PharmacistToResponse(pharmacist), nil
}

func (u *pharmacistUsecase) Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdatePharmacistRequest) (*dto.PharmacistResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourcePharmacist, authz.ActionUpdate); err != nil {
		return nil, err
	}

	pharmacist, err := u.pharmacistRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacist: %+v", err)
		return nil, err
	}
	if pharmacist == nil {
		return nil, ErrPharmacistNotFound
	}

	if err := u.engine.CheckProfileOwnership(authz.ResourcePharmacist, pharmacist.UserID, callerUserID); err != nil {
		return nil, err
	}

	old := *pharmacist

	if req.PharmacyName != nil {
		pharmacist.PharmacyName = *req.PharmacyName
	}
	if req.PharmacyAddress != nil {
		pharmacist.PharmacyAddress = *req.PharmacyAddress
	}
	if req.OperatingHours != nil {
		pharmacist.OperatingHours = *req.OperatingHours
	}
	if req.ServicesOffered != nil {
		pharmacist.ServicesOffered = *req.ServicesOffered
	}

	if err := u.pharmacistRepo.Update(ctx, pharmacist); err != nil {
		u.log.Warnf("Failed to update pharmacist: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, &callerUserID, entity.AuditActionProfileUpdate, "pharmacist_profile", pharmacist.ID.String(), old, pharmacist)

	return converter.PharmacistToResponse(pharmacist), nil
}
