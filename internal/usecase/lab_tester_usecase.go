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

type LabTesterUsecase interface {
	List(ctx context.Context, callerRole entity.Role) ([]dto.LabTesterResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.LabTesterResponse, error)
	Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdateLabTesterRequest) (*dto.LabTesterResponse, error)
}

type labTesterUsecase struct {
	log           *logrus.Logger
	engine        *authz.Engine
	labTesterRepo repository.LabTesterProfileRepository
	audit         service.AuditService
}

func NewLabTesterUsecase(
	log *logrus.Logger,
	engine *authz.Engine,
	labTesterRepo repository.LabTesterProfileRepository,
	audit service.AuditService,
) LabTesterUsecase {
	return &labTesterUsecase{
		log:           log,
		engine:        engine,
		labTesterRepo: labTesterRepo,
		audit:         audit,
	}
}

func (u *labTesterUsecase) List(ctx context.Context, callerRole entity.Role) ([]dto.LabTesterResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourceLabTester, authz.ActionList); err != nil {
		return nil, err
	}

	testers, err := u.labTesterRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list lab testers: %+v", err)
		return nil, err
	}

	return converter.LabTestersToResponses(testers), nil
}

func (u *labTesterUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.LabTesterResponse, error) {
	tester, err := u.labTesterRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find lab tester: %+v", err)
		return nil, err
	}
	if tester == nil {
		return nil, ErrLabTesterNotFound
	}

	return converter.LabTesterToResponse(tester), nil
}

func (u *labTesterUsecase) Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdateLabTesterRequest) (*dto.LabTesterResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourceLabTester, authz.ActionUpdate); err != nil {
		return nil, err
	}

	tester, err := u.labTesterRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find lab tester: %+v", err)
		return nil, err
	}
	if tester == nil {
		return nil, ErrLabTesterNotFound
	}

	if err := u.engine.CheckProfileOwnership(authz.ResourceLabTester, tester.UserID, callerUserID); err != nil {
		return nil, err
	}

	old := *tester

	if req.LabName != nil {
		tester.LabName = *req.LabName
	}
	if req.LabAddress != nil {
		tester.LabAddress = *req.LabAddress
	}
	if req.TestsAvailable != nil {
		tester.TestsAvailable = *req.TestsAvailable
	}
	if req.OperatingHours != nil {
		tester.OperatingHours = *req.OperatingHours
	}
	if req.Accreditations != nil {
		tester.Accreditations = *req.Accreditations
	}

	if err := u.labTesterRepo.Update(ctx, tester); err != nil {
		u.log.Warnf("Failed to update lab tester: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, &callerUserID, entity.AuditActionProfileUpdate, "lab_tester_profile", tester.ID.String(), old, tester)

	return converter.LabTesterToResponse(tester), nil
}
