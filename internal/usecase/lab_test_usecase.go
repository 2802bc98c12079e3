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

type LabTestUsecase interface {
	Create(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, req *dto.CreateLabTestRequest) (*dto.LabTestResponse, error)
	List(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role) ([]dto.LabTestResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.LabTestResponse, error)
	Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdateLabTestRequest) (*dto.LabTestResponse, error)
}

type labTestUsecase struct {
	log         *logrus.Logger
	engine      *authz.Engine
	resolver    *SubjectResolver
	labTestRepo repository.LabTestRepository
	audit       service.AuditService
}

func NewLabTestUsecase(
	log *logrus.Logger,
	engine *authz.Engine,
	resolver *SubjectResolver,
	labTestRepo repository.LabTestRepository,
	audit service.AuditService,
) LabTestUsecase {
	return &labTestUsecase{
		log:         log,
		engine:      engine,
		resolver:    resolver,
		labTestRepo: labTestRepo,
		audit:       audit,
	}
}

func (u *labTestUsecase) Create(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, req *dto.CreateLabTestRequest) (*dto.LabTestResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourceLabTest, authz.ActionCreate); err != nil {
		return nil, err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourceLabTest)
	if err != nil {
		return nil, err
	}

	// Patients book tests for themselves; doctors order tests for a named
	// patient and are recorded as the referring doctor.
	var patientID uuid.UUID
	var doctorID *uuid.UUID
	switch callerRole {
	case entity.RolePatient:
		patientID, err = u.engine.SelfAssign(sub, authz.ResourceLabTest, req.Patient)
		if err != nil {
			return nil, err
		}
		doctorID = req.Doctor
	case entity.RoleDoctor:
		if req.Patient == nil {
			return nil, &ValidationError{Message: "Patient is required"}
		}
		patientID = *req.Patient
		referring, err := u.engine.SelfAssign(sub, authz.ResourceLabTest, req.Doctor)
		if err != nil {
			return nil, err
		}
		doctorID = &referring
	}

	date, err := parseDate(req.ScheduledDate)
	if err != nil {
		return nil, &ValidationError{Message: ErrInvalidDateFormat.Error()}
	}

	labTest := &entity.LabTest{
		PatientID:     patientID,
		DoctorID:      doctorID,
		LabTesterID:   req.LabTester,
		TestName:      req.TestName,
		TestCode:      req.TestCode,
		ScheduledDate: date,
		Status:        entity.LabTestStatusScheduled,
		Price:         req.Price,
		Notes:         req.Notes,
	}

	if err := u.labTestRepo.Create(ctx, labTest); err != nil {
		u.log.Warnf("Failed to create lab test: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, &callerUserID, entity.AuditActionLabTestCreate, "lab_test", labTest.ID.String(), labTest)

	expanded, err := u.labTestRepo.FindByIDExpanded(ctx, labTest.ID)
	if err != nil || expanded == nil {
		return converter.LabTestToResponse(labTest), nil
	}
	return converter.LabTestToResponse(expanded), nil
}

func (u *labTestUsecase) List(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role) ([]dto.LabTestResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourceLabTest, authz.ActionList); err != nil {
		return nil, err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourceLabTest)
	if err != nil {
		return nil, err
	}

	labTests, err := u.labTestRepo.FindAll(ctx, u.engine.ListFilter(sub, authz.ResourceLabTest))
	if err != nil {
		u.log.Warnf("Failed to list lab tests: %+v", err)
		return nil, err
	}

	return converter.LabTestsToResponses(labTests), nil
}

func (u *labTestUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.LabTestResponse, error) {
	labTest, err := u.labTestRepo.FindByIDExpanded(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find lab test: %+v", err)
		return nil, err
	}
	if labTest == nil {
		return nil, ErrLabTestNotFound
	}

	return converter.LabTestToResponse(labTest), nil
}

func (u *labTestUsecase) Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdateLabTestRequest) (*dto.LabTestResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourceLabTest, authz.ActionUpdate); err != nil {
		return nil, err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourceLabTest)
	if err != nil {
		return nil, err
	}

	labTest, err := u.labTestRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find lab test: %+v", err)
		return nil, err
	}
	if labTest == nil {
		return nil, ErrLabTestNotFound
	}

	owners := authz.OwnerRefs{LabTester: &labTest.LabTesterID}
	if err := u.engine.CheckOwnership(sub, authz.ResourceLabTest, authz.ActionUpdate, owners); err != nil {
		return nil, err
	}

	old := *labTest

	if req.ScheduledDate != nil {
		date, err := parseDate(*req.ScheduledDate)
		if err != nil {
			return nil, &ValidationError{Message: ErrInvalidDateFormat.Error()}
		}
		labTest.ScheduledDate = date
	}
	if req.Status != nil {
		labTest.Status = entity.LabTestStatus(*req.Status)
	}
	if req.Results != nil {
		labTest.Results = *req.Results
	}
	if req.Notes != nil {
		labTest.Notes = *req.Notes
	}

	if err := u.labTestRepo.Update(ctx, labTest); err != nil {
		u.log.Warnf("Failed to update lab test: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, &callerUserID, entity.AuditActionLabTestUpdate, "lab_test", labTest.ID.String(), old, labTest)

	expanded, err := u.labTestRepo.FindByIDExpanded(ctx, labTest.ID)
	if err != nil || expanded == nil {
		return converter.LabTestToResponse(labTest), nil
	}
	return converter.LabTestToResponse(expanded), nil
}
