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

type PrescriptionUsecase interface {
	Create(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	List(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role) ([]dto.PrescriptionResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error)
	Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
}

type prescriptionUsecase struct {
	log              *logrus.Logger
	engine           *authz.Engine
	resolver         *SubjectResolver
	prescriptionRepo repository.PrescriptionRepository
	audit            service.AuditService
}

func NewPrescriptionUsecase(
	log *logrus.Logger,
	engine *authz.Engine,
	resolver *SubjectResolver,
	prescriptionRepo repository.PrescriptionRepository,
	audit service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		log:              log,
		engine:           engine,
		resolver:         resolver,
		prescriptionRepo: prescriptionRepo,
		audit:            audit,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourcePrescription, authz.ActionCreate); err != nil {
		return nil, err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourcePrescription)
	if err != nil {
		return nil, err
	}

	// The issuing doctor is always the caller; the patient is whoever the
	// prescription is written for.
	doctorID, err := u.engine.SelfAssign(sub, authz.ResourcePrescription, nil)
	if err != nil {
		return nil, err
	}

	prescription := &entity.Prescription{
		PatientID:     req.Patient,
		DoctorID:      doctorID,
		AppointmentID: req.Appointment,
		Medications:   req.Medications,
		Diagnosis:     req.Diagnosis,
		Notes:         req.Notes,
		Status:        entity.PrescriptionStatusActive,
	}

	if err := u.prescriptionRepo.Create(ctx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, &callerUserID, entity.AuditActionPrescriptionCreate, "prescription", prescription.ID.String(), prescription)

	expanded, err := u.prescriptionRepo.FindByIDExpanded(ctx, prescription.ID)
	if err != nil || expanded == nil {
		return converter.PrescriptionToResponse(prescription), nil
	}
	return converter.PrescriptionToResponse(expanded), nil
}

func (u *prescriptionUsecase) List(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role) ([]dto.PrescriptionResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourcePrescription, authz.ActionList); err != nil {
		return nil, err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourcePrescription)
	if err != nil {
		return nil, err
	}

	prescriptions, err := u.prescriptionRepo.FindAll(ctx, u.engine.ListFilter(sub, authz.ResourcePrescription))
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByIDExpanded(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourcePrescription, authz.ActionUpdate); err != nil {
		return nil, err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourcePrescription)
	if err != nil {
		return nil, err
	}

	prescription, err := u.prescriptionRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	// Pharmacists carry no reference on prescriptions, so only the issuing
	// doctor is pinned by the ownership gate.
	owners := authz.OwnerRefs{Doctor: &prescription.DoctorID}
	if err := u.engine.CheckOwnership(sub, authz.ResourcePrescription, authz.ActionUpdate, owners); err != nil {
		return nil, err
	}

	old := *prescription

	if req.Medications != nil {
		prescription.Medications = *req.Medications
	}
	if req.Diagnosis != nil {
		prescription.Diagnosis = *req.Diagnosis
	}
	if req.Status != nil {
		prescription.Status = entity.PrescriptionStatus(*req.Status)
	}
	if req.Notes != nil {
		prescription.Notes = *req.Notes
	}

	if err := u.prescriptionRepo.Update(ctx, prescription); err != nil {
		u.log.Warnf("Failed to update prescription: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, &callerUserID, entity.AuditActionPrescriptionUpdate, "prescription", prescription.ID.String(), old, prescription)

	expanded, err := u.prescriptionRepo.FindByIDExpanded(ctx, prescription.ID)
	if err != nil || expanded == nil {
		return converter.PrescriptionToResponse(prescription), nil
	}
	return converter.PrescriptionToResponse(expanded), nil
}
