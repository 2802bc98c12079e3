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

type AppointmentUsecase interface {
	Create(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role) ([]dto.AppointmentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	engine          *authz.Engine
	resolver        *SubjectResolver
	appointmentRepo repository.AppointmentRepository
	audit           service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	engine *authz.Engine,
	resolver *SubjectResolver,
	appointmentRepo repository.AppointmentRepository,
	audit service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		engine:          engine,
		resolver:        resolver,
		appointmentRepo: appointmentRepo,
		audit:           audit,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourceAppointment, authz.ActionCreate); err != nil {
		return nil, err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourceAppointment)
	if err != nil {
		return nil, err
	}

	patientID, err := u.engine.SelfAssign(sub, authz.ResourceAppointment, req.Patient)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.AppointmentDate)
	if err != nil {
		return nil, &ValidationError{Message: ErrInvalidDateFormat.Error()}
	}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		DoctorID:        req.Doctor,
		AppointmentDate: date,
		TimeSlot:        req.TimeSlot,
		Reason:          req.Reason,
		Status:          entity.AppointmentStatusScheduled,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, &callerUserID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), appointment)

	expanded, err := u.appointmentRepo.FindByIDExpanded(ctx, appointment.ID)
	if err != nil || expanded == nil {
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(expanded), nil
}

func (u *appointmentUsecase) List(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role) ([]dto.AppointmentResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourceAppointment, authz.ActionList); err != nil {
		return nil, err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourceAppointment)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, u.engine.ListFilter(sub, authz.ResourceAppointment))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByIDExpanded(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.engine.Allow(callerRole, authz.ResourceAppointment, authz.ActionUpdate); err != nil {
		return nil, err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourceAppointment)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	owners := authz.OwnerRefs{Patient: &appointment.PatientID, Doctor: &appointment.DoctorID}
	if err := u.engine.CheckOwnership(sub, authz.ResourceAppointment, authz.ActionUpdate, owners); err != nil {
		return nil, err
	}

	old := *appointment

	if req.AppointmentDate != nil {
		date, err := parseDate(*req.AppointmentDate)
		if err != nil {
			return nil, &ValidationError{Message: ErrInvalidDateFormat.Error()}
		}
		appointment.AppointmentDate = date
	}
	if req.TimeSlot != nil {
		appointment.TimeSlot = *req.TimeSlot
	}
	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, &callerUserID, entity.AuditActionAppointmentUpdate, "appointment", appointment.ID.String(), old, appointment)

	expanded, err := u.appointmentRepo.FindByIDExpanded(ctx, appointment.ID)
	if err != nil || expanded == nil {
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(expanded), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, callerUserID uuid.UUID, callerRole entity.Role, id uuid.UUID) error {
	if err := u.engine.Allow(callerRole, authz.ResourceAppointment, authz.ActionDelete); err != nil {
		return err
	}

	sub, err := u.resolver.Resolve(ctx, callerUserID, callerRole, authz.ResourceAppointment)
	if err != nil {
		return err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	owners := authz.OwnerRefs{Patient: &appointment.PatientID}
	if err := u.engine.CheckOwnership(sub, authz.ResourceAppointment, authz.ActionDelete, owners); err != nil {
		return err
	}

	if err := u.appointmentRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, &callerUserID, entity.AuditActionAppointmentDelete, "appointment", appointment.ID.String(), appointment)
	return nil
}
