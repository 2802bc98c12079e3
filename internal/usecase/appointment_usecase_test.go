package usecase

import (
	"context"
	"io"
	"testing"

	"medecos/internal/authz"
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentFixture struct {
	usecase     AppointmentUsecase
	repo        *mockAppointmentRepo
	patientRepo *mockPatientRepo
	doctorRepo  *mockDoctorRepo
	audit       *mockAuditService
}

func newAppointmentFixture() *appointmentFixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	engine := authz.NewEngine()
	patientRepo := &mockPatientRepo{}
	doctorRepo := &mockDoctorRepo{}
	resolver := NewSubjectResolver(log, engine, doctorRepo, patientRepo, &mockPharmacistRepo{}, &mockLabTesterRepo{})
	repo := &mockAppointmentRepo{}
	audit := &mockAuditService{}

	return &appointmentFixture{
		usecase:     NewAppointmentUsecase(log, engine, resolver, repo, audit),
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		audit:       audit,
	}
}

func (f *appointmentFixture) withPatientProfile(userID, profileID uuid.UUID) {
	f.patientRepo.findByUserIDFn = func(ctx context.Context, uid uuid.UUID) (*entity.PatientProfile, error) {
		if uid == userID {
			return &entity.PatientProfile{ID: profileID, UserID: userID}, nil
		}
		return nil, nil
	}
}

func TestCreateAppointmentSelfAssignsPatient(t *testing.T) {
	f := newAppointmentFixture()
	userID := uuid.New()
	profileID := uuid.New()
	f.withPatientProfile(userID, profileID)

	var created *entity.Appointment
	f.repo.createFn = func(ctx context.Context, a *entity.Appointment) error {
		a.ID = uuid.New()
		created = a
		return nil
	}

	_, err := f.usecase.Create(context.Background(), userID, entity.RolePatient, &dto.CreateAppointmentRequest{
		Doctor:          uuid.New(),
		AppointmentDate: "2026-09-15",
		Reason:          "Checkup",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, profileID, created.PatientID)
	assert.Equal(t, entity.AppointmentStatusScheduled, created.Status)
	assert.Contains(t, f.audit.actions, entity.AuditActionAppointmentCreate)
}

func TestCreateAppointmentForOtherPatientDenied(t *testing.T) {
	f := newAppointmentFixture()
	userID := uuid.New()
	f.withPatientProfile(userID, uuid.New())

	other := uuid.New()
	_, err := f.usecase.Create(context.Background(), userID, entity.RolePatient, &dto.CreateAppointmentRequest{
		Patient:         &other,
		Doctor:          uuid.New(),
		AppointmentDate: "2026-09-15",
		Reason:          "Checkup",
	})

	var forbidden *authz.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "Cannot create appointments for other patients", forbidden.Message)
}

func TestCreateAppointmentRoleGate(t *testing.T) {
	f := newAppointmentFixture()

	for _, role := range []entity.Role{entity.RoleDoctor, entity.RolePharmacist, entity.RoleLabTester} {
		_, err := f.usecase.Create(context.Background(), uuid.New(), role, &dto.CreateAppointmentRequest{
			Doctor:          uuid.New(),
			AppointmentDate: "2026-09-15",
			Reason:          "Checkup",
		})

		var forbidden *authz.ForbiddenError
		require.ErrorAs(t, err, &forbidden, "role %s", role)
		assert.Equal(t, "Access denied", forbidden.Message)
	}
}

func TestListAppointmentsScopedToOwnProfile(t *testing.T) {
	f := newAppointmentFixture()
	userID := uuid.New()
	profileID := uuid.New()
	f.withPatientProfile(userID, profileID)

	var gotFilter *entity.RecordFilter
	f.repo.findAllFn = func(ctx context.Context, filter *entity.RecordFilter) ([]entity.Appointment, error) {
		gotFilter = filter
		return nil, nil
	}

	_, err := f.usecase.List(context.Background(), userID, entity.RolePatient)
	require.NoError(t, err)
	require.NotNil(t, gotFilter)
	require.NotNil(t, gotFilter.PatientID)
	assert.Equal(t, profileID, *gotFilter.PatientID)
}

func TestListAppointmentsUnscopedForPharmacist(t *testing.T) {
	f := newAppointmentFixture()

	var gotFilter *entity.RecordFilter
	called := false
	f.repo.findAllFn = func(ctx context.Context, filter *entity.RecordFilter) ([]entity.Appointment, error) {
		called = true
		gotFilter = filter
		return nil, nil
	}

	// Pharmacists carry no reference on appointments, so the collection is
	// returned unfiltered.
	_, err := f.usecase.List(context.Background(), uuid.New(), entity.RolePharmacist)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Nil(t, gotFilter)
}

func TestUpdateAppointmentOwnership(t *testing.T) {
	f := newAppointmentFixture()
	userID := uuid.New()
	profileID := uuid.New()
	f.withPatientProfile(userID, profileID)

	appointment := &entity.Appointment{
		ID:        uuid.New(),
		PatientID: uuid.New(), // someone else's appointment
		DoctorID:  uuid.New(),
		Status:    entity.AppointmentStatusScheduled,
	}
	f.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	status := "cancelled"
	_, err := f.usecase.Update(context.Background(), userID, entity.RolePatient, appointment.ID, &dto.UpdateAppointmentRequest{Status: &status})

	var forbidden *authz.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "Cannot update appointments of other patients", forbidden.Message)
}

func TestUpdateAppointmentByOwningDoctor(t *testing.T) {
	f := newAppointmentFixture()
	userID := uuid.New()
	profileID := uuid.New()
	f.doctorRepo.findByUserIDFn = func(ctx context.Context, uid uuid.UUID) (*entity.DoctorProfile, error) {
		return &entity.DoctorProfile{ID: profileID, UserID: userID}, nil
	}

	appointment := &entity.Appointment{
		ID:        uuid.New(),
		PatientID: uuid.New(),
		DoctorID:  profileID,
		Status:    entity.AppointmentStatusScheduled,
	}
	f.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	status := "completed"
	result, err := f.usecase.Update(context.Background(), userID, entity.RoleDoctor, appointment.ID, &dto.UpdateAppointmentRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
}

func TestDeleteAppointment(t *testing.T) {
	f := newAppointmentFixture()
	userID := uuid.New()
	profileID := uuid.New()
	f.withPatientProfile(userID, profileID)

	appointment := &entity.Appointment{ID: uuid.New(), PatientID: profileID, DoctorID: uuid.New()}
	f.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	deleted := false
	f.repo.deleteFn = func(ctx context.Context, id uuid.UUID) error {
		deleted = true
		return nil
	}

	require.NoError(t, f.usecase.Delete(context.Background(), userID, entity.RolePatient, appointment.ID))
	assert.True(t, deleted)
	assert.Contains(t, f.audit.actions, entity.AuditActionAppointmentDelete)
}

func TestDeleteAppointmentOfOtherPatientDenied(t *testing.T) {
	f := newAppointmentFixture()
	userID := uuid.New()
	f.withPatientProfile(userID, uuid.New())

	appointment := &entity.Appointment{ID: uuid.New(), PatientID: uuid.New(), DoctorID: uuid.New()}
	f.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return appointment, nil
	}

	err := f.usecase.Delete(context.Background(), userID, entity.RolePatient, appointment.ID)

	var forbidden *authz.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "Cannot cancel appointments of other patients", forbidden.Message)
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	f := newAppointmentFixture()
	userID := uuid.New()
	f.withPatientProfile(userID, uuid.New())

	status := "cancelled"
	_, err := f.usecase.Update(context.Background(), userID, entity.RolePatient, uuid.New(), &dto.UpdateAppointmentRequest{Status: &status})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCreateAppointmentMissingProfile(t *testing.T) {
	f := newAppointmentFixture()

	// Authenticated patient whose profile row is gone.
	_, err := f.usecase.Create(context.Background(), uuid.New(), entity.RolePatient, &dto.CreateAppointmentRequest{
		Doctor:          uuid.New(),
		AppointmentDate: "2026-09-15",
		Reason:          "Checkup",
	})
	assert.ErrorIs(t, err, ErrPatientProfileNotFound)
}
