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

type prescriptionFixture struct {
	usecase    PrescriptionUsecase
	repo       *mockPrescriptionRepo
	doctorRepo *mockDoctorRepo
}

func newPrescriptionFixture() *prescriptionFixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	engine := authz.NewEngine()
	doctorRepo := &mockDoctorRepo{}
	resolver := NewSubjectResolver(log, engine, doctorRepo, &mockPatientRepo{}, &mockPharmacistRepo{}, &mockLabTesterRepo{})
	repo := &mockPrescriptionRepo{}

	return &prescriptionFixture{
		usecase:    NewPrescriptionUsecase(log, engine, resolver, repo, &mockAuditService{}),
		repo:       repo,
		doctorRepo: doctorRepo,
	}
}

func medications() entity.MedicationList {
	return entity.MedicationList{{MedicineName: "Amoxicillin", Dosage: "500mg", Frequency: "3x daily", Duration: "7 days"}}
}

func TestCreatePrescriptionAssignsIssuingDoctor(t *testing.T) {
	f := newPrescriptionFixture()
	userID := uuid.New()
	doctorProfileID := uuid.New()
	f.doctorRepo.findByUserIDFn = func(ctx context.Context, uid uuid.UUID) (*entity.DoctorProfile, error) {
		return &entity.DoctorProfile{ID: doctorProfileID, UserID: userID}, nil
	}

	var created *entity.Prescription
	f.repo.createFn = func(ctx context.Context, p *entity.Prescription) error {
		p.ID = uuid.New()
		created = p
		return nil
	}

	_, err := f.usecase.Create(context.Background(), userID, entity.RoleDoctor, &dto.CreatePrescriptionRequest{
		Patient:     uuid.New(),
		Medications: medications(),
		Diagnosis:   "Bacterial infection",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, doctorProfileID, created.DoctorID)
	assert.Equal(t, entity.PrescriptionStatusActive, created.Status)
}

func TestCreatePrescriptionRoleGate(t *testing.T) {
	f := newPrescriptionFixture()

	for _, role := range []entity.Role{entity.RolePatient, entity.RolePharmacist, entity.RoleLabTester} {
		_, err := f.usecase.Create(context.Background(), uuid.New(), role, &dto.CreatePrescriptionRequest{
			Patient:     uuid.New(),
			Medications: medications(),
			Diagnosis:   "Bacterial infection",
		})

		var forbidden *authz.ForbiddenError
		require.ErrorAs(t, err, &forbidden, "role %s", role)
	}
}

func TestUpdatePrescriptionOfOtherDoctorDenied(t *testing.T) {
	f := newPrescriptionFixture()
	userID := uuid.New()
	f.doctorRepo.findByUserIDFn = func(ctx context.Context, uid uuid.UUID) (*entity.DoctorProfile, error) {
		return &entity.DoctorProfile{ID: uuid.New(), UserID: userID}, nil
	}

	prescription := &entity.Prescription{ID: uuid.New(), PatientID: uuid.New(), DoctorID: uuid.New()}
	f.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
		return prescription, nil
	}

	status := "expired"
	_, err := f.usecase.Update(context.Background(), userID, entity.RoleDoctor, prescription.ID, &dto.UpdatePrescriptionRequest{Status: &status})

	var forbidden *authz.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "Cannot update prescriptions of other doctors", forbidden.Message)
}

func TestPharmacistCanFulfilAnyPrescription(t *testing.T) {
	f := newPrescriptionFixture()

	prescription := &entity.Prescription{
		ID:        uuid.New(),
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		Status:    entity.PrescriptionStatusActive,
	}
	f.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
		return prescription, nil
	}

	// Prescriptions carry no pharmacist reference, so any pharmacist passes
	// the ownership gate.
	status := "fulfilled"
	result, err := f.usecase.Update(context.Background(), uuid.New(), entity.RolePharmacist, prescription.ID, &dto.UpdatePrescriptionRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "fulfilled", result.Status)
}
