package usecase

import (
	"context"
	"io"
	"testing"

	"medecos/internal/authz"
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// workflowFixture wires all four record usecases against in-memory stores so
// records created through one usecase are visible to the others.
type workflowFixture struct {
	appointments  AppointmentUsecase
	prescriptions PrescriptionUsecase
	labTests      LabTestUsecase
	orders        PharmacyOrderUsecase
	audit         *mockAuditService

	patientUserID    uuid.UUID
	doctorUserID     uuid.UUID
	pharmacistUserID uuid.UUID
	labTesterUserID  uuid.UUID

	patientProfileID    uuid.UUID
	doctorProfileID     uuid.UUID
	pharmacistProfileID uuid.UUID
	labTesterProfileID  uuid.UUID
}

func newWorkflowFixture() *workflowFixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &workflowFixture{
		audit:               &mockAuditService{},
		patientUserID:       uuid.New(),
		doctorUserID:        uuid.New(),
		pharmacistUserID:    uuid.New(),
		labTesterUserID:     uuid.New(),
		patientProfileID:    uuid.New(),
		doctorProfileID:     uuid.New(),
		pharmacistProfileID: uuid.New(),
		labTesterProfileID:  uuid.New(),
	}

	patientRepo := &mockPatientRepo{
		findByUserIDFn: func(ctx context.Context, uid uuid.UUID) (*entity.PatientProfile, error) {
			if uid == f.patientUserID {
				return &entity.PatientProfile{ID: f.patientProfileID, UserID: uid}, nil
			}
			return nil, nil
		},
	}
	doctorRepo := &mockDoctorRepo{
		findByUserIDFn: func(ctx context.Context, uid uuid.UUID) (*entity.DoctorProfile, error) {
			if uid == f.doctorUserID {
				return &entity.DoctorProfile{ID: f.doctorProfileID, UserID: uid}, nil
			}
			return nil, nil
		},
	}
	pharmacistRepo := &mockPharmacistRepo{
		findByUserIDFn: func(ctx context.Context, uid uuid.UUID) (*entity.PharmacistProfile, error) {
			if uid == f.pharmacistUserID {
				return &entity.PharmacistProfile{ID: f.pharmacistProfileID, UserID: uid}, nil
			}
			return nil, nil
		},
	}
	labTesterRepo := &mockLabTesterRepo{
		findByUserIDFn: func(ctx context.Context, uid uuid.UUID) (*entity.LabTesterProfile, error) {
			if uid == f.labTesterUserID {
				return &entity.LabTesterProfile{ID: f.labTesterProfileID, UserID: uid}, nil
			}
			return nil, nil
		},
	}

	engine := authz.NewEngine()
	resolver := NewSubjectResolver(log, engine, doctorRepo, patientRepo, pharmacistRepo, labTesterRepo)

	appointments := map[uuid.UUID]*entity.Appointment{}
	appointmentRepo := &mockAppointmentRepo{
		createFn: func(ctx context.Context, a *entity.Appointment) error {
			a.ID = uuid.New()
			appointments[a.ID] = a
			return nil
		},
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return appointments[id], nil
		},
	}

	prescriptions := map[uuid.UUID]*entity.Prescription{}
	prescriptionRepo := &mockPrescriptionRepo{
		createFn: func(ctx context.Context, p *entity.Prescription) error {
			p.ID = uuid.New()
			prescriptions[p.ID] = p
			return nil
		},
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
			return prescriptions[id], nil
		},
	}

	labTests := map[uuid.UUID]*entity.LabTest{}
	labTestRepo := &mockLabTestRepo{
		createFn: func(ctx context.Context, lt *entity.LabTest) error {
			lt.ID = uuid.New()
			labTests[lt.ID] = lt
			return nil
		},
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.LabTest, error) {
			return labTests[id], nil
		},
	}

	orders := map[uuid.UUID]*entity.PharmacyOrder{}
	orderRepo := &mockPharmacyOrderRepo{
		createFn: func(ctx context.Context, o *entity.PharmacyOrder) error {
			o.ID = uuid.New()
			orders[o.ID] = o
			return nil
		},
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.PharmacyOrder, error) {
			return orders[id], nil
		},
	}

	f.appointments = NewAppointmentUsecase(log, engine, resolver, appointmentRepo, f.audit)
	f.prescriptions = NewPrescriptionUsecase(log, engine, resolver, prescriptionRepo, f.audit)
	f.labTests = NewLabTestUsecase(log, engine, resolver, labTestRepo, f.audit)
	f.orders = NewPharmacyOrderUsecase(log, engine, resolver, orderRepo, f.audit)
	return f
}

// TestCareWorkflow walks a full episode of care: the patient books an
// appointment, the doctor prescribes, the patient orders the medication, the
// pharmacist fulfils the order, the doctor orders a lab test, and the lab
// tester reports results.
func TestCareWorkflow(t *testing.T) {
	f := newWorkflowFixture()
	ctx := context.Background()

	appointment, err := f.appointments.Create(ctx, f.patientUserID, entity.RolePatient, &dto.CreateAppointmentRequest{
		Doctor:          f.doctorProfileID,
		AppointmentDate: "2026-09-06",
		TimeSlot:        entity.TimeSlot{Start: "10:00", End: "10:30"},
		Reason:          "Annual checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, f.patientProfileID, appointment.PatientID)
	assert.Equal(t, "scheduled", appointment.Status)

	prescription, err := f.prescriptions.Create(ctx, f.doctorUserID, entity.RoleDoctor, &dto.CreatePrescriptionRequest{
		Patient:     f.patientProfileID,
		Appointment: &appointment.ID,
		Medications: entity.MedicationList{
			{MedicineName: "Lisinopril 10mg", Dosage: "1 tablet", Frequency: "Once daily", Duration: "30 days"},
		},
		Diagnosis: "Mild hypertension",
	})
	require.NoError(t, err)
	assert.Equal(t, f.doctorProfileID, prescription.DoctorID)
	assert.Equal(t, "active", prescription.Status)

	order, err := f.orders.Create(ctx, f.patientUserID, entity.RolePatient, &dto.CreatePharmacyOrderRequest{
		Pharmacist:   f.pharmacistProfileID,
		Prescription: &prescription.ID,
		Medications: entity.OrderItemList{
			{MedicineName: "Lisinopril 10mg", Quantity: 30, Price: decimal.NewFromInt(15)},
		},
		TotalAmount: decimal.NewFromInt(15),
	})
	require.NoError(t, err)
	assert.Equal(t, f.patientProfileID, order.PatientID)
	assert.Equal(t, "pending", order.Status)

	ready := "ready"
	order, err = f.orders.Update(ctx, f.pharmacistUserID, entity.RolePharmacist, order.ID, &dto.UpdatePharmacyOrderRequest{Status: &ready})
	require.NoError(t, err)
	assert.Equal(t, "ready", order.Status)
	assert.Nil(t, order.CompletedDate)

	completed := "completed"
	order, err = f.orders.Update(ctx, f.pharmacistUserID, entity.RolePharmacist, order.ID, &dto.UpdatePharmacyOrderRequest{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, "completed", order.Status)
	assert.NotNil(t, order.CompletedDate)

	labTest, err := f.labTests.Create(ctx, f.doctorUserID, entity.RoleDoctor, &dto.CreateLabTestRequest{
		Patient:       &f.patientProfileID,
		LabTester:     f.labTesterProfileID,
		TestName:      "Lipid Profile",
		TestCode:      "LIP001",
		ScheduledDate: "2026-09-08",
		Price:         decimal.NewFromInt(75),
	})
	require.NoError(t, err)
	require.NotNil(t, labTest.DoctorID)
	assert.Equal(t, f.doctorProfileID, *labTest.DoctorID)
	assert.Equal(t, "scheduled", labTest.Status)

	done := "completed"
	labTest, err = f.labTests.Update(ctx, f.labTesterUserID, entity.RoleLabTester, labTest.ID, &dto.UpdateLabTestRequest{
		Status: &done,
		Results: &entity.TestResults{
			Findings:  "Total Cholesterol: 195 mg/dL (Normal)",
			ReportURL: "https://reports.example.com/lipid-profile.pdf",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", labTest.Status)
	require.NotNil(t, labTest.Results)
	assert.Equal(t, "Total Cholesterol: 195 mg/dL (Normal)", labTest.Results.Findings)

	assert.Subset(t, f.audit.actions, []string{
		entity.AuditActionAppointmentCreate,
		entity.AuditActionPrescriptionCreate,
		entity.AuditActionPharmacyOrderCreate,
		entity.AuditActionPharmacyOrderUpdate,
		entity.AuditActionLabTestCreate,
		entity.AuditActionLabTestUpdate,
	})
}
