package usecase

import (
	"context"

	"medecos/internal/domain/entity"

	"github.com/google/uuid"
)

// Hand-written repository mocks. Each method delegates to a func field so
// individual tests override only what they need.

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.createFn == nil {
		user.ID = uuid.New()
		return nil
	}
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn == nil {
		return nil, nil
	}
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

type mockDoctorRepo struct {
	createFn       func(ctx context.Context, profile *entity.DoctorProfile) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error)
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error)
	findAllFn      func(ctx context.Context) ([]entity.DoctorProfile, error)
	updateFn       func(ctx context.Context, profile *entity.DoctorProfile) error
}

func (m *mockDoctorRepo) Create(ctx context.Context, profile *entity.DoctorProfile) error {
	if m.createFn == nil {
		profile.ID = uuid.New()
		return nil
	}
	return m.createFn(ctx, profile)
}

func (m *mockDoctorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.DoctorProfile, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockDoctorRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error) {
	if m.findByUserIDFn == nil {
		return nil, nil
	}
	return m.findByUserIDFn(ctx, userID)
}

func (m *mockDoctorRepo) FindAll(ctx context.Context) ([]entity.DoctorProfile, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx)
}

func (m *mockDoctorRepo) Update(ctx context.Context, profile *entity.DoctorProfile) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, profile)
}

type mockPatientRepo struct {
	createFn       func(ctx context.Context, profile *entity.PatientProfile) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.PatientProfile, error)
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error)
	findAllFn      func(ctx context.Context) ([]entity.PatientProfile, error)
	updateFn       func(ctx context.Context, profile *entity.PatientProfile) error
}

func (m *mockPatientRepo) Create(ctx context.Context, profile *entity.PatientProfile) error {
	if m.createFn == nil {
		profile.ID = uuid.New()
		return nil
	}
	return m.createFn(ctx, profile)
}

func (m *mockPatientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PatientProfile, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockPatientRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error) {
	if m.findByUserIDFn == nil {
		return nil, nil
	}
	return m.findByUserIDFn(ctx, userID)
}

func (m *mockPatientRepo) FindAll(ctx context.Context) ([]entity.PatientProfile, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx)
}

func (m *mockPatientRepo) Update(ctx context.Context, profile *entity.PatientProfile) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, profile)
}

type mockPharmacistRepo struct {
	createFn       func(ctx context.Context, profile *entity.PharmacistProfile) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.PharmacistProfile, error)
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.PharmacistProfile, error)
	findAllFn      func(ctx context.Context) ([]entity.PharmacistProfile, error)
	updateFn       func(ctx context.Context, profile *entity.PharmacistProfile) error
}

func (m *mockPharmacistRepo) Create(ctx context.Context, profile *entity.PharmacistProfile) error {
	if m.createFn == nil {
		profile.ID = uuid.New()
		return nil
	}
	return m.createFn(ctx, profile)
}

func (m *mockPharmacistRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PharmacistProfile, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockPharmacistRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PharmacistProfile, error) {
	if m.findByUserIDFn == nil {
		return nil, nil
	}
	return m.findByUserIDFn(ctx, userID)
}

func (m *mockPharmacistRepo) FindAll(ctx context.Context) ([]entity.PharmacistProfile, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx)
}

func (m *mockPharmacistRepo) Update(ctx context.Context, profile *entity.PharmacistProfile) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, profile)
}

type mockLabTesterRepo struct {
	createFn       func(ctx context.Context, profile *entity.LabTesterProfile) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.LabTesterProfile, error)
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.LabTesterProfile, error)
	findAllFn      func(ctx context.Context) ([]entity.LabTesterProfile, error)
	updateFn       func(ctx context.Context, profile *entity.LabTesterProfile) error
}

func (m *mockLabTesterRepo) Create(ctx context.Context, profile *entity.LabTesterProfile) error {
	if m.createFn == nil {
		profile.ID = uuid.New()
		return nil
	}
	return m.createFn(ctx, profile)
}

func (m *mockLabTesterRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.LabTesterProfile, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockLabTesterRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.LabTesterProfile, error) {
	if m.findByUserIDFn == nil {
		return nil, nil
	}
	return m.findByUserIDFn(ctx, userID)
}

func (m *mockLabTesterRepo) FindAll(ctx context.Context) ([]entity.LabTesterProfile, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx)
}

func (m *mockLabTesterRepo) Update(ctx context.Context, profile *entity.LabTesterProfile) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, profile)
}

type mockAppointmentRepo struct {
	createFn           func(ctx context.Context, appointment *entity.Appointment) error
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	findByIDExpandedFn func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	findAllFn          func(ctx context.Context, filter *entity.RecordFilter) ([]entity.Appointment, error)
	updateFn           func(ctx context.Context, appointment *entity.Appointment) error
	deleteFn           func(ctx context.Context, id uuid.UUID) error
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if m.createFn == nil {
		appointment.ID = uuid.New()
		return nil
	}
	return m.createFn(ctx, appointment)
}

func (m *mockAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockAppointmentRepo) FindByIDExpanded(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.findByIDExpandedFn == nil {
		return nil, nil
	}
	return m.findByIDExpandedFn(ctx, id)
}

func (m *mockAppointmentRepo) FindAll(ctx context.Context, filter *entity.RecordFilter) ([]entity.Appointment, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, filter)
}

func (m *mockAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, appointment)
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockPrescriptionRepo struct {
	createFn           func(ctx context.Context, prescription *entity.Prescription) error
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	findByIDExpandedFn func(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	findAllFn          func(ctx context.Context, filter *entity.RecordFilter) ([]entity.Prescription, error)
	updateFn           func(ctx context.Context, prescription *entity.Prescription) error
}

func (m *mockPrescriptionRepo) Create(ctx context.Context, prescription *entity.Prescription) error {
	if m.createFn == nil {
		prescription.ID = uuid.New()
		return nil
	}
	return m.createFn(ctx, prescription)
}

func (m *mockPrescriptionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockPrescriptionRepo) FindByIDExpanded(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	if m.findByIDExpandedFn == nil {
		return nil, nil
	}
	return m.findByIDExpandedFn(ctx, id)
}

func (m *mockPrescriptionRepo) FindAll(ctx context.Context, filter *entity.RecordFilter) ([]entity.Prescription, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, filter)
}

func (m *mockPrescriptionRepo) Update(ctx context.Context, prescription *entity.Prescription) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, prescription)
}

type mockLabTestRepo struct {
	createFn           func(ctx context.Context, labTest *entity.LabTest) error
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.LabTest, error)
	findByIDExpandedFn func(ctx context.Context, id uuid.UUID) (*entity.LabTest, error)
	findAllFn          func(ctx context.Context, filter *entity.RecordFilter) ([]entity.LabTest, error)
	updateFn           func(ctx context.Context, labTest *entity.LabTest) error
}

func (m *mockLabTestRepo) Create(ctx context.Context, labTest *entity.LabTest) error {
	if m.createFn == nil {
		labTest.ID = uuid.New()
		return nil
	}
	return m.createFn(ctx, labTest)
}

func (m *mockLabTestRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.LabTest, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockLabTestRepo) FindByIDExpanded(ctx context.Context, id uuid.UUID) (*entity.LabTest, error) {
	if m.findByIDExpandedFn == nil {
		return nil, nil
	}
	return m.findByIDExpandedFn(ctx, id)
}

func (m *mockLabTestRepo) FindAll(ctx context.Context, filter *entity.RecordFilter) ([]entity.LabTest, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, filter)
}

func (m *mockLabTestRepo) Update(ctx context.Context, labTest *entity.LabTest) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, labTest)
}

type mockPharmacyOrderRepo struct {
	createFn           func(ctx context.Context, order *entity.PharmacyOrder) error
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.PharmacyOrder, error)
	findByIDExpandedFn func(ctx context.Context, id uuid.UUID) (*entity.PharmacyOrder, error)
	findAllFn          func(ctx context.Context, filter *entity.RecordFilter) ([]entity.PharmacyOrder, error)
	updateFn           func(ctx context.Context, order *entity.PharmacyOrder) error
}

func (m *mockPharmacyOrderRepo) Create(ctx context.Context, order *entity.PharmacyOrder) error {
	if m.createFn == nil {
		order.ID = uuid.New()
		return nil
	}
	return m.createFn(ctx, order)
}

func (m *mockPharmacyOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PharmacyOrder, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockPharmacyOrderRepo) FindByIDExpanded(ctx context.Context, id uuid.UUID) (*entity.PharmacyOrder, error) {
	if m.findByIDExpandedFn == nil {
		return nil, nil
	}
	return m.findByIDExpandedFn(ctx, id)
}

func (m *mockPharmacyOrderRepo) FindAll(ctx context.Context, filter *entity.RecordFilter) ([]entity.PharmacyOrder, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, filter)
}

func (m *mockPharmacyOrderRepo) Update(ctx context.Context, order *entity.PharmacyOrder) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, order)
}

// mockAuditService records actions so tests can assert the trail without a
// database.
type mockAuditService struct {
	actions []string
}

func (m *mockAuditService) LogCreate(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, newValue interface{}) {
	m.actions = append(m.actions, action)
}

func (m *mockAuditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) {
	m.actions = append(m.actions, action)
}

func (m *mockAuditService) LogDelete(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) {
	m.actions = append(m.actions, action)
}
