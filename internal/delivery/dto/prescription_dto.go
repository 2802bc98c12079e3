package dto

import (
	"time"

	"medecos/internal/domain/entity"

	"github.com/google/uuid"
)

type CreatePrescriptionRequest struct {
	Patient     uuid.UUID             `json:"patient" validate:"required"`
	Appointment *uuid.UUID            `json:"appointment"`
	Medications entity.MedicationList `json:"medications" validate:"required,min=1,dive"`
	Diagnosis   string                `json:"diagnosis" validate:"required"`
	Notes       string                `json:"notes"`
}

type UpdatePrescriptionRequest struct {
	Medications *entity.MedicationList `json:"medications" validate:"omitempty,min=1,dive"`
	Diagnosis   *string                `json:"diagnosis"`
	Status      *string                `json:"status" validate:"omitempty,oneof=active fulfilled expired"`
	Notes       *string                `json:"notes"`
}

type PrescriptionResponse struct {
	ID            uuid.UUID             `json:"id"`
	PatientID     uuid.UUID             `json:"patientId"`
	DoctorID      uuid.UUID             `json:"doctorId"`
	AppointmentID *uuid.UUID            `json:"appointmentId,omitempty"`
	Patient       *ProfileSummary       `json:"patient,omitempty"`
	Doctor        *ProfileSummary       `json:"doctor,omitempty"`
	Medications   entity.MedicationList `json:"medications"`
	Diagnosis     string                `json:"diagnosis"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes,omitempty"`
	IssuedDate    time.Time             `json:"issuedDate"`
}
