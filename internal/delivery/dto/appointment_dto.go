package dto

import (
	"time"

	"medecos/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	// Patient may be omitted; when present it must be the caller's own
	// patient profile id.
	Patient         *uuid.UUID      `json:"patient"`
	Doctor          uuid.UUID       `json:"doctor" validate:"required"`
	AppointmentDate string          `json:"appointmentDate" validate:"required"`
	TimeSlot        entity.TimeSlot `json:"timeSlot"`
	Reason          string          `json:"reason" validate:"required"`
	Notes           string          `json:"notes"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate *string          `json:"appointmentDate"`
	TimeSlot        *entity.TimeSlot `json:"timeSlot"`
	Reason          *string          `json:"reason"`
	Status          *string          `json:"status" validate:"omitempty,oneof=scheduled completed cancelled no-show"`
	Notes           *string          `json:"notes"`
}

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	PatientID       uuid.UUID       `json:"patientId"`
	DoctorID        uuid.UUID       `json:"doctorId"`
	Patient         *ProfileSummary `json:"patient,omitempty"`
	Doctor          *ProfileSummary `json:"doctor,omitempty"`
	AppointmentDate time.Time       `json:"appointmentDate"`
	TimeSlot        entity.TimeSlot `json:"timeSlot"`
	Reason          string          `json:"reason"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}
