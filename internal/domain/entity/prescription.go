package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrescriptionStatus represents the lifecycle status of a prescription.
type PrescriptionStatus string

const (
	PrescriptionStatusActive    PrescriptionStatus = "active"
	PrescriptionStatusFulfilled PrescriptionStatus = "fulfilled"
	PrescriptionStatusExpired   PrescriptionStatus = "expired"
)

// Prescription is issued by a doctor for a patient, optionally tied to an
// appointment.
type Prescription struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"patientId"`
	DoctorID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"doctorId"`
	AppointmentID *uuid.UUID         `gorm:"type:uuid" json:"appointmentId,omitempty"`
	Medications   MedicationList     `gorm:"type:jsonb;not null" json:"medications"`
	Diagnosis     string             `gorm:"type:text;not null" json:"diagnosis"`
	Notes         string             `gorm:"type:text" json:"notes,omitempty"`
	IssuedDate    time.Time          `gorm:"autoCreateTime" json:"issuedDate"`
	Status        PrescriptionStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`

	// Relationships
	Patient *PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
