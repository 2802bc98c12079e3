package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment. Any authorized
// caller may set any status in one update; there is no transition guard.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

// Appointment is a consultation slot booked by a patient with a doctor.
// Owned jointly by the referenced patient and doctor profiles.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patientId"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctorId"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointmentDate"`
	TimeSlot        TimeSlot          `gorm:"type:jsonb" json:"timeSlot"`
	Reason          string            `gorm:"type:text;not null" json:"reason"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Patient *PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
