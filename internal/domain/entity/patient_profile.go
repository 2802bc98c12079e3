package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data.
type PatientProfile struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID        `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	DateOfBirth      time.Time        `gorm:"type:date;not null" json:"dateOfBirth"`
	Gender           string           `gorm:"type:varchar(10)" json:"gender,omitempty"`
	BloodGroup       string           `gorm:"type:varchar(3)" json:"bloodGroup,omitempty"`
	MedicalHistory   MedicalHistory   `gorm:"type:jsonb" json:"medicalHistory,omitempty"`
	Allergies        StringList       `gorm:"type:jsonb" json:"allergies,omitempty"`
	EmergencyContact EmergencyContact `gorm:"type:jsonb" json:"emergencyContact"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Gender values
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)
