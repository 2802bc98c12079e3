package entity

import (
	"github.com/google/uuid"
)

// LabTesterProfile represents lab-tester-specific profile data.
type LabTesterProfile struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID        `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	LabName        string           `gorm:"type:varchar(255);not null" json:"labName"`
	LicenseNumber  string           `gorm:"type:varchar(50);uniqueIndex;not null" json:"licenseNumber"`
	LabAddress     string           `gorm:"type:text;not null" json:"labAddress"`
	TestsAvailable TestOfferingList `gorm:"type:jsonb" json:"testsAvailable,omitempty"`
	OperatingHours OperatingHours   `gorm:"type:jsonb" json:"operatingHours"`
	Accreditations StringList       `gorm:"type:jsonb" json:"accreditations,omitempty"`
	Rating         float64          `gorm:"default:0" json:"rating"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (LabTesterProfile) TableName() string {
	return "lab_tester_profiles"
}
