package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data. The profile id,
// not the user id, is what domain records reference.
type DoctorProfile struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID        `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Specialization  string           `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Qualifications  StringList       `gorm:"type:jsonb" json:"qualifications,omitempty"`
	Experience      int              `gorm:"default:0" json:"experience"`
	LicenseNumber   string           `gorm:"type:varchar(50);uniqueIndex;not null" json:"licenseNumber"`
	ConsultationFee decimal.Decimal  `gorm:"type:decimal(10,2);default:0" json:"consultationFee"`
	Availability    AvailabilityList `gorm:"type:jsonb" json:"availability,omitempty"`
	Rating          float64          `gorm:"default:0" json:"rating"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
