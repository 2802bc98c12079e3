package entity

import (
	"github.com/google/uuid"
)

// PharmacistProfile represents pharmacist-specific profile data.
type PharmacistProfile struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	PharmacyName    string         `gorm:"type:varchar(255);not null" json:"pharmacyName"`
	LicenseNumber   string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"licenseNumber"`
	PharmacyAddress string         `gorm:"type:text;not null" json:"pharmacyAddress"`
	OperatingHours  OperatingHours `gorm:"type:jsonb" json:"operatingHours"`
	ServicesOffered StringList     `gorm:"type:jsonb" json:"servicesOffered,omitempty"`
	Rating          float64        `gorm:"default:0" json:"rating"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PharmacistProfile) TableName() string {
	return "pharmacist_profiles"
}
