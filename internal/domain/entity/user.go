package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the fixed account role assigned at registration.
type Role string

const (
	RoleDoctor     Role = "doctor"
	RolePatient    Role = "patient"
	RolePharmacist Role = "pharmacist"
	RoleLabTester  Role = "lab_tester"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDoctor, RolePatient, RolePharmacist, RoleLabTester:
		return true
	}
	return false
}

// User represents the centralized authentication record. The role is
// immutable after registration and determines which profile variant the
// account carries.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      Role      `gorm:"type:varchar(20);not null;index" json:"userType"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
