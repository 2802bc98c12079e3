package dto

import (
	"encoding/json"

	"medecos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterRequest carries the shared identity fields plus the role-specific
// profile document. AdditionalInfo is decoded into the variant matching
// UserType; an unrecognized user type is a validation failure.
type RegisterRequest struct {
	Name           string          `json:"name" validate:"required,min=2"`
	Email          string          `json:"email" validate:"required,email"`
	Password       string          `json:"password" validate:"required,min=6"`
	UserType       string          `json:"userType" validate:"required"`
	Phone          string          `json:"phone" validate:"omitempty"`
	Address        string          `json:"address" validate:"omitempty"`
	AdditionalInfo json.RawMessage `json:"additionalInfo"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Role-specific profile documents supplied under additionalInfo.

type DoctorInfo struct {
	Specialization  string                    `json:"specialization" validate:"required"`
	Qualifications  []string                  `json:"qualifications"`
	Experience      int                       `json:"experience"`
	LicenseNumber   string                    `json:"licenseNumber" validate:"required"`
	ConsultationFee decimal.Decimal           `json:"consultationFee"`
	Availability    []entity.AvailabilitySlot `json:"availability"`
}

type PatientInfo struct {
	DateOfBirth      string                    `json:"dateOfBirth" validate:"required"`
	Gender           string                    `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup       string                    `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	MedicalHistory   []entity.MedicalCondition `json:"medicalHistory"`
	Allergies        []string                  `json:"allergies"`
	EmergencyContact entity.EmergencyContact   `json:"emergencyContact"`
}

type PharmacistInfo struct {
	PharmacyName    string                `json:"pharmacyName" validate:"required"`
	LicenseNumber   string                `json:"licenseNumber" validate:"required"`
	PharmacyAddress string                `json:"pharmacyAddress" validate:"required"`
	OperatingHours  entity.OperatingHours `json:"operatingHours"`
	ServicesOffered []string              `json:"servicesOffered"`
}

type LabTesterInfo struct {
	LabName        string                `json:"labName" validate:"required"`
	LicenseNumber  string                `json:"licenseNumber" validate:"required"`
	LabAddress     string                `json:"labAddress" validate:"required"`
	TestsAvailable []entity.TestOffering `json:"testsAvailable"`
	OperatingHours entity.OperatingHours `json:"operatingHours"`
	Accreditations []string              `json:"accreditations"`
}

// Response DTOs

type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	UserType string    `json:"userType"`
}

type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}
