package dto

import (
	"medecos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserSummary is the public slice of an identity embedded in profile and
// record responses.
type UserSummary struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ProfileSummary is the populated form of a profile reference inside a
// domain record response.
type ProfileSummary struct {
	ID   uuid.UUID    `json:"id"`
	User *UserSummary `json:"user,omitempty"`
}

// Full profile responses

type DoctorResponse struct {
	ID              uuid.UUID                 `json:"id"`
	UserID          uuid.UUID                 `json:"userId"`
	User            *UserSummary              `json:"user,omitempty"`
	Specialization  string                    `json:"specialization"`
	Qualifications  []string                  `json:"qualifications,omitempty"`
	Experience      int                       `json:"experience"`
	LicenseNumber   string                    `json:"licenseNumber"`
	ConsultationFee decimal.Decimal           `json:"consultationFee"`
	Availability    []entity.AvailabilitySlot `json:"availability,omitempty"`
	Rating          float64                   `json:"rating"`
}

type PatientResponse struct {
	ID               uuid.UUID                 `json:"id"`
	UserID           uuid.UUID                 `json:"userId"`
	User             *UserSummary              `json:"user,omitempty"`
	DateOfBirth      string                    `json:"dateOfBirth"`
	Gender           string                    `json:"gender,omitempty"`
	BloodGroup       string                    `json:"bloodGroup,omitempty"`
	MedicalHistory   []entity.MedicalCondition `json:"medicalHistory,omitempty"`
	Allergies        []string                  `json:"allergies,omitempty"`
	EmergencyContact entity.EmergencyContact   `json:"emergencyContact"`
}

type PharmacistResponse struct {
	ID              uuid.UUID             `json:"id"`
	UserID          uuid.UUID             `json:"userId"`
	User            *UserSummary          `json:"user,omitempty"`
	PharmacyName    string                `json:"pharmacyName"`
	LicenseNumber   string                `json:"licenseNumber"`
	PharmacyAddress string                `json:"pharmacyAddress"`
	OperatingHours  entity.OperatingHours `json:"operatingHours"`
	ServicesOffered []string              `json:"servicesOffered,omitempty"`
	Rating          float64               `json:"rating"`
}

type LabTesterResponse struct {
	ID             uuid.UUID             `json:"id"`
	UserID         uuid.UUID             `json:"userId"`
	User           *UserSummary          `json:"user,omitempty"`
	LabName        string                `json:"labName"`
	LicenseNumber  string                `json:"licenseNumber"`
	LabAddress     string                `json:"labAddress"`
	TestsAvailable []entity.TestOffering `json:"testsAvailable,omitempty"`
	OperatingHours entity.OperatingHours `json:"operatingHours"`
	Accreditations []string              `json:"accreditations,omitempty"`
	Rating         float64               `json:"rating"`
}

// Profile update requests. Absent fields are left untouched.

type UpdateDoctorRequest struct {
	Specialization  *string                    `json:"specialization" validate:"omitempty"`
	Qualifications  *[]string                  `json:"qualifications"`
	Experience      *int                       `json:"experience"`
	ConsultationFee *decimal.Decimal           `json:"consultationFee"`
	Availability    *[]entity.AvailabilitySlot `json:"availability"`
}

type UpdatePatientRequest struct {
	DateOfBirth      *string                    `json:"dateOfBirth"`
	Gender           *string                    `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup       *string                    `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	MedicalHistory   *[]entity.MedicalCondition `json:"medicalHistory"`
	Allergies        *[]string                  `json:"allergies"`
	EmergencyContact *entity.EmergencyContact   `json:"emergencyContact"`
}

type UpdatePharmacistRequest struct {
	PharmacyName    *string                `json:"pharmacyName"`
	PharmacyAddress *string                `json:"pharmacyAddress"`
	OperatingHours  *entity.OperatingHours `json:"operatingHours"`
	ServicesOffered *[]string              `json:"servicesOffered"`
}

type UpdateLabTesterRequest struct {
	LabName        *string                `json:"labName"`
	LabAddress     *string                `json:"labAddress"`
	TestsAvailable *[]entity.TestOffering `json:"testsAvailable"`
	OperatingHours *entity.OperatingHours `json:"operatingHours"`
	Accreditations *[]string              `json:"accreditations"`
}
