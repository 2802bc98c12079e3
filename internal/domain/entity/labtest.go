package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LabTestStatus represents the processing status of a lab test.
type LabTestStatus string

const (
	LabTestStatusScheduled       LabTestStatus = "scheduled"
	LabTestStatusSampleCollected LabTestStatus = "sample-collected"
	LabTestStatusInProgress      LabTestStatus = "in-progress"
	LabTestStatusCompleted       LabTestStatus = "completed"
	LabTestStatusCancelled       LabTestStatus = "cancelled"
)

// LabTest is a diagnostic test ordered for a patient and assigned to a lab
// tester. The doctor reference is optional: patients may book tests directly.
type LabTest struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"patientId"`
	DoctorID      *uuid.UUID      `gorm:"type:uuid;index" json:"doctorId,omitempty"`
	LabTesterID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"labTesterId"`
	TestName      string          `gorm:"type:varchar(255);not null" json:"testName"`
	TestCode      string          `gorm:"type:varchar(50)" json:"testCode,omitempty"`
	ScheduledDate time.Time       `gorm:"not null" json:"scheduledDate"`
	Status        LabTestStatus   `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Results       TestResults     `gorm:"type:jsonb" json:"results"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`
	Notes         string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Patient   *PatientProfile   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    *DoctorProfile    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	LabTester *LabTesterProfile `gorm:"foreignKey:LabTesterID" json:"labTester,omitempty"`
}

func (LabTest) TableName() string {
	return "lab_tests"
}
