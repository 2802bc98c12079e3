package dto

import (
	"time"

	"medecos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateLabTestRequest struct {
	Patient       *uuid.UUID      `json:"patient"`
	Doctor        *uuid.UUID      `json:"doctor"`
	LabTester     uuid.UUID       `json:"labTester" validate:"required"`
	TestName      string          `json:"testName" validate:"required"`
	TestCode      string          `json:"testCode"`
	ScheduledDate string          `json:"scheduledDate" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	Notes         string          `json:"notes"`
}

type UpdateLabTestRequest struct {
	ScheduledDate *string             `json:"scheduledDate"`
	Status        *string             `json:"status" validate:"omitempty,oneof=scheduled sample-collected in-progress completed cancelled"`
	Results       *entity.TestResults `json:"results"`
	Notes         *string             `json:"notes"`
}

type LabTestResponse struct {
	ID            uuid.UUID           `json:"id"`
	PatientID     uuid.UUID           `json:"patientId"`
	DoctorID      *uuid.UUID          `json:"doctorId,omitempty"`
	LabTesterID   uuid.UUID           `json:"labTesterId"`
	Patient       *ProfileSummary     `json:"patient,omitempty"`
	Doctor        *ProfileSummary     `json:"doctor,omitempty"`
	LabTester     *ProfileSummary     `json:"labTester,omitempty"`
	TestName      string              `json:"testName"`
	TestCode      string              `json:"testCode,omitempty"`
	ScheduledDate time.Time           `json:"scheduledDate"`
	Status        string              `json:"status"`
	Results       *entity.TestResults `json:"results,omitempty"`
	Price         decimal.Decimal     `json:"price"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}
