package dto

import (
	"time"

	"medecos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePharmacyOrderRequest struct {
	Patient         *uuid.UUID           `json:"patient"`
	Pharmacist      uuid.UUID            `json:"pharmacist" validate:"required"`
	Prescription    *uuid.UUID           `json:"prescription"`
	Medications     entity.OrderItemList `json:"medications" validate:"required,min=1,dive"`
	TotalAmount     decimal.Decimal      `json:"totalAmount"`
	DeliveryType    string               `json:"deliveryType" validate:"omitempty,oneof=pickup delivery"`
	DeliveryAddress string               `json:"deliveryAddress"`
}

type UpdatePharmacyOrderRequest struct {
	Status          *string               `json:"status" validate:"omitempty,oneof=pending processing ready completed cancelled"`
	Medications     *entity.OrderItemList `json:"medications" validate:"omitempty,min=1,dive"`
	TotalAmount     *decimal.Decimal      `json:"totalAmount"`
	DeliveryType    *string               `json:"deliveryType" validate:"omitempty,oneof=pickup delivery"`
	DeliveryAddress *string               `json:"deliveryAddress"`
}

type PharmacyOrderResponse struct {
	ID              uuid.UUID             `json:"id"`
	PatientID       uuid.UUID             `json:"patientId"`
	PharmacistID    uuid.UUID             `json:"pharmacistId"`
	PrescriptionID  *uuid.UUID            `json:"prescriptionId,omitempty"`
	Patient         *ProfileSummary       `json:"patient,omitempty"`
	Pharmacist      *ProfileSummary       `json:"pharmacist,omitempty"`
	Prescription    *PrescriptionResponse `json:"prescriptionDetails,omitempty"`
	Medications     entity.OrderItemList  `json:"medications"`
	TotalAmount     decimal.Decimal       `json:"totalAmount"`
	Status          string                `json:"status"`
	DeliveryType    string                `json:"deliveryType"`
	DeliveryAddress string                `json:"deliveryAddress,omitempty"`
	OrderDate       time.Time             `json:"orderDate"`
	CompletedDate   *time.Time            `json:"completedDate,omitempty"`
}
