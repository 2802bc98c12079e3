package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PharmacyOrderStatus represents the fulfilment status of a pharmacy order.
type PharmacyOrderStatus string

const (
	PharmacyOrderStatusPending    PharmacyOrderStatus = "pending"
	PharmacyOrderStatusProcessing PharmacyOrderStatus = "processing"
	PharmacyOrderStatusReady      PharmacyOrderStatus = "ready"
	PharmacyOrderStatusCompleted  PharmacyOrderStatus = "completed"
	PharmacyOrderStatusCancelled  PharmacyOrderStatus = "cancelled"
)

// DeliveryType values
const (
	DeliveryTypePickup   = "pickup"
	DeliveryTypeDelivery = "delivery"
)

// PharmacyOrder is a medication order placed by a patient with a pharmacist,
// optionally referencing a prescription.
type PharmacyOrder struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"patientId"`
	PharmacistID    uuid.UUID           `gorm:"type:uuid;not null;index" json:"pharmacistId"`
	PrescriptionID  *uuid.UUID          `gorm:"type:uuid" json:"prescriptionId,omitempty"`
	Medications     OrderItemList       `gorm:"type:jsonb;not null" json:"medications"`
	TotalAmount     decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	Status          PharmacyOrderStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DeliveryType    string              `gorm:"type:varchar(10);not null;default:'pickup'" json:"deliveryType"`
	DeliveryAddress string              `gorm:"type:text" json:"deliveryAddress,omitempty"`
	OrderDate       time.Time           `gorm:"autoCreateTime" json:"orderDate"`
	CompletedDate   *time.Time          `json:"completedDate,omitempty"`

	// Relationships
	Patient      *PatientProfile    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Pharmacist   *PharmacistProfile `gorm:"foreignKey:PharmacistID" json:"pharmacist,omitempty"`
	Prescription *Prescription      `gorm:"foreignKey:PrescriptionID" json:"prescription,omitempty"`
}

func (PharmacyOrder) TableName() string {
	return "pharmacy_orders"
}
