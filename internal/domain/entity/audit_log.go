package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records who did what to which record. Written synchronously
// alongside the mutation it describes.
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"createdAt"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Audit actions
const (
	AuditActionUserRegister        = "user.register"
	AuditActionUserLogin           = "user.login"
	AuditActionUserLogout          = "user.logout"
	AuditActionProfileUpdate       = "profile.update"
	AuditActionAppointmentCreate   = "appointment.create"
	AuditActionAppointmentUpdate   = "appointment.update"
	AuditActionAppointmentDelete   = "appointment.delete"
	AuditActionPrescriptionCreate  = "prescription.create"
	AuditActionPrescriptionUpdate  = "prescription.update"
	AuditActionLabTestCreate       = "lab_test.create"
	AuditActionLabTestUpdate       = "lab_test.update"
	AuditActionPharmacyOrderCreate = "pharmacy_order.create"
	AuditActionPharmacyOrderUpdate = "pharmacy_order.update"
)
