// Package authz decides, per endpoint, whether a caller's role may perform
// an action and whether the target record belongs to the caller. It composes
// two orthogonal checks: a static role gate and an ownership gate, plus list
// scoping and self-assignment enforcement on create.
package authz

import (
	"medecos/internal/domain/entity"

	"github.com/google/uuid"
)

// Resource identifies a protected resource type.
type Resource string

const (
	ResourceDoctor        Resource = "doctor"
	ResourcePatient       Resource = "patient"
	ResourcePharmacist    Resource = "pharmacist"
	ResourceLabTester     Resource = "lab_tester"
	ResourceAppointment   Resource = "appointment"
	ResourcePrescription  Resource = "prescription"
	ResourceLabTest       Resource = "lab_test"
	ResourcePharmacyOrder Resource = "pharmacy_order"
)

// Action identifies an operation on a resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionList   Action = "list"
	ActionGet    Action = "get"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Subject is the authenticated caller. ProfileID is the caller's role
// profile id and is only populated when the check at hand needs it.
type Subject struct {
	UserID    uuid.UUID
	Role      entity.Role
	ProfileID uuid.UUID
}

// ForbiddenError is returned for role and ownership violations. The message
// is part of the wire contract and is reproduced verbatim from the policy
// tables below.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// ErrAccessDenied is the generic role-gate denial.
func errAccessDenied() error {
	return &ForbiddenError{Message: "Access denied"}
}

// OwnerRefs carries the profile references on a target record, one slot per
// role that can own records of that type. Slots irrelevant to the record
// type stay nil.
type OwnerRefs struct {
	Patient    *uuid.UUID
	Doctor     *uuid.UUID
	Pharmacist *uuid.UUID
	LabTester  *uuid.UUID
}

func (o OwnerRefs) forRole(role entity.Role) *uuid.UUID {
	switch role {
	case entity.RolePatient:
		return o.Patient
	case entity.RoleDoctor:
		return o.Doctor
	case entity.RolePharmacist:
		return o.Pharmacist
	case entity.RoleLabTester:
		return o.LabTester
	}
	return nil
}
