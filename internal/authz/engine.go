package authz

import (
	"medecos/internal/domain/entity"

	"github.com/google/uuid"
)

// roleGate maps (resource, action) to the set of permitted roles. A missing
// entry means any authenticated role is permitted.
var roleGate = map[Resource]map[Action][]entity.Role{
	ResourceDoctor: {
		ActionUpdate: {entity.RoleDoctor},
	},
	ResourcePatient: {
		ActionList:   {entity.RoleDoctor},
		ActionUpdate: {entity.RolePatient},
	},
	ResourcePharmacist: {
		ActionUpdate: {entity.RolePharmacist},
	},
	ResourceLabTester: {
		ActionUpdate: {entity.RoleLabTester},
	},
	ResourceAppointment: {
		ActionCreate: {entity.RolePatient},
		ActionDelete: {entity.RolePatient},
	},
	ResourcePrescription: {
		ActionCreate: {entity.RoleDoctor},
		ActionUpdate: {entity.RoleDoctor, entity.RolePharmacist},
	},
	ResourceLabTest: {
		ActionCreate: {entity.RoleDoctor, entity.RolePatient},
		ActionUpdate: {entity.RoleLabTester},
	},
	ResourcePharmacyOrder: {
		ActionCreate: {entity.RolePatient},
		ActionUpdate: {entity.RolePharmacist},
	},
}

// recordScopes maps a record resource to the roles whose own-records view it
// narrows to, and doubles as the ownership-relevance table: a role absent
// here has no reference field on the record and passes the ownership gate.
var recordScopes = map[Resource][]entity.Role{
	ResourceAppointment:   {entity.RolePatient, entity.RoleDoctor},
	ResourcePrescription:  {entity.RolePatient, entity.RoleDoctor},
	ResourceLabTest:       {entity.RolePatient, entity.RoleDoctor, entity.RoleLabTester},
	ResourcePharmacyOrder: {entity.RolePatient, entity.RolePharmacist},
}

// ownershipDenials holds the compatibility messages returned when the
// ownership gate rejects, keyed by resource, action and caller role.
var ownershipDenials = map[Resource]map[Action]map[entity.Role]string{
	ResourceAppointment: {
		ActionCreate: {
			entity.RolePatient: "Cannot create appointments for other patients",
		},
		ActionUpdate: {
			entity.RolePatient: "Cannot update appointments of other patients",
			entity.RoleDoctor:  "Cannot update appointments of other doctors",
		},
		ActionDelete: {
			entity.RolePatient: "Cannot cancel appointments of other patients",
		},
	},
	ResourcePrescription: {
		ActionUpdate: {
			entity.RoleDoctor: "Cannot update prescriptions of other doctors",
		},
	},
	ResourceLabTest: {
		ActionUpdate: {
			entity.RoleLabTester: "Cannot update tests of other labs",
		},
	},
	ResourcePharmacyOrder: {
		ActionCreate: {
			entity.RolePatient: "Cannot create orders for other patients",
		},
		ActionUpdate: {
			entity.RolePharmacist: "Cannot update orders of other pharmacies",
		},
	},
}

// profileDenials holds the messages for a caller touching another account's
// role profile.
var profileDenials = map[Resource]string{
	ResourceDoctor:     "Cannot update other doctor profiles",
	ResourcePatient:    "Cannot update other patient profiles",
	ResourcePharmacist: "Cannot update other pharmacist profiles",
	ResourceLabTester:  "Cannot update other lab tester profiles",
}

// Engine is the authorization policy engine. It is stateless; all lookups
// the caller's profile requires happen in the usecase layer, which hands the
// resolved Subject in.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Allow applies the role gate for (resource, action). Resources and actions
// without an entry are open to any authenticated role.
func (e *Engine) Allow(role entity.Role, res Resource, act Action) error {
	actions, ok := roleGate[res]
	if !ok {
		return nil
	}
	permitted, ok := actions[act]
	if !ok {
		return nil
	}
	for _, r := range permitted {
		if r == role {
			return nil
		}
	}
	return errAccessDenied()
}

// NeedsProfile reports whether the caller's role has a reference field on
// the record resource, i.e. whether an ownership check or list scope applies
// and the caller's profile must be resolved first.
func (e *Engine) NeedsProfile(role entity.Role, res Resource) bool {
	for _, r := range recordScopes[res] {
		if r == role {
			return true
		}
	}
	return false
}

// CheckOwnership applies the ownership gate: the caller's profile id must
// equal the reference on the target relevant to their role. Roles with no
// relevant reference pass; this permissiveness is part of the contract.
func (e *Engine) CheckOwnership(sub Subject, res Resource, act Action, owners OwnerRefs) error {
	ref := owners.forRole(sub.Role)
	if ref == nil {
		return nil
	}
	if *ref == sub.ProfileID {
		return nil
	}
	return &ForbiddenError{Message: denialMessage(res, act, sub.Role)}
}

// ListFilter computes the implicit query scope for a collection read.
// Callers whose role has no scope on the resource get a nil filter, i.e. the
// unfiltered collection.
func (e *Engine) ListFilter(sub Subject, res Resource) *entity.RecordFilter {
	if !e.NeedsProfile(sub.Role, res) {
		return nil
	}
	id := sub.ProfileID
	filter := &entity.RecordFilter{}
	switch sub.Role {
	case entity.RolePatient:
		filter.PatientID = &id
	case entity.RoleDoctor:
		filter.DoctorID = &id
	case entity.RolePharmacist:
		filter.PharmacistID = &id
	case entity.RoleLabTester:
		filter.LabTesterID = &id
	}
	return filter
}

// SelfAssign enforces self-assignment on create: a caller-supplied reference
// that is not the caller's own profile id is rejected; an omitted reference
// is filled in with the caller's profile id.
func (e *Engine) SelfAssign(sub Subject, res Resource, requested *uuid.UUID) (uuid.UUID, error) {
	if requested != nil && *requested != sub.ProfileID {
		return uuid.Nil, &ForbiddenError{Message: denialMessage(res, ActionCreate, sub.Role)}
	}
	return sub.ProfileID, nil
}

// CheckProfileOwnership verifies that a role profile being mutated belongs
// to the calling identity. Profiles are keyed back to users, so this check
// compares user ids rather than profile references.
func (e *Engine) CheckProfileOwnership(res Resource, profileUserID, callerUserID uuid.UUID) error {
	if profileUserID == callerUserID {
		return nil
	}
	msg, ok := profileDenials[res]
	if !ok {
		return errAccessDenied()
	}
	return &ForbiddenError{Message: msg}
}

func denialMessage(res Resource, act Action, role entity.Role) string {
	if actions, ok := ownershipDenials[res]; ok {
		if roles, ok := actions[act]; ok {
			if msg, ok := roles[role]; ok {
				return msg
			}
		}
	}
	return "Access denied"
}
