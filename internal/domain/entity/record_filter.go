package entity

import "github.com/google/uuid"

// RecordFilter is a domain-level filter for listing domain records. The
// authorization layer narrows it to the caller's own profile id; a nil or
// empty filter returns the unfiltered collection.
type RecordFilter struct {
	PatientID    *uuid.UUID
	DoctorID     *uuid.UUID
	PharmacistID *uuid.UUID
	LabTesterID  *uuid.UUID
}
