package usecase

import "errors"

// Sentinel errors shared across usecases. Handlers map them onto status
// codes; the messages are part of the wire contract.
var (
	ErrEmailAlreadyRegistered = errors.New("Email already registered")
	ErrInvalidUserType        = errors.New("Invalid user type")
	ErrInvalidCredentials     = errors.New("Invalid credentials")
	ErrLicenseAlreadyExists   = errors.New("License number already registered")
	ErrInvalidDateFormat      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrTokenRevoked           = errors.New("token has been revoked")

	ErrDoctorNotFound        = errors.New("Doctor not found")
	ErrPatientNotFound       = errors.New("Patient not found")
	ErrPharmacistNotFound    = errors.New("Pharmacist not found")
	ErrLabTesterNotFound     = errors.New("Lab tester not found")
	ErrAppointmentNotFound   = errors.New("Appointment not found")
	ErrPrescriptionNotFound  = errors.New("Prescription not found")
	ErrLabTestNotFound       = errors.New("Lab test not found")
	ErrPharmacyOrderNotFound = errors.New("Order not found")

	ErrDoctorProfileNotFound     = errors.New("Doctor profile not found")
	ErrPatientProfileNotFound    = errors.New("Patient profile not found")
	ErrPharmacistProfileNotFound = errors.New("Pharmacist profile not found")
	ErrLabTesterProfileNotFound  = errors.New("Lab tester profile not found")
)
