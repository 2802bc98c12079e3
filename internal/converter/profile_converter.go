package converter

import (
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"
)

// DoctorToResponse converts a DoctorProfile entity to DoctorResponse DTO.
func DoctorToResponse(doctor *entity.DoctorProfile) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		UserID:          doctor.UserID,
		User:            UserToSummary(doctor.User),
		Specialization:  doctor.Specialization,
		Qualifications:  doctor.Qualifications,
		Experience:      doctor.Experience,
		LicenseNumber:   doctor.LicenseNumber,
		ConsultationFee: doctor.ConsultationFee,
		Availability:    doctor.Availability,
		Rating:          doctor.Rating,
	}
}

// DoctorsToResponses converts a slice of DoctorProfile entities to DTOs.
func DoctorsToResponses(doctors []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// PatientToResponse converts a PatientProfile entity to PatientResponse DTO.
func PatientToResponse(patient *entity.PatientProfile) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		UserID:           patient.UserID,
		User:             UserToSummary(patient.User),
		DateOfBirth:      patient.DateOfBirth.Format("2006-01-02"),
		Gender:           patient.Gender,
		BloodGroup:       patient.BloodGroup,
		MedicalHistory:   patient.MedicalHistory,
		Allergies:        patient.Allergies,
		EmergencyContact: patient.EmergencyContact,
	}
}

// PatientsToResponses converts a slice of PatientProfile entities to DTOs.
func PatientsToResponses(patients []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PharmacistToResponse converts a PharmacistProfile entity to DTO.
func PharmacistToResponse(pharmacist *entity.PharmacistProfile) *dto.PharmacistResponse {
	if pharmacist == nil {
		return nil
	}

	return &dto.PharmacistResponse{
		ID:              pharmacist.ID,
		UserID:          pharmacist.UserID,
		User:            UserToSummary(pharmacist.User),
		PharmacyName:    pharmacist.PharmacyName,
		LicenseNumber:   pharmacist.LicenseNumber,
		PharmacyAddress: pharmacist.PharmacyAddress,
		OperatingHours:  pharmacist.OperatingHours,
		ServicesOffered: pharmacist.ServicesOffered,
		Rating:          pharmacist.Rating,
	}
}

// PharmacistsToResponses converts a slice of PharmacistProfile entities to DTOs.
func PharmacistsToResponses(pharmacists []entity.PharmacistProfile) []dto.PharmacistResponse {
	responses := make([]dto.PharmacistResponse, len(pharmacists))
	for i := range pharmacists {
		responses[i] = *PharmacistToResponse(&pharmacists[i])
	}
	return responses
}

// LabTesterToResponse converts a LabTesterProfile entity to DTO.
func LabTesterToResponse(tester *entity.LabTesterProfile) *dto.LabTesterResponse {
	if tester == nil {
		return nil
	}

	return &dto.LabTesterResponse{
		ID:             tester.ID,
		UserID:         tester.UserID,
		User:           UserToSummary(tester.User),
		LabName:        tester.LabName,
		LicenseNumber:  tester.LicenseNumber,
		LabAddress:     tester.LabAddress,
		TestsAvailable: tester.TestsAvailable,
		OperatingHours: tester.OperatingHours,
		Accreditations: tester.Accreditations,
		Rating:         tester.Rating,
	}
}

// LabTestersToResponses converts a slice of LabTesterProfile entities to DTOs.
func LabTestersToResponses(testers []entity.LabTesterProfile) []dto.LabTesterResponse {
	responses := make([]dto.LabTesterResponse, len(testers))
	for i := range testers {
		responses[i] = *LabTesterToResponse(&testers[i])
	}
	return responses
}
