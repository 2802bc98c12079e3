package converter

import (
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity to its response DTO.
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:            prescription.ID,
		PatientID:     prescription.PatientID,
		DoctorID:      prescription.DoctorID,
		AppointmentID: prescription.AppointmentID,
		Medications:   prescription.Medications,
		Diagnosis:     prescription.Diagnosis,
		Status:        string(prescription.Status),
		Notes:         prescription.Notes,
		IssuedDate:    prescription.IssuedDate,
	}

	if prescription.Patient != nil {
		response.Patient = &dto.ProfileSummary{
			ID:   prescription.Patient.ID,
			User: UserToSummary(prescription.Patient.User),
		}
	}
	if prescription.Doctor != nil {
		response.Doctor = &dto.ProfileSummary{
			ID:   prescription.Doctor.ID,
			User: UserToSummary(prescription.Doctor.User),
		}
	}

	return response
}

// PrescriptionsToResponses converts a slice of Prescription entities to DTOs.
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescriptions[i])
	}
	return responses
}
