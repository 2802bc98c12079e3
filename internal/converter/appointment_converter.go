package converter

import (
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		TimeSlot:        appointment.TimeSlot,
		Reason:          appointment.Reason,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
	}

	if appointment.Patient != nil {
		response.Patient = &dto.ProfileSummary{
			ID:   appointment.Patient.ID,
			User: UserToSummary(appointment.Patient.User),
		}
	}
	if appointment.Doctor != nil {
		response.Doctor = &dto.ProfileSummary{
			ID:   appointment.Doctor.ID,
			User: UserToSummary(appointment.Doctor.User),
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
