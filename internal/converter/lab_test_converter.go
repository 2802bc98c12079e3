package converter

import (
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"
)

// LabTestToResponse converts a LabTest entity to its response DTO.
func LabTestToResponse(test *entity.LabTest) *dto.LabTestResponse {
	if test == nil {
		return nil
	}

	response := &dto.LabTestResponse{
		ID:            test.ID,
		PatientID:     test.PatientID,
		DoctorID:      test.DoctorID,
		LabTesterID:   test.LabTesterID,
		TestName:      test.TestName,
		TestCode:      test.TestCode,
		ScheduledDate: test.ScheduledDate,
		Status:        string(test.Status),
		Price:         test.Price,
		Notes:         test.Notes,
		CreatedAt:     test.CreatedAt,
	}

	if test.Results.Findings != "" || test.Results.ReportURL != "" || test.Results.CompletedDate != nil {
		results := test.Results
		response.Results = &results
	}

	if test.Patient != nil {
		response.Patient = &dto.ProfileSummary{
			ID:   test.Patient.ID,
			User: UserToSummary(test.Patient.User),
		}
	}
	if test.Doctor != nil {
		response.Doctor = &dto.ProfileSummary{
			ID:   test.Doctor.ID,
			User: UserToSummary(test.Doctor.User),
		}
	}
	if test.LabTester != nil {
		response.LabTester = &dto.ProfileSummary{
			ID:   test.LabTester.ID,
			User: UserToSummary(test.LabTester.User),
		}
	}

	return response
}

// LabTestsToResponses converts a slice of LabTest entities to DTOs.
func LabTestsToResponses(tests []entity.LabTest) []dto.LabTestResponse {
	responses := make([]dto.LabTestResponse, len(tests))
	for i := range tests {
		responses[i] = *LabTestToResponse(&tests[i])
	}
	return responses
}
