package converter

import (
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"
)

// PharmacyOrderToResponse converts a PharmacyOrder entity to its response DTO.
func PharmacyOrderToResponse(order *entity.PharmacyOrder) *dto.PharmacyOrderResponse {
	if order == nil {
		return nil
	}

	response := &dto.PharmacyOrderResponse{
		ID:              order.ID,
		PatientID:       order.PatientID,
		PharmacistID:    order.PharmacistID,
		PrescriptionID:  order.PrescriptionID,
		Medications:     order.Medications,
		TotalAmount:     order.TotalAmount,
		Status:          string(order.Status),
		DeliveryType:    order.DeliveryType,
		DeliveryAddress: order.DeliveryAddress,
		OrderDate:       order.OrderDate,
		CompletedDate:   order.CompletedDate,
	}

	if order.Patient != nil {
		response.Patient = &dto.ProfileSummary{
			ID:   order.Patient.ID,
			User: UserToSummary(order.Patient.User),
		}
	}
	if order.Pharmacist != nil {
		response.Pharmacist = &dto.ProfileSummary{
			ID:   order.Pharmacist.ID,
			User: UserToSummary(order.Pharmacist.User),
		}
	}
	if order.Prescription != nil {
		response.Prescription = PrescriptionToResponse(order.Prescription)
	}

	return response
}

// PharmacyOrdersToResponses converts a slice of PharmacyOrder entities to DTOs.
func PharmacyOrdersToResponses(orders []entity.PharmacyOrder) []dto.PharmacyOrderResponse {
	responses := make([]dto.PharmacyOrderResponse, len(orders))
	for i := range orders {
		responses[i] = *PharmacyOrderToResponse(&orders[i])
	}
	return responses
}
