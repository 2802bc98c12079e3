package handler

import (
	"errors"
	"net/http"

	"medecos/internal/authz"
	"medecos/internal/usecase"
	"medecos/pkg/response"
)

// respondError maps domain errors onto the API's status codes. Policy
// denials keep their message, validation failures come back as 400, missing
// records as 404, everything else collapses to an opaque 500.
func respondError(w http.ResponseWriter, err error) {
	var forbidden *authz.ForbiddenError
	if errors.As(err, &forbidden) {
		response.Forbidden(w, forbidden.Message)
		return
	}

	var validation *usecase.ValidationError
	if errors.As(err, &validation) {
		response.BadRequest(w, validation.Message)
		return
	}

	switch err {
	case usecase.ErrEmailAlreadyRegistered,
		usecase.ErrInvalidUserType,
		usecase.ErrLicenseAlreadyExists:
		response.BadRequest(w, err.Error())
	case usecase.ErrInvalidCredentials:
		response.Unauthorized(w, err.Error())
	case usecase.ErrDoctorNotFound,
		usecase.ErrPatientNotFound,
		usecase.ErrPharmacistNotFound,
		usecase.ErrLabTesterNotFound,
		usecase.ErrAppointmentNotFound,
		usecase.ErrPrescriptionNotFound,
		usecase.ErrLabTestNotFound,
		usecase.ErrPharmacyOrderNotFound,
		usecase.ErrDoctorProfileNotFound,
		usecase.ErrPatientProfileNotFound,
		usecase.ErrPharmacistProfileNotFound,
		usecase.ErrLabTesterProfileNotFound:
		response.NotFound(w, err.Error())
	default:
		response.InternalServerError(w, "")
	}
}
