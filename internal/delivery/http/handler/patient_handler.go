package handler

import (
	"encoding/json"
	"net/http"

	"medecos/internal/delivery/dto"
	"medecos/internal/usecase"
	"medecos/pkg/response"
	"medecos/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	_, role, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	patients, err := h.patientUsecase.List(r.Context(), role)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid id format")
		return
	}

	patient, err := h.patientUsecase.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid id format")
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), userID, role, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, patient)
}
