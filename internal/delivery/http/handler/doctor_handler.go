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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	_, role, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	doctors, err := h.doctorUsecase.List(r.Context(), role)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, doctors)
}

func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid id format")
		return
	}

	doctor, err := h.doctorUsecase.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, doctor)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.Update(r.Context(), userID, role, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, doctor)
}
