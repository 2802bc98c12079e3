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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), userID, role, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, appointment)
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	appointments, err := h.appointmentUsecase.List(r.Context(), userID, role)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid id format")
		return
	}

	appointment, err := h.appointmentUsecase.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), userID, role, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.appointmentUsecase.Delete(r.Context(), userID, role, id); err != nil {
		respondError(w, err)
		return
	}

	response.Message(w, "Appointment cancelled")
}
