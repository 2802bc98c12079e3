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

type PharmacistHandler struct {
	pharmacistUsecase usecase.PharmacistUsecase
	validator         *validator.CustomValidator
}

func NewPharmacistHandler(pharmacistUsecase usecase.PharmacistUsecase, validator *validator.CustomValidator) *PharmacistHandler {
	return &PharmacistHandler{
		pharmacistUsecase: pharmacistUsecase,
		validator:         validator,
	}
}

func (h *PharmacistHandler) List(w http.ResponseWriter, r *http.Request) {
	_, role, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	pharmacists, err := h.pharmacistUsecase.List(r.Context(), role)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, pharmacists)
}

func (h *PharmacistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid id format")
		return
	}

	pharmacist, err := h.pharmacistUsecase.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, pharmacist)
}

func (h *PharmacistHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdatePharmacistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	pharmacist, err := h.pharmacistUsecase.Update(r.Context(), userID, role, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, pharmacist)
}
