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

type LabTesterHandler struct {
	labTesterUsecase usecase.LabTesterUsecase
	validator        *validator.CustomValidator
}

func NewLabTesterHandler(labTesterUsecase usecase.LabTesterUsecase, validator *validator.CustomValidator) *LabTesterHandler {
	return &LabTesterHandler{
		labTesterUsecase: labTesterUsecase,
		validator:        validator,
	}
}

func (h *LabTesterHandler) List(w http.ResponseWriter, r *http.Request) {
	_, role, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	labTesters, err := h.labTesterUsecase.List(r.Context(), role)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, labTesters)
}

func (h *LabTesterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid id format")
		return
	}

	labTester, err := h.labTesterUsecase.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, labTester)
}

func (h *LabTesterHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateLabTesterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	labTester, err := h.labTesterUsecase.Update(r.Context(), userID, role, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, labTester)
}
