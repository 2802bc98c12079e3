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

type LabTestHandler struct {
	labTestUsecase usecase.LabTestUsecase
	validator      *validator.CustomValidator
}

func NewLabTestHandler(labTestUsecase usecase.LabTestUsecase, validator *validator.CustomValidator) *LabTestHandler {
	return &LabTestHandler{
		labTestUsecase: labTestUsecase,
		validator:      validator,
	}
}

func (h *LabTestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	var req dto.CreateLabTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	labTest, err := h.labTestUsecase.Create(r.Context(), userID, role, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, labTest)
}

func (h *LabTestHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	labTests, err := h.labTestUsecase.List(r.Context(), userID, role)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, labTests)
}

func (h *LabTestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid id format")
		return
	}

	labTest, err := h.labTestUsecase.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, labTest)
}

func (h *LabTestHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateLabTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	labTest, err := h.labTestUsecase.Update(r.Context(), userID, role, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, labTest)
}
