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

type PharmacyOrderHandler struct {
	orderUsecase usecase.PharmacyOrderUsecase
	validator    *validator.CustomValidator
}

func NewPharmacyOrderHandler(orderUsecase usecase.PharmacyOrderUsecase, validator *validator.CustomValidator) *PharmacyOrderHandler {
	return &PharmacyOrderHandler{
		orderUsecase: orderUsecase,
		validator:    validator,
	}
}

func (h *PharmacyOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	var req dto.CreatePharmacyOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.orderUsecase.Create(r.Context(), userID, role, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, order)
}

func (h *PharmacyOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	orders, err := h.orderUsecase.List(r.Context(), userID, role)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, orders)
}

func (h *PharmacyOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid id format")
		return
	}

	order, err := h.orderUsecase.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, order)
}

func (h *PharmacyOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdatePharmacyOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.orderUsecase.Update(r.Context(), userID, role, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, order)
}
