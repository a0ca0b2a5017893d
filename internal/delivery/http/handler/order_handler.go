package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/usecase"
	"lifeline-qr-server/pkg/response"
	"lifeline-qr-server/pkg/validator"

	"github.com/google/uuid"
)

// OrderHandler serves /api/orders: POST places a badge order, GET lists a
// user's orders newest first. Status transitions are not part of the surface.
type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
	validator    *validator.CustomValidator
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase, validator *validator.CustomValidator) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
		validator:    validator,
	}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request data")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	order, err := h.orderUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidUserID):
			response.BadRequest(w, "Invalid user ID")
		case errors.Is(err, usecase.ErrInvalidPrice):
			response.BadRequest(w, "Invalid price")
		case errors.Is(err, usecase.ErrAccountNotFound):
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to create order")
		}
		return
	}

	response.Success(w, http.StatusCreated, response.Payload{"order": order})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("userId")
	if rawID == "" {
		response.BadRequest(w, "User ID required")
		return
	}

	userID, err := uuid.Parse(rawID)
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	orders, err := h.orderUsecase.ListByUser(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get orders")
		return
	}

	response.Success(w, http.StatusOK, response.Payload{"orders": orders})
}
