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

// AccountHandler serves the /api/users endpoint. Routing is purely by verb:
// POST registers, GET reads (disambiguated by query parameter), PUT updates.
type AccountHandler struct {
	accountUsecase usecase.AccountUsecase
	validator      *validator.CustomValidator
}

func NewAccountHandler(accountUsecase usecase.AccountUsecase, validator *validator.CustomValidator) *AccountHandler {
	return &AccountHandler{
		accountUsecase: accountUsecase,
		validator:      validator,
	}
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request data")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	account, err := h.accountUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
			response.Error(w, http.StatusConflict, "Email already registered")
		case errors.Is(err, usecase.ErrInvalidRole):
			response.BadRequest(w, "Invalid role")
		default:
			response.InternalServerError(w, "Failed to create user")
		}
		return
	}

	response.Success(w, http.StatusCreated, response.Payload{"user": account})
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	switch {
	case query.Get("email") != "":
		account, err := h.accountUsecase.GetByEmail(r.Context(), query.Get("email"))
		if err != nil {
			if errors.Is(err, usecase.ErrAccountNotFound) {
				response.NotFound(w, "User not found")
				return
			}
			response.InternalServerError(w, "Failed to get user")
			return
		}
		response.Success(w, http.StatusOK, response.Payload{"user": account})

	case query.Get("id") != "":
		id, err := uuid.Parse(query.Get("id"))
		if err != nil {
			response.NotFound(w, "User not found")
			return
		}
		account, err := h.accountUsecase.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, usecase.ErrAccountNotFound) {
				response.NotFound(w, "User not found")
				return
			}
			response.InternalServerError(w, "Failed to get user")
			return
		}
		response.Success(w, http.StatusOK, response.Payload{"user": account})

	case query.Get("role") != "":
		accounts, err := h.accountUsecase.ListByRole(r.Context(), query.Get("role"))
		if err != nil {
			if errors.Is(err, usecase.ErrInvalidRole) {
				response.BadRequest(w, "Invalid role")
				return
			}
			response.InternalServerError(w, "Failed to get users")
			return
		}
		response.Success(w, http.StatusOK, response.Payload{"users": accounts})

	default:
		response.BadRequest(w, "Missing parameters")
	}
}

// Update accepts a flat JSON object of column name to value plus the target
// id. Columns outside the allow-list are rejected by the usecase.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		response.BadRequest(w, "Invalid request data")
		return
	}

	rawID, ok := fields["id"].(string)
	if !ok || rawID == "" {
		response.BadRequest(w, "User ID required")
		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if err := h.accountUsecase.Update(r.Context(), id, fields); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoUpdateData):
			response.BadRequest(w, "No data to update")
		case errors.Is(err, usecase.ErrFieldNotAllowed):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
			response.Error(w, http.StatusConflict, "Email already registered")
		default:
			response.InternalServerError(w, "Failed to update user")
		}
		return
	}

	response.Success(w, http.StatusOK, response.Payload{"message": "User updated successfully"})
}
