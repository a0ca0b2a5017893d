package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/usecase"
	"lifeline-qr-server/pkg/response"
	"lifeline-qr-server/pkg/validator"
)

// AuthHandler serves /api/auth: POST logs in, PUT resets a password.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request data")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Email and password required")
		return
	}

	account, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		response.InternalServerError(w, "Failed to login")
		return
	}

	response.Success(w, http.StatusOK, response.Payload{"user": account})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request data")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Email required")
		return
	}

	tempPassword, err := h.authUsecase.ResetPassword(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailNotFound) {
			response.NotFound(w, "Email not found")
			return
		}
		response.InternalServerError(w, "Failed to reset password")
		return
	}

	response.Success(w, http.StatusOK, response.Payload{
		"message":      "Password reset successful",
		"tempPassword": tempPassword,
	})
}
