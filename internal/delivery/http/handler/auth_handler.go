package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/internal/delivery/http/middleware"
	"vitalscan-booking-api/internal/usecase"
	"vitalscan-booking-api/pkg/response"
	"vitalscan-booking-api/pkg/validator"
)

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
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		response.InternalServerError(w, "Failed to login")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", result)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), tokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}
