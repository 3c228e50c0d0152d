package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/internal/delivery/http/middleware"
	"vitalscan-booking-api/internal/usecase"
	"vitalscan-booking-api/pkg/response"
	"vitalscan-booking-api/pkg/validator"

	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

// Public catalog

func (h *CatalogHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.ListServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list services")
		return
	}
	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *CatalogHandler) GetPractitioners(w http.ResponseWriter, r *http.Request) {
	practitioners, err := h.catalogUsecase.ListPractitioners(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list practitioners")
		return
	}
	response.Success(w, http.StatusOK, "Practitioners retrieved successfully", practitioners)
}

func (h *CatalogHandler) GetClinic(w http.ResponseWriter, r *http.Request) {
	clinic, err := h.catalogUsecase.GetClinic(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrClinicNotConfigured) {
			response.NotFound(w, "Clinic not configured")
			return
		}
		response.InternalServerError(w, "Failed to load clinic")
		return
	}
	response.Success(w, http.StatusOK, "Clinic retrieved successfully", clinic)
}

// Staff catalog management

func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.catalogUsecase.CreateService(r.Context(), h.actor(r), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create service")
		return
	}
	response.Success(w, http.StatusCreated, "Service created successfully", created)
}

func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	updated, err := h.catalogUsecase.UpdateService(r.Context(), h.actor(r), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrServiceNotFound) {
			response.NotFound(w, "Service not found")
			return
		}
		response.InternalServerError(w, "Failed to update service")
		return
	}
	response.Success(w, http.StatusOK, "Service updated successfully", updated)
}

func (h *CatalogHandler) DeactivateService(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	if err := h.catalogUsecase.DeactivateService(r.Context(), h.actor(r), id); err != nil {
		if errors.Is(err, usecase.ErrServiceNotFound) {
			response.NotFound(w, "Service not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate service")
		return
	}
	response.Success(w, http.StatusOK, "Service deactivated successfully", nil)
}

func (h *CatalogHandler) CreatePractitioner(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePractitionerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.catalogUsecase.CreatePractitioner(r.Context(), h.actor(r), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create practitioner")
		return
	}
	response.Success(w, http.StatusCreated, "Practitioner created successfully", created)
}

func (h *CatalogHandler) UpdatePractitioner(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid practitioner ID", nil)
		return
	}

	var req dto.UpdatePractitionerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	updated, err := h.catalogUsecase.UpdatePractitioner(r.Context(), h.actor(r), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrPractitionerNotFound) {
			response.NotFound(w, "Practitioner not found")
			return
		}
		response.InternalServerError(w, "Failed to update practitioner")
		return
	}
	response.Success(w, http.StatusOK, "Practitioner updated successfully", updated)
}

func (h *CatalogHandler) DeactivatePractitioner(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid practitioner ID", nil)
		return
	}

	if err := h.catalogUsecase.DeactivatePractitioner(r.Context(), h.actor(r), id); err != nil {
		if errors.Is(err, usecase.ErrPractitionerNotFound) {
			response.NotFound(w, "Practitioner not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate practitioner")
		return
	}
	response.Success(w, http.StatusOK, "Practitioner deactivated successfully", nil)
}

func (h *CatalogHandler) pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func (h *CatalogHandler) actor(r *http.Request) string {
	if email, ok := middleware.GetAdminEmailFromContext(r.Context()); ok {
		return email
	}
	return "unknown"
}
