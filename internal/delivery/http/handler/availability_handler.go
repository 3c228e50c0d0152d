package handler

import (
	"errors"
	"net/http"
	"strconv"

	"vitalscan-booking-api/internal/converter"
	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/internal/usecase"
	"vitalscan-booking-api/pkg/response"
	"vitalscan-booking-api/pkg/validator"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// GetAvailability handles GET /availability?serviceId=&practitionerId=&date=
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID, _ := strconv.Atoi(query.Get("serviceId"))
	practitionerID, _ := strconv.Atoi(query.Get("practitionerId"))
	req := dto.AvailabilityQuery{
		ServiceID:      serviceID,
		PractitionerID: practitionerID,
		Date:           query.Get("date"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slots, err := h.availabilityUsecase.AvailableSlots(r.Context(), req.PractitionerID, req.ServiceID, req.Date)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDate) {
			response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
			return
		}
		response.InternalServerError(w, "Failed to compute availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", converter.SlotsToResponses(slots))
}
