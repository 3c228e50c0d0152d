package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/internal/delivery/http/middleware"
	"vitalscan-booking-api/internal/domain/entity"
	"vitalscan-booking-api/internal/service"
	"vitalscan-booking-api/internal/usecase"
	"vitalscan-booking-api/pkg/response"
	"vitalscan-booking-api/pkg/validator"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.RequestBooking(r.Context(), &req)
	if err != nil {
		var conflict *usecase.SlotUnavailableError
		switch {
		case errors.As(err, &conflict):
			response.Conflict(w, "Requested slot is no longer available", dto.ConflictResponse{
				ConflictStart: conflict.Conflict.StartLocal,
				ConflictEnd:   conflict.Conflict.EndLocal,
			})
		case errors.Is(err, usecase.ErrUnknownService):
			response.NotFound(w, "Service not found")
		case errors.Is(err, usecase.ErrUnknownPractitioner):
			response.NotFound(w, "Practitioner not found")
		case errors.Is(err, usecase.ErrInvalidRequest):
			response.Error(w, http.StatusBadRequest, "Invalid booking request", nil)
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalServerError(w, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

// UpdateBookingStatus handles staff confirm/cancel transitions.
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, ok := middleware.GetAdminEmailFromContext(r.Context())
	if !ok {
		actor = service.PublicActor
	}

	booking, err := h.bookingUsecase.SetStatus(r.Context(), actor, bookingID, entity.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			response.NotFound(w, "Booking not found")
		case errors.Is(err, usecase.ErrInvalidTransition):
			response.Error(w, http.StatusUnprocessableEntity, "Invalid status transition", nil)
		case errors.Is(err, usecase.ErrInvalidRequest):
			response.Error(w, http.StatusBadRequest, "Invalid status", nil)
		default:
			response.InternalServerError(w, "Failed to update booking status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking status updated successfully", booking)
}
