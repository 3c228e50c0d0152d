package converter

import (
	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/internal/domain/entity"
)

// BookingToCreatedResponse converts a committed Booking to the minimal
// acknowledgement payload.
func BookingToCreatedResponse(booking *entity.Booking) *dto.CreateBookingResponse {
	if booking == nil {
		return nil
	}
	return &dto.CreateBookingResponse{
		ID:        booking.ID,
		Status:    string(booking.Status),
		Reference: booking.Reference,
	}
}

// BookingToDetailResponse converts a Booking with preloaded service and
// practitioner into the full detail view.
func BookingToDetailResponse(booking *entity.Booking) *dto.BookingDetailResponse {
	if booking == nil {
		return nil
	}
	return &dto.BookingDetailResponse{
		ID:               booking.ID,
		Reference:        booking.Reference,
		ServiceID:        booking.ServiceOfferingID,
		ServiceName:      booking.ServiceOffering.Name,
		PractitionerID:   booking.PractitionerID,
		PractitionerName: booking.Practitioner.FullName,
		StartLocal:       booking.StartLocal,
		EndLocal:         booking.EndLocal,
		DurationMinutes:  int(booking.Slot().Duration().Minutes()),
		Status:           string(booking.Status),
		CustomerName:     booking.CustomerName,
		CustomerEmail:    booking.CustomerEmail,
		CustomerPhone:    booking.CustomerPhone,
		Notes:            booking.Notes,
		CreatedAt:        booking.CreatedAt,
	}
}
