package dto

import "time"

// Request DTOs
//
// Field names are camelCase on the wire for compatibility with the web
// shell consuming this API.

type CreateBookingRequest struct {
	ServiceOfferingID int    `json:"serviceOfferingId" validate:"required,min=1"`
	PractitionerID    int    `json:"practitionerId" validate:"required,min=1"`
	StartLocal        string `json:"startLocal" validate:"required"`
	DurationMinutes   int    `json:"durationMinutes" validate:"omitempty,min=1"`
	CustomerName      string `json:"customerName" validate:"required,max=255"`
	CustomerEmail     string `json:"customerEmail" validate:"required,email,max=255"`
	CustomerPhone     string `json:"customerPhone" validate:"omitempty,max=50"`
	Notes             string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Cancelled"`
}

// Response DTOs

// CreateBookingResponse is the minimal commit acknowledgement.
type CreateBookingResponse struct {
	ID        int    `json:"id"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

// ConflictResponse names the occupied interval when a booking request
// loses the race for a slot. It never carries the other customer's
// contact details.
type ConflictResponse struct {
	ConflictStart time.Time `json:"conflictStart"`
	ConflictEnd   time.Time `json:"conflictEnd"`
}

// BookingDetailResponse is the full booking view returned by GET.
type BookingDetailResponse struct {
	ID               int       `json:"id"`
	Reference        string    `json:"reference"`
	ServiceID        int       `json:"serviceId"`
	ServiceName      string    `json:"serviceName"`
	PractitionerID   int       `json:"practitionerId"`
	PractitionerName string    `json:"practitionerName"`
	StartLocal       time.Time `json:"startLocal"`
	EndLocal         time.Time `json:"endLocal"`
	DurationMinutes  int       `json:"durationMinutes"`
	Status           string    `json:"status"`
	CustomerName     string    `json:"customerName"`
	CustomerEmail    string    `json:"customerEmail"`
	CustomerPhone    string    `json:"customerPhone"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
