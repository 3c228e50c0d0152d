package dto

import "time"

// AvailabilityQuery is the parsed query string of GET /availability.
type AvailabilityQuery struct {
	ServiceID      int    `validate:"required,min=1"`
	PractitionerID int    `validate:"required,min=1"`
	Date           string `validate:"required,datetime=2006-01-02"`
}

// SlotResponse is one candidate slot with its free/busy flag.
type SlotResponse struct {
	StartLocal  time.Time `json:"startLocal"`
	EndLocal    time.Time `json:"endLocal"`
	IsAvailable bool      `json:"isAvailable"`
}
