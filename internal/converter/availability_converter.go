package converter

import (
	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/internal/service"
)

// SlotsToResponses converts the availability engine output into the wire
// shape of GET /availability.
func SlotsToResponses(slots []service.SlotAvailability) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.SlotResponse{
			StartLocal:  slot.Slot.StartLocal,
			EndLocal:    slot.Slot.EndLocal,
			IsAvailable: slot.Available,
		}
	}
	return responses
}
