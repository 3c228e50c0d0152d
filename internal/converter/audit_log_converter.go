package converter

import (
	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/internal/domain/entity"
)

// AuditLogsToResponses converts audit trail entries for the admin view.
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = dto.AuditLogResponse{
			ID:        log.ID,
			Actor:     log.Actor,
			Action:    log.Action,
			Metadata:  log.Metadata,
			CreatedAt: log.CreatedAt,
		}
	}
	return responses
}
