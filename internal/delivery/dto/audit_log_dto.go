package dto

import (
	"time"

	"vitalscan-booking-api/internal/domain/entity"
)

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	Actor     string      `json:"actor"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
