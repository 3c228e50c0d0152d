package handler

import (
	"net/http"
	"strconv"

	"vitalscan-booking-api/internal/converter"
	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/internal/service"
	"vitalscan-booking-api/pkg/response"
)

type AuditLogHandler struct {
	audit service.AuditService
}

func NewAuditLogHandler(audit service.AuditService) *AuditLogHandler {
	return &AuditLogHandler{audit: audit}
}

// GetAuditLogs handles GET /admin/audit-logs?limit=
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.audit.Recent(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	responses := converter.AuditLogsToResponses(logs)
	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", dto.AuditLogListResponse{
		Logs:  responses,
		Total: len(responses),
	})
}
