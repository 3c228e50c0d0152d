package repository

import (
	"vitalscan-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindRecent(db *gorm.DB, limit int) ([]entity.AuditLog, error)
}
