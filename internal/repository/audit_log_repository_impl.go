package repository

import (
	"vitalscan-booking-api/internal/domain/entity"
	domainRepo "vitalscan-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) FindRecent(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
