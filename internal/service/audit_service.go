package service

import (
	"context"

	"vitalscan-booking-api/internal/domain/entity"
	"vitalscan-booking-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PublicActor marks audit entries produced by unauthenticated booking
// endpoints.
const PublicActor = "customer"

type AuditService interface {
	Record(ctx context.Context, actor string, action string, metadata entity.JSON)
	Recent(ctx context.Context, limit int) ([]entity.AuditLog, error)
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// Record writes an audit entry. Audit failures are logged and absorbed so
// they never fail the operation being audited.
func (s *auditService) Record(ctx context.Context, actor string, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		Actor:    actor,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(s.db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}

func (s *auditService) Recent(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.auditRepo.FindRecent(s.db.WithContext(ctx), limit)
}
