package repository

import (
	"vitalscan-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicRepository interface {
	Get(db *gorm.DB) (*entity.Clinic, error)
}
