package repository

import (
	"vitalscan-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PractitionerRepository interface {
	Create(db *gorm.DB, practitioner *entity.Practitioner) error
	FindByID(db *gorm.DB, id int) (*entity.Practitioner, error)
	FindAllActive(db *gorm.DB) ([]entity.Practitioner, error)
	FindAll(db *gorm.DB) ([]entity.Practitioner, error)
	Update(db *gorm.DB, practitioner *entity.Practitioner) error
	Deactivate(db *gorm.DB, id int) (int64, error)
}
