package repository

import (
	"vitalscan-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceOfferingRepository interface {
	Create(db *gorm.DB, service *entity.ServiceOffering) error
	FindByID(db *gorm.DB, id int) (*entity.ServiceOffering, error)
	FindAllActive(db *gorm.DB) ([]entity.ServiceOffering, error)
	FindAll(db *gorm.DB) ([]entity.ServiceOffering, error)
	Update(db *gorm.DB, service *entity.ServiceOffering) error
	Deactivate(db *gorm.DB, id int) (int64, error)
}
