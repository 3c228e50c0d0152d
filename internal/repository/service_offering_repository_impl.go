package repository

import (
	"errors"

	"vitalscan-booking-api/internal/domain/entity"
	domainRepo "vitalscan-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceOfferingRepository struct{}

func NewServiceOfferingRepository() domainRepo.ServiceOfferingRepository {
	return &serviceOfferingRepository{}
}

func (r *serviceOfferingRepository) Create(db *gorm.DB, service *entity.ServiceOffering) error {
	return db.Create(service).Error
}

func (r *serviceOfferingRepository) FindByID(db *gorm.DB, id int) (*entity.ServiceOffering, error) {
	var service entity.ServiceOffering
	err := db.Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceOfferingRepository) FindAllActive(db *gorm.DB) ([]entity.ServiceOffering, error) {
	var services []entity.ServiceOffering
	err := db.Where("is_active = ?", true).Order("id ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceOfferingRepository) FindAll(db *gorm.DB) ([]entity.ServiceOffering, error) {
	var services []entity.ServiceOffering
	err := db.Order("id ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceOfferingRepository) Update(db *gorm.DB, service *entity.ServiceOffering) error {
	return db.Save(service).Error
}

// Deactivate flips is_active off instead of deleting; bookings keep their
// service reference. Returns affected rows: 0 = unknown or already inactive.
func (r *serviceOfferingRepository) Deactivate(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.ServiceOffering{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
