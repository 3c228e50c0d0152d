package repository

import (
	"errors"

	"vitalscan-booking-api/internal/domain/entity"
	domainRepo "vitalscan-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type practitionerRepository struct{}

func NewPractitionerRepository() domainRepo.PractitionerRepository {
	return &practitionerRepository{}
}

func (r *practitionerRepository) Create(db *gorm.DB, practitioner *entity.Practitioner) error {
	return db.Create(practitioner).Error
}

func (r *practitionerRepository) FindByID(db *gorm.DB, id int) (*entity.Practitioner, error) {
	var practitioner entity.Practitioner
	err := db.Where("id = ?", id).First(&practitioner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &practitioner, nil
}

func (r *practitionerRepository) FindAllActive(db *gorm.DB) ([]entity.Practitioner, error) {
	var practitioners []entity.Practitioner
	err := db.Where("is_active = ?", true).Order("id ASC").Find(&practitioners).Error
	if err != nil {
		return nil, err
	}
	return practitioners, nil
}

func (r *practitionerRepository) FindAll(db *gorm.DB) ([]entity.Practitioner, error) {
	var practitioners []entity.Practitioner
	err := db.Order("id ASC").Find(&practitioners).Error
	if err != nil {
		return nil, err
	}
	return practitioners, nil
}

func (r *practitionerRepository) Update(db *gorm.DB, practitioner *entity.Practitioner) error {
	return db.Omit("Bookings").Save(practitioner).Error
}

func (r *practitionerRepository) Deactivate(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.Practitioner{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
