package repository

import (
	"errors"

	"vitalscan-booking-api/internal/domain/entity"
	domainRepo "vitalscan-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicRepository struct{}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{}
}

func (r *clinicRepository) Get(db *gorm.DB) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Order("id ASC").First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}
