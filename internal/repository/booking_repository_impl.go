package repository

import (
	"errors"
	"time"

	"vitalscan-booking-api/internal/domain/entity"
	domainRepo "vitalscan-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

var activeStatuses = []entity.BookingStatus{
	entity.BookingStatusPending,
	entity.BookingStatusConfirmed,
}

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id int) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("ServiceOffering").Preload("Practitioner").
		Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindActiveByPractitionerAndDay(db *gorm.DB, practitionerID int, dayStart, dayEnd time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where("practitioner_id = ? AND status IN ? AND start_local >= ? AND start_local < ?",
		practitionerID, activeStatuses, dayStart, dayEnd).
		Order("start_local ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindOverlapping uses the half-open interval rule: [a,b) and [c,d)
// intersect iff a < d && c < b. Cancelled bookings never count.
func (r *bookingRepository) FindOverlapping(db *gorm.DB, practitionerID int, slot entity.TimeSlot) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where("practitioner_id = ? AND status IN ? AND start_local < ? AND ? < end_local",
		practitionerID, activeStatuses, slot.EndLocal, slot.StartLocal).
		Order("start_local ASC").
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(db *gorm.DB, id int, status entity.BookingStatus) error {
	return db.Model(&entity.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}
