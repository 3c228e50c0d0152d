package repository

import (
	"time"

	"vitalscan-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id int) (*entity.Booking, error)
	// FindActiveByPractitionerAndDay returns Pending and Confirmed bookings
	// whose start falls within [dayStart, dayEnd), ordered by start time.
	FindActiveByPractitionerAndDay(db *gorm.DB, practitionerID int, dayStart, dayEnd time.Time) ([]entity.Booking, error)
	// FindOverlapping returns the first active booking for the practitioner
	// whose slot intersects the given half-open interval, or nil.
	FindOverlapping(db *gorm.DB, practitionerID int, slot entity.TimeSlot) (*entity.Booking, error)
	UpdateStatus(db *gorm.DB, id int, status entity.BookingStatus) error
}
