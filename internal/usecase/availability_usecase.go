package usecase

import (
	"context"
	"errors"
	"time"

	"vitalscan-booking-api/internal/domain/repository"
	"vitalscan-booking-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

type AvailabilityUsecase interface {
	// AvailableSlots returns every candidate slot of the day for the
	// given service and practitioner, flagged free or busy, ascending by
	// start time. Unknown or inactive entities yield an empty list, not
	// an error; that policy belongs to this layer and callers may treat
	// it differently at their own boundary.
	AvailableSlots(ctx context.Context, practitionerID, serviceID int, date string) ([]service.SlotAvailability, error)
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	serviceRepo      repository.ServiceOfferingRepository
	practitionerRepo repository.PractitionerRepository
	store            *service.BookingStore
	cache            *service.AvailabilityCache
	window           service.DayWindow
	location         *time.Location
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceOfferingRepository,
	practitionerRepo repository.PractitionerRepository,
	store *service.BookingStore,
	cache *service.AvailabilityCache,
	window service.DayWindow,
	location *time.Location,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		serviceRepo:      serviceRepo,
		practitionerRepo: practitionerRepo,
		store:            store,
		cache:            cache,
		window:           window,
		location:         location,
	}
}

func (u *availabilityUsecase) AvailableSlots(ctx context.Context, practitionerID, serviceID int, date string) ([]service.SlotAvailability, error) {
	day, err := time.ParseInLocation("2006-01-02", date, u.location)
	if err != nil {
		return nil, ErrInvalidDate
	}

	offering, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", serviceID, err)
		return nil, err
	}
	if offering == nil || !offering.IsActive {
		return []service.SlotAvailability{}, nil
	}

	practitioner, err := u.practitionerRepo.FindByID(u.db.WithContext(ctx), practitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner %d: %+v", practitionerID, err)
		return nil, err
	}
	if practitioner == nil || !practitioner.IsActive {
		return []service.SlotAvailability{}, nil
	}

	if cached, ok := u.cache.Get(ctx, practitionerID, serviceID, day); ok {
		return cached, nil
	}

	candidates := service.CandidateSlots(day, offering.Duration(), u.window)
	busy, err := u.store.ActiveSlots(ctx, practitionerID, day)
	if err != nil {
		u.log.Warnf("Failed to load active bookings for practitioner %d: %+v", practitionerID, err)
		return nil, err
	}

	slots := make([]service.SlotAvailability, len(candidates))
	for i, candidate := range candidates {
		available := true
		for _, occupied := range busy {
			if candidate.Overlaps(occupied) {
				available = false
				break
			}
		}
		slots[i] = service.SlotAvailability{Slot: candidate, Available: available}
	}

	u.cache.Set(ctx, practitionerID, serviceID, day, slots)
	return slots, nil
}
