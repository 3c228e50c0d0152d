package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vitalscan-booking-api/config"
	"vitalscan-booking-api/internal/converter"
	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/internal/domain/entity"
	"vitalscan-booking-api/internal/domain/repository"
	"vitalscan-booking-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrUnknownService      = errors.New("service not found or inactive")
	ErrUnknownPractitioner = errors.New("practitioner not found or inactive")
	ErrInvalidRequest      = errors.New("invalid booking request")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidTransition   = errors.New("invalid booking status transition")
)

// SlotUnavailableError is the commit-time conflict outcome. It carries the
// occupied interval only; the authoritative check happens inside the store
// even when an earlier availability read suggested the slot was free.
type SlotUnavailableError struct {
	Conflict entity.TimeSlot
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot unavailable: %s is already booked", e.Conflict)
}

// Accepted local datetime layouts for startLocal, naive clinic-local time.
var startLocalLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type BookingUsecase interface {
	RequestBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error)
	GetBooking(ctx context.Context, bookingID int) (*dto.BookingDetailResponse, error)
	// SetStatus applies a lifecycle transition requested by staff.
	SetStatus(ctx context.Context, actor string, bookingID int, status entity.BookingStatus) (*dto.BookingDetailResponse, error)
}

type bookingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	serviceRepo      repository.ServiceOfferingRepository
	practitionerRepo repository.PractitionerRepository
	bookingRepo      repository.BookingRepository
	store            *service.BookingStore
	cache            *service.AvailabilityCache
	audit            service.AuditService
	clock            service.Clock
	window           service.DayWindow
	location         *time.Location
	policy           config.BookingConfig
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceOfferingRepository,
	practitionerRepo repository.PractitionerRepository,
	bookingRepo repository.BookingRepository,
	store *service.BookingStore,
	cache *service.AvailabilityCache,
	audit service.AuditService,
	clock service.Clock,
	window service.DayWindow,
	location *time.Location,
	policy config.BookingConfig,
) BookingUsecase {
	return &bookingUsecase{
		db:               db,
		log:              log,
		serviceRepo:      serviceRepo,
		practitionerRepo: practitionerRepo,
		bookingRepo:      bookingRepo,
		store:            store,
		cache:            cache,
		audit:            audit,
		clock:            clock,
		window:           window,
		location:         location,
		policy:           policy,
	}
}

// RequestBooking validates a booking request and commits it through the
// store's atomic conflict check.
func (u *bookingUsecase) RequestBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	offering, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), req.ServiceOfferingID)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", req.ServiceOfferingID, err)
		return nil, err
	}
	if offering == nil || !offering.IsActive {
		return nil, ErrUnknownService
	}

	practitioner, err := u.practitionerRepo.FindByID(u.db.WithContext(ctx), req.PractitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner %d: %+v", req.PractitionerID, err)
		return nil, err
	}
	if practitioner == nil || !practitioner.IsActive {
		return nil, ErrUnknownPractitioner
	}

	// The client echoes the duration it showed the customer; it must match
	// the service's configured duration.
	if req.DurationMinutes != 0 && req.DurationMinutes != offering.DurationMinutes {
		return nil, ErrInvalidRequest
	}

	start, err := u.parseStartLocal(req.StartLocal)
	if err != nil {
		return nil, ErrInvalidRequest
	}

	if start.Before(u.clock.Now()) {
		return nil, ErrInvalidRequest
	}

	if !u.window.OnGrid(start) {
		if u.policy.StrictAlignment {
			return nil, ErrInvalidRequest
		}
		u.log.Warnf("Accepting off-grid booking start %s for practitioner %d", start, req.PractitionerID)
	}

	status := entity.BookingStatusPending
	if u.policy.AutoConfirm {
		status = entity.BookingStatusConfirmed
	}

	slot := entity.NewTimeSlot(start, offering.Duration())
	booking := &entity.Booking{
		ServiceOfferingID: offering.ID,
		PractitionerID:    practitioner.ID,
		StartLocal:        slot.StartLocal,
		EndLocal:          slot.EndLocal,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		Notes:             req.Notes,
		Reference:         generateReference(start),
		Status:            status,
	}

	if err := u.store.TryInsert(ctx, booking); err != nil {
		var conflict *service.ConflictError
		if errors.As(err, &conflict) {
			return nil, &SlotUnavailableError{Conflict: conflict.Existing}
		}
		u.log.Errorf("Failed to commit booking for practitioner %d: %+v", practitioner.ID, err)
		return nil, err
	}

	u.cache.Invalidate(ctx, practitioner.ID, start)
	u.audit.Record(ctx, service.PublicActor, entity.AuditActionBookingCreate, entity.JSON{
		"booking_id":      booking.ID,
		"practitioner_id": practitioner.ID,
		"service_id":      offering.ID,
		"start_local":     slot.StartLocal,
		"status":          string(status),
	})

	u.log.Infof("Booking created: id=%d, practitioner=%d, slot=%s, status=%s", booking.ID, practitioner.ID, slot, status)
	return converter.BookingToCreatedResponse(booking), nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, bookingID int) (*dto.BookingDetailResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %d: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return converter.BookingToDetailResponse(booking), nil
}

func (u *bookingUsecase) SetStatus(ctx context.Context, actor string, bookingID int, status entity.BookingStatus) (*dto.BookingDetailResponse, error) {
	if !status.IsValid() {
		return nil, ErrInvalidRequest
	}

	updated, err := u.store.SetStatus(ctx, bookingID, status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, service.ErrInvalidTransition):
			return nil, ErrInvalidTransition
		default:
			u.log.Warnf("Failed to set booking %d status to %s: %+v", bookingID, status, err)
			return nil, err
		}
	}

	action := entity.AuditActionBookingConfirm
	if status == entity.BookingStatusCancelled {
		action = entity.AuditActionBookingCancel
		// Cancellation releases the slot; cached availability is stale.
		u.cache.Invalidate(ctx, updated.PractitionerID, updated.StartLocal)
	}
	u.audit.Record(ctx, actor, action, entity.JSON{
		"booking_id": updated.ID,
		"status":     string(status),
	})

	// Reload with service and practitioner names for the response.
	return u.GetBooking(ctx, updated.ID)
}

func (u *bookingUsecase) parseStartLocal(value string) (time.Time, error) {
	for _, layout := range startLocalLayouts {
		if t, err := time.ParseInLocation(layout, value, u.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable start time %q", value)
}

// generateReference builds a customer-facing booking code: VS-YYYYMMDD-XXXXXX
func generateReference(start time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("VS-%s-%s", start.Format("20060102"), suffix)
}
