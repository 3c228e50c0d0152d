package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"vitalscan-booking-api/internal/domain/entity"
	"vitalscan-booking-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrBookingNotFound is returned when no booking exists for an id.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidTransition is returned for status changes the booking
	// state machine forbids. Cancelled is terminal.
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

// ConflictError reports that a candidate slot overlaps an existing active
// booking. It carries only the occupied interval, never the other
// customer's contact details.
type ConflictError struct {
	Existing entity.TimeSlot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot unavailable: overlaps existing booking %s", e.Existing)
}

// BookingStore is the authoritative booking set and the single commit
// point for slot reservations. The overlap check and the insert run under
// a per-practitioner mutex plus a database transaction, so two concurrent
// requests for overlapping slots cannot both succeed.
//
// The mutex table is keyed by practitioner id, created lazily and never
// removed; its cardinality is bounded by the number of practitioners.
type BookingStore struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository

	practitionerMu sync.Map // map[int]*sync.Mutex
}

func NewBookingStore(db *gorm.DB, log *logrus.Logger, bookingRepo repository.BookingRepository) *BookingStore {
	return &BookingStore{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
	}
}

func (s *BookingStore) lockFor(practitionerID int) *sync.Mutex {
	mu, _ := s.practitionerMu.LoadOrStore(practitionerID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// ActiveSlots returns the occupied intervals (Pending or Confirmed
// bookings) for a practitioner on the calendar day containing day.
// Read-only; runs unsynchronized with commits, read-committed is enough.
func (s *BookingStore) ActiveSlots(ctx context.Context, practitionerID int, day time.Time) ([]entity.TimeSlot, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := s.bookingRepo.FindActiveByPractitionerAndDay(s.db.WithContext(ctx), practitionerID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := make([]entity.TimeSlot, len(bookings))
	for i, booking := range bookings {
		slots[i] = booking.Slot()
	}
	return slots, nil
}

// TryInsert validates and commits a candidate booking as one atomic unit.
// On overlap it returns *ConflictError and writes nothing. The critical
// section contains only the conflict query and the insert.
func (s *BookingStore) TryInsert(ctx context.Context, booking *entity.Booking) error {
	mu := s.lockFor(booking.PractitionerID)
	mu.Lock()
	defer mu.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.bookingRepo.FindOverlapping(tx, booking.PractitionerID, booking.Slot())
		if err != nil {
			return err
		}
		if existing != nil {
			return &ConflictError{Existing: existing.Slot()}
		}
		return s.bookingRepo.Create(tx, booking)
	})
}

// SetStatus applies a status transition under the same per-practitioner
// lock as TryInsert, so a cancellation cannot race a commit for the same
// practitioner. Confirming an already-Confirmed booking is a no-op that
// still succeeds.
func (s *BookingStore) SetStatus(ctx context.Context, bookingID int, status entity.BookingStatus) (*entity.Booking, error) {
	// Resolve the practitioner outside the lock; the transition itself
	// re-reads inside the transaction.
	booking, err := s.bookingRepo.FindByID(s.db.WithContext(ctx), bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	mu := s.lockFor(booking.PractitionerID)
	mu.Lock()
	defer mu.Unlock()

	var updated *entity.Booking
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.bookingRepo.FindByID(tx, bookingID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrBookingNotFound
		}
		if !current.CanTransitionTo(status) {
			return ErrInvalidTransition
		}
		if current.Status == status {
			// Idempotent confirm: nothing to write.
			updated = current
			return nil
		}
		if err := s.bookingRepo.UpdateStatus(tx, bookingID, status); err != nil {
			return err
		}
		current.Status = status
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
