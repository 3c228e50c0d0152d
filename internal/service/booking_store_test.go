package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"vitalscan-booking-api/internal/domain/entity"
	"vitalscan-booking-api/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.ServiceOffering{},
		&entity.Practitioner{},
		&entity.Booking{},
		&entity.AuditLog{},
	))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newTestStore(t *testing.T) (*BookingStore, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := logrus.New()
	return NewBookingStore(db, log, repository.NewBookingRepository()), db
}

var referenceSeq atomic.Int64

func testBooking(practitionerID int, start time.Time, duration time.Duration, status entity.BookingStatus) *entity.Booking {
	slot := entity.NewTimeSlot(start, duration)
	return &entity.Booking{
		ServiceOfferingID: 1,
		PractitionerID:    practitionerID,
		StartLocal:        slot.StartLocal,
		EndLocal:          slot.EndLocal,
		CustomerName:      "Jordan Reyes",
		CustomerEmail:     "jordan@example.com",
		Reference:         fmt.Sprintf("VS-TEST-%06d", referenceSeq.Add(1)),
		Status:            status,
	}
}

func TestTryInsertCommitsFreeSlot(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	booking := testBooking(1, start, time.Hour, entity.BookingStatusPending)
	require.NoError(t, store.TryInsert(ctx, booking))
	assert.NotZero(t, booking.ID)

	slots, err := store.ActiveSlots(ctx, 1, start)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, time.Hour, slots[0].Duration())
}

func TestTryInsertRejectsOverlap(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.TryInsert(ctx, testBooking(1, start, time.Hour, entity.BookingStatusConfirmed)))

	// Same slot.
	err := store.TryInsert(ctx, testBooking(1, start, time.Hour, entity.BookingStatusPending))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, time.Hour, conflict.Existing.Duration())

	// Partial overlap.
	err = store.TryInsert(ctx, testBooking(1, start.Add(30*time.Minute), time.Hour, entity.BookingStatusPending))
	assert.ErrorAs(t, err, &conflict)

	// Straddling the existing booking.
	err = store.TryInsert(ctx, testBooking(1, start.Add(-30*time.Minute), 2*time.Hour, entity.BookingStatusPending))
	assert.ErrorAs(t, err, &conflict)
}

func TestTryInsertAllowsTouchingSlots(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.TryInsert(ctx, testBooking(1, start, time.Hour, entity.BookingStatusConfirmed)))

	// [11:00, 12:00) starts exactly where [10:00, 11:00) ends.
	require.NoError(t, store.TryInsert(ctx, testBooking(1, start.Add(time.Hour), time.Hour, entity.BookingStatusPending)))
	// [09:00, 10:00) ends exactly where [10:00, 11:00) starts.
	require.NoError(t, store.TryInsert(ctx, testBooking(1, start.Add(-time.Hour), time.Hour, entity.BookingStatusPending)))
}

func TestTryInsertScopedToPractitioner(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.TryInsert(ctx, testBooking(1, start, time.Hour, entity.BookingStatusConfirmed)))
	// The same slot for a different practitioner is free.
	require.NoError(t, store.TryInsert(ctx, testBooking(2, start, time.Hour, entity.BookingStatusConfirmed)))
}

func TestCancelledBookingReleasesSlot(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	first := testBooking(1, start, time.Hour, entity.BookingStatusPending)
	require.NoError(t, store.TryInsert(ctx, first))

	_, err := store.SetStatus(ctx, first.ID, entity.BookingStatusCancelled)
	require.NoError(t, err)

	// The released slot can be booked again.
	second := testBooking(1, start, time.Hour, entity.BookingStatusPending)
	require.NoError(t, store.TryInsert(ctx, second))

	slots, err := store.ActiveSlots(ctx, 1, start)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestConcurrentTryInsertSingleWinner(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	const attempts = 10
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.TryInsert(ctx, testBooking(1, start, time.Hour, entity.BookingStatusPending))
		}()
	}
	wg.Wait()
	close(results)

	var committed, conflicted int
	for err := range results {
		if err == nil {
			committed++
			continue
		}
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		conflicted++
	}

	assert.Equal(t, 1, committed)
	assert.Equal(t, attempts-1, conflicted)

	slots, err := store.ActiveSlots(ctx, 1, start)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestSetStatusTransitions(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	booking := testBooking(1, start, time.Hour, entity.BookingStatusPending)
	require.NoError(t, store.TryInsert(ctx, booking))

	confirmed, err := store.SetStatus(ctx, booking.ID, entity.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, confirmed.Status)

	// Confirming an already confirmed booking succeeds without change.
	again, err := store.SetStatus(ctx, booking.ID, entity.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, again.Status)

	// Confirmed cannot go back to Pending.
	_, err = store.SetStatus(ctx, booking.ID, entity.BookingStatusPending)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	cancelled, err := store.SetStatus(ctx, booking.ID, entity.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)

	// Cancelled is terminal.
	_, err = store.SetStatus(ctx, booking.ID, entity.BookingStatusConfirmed)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	_, err = store.SetStatus(ctx, booking.ID, entity.BookingStatusCancelled)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestSetStatusUnknownBooking(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.SetStatus(context.Background(), 9999, entity.BookingStatusConfirmed)
	assert.True(t, errors.Is(err, ErrBookingNotFound))
}

func TestActiveSlotsExcludesOtherDays(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.TryInsert(ctx, testBooking(1, day, time.Hour, entity.BookingStatusConfirmed)))
	require.NoError(t, store.TryInsert(ctx, testBooking(1, day.AddDate(0, 0, 1), time.Hour, entity.BookingStatusConfirmed)))

	slots, err := store.ActiveSlots(ctx, 1, day)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}
