package service

import (
	"context"
	"testing"
	"time"

	"vitalscan-booking-api/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*AvailabilityCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewAvailabilityCache(client, logrus.New(), time.Minute), mr
}

func daySlots(day time.Time) []SlotAvailability {
	return []SlotAvailability{
		{Slot: entity.NewTimeSlot(day.Add(10*time.Hour), time.Hour), Available: false},
		{Slot: entity.NewTimeSlot(day.Add(11*time.Hour), time.Hour), Available: true},
	}
}

func TestAvailabilityCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_, ok := cache.Get(ctx, 1, 2, day)
	assert.False(t, ok)

	cache.Set(ctx, 1, 2, day, daySlots(day))

	cached, ok := cache.Get(ctx, 1, 2, day)
	require.True(t, ok)
	require.Len(t, cached, 2)
	assert.False(t, cached[0].Available)
	assert.True(t, cached[1].Available)
	assert.True(t, cached[0].Slot.StartLocal.Equal(day.Add(10*time.Hour)))

	// A different service variant is a separate entry.
	_, ok = cache.Get(ctx, 1, 3, day)
	assert.False(t, ok)
}

func TestAvailabilityCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	// Two service variants for the same practitioner and day, plus entries
	// for another day and another practitioner.
	cache.Set(ctx, 1, 2, day, daySlots(day))
	cache.Set(ctx, 1, 3, day, daySlots(day))
	cache.Set(ctx, 1, 2, otherDay, daySlots(otherDay))
	cache.Set(ctx, 7, 2, day, daySlots(day))

	cache.Invalidate(ctx, 1, day)

	_, ok := cache.Get(ctx, 1, 2, day)
	assert.False(t, ok)
	_, ok = cache.Get(ctx, 1, 3, day)
	assert.False(t, ok)

	_, ok = cache.Get(ctx, 1, 2, otherDay)
	assert.True(t, ok)
	_, ok = cache.Get(ctx, 7, 2, day)
	assert.True(t, ok)
}

func TestAvailabilityCacheExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	cache.Set(ctx, 1, 2, day, daySlots(day))
	mr.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, 1, 2, day)
	assert.False(t, ok)
}
