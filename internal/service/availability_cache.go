package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vitalscan-booking-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const availabilityKeyPrefix = "availability:"

// SlotAvailability is one grid slot with its free/busy flag, the output
// unit of the availability engine.
type SlotAvailability struct {
	Slot      entity.TimeSlot `json:"slot"`
	Available bool            `json:"available"`
}

// AvailabilityCache keeps computed day availability in Redis under a short
// TTL. It is a pure optimization: every failure degrades to a cache miss,
// and the authoritative conflict check still happens inside the store at
// commit time.
type AvailabilityCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func availabilityKey(practitionerID int, day time.Time, serviceID int) string {
	return fmt.Sprintf("%s%d:%s:%d", availabilityKeyPrefix, practitionerID, day.Format("2006-01-02"), serviceID)
}

// Get returns the cached slot list and whether it was present.
func (c *AvailabilityCache) Get(ctx context.Context, practitionerID, serviceID int, day time.Time) ([]SlotAvailability, bool) {
	payload, err := c.client.Get(ctx, availabilityKey(practitionerID, day, serviceID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Availability cache read failed: %+v", err)
		}
		return nil, false
	}

	var slots []SlotAvailability
	if err := json.Unmarshal(payload, &slots); err != nil {
		c.log.Warnf("Availability cache held malformed payload: %+v", err)
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, practitionerID, serviceID int, day time.Time, slots []SlotAvailability) {
	payload, err := json.Marshal(slots)
	if err != nil {
		c.log.Warnf("Failed to marshal availability for cache: %+v", err)
		return
	}
	if err := c.client.Set(ctx, availabilityKey(practitionerID, day, serviceID), payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Availability cache write failed: %+v", err)
	}
}

// Invalidate drops every cached service variant for the practitioner and
// day. Called after each commit or cancellation; a failed invalidation is
// logged and absorbed, the TTL bounds the staleness.
func (c *AvailabilityCache) Invalidate(ctx context.Context, practitionerID int, day time.Time) {
	pattern := fmt.Sprintf("%s%d:%s:*", availabilityKeyPrefix, practitionerID, day.Format("2006-01-02"))

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warnf("Availability cache scan failed: %+v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("Availability cache invalidation failed: %+v", err)
	}
}
