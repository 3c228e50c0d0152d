package entity

import (
	"fmt"
	"time"
)

// TimeSlot is a half-open interval [StartLocal, EndLocal) in clinic-local
// time. It is a value type with no identity.
type TimeSlot struct {
	StartLocal time.Time `json:"startLocal"`
	EndLocal   time.Time `json:"endLocal"`
}

// NewTimeSlot builds a slot covering duration from start.
func NewTimeSlot(start time.Time, duration time.Duration) TimeSlot {
	return TimeSlot{
		StartLocal: start,
		EndLocal:   start.Add(duration),
	}
}

// Overlaps reports whether two half-open intervals intersect.
// [a,b) and [c,d) overlap iff a < d && c < b, so touching boundaries
// (one slot ending exactly where another starts) do not conflict.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.StartLocal.Before(other.EndLocal) && other.StartLocal.Before(s.EndLocal)
}

// Duration returns the slot length.
func (s TimeSlot) Duration() time.Duration {
	return s.EndLocal.Sub(s.StartLocal)
}

// IsZero reports whether the slot is uninitialized.
func (s TimeSlot) IsZero() bool {
	return s.StartLocal.IsZero() && s.EndLocal.IsZero()
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%s - %s", s.StartLocal.Format("2006-01-02 15:04"), s.EndLocal.Format("15:04"))
}
