package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestTimeSlotOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeSlot
		b    TimeSlot
		want bool
	}{
		{
			name: "identical slots overlap",
			a:    NewTimeSlot(at(10, 0), time.Hour),
			b:    NewTimeSlot(at(10, 0), time.Hour),
			want: true,
		},
		{
			name: "partial overlap",
			a:    NewTimeSlot(at(10, 0), time.Hour),
			b:    NewTimeSlot(at(10, 30), time.Hour),
			want: true,
		},
		{
			name: "containment",
			a:    NewTimeSlot(at(10, 0), 2*time.Hour),
			b:    NewTimeSlot(at(10, 30), 30*time.Minute),
			want: true,
		},
		{
			name: "touching boundaries do not conflict",
			a:    NewTimeSlot(at(10, 0), time.Hour),
			b:    NewTimeSlot(at(11, 0), time.Hour),
			want: false,
		},
		{
			name: "touching boundaries reversed",
			a:    NewTimeSlot(at(11, 0), time.Hour),
			b:    NewTimeSlot(at(10, 0), time.Hour),
			want: false,
		},
		{
			name: "disjoint slots",
			a:    NewTimeSlot(at(10, 0), time.Hour),
			b:    NewTimeSlot(at(14, 0), time.Hour),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestNewTimeSlot(t *testing.T) {
	slot := NewTimeSlot(at(10, 0), 45*time.Minute)

	assert.Equal(t, at(10, 0), slot.StartLocal)
	assert.Equal(t, at(10, 45), slot.EndLocal)
	assert.Equal(t, 45*time.Minute, slot.Duration())
	assert.False(t, slot.IsZero())
	assert.True(t, TimeSlot{}.IsZero())
}
