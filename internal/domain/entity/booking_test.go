package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusIsValid(t *testing.T) {
	assert.True(t, BookingStatusPending.IsValid())
	assert.True(t, BookingStatusConfirmed.IsValid())
	assert.True(t, BookingStatusCancelled.IsValid())
	assert.False(t, BookingStatus("Archived").IsValid())
	assert.False(t, BookingStatus("pending").IsValid())
}

func TestBookingCanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   BookingStatus
		to     BookingStatus
		want   bool
	}{
		{"pending to confirmed", BookingStatusPending, BookingStatusConfirmed, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"pending to pending", BookingStatusPending, BookingStatusPending, false},
		{"confirmed to confirmed is idempotent", BookingStatusConfirmed, BookingStatusConfirmed, true},
		{"confirmed to cancelled", BookingStatusConfirmed, BookingStatusCancelled, true},
		{"confirmed back to pending", BookingStatusConfirmed, BookingStatusPending, false},
		{"cancelled is terminal for confirm", BookingStatusCancelled, BookingStatusConfirmed, false},
		{"cancelled is terminal for pending", BookingStatusCancelled, BookingStatusPending, false},
		{"cancelled is terminal for cancel", BookingStatusCancelled, BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, booking.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingStatusPending}).IsActive())
	assert.True(t, (&Booking{Status: BookingStatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: BookingStatusCancelled}).IsActive())
}
