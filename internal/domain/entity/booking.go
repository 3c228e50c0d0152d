package entity

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// IsValid reports whether the status is one of the known values.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking represents a customer appointment with a practitioner.
//
// Invariant: for a given practitioner, the slots of all bookings with
// status Pending or Confirmed are pairwise non-overlapping. Cancelled
// bookings represent released time and may overlap freely. Bookings are
// never deleted; cancellation is a status change that preserves history.
type Booking struct {
	ID                int           `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceOfferingID int           `gorm:"not null;index" json:"serviceOfferingId"`
	PractitionerID    int           `gorm:"not null;index:idx_bookings_practitioner_start" json:"practitionerId"`
	StartLocal        time.Time     `gorm:"not null;index:idx_bookings_practitioner_start" json:"startLocal"`
	EndLocal          time.Time     `gorm:"not null" json:"endLocal"`
	CustomerName      string        `gorm:"type:varchar(255);not null" json:"customerName"`
	CustomerEmail     string        `gorm:"type:varchar(255);not null" json:"customerEmail"`
	CustomerPhone     string        `gorm:"type:varchar(50)" json:"customerPhone"`
	Notes             string        `gorm:"type:text" json:"notes"`
	Reference         string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"reference"`
	Status            BookingStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	CreatedAt         time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	ServiceOffering ServiceOffering `gorm:"foreignKey:ServiceOfferingID" json:"serviceOffering,omitempty"`
	Practitioner    Practitioner    `gorm:"foreignKey:PractitionerID" json:"practitioner,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// Slot returns the booking's time interval as a value.
func (b *Booking) Slot() TimeSlot {
	return TimeSlot{StartLocal: b.StartLocal, EndLocal: b.EndLocal}
}

// IsPending checks if booking is in pending status
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsConfirmed checks if booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// IsActive reports whether the booking occupies its slot, i.e. it takes
// part in conflict checks.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// CanTransitionTo applies the booking state machine:
//
//	Pending   -> Confirmed | Cancelled
//	Confirmed -> Confirmed (idempotent no-op) | Cancelled
//	Cancelled -> (terminal)
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	switch b.Status {
	case BookingStatusPending:
		return target == BookingStatusConfirmed || target == BookingStatusCancelled
	case BookingStatusConfirmed:
		return target == BookingStatusConfirmed || target == BookingStatusCancelled
	default:
		return false
	}
}
