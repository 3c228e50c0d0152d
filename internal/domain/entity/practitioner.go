package entity

import "time"

// Practitioner is the exclusive scheduling resource: all booking conflict
// checks are scoped to a single practitioner.
type Practitioner struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"fullName"`
	Bio       string    `gorm:"type:text" json:"bio"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Bookings []Booking `gorm:"foreignKey:PractitionerID" json:"bookings,omitempty"`
}

func (Practitioner) TableName() string {
	return "practitioners"
}
