package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOffering represents a bookable clinic service. DurationMinutes is
// the only attribute the scheduling core cares about; price and description
// are presentation data.
type ServiceOffering struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	DurationMinutes int             `gorm:"not null" json:"durationMinutes"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive        bool            `gorm:"not null;default:true" json:"isActive"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ServiceOffering) TableName() string {
	return "service_offerings"
}

// Duration returns the service length as a time.Duration.
func (s *ServiceOffering) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
