package dto

import "github.com/shopspring/decimal"

// Response DTOs

type ServiceResponse struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	IsActive        bool            `json:"isActive"`
}

type PractitionerResponse struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
	Bio      string `json:"bio"`
	IsActive bool   `json:"isActive"`
}

type ClinicResponse struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
}

// Admin request DTOs

type CreateServiceRequest struct {
	Name            string          `json:"name" validate:"required,max=255"`
	Description     string          `json:"description" validate:"omitempty,max=2000"`
	DurationMinutes int             `json:"durationMinutes" validate:"required,min=1"`
	Price           decimal.Decimal `json:"price" validate:"required"`
}

type UpdateServiceRequest struct {
	Name            string          `json:"name" validate:"required,max=255"`
	Description     string          `json:"description" validate:"omitempty,max=2000"`
	DurationMinutes int             `json:"durationMinutes" validate:"required,min=1"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	IsActive        bool            `json:"isActive"`
}

type CreatePractitionerRequest struct {
	FullName string `json:"fullName" validate:"required,max=255"`
	Bio      string `json:"bio" validate:"omitempty,max=2000"`
}

type UpdatePractitionerRequest struct {
	FullName string `json:"fullName" validate:"required,max=255"`
	Bio      string `json:"bio" validate:"omitempty,max=2000"`
	IsActive bool   `json:"isActive"`
}
