package converter

import (
	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/internal/domain/entity"
)

// ServiceToResponse converts a ServiceOffering entity to its DTO.
func ServiceToResponse(service *entity.ServiceOffering) *dto.ServiceResponse {
	if service == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:              service.ID,
		Name:            service.Name,
		Description:     service.Description,
		DurationMinutes: service.DurationMinutes,
		Price:           service.Price,
		IsActive:        service.IsActive,
	}
}

// ServicesToResponses converts a slice of ServiceOffering entities.
func ServicesToResponses(services []entity.ServiceOffering) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = *ServiceToResponse(&service)
	}
	return responses
}

// PractitionerToResponse converts a Practitioner entity to its DTO.
func PractitionerToResponse(practitioner *entity.Practitioner) *dto.PractitionerResponse {
	if practitioner == nil {
		return nil
	}
	return &dto.PractitionerResponse{
		ID:       practitioner.ID,
		FullName: practitioner.FullName,
		Bio:      practitioner.Bio,
		IsActive: practitioner.IsActive,
	}
}

// PractitionersToResponses converts a slice of Practitioner entities.
func PractitionersToResponses(practitioners []entity.Practitioner) []dto.PractitionerResponse {
	responses := make([]dto.PractitionerResponse, len(practitioners))
	for i, practitioner := range practitioners {
		responses[i] = *PractitionerToResponse(&practitioner)
	}
	return responses
}

// ClinicToResponse converts the Clinic entity to its DTO.
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}
	return &dto.ClinicResponse{
		Name:     clinic.Name,
		Address:  clinic.Address,
		Timezone: clinic.Timezone,
	}
}
