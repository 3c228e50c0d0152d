package usecase

import (
	"context"
	"errors"

	"vitalscan-booking-api/internal/converter"
	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/internal/domain/entity"
	"vitalscan-booking-api/internal/domain/repository"
	"vitalscan-booking-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrPractitionerNotFound = errors.New("practitioner not found")
	ErrClinicNotConfigured  = errors.New("clinic record missing")
)

// CatalogUsecase serves the public service/practitioner catalog and the
// staff-side catalog management.
type CatalogUsecase interface {
	ListServices(ctx context.Context) ([]dto.ServiceResponse, error)
	ListPractitioners(ctx context.Context) ([]dto.PractitionerResponse, error)
	GetClinic(ctx context.Context) (*dto.ClinicResponse, error)

	CreateService(ctx context.Context, actor string, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, actor string, id int, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeactivateService(ctx context.Context, actor string, id int) error
	CreatePractitioner(ctx context.Context, actor string, req *dto.CreatePractitionerRequest) (*dto.PractitionerResponse, error)
	UpdatePractitioner(ctx context.Context, actor string, id int, req *dto.UpdatePractitionerRequest) (*dto.PractitionerResponse, error)
	DeactivatePractitioner(ctx context.Context, actor string, id int) error
}

type catalogUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	serviceRepo      repository.ServiceOfferingRepository
	practitionerRepo repository.PractitionerRepository
	clinicRepo       repository.ClinicRepository
	audit            service.AuditService
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceOfferingRepository,
	practitionerRepo repository.PractitionerRepository,
	clinicRepo repository.ClinicRepository,
	audit service.AuditService,
) CatalogUsecase {
	return &catalogUsecase{
		db:               db,
		log:              log,
		serviceRepo:      serviceRepo,
		practitionerRepo: practitionerRepo,
		clinicRepo:       clinicRepo,
		audit:            audit,
	}
}

func (u *catalogUsecase) ListServices(ctx context.Context) ([]dto.ServiceResponse, error) {
	services, err := u.serviceRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}
	return converter.ServicesToResponses(services), nil
}

func (u *catalogUsecase) ListPractitioners(ctx context.Context) ([]dto.PractitionerResponse, error) {
	practitioners, err := u.practitionerRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list practitioners: %+v", err)
		return nil, err
	}
	return converter.PractitionersToResponses(practitioners), nil
}

func (u *catalogUsecase) GetClinic(ctx context.Context) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.Get(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotConfigured
	}
	return converter.ClinicToResponse(clinic), nil
}

func (u *catalogUsecase) CreateService(ctx context.Context, actor string, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	offering := &entity.ServiceOffering{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        true,
	}
	if err := u.serviceRepo.Create(u.db.WithContext(ctx), offering); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, actor, entity.AuditActionServiceCreate, entity.JSON{
		"service_id": offering.ID,
		"name":       offering.Name,
	})
	return converter.ServiceToResponse(offering), nil
}

func (u *catalogUsecase) UpdateService(ctx context.Context, actor string, id int, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	offering, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, ErrServiceNotFound
	}

	offering.Name = req.Name
	offering.Description = req.Description
	offering.DurationMinutes = req.DurationMinutes
	offering.Price = req.Price
	offering.IsActive = req.IsActive

	if err := u.serviceRepo.Update(u.db.WithContext(ctx), offering); err != nil {
		u.log.Warnf("Failed to update service %d: %+v", id, err)
		return nil, err
	}

	u.audit.Record(ctx, actor, entity.AuditActionServiceUpdate, entity.JSON{
		"service_id": offering.ID,
	})
	return converter.ServiceToResponse(offering), nil
}

func (u *catalogUsecase) DeactivateService(ctx context.Context, actor string, id int) error {
	affected, err := u.serviceRepo.Deactivate(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to deactivate service %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrServiceNotFound
	}

	u.audit.Record(ctx, actor, entity.AuditActionServiceDeactivate, entity.JSON{
		"service_id": id,
	})
	return nil
}

func (u *catalogUsecase) CreatePractitioner(ctx context.Context, actor string, req *dto.CreatePractitionerRequest) (*dto.PractitionerResponse, error) {
	practitioner := &entity.Practitioner{
		FullName: req.FullName,
		Bio:      req.Bio,
		IsActive: true,
	}
	if err := u.practitionerRepo.Create(u.db.WithContext(ctx), practitioner); err != nil {
		u.log.Warnf("Failed to create practitioner: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, actor, entity.AuditActionPractitionerCreate, entity.JSON{
		"practitioner_id": practitioner.ID,
		"name":            practitioner.FullName,
	})
	return converter.PractitionerToResponse(practitioner), nil
}

func (u *catalogUsecase) UpdatePractitioner(ctx context.Context, actor string, id int, req *dto.UpdatePractitionerRequest) (*dto.PractitionerResponse, error) {
	practitioner, err := u.practitionerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if practitioner == nil {
		return nil, ErrPractitionerNotFound
	}

	practitioner.FullName = req.FullName
	practitioner.Bio = req.Bio
	practitioner.IsActive = req.IsActive

	if err := u.practitionerRepo.Update(u.db.WithContext(ctx), practitioner); err != nil {
		u.log.Warnf("Failed to update practitioner %d: %+v", id, err)
		return nil, err
	}

	u.audit.Record(ctx, actor, entity.AuditActionPractitionerUpdate, entity.JSON{
		"practitioner_id": practitioner.ID,
	})
	return converter.PractitionerToResponse(practitioner), nil
}

func (u *catalogUsecase) DeactivatePractitioner(ctx context.Context, actor string, id int) error {
	affected, err := u.practitionerRepo.Deactivate(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to deactivate practitioner %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPractitionerNotFound
	}

	u.audit.Record(ctx, actor, entity.AuditActionPractitionerDeact, entity.JSON{
		"practitioner_id": id,
	})
	return nil
}
