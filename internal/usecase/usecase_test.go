package usecase

import (
	"fmt"
	"testing"
	"time"

	"vitalscan-booking-api/config"
	"vitalscan-booking-api/internal/domain/entity"
	"vitalscan-booking-api/internal/repository"
	"vitalscan-booking-api/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// harness wires the scheduling stack against an in-memory database and a
// miniredis-backed cache, seeded with one service and one practitioner.
type harness struct {
	db           *gorm.DB
	redisClient  *redis.Client
	store        *service.BookingStore
	cache        *service.AvailabilityCache
	audit        service.AuditService
	window       service.DayWindow
	clock        service.FixedClock
	offering     *entity.ServiceOffering
	practitioner *entity.Practitioner
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.ServiceOffering{},
		&entity.Practitioner{},
		&entity.Clinic{},
		&entity.Booking{},
		&entity.AuditLog{},
	))

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	log := logrus.New()
	window, err := service.ParseDayWindow("10:00", "17:00", 30)
	require.NoError(t, err)

	offering := &entity.ServiceOffering{
		Name:            "Meta Hunter Scan",
		DurationMinutes: 60,
		Price:           decimal.NewFromInt(129),
		IsActive:        true,
	}
	require.NoError(t, db.Create(offering).Error)

	practitioner := &entity.Practitioner{
		FullName: "Dan Lukic",
		IsActive: true,
	}
	require.NoError(t, db.Create(practitioner).Error)

	return &harness{
		db:           db,
		redisClient:  redisClient,
		store:        service.NewBookingStore(db, log, repository.NewBookingRepository()),
		cache:        service.NewAvailabilityCache(redisClient, log, time.Minute),
		audit:        service.NewAuditService(db, log, repository.NewAuditLogRepository()),
		window:       window,
		clock:        service.FixedClock{Time: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		offering:     offering,
		practitioner: practitioner,
	}
}

func (h *harness) availabilityUsecase() AvailabilityUsecase {
	return NewAvailabilityUsecase(
		h.db,
		logrus.New(),
		repository.NewServiceOfferingRepository(),
		repository.NewPractitionerRepository(),
		h.store,
		h.cache,
		h.window,
		time.UTC,
	)
}

func (h *harness) bookingUsecase(policy config.BookingConfig) BookingUsecase {
	return NewBookingUsecase(
		h.db,
		logrus.New(),
		repository.NewServiceOfferingRepository(),
		repository.NewPractitionerRepository(),
		repository.NewBookingRepository(),
		h.store,
		h.cache,
		h.audit,
		h.clock,
		h.window,
		time.UTC,
		policy,
	)
}
