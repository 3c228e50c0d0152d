package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitalscan-booking-api/config"
	deliveryHttp "vitalscan-booking-api/internal/delivery/http"
	"vitalscan-booking-api/internal/delivery/http/handler"
	"vitalscan-booking-api/internal/delivery/http/middleware"
	"vitalscan-booking-api/internal/infrastructure/cache"
	"vitalscan-booking-api/internal/infrastructure/database"
	"vitalscan-booking-api/internal/repository"
	"vitalscan-booking-api/internal/service"
	"vitalscan-booking-api/internal/usecase"
	"vitalscan-booking-api/pkg/jwt"
	"vitalscan-booking-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Clinic-local scheduling parameters
	location, err := time.LoadLocation(cfg.Clinic.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid clinic timezone %q: %w", cfg.Clinic.Timezone, err)
	}

	window, err := service.ParseDayWindow(cfg.Clinic.DayStart, cfg.Clinic.DayEnd, cfg.Clinic.SlotStepMinutes)
	if err != nil {
		return nil, fmt.Errorf("invalid clinic day window: %w", err)
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	serviceRepo := repository.NewServiceOfferingRepository()
	practitionerRepo := repository.NewPractitionerRepository()
	bookingRepo := repository.NewBookingRepository()
	clinicRepo := repository.NewClinicRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize domain services
	clock := service.NewClinicClock(location)
	store := service.NewBookingStore(db, log, bookingRepo)
	availabilityCache := service.NewAvailabilityCache(redisClient, log, cfg.Booking.CacheTTL)
	auditService := service.NewAuditService(db, log, auditRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, redisClient, jwtService, auditService, cfg.Admin)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, serviceRepo, practitionerRepo, clinicRepo, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, serviceRepo, practitionerRepo, store, availabilityCache, window, location)
	bookingUsecase := usecase.NewBookingUsecase(db, log, serviceRepo, practitionerRepo, bookingRepo, store, availabilityCache, auditService, clock, window, location, cfg.Booking)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, catalogHandler, availabilityHandler, bookingHandler, auditLogHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
