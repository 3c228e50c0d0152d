package http

import (
	"net/http"

	"vitalscan-booking-api/internal/delivery/http/handler"
	"vitalscan-booking-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	catalogHandler      *handler.CatalogHandler
	availabilityHandler *handler.AvailabilityHandler
	bookingHandler      *handler.BookingHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	availabilityHandler *handler.AvailabilityHandler,
	bookingHandler *handler.BookingHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		catalogHandler:      catalogHandler,
		availabilityHandler: availabilityHandler,
		bookingHandler:      bookingHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public catalog and booking routes
	api.HandleFunc("/services", r.catalogHandler.GetServices).Methods(http.MethodGet)
	api.HandleFunc("/practitioners", r.catalogHandler.GetPractitioners).Methods(http.MethodGet)
	api.HandleFunc("/clinic", r.catalogHandler.GetClinic).Methods(http.MethodGet)
	api.HandleFunc("/availability", r.availabilityHandler.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)

	// Auth routes
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Staff routes (protected)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)

	admin.HandleFunc("/services", r.catalogHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.catalogHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.catalogHandler.DeactivateService).Methods(http.MethodDelete)
	admin.HandleFunc("/practitioners", r.catalogHandler.CreatePractitioner).Methods(http.MethodPost)
	admin.HandleFunc("/practitioners/{id}", r.catalogHandler.UpdatePractitioner).Methods(http.MethodPut)
	admin.HandleFunc("/practitioners/{id}", r.catalogHandler.DeactivatePractitioner).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{id}/status", r.bookingHandler.UpdateBookingStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
