package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/ria/event-planner-website/internal/api/handlers"
	"github.com/ria/event-planner-website/internal/api/middleware"
	"github.com/ria/event-planner-website/internal/config"
	"github.com/ria/event-planner-website/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	eventHandler := handlers.NewEventHandler(services.Event)
	participantHandler := handlers.NewParticipantHandler(services.Participant)
	vendorHandler := handlers.NewVendorHandler(services.Vendor)
	aiHandler := handlers.NewAIHandler(services.AI)

	authLimiter := middleware.NewRateLimiter(cfg.AuthRatePerSecond, cfg.AuthRateBurst)

	r.Route("/api", func(r chi.Router) {
		// Auth routes
		r.Route("/auth", func(r chi.Router) {
			// Public, rate-limited
			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimit(authLimiter))
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)
			})

			// Protected
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/profile", authHandler.Profile)
				r.Put("/profile", authHandler.UpdateProfile)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			// Event routes
			r.Route("/events", func(r chi.Router) {
				r.Get("/", eventHandler.List)
				r.Post("/", eventHandler.Create)
				r.Get("/{id}", eventHandler.Get)
				r.Put("/{id}", eventHandler.Update)
				r.Delete("/{id}", eventHandler.Delete)

				// Participants
				r.Get("/{id}/participants", participantHandler.List)
				r.Post("/{id}/participants", participantHandler.Add)
			})

			// Vendor routes
			r.Route("/vendors", func(r chi.Router) {
				r.Get("/", vendorHandler.List)
				r.Get("/search", vendorHandler.Search)
				r.Get("/{id}", vendorHandler.Get)
			})

			// AI routes
			r.Route("/ai/events/{id}", func(r chi.Router) {
				r.Post("/schedule", aiHandler.GenerateSchedule)
				r.Post("/vendors", aiHandler.RecommendVendors)
				r.Post("/budget", aiHandler.OptimizeBudget)
			})
		})
	})

	return r
}
