// Package api provides the HTTP API for RailScout.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/railscout/railscout/internal/api/handler"
	"github.com/railscout/railscout/internal/api/middleware"
	"github.com/railscout/railscout/internal/api/response"
	"github.com/railscout/railscout/internal/rail"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version        string
	BuildTime      string
	Logger         zerolog.Logger
	ServiceName    string
	Metrics        *middleware.Metrics
	RailService    *rail.Service
	ProviderStatus handler.ProviderStatusFunc
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "railscout-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.ProviderStatus)
	toolsHandler := handler.NewToolsHandler(cfg.RailService)

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, req, "resource not found")
	})

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		// Tool endpoints. Everything except lookup_station fans out to the
		// upstream timetable API, so those get the stricter limit.
		r.Route("/tools", func(r chi.Router) {
			r.Use(middleware.RequireJSON)

			r.Group(func(r chi.Router) {
				r.Use(expensiveRateLimit)
				r.Post("/get_station_board", toolsHandler.StationBoard)
				r.Post("/get_service_info", toolsHandler.ServiceInfo)
				r.Post("/search_journeys", toolsHandler.SearchJourneys)
				r.Post("/check_connection", toolsHandler.CheckConnection)
				r.Post("/analyze_route", toolsHandler.AnalyzeRoute)
			})

			r.With(standardRateLimit).Post("/lookup_station", toolsHandler.LookupStation)
		})
	})

	return r
}
