// Package main provides the entrypoint for the RailScout API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/railscout/railscout/internal/api"
	"github.com/railscout/railscout/internal/api/middleware"
	"github.com/railscout/railscout/internal/api/models"
	"github.com/railscout/railscout/internal/provider/resilience"
	"github.com/railscout/railscout/internal/rail"
	"github.com/railscout/railscout/internal/rtt"
	"github.com/railscout/railscout/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "railscout-api"

	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting RailScout API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	rttUsername := os.Getenv("RTT_USERNAME")
	rttPassword := os.Getenv("RTT_PASSWORD")
	if rttUsername == "" || rttPassword == "" {
		log.Fatal().Msg("RTT_USERNAME and RTT_PASSWORD must be set (see https://api.rtt.io)")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	providerMetrics, err := telemetry.NewProviderMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize provider metrics")
		os.Exit(1)
	}

	// Upstream HTTP client with retry and circuit breaking. Built here so
	// the breaker state can feed the status endpoint.
	upstreamClient := resilience.NewClient(resilience.DefaultClientConfig(rtt.ProviderName))

	rttClient := rtt.NewClient(rtt.ClientConfig{
		Username:   rttUsername,
		Password:   rttPassword,
		HTTPClient: upstreamClient,
		Metrics:    providerMetrics,
		Logger:     log,
	})
	log.Info().Str("provider", rttClient.Name()).Msg("timetable gateway initialized")

	railService := rail.NewService(rail.ServiceConfig{
		Gateway: rttClient,
		Logger:  log,
	})
	log.Info().Msg("rail service initialized")

	providerStatus := func() []models.ProviderStatus {
		status := models.HealthStatusOK
		var message *string
		switch upstreamClient.State() {
		case gobreaker.StateOpen:
			status = models.HealthStatusFail
			msg := "circuit breaker open"
			message = &msg
		case gobreaker.StateHalfOpen:
			status = models.HealthStatusDegraded
			msg := "circuit breaker half-open"
			message = &msg
		}
		return []models.ProviderStatus{
			{Provider: rttClient.Name(), Status: status, Message: message},
		}
	}

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:        Version,
		BuildTime:      BuildTime,
		Logger:         log,
		ServiceName:    serviceName,
		Metrics:        metrics,
		RailService:    railService,
		ProviderStatus: providerStatus,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
