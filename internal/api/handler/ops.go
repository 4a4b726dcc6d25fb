// Package handler provides HTTP handlers for the RailScout API.
package handler

import (
	"net/http"
	"time"

	"github.com/railscout/railscout/internal/api/models"
	"github.com/railscout/railscout/internal/api/response"
)

// ProviderStatusFunc reports the current health of the upstream providers.
type ProviderStatusFunc func() []models.ProviderStatus

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version        string
	buildTime      string
	providerStatus ProviderStatusFunc
}

// NewOpsHandler creates a new OpsHandler. providerStatus may be nil, in which
// case the status endpoint reports no providers.
func NewOpsHandler(version, buildTime string, providerStatus ProviderStatusFunc) *OpsHandler {
	return &OpsHandler{
		version:        version,
		buildTime:      buildTime,
		providerStatus: providerStatus,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
// The service holds no local state, so readiness mirrors liveness.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - upstream provider status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	var providers []models.ProviderStatus
	if h.providerStatus != nil {
		providers = h.providerStatus()
	}

	overall := models.HealthStatusOK
	for _, p := range providers {
		switch p.Status {
		case models.HealthStatusFail:
			overall = models.HealthStatusFail
		case models.HealthStatusDegraded:
			if overall == models.HealthStatusOK {
				overall = models.HealthStatusDegraded
			}
		}
	}

	status := models.SystemStatus{
		Status:    overall,
		Time:      models.Timestamp(time.Now()),
		Providers: providers,
	}
	response.JSON(w, r, http.StatusOK, status)
}
