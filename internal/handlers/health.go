package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/cadastre/internal/middleware"
)

const (
	// APIVersion is the current version of the API
	APIVersion = "0.1.0"
	// HealthCheckTimeout is the timeout for each readiness check
	HealthCheckTimeout = 2 * time.Second
)

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check and readiness endpoints.
type HealthHandler struct {
	checks      map[string]Pinger
	startTime   time.Time
	env         string
	registryURL string
}

// NewHealthHandler creates a new HealthHandler instance. checks maps a
// dependency name to its Pinger; an empty map means the service is always
// ready. The registry itself is not pinged, since every probe would cost an
// upstream request.
func NewHealthHandler(checks map[string]Pinger, env, registryURL string) *HealthHandler {
	if checks == nil {
		checks = map[string]Pinger{}
	}
	return &HealthHandler{
		checks:      checks,
		startTime:   time.Now(),
		env:         env,
		registryURL: registryURL,
	}
}

// HealthResponse represents the basic health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// InfoResponse represents the API information response.
type InfoResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
	Registry    string `json:"registry"`
}

// Health handles GET /health endpoint.
// This is a basic health check that always returns 200 OK.
// It does not check any dependencies and is used for basic liveness checks.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// Ready handles GET /health/ready endpoint.
// Returns 200 OK if every dependency check passes, 503 Service Unavailable otherwise.
func (h *HealthHandler) Ready(c *gin.Context) {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make(map[string]string, len(names))
	ready := true
	for _, name := range names {
		ctx, cancel := context.WithTimeout(c.Request.Context(), HealthCheckTimeout)
		err := h.checks[name].Ping(ctx)
		cancel()

		if err != nil {
			ready = false
			results[name] = "disconnected"
			// Get logger from context (set by logger middleware)
			if log := middleware.GetLogger(c); log != nil {
				log.Error("Readiness check failed", err, map[string]interface{}{
					"check":   name,
					"timeout": HealthCheckTimeout.String(),
				})
			}
			continue
		}
		results[name] = "connected"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status: "not_ready",
			Checks: results,
		})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{
		Status: "ready",
		Checks: results,
	})
}

// Info handles GET /api/v1/info endpoint.
// Returns API metadata including version, environment, uptime and the registry base URL.
func (h *HealthHandler) Info(c *gin.Context) {
	uptime := time.Since(h.startTime)

	c.JSON(http.StatusOK, InfoResponse{
		Version:     APIVersion,
		Environment: h.env,
		Uptime:      formatUptime(uptime),
		Registry:    h.registryURL,
	})
}

// formatUptime formats a duration into a human-readable string.
func formatUptime(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
