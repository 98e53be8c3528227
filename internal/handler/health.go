package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/estate-listings/internal/middleware"
	"github.com/deppfellow/estate-listings/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler exposes GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// dependencyCheck pings one backend. A nil ping means the backend is not
// configured, which is reported but is not a failure.
type dependencyCheck struct {
	name string
	ping func(ctx context.Context) error
	// required failures turn the whole status unhealthy.
	required bool
}

func (h *HealthHandler) dependencies() []dependencyCheck {
	checks := []dependencyCheck{
		{name: "database", required: true},
		{name: "mongo", required: true},
		{name: "redis"},
	}

	if h.server.DB != nil {
		checks[0].ping = h.server.DB.Pool.Ping
	}
	if h.server.Mongo != nil {
		checks[1].ping = h.server.Mongo.Ping
	}
	if h.server.Redis != nil {
		checks[2].ping = func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}
	}
	return checks
}

// CheckHealth returns 200 when every configured required dependency answers,
// 503 otherwise. Redis trouble is reported without failing the check.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"fallback":    h.server.Fallback != nil,
		"checks":      checks,
	}

	isHealthy := true
	for _, dep := range h.dependencies() {
		if !cfg.CheckEnabled(dep.name) {
			continue
		}

		result, ok := h.runCheck(c.Request().Context(), &logger, dep)
		checks[dep.name] = result
		if !ok && dep.required {
			isHealthy = false
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordEvent(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) runCheck(parent context.Context, logger *zerolog.Logger, dep dependencyCheck) (map[string]interface{}, bool) {
	if dep.ping == nil {
		return map[string]interface{}{"status": "not_configured"}, true
	}

	ctx, cancel := context.WithTimeout(parent, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	checkStart := time.Now()
	err := dep.ping(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", dep.name).
			Dur("response_time", elapsed).
			Msg("dependency health check failed")

		h.recordEvent(map[string]interface{}{
			"check_type":       dep.name,
			"operation":        "health_check",
			"error_type":       dep.name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return map[string]interface{}{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}, false
	}

	return map[string]interface{}{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}, true
}

// recordEvent sends a HealthCheckError custom event when New Relic is on.
func (h *HealthHandler) recordEvent(attrs map[string]interface{}) {
	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
	}
}
