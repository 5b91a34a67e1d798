package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/contact-form/internal/middleware"
	"github.com/deppfellow/contact-form/internal/model"
	"github.com/deppfellow/contact-form/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler serves the liveness probe and the dependency report.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// Health handles GET /health. It never touches dependencies and always
// answers 200.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, model.HealthResponse{
		Status:  "ok",
		Message: "Server is running",
	})
}

// CheckHealth handles GET /status: it pings each configured dependency
// and answers 503 when any of them fails.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	obs := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !obs.HealthChecks.Enabled {
		return c.JSON(http.StatusOK, response)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), obs.HealthChecks.Timeout)
	defer cancel()

	isHealthy := true

	if obs.HasCheck("store") {
		if !h.runCheck(ctx, checks, "store", h.server.DB.Ping) {
			isHealthy = false
		}
		checks["store"].(map[string]interface{})["driver"] = h.server.DB.Name()
	}

	// Redis is optional: it is reported but never marks the service unhealthy.
	if obs.HasCheck("redis") && h.server.Redis != nil {
		h.runCheck(ctx, checks, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
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
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) runCheck(ctx context.Context, checks map[string]interface{}, name string, ping func(context.Context) error) bool {
	logger := zerolog.Ctx(ctx)
	checkStart := time.Now()

	if err := ping(ctx); err != nil {
		checks[name] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(checkStart).String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", time.Since(checkStart)).
			Msg("dependency health check failed")

		h.recordEvent(map[string]interface{}{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": time.Since(checkStart).Milliseconds(),
			"error_message":    err.Error(),
		})
		return false
	}

	checks[name] = map[string]interface{}{
		"status":        "healthy",
		"response_time": time.Since(checkStart).String(),
	}
	return true
}

func (h *HealthHandler) recordEvent(attrs map[string]interface{}) {
	if h.server.LoggerService == nil {
		return
	}
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}
