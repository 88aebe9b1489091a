package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker - проверка доступности зависимости
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - обработчик health check
type HealthHandler struct {
	postgres HealthChecker
	redis    HealthChecker
	logger   *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler
func NewHealthHandler(postgres, redis HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		postgres: postgres,
		redis:    redis,
		logger:   logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Проверяет доступность сервиса и его хранилищ
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	components := fiber.Map{
		"postgres": "healthy",
		"redis":    "healthy",
	}

	if err := h.postgres.Health(ctx); err != nil {
		h.logger.Warn("Postgres health check failed", zap.Error(err))
		components["postgres"] = "unhealthy"
		status = fiber.StatusServiceUnavailable
	}
	if err := h.redis.Health(ctx); err != nil {
		h.logger.Warn("Redis health check failed", zap.Error(err))
		components["redis"] = "unhealthy"
		status = fiber.StatusServiceUnavailable
	}

	overall := "healthy"
	if status != fiber.StatusOK {
		overall = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":     overall,
		"components": components,
		"time":       time.Now(),
	})
}
