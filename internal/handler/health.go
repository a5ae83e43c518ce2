package handler

import (
	"catboard/internal/domain"
	"catboard/internal/dto"
	"catboard/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler reports service liveness and cache reachability
type HealthHandler struct {
	cache domain.Cache
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	cacheStatus := "ok"
	if err := h.cache.Ping(c.Context()); err != nil {
		logger.Get().Warn("cache ping failed", zap.Error(err))
		cacheStatus = "unreachable"
	}

	return c.JSON(dto.HealthResponse{
		Status: "ok",
		Cache:  cacheStatus,
	})
}
