package handler

import (
	"catboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ClockHandler handles clock HTTP requests
type ClockHandler struct {
	clock *service.ClockService
}

// NewClockHandler creates a new ClockHandler instance
func NewClockHandler(clock *service.ClockService) *ClockHandler {
	return &ClockHandler{clock: clock}
}

// Current godoc
// @Summary Get the clock state
// @Description Returns the hand angles and digital readout last published by the clock runner
// @Tags clock
// @Produce json
// @Success 200 {object} dto.ClockResponse
// @Router /clock [get]
func (h *ClockHandler) Current(c *fiber.Ctx) error {
	return c.JSON(h.clock.Current())
}
