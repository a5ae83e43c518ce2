package handler

import (
	"catboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// NavigationHandler handles router dispatch HTTP requests
type NavigationHandler struct {
	router *service.Router
}

// NewNavigationHandler creates a new NavigationHandler instance
func NewNavigationHandler(router *service.Router) *NavigationHandler {
	return &NavigationHandler{router: router}
}

// Navigate godoc
// @Summary Navigate to a page
// @Description Dispatches the page loader and returns the target view payload; unknown pages return a nil view
// @Tags navigation
// @Produce json
// @Param page path string true "Page key"
// @Success 200 {object} dto.NavigationResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /navigate/{page} [post]
func (h *NavigationHandler) Navigate(c *fiber.Ctx) error {
	resp, err := h.router.Navigate(c.Context(), c.Params("page"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
