package handler

import (
	"catboard/internal/domain"
	"catboard/internal/dto"
	"catboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ThemeHandler handles theme HTTP requests
type ThemeHandler struct {
	service service.ThemeService
}

// NewThemeHandler creates a new ThemeHandler instance
func NewThemeHandler(service service.ThemeService) *ThemeHandler {
	return &ThemeHandler{service: service}
}

// Current godoc
// @Summary Get the active theme
// @Tags theme
// @Produce json
// @Success 200 {object} dto.ThemeResponse
// @Router /theme [get]
func (h *ThemeHandler) Current(c *fiber.Ctx) error {
	theme, err := h.service.Current(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(theme)
}

// Change godoc
// @Summary Change the theme
// @Description Applies and persists an explicit theme choice
// @Tags theme
// @Accept json
// @Produce json
// @Param request body dto.ChangeThemeRequest true "Theme tag"
// @Success 200 {object} dto.ThemeResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /theme [put]
func (h *ThemeHandler) Change(c *fiber.Ctx) error {
	var req dto.ChangeThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	theme, err := h.service.Change(c.Context(), req.Theme)
	if err != nil {
		return err
	}
	return c.JSON(theme)
}

// Toggle godoc
// @Summary Toggle dark and light mode
// @Description Flips any dark scheme to light mode and anything else back to the default dark scheme, persisting the result
// @Tags theme
// @Produce json
// @Success 200 {object} dto.ThemeResponse
// @Router /theme/toggle [post]
func (h *ThemeHandler) Toggle(c *fiber.Ctx) error {
	theme, err := h.service.Toggle(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(theme)
}

// SyncSystemPreference godoc
// @Summary Report the OS color scheme
// @Description Adopts the OS preference when no theme was ever chosen explicitly; never persists
// @Tags theme
// @Accept json
// @Produce json
// @Param request body dto.SystemPreferenceRequest true "OS preference"
// @Success 200 {object} dto.ThemeResponse
// @Router /theme/system [post]
func (h *ThemeHandler) SyncSystemPreference(c *fiber.Ctx) error {
	var req dto.SystemPreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	theme, err := h.service.SyncSystemPreference(c.Context(), req.PrefersDark)
	if err != nil {
		return err
	}
	return c.JSON(theme)
}
