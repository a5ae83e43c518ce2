package handler

import (
	"catboard/internal/domain"
	"catboard/internal/dto"
	"catboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SignupHandler handles sign-up form HTTP requests
type SignupHandler struct {
	service service.SignupService
}

// NewSignupHandler creates a new SignupHandler instance
func NewSignupHandler(service service.SignupService) *SignupHandler {
	return &SignupHandler{service: service}
}

// GetForm godoc
// @Summary Get the sign-up form state
// @Tags signup
// @Produce json
// @Success 200 {object} dto.SignupFormResponse
// @Router /signup [get]
func (h *SignupHandler) GetForm(c *fiber.Ctx) error {
	return c.JSON(h.service.Form())
}

// EditField godoc
// @Summary Edit one form field
// @Description Applies a field edit, marking it touched and revalidating it
// @Tags signup
// @Accept json
// @Produce json
// @Param request body dto.FieldEditRequest true "Field name and new value"
// @Success 200 {object} dto.SignupFormResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /signup/fields [post]
func (h *SignupHandler) EditField(c *fiber.Ctx) error {
	var req dto.FieldEditRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	form, err := h.service.EditField(req.Field, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(form)
}

// Submit godoc
// @Summary Submit the sign-up form
// @Description Revalidates every field and sends the user record once when all pass
// @Tags signup
// @Produce json
// @Success 200 {object} dto.SignupResultResponse
// @Failure 400 {object} middleware.FieldErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /signup [post]
func (h *SignupHandler) Submit(c *fiber.Ctx) error {
	result, err := h.service.Submit(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(result)
}
