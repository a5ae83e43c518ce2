package handler

import (
	"catboard/internal/dto"
	"catboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatHandler handles cat browsing HTTP requests
type CatHandler struct {
	service service.CatService
}

// NewCatHandler creates a new CatHandler instance
func NewCatHandler(service service.CatService) *CatHandler {
	return &CatHandler{service: service}
}

// GetPosts godoc
// @Summary List cat posts
// @Description Returns the cat post cards, with descriptions truncated for the grid view
// @Tags cats
// @Produce json
// @Param limit query int false "Maximum number of cats"
// @Success 200 {object} dto.PostsResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /cats [get]
func (h *CatHandler) GetPosts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	posts, err := h.service.GetPosts(c.Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// GetCatDetail godoc
// @Summary Get one cat in full
// @Description Returns the detail view behind a post card: description paragraphs, trait scores and image
// @Tags cats
// @Produce json
// @Param id path string true "Cat ID"
// @Success 200 {object} dto.CatDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /cats/{id} [get]
func (h *CatHandler) GetCatDetail(c *fiber.Ctx) error {
	detail, err := h.service.GetCatDetail(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

// GetCarousel godoc
// @Summary Get the slide deck
// @Description Returns the carousel slides; the deck is built once and reused afterwards
// @Tags cats
// @Produce json
// @Success 200 {object} dto.CarouselResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /cats/carousel [get]
func (h *CatHandler) GetCarousel(c *fiber.Ctx) error {
	carousel, err := h.service.GetCarousel(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(carousel)
}

// Invalidate godoc
// @Summary Invalidate the cat cache
// @Description Drops every cached cat list so the next read hits the upstream catalog
// @Tags cats
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /cats/invalidate [post]
func (h *CatHandler) Invalidate(c *fiber.Ctx) error {
	if err := h.service.Invalidate(c.Context()); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "cat cache invalidated"})
}
