package handler

import (
	"catboard/internal/domain"
	"catboard/internal/dto"
	"catboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Fetches a fresh question set and opens a session with shuffled answer options
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizSessionResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /quiz [post]
func (h *QuizHandler) StartSession(c *fiber.Ctx) error {
	session, err := h.service.StartSession(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(session)
}

// SubmitAnswers godoc
// @Summary Grade a quiz session
// @Description Evaluates one selected answer per question; a session can be graded only once
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SubmitAnswersRequest true "Selected answers in question order"
// @Success 200 {object} dto.QuizResultResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/{id}/answers [post]
func (h *QuizHandler) SubmitAnswers(c *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	result, err := h.service.SubmitAnswers(c.Context(), c.Params("id"), req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
