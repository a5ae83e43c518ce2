package middleware

import (
	"errors"
	"net/http"

	"catboard/internal/domain"
	"catboard/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// FieldErrorResponse is the error body for form validation failures,
// carrying the per-field messages.
type FieldErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Status  int                 `json:"status"`
	Fields  []domain.FieldError `json:"fields"`
}

// ErrorHandler is the centralized fiber error handler. It maps domain
// error codes to HTTP statuses and keeps the response bodies uniform.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var fieldErrors domain.FieldErrors
		if errors.As(err, &fieldErrors) {
			log.Warn("form validation failed",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(fieldErrors)),
			)
			return c.Status(http.StatusBadRequest).JSON(FieldErrorResponse{
				Code:    string(domain.ErrCodeValidation),
				Message: "Form validation failed",
				Status:  http.StatusBadRequest,
				Fields:  fieldErrors,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			log.Error("domain error",
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.String("path", c.Path()),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Err),
			)

			return c.Status(statusCode).JSON(ErrorResponse{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
				Status:  statusCode,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("http error",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    string(domain.ErrCodeInternal),
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		log.Error("unhandled error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.ErrCodeInternal),
			Message: "An unexpected error occurred",
			Status:  http.StatusInternalServerError,
		})
	}
}

func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.ErrCodeNotFound, domain.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case domain.ErrCodeInvalidInput, domain.ErrCodeValidation, domain.ErrCodeIncompleteAnswers:
		return http.StatusBadRequest
	case domain.ErrCodeSessionClosed:
		return http.StatusConflict
	case domain.ErrCodeUpstream, domain.ErrCodeSubmissionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
