package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Upstream API errors
	ErrCodeUpstream ErrorCode = "UPSTREAM_ERROR"

	// Quiz specific errors
	ErrCodeSessionNotFound   ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionClosed     ErrorCode = "SESSION_CLOSED"
	ErrCodeIncompleteAnswers ErrorCode = "INCOMPLETE_ANSWERS"

	// Signup specific errors
	ErrCodeSubmissionFailed ErrorCode = "SUBMISSION_FAILED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper constructors for common errors

func NewNotFoundError(message string) *DomainError {
	return NewError(ErrCodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrCodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrCodeInternal, message, err)
}

// NewUpstreamError wraps a failure of one of the third-party APIs.
func NewUpstreamError(api string, err error) *DomainError {
	return NewError(ErrCodeUpstream, fmt.Sprintf("request to %s failed", api), err)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(ErrCodeSessionNotFound, fmt.Sprintf("quiz session not found: %s", sessionID), nil)
}

// NewSessionClosedError marks a session that was already evaluated.
// An evaluated session is read-only: there is no retry path.
func NewSessionClosedError(sessionID string) *DomainError {
	return NewError(ErrCodeSessionClosed, fmt.Sprintf("quiz session already evaluated: %s", sessionID), nil)
}

func NewIncompleteAnswersError(answered, total int) *DomainError {
	return NewError(ErrCodeIncompleteAnswers,
		fmt.Sprintf("every question needs an answer: %d of %d answered", answered, total), nil)
}

// NewSubmissionFailedError covers network and non-2xx failures of the
// sign-up POST. The detail stays in Err; the user-facing message is generic.
func NewSubmissionFailedError(err error) *DomainError {
	return NewError(ErrCodeSubmissionFailed, "sign-up could not be submitted, please try again", err)
}

// FieldError represents one invalid form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors is the error type carried by a rejected form submission
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s (and %d more)", e[0].Error(), len(e)-1)
}
