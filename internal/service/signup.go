package service

import (
	"context"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"catboard/internal/domain"
	"catboard/internal/dto"
	"catboard/internal/logger"
	"catboard/internal/validation"

	"go.uber.org/zap"
)

// Form field names, in render order.
const (
	FieldName    = "name"
	FieldSurname = "surname"
	FieldEmail   = "email"
	FieldGender  = "gender"
	FieldBirth   = "birth"
)

var signupFields = []string{FieldName, FieldSurname, FieldEmail, FieldGender, FieldBirth}

// SignupService runs the sign-up form: a per-field validation state
// machine gating one POST of the normalized user record.
type SignupService interface {
	// EditField applies one user interaction: it marks the field
	// touched, revalidates it, and recomputes the submit gate.
	EditField(field, value string) (*dto.SignupFormResponse, error)

	// Form returns the current form state.
	Form() *dto.SignupFormResponse

	// Submit revalidates every field, forcing error visibility even
	// for untouched fields. If all pass it sends the record once and
	// resets the form; on transmission failure the form is kept.
	Submit(ctx context.Context) (*dto.SignupResultResponse, error)
}

type fieldState struct {
	value   string
	touched bool
	valid   bool
	message string
}

type signupServiceImpl struct {
	gateway domain.SignupGateway
	now     func() time.Time

	mu     sync.Mutex
	fields map[string]*fieldState
	age    string
}

// NewSignupService creates a SignupService with an empty form.
func NewSignupService(gateway domain.SignupGateway) SignupService {
	return newSignupService(gateway, time.Now)
}

// newSignupService lets tests pin "today" for the birth-date rules.
func newSignupService(gateway domain.SignupGateway, now func() time.Time) *signupServiceImpl {
	s := &signupServiceImpl{
		gateway: gateway,
		now:     now,
	}
	s.reset()
	return s
}

func (s *signupServiceImpl) reset() {
	s.fields = make(map[string]*fieldState, len(signupFields))
	for _, field := range signupFields {
		s.fields[field] = &fieldState{}
	}
	s.age = ""
}

func (s *signupServiceImpl) EditField(field, value string) (*dto.SignupFormResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.fields[field]
	if !ok {
		return nil, domain.NewInvalidInputError("unknown form field: " + field)
	}

	state.value = value
	state.touched = true
	state.valid, state.message = s.validateField(field, value)

	return s.snapshot(), nil
}

func (s *signupServiceImpl) Form() *dto.SignupFormResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *signupServiceImpl) Submit(ctx context.Context) (*dto.SignupResultResponse, error) {
	s.mu.Lock()

	// Unconditional revalidation, forcing error display even for
	// fields the user never touched.
	var fieldErrors domain.FieldErrors
	for _, field := range signupFields {
		state := s.fields[field]
		state.touched = true
		state.valid, state.message = s.validateField(field, state.value)
		if !state.valid {
			fieldErrors = append(fieldErrors, domain.FieldError{Field: field, Message: state.message})
		}
	}

	if len(fieldErrors) > 0 {
		s.mu.Unlock()
		return nil, fieldErrors
	}

	birth, _ := validation.ParseDate(s.fields[FieldBirth].value)
	user := &domain.User{
		Name:    validation.String(s.fields[FieldName].value),
		Surname: validation.String(s.fields[FieldSurname].value),
		Email:   validation.String(s.fields[FieldEmail].value),
		Gender:  s.fields[FieldGender].value,
		Birth:   s.fields[FieldBirth].value,
		Age:     domain.CalculateAge(birth, s.now()),
	}
	s.mu.Unlock()

	// The record is transmitted once per successful submit.
	if err := s.gateway.SubmitUser(ctx, user); err != nil {
		logger.Get().Error("sign-up submission failed", zap.Error(err))
		// The form state is kept so the user can retry.
		return nil, domain.NewSubmissionFailedError(err)
	}

	logger.Get().Info("user signed up", zap.String("email", user.Email))

	s.mu.Lock()
	s.reset()
	form := s.snapshot()
	s.mu.Unlock()

	return &dto.SignupResultResponse{
		Message: "User registered successfully",
		Form:    *form,
	}, nil
}

// validateField computes validity and the error message for one field.
// As a side effect of a parseable birth date, the derived age is
// written into the read-only age display.
func (s *signupServiceImpl) validateField(field, value string) (bool, string) {
	switch field {
	case FieldName, FieldSurname:
		trimmed := validation.String(value)
		if !validation.Name(trimmed) || utf8.RuneCountInString(trimmed) < 2 {
			return false, "Invalid name. Allowed: letters, accents, dots and spaces"
		}
		return true, ""

	case FieldEmail:
		if !validation.Email(value) {
			return false, "Invalid email. Expected format: user@domain.com"
		}
		return true, ""

	case FieldGender:
		if !validation.OneOf(value, domain.AllowedGenders) {
			return false, "Select a valid gender"
		}
		return true, ""

	case FieldBirth:
		if value == "" {
			return false, "Birth date is required"
		}
		birth, err := validation.ParseDate(value)
		if err != nil {
			return false, "Invalid birth date"
		}

		now := s.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		s.age = strconv.Itoa(domain.CalculateAge(birth, today))

		if birth.After(today) {
			return false, "Birth date cannot be in the future"
		}
		// Exactly MaxAge years ago (same month and day) is still
		// accepted; one day older is not.
		if birth.Before(today.AddDate(-domain.MaxAge, 0, 0)) {
			return false, "Invalid age"
		}
		return true, ""
	}

	return false, "unknown field"
}

func (s *signupServiceImpl) snapshot() *dto.SignupFormResponse {
	fields := make(map[string]dto.FieldState, len(s.fields))
	submitEnabled := true

	for name, state := range s.fields {
		visible := ""
		if state.touched && !state.valid {
			visible = state.message
		}
		fields[name] = dto.FieldState{
			Value:   state.value,
			Touched: state.touched,
			Valid:   state.valid,
			Error:   visible,
		}
		if !state.valid {
			submitEnabled = false
		}
	}

	return &dto.SignupFormResponse{
		Fields:        fields,
		Age:           s.age,
		SubmitEnabled: submitEnabled,
	}
}
