package dto

// FieldEditRequest is one user interaction with a form field.
type FieldEditRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// FieldState is the visible state of one form field. Error is only
// populated once the field has been touched.
type FieldState struct {
	Value   string `json:"value"`
	Touched bool   `json:"touched"`
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
}

// SignupFormResponse is the whole form state after a transition: the
// five tracked fields, the derived age display, and the submit gate.
type SignupFormResponse struct {
	Fields        map[string]FieldState `json:"fields"`
	Age           string                `json:"age"`
	SubmitEnabled bool                  `json:"submit_enabled"`
}

// SignupResultResponse reports a successful submission.
type SignupResultResponse struct {
	Message string             `json:"message"`
	Form    SignupFormResponse `json:"form"`
}
