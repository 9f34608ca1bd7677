package orchestrators

import "casaromana/internal/forms"

// User-facing error strings for form submissions. These are stable keys the
// templates translate; field-level messages come from the forms package.
const (
	ErrMsgGeneric        = "Something went wrong. Please try again."
	ErrMsgDuplicateEmail = "This email has already been submitted."
)

// SubmitState is the outcome of a public form submission, shaped for the
// template that re-renders the form. Backend failures are carried as values,
// never as panics into the render path.
type SubmitState struct {
	Success     bool
	Error       string
	FieldErrors forms.FieldErrors
}

func submitOK() SubmitState {
	return SubmitState{Success: true}
}

func submitFailed(msg string) SubmitState {
	return SubmitState{Error: msg}
}

func submitInvalid(fe forms.FieldErrors) SubmitState {
	return SubmitState{FieldErrors: fe}
}
