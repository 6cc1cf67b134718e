package manager

import (
	"errors"
	"net/http"
)

// Operation names used in messages and metrics.
const (
	OpYear = "year"
	OpDate = "date"
)

// ErrInvalidSelector is wrapped by every invalid model_type error.
var ErrInvalidSelector = errors.New("invalid model_type")

// selectorError signals an unknown or missing model_type (return 400).
type selectorError struct{ op string }

func (e selectorError) Error() string {
	if e.op == OpDate {
		return "Invalid model_type for date prediction. Use 'global' or 'diffusion'."
	}
	return "Invalid model_type. Use 'global' or 'diffusion'."
}

func (e selectorError) Unwrap() error { return ErrInvalidSelector }

// IsInvalidSelector reports whether err indicates a bad model_type.
func IsInvalidSelector(err error) bool { return errors.Is(err, ErrInvalidSelector) }

// missingFieldError signals a required body field that was absent or null (return 422).
type missingFieldError struct{ field string }

func (e missingFieldError) Error() string { return "Field '" + e.field + "' is required." }

// IsMissingField reports whether err indicates a missing required field.
func IsMissingField(err error) bool {
	var me missingFieldError
	return errors.As(err, &me)
}

// modelUnavailableError is returned when a valid selector has no loaded model.
// Not reachable after a successful startup load.
type modelUnavailableError struct{ name string }

func (e modelUnavailableError) Error() string { return "model not loaded: " + e.name }

// StatusCode lets the HTTP layer map the error without knowing the type.
func (e modelUnavailableError) StatusCode() int { return http.StatusServiceUnavailable }
