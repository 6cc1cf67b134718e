package forecast

import (
	"errors"
	"fmt"
)

// DateLayout is the only accepted date format, on input and output.
const DateLayout = "2006-01-02"

// Year bounds that keep every generated date representable as YYYY-MM-DD.
const (
	MinYear = 1
	MaxYear = 9999
)

var (
	// ErrEmptyPrediction is returned when a model produced no rows.
	ErrEmptyPrediction = errors.New("forecast: model returned no rows")
	// ErrRowMismatch is returned when a model produced a different number of rows than dates requested.
	ErrRowMismatch = errors.New("forecast: model row count does not match requested dates")
)

// ParseError reports a date string that is not a valid YYYY-MM-DD calendar date.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid date '%s'. Use format 'YYYY-MM-DD'.", e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// YearRangeError reports a year outside [MinYear, MaxYear].
type YearRangeError struct{ Year int }

func (e *YearRangeError) Error() string {
	return fmt.Sprintf("Invalid year %d. Use a year between %d and %d.", e.Year, MinYear, MaxYear)
}

// IsYearRange reports whether err is or wraps a *YearRangeError.
func IsYearRange(err error) bool {
	var ye *YearRangeError
	return errors.As(err, &ye)
}
