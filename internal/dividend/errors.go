package dividend

import "errors"

var (
	// ErrScheduleMismatch is returned when event times and amounts differ in length.
	ErrScheduleMismatch = errors.New("event times and amounts must have the same length")

	// ErrAxisOutOfRange is returned when the price axis index is not a layout axis.
	ErrAxisOutOfRange = errors.New("price axis index out of range")

	// ErrPriceAxis is returned when the price axis cannot support interpolation.
	ErrPriceAxis = errors.New("price axis needs at least 2 strictly increasing points")
)

// ConfigError reports an adjuster that could not be constructed.
// The adjuster is never returned alongside a ConfigError.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "dividend: invalid " + e.Field + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
