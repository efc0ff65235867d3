package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	ErrInvalidURL       = errors.New("invalid url")
	ErrRequestInFlight  = errors.New("request already in flight")
	ErrConnectionFailed = errors.New("connection failed")
	ErrBodyRead         = errors.New("error reading response")
	ErrTimeout          = errors.New("operation timed out")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
