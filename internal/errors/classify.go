package errors

import (
	"context"
	"errors"

	"github.com/shhac/snooze/internal/domain"
)

// ErrorSeverity indicates the severity of an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
	SeverityFatal                        // Application must exit
)

// UIError wraps an error with UI-friendly presentation metadata.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string   // Short user-facing title
	Message  string   // Detailed user-facing message
	Recovery []string // Suggested actions (bullet points)
	Details  string   // Technical details (collapsed by default)
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// Failure converts the classification into the plain data carried by a
// TransportResult across the worker boundary.
func (e *UIError) Failure() *domain.Failure {
	if e == nil {
		return nil
	}
	return &domain.Failure{
		Title:    e.Title,
		Message:  e.Message,
		Recovery: append([]string(nil), e.Recovery...),
	}
}

// ClassifyError converts a standard error into a UIError with appropriate
// severity, title, message, and recovery suggestions.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	// Check if already a UIError
	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, ErrTimeout):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Timeout",
			Message:  "The server took too long to respond.",
			Recovery: []string{"Try again", "Increase the timeout in Preferences"},
			Details:  err.Error(),
		}

	case errors.Is(err, context.Canceled):
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "Request Cancelled",
			Message:  "The operation was cancelled.",
			Recovery: []string{},
		}

	case errors.Is(err, ErrRequestInFlight):
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "Request In Progress",
			Message:  "Wait for the current request to finish before sending another.",
			Recovery: []string{},
		}

	case errors.Is(err, ErrInvalidURL):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Invalid URL",
			Message:  "The URL must be absolute, for example https://example.com/path.",
			Recovery: []string{"Include the scheme (http:// or https://)", "Check the host name"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrBodyRead):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Response Read Failed",
			Message:  "The server responded but the body could not be read.",
			Recovery: []string{"Try again", "Check the Content-Encoding the server sends"},
			Details:  err.Error(),
		}
	}

	if netErr := classifyNetError(err); netErr != nil {
		return netErr
	}

	if errors.Is(err, ErrConnectionFailed) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Connection Failed",
			Message:  "Unable to connect to the server.",
			Recovery: []string{
				"Check that the server is running",
				"Verify the address and port",
				"Check your network connection",
			},
			Details: err.Error(),
		}
	}

	// Validation errors
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Validation Error",
			Message:  validationErr.Message,
			Recovery: []string{"Correct the field value and try again"},
			Details:  validationErr.Error(),
		}
	}

	// Default fallback for unknown errors
	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Request Failed",
		Message:  "An unexpected error occurred.",
		Recovery: []string{"Try again"},
		Details:  err.Error(),
	}
}
