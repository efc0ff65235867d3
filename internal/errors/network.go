package errors

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// WrapTransportError tags an error from a failed round trip with ErrTimeout
// or ErrConnectionFailed, keeping the original in the chain. Cancellation
// passes through untouched.
func WrapTransportError(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
}

// classifyNetError recognises the transport failures net/http surfaces
// (usually wrapped in a *url.Error). Returns nil when err is not one of them.
func classifyNetError(err error) *UIError {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Host Not Found",
			Message:  "The host name could not be resolved.",
			Recovery: []string{"Check the host name for typos", "Check your DNS or VPN settings"},
			Details:  err.Error(),
		}
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Connection Refused",
			Message:  "Nothing is listening at that address.",
			Recovery: []string{
				"Check that the server is running",
				"Verify the address and port",
			},
			Details: err.Error(),
		}
	}

	if isTLSError(err) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "TLS Error",
			Message:  "The secure connection could not be established.",
			Recovery: []string{
				"Check the server certificate",
				"Disable certificate verification in Preferences for local servers",
			},
			Details: err.Error(),
		}
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Timeout",
			Message:  "The server took too long to respond.",
			Recovery: []string{"Try again", "Increase the timeout in Preferences"},
			Details:  err.Error(),
		}
	}

	return nil
}

func isTLSError(err error) bool {
	var certErr *tls.CertificateVerificationError
	var authErr x509.UnknownAuthorityError
	var hostErr x509.HostnameError
	var invalidErr x509.CertificateInvalidError
	var recordErr tls.RecordHeaderError
	return errors.As(err, &certErr) ||
		errors.As(err, &authErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidErr) ||
		errors.As(err, &recordErr)
}
