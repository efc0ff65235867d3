package domain

import "time"

// ClientSettings holds the HTTP client configuration used by the transport.
type ClientSettings struct {
	// Timeout bounds the whole exchange. Zero means no timeout.
	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool

	// FollowRedirects lets the client follow 3xx responses.
	FollowRedirects bool
}

// DefaultClientSettings mirrors the behaviour of a plain net/http client.
func DefaultClientSettings() ClientSettings {
	return ClientSettings{
		FollowRedirects: true,
	}
}
