// Package httpclient performs the blocking HTTP exchange for a RequestSpec
// off the UI thread and turns every outcome into a TransportResult.
package httpclient

import (
	"crypto/tls"
	"net/http"

	"github.com/shhac/snooze/internal/domain"
)

// maxRedirects matches the net/http default policy.
const maxRedirects = 10

// Doer is the subset of *http.Client the executor needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient builds an *http.Client from the given settings. A zero Timeout
// leaves the exchange unbounded, relying on the transport's own dial and
// TLS handshake limits.
func NewClient(settings domain.ClientSettings) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if settings.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // user opted out in preferences
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   settings.Timeout,
	}

	if !settings.FollowRedirects {
		client.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else {
		client.CheckRedirect = func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		}
	}

	return client
}
