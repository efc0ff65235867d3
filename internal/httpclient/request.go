package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shhac/snooze/internal/domain"
)

// BuildRequest converts a RequestSpec into an *http.Request.
//
// Rows with an empty key are dropped. Query rows are appended to any query
// already present in the URL, in editor order. The body is attached only for
// methods that carry one.
func BuildRequest(ctx context.Context, spec domain.RequestSpec) (*http.Request, error) {
	u, err := url.Parse(spec.URL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	u.RawQuery = appendQuery(u.RawQuery, spec.SendableQuery())

	var body io.Reader
	if spec.Method.CarriesBody() {
		body = strings.NewReader(spec.Body)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method.String(), u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	for _, h := range spec.SendableHeaders() {
		// net/http ignores a Host entry in the header map
		if strings.EqualFold(h.Key, "Host") {
			req.Host = h.Value
			continue
		}
		req.Header.Add(h.Key, h.Value)
	}

	return req, nil
}

// appendQuery encodes pairs without reordering them, unlike url.Values.Encode.
func appendQuery(rawQuery string, pairs []domain.KeyValue) string {
	if len(pairs) == 0 {
		return rawQuery
	}

	var b strings.Builder
	b.WriteString(rawQuery)
	for _, kv := range pairs {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}
