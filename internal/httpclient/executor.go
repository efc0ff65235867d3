package httpclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/shhac/snooze/internal/domain"
	apperrors "github.com/shhac/snooze/internal/errors"
	"github.com/shhac/snooze/internal/logging"
)

// Executor performs a single HTTP exchange per RequestSpec.
// It is safe for concurrent use; the client may be swapped between calls.
type Executor struct {
	mu     sync.RWMutex
	client Doer
	logger *slog.Logger
}

// NewExecutor creates an executor that sends requests through client.
func NewExecutor(client Doer, logger *slog.Logger) *Executor {
	return &Executor{
		client: client,
		logger: logger,
	}
}

// SetClient replaces the client used by subsequent calls. Requests already
// in flight keep the client they started with.
func (e *Executor) SetClient(client Doer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.client = client
}

func (e *Executor) currentClient() Doer {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.client
}

// Execute performs the call and never returns an error: network and
// body-read failures are encoded in the result. Duration spans from just
// before dispatch to just after the body has been read.
func (e *Executor) Execute(ctx context.Context, spec domain.RequestSpec) domain.TransportResult {
	logger := logging.ForRequest(e.logger, spec)
	result := domain.TransportResult{
		Seq:       spec.Seq,
		RequestID: spec.ID,
	}

	req, err := BuildRequest(ctx, spec)
	if err != nil {
		logger.Error("failed to build request", slog.Any("error", err))
		return withFailure(result, fmt.Errorf("request error: %w", err))
	}

	logger.Debug("sending request",
		slog.String("url", req.URL.String()),
		slog.Int("headers", len(req.Header)),
	)

	start := time.Now()
	resp, err := e.currentClient().Do(req)
	if err != nil {
		result.Duration = time.Since(start)
		logger.Error("request failed",
			slog.Duration("duration", result.Duration),
			slog.Any("error", err),
		)
		return withFailure(result, fmt.Errorf("request error: %w", apperrors.WrapTransportError(err)))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	result.Duration = time.Since(start)
	result.StatusCode = resp.StatusCode
	result.Status = resp.Status
	result.Headers = flattenHeaders(resp.Header)

	if err != nil {
		logger.Error("failed to read response body",
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)
		return withFailure(result, fmt.Errorf("%w: %w", apperrors.ErrBodyRead, err))
	}

	body := raw
	if !hasNoBody(req.Method, resp.StatusCode) {
		body, err = decodeBody(raw, resp.Header)
	}
	if err != nil {
		logger.Error("failed to decode response body",
			slog.String("content_encoding", resp.Header.Get("Content-Encoding")),
			slog.Any("error", err),
		)
		return withFailure(result, fmt.Errorf("%w: %w", apperrors.ErrBodyRead, err))
	}

	result.Body = string(body)
	result.Size = len(body)

	logger.Info("request completed",
		slog.Int("status", resp.StatusCode),
		slog.Int("size", result.Size),
		slog.Duration("duration", result.Duration),
	)
	logger.Debug("response body", slog.String("body", truncateForLog(result.Body)))

	return result
}

func withFailure(result domain.TransportResult, err error) domain.TransportResult {
	result.Error = err.Error()
	result.Failure = apperrors.ClassifyError(err).Failure()
	return result
}

// flattenHeaders returns one row per header value, sorted by key so the
// display order is stable.
func flattenHeaders(h http.Header) []domain.KeyValue {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]domain.KeyValue, 0, len(keys))
	for _, k := range keys {
		for _, v := range h[k] {
			out = append(out, domain.KeyValue{Key: k, Value: v})
		}
	}
	return out
}
