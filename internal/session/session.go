// Package session holds the request/response state machine. A Session is
// owned by the UI goroutine: Send and Drain must be called from it, while
// results arrive from worker goroutines through the Mailbox.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shhac/snooze/internal/domain"
	apperrors "github.com/shhac/snooze/internal/errors"
	"github.com/shhac/snooze/internal/httpclient"
	"github.com/shhac/snooze/internal/jsontree"
)

// OverlapPolicy decides what a send does while a request is in flight.
type OverlapPolicy string

const (
	// OverlapIgnore rejects the send with ErrRequestInFlight.
	OverlapIgnore OverlapPolicy = "ignore"
	// OverlapSupersede dispatches the new request; the older result is
	// discarded when it arrives.
	OverlapSupersede OverlapPolicy = "supersede"
)

// ParseOverlapPolicy validates a policy name. Empty means OverlapIgnore.
func ParseOverlapPolicy(s string) (OverlapPolicy, error) {
	switch p := OverlapPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return OverlapIgnore, nil
	case OverlapIgnore, OverlapSupersede:
		return p, nil
	default:
		return "", apperrors.ValidationError{
			Field:   "overlap",
			Message: fmt.Sprintf("unknown overlap policy %q (want ignore or supersede)", s),
		}
	}
}

// Dispatcher starts a request and later delivers its result to sink.
// *httpclient.Worker is the production implementation.
type Dispatcher interface {
	Dispatch(ctx context.Context, spec domain.RequestSpec, sink httpclient.Sink)
}

// Snapshot is a copy of the state the response pane renders.
type Snapshot struct {
	InFlight bool
	Seq      uint64

	// Text is what the response area shows: a placeholder while in flight,
	// the body on success, or the error text.
	Text string
	// Tree is set only when Text is a complete JSON document.
	Tree *jsontree.Tree
	// Duration is nil until a result has been drained.
	Duration *time.Duration

	StatusCode int
	Status     string
	Headers    []domain.KeyValue
	Size       int
	Failure    *domain.Failure
}

// Option configures a Session.
type Option func(*Session)

// WithPolicy sets the overlap policy.
func WithPolicy(p OverlapPolicy) Option {
	return func(s *Session) { s.policy = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithIDGenerator replaces the request ID source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Session) { s.newID = fn }
}

// WithContext sets the context handed to every dispatch.
func WithContext(ctx context.Context) Option {
	return func(s *Session) { s.ctx = ctx }
}

// Session is the Idle/InFlight state machine.
type Session struct {
	dispatcher Dispatcher
	mailbox    *Mailbox
	policy     OverlapPolicy
	logger     *slog.Logger
	newID      func() string
	ctx        context.Context

	seq   uint64
	state Snapshot
}

// New creates an idle session.
func New(dispatcher Dispatcher, opts ...Option) *Session {
	s := &Session{
		dispatcher: dispatcher,
		mailbox:    NewMailbox(),
		policy:     OverlapIgnore,
		logger:     slog.Default(),
		newID:      uuid.NewString,
		ctx:        context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateURL accepts absolute URLs that name both a scheme and a host.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidURL, raw)
	}
	return nil
}

// Send validates spec and dispatches it. It returns ErrInvalidURL (the
// response text then names the URL) or, under OverlapIgnore,
// ErrRequestInFlight. The caller keeps ownership of spec; a clone is sent.
func (s *Session) Send(spec domain.RequestSpec) error {
	if s.state.InFlight && s.policy != OverlapSupersede {
		s.logger.Debug("send ignored, request in flight", slog.Uint64("seq", s.seq))
		return apperrors.ErrRequestInFlight
	}

	spec.URL = strings.TrimSpace(spec.URL)
	if err := ValidateURL(spec.URL); err != nil {
		// Any outstanding result is now stale.
		s.seq++
		s.state = Snapshot{
			Seq:     s.seq,
			Text:    err.Error(),
			Failure: apperrors.ClassifyError(err).Failure(),
		}
		s.logger.Info("rejected invalid url", slog.String("url", spec.URL))
		return err
	}

	s.seq++
	spec = spec.Clone()
	spec.Seq = s.seq
	spec.ID = s.newID()

	s.state = Snapshot{
		InFlight: true,
		Seq:      s.seq,
		Text:     spec.Method.String() + " " + spec.URL,
	}

	s.logger.Info("dispatching request",
		slog.String("request_id", spec.ID),
		slog.Uint64("seq", spec.Seq),
		slog.String("method", spec.Method.String()),
		slog.String("url", spec.URL),
	)
	s.dispatcher.Dispatch(s.ctx, spec, s.mailbox)
	return nil
}

// Drain consumes every queued result without blocking and reports whether
// the visible state changed. Results for anything but the current request
// are discarded.
func (s *Session) Drain() bool {
	changed := false
	for _, r := range s.mailbox.Drain() {
		if !s.state.InFlight || r.Seq != s.seq {
			s.logger.Debug("discarding stale result",
				slog.String("request_id", r.RequestID),
				slog.Uint64("seq", r.Seq),
				slog.Uint64("current_seq", s.seq),
			)
			continue
		}
		s.apply(r)
		changed = true
	}
	return changed
}

func (s *Session) apply(r domain.TransportResult) {
	d := r.Duration
	next := Snapshot{
		Seq:        r.Seq,
		Text:       r.Text(),
		Duration:   &d,
		StatusCode: r.StatusCode,
		Status:     r.Status,
		Headers:    r.Headers,
		Size:       r.Size,
		Failure:    r.Failure,
	}
	if !r.Failed() {
		next.Tree = jsontree.Interpret(r.Body).Tree
	}
	s.state = next
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return s.state
}

// InFlight reports whether a dispatched request has not been drained yet.
func (s *Session) InFlight() bool {
	return s.state.InFlight
}

// Policy returns the configured overlap policy.
func (s *Session) Policy() OverlapPolicy {
	return s.policy
}

// Ready is signalled when a result lands in the mailbox.
func (s *Session) Ready() <-chan struct{} {
	return s.mailbox.Ready()
}
