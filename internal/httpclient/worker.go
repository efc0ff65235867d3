package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shhac/snooze/internal/domain"
)

// Runner executes one request. *Executor is the production implementation.
type Runner interface {
	Execute(ctx context.Context, spec domain.RequestSpec) domain.TransportResult
}

// Sink receives the result of a dispatched request. Send must be safe to
// call from any goroutine.
type Sink interface {
	Send(result domain.TransportResult)
}

// Worker runs each dispatched request on its own goroutine and delivers
// exactly one result per dispatch, even if the runner panics.
type Worker struct {
	runner Runner
	logger *slog.Logger
	wg      sync.WaitGroup
	pending atomic.Int64
}

// NewWorker creates a worker around runner.
func NewWorker(runner Runner, logger *slog.Logger) *Worker {
	return &Worker{
		runner: runner,
		logger: logger,
	}
}

// Dispatch starts the request and returns immediately. spec is received by
// value; callers should pass a Clone so later edits never reach the worker.
func (w *Worker) Dispatch(ctx context.Context, spec domain.RequestSpec, sink Sink) {
	w.wg.Add(1)
	w.pending.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.pending.Add(-1)

		var result domain.TransportResult
		defer func() {
			if r := recover(); r != nil {
				w.logger.Error("request worker panicked",
					slog.String("request_id", spec.ID),
					slog.Uint64("seq", spec.Seq),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)
				result = domain.TransportResult{
					Seq:       spec.Seq,
					RequestID: spec.ID,
					Error:     fmt.Sprintf("request error: internal error: %v", r),
					Failure: &domain.Failure{
						Title:    "Internal Error",
						Message:  "The request could not be completed.",
						Recovery: []string{"Try again"},
					},
				}
			}
			sink.Send(result)
		}()

		result = w.runner.Execute(ctx, spec)
	}()
}

// Wait blocks until every dispatched request has delivered its result.
func (w *Worker) Wait() {
	w.wg.Wait()
}

// WaitTimeout is Wait bounded by d. It reports whether every request
// finished; on false the stragglers are left running.
func (w *Worker) WaitTimeout(d time.Duration) bool {
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}

// Pending returns the number of dispatched requests that have not yet
// delivered a result.
func (w *Worker) Pending() int {
	return int(w.pending.Load())
}
