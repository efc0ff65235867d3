package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"

	"github.com/shhac/snooze/internal/domain"
	"github.com/shhac/snooze/internal/httpclient"
	"github.com/shhac/snooze/internal/logging"
	"github.com/shhac/snooze/internal/model"
	"github.com/shhac/snooze/internal/session"
	"github.com/shhac/snooze/internal/ui/settings"
)

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp  fyne.App
	window   fyne.Window
	config   *Config
	logger   *slog.Logger
	logClose io.Closer
	executor *httpclient.Executor
	worker   *httpclient.Worker
	session  *session.Session
	state    *model.ApplicationState
	client   domain.ClientSettings

	// cancel aborts requests still running at shutdown
	cancel context.CancelFunc
}

// shutdownTimeout bounds how long Close waits for aborted requests to
// deliver their results.
const shutdownTimeout = 2 * time.Second

// Option customises New, mainly for tests.
type Option func(*App)

// WithLogger uses logger instead of opening the log file.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config, opts ...Option) (*App, error) {
	a := &App{
		fyneApp: fyneApp,
		config:  cfg,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		logger, closer, err := logging.InitLogger(logging.Options{
			AppName: "snooze",
			Debug:   cfg.Debug,
			Dir:     cfg.LogDir,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
		a.logClose = closer
	}

	a.client = settings.ClientSettings(fyneApp.Preferences(), cfg.Client)

	a.logger.Info("initializing snooze",
		slog.Bool("debug", cfg.Debug),
		slog.Duration("timeout", a.client.Timeout),
		slog.Bool("insecure", a.client.InsecureSkipVerify),
		slog.String("overlap", string(cfg.Overlap)),
	)

	a.executor = httpclient.NewExecutor(httpclient.NewClient(a.client), a.logger)
	a.worker = httpclient.NewWorker(a.executor, a.logger)

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.session = session.New(a.worker,
		session.WithPolicy(cfg.Overlap),
		session.WithLogger(a.logger),
		session.WithContext(ctx),
	)

	a.state = model.NewApplicationState()
	if cfg.InitialURL != "" {
		_ = a.state.Request.URL.Set(cfg.InitialURL)
	}

	a.logger.Info("application initialized successfully")
	return a, nil
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// Send snapshots the request editor and hands it to the session. The
// returned error is informational: the response state already reflects it.
func (a *App) Send() error {
	err := a.session.Send(a.state.Request.Spec())
	a.state.Response.Apply(a.session.Snapshot())
	return err
}

// Tick drains finished requests into the response state and reports
// whether a request is still in flight. Must run on the UI goroutine.
func (a *App) Tick() bool {
	if a.session.Drain() {
		a.state.Response.Apply(a.session.Snapshot())
	}
	return a.session.InFlight()
}

// Ready signals when a finished request is waiting to be drained.
func (a *App) Ready() <-chan struct{} {
	return a.session.Ready()
}

// TickInterval is how often the UI drains results while a request is in flight.
func (a *App) TickInterval() time.Duration {
	return a.config.TickInterval
}

// ClientSettings returns the HTTP client settings currently in effect.
func (a *App) ClientSettings() domain.ClientSettings {
	return a.client
}

// ApplyClientSettings rebuilds the HTTP client. Requests already in flight
// finish with the old one.
func (a *App) ApplyClientSettings(s domain.ClientSettings) {
	a.client = s
	a.executor.SetClient(httpclient.NewClient(s))
	a.logger.Info("client settings changed",
		slog.Duration("timeout", s.Timeout),
		slog.Bool("insecure", s.InsecureSkipVerify),
		slog.Bool("follow_redirects", s.FollowRedirects),
	)
}

// Session returns the request state machine.
func (a *App) Session() *session.Session {
	return a.session
}

// State returns the application state for use by UI components.
func (a *App) State() *model.ApplicationState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Config returns the startup configuration.
func (a *App) Config() *Config {
	return a.config
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}

// Close aborts outstanding requests, waits briefly for them to unwind and
// releases the log file. Requests that ignore the abort are abandoned.
func (a *App) Close() error {
	a.cancel()
	if !a.worker.WaitTimeout(shutdownTimeout) {
		a.logger.Warn("abandoned requests at shutdown",
			slog.Int("pending", a.worker.Pending()),
		)
	}
	if a.logClose != nil {
		closer := a.logClose
		a.logClose = nil
		return closer.Close()
	}
	return nil
}
