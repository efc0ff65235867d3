package ui

import (
	"errors"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/snooze/internal/domain"
	apperrors "github.com/shhac/snooze/internal/errors"
	"github.com/shhac/snooze/internal/model"
	uierrors "github.com/shhac/snooze/internal/ui/errors"
	"github.com/shhac/snooze/internal/ui/request"
	"github.com/shhac/snooze/internal/ui/response"
	"github.com/shhac/snooze/internal/ui/settings"
)

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	State() *model.ApplicationState
	Logger() *slog.Logger
	Send() error
	Tick() bool
	Ready() <-chan struct{}
	TickInterval() time.Duration
	ClientSettings() domain.ClientSettings
	ApplyClientSettings(domain.ClientSettings)
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	window  fyne.Window
	fyneApp fyne.App
	state   *model.ApplicationState
	logger  *slog.Logger
	app     AppController
	poller  *poller

	// Top bar
	titleLabel    *widget.Label
	durationLabel *widget.Label
	toolbar       *widget.Toolbar

	// Panel widgets
	requestPanel  *request.RequestPanel
	responsePanel *response.ResponsePanel
	statusBar     *uierrors.StatusBar
	split         *container.Split
}

// NewMainWindow creates a new main window with the application layout.
// The window is split horizontally with:
//   - Left side: Request Panel (method, url, headers/body/query)
//   - Right side: Response Panel (tree or text)
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("snooze")

	mw := &MainWindow{
		window:  window,
		fyneApp: fyneApp,
		state:   app.State(),
		logger:  app.Logger(),
		app:     app,
	}
	mw.poller = newPoller(app.TickInterval(), app.Ready(), app.Tick)

	mw.titleLabel = widget.NewLabelWithStyle("snooze v"+Version, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	mw.durationLabel = widget.NewLabel("")
	mw.durationLabel.TextStyle = fyne.TextStyle{Monospace: true}
	mw.toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.SettingsIcon(), mw.showPreferences),
		widget.NewToolbarAction(theme.HelpIcon(), func() { ShowShortcutDialog(mw.window) }),
		widget.NewToolbarAction(theme.InfoIcon(), func() { ShowAboutDialog(mw.window) }),
	)

	mw.requestPanel = request.NewRequestPanel(mw.state.Request, mw.logger)
	mw.responsePanel = response.NewResponsePanel(mw.state.Response)
	mw.statusBar = uierrors.NewStatusBar(mw.state.Response)
	mw.statusBar.SetVerifyTLS(!app.ClientSettings().InsecureSkipVerify)

	// Wire up callbacks
	mw.wireCallbacks()

	// Set up the window content
	mw.SetContent()
	mw.setupKeyboardShortcuts()

	window.SetCloseIntercept(func() {
		mw.poller.Stop()
		window.Close()
	})

	// Set default window size
	window.Resize(fyne.NewSize(1200, 800))

	return mw
}

// wireCallbacks sets up all the event handlers and connects components
func (w *MainWindow) wireCallbacks() {
	w.requestPanel.SetOnSend(w.handleSend)
	w.statusBar.SetOnDetails(w.showFailure)

	w.state.Response.Duration.AddListener(binding.NewDataListener(func() {
		d, _ := w.state.Response.Duration.Get()
		if d == "" {
			w.durationLabel.SetText("")
			return
		}
		w.durationLabel.SetText("| " + d)
	}))
}

// handleSend dispatches the request in the editor. Runs on the UI goroutine.
func (w *MainWindow) handleSend() {
	err := w.app.Send()
	switch {
	case err == nil:
		w.poller.Start()
	case errors.Is(err, apperrors.ErrRequestInFlight):
		w.logger.Debug("send ignored, request in flight")
	case errors.Is(err, apperrors.ErrInvalidURL):
		w.logger.Warn("send rejected", slog.Any("error", err))
	default:
		w.logger.Error("send failed", slog.Any("error", err))
	}
}

// showFailure opens the classified error dialog for the last failure.
func (w *MainWindow) showFailure() {
	failure := w.state.Response.Failure()
	if failure == nil {
		return
	}
	details, _ := w.state.Response.TextData.Get()
	uierrors.ShowFailure(failure, details, w.window, w.handleSend)
}

func (w *MainWindow) showPreferences() {
	settings.ShowPreferencesDialog(w.fyneApp, w.window, w.app.ClientSettings(), settings.PreferencesCallbacks{
		OnThemeChange: func(mode string) {
			ApplyTheme(w.fyneApp, mode)
		},
		OnClientChange: func(s domain.ClientSettings) {
			w.app.ApplyClientSettings(s)
			w.statusBar.SetVerifyTLS(!s.InsecureSkipVerify)
		},
	})
}

// SetContent builds and sets the main window layout.
// Layout structure:
//
//	┌──────────────────────────────────────────────────┐
//	│  snooze vX | request took: N ms          toolbar │
//	├─────────────────┬────────────────────────────────┤
//	│                 │                                │
//	│  Request Panel  │        Response Panel          │
//	│                 │                                │
//	├─────────────────┴────────────────────────────────┤
//	│  Status Bar                                      │
//	└──────────────────────────────────────────────────┘
func (w *MainWindow) SetContent() {
	topBar := container.NewVBox(
		container.NewBorder(
			nil, nil,
			container.NewHBox(w.titleLabel, w.durationLabel),
			w.toolbar,
		),
		widget.NewSeparator(),
	)

	// The divider offset lives only as long as the window.
	w.split = container.NewHSplit(w.requestPanel, w.responsePanel)
	w.split.SetOffset(0.4)

	content := container.NewBorder(
		topBar,      // top
		w.statusBar, // bottom
		nil,         // left
		nil,         // right
		w.split,
	)

	w.window.SetContent(content)
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
