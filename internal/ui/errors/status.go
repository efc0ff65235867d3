package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/snooze/internal/model"
	"github.com/shhac/snooze/internal/ui/components"
)

// StatusBar displays the state of the last request with a shape-changing icon indicator.
// Each state uses a distinct icon shape for accessibility (not color-only):
//   - Ready: empty radio button (circle outline)
//   - Sending: view-refresh icon (circular arrows)
//   - Done: confirm icon (checkmark)
//   - Failed: error icon (X shape)
type StatusBar struct {
	widget.BaseWidget

	state         *model.ResponseState
	statusLabel   *widget.Label
	indicator     *widget.Icon
	tlsIndicator  *widget.Icon
	detailsButton *widget.Button

	onDetails func()
}

// NewStatusBar creates a new status bar bound to the given response state.
func NewStatusBar(state *model.ResponseState) *StatusBar {
	label := widget.NewLabel("Ready")
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:        state,
		statusLabel:  label,
		indicator:    widget.NewIcon(theme.RadioButtonIcon()),
		tlsIndicator: widget.NewIcon(components.LockLockedIcon),
	}
	s.detailsButton = widget.NewButtonWithIcon("details", theme.InfoIcon(), func() {
		if s.onDetails != nil {
			s.onDetails()
		}
	})
	s.detailsButton.Importance = widget.LowImportance
	s.detailsButton.Hide()
	s.ExtendBaseWidget(s)

	// Listen to state changes
	listener := binding.NewDataListener(s.updateStatus)
	state.Loading.AddListener(listener)
	state.Status.AddListener(listener)
	state.Size.AddListener(listener)
	state.Error.AddListener(listener)

	// Set initial state
	s.updateStatus()

	return s
}

// SetOnDetails sets the callback for the details button shown on failure.
func (s *StatusBar) SetOnDetails(fn func()) {
	s.onDetails = fn
}

// SetVerifyTLS switches the lock indicator between verified and insecure.
func (s *StatusBar) SetVerifyTLS(verify bool) {
	if verify {
		s.tlsIndicator.SetResource(components.LockLockedIcon)
	} else {
		s.tlsIndicator.SetResource(components.LockUnlockedIcon)
	}
}

// Text returns the status line currently shown.
func (s *StatusBar) Text() string {
	return s.statusLabel.Text
}

// updateStatus refreshes the status bar based on current state.
func (s *StatusBar) updateStatus() {
	loading, _ := s.state.Loading.Get()
	status, _ := s.state.Status.Get()
	size, _ := s.state.Size.Get()
	failure, _ := s.state.Error.Get()

	s.detailsButton.Hide()
	switch {
	case loading:
		s.indicator.SetResource(theme.ViewRefreshIcon())
		s.statusLabel.SetText("Sending...")

	case failure != "":
		s.indicator.SetResource(theme.ErrorIcon())
		s.statusLabel.SetText(failure)
		s.detailsButton.Show()

	case status != "":
		s.indicator.SetResource(theme.ConfirmIcon())
		if size != "" {
			s.statusLabel.SetText(status + " · " + size)
		} else {
			s.statusLabel.SetText(status)
		}

	default:
		s.indicator.SetResource(theme.RadioButtonIcon())
		s.statusLabel.SetText("Ready")
	}
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	statusContainer := container.NewBorder(
		nil, nil,
		s.indicator,
		container.NewHBox(s.detailsButton, s.tlsIndicator),
		s.statusLabel,
	)

	return widget.NewSimpleRenderer(statusContainer)
}
