package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Mode is one view a ModeTabs can switch to.
type Mode struct {
	Name    string
	Content fyne.CanvasObject
}

// ModeTabs provides a view toggle using a horizontal RadioGroup.
// This visually distinguishes the mode switch from content-level AppTabs.
// It manages switching between content views and notifies listeners of mode changes.
type ModeTabs struct {
	widget.BaseWidget

	modeSelect   *widget.RadioGroup
	modes        []Mode
	contentStack *fyne.Container // container.NewStack, holds active content

	onModeChange func(mode string)
}

// NewModeTabs creates a new ModeTabs widget. The first mode is selected.
func NewModeTabs(modes ...Mode) *ModeTabs {
	m := &ModeTabs{modes: modes}

	names := make([]string, len(modes))
	for i, mode := range modes {
		names[i] = mode.Name
	}

	m.modeSelect = widget.NewRadioGroup(names, func(selected string) {
		if selected == "" {
			// Radio groups allow deselecting; keep the current view.
			return
		}
		m.updateContent(selected)
		if m.onModeChange != nil {
			m.onModeChange(selected)
		}
	})
	m.modeSelect.Horizontal = true
	m.modeSelect.Required = true

	m.contentStack = container.NewStack()
	if len(modes) > 0 {
		m.modeSelect.Selected = modes[0].Name
		m.contentStack.Objects = []fyne.CanvasObject{modes[0].Content}
	}

	m.ExtendBaseWidget(m)
	return m
}

// SetOnModeChange sets the callback that is invoked when the mode changes.
func (m *ModeTabs) SetOnModeChange(fn func(mode string)) {
	m.onModeChange = fn
}

// SetMode programmatically switches to the named mode.
// Does nothing if already on the requested mode (avoids triggering callback redundantly).
func (m *ModeTabs) SetMode(mode string) {
	if m.GetMode() == mode || m.find(mode) == nil {
		return
	}
	m.modeSelect.SetSelected(mode)
}

// GetMode returns the currently selected mode name.
func (m *ModeTabs) GetMode() string {
	return m.modeSelect.Selected
}

// SetModeEnabled enables or disables switching. Disabled toggles stay on
// their current view.
func (m *ModeTabs) SetModeEnabled(enabled bool) {
	if enabled {
		m.modeSelect.Enable()
	} else {
		m.modeSelect.Disable()
	}
}

func (m *ModeTabs) find(name string) *Mode {
	for i := range m.modes {
		if m.modes[i].Name == name {
			return &m.modes[i]
		}
	}
	return nil
}

// updateContent swaps the visible content in the stack.
func (m *ModeTabs) updateContent(mode string) {
	found := m.find(mode)
	if found == nil {
		return
	}
	m.contentStack.Objects = []fyne.CanvasObject{found.Content}
	m.contentStack.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (m *ModeTabs) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(m.modeSelect, nil, nil, nil, m.contentStack)
	return widget.NewSimpleRenderer(content)
}
