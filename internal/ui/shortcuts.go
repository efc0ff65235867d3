package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/shhac/snooze/internal/model"
)

// shortcut builds Cmd+key on macOS and Ctrl+key elsewhere.
func shortcut(key fyne.KeyName) *desktop.CustomShortcut {
	return &desktop.CustomShortcut{
		KeyName:  key,
		Modifier: fyne.KeyModifierShortcutDefault,
	}
}

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Cmd+Enter: Send request
	canvas.AddShortcut(shortcut(fyne.KeyReturn), func(fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: send request")
		w.requestPanel.TriggerSend()
	})

	// Cmd+L: Focus URL
	canvas.AddShortcut(shortcut(fyne.KeyL), func(fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: focus url")
		canvas.Focus(w.requestPanel.URLEntry())
	})

	// Cmd+1/2/3: Editor tabs
	for key, tab := range map[fyne.KeyName]string{
		fyne.Key1: model.TabHeaders,
		fyne.Key2: model.TabBody,
		fyne.Key3: model.TabQuery,
	} {
		canvas.AddShortcut(shortcut(key), func(fyne.Shortcut) {
			w.logger.Debug("keyboard shortcut: switch editor tab")
			w.requestPanel.SelectTab(tab)
		})
	}

	// Cmd+F: Focus search
	canvas.AddShortcut(shortcut(fyne.KeyF), func(fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: focus search")
		canvas.Focus(w.responsePanel.SearchEntry())
	})

	// Escape: Clear search
	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			w.logger.Debug("keyboard shortcut: escape (clear search)")
			w.responsePanel.ClearSearch()
		}
	})

	w.logger.Info("keyboard shortcuts configured")
}
