package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/snooze/internal/ui.Version=1.2.3"
var Version = "0.1.1"

// ShowAboutDialog displays information about the application.
func ShowAboutDialog(parent fyne.Window) {
	content := container.NewVBox(
		widget.NewLabelWithStyle("snooze", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("A small HTTP client for poking at APIs"),
		widget.NewLabel("Version "+Version),
		widget.NewSeparator(),
		widget.NewLabel("Built with Fyne and Go"),
	)
	dialog.ShowCustom("About snooze", "Close", content, parent)
}

// shortcutList is the reference shown by ShowShortcutDialog.
var shortcutList = []struct{ action, key string }{
	{"Send Request", "⌘ Return"},
	{"Focus URL", "⌘ L"},
	{"Headers Tab", "⌘ 1"},
	{"Body Tab", "⌘ 2"},
	{"Query Tab", "⌘ 3"},
	{"Search Response", "⌘ F"},
	{"Clear Search", "Escape"},
}

// ShowShortcutDialog displays a reference of all keyboard shortcuts.
func ShowShortcutDialog(parent fyne.Window) {
	grid := container.NewGridWithColumns(2)
	for _, s := range shortcutList {
		grid.Add(widget.NewLabel(s.action))
		grid.Add(widget.NewLabelWithStyle(s.key, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
	}

	dialog.ShowCustom("Keyboard Shortcuts", "Close", container.NewVScroll(grid), parent)
}
