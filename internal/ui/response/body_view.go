package response

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// BodyView shows a response body as selectable monospace text. It looks
// like an enabled Entry but rejects every edit, so the text can still be
// selected and copied.
type BodyView struct {
	widget.Entry
}

// NewBodyView creates an empty body view. Lines are not wrapped so columns
// in tabular output line up.
func NewBodyView() *BodyView {
	v := &BodyView{}
	v.MultiLine = true
	v.Wrapping = fyne.TextWrapOff
	v.Scroll = fyne.ScrollBoth
	v.TextStyle = fyne.TextStyle{Monospace: true}
	v.ExtendBaseWidget(v)
	return v
}

// SetBody replaces the text and puts the cursor back at the start, so a new
// response is not shown scrolled to where the previous one was read.
func (v *BodyView) SetBody(text string) {
	if v.Text == text {
		return
	}
	v.SetText(text)
	v.CursorRow = 0
	v.CursorColumn = 0
	v.Refresh()
}

// TypedRune drops character input.
func (v *BodyView) TypedRune(_ rune) {}

// TypedKey passes navigation keys through and drops the rest.
func (v *BodyView) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyLeft, fyne.KeyRight, fyne.KeyUp, fyne.KeyDown,
		fyne.KeyHome, fyne.KeyEnd, fyne.KeyPageUp, fyne.KeyPageDown:
		v.Entry.TypedKey(key)
	}
}

// TypedShortcut allows copy and select-all only.
func (v *BodyView) TypedShortcut(shortcut fyne.Shortcut) {
	switch shortcut.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		v.Entry.TypedShortcut(shortcut)
	}
}
