package response

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestBodyView_RejectsEdits(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	v := NewBodyView()
	v.SetBody("line one\nline two")

	test.Type(v, "xyz")
	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})
	v.TypedShortcut(&fyne.ShortcutPaste{Clipboard: app.Clipboard()})

	assert.Equal(t, "line one\nline two", v.Text)
}

func TestBodyView_SetBodyResetsCursor(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	v := NewBodyView()
	v.SetBody("a\nb\nc")
	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDown})
	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDown})
	assert.Equal(t, 2, v.CursorRow)

	v.SetBody("a\nb\nc")
	assert.Equal(t, 2, v.CursorRow, "same body keeps the position")

	v.SetBody("new")
	assert.Equal(t, 0, v.CursorRow)
	assert.Equal(t, 0, v.CursorColumn)
}
