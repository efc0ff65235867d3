package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func newTreeRawTabs() (*ModeTabs, *widget.Label, *widget.Label) {
	treeContent := widget.NewLabel("Tree Content")
	rawContent := widget.NewLabel("Raw Content")
	return NewModeTabs(
		Mode{Name: "tree", Content: treeContent},
		Mode{Name: "raw", Content: rawContent},
	), treeContent, rawContent
}

func TestNewModeTabs(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	modeTabs, treeContent, _ := newTreeRawTabs()

	assert.NotNil(t, modeTabs, "ModeTabs should not be nil")
	assert.Equal(t, []string{"tree", "raw"}, modeTabs.modeSelect.Options)
	assert.Equal(t, "tree", modeTabs.GetMode(), "first mode should be selected")
	assert.Equal(t, treeContent, modeTabs.contentStack.Objects[0])
}

func TestModeTabs_SetMode(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	modeTabs, treeContent, rawContent := newTreeRawTabs()

	tests := []struct {
		name         string
		setMode      string
		expectedMode string
		expected     *widget.Label
	}{
		{"switch to raw mode", "raw", "raw", rawContent},
		{"switch back to tree mode", "tree", "tree", treeContent},
		{"switch to raw again", "raw", "raw", rawContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modeTabs.SetMode(tt.setMode)
			assert.Equal(t, tt.expectedMode, modeTabs.GetMode())
			assert.Equal(t, tt.expected, modeTabs.contentStack.Objects[0])
		})
	}
}

func TestModeTabs_OnModeChange_NotCalledWhenAlreadyOnMode(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	modeTabs, _, _ := newTreeRawTabs()

	var calls []string
	modeTabs.SetOnModeChange(func(mode string) {
		calls = append(calls, mode)
	})

	modeTabs.SetMode("tree")
	assert.Empty(t, calls, "callback should not be called when already on mode")

	modeTabs.SetMode("raw")
	modeTabs.SetMode("raw")
	assert.Equal(t, []string{"raw"}, calls)
}

func TestModeTabs_InvalidMode(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	modeTabs, _, _ := newTreeRawTabs()
	modeTabs.SetMode("raw")

	modeTabs.SetMode("invalid")
	assert.Equal(t, "raw", modeTabs.GetMode())
}

func TestModeTabs_MinSize(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	modeTabs, _, _ := newTreeRawTabs()
	test.WidgetRenderer(modeTabs)

	minSize := modeTabs.MinSize()
	assert.Greater(t, minSize.Width, float32(0), "min width should be positive")
	assert.Greater(t, minSize.Height, float32(0), "min height should be positive")
}
