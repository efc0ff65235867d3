package request

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/shhac/snooze/internal/domain"
)

// methodColors gives each method button its own fill when selected.
var methodColors = map[domain.Method]color.NRGBA{
	domain.MethodGet:     {R: 97, G: 175, B: 255, A: 255},
	domain.MethodPost:    {R: 152, G: 230, B: 121, A: 255},
	domain.MethodPut:     {R: 198, G: 120, B: 255, A: 255},
	domain.MethodDelete:  {R: 255, G: 108, B: 117, A: 255},
	domain.MethodPatch:   {R: 255, G: 192, B: 123, A: 255},
	domain.MethodHead:    {R: 86, G: 182, B: 230, A: 255},
	domain.MethodOptions: {R: 152, G: 195, B: 121, A: 255},
}

// methodTheme recolors the primary color for one method button while
// delegating everything else to the current application theme.
type methodTheme struct {
	primary color.Color
}

func newMethodTheme(m domain.Method) fyne.Theme {
	c, ok := methodColors[m]
	if !ok {
		return &methodTheme{}
	}
	return &methodTheme{primary: c}
}

func (t *methodTheme) parent() fyne.Theme {
	if app := fyne.CurrentApp(); app != nil {
		if th := app.Settings().Theme(); th != nil {
			return th
		}
	}
	return theme.DefaultTheme()
}

func (t *methodTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.primary != nil {
		switch name {
		case theme.ColorNamePrimary:
			return t.primary
		case theme.ColorNameForegroundOnPrimary:
			return color.White
		}
	}
	return t.parent().Color(name, variant)
}

func (t *methodTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.parent().Font(style)
}

func (t *methodTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.parent().Icon(name)
}

func (t *methodTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.parent().Size(name)
}
