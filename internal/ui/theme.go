package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/shhac/snooze/internal/ui/settings"
)

// accentPink is the primary color used for highlighted buttons and focus.
var accentPink = color.NRGBA{R: 0xf9, G: 0x26, B: 0x72, A: 0xff}

// snoozeTheme is the default theme with a pink primary color.
type snoozeTheme struct {
	fyne.Theme
}

// Color swaps in the accent for primary and focus colors.
func (s *snoozeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return accentPink
	case theme.ColorNameFocus:
		return color.NRGBA{R: accentPink.R, G: accentPink.G, B: accentPink.B, A: 0x7f}
	case theme.ColorNameForegroundOnPrimary:
		return color.White
	}
	return s.Theme.Color(name, variant)
}

// forcedVariant wraps a theme to force a specific variant (light/dark)
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

// Color returns the color for the forced variant, ignoring the passed variant
func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// themeFor builds the application theme for mode: "dark" (the default),
// "light", or "system".
func themeFor(mode string) fyne.Theme {
	base := &snoozeTheme{Theme: theme.DefaultTheme()}
	switch mode {
	case "light":
		return &forcedVariant{Theme: base, variant: theme.VariantLight}
	case "system":
		return base
	default:
		return &forcedVariant{Theme: base, variant: theme.VariantDark}
	}
}

// ApplyTheme sets the application theme based on the mode.
func ApplyTheme(a fyne.App, mode string) {
	a.Settings().SetTheme(themeFor(mode))
}

// LoadThemePreference loads and applies the saved theme preference
func LoadThemePreference(a fyne.App) {
	mode := a.Preferences().StringWithFallback(settings.PrefTheme, "dark")
	ApplyTheme(a, mode)
}
