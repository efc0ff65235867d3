package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"

	"github.com/shhac/snooze/internal/ui/settings"
)

func TestThemeFor(t *testing.T) {
	dark := themeFor("dark")
	light := themeFor("light")

	assert.Equal(t, accentPink, dark.Color(theme.ColorNamePrimary, theme.VariantLight))
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight),
		"dark ignores the system variant")
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight),
		light.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, themeFor("unknown"), dark)
}

func TestLoadThemePreference(t *testing.T) {
	a := test.NewTempApp(t)

	LoadThemePreference(a)
	assert.Equal(t, themeFor("dark"), a.Settings().Theme(), "dark by default")

	a.Preferences().SetString(settings.PrefTheme, "light")
	LoadThemePreference(a)
	assert.Equal(t, themeFor("light"), a.Settings().Theme())
}
