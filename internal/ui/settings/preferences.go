package settings

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/snooze/internal/domain"
)

// Preference keys.
const (
	PrefRequestTimeout  = "requestTimeout" // seconds, 0 = none
	PrefVerifyTLS       = "verifyTLS"
	PrefFollowRedirects = "followRedirects"
	PrefTheme           = "appTheme"
)

// PreferencesCallbacks provides hooks for the preferences dialog to apply changes.
type PreferencesCallbacks struct {
	OnThemeChange  func(mode string) // Called with "system", "dark", or "light"
	OnClientChange func(domain.ClientSettings)
}

// ClientSettings overlays saved preferences on base. Keys that were never
// saved keep base's value, so flags and config apply until the user
// changes them here.
func ClientSettings(prefs fyne.Preferences, base domain.ClientSettings) domain.ClientSettings {
	out := base
	if secs := prefs.FloatWithFallback(PrefRequestTimeout, -1); secs >= 0 {
		out.Timeout = time.Duration(secs * float64(time.Second))
	}
	out.InsecureSkipVerify = !prefs.BoolWithFallback(PrefVerifyTLS, !base.InsecureSkipVerify)
	out.FollowRedirects = prefs.BoolWithFallback(PrefFollowRedirects, base.FollowRedirects)
	return out
}

// SaveClientSettings stores s so the next launch starts with it.
func SaveClientSettings(prefs fyne.Preferences, s domain.ClientSettings) {
	prefs.SetFloat(PrefRequestTimeout, s.Timeout.Seconds())
	prefs.SetBool(PrefVerifyTLS, !s.InsecureSkipVerify)
	prefs.SetBool(PrefFollowRedirects, s.FollowRedirects)
}

// ParseTimeout reads the timeout entry: seconds, where empty or 0 means none.
func ParseTimeout(text string) (time.Duration, bool) {
	if text == "" {
		return 0, true
	}
	secs, err := strconv.ParseFloat(text, 64)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}

// ShowPreferencesDialog displays the unified preferences dialog with General and Appearance tabs.
func ShowPreferencesDialog(a fyne.App, window fyne.Window, current domain.ClientSettings, callbacks PreferencesCallbacks) {
	prefs := a.Preferences()

	// --- General tab ---

	timeoutEntry := widget.NewEntry()
	timeoutEntry.SetPlaceHolder("none")
	if current.Timeout > 0 {
		timeoutEntry.SetText(strconv.FormatFloat(current.Timeout.Seconds(), 'f', -1, 64))
	}

	verifyCheck := widget.NewCheck("Verify TLS certificates", nil)
	verifyCheck.SetChecked(!current.InsecureSkipVerify)

	redirectCheck := widget.NewCheck("Follow redirects", nil)
	redirectCheck.SetChecked(current.FollowRedirects)

	generalTab := container.NewTabItem("General", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Request Timeout (seconds)", timeoutEntry),
		),
		widget.NewLabel("Leave empty or 0 to wait as long as the server takes."),
		verifyCheck,
		redirectCheck,
	))

	// --- Appearance tab ---

	themeSelector := widget.NewSelect(
		[]string{"System Default", "Light", "Dark"},
		nil,
	)

	savedTheme := prefs.StringWithFallback(PrefTheme, "dark")
	switch savedTheme {
	case "system":
		themeSelector.SetSelected("System Default")
	case "light":
		themeSelector.SetSelected("Light")
	default:
		themeSelector.SetSelected("Dark")
	}

	appearanceTab := container.NewTabItem("Appearance", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Theme", themeSelector),
		),
	))

	// --- Build dialog ---

	tabs := container.NewAppTabs(generalTab, appearanceTab)

	dlg := dialog.NewCustomConfirm("Preferences", "Save", "Cancel", tabs, func(save bool) {
		if !save {
			return
		}

		next := current
		if timeout, ok := ParseTimeout(timeoutEntry.Text); ok {
			next.Timeout = timeout
		}
		next.InsecureSkipVerify = !verifyCheck.Checked
		next.FollowRedirects = redirectCheck.Checked
		SaveClientSettings(prefs, next)
		if callbacks.OnClientChange != nil && next != current {
			callbacks.OnClientChange(next)
		}

		// Save and apply theme
		var mode string
		switch themeSelector.Selected {
		case "Dark":
			mode = "dark"
		case "Light":
			mode = "light"
		default:
			mode = "system"
		}
		prefs.SetString(PrefTheme, mode)
		if callbacks.OnThemeChange != nil {
			callbacks.OnThemeChange(mode)
		}
	}, window)

	dlg.Resize(fyne.NewSize(500, 350))
	dlg.Show()
}
