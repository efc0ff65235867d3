package response

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// treeTheme swaps the tree's expand/collapse chevrons and tightens row
// padding, delegating everything else to the parent theme.
type treeTheme struct {
	parent fyne.Theme
}

func newTreeTheme(parent fyne.Theme) fyne.Theme {
	if parent == nil {
		parent = theme.DefaultTheme()
	}
	return &treeTheme{parent: parent}
}

func (t *treeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.parent.Color(name, variant)
}

func (t *treeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.parent.Font(style)
}

// Icon overrides the collapsed and expanded chevrons.
func (t *treeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	switch name {
	case theme.IconNameNavigateNext:
		return theme.NavigateNextIcon()
	case theme.IconNameMoveDown:
		// Clearer downward chevron for open branches
		return theme.MenuDropDownIcon()
	default:
		return t.parent.Icon(name)
	}
}

// Size shrinks the per-row padding so deep documents stay readable.
func (t *treeTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameInnerPadding {
		return t.parent.Size(name) / 2
	}
	return t.parent.Size(name)
}
