package model

import "fmt"

// Color is a packed 0xAARRGGBB value.
type Color uint32

// Hex renders the color as "#RRGGBB", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// AppTheme is a user-selectable color theme.
type AppTheme struct {
	ID         int
	Name       string
	Primary    Color
	Secondary  Color
	Background Color
	Selected   bool
}

// SelectTheme returns a copy of themes where only the entry with id is selected.
// If no entry matches, every entry comes back unselected.
func SelectTheme(themes []AppTheme, id int) []AppTheme {
	out := make([]AppTheme, len(themes))
	for i, theme := range themes {
		theme.Selected = theme.ID == id
		out[i] = theme
	}
	return out
}

// SelectedTheme returns the first selected theme, if any.
func SelectedTheme(themes []AppTheme) (AppTheme, bool) {
	for _, theme := range themes {
		if theme.Selected {
			return theme, true
		}
	}
	return AppTheme{}, false
}

// FindTheme looks a theme up by id.
func FindTheme(themes []AppTheme, id int) (AppTheme, bool) {
	for _, theme := range themes {
		if theme.ID == id {
			return theme, true
		}
	}
	return AppTheme{}, false
}
