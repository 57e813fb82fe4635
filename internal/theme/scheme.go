// Package theme turns palette records into lipgloss styles. Screens receive a
// Scheme from the app root on every render; nothing here holds global state.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/jcross/internal/model"
)

// Scheme is the resolved set of colors a render pass uses.
type Scheme struct {
	Dark          bool
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Background    lipgloss.Color
	Surface       lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	Divider       lipgloss.Color
	// ThemeName is empty for the built-in light and dark schemes.
	ThemeName string
}

// Palette constants.
const (
	colorPrimary         = lipgloss.Color("#6BBBF5")
	colorSecondary       = lipgloss.Color("#FFB84D")
	colorBackgroundLight = lipgloss.Color("#F8FAFB")
	colorBackgroundDark  = lipgloss.Color("#1A1A1A")
	colorSurfaceLight    = lipgloss.Color("#FFFFFF")
	colorSurfaceDark     = lipgloss.Color("#2C2C2C")
	colorTextPrimary     = lipgloss.Color("#4A5568")
	colorTextSecondary   = lipgloss.Color("#9CA3AF")
	colorTextOnDark      = lipgloss.Color("#E5E7EB")
	colorDivider         = lipgloss.Color("#E5E7EB")
	colorDividerDark     = lipgloss.Color("#3F3F46")
)

// Light returns the built-in light scheme.
func Light() Scheme {
	return Scheme{
		Primary:       colorPrimary,
		Secondary:     colorSecondary,
		Background:    colorBackgroundLight,
		Surface:       colorSurfaceLight,
		TextPrimary:   colorTextPrimary,
		TextSecondary: colorTextSecondary,
		Divider:       colorDivider,
	}
}

// Dark returns the built-in dark scheme.
func Dark() Scheme {
	return Scheme{
		Dark:          true,
		Primary:       colorPrimary,
		Secondary:     colorSecondary,
		Background:    colorBackgroundDark,
		Surface:       colorSurfaceDark,
		TextPrimary:   colorTextOnDark,
		TextSecondary: colorTextSecondary,
		Divider:       colorDividerDark,
	}
}

// SchemeFor picks the light or dark scheme and applies the selected theme on top.
// A theme's background only replaces the base background in light mode; a theme
// with a dark background switches the text colors to their dark variants.
func SchemeFor(dark bool, selected *model.AppTheme) Scheme {
	scheme := Light()
	if dark {
		scheme = Dark()
	}
	if selected == nil {
		return scheme
	}

	scheme.ThemeName = selected.Name
	scheme.Primary = lipgloss.Color(selected.Primary.Hex())
	scheme.Secondary = lipgloss.Color(selected.Secondary.Hex())
	if dark {
		return scheme
	}

	scheme.Background = lipgloss.Color(selected.Background.Hex())
	if IsDarkColor(selected.Background) {
		base := Dark()
		scheme.Dark = true
		scheme.Surface = base.Surface
		scheme.TextPrimary = base.TextPrimary
		scheme.Divider = base.Divider
	}
	return scheme
}

// IsDarkColor reports whether a color's relative luminance falls below the midpoint.
func IsDarkColor(c model.Color) bool {
	r := float64((c >> 16) & 0xFF)
	g := float64((c >> 8) & 0xFF)
	b := float64(c & 0xFF)
	return 0.2126*r+0.7152*g+0.0722*b < 128
}

// SizeColors is the accent pair used for a puzzle size's cards.
type SizeColors struct {
	Accent lipgloss.Color
	Tint   lipgloss.Color
}

var sizeColors = map[model.PuzzleSize]SizeColors{
	model.SizeExtraSmall: {Accent: "#FFB84D", Tint: "#FFF5E6"},
	model.SizeSmall:      {Accent: "#7DD181", Tint: "#EEF9EF"},
	model.SizeMedium:     {Accent: "#B399D8", Tint: "#F5F0FB"},
	model.SizeLarge:      {Accent: "#6BBBF5", Tint: "#EEF7FD"},
	model.SizeExtraLarge: {Accent: "#FF8FB1", Tint: "#FFEEF4"},
}

// ColorsForSize returns the accent pair for size, falling back to the primary color.
func ColorsForSize(size model.PuzzleSize) SizeColors {
	if colors, ok := sizeColors[size]; ok {
		return colors
	}
	return SizeColors{Accent: colorPrimary, Tint: colorSurfaceLight}
}
