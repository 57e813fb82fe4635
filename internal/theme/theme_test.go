package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/jcross/internal/model"
)

func TestSchemeForWithoutTheme(t *testing.T) {
	t.Parallel()

	require.Equal(t, Light(), SchemeFor(false, nil))
	require.Equal(t, Dark(), SchemeFor(true, nil))

	light := Light()
	assert.Equal(t, lipgloss.Color("#6BBBF5"), light.Primary)
	assert.Equal(t, lipgloss.Color("#F8FAFB"), light.Background)
	assert.Equal(t, lipgloss.Color("#1A1A1A"), Dark().Background)
	assert.Equal(t, lipgloss.Color("#2C2C2C"), Dark().Surface)
}

func TestSchemeForLightTheme(t *testing.T) {
	t.Parallel()

	ocean := model.AppTheme{ID: 1, Name: "Ocean Blue", Primary: 0xFF0277BD, Secondary: 0xFF00BCD4, Background: 0xFFE3F2FD}
	scheme := SchemeFor(false, &ocean)

	assert.Equal(t, "Ocean Blue", scheme.ThemeName)
	assert.Equal(t, lipgloss.Color("#0277BD"), scheme.Primary)
	assert.Equal(t, lipgloss.Color("#00BCD4"), scheme.Secondary)
	assert.Equal(t, lipgloss.Color("#E3F2FD"), scheme.Background)
	assert.False(t, scheme.Dark)
	assert.Equal(t, Light().TextPrimary, scheme.TextPrimary)
}

func TestSchemeForDarkBackgroundTheme(t *testing.T) {
	t.Parallel()

	darkTheme := model.AppTheme{ID: 5, Name: "Dark Mode", Primary: 0xFFBB86FC, Secondary: 0xFF03DAC6, Background: 0xFF121212}
	scheme := SchemeFor(false, &darkTheme)

	assert.True(t, scheme.Dark)
	assert.Equal(t, lipgloss.Color("#121212"), scheme.Background)
	assert.Equal(t, Dark().TextPrimary, scheme.TextPrimary)
	assert.Equal(t, Dark().Surface, scheme.Surface)
}

func TestSchemeForDarkModeKeepsDarkBackground(t *testing.T) {
	t.Parallel()

	ocean := model.AppTheme{ID: 1, Name: "Ocean Blue", Primary: 0xFF0277BD, Secondary: 0xFF00BCD4, Background: 0xFFE3F2FD}
	scheme := SchemeFor(true, &ocean)

	assert.True(t, scheme.Dark)
	assert.Equal(t, Dark().Background, scheme.Background)
	assert.Equal(t, lipgloss.Color("#0277BD"), scheme.Primary)
}

func TestIsDarkColor(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDarkColor(0xFF121212))
	assert.True(t, IsDarkColor(0xFF0D47A1))
	assert.False(t, IsDarkColor(0xFFF5F7FA))
	assert.False(t, IsDarkColor(0xFFFFFDE7))
}

func TestColorsForSize(t *testing.T) {
	t.Parallel()

	want := map[model.PuzzleSize]lipgloss.Color{
		model.SizeExtraSmall: "#FFB84D",
		model.SizeSmall:      "#7DD181",
		model.SizeMedium:     "#B399D8",
		model.SizeLarge:      "#6BBBF5",
		model.SizeExtraLarge: "#FF8FB1",
	}
	for size, accent := range want {
		assert.Equal(t, accent, ColorsForSize(size).Accent, size.Label())
	}
	assert.Equal(t, lipgloss.Color("#FFF5E6"), ColorsForSize(model.SizeExtraSmall).Tint)
	assert.Equal(t, colorPrimary, ColorsForSize(model.PuzzleSize(42)).Accent)
}

func TestStylesCellStyleFallsBack(t *testing.T) {
	t.Parallel()

	styles := NewStyles(Light())
	require.Equal(t, Light(), styles.Scheme)
	assert.Equal(t, Light().Primary, styles.CellStyle(model.CellFilled).GetForeground())
	assert.Equal(t, styles.Body.GetForeground(), styles.CellStyle(model.CellState(9)).GetForeground())
}

func TestSwatchRendersTwoCells(t *testing.T) {
	t.Parallel()

	styles := NewStyles(Dark())
	assert.Equal(t, 2, lipgloss.Width(styles.Swatch(0xFF3F51B5)))
}
