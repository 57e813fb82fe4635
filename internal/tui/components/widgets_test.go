package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/jcross/internal/theme"
)

func TestBadge(t *testing.T) {
	t.Parallel()

	styles := theme.NewStyles(theme.Light())

	badge := NewBadge("SOLVED").WithVariant(BadgeVariantPrimary)
	require.Equal(t, "SOLVED", badge.Text())

	view := badge.View(styles)
	require.Contains(t, view, "SOLVED")
	require.Equal(t, len("SOLVED")+2, lipgloss.Width(view))

	muted := NewBadge("new").WithVariant(BadgeVariantMuted).View(styles)
	require.Contains(t, muted, "new")
}

func TestButton(t *testing.T) {
	t.Parallel()

	styles := theme.NewStyles(theme.Dark())

	button := NewButton("Hint").WithDisabled(true)
	require.True(t, button.Disabled())
	require.Contains(t, button.View(styles), "[ Hint ]")

	enabled := NewButton("Play").WithActive(true)
	require.False(t, enabled.Disabled())
	require.Contains(t, enabled.View(styles), "[ Play ]")
}

func TestDivider(t *testing.T) {
	t.Parallel()

	styles := theme.NewStyles(theme.Light())

	require.Equal(t, 40, lipgloss.Width(NewDivider().View(styles)))

	custom := NewDivider().WithChar("-").WithWidth(12).View(styles)
	require.Equal(t, 12, lipgloss.Width(custom))
	require.Contains(t, custom, "------------")

	require.Contains(t, NewDivider().WithChar("").WithWidth(3).View(styles), "───")
}
