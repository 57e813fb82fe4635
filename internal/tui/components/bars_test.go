package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/jcross/internal/theme"
)

func TestTopBar(t *testing.T) {
	t.Parallel()

	styles := theme.NewStyles(theme.Light())

	withBack := TopBar(styles, "Small", true, 60)
	require.Contains(t, withBack, "← esc")
	require.Contains(t, withBack, "Small")
	require.LessOrEqual(t, lipgloss.Width(withBack), 60)

	noBack := TopBar(styles, "JCross Nonograms", false, 0)
	require.NotContains(t, noBack, "esc")
	require.Contains(t, noBack, "JCross Nonograms")
}

func TestNavBar(t *testing.T) {
	t.Parallel()

	styles := theme.NewStyles(theme.Dark())
	items := []NavItem{{Label: "Home"}, {Key: "o", Label: "Settings"}}

	view := NavBar(styles, items, 0, 50)
	require.Contains(t, view, "Home")
	require.NotContains(t, view, "Home (")
	require.Contains(t, view, "Settings (o)")
}

func TestSwitchAndSegmented(t *testing.T) {
	t.Parallel()

	styles := theme.NewStyles(theme.Light())
	require.Contains(t, Switch(styles, true), "ON")
	require.Contains(t, Switch(styles, false), "OFF")

	view := Segmented(styles, []string{"Off", "Base", "Smart"}, 2)
	for _, option := range []string{"Off", "Base", "Smart"} {
		require.Contains(t, view, option)
	}
}
