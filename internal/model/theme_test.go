package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func threeThemes() []AppTheme {
	return []AppTheme{
		{ID: 0, Name: "Classic Light", Primary: 0xFF3F51B5, Selected: true},
		{ID: 1, Name: "Ocean Blue", Primary: 0xFF0277BD},
		{ID: 2, Name: "Forest Green", Primary: 0xFF2E7D32},
	}
}

func TestColorHex(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#3F51B5", Color(0xFF3F51B5).Hex())
	require.Equal(t, "#000000", Color(0).Hex())
}

func TestSelectThemeLeavesExactlyOneSelected(t *testing.T) {
	t.Parallel()

	themes := threeThemes()
	for _, id := range []int{0, 1, 2} {
		updated := SelectTheme(themes, id)

		selected := 0
		for _, theme := range updated {
			if theme.Selected {
				selected++
				require.Equal(t, id, theme.ID)
			}
		}
		require.Equal(t, 1, selected)
	}

	require.True(t, themes[0].Selected, "input slice is not mutated")
	require.False(t, themes[2].Selected)
}

func TestSelectThemeUnknownID(t *testing.T) {
	t.Parallel()

	updated := SelectTheme(threeThemes(), 99)
	_, ok := SelectedTheme(updated)
	require.False(t, ok)
}

func TestFindAndSelectedTheme(t *testing.T) {
	t.Parallel()

	themes := threeThemes()
	theme, ok := SelectedTheme(themes)
	require.True(t, ok)
	require.Equal(t, "Classic Light", theme.Name)

	theme, ok = FindTheme(themes, 2)
	require.True(t, ok)
	require.Equal(t, "Forest Green", theme.Name)

	_, ok = FindTheme(themes, -1)
	require.False(t, ok)
}
