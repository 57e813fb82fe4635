package mock

import (
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/jcross/internal/model"
)

func TestGroupsAreFixed(t *testing.T) {
	t.Parallel()

	groups := New(1).Groups()
	require.Len(t, groups, 5)

	first := groups[0]
	require.Equal(t, model.SizeExtraSmall, first.Size)
	require.Equal(t, 2823, first.TotalPuzzles)
	require.Equal(t, 0, first.SolvedPuzzles)
	require.Zero(t, first.ProgressPercent())

	totals := []int{2823, 9738, 11165, 25629, 4480}
	for i, g := range groups {
		require.Equal(t, i, g.ID)
		require.Equal(t, model.PuzzleSizes[i], g.Size)
		require.Equal(t, totals[i], g.TotalPuzzles)
	}
}

func TestGroupByID(t *testing.T) {
	t.Parallel()

	p := New(1)
	g, ok := p.GroupByID(3)
	require.True(t, ok)
	require.Equal(t, model.SizeLarge, g.Size)

	_, ok = p.GroupByID(5)
	require.False(t, ok)
	_, ok = p.GroupByID(-1)
	require.False(t, ok)
}

func TestFolderCountsFollowLookup(t *testing.T) {
	t.Parallel()

	p := New(7)
	want := map[int]int{0: 15, 1: 25, 2: 30, 3: 40, 4: 20}
	for id, count := range want {
		require.Len(t, p.FoldersForGroup(id), count, "group %d", id)
		require.Equal(t, count, FolderCount(id))
	}
	require.Len(t, p.FoldersForGroup(99), 10)
	require.Len(t, p.FoldersForGroup(-3), 10)
}

func TestFolderRanges(t *testing.T) {
	t.Parallel()

	p := New(42)
	for id := 0; id < 5; id++ {
		for i, f := range p.FoldersForGroup(id) {
			require.Equal(t, i, f.ID)
			require.Equal(t, "Folder "+strconv.Itoa(i+1), f.Name)
			require.GreaterOrEqual(t, f.TotalPuzzles, 50)
			require.LessOrEqual(t, f.TotalPuzzles, 200)
			require.GreaterOrEqual(t, f.SolvedPuzzles, 0)
			require.LessOrEqual(t, f.SolvedPuzzles, 10)
			require.LessOrEqual(t, f.SolvedPuzzles, f.TotalPuzzles)
			require.Equal(t, model.PuzzleSizes[id].Dimension(), f.Width)
			require.Equal(t, f.Width, f.Height)
		}
	}

	for _, f := range p.FoldersForGroup(99) {
		require.Zero(t, f.Width)
	}
}

func TestSameSeedSameData(t *testing.T) {
	t.Parallel()

	a := New(2024)
	b := New(2024)
	require.Empty(t, cmp.Diff(a.FoldersForGroup(2), b.FoldersForGroup(2)))
	require.Empty(t, cmp.Diff(a.PuzzlesForFolder(0, 20), b.PuzzlesForFolder(0, 20)))
}

func TestPuzzlesForFolder(t *testing.T) {
	t.Parallel()

	puzzles := New(3).PuzzlesForFolder(4, 60)
	require.Len(t, puzzles, 60)

	allowed := map[int]bool{5: true, 10: true, 15: true, 20: true}
	for i, pz := range puzzles {
		require.Equal(t, i, pz.ID)
		require.Equal(t, "Puzzle "+strconv.Itoa(i+1), pz.Name)
		require.True(t, allowed[pz.Width], "unexpected width %d", pz.Width)
		require.Equal(t, pz.Width, pz.Height)

		if i < 3 {
			require.True(t, pz.Solved)
			require.GreaterOrEqual(t, pz.TimeSpent, 60*time.Second)
			require.LessOrEqual(t, pz.TimeSpent, 600*time.Second)
			require.NotNil(t, pz.BestTime)
			require.GreaterOrEqual(t, *pz.BestTime, 60*time.Second)
			require.LessOrEqual(t, *pz.BestTime, 600*time.Second)
		} else {
			require.False(t, pz.Solved)
			require.Zero(t, pz.TimeSpent)
			require.Nil(t, pz.BestTime)
		}
	}

	require.Empty(t, New(3).PuzzlesForFolder(0, 0))
	require.Empty(t, New(3).PuzzlesForFolder(0, -5))
}

func TestPuzzleEdgeBuckets(t *testing.T) {
	t.Parallel()

	cases := map[int]int{5: 5, 10: 5, 11: 10, 15: 10, 16: 15, 20: 15, 21: 20, 25: 20}
	for draw, edge := range cases {
		require.Equal(t, edge, puzzleEdge(draw), "draw %d", draw)
	}
}

func TestGameFieldIsFixed(t *testing.T) {
	t.Parallel()

	p := New(1)
	field := p.GameField(model.Puzzle{})
	require.Equal(t, 5, field.Width)
	require.Equal(t, 5, field.Height)
	require.Equal(t, [][]int{{2, 1}, {1, 1}, {5}, {1, 1}, {2, 1}}, field.RowClues)
	require.Equal(t, [][]int{{2, 1}, {1, 2}, {5}, {1, 2}, {2, 1}}, field.ColumnClues)

	filled, marked := field.Counts()
	require.Zero(t, filled)
	require.Zero(t, marked)

	require.True(t, field.Equal(p.GameField(model.Puzzle{ID: 7})))
}

func TestThemesCatalog(t *testing.T) {
	t.Parallel()

	themes := New(1).Themes()
	require.Len(t, themes, 12)

	selected, ok := model.SelectedTheme(themes)
	require.True(t, ok)
	require.Equal(t, 0, selected.ID)
	require.Equal(t, "Classic Light", selected.Name)

	count := 0
	for i, theme := range themes {
		require.Equal(t, i, theme.ID)
		if theme.Selected {
			count++
		}
	}
	require.Equal(t, 1, count)
	require.Equal(t, "Midnight Blue", themes[11].Name)
	require.Equal(t, "#121212", themes[5].Background.Hex())
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := New(1).Settings()
	require.True(t, s.Sound)
	require.True(t, s.Music)
	require.True(t, s.Vibration)
	require.True(t, s.ShowTimer)
	require.True(t, s.ShowErrors)
	require.False(t, s.AutoFill)
	require.Zero(t, s.SelectedThemeID)
}
