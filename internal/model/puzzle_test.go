package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPuzzleSizeLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size  PuzzleSize
		label string
		short string
		dim   int
	}{
		{SizeExtraSmall, "Extra Small", "XS", 5},
		{SizeSmall, "Small", "S", 10},
		{SizeMedium, "Medium", "M", 15},
		{SizeLarge, "Large", "L", 20},
		{SizeExtraLarge, "Extra Large", "XL", 25},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.short, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.label, tt.size.Label())
			require.Equal(t, tt.short, tt.size.ShortLabel())
			require.Equal(t, tt.short, tt.size.String())
			require.Equal(t, tt.dim, tt.size.Dimension())
		})
	}

	require.Len(t, PuzzleSizes, 5)
	require.Equal(t, "Unknown", PuzzleSize(42).Label())
	require.Zero(t, PuzzleSize(42).Dimension())
}

func TestParsePuzzleSize(t *testing.T) {
	t.Parallel()

	size, err := ParsePuzzleSize(" xl ")
	require.NoError(t, err)
	require.Equal(t, SizeExtraLarge, size)

	_, err = ParsePuzzleSize("huge")
	require.Error(t, err)
	require.Contains(t, err.Error(), "huge")
}

func TestProgressPercent(t *testing.T) {
	t.Parallel()

	t.Run("group with no puzzles", func(t *testing.T) {
		t.Parallel()
		require.Zero(t, Group{TotalPuzzles: 0, SolvedPuzzles: 3}.ProgressPercent())
	})

	t.Run("group ratio", func(t *testing.T) {
		t.Parallel()
		require.InDelta(t, 0.25, Group{TotalPuzzles: 8, SolvedPuzzles: 2}.ProgressPercent(), 1e-9)
	})

	t.Run("folder with no puzzles", func(t *testing.T) {
		t.Parallel()
		require.Zero(t, Folder{}.ProgressPercent())
	})

	t.Run("folder ratio", func(t *testing.T) {
		t.Parallel()
		require.InDelta(t, 0.1, Folder{TotalPuzzles: 50, SolvedPuzzles: 5}.ProgressPercent(), 1e-9)
	})
}

func TestFolderAndPuzzleDimensions(t *testing.T) {
	t.Parallel()

	require.Equal(t, "10x15", Folder{Width: 10, Height: 15}.Dimensions())
	require.Equal(t, "5x5", Puzzle{Width: 5, Height: 5}.Dimensions())
}

func TestPuzzleStatus(t *testing.T) {
	t.Parallel()

	best := 90 * time.Second
	solved := Puzzle{Solved: true, TimeSpent: 2 * time.Minute, BestTime: &best}
	require.Equal(t, PuzzleSolved, solved.Status())
	require.Equal(t, "✓", solved.Status().Icon())

	open := Puzzle{}
	require.Equal(t, PuzzleUnsolved, open.Status())
	require.Nil(t, open.BestTime)
	require.NotEqual(t, "✓", open.Status().Icon())
}
