package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleField() GameField {
	return NewGameField(3, 2, [][]int{{1}, {2}}, [][]int{{1}, {1}, {1}})
}

func TestCellStateCycle(t *testing.T) {
	t.Parallel()

	state := CellEmpty
	want := []CellState{CellFilled, CellMarked, CellEmpty, CellFilled, CellMarked, CellEmpty}
	for i, expected := range want {
		state = state.Next()
		require.Equalf(t, expected, state, "step %d", i+1)
	}

	for _, start := range []CellState{CellEmpty, CellFilled, CellMarked} {
		require.Equal(t, start, start.Next().Next().Next(), "cycle has period 3")
	}
}

func TestCellStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "empty", CellEmpty.String())
	require.Equal(t, "filled", CellFilled.String())
	require.Equal(t, "marked", CellMarked.String())
}

func TestNewGameFieldIsEmpty(t *testing.T) {
	t.Parallel()

	f := sampleField()
	require.Equal(t, 3, f.Width)
	require.Equal(t, 2, f.Height)
	require.Len(t, f.Cells, 2)
	for _, row := range f.Cells {
		require.Len(t, row, 3)
		for _, cell := range row {
			require.Equal(t, CellEmpty, cell)
		}
	}

	filled, marked := f.Counts()
	require.Zero(t, filled)
	require.Zero(t, marked)
}

func TestGameFieldToggle(t *testing.T) {
	t.Parallel()

	f := sampleField()

	state, ok := f.Toggle(1, 2)
	require.True(t, ok)
	require.Equal(t, CellFilled, state)

	state, ok = f.Toggle(1, 2)
	require.True(t, ok)
	require.Equal(t, CellMarked, state)

	state, ok = f.Toggle(1, 2)
	require.True(t, ok)
	require.Equal(t, CellEmpty, state)

	_, ok = f.Toggle(2, 0)
	require.False(t, ok)
	_, ok = f.Toggle(0, -1)
	require.False(t, ok)

	var nilField *GameField
	_, ok = nilField.Toggle(0, 0)
	require.False(t, ok)
}

func TestGameFieldCellGetOrNone(t *testing.T) {
	t.Parallel()

	f := sampleField()
	require.True(t, f.Set(0, 1, CellMarked))

	state, ok := f.Cell(0, 1)
	require.True(t, ok)
	require.Equal(t, CellMarked, state)

	_, ok = f.Cell(5, 5)
	require.False(t, ok)
	require.False(t, f.Set(9, 9, CellFilled))
}

func TestGameFieldCountsAndReset(t *testing.T) {
	t.Parallel()

	f := sampleField()
	f.Toggle(0, 0)
	f.Toggle(0, 1)
	f.Toggle(0, 1)
	f.Set(1, 1, CellFilled)

	filled, marked := f.Counts()
	require.Equal(t, 2, filled)
	require.Equal(t, 1, marked)

	f.Reset()
	filled, marked = f.Counts()
	require.Zero(t, filled)
	require.Zero(t, marked)
}

func TestGameFieldEqualityIsStructural(t *testing.T) {
	t.Parallel()

	a := sampleField()
	b := sampleField()
	require.True(t, a.Equal(b))
	require.Empty(t, cmp.Diff(a, b))

	b.Toggle(0, 0)
	require.False(t, a.Equal(b), "cell difference breaks equality")

	c := sampleField()
	c.RowClues[1] = []int{1, 1}
	require.False(t, a.Equal(c), "clue difference breaks equality")

	d := NewGameField(2, 3, nil, nil)
	require.False(t, a.Equal(d))
}

func TestGameFieldCloneIsDeep(t *testing.T) {
	t.Parallel()

	original := sampleField()
	clone := original.Clone()
	require.True(t, original.Equal(clone))

	clone.Toggle(0, 0)
	clone.ColumnClues[0][0] = 9

	state, _ := original.Cell(0, 0)
	require.Equal(t, CellEmpty, state)
	require.Equal(t, 1, original.ColumnClues[0][0])
}

func TestLongestClue(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, LongestClue([][]int{{1}, {1, 2, 3}, {5}}))
	require.Zero(t, LongestClue(nil))
}
