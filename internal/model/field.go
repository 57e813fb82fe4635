package model

// GameField is the playable grid together with its run-length clues.
type GameField struct {
	Width       int
	Height      int
	Cells       [][]CellState
	RowClues    [][]int
	ColumnClues [][]int
}

// NewGameField builds an all-empty width x height field with the given clues.
func NewGameField(width, height int, rowClues, columnClues [][]int) GameField {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]CellState, height)
	for r := range cells {
		cells[r] = make([]CellState, width)
	}
	return GameField{
		Width:       width,
		Height:      height,
		Cells:       cells,
		RowClues:    copyClues(rowClues),
		ColumnClues: copyClues(columnClues),
	}
}

func (f GameField) inBounds(row, col int) bool {
	return row >= 0 && row < f.Height && col >= 0 && col < f.Width &&
		row < len(f.Cells) && col < len(f.Cells[row])
}

// Cell returns the state at (row, col); ok is false when out of range.
func (f GameField) Cell(row, col int) (CellState, bool) {
	if !f.inBounds(row, col) {
		return CellEmpty, false
	}
	return f.Cells[row][col], true
}

// Toggle advances the cell at (row, col) one step and returns the new state.
// Out-of-range coordinates leave the field untouched.
func (f *GameField) Toggle(row, col int) (CellState, bool) {
	if f == nil || !f.inBounds(row, col) {
		return CellEmpty, false
	}
	next := f.Cells[row][col].Next()
	f.Cells[row][col] = next
	return next, true
}

// Set writes a state directly, used by the mark shortcut.
func (f *GameField) Set(row, col int, state CellState) bool {
	if f == nil || !f.inBounds(row, col) {
		return false
	}
	f.Cells[row][col] = state
	return true
}

// Reset clears every cell back to empty.
func (f *GameField) Reset() {
	if f == nil {
		return
	}
	for r := range f.Cells {
		for c := range f.Cells[r] {
			f.Cells[r][c] = CellEmpty
		}
	}
}

// Counts returns how many cells are filled and how many are marked.
func (f GameField) Counts() (filled, marked int) {
	for _, row := range f.Cells {
		for _, cell := range row {
			switch cell {
			case CellFilled:
				filled++
			case CellMarked:
				marked++
			}
		}
	}
	return filled, marked
}

// Clone returns a deep copy that shares no slices with f.
func (f GameField) Clone() GameField {
	cells := make([][]CellState, len(f.Cells))
	for r, row := range f.Cells {
		cells[r] = append([]CellState(nil), row...)
	}
	return GameField{
		Width:       f.Width,
		Height:      f.Height,
		Cells:       cells,
		RowClues:    copyClues(f.RowClues),
		ColumnClues: copyClues(f.ColumnClues),
	}
}

// Equal reports structural equality: same dimensions, cells and clues.
func (f GameField) Equal(other GameField) bool {
	if f.Width != other.Width || f.Height != other.Height {
		return false
	}
	if len(f.Cells) != len(other.Cells) {
		return false
	}
	for r := range f.Cells {
		if len(f.Cells[r]) != len(other.Cells[r]) {
			return false
		}
		for c := range f.Cells[r] {
			if f.Cells[r][c] != other.Cells[r][c] {
				return false
			}
		}
	}
	return cluesEqual(f.RowClues, other.RowClues) && cluesEqual(f.ColumnClues, other.ColumnClues)
}

// LongestClue returns the largest number of runs in any clue line.
func LongestClue(clues [][]int) int {
	longest := 0
	for _, clue := range clues {
		if len(clue) > longest {
			longest = len(clue)
		}
	}
	return longest
}

func cluesEqual(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func copyClues(clues [][]int) [][]int {
	if clues == nil {
		return nil
	}
	out := make([][]int, len(clues))
	for i, clue := range clues {
		out[i] = append([]int(nil), clue...)
	}
	return out
}
