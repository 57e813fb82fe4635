package model

// CellState is the player's mark on a single grid cell.
type CellState int

const (
	CellEmpty CellState = iota
	CellFilled
	// CellMarked flags a cell the player believes is empty.
	CellMarked
)

// Next advances the state one step in the cycle empty -> filled -> marked -> empty.
func (c CellState) Next() CellState {
	switch c {
	case CellEmpty:
		return CellFilled
	case CellFilled:
		return CellMarked
	default:
		return CellEmpty
	}
}

func (c CellState) String() string {
	switch c {
	case CellFilled:
		return "filled"
	case CellMarked:
		return "marked"
	default:
		return "empty"
	}
}
