package components

// Grid tracks a cursor over count items laid out in rows of a fixed column count,
// along with the first visible row when the grid is taller than the viewport.
type Grid struct {
	Count   int
	Columns int
	Cursor  int
	Offset  int
}

// NewGrid returns a grid positioned on the first item.
func NewGrid(count, columns int) Grid {
	if columns < 1 {
		columns = 1
	}
	return Grid{Count: count, Columns: columns}
}

// Rows returns the number of rows needed for every item.
func (g Grid) Rows() int {
	if g.Count <= 0 {
		return 0
	}
	return (g.Count + g.Columns - 1) / g.Columns
}

// Row returns the row holding the cursor.
func (g Grid) Row() int {
	return g.Cursor / g.Columns
}

// Move shifts the cursor by rows and cols, clamping at the edges.
func (g *Grid) Move(rows, cols int) {
	if g.Count == 0 {
		return
	}
	next := g.Cursor + rows*g.Columns + cols
	if next < 0 {
		next = 0
	}
	if next >= g.Count {
		if rows > 0 {
			return
		}
		next = g.Count - 1
	}
	g.Cursor = next
}

// SetColumns reflows the grid for a new width while keeping the cursor on the same item.
func (g *Grid) SetColumns(columns int) {
	if columns < 1 {
		columns = 1
	}
	g.Columns = columns
}

// Scroll adjusts Offset so the cursor row is inside a window of visible rows.
func (g *Grid) Scroll(visible int) {
	if visible < 1 {
		visible = 1
	}
	row := g.Row()
	if row < g.Offset {
		g.Offset = row
	}
	if row >= g.Offset+visible {
		g.Offset = row - visible + 1
	}
	if maxOffset := g.Rows() - visible; g.Offset > maxOffset {
		g.Offset = maxOffset
	}
	if g.Offset < 0 {
		g.Offset = 0
	}
}

// VisibleRange returns the half-open item range [start, end) rendered for visible rows.
func (g Grid) VisibleRange(visible int) (start, end int) {
	start = g.Offset * g.Columns
	end = start + visible*g.Columns
	if end > g.Count {
		end = g.Count
	}
	if start > end {
		start = end
	}
	return start, end
}

// ColumnsFor returns how many cells of cellWidth fit in width, with gap spacing.
func ColumnsFor(width, cellWidth, gap int) int {
	if cellWidth <= 0 {
		return 1
	}
	columns := (width + gap) / (cellWidth + gap)
	if columns < 1 {
		return 1
	}
	return columns
}
