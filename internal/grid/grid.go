// Package grid maps a linear list of entries onto rows and columns of fixed
// size cells that wrap to the available width. Nothing is cached; callers
// rebuild a Layout every frame since the width can change at any time.
package grid

import "image"

// Layout describes the cell pitch and the width the grid may use.
//
// CellWidth and RowHeight are the pitch of one cell including its gutter.
// Spacing is the gutter carved out of the right and bottom of each cell.
type Layout struct {
	CellWidth int
	RowHeight int
	Spacing   int
	Available int
}

// Position is a cell's row and column.
type Position struct {
	Row int
	Col int
}

func (l Layout) cellWidth() int {
	if l.CellWidth < 1 {
		return 1
	}
	return l.CellWidth
}

func (l Layout) rowHeight() int {
	if l.RowHeight < 1 {
		return 1
	}
	return l.RowHeight
}

// Columns returns how many cells fit per row, at least one.
func (l Layout) Columns() int {
	if l.Available <= 0 {
		return 1
	}
	cols := l.Available / l.cellWidth()
	if cols < 1 {
		cols = 1
	}
	return cols
}

// Rows returns the number of rows needed for n entries.
func (l Layout) Rows(n int) int {
	if n <= 0 {
		return 0
	}
	cols := l.Columns()
	return (n + cols - 1) / cols
}

// Position returns where entry i sits.
func (l Layout) Position(i int) Position {
	cols := l.Columns()
	return Position{Row: i / cols, Col: i % cols}
}

// Index is the inverse of Position.
func (l Layout) Index(pos Position) int {
	return pos.Row*l.Columns() + pos.Col
}

// Bounds returns the box occupied by entry i, excluding the gutter. The box
// is always at least one unit wide and tall.
func (l Layout) Bounds(i int) image.Rectangle {
	pos := l.Position(i)
	cw, rh := l.cellWidth(), l.rowHeight()
	x, y := pos.Col*cw, pos.Row*rh

	w := cw - l.Spacing
	if w < 1 {
		w = 1
	}
	h := rh - l.Spacing
	if h < 1 {
		h = 1
	}
	return image.Rect(x, y, x+w, y+h)
}

// Boxes returns Bounds for entries 0..n-1.
func (l Layout) Boxes(n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	boxes := make([]image.Rectangle, n)
	for i := range boxes {
		boxes[i] = l.Bounds(i)
	}
	return boxes
}

// IndexAt returns the entry whose box contains p, or -1 when p is in a
// gutter, outside the grid, or past the last of n entries.
func (l Layout) IndexAt(p image.Point, n int) int {
	if p.X < 0 || p.Y < 0 || n <= 0 {
		return -1
	}
	col := p.X / l.cellWidth()
	if col >= l.Columns() {
		return -1
	}
	i := l.Index(Position{Row: p.Y / l.rowHeight(), Col: col})
	if i >= n || !p.In(l.Bounds(i)) {
		return -1
	}
	return i
}

// Move steps cursor i by dx columns and dy rows across n entries, clamping
// to the first and last entry. Horizontal moves wrap between rows.
func (l Layout) Move(i, dx, dy, n int) int {
	if n <= 0 {
		return 0
	}
	next := i + dx + dy*l.Columns()
	if dy != 0 && (next < 0 || next >= n) {
		// Vertical moves off the grid stay put rather than jumping columns
		return clamp(i, 0, n-1)
	}
	return clamp(next, 0, n-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
