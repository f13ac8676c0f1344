// Package selection turns the pointer state of one frame into a drag
// rectangle and per-entry highlight states. Nothing here carries state from
// one frame to the next: callers pass in the pointer and get a fresh answer.
package selection

import "image"

// Rect is a selection rectangle in grid coordinates, with Min <= Max.
type Rect = image.Rectangle

// BeginOrUpdate returns the rectangle spanned by the press origin and the
// current pointer while the button is held. ok is false when the button is
// up or either point is unknown, meaning any drag highlight should clear.
func BeginOrUpdate(down bool, origin, current *image.Point) (Rect, bool) {
	if !down || origin == nil || current == nil {
		return Rect{}, false
	}
	// image.Rect swaps coordinates so either corner may come first
	return image.Rect(origin.X, origin.Y, current.X, current.Y), true
}

// Intersects reports whether a and b overlap on both axes. Boxes that only
// touch along an edge do not intersect, so a drag ending on a gutter line
// does not pick up the neighbouring cell.
func Intersects(a, b Rect) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// Highlight is how one entry should be drawn this frame.
type Highlight int

const (
	None Highlight = iota
	Hovered
	Selected
)

func (h Highlight) String() string {
	switch h {
	case Hovered:
		return "hovered"
	case Selected:
		return "selected"
	default:
		return "none"
	}
}

// Frame is the pointer input for one frame, in grid coordinates.
type Frame struct {
	Down    bool
	Origin  *image.Point // where the button went down
	Pointer *image.Point // nil when the pointer is outside the grid
	Cells   bool         // points name character cells; see CellRect
}

// Drag is the frame's active rectangle, if any.
func (f Frame) Drag() (Rect, bool) {
	r, ok := BeginOrUpdate(f.Down, f.Origin, f.Pointer)
	if ok && f.Cells {
		r = CellRect(r)
	}
	return r, ok
}

// Resolve computes the highlight of every box. An active drag governs all
// highlighting: entries intersecting it are Selected and hover is
// suppressed everywhere. Without a drag, the box under the pointer is
// Hovered.
func Resolve(f Frame, boxes []image.Rectangle) []Highlight {
	out := make([]Highlight, len(boxes))

	if rect, ok := f.Drag(); ok {
		for i, b := range boxes {
			if Intersects(rect, b) {
				out[i] = Selected
			}
		}
		return out
	}

	if f.Pointer == nil {
		return out
	}
	for i, b := range boxes {
		if f.Pointer.In(b) {
			out[i] = Hovered
			break
		}
	}
	return out
}

// SelectedIndexes returns the indices marked Selected.
func SelectedIndexes(hl []Highlight) []int {
	var idx []int
	for i, h := range hl {
		if h == Selected {
			idx = append(idx, i)
		}
	}
	return idx
}

// CellRect widens a rectangle between two character cells so that it covers
// both end cells. Terminal hosts use it because a cell at (x, y) spans
// [x, x+1) x [y, y+1).
func CellRect(r Rect) Rect {
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X+1, r.Max.Y+1)
}
