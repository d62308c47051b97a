package elemtui

// Rect is a rectangle in character cells. X/Y are the top-left corner,
// W/H the extent. All values are non-negative.
type Rect struct {
	X, Y, W, H int
}

// NewRect creates a rectangle from position and extent.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty returns true if the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the first x coordinate past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first y coordinate past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell at (x, y) lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rectangles. The result is a zero
// rectangle when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Inset shrinks the rectangle by the given padding on each side. The extent
// saturates at zero rather than going negative.
func (r Rect) Inset(p Padding) Rect {
	r.X += p.Left
	r.Y += p.Top
	r.W -= p.Left + p.Right
	r.H -= p.Top + p.Bottom
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}
