package core

// Rect is an axis-aligned rectangle in cell coordinates.
// Width and Height may be negative after an Inset; such a rect is empty.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Left returns the leftmost column.
func (r Rect) Left() int { return r.X }

// Top returns the topmost row.
func (r Rect) Top() int { return r.Y }

// Right returns one past the rightmost column.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns one past the bottom row.
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty returns true if the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if other lies entirely inside r.
// An empty rect is contained by any rect.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Inset shrinks the rect by the given spacing on each side.
func (r Rect) Inset(s Spacing) Rect {
	return Rect{
		X:      r.X + s.Left,
		Y:      r.Y + s.Top,
		Width:  r.Width - s.Left - s.Right,
		Height: r.Height - s.Top - s.Bottom,
	}
}

// Offset moves the rect's origin by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Translate maps child, given relative to r's origin, into r's parent
// coordinate space.
func (r Rect) Translate(child Rect) Rect {
	return child.Offset(r.X, r.Y)
}

// Intersect returns the overlap of two rects, or an empty rect.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{X: x1, Y: y1}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Spacing is a per-side amount used for margins and padding.
type Spacing struct {
	Left, Top, Right, Bottom int
}

// Uniform returns the same spacing on all four sides.
func Uniform(n int) Spacing {
	return Spacing{Left: n, Top: n, Right: n, Bottom: n}
}

// Horizontal returns spacing on the left and right only.
func Horizontal(n int) Spacing {
	return Spacing{Left: n, Right: n}
}

// Vertical returns spacing on the top and bottom only.
func Vertical(n int) Spacing {
	return Spacing{Top: n, Bottom: n}
}

// Symmetric returns h on the left and right and v on the top and bottom.
func Symmetric(h, v int) Spacing {
	return Spacing{Left: h, Top: v, Right: h, Bottom: v}
}

// Add returns the per-side sum.
func (s Spacing) Add(o Spacing) Spacing {
	return Spacing{
		Left:   s.Left + o.Left,
		Top:    s.Top + o.Top,
		Right:  s.Right + o.Right,
		Bottom: s.Bottom + o.Bottom,
	}
}

// Sub returns the per-side difference.
func (s Spacing) Sub(o Spacing) Spacing {
	return Spacing{
		Left:   s.Left - o.Left,
		Top:    s.Top - o.Top,
		Right:  s.Right - o.Right,
		Bottom: s.Bottom - o.Bottom,
	}
}

// HorizontalTotal returns Left+Right.
func (s Spacing) HorizontalTotal() int { return s.Left + s.Right }

// VerticalTotal returns Top+Bottom.
func (s Spacing) VerticalTotal() int { return s.Top + s.Bottom }
