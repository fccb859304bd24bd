package renderer

import "strings"

// Surface is a rectangular grid of cells that can be drawn on.
//
// Coordinates are relative to the surface's own origin. Reads outside
// [0,Width)×[0,Height) return EmptyCell and writes there are ignored.
type Surface interface {
	Width() int
	Height() int
	// Area returns Rect{0, 0, Width, Height}.
	Area() Rect
	Cell(x, y int) Cell
	SetCell(x, y int, c Cell)
	// Clear fills the surface with EmptyCell.
	Clear()
	Fill(c Cell)
	// Sub returns a view of the rectangle r, given in this surface's
	// coordinates. The view shares storage with the surface; writes through
	// it never reach cells outside r.
	Sub(r Rect) Surface
}

// FrameBuffer is a root surface that owns its cells.
type FrameBuffer struct {
	width, height int
	cells         [][]Cell
}

// NewFrameBuffer creates a buffer filled with EmptyCell.
// Negative dimensions are treated as zero.
func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{width: max(0, width), height: max(0, height)}
	fb.cells = make([][]Cell, fb.height)
	for y := range fb.cells {
		fb.cells[y] = make([]Cell, fb.width)
	}
	fb.Clear()
	return fb
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }
func (fb *FrameBuffer) Area() Rect  { return Rect{Width: fb.width, Height: fb.height} }

func (fb *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// Cell returns the cell at (x, y), or EmptyCell when out of range.
func (fb *FrameBuffer) Cell(x, y int) Cell {
	if !fb.inBounds(x, y) {
		return EmptyCell()
	}
	return fb.cells[y][x]
}

// SetCell sets the cell at (x, y). Out-of-range writes are ignored.
func (fb *FrameBuffer) SetCell(x, y int, c Cell) {
	if fb.inBounds(x, y) {
		fb.cells[y][x] = c
	}
}

func (fb *FrameBuffer) Clear() {
	fb.Fill(EmptyCell())
}

func (fb *FrameBuffer) Fill(c Cell) {
	for _, row := range fb.cells {
		for x := range row {
			row[x] = c
		}
	}
}

func (fb *FrameBuffer) Sub(r Rect) Surface {
	return newSubSurface(fb, r)
}

// CopyFrom overwrites fb with the overlapping region of src.
func (fb *FrameBuffer) CopyFrom(src *FrameBuffer) {
	h := min(fb.height, src.height)
	for y := 0; y < h; y++ {
		copy(fb.cells[y], src.cells[y])
	}
}

// String renders the runes of the buffer, one line per row. Styles are
// dropped. Intended for tests and debug logging.
func (fb *FrameBuffer) String() string {
	var sb strings.Builder
	for y, row := range fb.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// SubSurface is a view onto a rectangle of a parent surface.
// It never owns storage.
type SubSurface struct {
	parent Surface
	rect   Rect
}

// newSubSurface creates a view. A negative width or height collapses to
// zero, producing a view that ignores every write.
func newSubSurface(parent Surface, r Rect) *SubSurface {
	r.Width = max(0, r.Width)
	r.Height = max(0, r.Height)
	return &SubSurface{parent: parent, rect: r}
}

func (s *SubSurface) Width() int  { return s.rect.Width }
func (s *SubSurface) Height() int { return s.rect.Height }
func (s *SubSurface) Area() Rect  { return Rect{Width: s.rect.Width, Height: s.rect.Height} }

// Bounds returns the view's rectangle in parent coordinates.
func (s *SubSurface) Bounds() Rect { return s.rect }

func (s *SubSurface) inBounds(x, y int) bool {
	return x >= 0 && x < s.rect.Width && y >= 0 && y < s.rect.Height
}

func (s *SubSurface) Cell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return EmptyCell()
	}
	return s.parent.Cell(s.rect.X+x, s.rect.Y+y)
}

func (s *SubSurface) SetCell(x, y int, c Cell) {
	if s.inBounds(x, y) {
		s.parent.SetCell(s.rect.X+x, s.rect.Y+y, c)
	}
}

func (s *SubSurface) Clear() {
	s.Fill(EmptyCell())
}

func (s *SubSurface) Fill(c Cell) {
	for y := 0; y < s.rect.Height; y++ {
		for x := 0; x < s.rect.Width; x++ {
			s.SetCell(x, y, c)
		}
	}
}

func (s *SubSurface) Sub(r Rect) Surface {
	return newSubSurface(s, r)
}

// Component is anything that can draw itself onto a surface.
type Component interface {
	Render(s Surface) error
}

// ComponentFunc adapts a function to the Component interface.
type ComponentFunc func(s Surface) error

// Render calls f(s).
func (f ComponentFunc) Render(s Surface) error {
	return f(s)
}
