package layout

import (
	"github.com/dshills/fuzzyselect/internal/renderer"
	"github.com/dshills/fuzzyselect/internal/renderer/core"
)

// Axis selects the direction along which sections are laid out.
type Axis uint8

const (
	// Vertical stacks sections top to bottom.
	Vertical Axis = iota
	// Horizontal places sections left to right.
	Horizontal
)

// Rects solves sections along axis within area and returns one rect per
// section, in area's coordinate space.
func Rects(area core.Rect, axis Axis, sections []SizeSpec, gap int) []core.Rect {
	total := area.Width
	if axis == Vertical {
		total = area.Height
	}
	sizes := Solve(total, sections, gap)

	rects := make([]core.Rect, len(sizes))
	pos := 0
	for i, size := range sizes {
		if axis == Vertical {
			rects[i] = core.NewRect(area.X, area.Y+pos, area.Width, size)
		} else {
			rects[i] = core.NewRect(area.X+pos, area.Y, size, area.Height)
		}
		pos += size + max(0, gap)
	}
	return rects
}

// Split carves s into adjacent sub-surfaces along axis.
func Split(s renderer.Surface, axis Axis, sections []SizeSpec, gap int) []renderer.Surface {
	rects := Rects(s.Area(), axis, sections, gap)
	subs := make([]renderer.Surface, len(rects))
	for i, r := range rects {
		subs[i] = s.Sub(r)
	}
	return subs
}

// SplitVertical is Split along the vertical axis.
func SplitVertical(s renderer.Surface, gap int, sections ...SizeSpec) []renderer.Surface {
	return Split(s, Vertical, sections, gap)
}

// SplitHorizontal is Split along the horizontal axis.
func SplitHorizontal(s renderer.Surface, gap int, sections ...SizeSpec) []renderer.Surface {
	return Split(s, Horizontal, sections, gap)
}
