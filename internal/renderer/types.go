package renderer

import "github.com/dshills/fuzzyselect/internal/renderer/core"

// Aliases for the core value types so that callers drawing on surfaces
// need only import this package.
type (
	Cell  = core.Cell
	Style = core.Style
	Color = core.Color
	Rect  = core.Rect
)

// EmptyCell returns a space with the default style.
func EmptyCell() Cell {
	return core.EmptyCell()
}
