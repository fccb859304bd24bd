package core

// Cell is a single terminal cell: one rune and its style.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a space with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// NewCell creates a cell with the given rune and style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// WithStyle returns a copy of the cell with a new style.
func (c Cell) WithStyle(style Style) Cell {
	c.Style = style
	return c
}

// IsEmpty returns true for a space with the default style.
func (c Cell) IsEmpty() bool {
	return c == EmptyCell()
}
