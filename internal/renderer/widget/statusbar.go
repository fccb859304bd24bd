package widget

import (
	"strconv"

	"github.com/dshills/fuzzyselect/internal/renderer"
	"github.com/dshills/fuzzyselect/internal/renderer/core"
)

// StatusBar renders the status line: the cursor position within the
// matches on the left and the total item count on the right.
type StatusBar struct {
	cursor  int
	matches int
	total   int
	style   core.Style
}

// NewStatusBar creates a status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{cursor: -1}
}

// SetPosition updates the cursor (0-based, -1 for none) and match count.
func (b *StatusBar) SetPosition(cursor, matches int) *StatusBar {
	b.cursor = cursor
	b.matches = matches
	return b
}

// SetTotal updates the number of items before filtering.
func (b *StatusBar) SetTotal(total int) *StatusBar {
	b.total = total
	return b
}

// SetStyle sets the style of the whole line.
func (b *StatusBar) SetStyle(s core.Style) *StatusBar {
	b.style = s
	return b
}

// Left returns the position text, e.g. "[3/10]".
func (b *StatusBar) Left() string {
	return "[" + strconv.Itoa(b.cursor+1) + "/" + strconv.Itoa(b.matches) + "]"
}

// Right returns the total count text.
func (b *StatusBar) Right() string {
	return strconv.Itoa(b.total)
}

func (b *StatusBar) Render(s renderer.Surface) error {
	width := s.Width()
	if width <= 0 || s.Height() <= 0 {
		return nil
	}
	if err := Text(b.Left(), b.style).Fill(b.style).Render(s); err != nil {
		return err
	}

	// The total is dropped rather than overlapping the position.
	left, right := len(b.Left()), b.Right()
	if left+1+len(right) <= width {
		renderer.DrawString(s, width-len(right), 0, right, b.style)
	}
	return nil
}
