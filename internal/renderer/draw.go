package renderer

import (
	"unicode"

	"github.com/dshills/fuzzyselect/internal/renderer/core"
)

// DisplayRune maps runes that would move the terminal cursor on their own
// (tabs, newlines, escapes) to a visible placeholder.
func DisplayRune(r rune) rune {
	if unicode.IsControl(r) || r == unicode.ReplacementChar {
		return '?'
	}
	return r
}

// DrawString writes text left to right starting at (x, y) and returns the
// number of cells advanced. Cells falling outside the surface are clipped
// but still count toward the advance.
func DrawString(s Surface, x, y int, text string, style Style) int {
	n := 0
	for _, r := range text {
		s.SetCell(x+n, y, core.NewCell(DisplayRune(r), style))
		n++
	}
	return n
}

// DrawRunes is DrawString for a rune slice.
func DrawRunes(s Surface, x, y int, runes []rune, style Style) int {
	for i, r := range runes {
		s.SetCell(x+i, y, core.NewCell(DisplayRune(r), style))
	}
	return len(runes)
}

// FillRect fills r, given in s's coordinates, with c.
func FillRect(s Surface, r Rect, c Cell) {
	s.Sub(r).Fill(c)
}

// PatchStyle lays style over every cell of r, keeping the runes.
func PatchStyle(s Surface, r Rect, style Style) {
	r = r.Intersect(s.Area())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c := s.Cell(x, y)
			s.SetCell(x, y, c.WithStyle(c.Style.Patch(style)))
		}
	}
}

// HLine draws n copies of ch to the right of (x, y).
func HLine(s Surface, x, y, n int, ch rune, style Style) {
	for i := 0; i < n; i++ {
		s.SetCell(x+i, y, core.NewCell(ch, style))
	}
}

// VLine draws n copies of ch downward from (x, y).
func VLine(s Surface, x, y, n int, ch rune, style Style) {
	for i := 0; i < n; i++ {
		s.SetCell(x, y+i, core.NewCell(ch, style))
	}
}
