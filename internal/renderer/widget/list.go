package widget

import (
	"github.com/dshills/fuzzyselect/internal/input/fuzzy"
	"github.com/dshills/fuzzyselect/internal/renderer"
	"github.com/dshills/fuzzyselect/internal/renderer/core"
)

// List draws ranked match results, one per row, scrolled so that the
// cursor row is visible.
type List struct {
	results []fuzzy.Result
	cursor  int
	marker  string

	rowStyle       core.Style
	selectedStyle  core.Style
	highlightStyle core.Style
	markerStyle    core.Style
}

// NewList creates a list with a "> " marker and a reverse-video cursor row.
func NewList(results []fuzzy.Result, cursor int) *List {
	return &List{
		results:       results,
		cursor:        cursor,
		marker:        "> ",
		selectedStyle: core.DefaultStyle().Reverse(),
	}
}

// Marker sets the text drawn in front of the cursor row. Other rows are
// indented by the same width.
func (l *List) Marker(m string) *List {
	l.marker = m
	return l
}

// RowStyle sets the style of unselected rows.
func (l *List) RowStyle(s core.Style) *List {
	l.rowStyle = s
	return l
}

// SelectedStyle sets the style laid over the cursor row.
func (l *List) SelectedStyle(s core.Style) *List {
	l.selectedStyle = s
	return l
}

// HighlightStyle sets the style laid over matched characters.
func (l *List) HighlightStyle(s core.Style) *List {
	l.highlightStyle = s
	return l
}

// MarkerStyle sets the style laid over the marker.
func (l *List) MarkerStyle(s core.Style) *List {
	l.markerStyle = s
	return l
}

// FirstVisible returns the index of the top row for a viewport of the
// given height.
func (l *List) FirstVisible(height int) int {
	if height <= 0 || l.cursor < 0 {
		return 0
	}
	return max(0, l.cursor-height+1)
}

func (l *List) Render(s renderer.Surface) error {
	width, height := s.Width(), s.Height()
	if width <= 0 || height <= 0 {
		return nil
	}
	markerWidth := len([]rune(l.marker))
	first := l.FirstVisible(height)

	for y := 0; y < height && first+y < len(l.results); y++ {
		idx := first + y
		res := l.results[idx]
		row := s.Sub(core.NewRect(0, y, width, 1))

		style := l.rowStyle
		marker := ""
		if idx == l.cursor {
			style = style.Patch(l.selectedStyle)
			marker = l.marker
		}
		row.Fill(core.NewCell(' ', style))
		renderer.DrawString(row, 0, 0, marker, style.Patch(l.markerStyle))

		text := NewTextBlock(HighlightSpans(res.Item.Text, res.Positions, style, l.highlightStyle)...).
			Overflow(OverflowEllipsis).
			Fill(style)
		if err := text.Render(row.Sub(core.NewRect(markerWidth, 0, width-markerWidth, 1))); err != nil {
			return err
		}
	}
	return nil
}
