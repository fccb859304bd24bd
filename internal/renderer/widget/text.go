package widget

import (
	"github.com/dshills/fuzzyselect/internal/renderer"
	"github.com/dshills/fuzzyselect/internal/renderer/core"
)

// Align controls horizontal placement of text narrower than its surface.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Overflow controls what happens to text wider than its surface.
type Overflow uint8

const (
	// OverflowClip cuts the text at the edge.
	OverflowClip Overflow = iota

	// OverflowEllipsis replaces the last visible cell with an ellipsis.
	OverflowEllipsis
)

// Ellipsis is drawn in the last cell of truncated text.
const Ellipsis = '…'

// Span is a run of text in a single style.
type Span struct {
	Text  string
	Style core.Style
}

// TextBlock draws a line of spans on the first row of its surface.
type TextBlock struct {
	spans    []Span
	align    Align
	overflow Overflow
	fill     core.Style
}

// NewTextBlock creates a left-aligned, clipping text block.
func NewTextBlock(spans ...Span) *TextBlock {
	return &TextBlock{spans: spans}
}

// Text creates a text block holding a single span.
func Text(text string, style core.Style) *TextBlock {
	return NewTextBlock(Span{Text: text, Style: style})
}

// Append adds spans to the end of the line.
func (t *TextBlock) Append(spans ...Span) *TextBlock {
	t.spans = append(t.spans, spans...)
	return t
}

// Align sets the horizontal alignment.
func (t *TextBlock) Align(a Align) *TextBlock {
	t.align = a
	return t
}

// Overflow sets the overflow behavior.
func (t *TextBlock) Overflow(o Overflow) *TextBlock {
	t.overflow = o
	return t
}

// Fill sets the style of the row cells the text does not cover.
func (t *TextBlock) Fill(style core.Style) *TextBlock {
	t.fill = style
	return t
}

// Len returns the number of cells the text occupies.
func (t *TextBlock) Len() int {
	n := 0
	for _, sp := range t.spans {
		for range sp.Text {
			n++
		}
	}
	return n
}

func (t *TextBlock) Render(s renderer.Surface) error {
	width := s.Width()
	if width <= 0 || s.Height() <= 0 {
		return nil
	}
	renderer.HLine(s, 0, 0, width, ' ', t.fill)

	cells := t.cells()
	if len(cells) > width {
		cells = cells[:width]
		if t.overflow == OverflowEllipsis {
			cells[width-1].Rune = Ellipsis
		}
	}

	x := 0
	switch t.align {
	case AlignCenter:
		x = (width - len(cells)) / 2
	case AlignRight:
		x = width - len(cells)
	}
	for i, c := range cells {
		s.SetCell(x+i, 0, c)
	}
	return nil
}

func (t *TextBlock) cells() []core.Cell {
	cells := make([]core.Cell, 0, t.Len())
	for _, sp := range t.spans {
		for _, r := range sp.Text {
			cells = append(cells, core.NewCell(renderer.DisplayRune(r), sp.Style))
		}
	}
	return cells
}

// HighlightSpans splits text into alternating runs at the given ascending
// rune positions. Runs at a position use highlight laid over base; the rest
// use base. Positions outside the text are ignored.
func HighlightSpans(text string, positions []int, base, highlight core.Style) []Span {
	if len(positions) == 0 {
		return []Span{{Text: text, Style: base}}
	}
	hl := base.Patch(highlight)

	var spans []Span
	runes := []rune(text)
	start := 0
	inHighlight := false
	p := 0
	for i := range runes {
		for p < len(positions) && positions[p] < i {
			p++
		}
		match := p < len(positions) && positions[p] == i
		if i > start && match != inHighlight {
			spans = append(spans, Span{Text: string(runes[start:i]), Style: pick(inHighlight, hl, base)})
			start = i
		}
		inHighlight = match
	}
	if start < len(runes) {
		spans = append(spans, Span{Text: string(runes[start:]), Style: pick(inHighlight, hl, base)})
	}
	return spans
}

func pick(cond bool, a, b core.Style) core.Style {
	if cond {
		return a
	}
	return b
}
