package widget

import (
	"errors"
	"testing"

	"github.com/dshills/fuzzyselect/internal/input/fuzzy"
	"github.com/dshills/fuzzyselect/internal/renderer"
	"github.com/dshills/fuzzyselect/internal/renderer/core"
)

func render(t *testing.T, c Component, w, h int) *renderer.FrameBuffer {
	t.Helper()
	fb := renderer.NewFrameBuffer(w, h)
	if err := c.Render(fb); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	return fb
}

func TestTextBlockAlign(t *testing.T) {
	tests := []struct {
		align    Align
		expected string
	}{
		{AlignLeft, "ab    "},
		{AlignCenter, "  ab  "},
		{AlignRight, "    ab"},
	}

	for _, tt := range tests {
		fb := render(t, Text("ab", core.DefaultStyle()).Align(tt.align), 6, 1)
		if got := fb.String(); got != tt.expected {
			t.Errorf("align %d: expected %q, got %q", tt.align, tt.expected, got)
		}
	}
}

func TestTextBlockOverflow(t *testing.T) {
	fb := render(t, Text("abcdef", core.DefaultStyle()), 4, 1)
	if got := fb.String(); got != "abcd" {
		t.Errorf("clip: expected %q, got %q", "abcd", got)
	}

	fb = render(t, Text("abcdef", core.DefaultStyle()).Overflow(OverflowEllipsis), 4, 1)
	if got := fb.String(); got != "abc…" {
		t.Errorf("ellipsis: expected %q, got %q", "abc…", got)
	}

	fb = render(t, Text("abcd", core.DefaultStyle()).Overflow(OverflowEllipsis), 4, 1)
	if got := fb.String(); got != "abcd" {
		t.Errorf("exact fit: expected %q, got %q", "abcd", got)
	}
}

func TestTextBlockSpans(t *testing.T) {
	bold := core.DefaultStyle().Bold()
	tb := NewTextBlock(Span{Text: "a"}).Append(Span{Text: "b", Style: bold})
	if tb.Len() != 2 {
		t.Errorf("expected length 2, got %d", tb.Len())
	}
	fb := render(t, tb, 3, 1)
	if fb.Cell(0, 0).Style != core.DefaultStyle() {
		t.Errorf("expected default style at 0, got %+v", fb.Cell(0, 0).Style)
	}
	if fb.Cell(1, 0).Style != bold {
		t.Errorf("expected bold at 1, got %+v", fb.Cell(1, 0).Style)
	}
}

func TestTextBlockControlRunes(t *testing.T) {
	fb := render(t, Text("a\tb", core.DefaultStyle()), 3, 1)
	if got := fb.String(); got != "a?b" {
		t.Errorf("expected %q, got %q", "a?b", got)
	}
}

func TestHighlightSpans(t *testing.T) {
	base := core.NewStyle(core.ColorWhite)
	hl := core.NewStyle(core.ColorYellow).Bold()
	patched := base.Patch(hl)

	tests := []struct {
		text      string
		positions []int
		expected  []Span
	}{
		{"apple", nil, []Span{{"apple", base}}},
		{"apple", []int{0, 1}, []Span{{"ap", patched}, {"ple", base}}},
		{"grape", []int{2, 3}, []Span{{"gr", base}, {"ap", patched}, {"e", base}}},
		{"abc", []int{0, 2}, []Span{{"a", patched}, {"b", base}, {"c", patched}}},
		{"ab", []int{1, 7}, []Span{{"a", base}, {"b", patched}}},
	}

	for _, tt := range tests {
		got := HighlightSpans(tt.text, tt.positions, base, hl)
		if len(got) != len(tt.expected) {
			t.Errorf("%q %v: expected %d spans, got %d (%+v)", tt.text, tt.positions, len(tt.expected), len(got), got)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("%q %v span %d: expected %+v, got %+v", tt.text, tt.positions, i, tt.expected[i], got[i])
			}
		}
	}
}

func TestParseBorderStyle(t *testing.T) {
	for b := BorderNone; b <= BorderHidden; b++ {
		got, err := ParseBorderStyle(b.String())
		if err != nil || got != b {
			t.Errorf("ParseBorderStyle(%q) = %v, %v", b.String(), got, err)
		}
	}
	if got, err := ParseBorderStyle(" Rounded "); err != nil || got != BorderRounded {
		t.Errorf("expected rounded, got %v, %v", got, err)
	}
	if _, err := ParseBorderStyle("wavy"); !errors.Is(err, ErrUnknownBorder) {
		t.Errorf("expected ErrUnknownBorder, got %v", err)
	}
}

func TestBoxStyleImmutable(t *testing.T) {
	base := NewBoxStyle()
	double := base.WithBorder(BorderDouble)
	if base.Border() != BorderNone {
		t.Errorf("base style modified: %v", base.Border())
	}
	if double.Border() != BorderDouble {
		t.Errorf("expected double, got %v", double.Border())
	}
	if got := base.WithBorder(BorderSingle).WithBorder(BorderThick).Border(); got != BorderThick {
		t.Errorf("expected newest value to win, got %v", got)
	}
}

func TestBoxContentRect(t *testing.T) {
	style := NewBoxStyle().
		WithMargin(core.Uniform(1)).
		WithBorder(BorderSingle).
		WithPadding(core.Horizontal(1))
	got := style.ContentRect(core.NewRect(0, 0, 10, 5))
	want := core.NewRect(3, 2, 4, 1)
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	got = NewBoxStyle().ContentRect(core.NewRect(0, 0, 10, 5))
	if got != core.NewRect(0, 0, 10, 5) {
		t.Errorf("plain box should not shrink content, got %+v", got)
	}
}

func TestBoxRender(t *testing.T) {
	fb := render(t, NewBox(nil, NewBoxStyle().WithBorder(BorderSingle)), 5, 3)
	want := "┌───┐\n│   │\n└───┘"
	if got := fb.String(); got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}

	fb = render(t, NewBox(Text("hi", core.DefaultStyle()), NewBoxStyle().WithBorder(BorderRounded)), 6, 3)
	want = "╭────╮\n│hi  │\n╰────╯"
	if got := fb.String(); got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestBoxClipsChild(t *testing.T) {
	fb := render(t, NewBox(Text("overflowing", core.DefaultStyle()), NewBoxStyle().WithBorder(BorderDouble)), 5, 3)
	want := "╔═══╗\n║ove║\n╚═══╝"
	if got := fb.String(); got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestBoxTooSmallForBorder(t *testing.T) {
	fb := render(t, NewBox(Text("x", core.DefaultStyle()), NewBoxStyle().WithBorder(BorderSingle)), 4, 1)
	if got := fb.String(); got != "    " {
		t.Errorf("expected blank row, got %q", got)
	}
}

func TestBoxBorderStyle(t *testing.T) {
	gray := core.NewStyle(core.ColorBrightBlack)
	fb := render(t, NewBox(nil, NewBoxStyle().WithBorder(BorderThick).WithBorderStyle(gray)), 3, 3)
	if fb.Cell(0, 0).Style != gray || fb.Cell(2, 2).Style != gray {
		t.Error("expected border drawn in border style")
	}
	if fb.Cell(1, 1).Style != core.DefaultStyle() {
		t.Error("expected interior in fill style")
	}
}

func results(texts ...string) []fuzzy.Result {
	rs := make([]fuzzy.Result, len(texts))
	for i, text := range texts {
		rs[i] = fuzzy.Result{Item: fuzzy.Item{Text: text}}
	}
	return rs
}

func TestListRender(t *testing.T) {
	fb := render(t, NewList(results("apple", "grape", "snapshot"), 0), 10, 2)
	want := "> apple   \n  grape   "
	if got := fb.String(); got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
	if !fb.Cell(5, 0).Style.Attributes.Has(core.AttrReverse) {
		t.Error("cursor row should be reverse video across its width")
	}
	if fb.Cell(5, 1).Style.Attributes.Has(core.AttrReverse) {
		t.Error("other rows should not be reverse video")
	}
}

func TestListScrollsToCursor(t *testing.T) {
	l := NewList(results("apple", "grape", "snapshot"), 2)
	if l.FirstVisible(2) != 1 {
		t.Errorf("expected first visible 1, got %d", l.FirstVisible(2))
	}
	fb := render(t, l, 10, 2)
	want := "  grape   \n> snapshot"
	if got := fb.String(); got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestListFirstVisible(t *testing.T) {
	tests := []struct {
		cursor, height, expected int
	}{
		{0, 5, 0},
		{4, 5, 0},
		{5, 5, 1},
		{9, 3, 7},
		{-1, 3, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		l := NewList(nil, tt.cursor)
		if got := l.FirstVisible(tt.height); got != tt.expected {
			t.Errorf("cursor %d height %d: expected %d, got %d", tt.cursor, tt.height, tt.expected, got)
		}
	}
}

func TestListHighlight(t *testing.T) {
	rs := []fuzzy.Result{
		{Item: fuzzy.Item{Text: "apple"}, Positions: []int{0, 1}},
		{Item: fuzzy.Item{Text: "grape"}, Positions: []int{2, 3}},
	}
	hl := core.NewStyle(core.ColorYellow)
	fb := render(t, NewList(rs, 0).HighlightStyle(hl), 8, 2)

	// Row 1 is unselected: "  grape", matched "ap" at columns 4 and 5.
	if fb.Cell(4, 1).Style.Foreground != core.ColorYellow {
		t.Errorf("expected highlighted 'a', got %+v", fb.Cell(4, 1))
	}
	if fb.Cell(3, 1).Style.Foreground.IsSet() {
		t.Errorf("expected plain 'r', got %+v", fb.Cell(3, 1))
	}

	// On the cursor row the highlight is laid over the selected style.
	sel := fb.Cell(2, 0).Style
	if sel.Foreground != core.ColorYellow {
		t.Errorf("expected highlight foreground on cursor row, got %+v", sel)
	}
}

func TestListEllipsis(t *testing.T) {
	fb := render(t, NewList(results("snapshot"), 0), 6, 1)
	if got := fb.String(); got != "> sna…" {
		t.Errorf("expected %q, got %q", "> sna…", got)
	}
}

func TestListCustomMarker(t *testing.T) {
	fb := render(t, NewList(results("a", "b"), 1).Marker("* "), 4, 2)
	want := "  a \n* b "
	if got := fb.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestListEmpty(t *testing.T) {
	fb := render(t, NewList(nil, -1), 4, 2)
	if got := fb.String(); got != "    \n    " {
		t.Errorf("expected blank surface, got %q", got)
	}
}

func TestInputRender(t *testing.T) {
	prompt := core.NewStyle(core.ColorCyan)
	fb := render(t, NewInput("> ", "ap").PromptStyle(prompt), 8, 1)
	if got := fb.String(); got != "> ap    " {
		t.Errorf("expected %q, got %q", "> ap    ", got)
	}
	if fb.Cell(0, 0).Style != prompt {
		t.Errorf("expected prompt style, got %+v", fb.Cell(0, 0).Style)
	}
	if !fb.Cell(4, 0).Style.Attributes.Has(core.AttrReverse) {
		t.Error("expected cursor block after the query")
	}
	if fb.Cell(5, 0).Style.Attributes.Has(core.AttrReverse) {
		t.Error("cursor block should be a single cell")
	}
}

func TestStatusBar(t *testing.T) {
	tests := []struct {
		name     string
		cursor   int
		matches  int
		total    int
		width    int
		expected string
	}{
		{"position and total", 0, 3, 5, 12, "[1/3]      5"},
		{"no matches", -1, 0, 5, 8, "[0/0]  5"},
		{"too narrow for total", 0, 3, 5, 6, "[1/3] "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewStatusBar().SetPosition(tt.cursor, tt.matches).SetTotal(tt.total)
			fb := render(t, bar, tt.width, 1)
			if got := fb.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
