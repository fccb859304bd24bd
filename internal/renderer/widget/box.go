package widget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/fuzzyselect/internal/renderer"
	"github.com/dshills/fuzzyselect/internal/renderer/core"
)

// ErrUnknownBorder is returned by ParseBorderStyle for an unrecognized name.
var ErrUnknownBorder = errors.New("unknown border style")

// BorderStyle selects the characters a Box frame is drawn with.
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderThick
	// BorderHidden takes up the border's space but draws blanks.
	BorderHidden
)

type borderRunes struct {
	topLeft, topRight, bottomLeft, bottomRight rune
	horizontal, vertical                       rune
}

var borders = map[BorderStyle]borderRunes{
	BorderSingle:  {'┌', '┐', '└', '┘', '─', '│'},
	BorderDouble:  {'╔', '╗', '╚', '╝', '═', '║'},
	BorderRounded: {'╭', '╮', '╰', '╯', '─', '│'},
	BorderThick:   {'┏', '┓', '┗', '┛', '━', '┃'},
	BorderHidden:  {' ', ' ', ' ', ' ', ' ', ' '},
}

var borderNames = map[BorderStyle]string{
	BorderNone:    "none",
	BorderSingle:  "single",
	BorderDouble:  "double",
	BorderRounded: "rounded",
	BorderThick:   "thick",
	BorderHidden:  "hidden",
}

// String returns the configuration name of the border style.
func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return "unknown"
}

// ParseBorderStyle looks up a border style by name, case-insensitively.
func ParseBorderStyle(name string) (BorderStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range borderNames {
		if n == name {
			return b, nil
		}
	}
	return BorderNone, fmt.Errorf("%w: %q", ErrUnknownBorder, name)
}

// BoxStyle describes the decoration around a Box's content. It is
// immutable; each With method returns a modified copy, so the last value
// set wins.
type BoxStyle struct {
	margin      core.Spacing
	padding     core.Spacing
	border      BorderStyle
	borderStyle core.Style
	fill        core.Style
}

// NewBoxStyle returns a style with no margin, padding or border.
func NewBoxStyle() BoxStyle {
	return BoxStyle{}
}

// WithMargin sets the space outside the border.
func (b BoxStyle) WithMargin(s core.Spacing) BoxStyle {
	b.margin = s
	return b
}

// WithPadding sets the space between the border and the content.
func (b BoxStyle) WithPadding(s core.Spacing) BoxStyle {
	b.padding = s
	return b
}

// WithBorder sets the border characters.
func (b BoxStyle) WithBorder(border BorderStyle) BoxStyle {
	b.border = border
	return b
}

// WithBorderStyle sets the style the border is drawn in.
func (b BoxStyle) WithBorderStyle(style core.Style) BoxStyle {
	b.borderStyle = style
	return b
}

// WithFill sets the style of the area inside the margin.
func (b BoxStyle) WithFill(style core.Style) BoxStyle {
	b.fill = style
	return b
}

// Margin returns the margin.
func (b BoxStyle) Margin() core.Spacing { return b.margin }

// Padding returns the padding.
func (b BoxStyle) Padding() core.Spacing { return b.padding }

// Border returns the border style.
func (b BoxStyle) Border() BorderStyle { return b.border }

// ContentRect returns the part of area left for content.
func (b BoxStyle) ContentRect(area core.Rect) core.Rect {
	r := area.Inset(b.margin)
	if b.border != BorderNone {
		r = r.Inset(core.Uniform(1))
	}
	return r.Inset(b.padding)
}

// Box draws a border around a child component.
type Box struct {
	child Component
	style BoxStyle
}

// NewBox wraps child. A nil child draws an empty box.
func NewBox(child Component, style BoxStyle) *Box {
	return &Box{child: child, style: style}
}

// Style returns the box style.
func (b *Box) Style() BoxStyle {
	return b.style
}

func (b *Box) Render(s renderer.Surface) error {
	outer := s.Area().Inset(b.style.margin)
	if outer.IsEmpty() {
		return nil
	}
	renderer.FillRect(s, outer, core.NewCell(' ', b.style.fill))
	b.drawBorder(s, outer)

	if b.child == nil {
		return nil
	}
	return b.child.Render(s.Sub(b.style.ContentRect(s.Area())))
}

func (b *Box) drawBorder(s renderer.Surface, r core.Rect) {
	runes, ok := borders[b.style.border]
	if !ok || r.Width < 2 || r.Height < 2 {
		return
	}
	st := b.style.borderStyle
	right, bottom := r.Right()-1, r.Bottom()-1

	renderer.HLine(s, r.X+1, r.Y, r.Width-2, runes.horizontal, st)
	renderer.HLine(s, r.X+1, bottom, r.Width-2, runes.horizontal, st)
	renderer.VLine(s, r.X, r.Y+1, r.Height-2, runes.vertical, st)
	renderer.VLine(s, right, r.Y+1, r.Height-2, runes.vertical, st)

	s.SetCell(r.X, r.Y, core.NewCell(runes.topLeft, st))
	s.SetCell(right, r.Y, core.NewCell(runes.topRight, st))
	s.SetCell(r.X, bottom, core.NewCell(runes.bottomLeft, st))
	s.SetCell(right, bottom, core.NewCell(runes.bottomRight, st))
}
