package renderer

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/dshills/fuzzyselect/internal/renderer/core"
)

// sgr returns the SGR sequence that sets style on top of a reset terminal.
// The default style yields the empty string.
func sgr(style Style) string {
	var s ansi.Style
	a := style.Attributes
	if a.Has(core.AttrBold) {
		s = s.Bold()
	}
	if a.Has(core.AttrDim) {
		s = s.Faint()
	}
	if a.Has(core.AttrItalic) {
		s = s.Italic(true)
	}
	if a.Has(core.AttrUnderline) {
		s = s.Underline(true)
	}
	if a.Has(core.AttrReverse) {
		s = s.Reverse(true)
	}
	if a.Has(core.AttrStrikethrough) {
		s = s.Strikethrough(true)
	}
	if c := ansiColor(style.Foreground); c != nil {
		s = s.ForegroundColor(c)
	}
	if c := ansiColor(style.Background); c != nil {
		s = s.BackgroundColor(c)
	}
	if len(s) == 0 {
		return ""
	}
	return s.String()
}

// ansiColor converts a core color, returning nil for unset.
func ansiColor(c Color) ansi.Color {
	switch c.Kind {
	case core.ColorBasic:
		return ansi.BasicColor(c.Index)
	case core.ColorIndexed:
		return ansi.IndexedColor(c.Index)
	case core.ColorRGB:
		return ansi.RGBColor{R: c.R, G: c.G, B: c.B}
	default:
		return nil
	}
}
