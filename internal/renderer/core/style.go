package core

import "strings"

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint8

// Text attribute flags.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << (iota - 1)
	AttrDim                     // faint text
	AttrItalic                  // italic text
	AttrUnderline               // underlined text
	AttrReverse                 // reverse video (swap fg/bg)
	AttrStrikethrough           // strikethrough text
)

var attrNames = []struct {
	attr Attribute
	name string
}{
	{AttrBold, "bold"},
	{AttrDim, "dim"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrReverse, "reverse"},
	{AttrStrikethrough, "strikethrough"},
}

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

func (a Attribute) String() string {
	if a == AttrNone {
		return "none"
	}
	var parts []string
	for _, n := range attrNames {
		if a.Has(n.attr) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Style is the visual style of a cell. The zero value is the terminal
// default. Styles are comparable with ==.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute

	// attrsSet distinguishes "no attributes" from "attributes not
	// specified" so that Patch can clear attributes explicitly.
	attrsSet bool
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{Foreground: fg}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithAttributes returns a new style whose attribute set is exactly attrs.
func (s Style) WithAttributes(attrs Attribute) Style {
	s.Attributes = attrs
	s.attrsSet = true
	return s
}

func (s Style) with(attr Attribute) Style {
	return s.WithAttributes(s.Attributes.With(attr))
}

// Bold returns a new style with bold added.
func (s Style) Bold() Style { return s.with(AttrBold) }

// Dim returns a new style with dim added.
func (s Style) Dim() Style { return s.with(AttrDim) }

// Italic returns a new style with italic added.
func (s Style) Italic() Style { return s.with(AttrItalic) }

// Underline returns a new style with underline added.
func (s Style) Underline() Style { return s.with(AttrUnderline) }

// Reverse returns a new style with reverse video added.
func (s Style) Reverse() Style { return s.with(AttrReverse) }

// Strikethrough returns a new style with strikethrough added.
func (s Style) Strikethrough() Style { return s.with(AttrStrikethrough) }

// HasAttributes reports whether the attribute set was specified.
func (s Style) HasAttributes() bool {
	return s.attrsSet
}

// Patch lays overlay over s. Each field takes overlay's value when overlay
// sets it, otherwise keeps s's value.
func (s Style) Patch(overlay Style) Style {
	if overlay.Foreground.IsSet() {
		s.Foreground = overlay.Foreground
	}
	if overlay.Background.IsSet() {
		s.Background = overlay.Background
	}
	if overlay.attrsSet {
		s.Attributes = overlay.Attributes
		s.attrsSet = true
	}
	return s
}

// IsDefault returns true if this is the default style.
func (s Style) IsDefault() bool {
	return s == Style{}
}
