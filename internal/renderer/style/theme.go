// Package style provides the picker's theme: a named style per visual role,
// built from configuration and combined in layers when rendering.
package style

import (
	"fmt"

	"github.com/dshills/fuzzyselect/internal/renderer/core"
)

// Role identifies a styled element of the picker.
type Role uint8

const (
	// RoleBase is the style every other role is laid over.
	RoleBase Role = iota

	// RolePrompt is the prompt in front of the query.
	RolePrompt

	// RoleQuery is the query text.
	RoleQuery

	// RoleHighlight marks matched characters in the list.
	RoleHighlight

	// RoleSelected is the row under the cursor.
	RoleSelected

	// RoleMarker is the cursor marker in front of the selected row.
	RoleMarker

	// RoleStatus is the status line.
	RoleStatus

	// RoleBorder is the frame around the picker.
	RoleBorder

	// RoleCount is the number of roles.
	RoleCount
)

var roleNames = [RoleCount]string{
	RoleBase:      "base",
	RolePrompt:    "prompt",
	RoleQuery:     "query",
	RoleHighlight: "highlight",
	RoleSelected:  "selected",
	RoleMarker:    "marker",
	RoleStatus:    "status",
	RoleBorder:    "border",
}

// String returns the configuration name of the role.
func (r Role) String() string {
	if r >= RoleCount {
		return "unknown"
	}
	return roleNames[r]
}

// ParseRole looks up a role by its configuration name.
func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return Role(r), nil
		}
	}
	return RoleCount, fmt.Errorf("unknown theme role %q", name)
}

// Spec is the textual form of a style as it appears in configuration.
type Spec struct {
	Fg            string
	Bg            string
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Reverse       bool
	Strikethrough bool
}

// Style parses the colors of the spec. The attribute set is only marked as
// specified when at least one attribute is enabled, so a spec with colors
// alone keeps the attributes of whatever it is laid over.
func (s Spec) Style() (core.Style, error) {
	var st core.Style
	fg, err := core.ParseColor(s.Fg)
	if err != nil {
		return st, fmt.Errorf("foreground: %w", err)
	}
	bg, err := core.ParseColor(s.Bg)
	if err != nil {
		return st, fmt.Errorf("background: %w", err)
	}
	st = st.WithForeground(fg).WithBackground(bg)

	var attrs core.Attribute
	for _, a := range []struct {
		on   bool
		attr core.Attribute
	}{
		{s.Bold, core.AttrBold},
		{s.Dim, core.AttrDim},
		{s.Italic, core.AttrItalic},
		{s.Underline, core.AttrUnderline},
		{s.Reverse, core.AttrReverse},
		{s.Strikethrough, core.AttrStrikethrough},
	} {
		if a.on {
			attrs = attrs.With(a.attr)
		}
	}
	if attrs != 0 {
		st = st.WithAttributes(attrs)
	}
	return st, nil
}

// Theme holds one style per role.
type Theme struct {
	styles [RoleCount]core.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() *Theme {
	t := &Theme{}
	t.Set(RolePrompt, core.NewStyle(core.ColorCyan).Bold())
	t.Set(RoleHighlight, core.NewStyle(core.RGB(0xff, 0xaf, 0x00)).Bold())
	t.Set(RoleSelected, core.DefaultStyle().Reverse())
	t.Set(RoleStatus, core.NewStyle(core.ColorBrightBlack))
	t.Set(RoleBorder, core.NewStyle(core.ColorBrightBlack))
	return t
}

// NewTheme lays the given specs over the default theme. Roles absent from
// specs keep their default style.
func NewTheme(specs map[Role]Spec) (*Theme, error) {
	t := DefaultTheme()
	for role, spec := range specs {
		if role >= RoleCount {
			return nil, fmt.Errorf("theme: invalid role %d", role)
		}
		st, err := spec.Style()
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", role, err)
		}
		t.Set(role, st)
	}
	return t, nil
}

// Set replaces the style of a role.
func (t *Theme) Set(role Role, st core.Style) {
	if role < RoleCount {
		t.styles[role] = st
	}
}

// Get returns the style of a role laid over the base style.
func (t *Theme) Get(role Role) core.Style {
	if role >= RoleCount {
		return t.styles[RoleBase]
	}
	return overlay(t.styles[RoleBase], t.styles[role])
}

// Resolve combines roles in order, each laid over the previous: colors are
// replaced when set and attributes accumulate. Resolve(RoleSelected,
// RoleHighlight) is a matched character on the cursor row.
func (t *Theme) Resolve(roles ...Role) core.Style {
	result := t.styles[RoleBase]
	for _, role := range roles {
		if role < RoleCount {
			result = overlay(result, t.styles[role])
		}
	}
	return result
}

func overlay(base, over core.Style) core.Style {
	result := base
	if over.Foreground.IsSet() {
		result = result.WithForeground(over.Foreground)
	}
	if over.Background.IsSet() {
		result = result.WithBackground(over.Background)
	}
	if over.HasAttributes() {
		result = result.WithAttributes(base.Attributes | over.Attributes)
	}
	return result
}
