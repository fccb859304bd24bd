package selector

import (
	"github.com/dshills/fuzzyselect/internal/renderer"
	"github.com/dshills/fuzzyselect/internal/renderer/core"
	"github.com/dshills/fuzzyselect/internal/renderer/layout"
	"github.com/dshills/fuzzyselect/internal/renderer/style"
	"github.com/dshills/fuzzyselect/internal/renderer/widget"
)

// Appearance controls how the picker is drawn.
type Appearance struct {
	Prompt string
	Marker string
	Border widget.BorderStyle
	Margin int
	Theme  *style.Theme
}

// DefaultAppearance returns the built-in appearance.
func DefaultAppearance() Appearance {
	return Appearance{
		Prompt: "> ",
		Marker: "> ",
		Border: widget.BorderRounded,
		Theme:  style.DefaultTheme(),
	}
}

// screen is the picker layout: query line, match list and status line,
// separated by one blank row each.
var screen = layout.NewBlueprint(layout.Vertical,
	layout.Fixed(1),
	layout.Flexible(1),
	layout.Fixed(1),
).Gap(1)

// View builds the component tree for one frame of s. total is the number
// of items before filtering.
func View(s State, total int, a Appearance) (renderer.Component, error) {
	theme := a.Theme
	if theme == nil {
		theme = style.DefaultTheme()
	}

	input := widget.NewInput(a.Prompt, s.Query).
		PromptStyle(theme.Get(style.RolePrompt)).
		QueryStyle(theme.Get(style.RoleQuery))

	list := widget.NewList(s.Matches, s.Cursor).
		Marker(a.Marker).
		RowStyle(theme.Get(style.RoleBase)).
		SelectedStyle(theme.Get(style.RoleSelected)).
		HighlightStyle(theme.Get(style.RoleHighlight)).
		MarkerStyle(theme.Get(style.RoleMarker))

	status := widget.NewStatusBar().
		SetPosition(s.Cursor, len(s.Matches)).
		SetTotal(total).
		SetStyle(theme.Get(style.RoleStatus))

	frame, err := screen.Compose(input, list, status)
	if err != nil {
		return nil, err
	}

	box := widget.NewBoxStyle().
		WithMargin(core.Uniform(max(0, a.Margin))).
		WithBorder(a.Border).
		WithBorderStyle(theme.Get(style.RoleBorder)).
		WithFill(theme.Get(style.RoleBase))
	return widget.NewBox(frame, box), nil
}
