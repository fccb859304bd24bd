package config

import (
	"sort"
	"strings"

	"github.com/dshills/fuzzyselect/internal/input/key"
	"github.com/dshills/fuzzyselect/internal/renderer/style"
	"github.com/dshills/fuzzyselect/internal/renderer/widget"
	"github.com/dshills/fuzzyselect/internal/source"
)

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Validate checks every setting and reports all failures at once as
// ValidationErrors.
func (c *Config) Validate() error {
	var errs ValidationErrors
	fail := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if _, err := widget.ParseBorderStyle(c.UI.Border); err != nil {
		fail("ui.border", "unknown border style", c.UI.Border)
	}
	if c.UI.Margin < 0 {
		fail("ui.margin", "must not be negative", c.UI.Margin)
	}

	roles := make([]string, 0, len(c.Theme))
	for name := range c.Theme {
		roles = append(roles, name)
	}
	sort.Strings(roles)
	for _, name := range roles {
		path := "theme." + name
		if _, err := style.ParseRole(name); err != nil {
			fail(path, "unknown theme role", nil)
			continue
		}
		if _, err := c.Theme[name].spec().Style(); err != nil {
			fail(path, err.Error(), nil)
		}
	}

	for _, b := range []struct {
		path  string
		specs []string
	}{
		{"keys.quit", c.Keys.Quit},
		{"keys.select", c.Keys.Select},
		{"keys.up", c.Keys.Up},
		{"keys.down", c.Keys.Down},
	} {
		if len(b.specs) == 0 {
			fail(b.path, "at least one key is required", nil)
			continue
		}
		if _, err := key.ParseBinding(b.specs...); err != nil {
			fail(b.path, err.Error(), nil)
		}
	}

	if _, err := source.ParseFormat(c.Input.Format); err != nil {
		fail("input.format", "unknown input format", c.Input.Format)
	}
	if !logLevels[strings.ToLower(c.Logging.Level)] {
		fail("logging.level", "unknown log level", c.Logging.Level)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s StyleConfig) spec() style.Spec {
	return style.Spec{
		Fg:            s.Fg,
		Bg:            s.Bg,
		Bold:          s.Bold,
		Dim:           s.Dim,
		Italic:        s.Italic,
		Underline:     s.Underline,
		Reverse:       s.Reverse,
		Strikethrough: s.Strikethrough,
	}
}

// ThemeSpecs returns the theme entries keyed by role. Unknown roles are
// skipped; Validate reports them.
func (c *Config) ThemeSpecs() map[style.Role]style.Spec {
	specs := make(map[style.Role]style.Spec, len(c.Theme))
	for name, sc := range c.Theme {
		if role, err := style.ParseRole(name); err == nil {
			specs[role] = sc.spec()
		}
	}
	return specs
}

// BorderStyle returns the parsed border style, falling back to none for
// an invalid name.
func (c *Config) BorderStyle() widget.BorderStyle {
	b, err := widget.ParseBorderStyle(c.UI.Border)
	if err != nil {
		return widget.BorderNone
	}
	return b
}
