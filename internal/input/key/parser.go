package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "?", "1"
//   - Named keys: "Enter", "Esc", "Tab", "Backspace", "Space", "Up"
//   - With modifiers: "Ctrl+C", "Alt+Backspace", "Ctrl+Shift+P"
//   - Vim-style: "<C-p>", "<A-b>", "<CR>", "<Esc>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseParts(strings.Split(spec[1:len(spec)-1], "-"), spec)
	}
	// A bare "+" is a character, not a separator.
	if spec != "+" && strings.Contains(spec, "+") {
		return parseParts(strings.Split(spec, "+"), spec)
	}
	return parseKey(spec, ModNone)
}

func parseParts(parts []string, spec string) (Event, error) {
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
		}
		mods = mods.With(mod)
	}
	return parseKey(parts[len(parts)-1], mods)
}

func parseKey(name string, mods Modifier) (Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Event{}, ErrInvalidSpec
	}
	switch strings.ToLower(name) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	}
	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(name)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
	}
	r := runes[0]
	if mods.HasCtrl() {
		r = unicode.ToLower(r)
	}
	return NewRuneEvent(r, mods), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// Binding is the set of key events that trigger one action.
type Binding []Event

// ParseBinding parses every spec, failing on the first invalid one.
func ParseBinding(specs ...string) (Binding, error) {
	b := make(Binding, 0, len(specs))
	for _, spec := range specs {
		ev, err := Parse(spec)
		if err != nil {
			return nil, err
		}
		b = append(b, ev)
	}
	return b, nil
}

// MustBinding is ParseBinding for literals.
func MustBinding(specs ...string) Binding {
	b, err := ParseBinding(specs...)
	if err != nil {
		panic(err)
	}
	return b
}

// Matches reports whether ev triggers any event in the binding.
func (b Binding) Matches(ev Event) bool {
	for _, spec := range b {
		if ev.Matches(spec) {
			return true
		}
	}
	return false
}

// String joins the canonical form of each event with ", ".
func (b Binding) String() string {
	parts := make([]string, len(b))
	for i, ev := range b {
		parts[i] = ev.String()
	}
	return strings.Join(parts, ", ")
}
