package selector

import (
	"fmt"

	"github.com/dshills/fuzzyselect/internal/input/key"
)

// Bindings maps keys to picker actions.
type Bindings struct {
	Quit   key.Binding
	Select key.Binding
	Up     key.Binding
	Down   key.Binding
}

// DefaultBindings returns the built-in key bindings.
func DefaultBindings() Bindings {
	return Bindings{
		Quit:   key.MustBinding("Esc", "Ctrl+C"),
		Select: key.MustBinding("Enter"),
		Up:     key.MustBinding("Up", "Ctrl+P"),
		Down:   key.MustBinding("Down", "Ctrl+N"),
	}
}

// ParseBindings builds bindings from key specifications. An empty list
// keeps the default for that action.
func ParseBindings(quit, sel, up, down []string) (Bindings, error) {
	b := DefaultBindings()
	for _, f := range []struct {
		name  string
		specs []string
		dst   *key.Binding
	}{
		{"quit", quit, &b.Quit},
		{"select", sel, &b.Select},
		{"up", up, &b.Up},
		{"down", down, &b.Down},
	} {
		if len(f.specs) == 0 {
			continue
		}
		parsed, err := key.ParseBinding(f.specs...)
		if err != nil {
			return Bindings{}, fmt.Errorf("%s binding: %w", f.name, err)
		}
		*f.dst = parsed
	}
	return b, nil
}

// Translate maps a key event to at most one message, checked in priority
// order: quit, select (only when there are matches), cursor movement,
// text entry, backspace. It returns nil for keys that do nothing.
func Translate(b Bindings, s State, ev key.Event) Message {
	switch {
	case b.Quit.Matches(ev):
		return Quit{}
	case b.Select.Matches(ev) && len(s.Matches) > 0:
		return Select{}
	case b.Up.Matches(ev):
		return CursorMove{Delta: -1}
	case b.Down.Matches(ev):
		return CursorMove{Delta: 1}
	case ev.IsPrintable():
		return QueryChange{Query: s.Query + string(ev.Rune)}
	case ev.Key == key.KeyBackspace && s.Query != "":
		runes := []rune(s.Query)
		return QueryChange{Query: string(runes[:len(runes)-1])}
	}
	return nil
}
