package key

import (
	"unicode"
)

// Event is a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPrintable returns true if the event inserts text: a printable character
// with no Ctrl, Alt or Meta held. Shift is part of the character.
func (e Event) IsPrintable() bool {
	return e.IsRune() &&
		e.Modifiers&(ModCtrl|ModAlt|ModMeta) == 0 &&
		unicode.IsPrint(e.Rune)
}

// Matches reports whether e triggers the binding described by spec.
// Character comparison ignores Shift, and ignores case when Ctrl is held,
// since terminals report Ctrl+P and Ctrl+p identically.
func (e Event) Matches(spec Event) bool {
	if e.Key != spec.Key {
		return false
	}
	if e.Key != KeyRune {
		return e.Modifiers == spec.Modifiers
	}
	if e.Modifiers.Without(ModShift) != spec.Modifiers.Without(ModShift) {
		return false
	}
	if spec.Modifiers.HasCtrl() {
		return unicode.ToLower(e.Rune) == unicode.ToLower(spec.Rune)
	}
	return e.Rune == spec.Rune
}

// String returns the canonical specification form, e.g. "Ctrl+p" or "Enter".
func (e Event) String() string {
	var name string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "Space"
	case e.Key == KeyRune:
		name = string(e.Rune)
	default:
		name = e.Key.String()
	}
	mods := e.Modifiers
	if e.Key == KeyRune {
		mods = mods.Without(ModShift)
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}
