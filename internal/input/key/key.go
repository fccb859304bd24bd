package key

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key.
// Character keys use KeyRune with the character stored in Event.Rune.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is used for character keys.
	KeyRune
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyRune:      "Rune",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial returns true if this is a non-character key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsArrow returns true for the four cursor keys.
func (k Key) IsArrow() bool {
	return k >= KeyUp && k <= KeyRight
}

// KeyFromName looks up a special key by name or common alias.
// Matching is case-insensitive. Returns KeyNone if unknown.
func KeyFromName(name string) Key {
	switch strings.ToLower(name) {
	case "esc", "escape":
		return KeyEscape
	case "cr", "enter", "return":
		return KeyEnter
	case "tab":
		return KeyTab
	case "bs", "backspace":
		return KeyBackspace
	case "del", "delete":
		return KeyDelete
	case "home":
		return KeyHome
	case "end":
		return KeyEnd
	case "pageup", "pgup":
		return KeyPageUp
	case "pagedown", "pgdn":
		return KeyPageDown
	case "up":
		return KeyUp
	case "down":
		return KeyDown
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	}
	return KeyNone
}
