package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/fuzzyselect/internal/input/key"
)

// convertKeyEvent converts a tcell key event. It reports false for keys
// the picker has no use for (function keys and the like).
func convertKeyEvent(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		return key.NewRuneEvent(ev.Rune(), mods), true
	}
	if sk, ok := convertKey(k); ok {
		return key.NewSpecialEvent(sk, mods), true
	}

	// Remaining C0 controls are Ctrl+letter.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

// convertKey maps tcell's named keys. Backspace, Tab, Enter and Escape
// share codes with Ctrl+H, Ctrl+I, Ctrl+M and Ctrl+[ and are matched here
// first.
func convertKey(k tcell.Key) (key.Key, bool) {
	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape, true
	case tcell.KeyEnter:
		return key.KeyEnter, true
	case tcell.KeyTab:
		return key.KeyTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace, true
	case tcell.KeyDelete:
		return key.KeyDelete, true
	case tcell.KeyHome:
		return key.KeyHome, true
	case tcell.KeyEnd:
		return key.KeyEnd, true
	case tcell.KeyPgUp:
		return key.KeyPageUp, true
	case tcell.KeyPgDn:
		return key.KeyPageDown, true
	case tcell.KeyUp:
		return key.KeyUp, true
	case tcell.KeyDown:
		return key.KeyDown, true
	case tcell.KeyLeft:
		return key.KeyLeft, true
	case tcell.KeyRight:
		return key.KeyRight, true
	}
	return key.KeyNone, false
}

// convertMod converts tcell modifier mask to key.Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}
