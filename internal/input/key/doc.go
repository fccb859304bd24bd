// Package key defines the key events the picker consumes and the textual
// binding specifications used in configuration.
//
// Backends translate raw terminal input into Event values. Configuration
// names keys with specifications that Parse understands:
//
//   - Simple keys: "a", "?", "Enter", "Esc", "Up"
//   - With modifiers: "Ctrl+C", "Alt+Backspace"
//   - Vim-style: "<C-p>", "<CR>", "<Esc>"
//
// A Binding is a set of parsed specifications; Binding.Matches reports
// whether an incoming event triggers it.
package key
