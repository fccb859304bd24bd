// Package config provides fuzzyselect's configuration.
//
// Settings come from three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← FUZZYSELECT_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← $XDG_CONFIG_HOME/fuzzyselect/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// Command-line flags are applied on top by the caller.
//
// # Basic Usage
//
//	cfg, err := config.Load(config.LoadOptions{})
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
