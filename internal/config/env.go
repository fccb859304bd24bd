package config

import (
	"fmt"
	"strconv"

	"github.com/dshills/fuzzyselect/internal/config/loader"
)

// envShortcuts name common settings without their section.
var envShortcuts = map[string]string{
	EnvPrefix + "PROMPT":     "ui.prompt",
	EnvPrefix + "BORDER":     "ui.border",
	EnvPrefix + "ALT_SCREEN": "ui.alt_screen",
	EnvPrefix + "LOG_LEVEL":  "logging.level",
	EnvPrefix + "LOG_FILE":   "logging.file",
}

// NewEnvLoader returns the environment loader for EnvPrefix.
func NewEnvLoader() *loader.EnvLoader {
	return loader.NewEnvLoader(EnvPrefix, envShortcuts)
}

type envSetter func(c *Config, value string) error

var envSetters = map[string]envSetter{
	"ui.prompt":     func(c *Config, v string) error { c.UI.Prompt = v; return nil },
	"ui.marker":     func(c *Config, v string) error { c.UI.Marker = v; return nil },
	"ui.border":     func(c *Config, v string) error { c.UI.Border = v; return nil },
	"ui.margin":     intSetter(func(c *Config) *int { return &c.UI.Margin }),
	"ui.alt_screen": boolSetter(func(c *Config) *bool { return &c.UI.AltScreen }),
	"input.format":  func(c *Config, v string) error { c.Input.Format = v; return nil },
	"logging.level": func(c *Config, v string) error { c.Logging.Level = v; return nil },
	"logging.file":  func(c *Config, v string) error { c.Logging.File = v; return nil },
}

func intSetter(field func(*Config) *int) envSetter {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func boolSetter(field func(*Config) *bool) envSetter {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

// ApplyEnv applies environment settings. Variables with the prefix that
// name no known setting are ignored; a malformed value is an error.
func (c *Config) ApplyEnv(settings []loader.Setting) error {
	for _, s := range settings {
		set, ok := envSetters[s.Path]
		if !ok {
			continue
		}
		if err := set(c, s.Value); err != nil {
			return &ValidationError{Path: s.Path, Message: fmt.Sprintf("invalid value in %s: %v", s.Env, err), Value: s.Value}
		}
	}
	return nil
}
