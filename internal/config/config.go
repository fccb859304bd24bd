package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/fuzzyselect/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "FUZZYSELECT_"

// Config is the complete configuration.
type Config struct {
	UI      UIConfig               `toml:"ui"`
	Theme   map[string]StyleConfig `toml:"theme"`
	Keys    KeysConfig             `toml:"keys"`
	Input   InputConfig            `toml:"input"`
	Logging LoggingConfig          `toml:"logging"`
}

// UIConfig controls the picker's appearance.
type UIConfig struct {
	Prompt    string `toml:"prompt"`
	Marker    string `toml:"marker"`
	Border    string `toml:"border"`
	Margin    int    `toml:"margin"`
	AltScreen bool   `toml:"alt_screen"`
}

// StyleConfig is a theme entry. Colors are names ("red", "bright-blue"),
// palette indices ("208", "idx:208") or hex ("#ff8800").
type StyleConfig struct {
	Fg            string `toml:"fg"`
	Bg            string `toml:"bg"`
	Bold          bool   `toml:"bold"`
	Dim           bool   `toml:"dim"`
	Italic        bool   `toml:"italic"`
	Underline     bool   `toml:"underline"`
	Reverse       bool   `toml:"reverse"`
	Strikethrough bool   `toml:"strikethrough"`
}

// KeysConfig lists the key specifications bound to each action.
type KeysConfig struct {
	Quit   []string `toml:"quit"`
	Select []string `toml:"select"`
	Up     []string `toml:"up"`
	Down   []string `toml:"down"`
}

// InputConfig controls how stdin is turned into items.
type InputConfig struct {
	Format     string   `toml:"format"`
	Properties []string `toml:"properties"`
}

// LoggingConfig controls the debug log. Logging is off when File is empty.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Prompt:    "> ",
			Marker:    "> ",
			Border:    "rounded",
			AltScreen: true,
		},
		Theme: map[string]StyleConfig{},
		Keys: KeysConfig{
			Quit:   []string{"Esc", "Ctrl+C"},
			Select: []string{"Enter"},
			Up:     []string{"Up", "Ctrl+P"},
			Down:   []string{"Down", "Ctrl+N"},
		},
		Input: InputConfig{
			Format: "lines",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the user config file location, or "" when the
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fuzzyselect", "config.toml")
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Path is an explicit config file. It must exist. When empty the
	// default path is used if the file is present.
	Path string

	// FS reads config files. Defaults to the OS file system.
	FS loader.FileSystem

	// Env reads environment variables. Defaults to the process
	// environment with EnvPrefix.
	Env *loader.EnvLoader

	// SkipEnv disables the environment layer.
	SkipEnv bool
}

// Load builds the configuration from defaults, the config file and the
// environment. It does not validate; call Validate on the result.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}
	path, explicit := opts.Path, opts.Path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		err := loader.NewTOMLLoaderWithFS(fsys).LoadInto(path, cfg)
		switch {
		case err == nil:
		case errors.Is(err, loader.ErrNotFound) && !explicit:
		default:
			return nil, err
		}
	}

	if !opts.SkipEnv {
		env := opts.Env
		if env == nil {
			env = NewEnvLoader()
		}
		if err := cfg.ApplyEnv(env.Load()); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults.
func Parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	if err := loader.Decode(source, data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
