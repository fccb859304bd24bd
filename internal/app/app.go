// Package app wires configuration, item input, the terminal and the
// picker session into the fuzzyselect command.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/dshills/fuzzyselect/internal/config"
	"github.com/dshills/fuzzyselect/internal/input/fuzzy"
	"github.com/dshills/fuzzyselect/internal/renderer"
	"github.com/dshills/fuzzyselect/internal/renderer/backend"
	"github.com/dshills/fuzzyselect/internal/renderer/style"
	"github.com/dshills/fuzzyselect/internal/renderer/widget"
	"github.com/dshills/fuzzyselect/internal/selector"
	"github.com/dshills/fuzzyselect/internal/source"
)

// Options configures the application. Zero values leave the configured
// setting unchanged.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Format overrides input.format.
	Format string

	// Properties overrides input.properties.
	Properties []string

	// Prompt overrides ui.prompt.
	Prompt string

	// Border overrides ui.border.
	Border string

	// Margin overrides ui.margin when non-nil.
	Margin *int

	// NoAltScreen draws the picker inline instead of on the alternate
	// screen.
	NoAltScreen bool

	// Filter runs without a terminal: matches for FilterQuery are printed
	// one per line.
	Filter      bool
	FilterQuery string

	// Limit caps the number of filter results. Zero means no limit.
	Limit int

	// LogFile overrides logging.file.
	LogFile string

	// LogLevel overrides logging.level.
	LogLevel string
}

// Application runs one picker invocation.
type Application struct {
	opts   Options
	config *config.Config
	logger *Logger

	stdin  io.Reader
	stdout io.Writer

	openBackend func() (backend.Backend, error)
}

// New loads and validates the configuration, applies opts over it and
// opens the log.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(config.LoadOptions{Path: opts.ConfigPath})
	if err != nil {
		return nil, NewOperationError("load config", opts.ConfigPath, err)
	}
	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, NewOperationError("load config", opts.ConfigPath, err)
	}

	logger, err := OpenLogger(cfg.Logging.File, ParseLogLevel(cfg.Logging.Level))
	if err != nil {
		return nil, NewOperationError("open log", cfg.Logging.File, err)
	}

	return &Application{
		opts:        opts,
		config:      cfg,
		logger:      logger,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		openBackend: openTerminal,
	}, nil
}

func openTerminal() (backend.Backend, error) {
	return backend.NewTerminal()
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Format != "" {
		cfg.Input.Format = opts.Format
	}
	if len(opts.Properties) > 0 {
		cfg.Input.Properties = opts.Properties
	}
	if opts.Prompt != "" {
		cfg.UI.Prompt = opts.Prompt
	}
	if opts.Border != "" {
		cfg.UI.Border = opts.Border
	}
	if opts.Margin != nil {
		cfg.UI.Margin = *opts.Margin
	}
	if opts.NoAltScreen {
		cfg.UI.AltScreen = false
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// SetIO replaces stdin and stdout.
func (app *Application) SetIO(stdin io.Reader, stdout io.Writer) {
	app.stdin = stdin
	app.stdout = stdout
}

// SetBackend makes the interactive picker use b instead of the
// controlling terminal.
func (app *Application) SetBackend(b backend.Backend) {
	app.openBackend = func() (backend.Backend, error) { return b, nil }
}

// Shutdown releases the log file.
func (app *Application) Shutdown() error {
	return app.logger.Close()
}

// Run reads candidates from stdin, lets the user pick one and prints its
// data to stdout. It returns ErrCancelled when the user quits and
// ErrNoMatch when filter mode finds nothing.
func (app *Application) Run(ctx context.Context) error {
	log := app.logger.WithField("session", uuid.NewString())

	if f, ok := app.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ErrNoInput
	}

	items, err := app.readItems()
	if err != nil {
		return err
	}
	log.Info("items loaded", "count", len(items), "format", app.config.Input.Format)

	if app.opts.Filter {
		return app.filter(items, log)
	}
	return app.pick(ctx, items, log)
}

func (app *Application) readItems() ([]fuzzy.Item, error) {
	format, err := source.ParseFormat(app.config.Input.Format)
	if err != nil {
		return nil, NewOperationError("read items", "stdin", err)
	}
	items, err := source.Read(app.stdin, source.Options{
		Format:     format,
		Properties: app.config.Input.Properties,
	})
	if err != nil {
		return nil, NewOperationError("read items", "stdin", err).WithContext(string(format))
	}
	return items, nil
}

func (app *Application) filter(items []fuzzy.Item, log *Logger) error {
	results := fuzzy.NewMatcher(fuzzy.DefaultOptions()).Match(items, app.opts.FilterQuery)
	results = fuzzy.Limit(results, app.opts.Limit)
	log.Info("filter done", "query", app.opts.FilterQuery, "matches", len(results))
	if len(results) == 0 {
		return ErrNoMatch
	}
	for _, r := range results {
		if err := app.writeItem(r.Item); err != nil {
			return err
		}
	}
	return nil
}

func (app *Application) pick(ctx context.Context, items []fuzzy.Item, log *Logger) error {
	appearance, bindings, err := app.selectorSettings()
	if err != nil {
		return err
	}

	b, err := app.openBackend()
	if err != nil {
		return NewOperationError("open terminal", "", err)
	}

	opts := renderer.DefaultOptions()
	opts.AltScreen = app.config.UI.AltScreen

	session := selector.NewSession(b, items,
		selector.WithAppearance(appearance),
		selector.WithBindings(bindings),
		selector.WithRendererOptions(opts),
		selector.WithLogger(log.WithComponent("selector")),
	)
	item, err := session.Show(ctx)
	if err != nil {
		log.Info("session ended", "outcome", "cancelled", "error", err)
		return err
	}
	log.Info("session ended", "outcome", "selected", "item", item.Text)
	return app.writeItem(item)
}

func (app *Application) selectorSettings() (selector.Appearance, selector.Bindings, error) {
	cfg := app.config
	theme, err := style.NewTheme(cfg.ThemeSpecs())
	if err != nil {
		return selector.Appearance{}, selector.Bindings{}, NewOperationError("build theme", "", err)
	}
	bindings, err := selector.ParseBindings(cfg.Keys.Quit, cfg.Keys.Select, cfg.Keys.Up, cfg.Keys.Down)
	if err != nil {
		return selector.Appearance{}, selector.Bindings{}, NewOperationError("parse key bindings", "", err)
	}

	border, err := widget.ParseBorderStyle(cfg.UI.Border)
	if err != nil {
		return selector.Appearance{}, selector.Bindings{}, NewOperationError("parse border", cfg.UI.Border, err)
	}
	return selector.Appearance{
		Prompt: cfg.UI.Prompt,
		Marker: cfg.UI.Marker,
		Border: border,
		Margin: cfg.UI.Margin,
		Theme:  theme,
	}, bindings, nil
}

func (app *Application) writeItem(item fuzzy.Item) error {
	data := item.Data
	if data == nil {
		data = item.Text
	}
	if _, err := fmt.Fprintln(app.stdout, data); err != nil {
		return NewOperationError("write output", "stdout", err)
	}
	return nil
}
