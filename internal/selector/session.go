package selector

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/fuzzyselect/internal/input/fuzzy"
	"github.com/dshills/fuzzyselect/internal/input/key"
	"github.com/dshills/fuzzyselect/internal/renderer"
	"github.com/dshills/fuzzyselect/internal/renderer/backend"
)

// ErrCancelled is returned by Show when the user quits without selecting.
var ErrCancelled = errors.New("selection cancelled")

// KeySource delivers key presses.
type KeySource interface {
	ReadKey(ctx context.Context) (key.Event, error)
}

// Logger receives debug output from a session.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Session.
type Option func(*Session)

// WithBindings sets the key bindings.
func WithBindings(b Bindings) Option {
	return func(s *Session) { s.bindings = b }
}

// WithAppearance sets prompt, marker, border and theme.
func WithAppearance(a Appearance) Option {
	return func(s *Session) { s.appearance = a }
}

// WithRendererOptions sets terminal modes used while the picker is shown.
func WithRendererOptions(opts renderer.Options) Option {
	return func(s *Session) { s.rendererOpts = opts }
}

// WithMatcher replaces the default matcher.
func WithMatcher(m *fuzzy.Matcher) Option {
	return func(s *Session) { s.matcher = m }
}

// WithLogger sets the debug logger.
func WithLogger(l Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session shows the picker on a terminal backend.
type Session struct {
	backend      backend.Backend
	items        []fuzzy.Item
	matcher      *fuzzy.Matcher
	bindings     Bindings
	appearance   Appearance
	rendererOpts renderer.Options
	logger       Logger

	model    *Model
	renderer *renderer.Renderer
	state    State
}

// NewSession creates a session over the given items.
func NewSession(b backend.Backend, items []fuzzy.Item, opts ...Option) *Session {
	s := &Session{
		backend:      b,
		items:        items,
		bindings:     DefaultBindings(),
		appearance:   DefaultAppearance(),
		rendererOpts: renderer.DefaultOptions(),
		logger:       nopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.model = NewModel(items, s.matcher)
	return s
}

// State returns the current state. After Show returns it is the final
// state of the session.
func (s *Session) State() State {
	return s.state
}

// Show runs the picker until the user selects an item or quits, ctx is
// done, or terminal I/O fails. It returns ErrCancelled when the user quits.
// The terminal is restored on every exit path, including panics.
func (s *Session) Show(ctx context.Context) (item fuzzy.Item, err error) {
	if err := s.backend.Init(); err != nil {
		_ = s.backend.Shutdown()
		return item, fmt.Errorf("init terminal: %w", err)
	}
	w, h := s.backend.Size()
	s.renderer = renderer.New(s.backend, w, h, s.rendererOpts)

	defer func() {
		if r := recover(); r != nil {
			_ = s.restore()
			panic(r)
		}
		if rerr := s.restore(); rerr != nil && err == nil {
			item, err = fuzzy.Item{}, rerr
		}
	}()

	if err := s.renderer.Begin(); err != nil {
		return item, fmt.Errorf("begin frame: %w", err)
	}

	s.state = s.model.Init()
	s.logger.Debug("session started", "items", s.model.Len(), "width", w, "height", h)

	for !s.state.ShouldQuit {
		if err := ctx.Err(); err != nil {
			return item, err
		}
		if err := s.draw(); err != nil {
			return item, err
		}
		ev, err := s.ReadKey(ctx)
		if err != nil {
			return item, err
		}
		if msg := Translate(s.bindings, s.state, ev); msg != nil {
			s.state = s.model.Update(s.state, msg)
		}
	}

	selected, ok := s.state.Selected()
	if !ok {
		return item, ErrCancelled
	}
	return selected, nil
}

// ReadKey blocks until the backend delivers a key. Resize events in
// between are applied and the picker redrawn at the new size.
func (s *Session) ReadKey(ctx context.Context) (key.Event, error) {
	for {
		ev, err := s.backend.PollEvent(ctx)
		if err != nil {
			return key.Event{}, fmt.Errorf("read key: %w", err)
		}
		switch ev.Type {
		case backend.EventKey:
			return ev.Key, nil
		case backend.EventResize:
			if err := s.draw(); err != nil {
				return key.Event{}, err
			}
		}
	}
}

// draw renders the current state, first adapting to any size change.
func (s *Session) draw() error {
	if w, h := s.backend.Size(); w > 0 && h > 0 {
		if rw, rh := s.renderer.Size(); rw != w || rh != h {
			s.logger.Debug("terminal resized", "width", w, "height", h)
			s.renderer.Resize(w, h)
		}
	}

	view, err := View(s.state, s.model.Len(), s.appearance)
	if err != nil {
		return fmt.Errorf("build view: %w", err)
	}
	if err := view.Render(s.renderer.BackBuffer()); err != nil {
		return fmt.Errorf("compose frame: %w", err)
	}
	if err := s.renderer.Render(); err != nil {
		return err
	}

	st := s.renderer.Stats()
	s.logger.Debug("frame rendered", "frame", st.Frame, "cells", st.CellsChanged, "bytes", st.BytesWritten)
	return nil
}

func (s *Session) restore() error {
	return errors.Join(s.renderer.End(), s.backend.Shutdown())
}
