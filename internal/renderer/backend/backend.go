// Package backend connects the renderer to a terminal: it puts the terminal
// in raw mode, reports its size, delivers key and resize events, and
// accepts the renderer's output bytes.
package backend

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"github.com/dshills/fuzzyselect/internal/input/key"
)

// ErrNoInput is returned by NullBackend.PollEvent when its script is
// exhausted.
var ErrNoInput = errors.New("no more input events")

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// Backend is a terminal the picker can draw on and read keys from.
type Backend interface {
	// Init acquires the terminal and switches it to raw mode.
	Init() error

	// Shutdown restores the terminal. It is safe to call after a failed
	// Init and more than once.
	Shutdown() error

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// PollEvent blocks until an event arrives, ctx is done or input fails.
	PollEvent(ctx context.Context) (Event, error)

	// Write sends raw output to the terminal.
	Write(p []byte) (int, error)
}

// NullBackend is an in-memory backend for tests. Events are scripted up
// front; output is captured.
type NullBackend struct {
	mu       sync.Mutex
	width    int
	height   int
	events   []Event
	out      bytes.Buffer
	writes   int
	inited   bool
	shutdown int
}

// NewNullBackend creates a backend with the given size.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{width: width, height: height}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inited = true
	return nil
}

func (b *NullBackend) Shutdown() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inited = false
	b.shutdown++
	return nil
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// PollEvent returns the next scripted event. A resize event also changes
// the reported size. When the script is exhausted it returns ErrNoInput.
func (b *NullBackend) PollEvent(ctx context.Context) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return Event{}, ErrNoInput
	}
	ev := b.events[0]
	b.events = b.events[1:]
	if ev.Type == EventResize {
		b.width, b.height = ev.Width, ev.Height
	}
	return ev, nil
}

func (b *NullBackend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writes++
	return b.out.Write(p)
}

// PostEvent appends an event to the script.
func (b *NullBackend) PostEvent(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
}

// PostKey appends a key event.
func (b *NullBackend) PostKey(ev key.Event) {
	b.PostEvent(Event{Type: EventKey, Key: ev})
}

// PostKeys parses each spec (see key.Parse) and appends it. It panics on an
// invalid spec.
func (b *NullBackend) PostKeys(specs ...string) {
	for _, spec := range specs {
		b.PostKey(key.MustParse(spec))
	}
}

// PostText appends one rune event per character of s.
func (b *NullBackend) PostText(s string) {
	for _, r := range s {
		b.PostKey(key.NewRuneEvent(r, key.ModNone))
	}
}

// PostResize appends a resize event.
func (b *NullBackend) PostResize(width, height int) {
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// Output returns everything written so far.
func (b *NullBackend) Output() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

// Writes returns the number of Write calls.
func (b *NullBackend) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

// Active reports whether Init has been called without a matching Shutdown.
func (b *NullBackend) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inited
}

// ShutdownCount returns the number of Shutdown calls.
func (b *NullBackend) ShutdownCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shutdown
}
