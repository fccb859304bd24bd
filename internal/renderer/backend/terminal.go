package backend

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend on a tcell Tty. By default it opens
// /dev/tty, leaving stdin and stdout free for piped data.
type Terminal struct {
	tty   tcell.Tty
	input tcell.InputProcessor

	raw     chan tcell.Event
	resizes chan Event
	errs    chan error

	mu            sync.Mutex
	width, height int
	started       bool
	stop          chan struct{}
	wg            sync.WaitGroup
}

// NewTerminal opens the controlling terminal.
func NewTerminal() (*Terminal, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewTerminalWithTty(tty), nil
}

// NewTerminalWithTty wraps an existing Tty.
func NewTerminalWithTty(tty tcell.Tty) *Terminal {
	raw := make(chan tcell.Event, 128)
	return &Terminal{
		tty:     tty,
		input:   tcell.NewInputProcessor(raw),
		raw:     raw,
		resizes: make(chan Event, 4),
		errs:    make(chan error, 1),
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}
	if err := t.tty.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	ws, err := t.tty.WindowSize()
	if err != nil {
		_ = t.tty.Stop()
		return fmt.Errorf("query terminal size: %w", err)
	}
	t.width, t.height = ws.Width, ws.Height
	t.tty.NotifyResize(t.onResize)

	t.stop = make(chan struct{})
	t.started = true
	t.wg.Add(1)
	go t.readLoop()
	return nil
}

func (t *Terminal) Shutdown() error {
	t.mu.Lock()
	if !t.started {
		t.mu.Unlock()
		return nil
	}
	t.started = false
	close(t.stop)
	t.mu.Unlock()

	t.tty.NotifyResize(nil)
	// Drain wakes the reader; Stop restores cooked mode.
	err := errors.Join(t.tty.Drain(), t.tty.Stop())
	t.wg.Wait()
	if err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.tty.Write(p)
}

// PollEvent returns the next key or resize event. Mouse, paste and focus
// reports are discarded.
func (t *Terminal) PollEvent(ctx context.Context) (Event, error) {
	for {
		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case ev := <-t.resizes:
			return ev, nil
		case err := <-t.errs:
			return Event{}, fmt.Errorf("read terminal: %w", err)
		case ev := <-t.raw:
			kev, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if k, ok := convertKeyEvent(kev); ok {
				return Event{Type: EventKey, Key: k}, nil
			}
		}
	}
}

// readLoop feeds raw bytes to the input processor, which decodes escape
// sequences and posts key events to t.raw. A lone ESC is posted by the
// processor's own timer once no sequence follows.
func (t *Terminal) readLoop() {
	defer t.wg.Done()
	buf := make([]byte, 256)
	for {
		n, err := t.tty.Read(buf)
		if n > 0 {
			t.input.ScanUTF8(buf[:n])
		}
		if err != nil {
			select {
			case <-t.stop:
			case t.errs <- err:
			}
			return
		}
	}
}

func (t *Terminal) onResize() {
	ws, err := t.tty.WindowSize()
	if err != nil {
		return
	}
	t.mu.Lock()
	t.width, t.height = ws.Width, ws.Height
	t.mu.Unlock()

	select {
	case t.resizes <- Event{Type: EventResize, Width: ws.Width, Height: ws.Height}:
	default:
	}
}
