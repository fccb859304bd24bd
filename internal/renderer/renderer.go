package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Options configures the renderer.
type Options struct {
	// AltScreen switches to the terminal's alternate screen for the
	// duration of the session, restoring the original contents on End.
	AltScreen bool

	// HideCursor hides the terminal cursor between Begin and End.
	HideCursor bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		AltScreen:  true,
		HideCursor: true,
	}
}

// Stats describes the output of the most recent Render.
type Stats struct {
	Frame        uint64
	CellsChanged int
	BytesWritten int
}

// Renderer composes frames into a back buffer and writes the difference
// against the previously emitted frame as ANSI escape sequences.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	opts Options
	out  io.Writer

	// front holds the last frame emitted to the terminal, back the frame
	// being composed.
	front *FrameBuffer
	back  *FrameBuffer

	// clearScreen requests an erase before the next frame, after which
	// front is known to be blank.
	clearScreen bool
	begun       bool

	buf   bytes.Buffer
	stats Stats
}

// New creates a renderer writing to out with the given screen size.
func New(out io.Writer, width, height int, opts Options) *Renderer {
	return &Renderer{
		opts:  opts,
		out:   out,
		front: NewFrameBuffer(width, height),
		back:  NewFrameBuffer(width, height),
	}
}

// Size returns the screen dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.back.Width(), r.back.Height()
}

// BackBuffer clears the back buffer and returns it for composing the next
// frame.
func (r *Renderer) BackBuffer() *FrameBuffer {
	r.back.Clear()
	return r.back
}

// Stats returns statistics for the most recent Render.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Begin prepares the terminal: alternate screen, clear, hidden cursor.
func (r *Renderer) Begin() error {
	r.buf.Reset()
	if r.opts.AltScreen {
		r.buf.WriteString(ansi.SetModeAltScreenSaveCursor)
	}
	if r.opts.HideCursor {
		r.buf.WriteString(ansi.HideCursor)
	}
	r.buf.WriteString(ansi.ResetStyle)
	r.buf.WriteString(ansi.EraseEntireScreen)
	r.front.Clear()
	r.clearScreen = false
	r.begun = true
	return r.flush()
}

// End restores the terminal state changed by Begin. It is safe to call
// more than once and after a failed Render.
func (r *Renderer) End() error {
	if !r.begun {
		return nil
	}
	r.begun = false
	r.buf.Reset()
	r.buf.WriteString(ansi.ResetStyle)
	if r.opts.AltScreen {
		r.buf.WriteString(ansi.ResetModeAltScreenSaveCursor)
	} else {
		// Leave the cursor below the last frame.
		r.buf.WriteString(ansi.CursorPosition(1, r.front.Height()))
		r.buf.WriteString("\r\n")
	}
	r.buf.WriteString(ansi.ShowCursor)
	return r.flush()
}

// Resize reallocates both buffers. The next Render repaints the whole
// screen.
func (r *Renderer) Resize(width, height int) {
	if width == r.back.Width() && height == r.back.Height() {
		return
	}
	r.front = NewFrameBuffer(width, height)
	r.back = NewFrameBuffer(width, height)
	r.clearScreen = true
}

// diffState tracks what the terminal is known to hold while a frame is
// being encoded. A negative x means the cursor position is unknown.
type diffState struct {
	x, y  int
	style Style
}

// Render writes the cells of the back buffer that differ from the last
// emitted frame. All output for a frame goes out in one Write; a frame
// with no changes writes nothing. On success the back buffer becomes the
// new front.
func (r *Renderer) Render() error {
	r.buf.Reset()
	if r.clearScreen {
		r.buf.WriteString(ansi.ResetStyle)
		r.buf.WriteString(ansi.EraseEntireScreen)
		r.front.Clear()
		r.clearScreen = false
	}

	st := diffState{x: -1, y: -1}
	changed := 0
	for y, row := range r.back.cells {
		front := r.front.cells[y]
		for x, c := range row {
			if c == front[x] {
				continue
			}
			st = r.encodeCell(st, x, y, c)
			changed++
		}
	}
	if !st.style.IsDefault() {
		r.buf.WriteString(ansi.ResetStyle)
	}

	r.stats = Stats{Frame: r.stats.Frame + 1, CellsChanged: changed, BytesWritten: r.buf.Len()}
	if err := r.flush(); err != nil {
		// The terminal state is unknown; repaint everything next time.
		r.clearScreen = true
		return fmt.Errorf("render frame %d: %w", r.stats.Frame, err)
	}
	r.front.CopyFrom(r.back)
	return nil
}

// encodeCell appends the output for one changed cell and returns the
// updated terminal state.
func (r *Renderer) encodeCell(st diffState, x, y int, c Cell) diffState {
	if st.x != x || st.y != y {
		r.buf.WriteString(ansi.CursorPosition(x+1, y+1))
	}
	if c.Style != st.style {
		r.buf.WriteString(ansi.ResetStyle)
		if !c.Style.IsDefault() {
			r.buf.WriteString(sgr(c.Style))
		}
		st.style = c.Style
	}
	r.buf.WriteRune(c.Rune)

	// A rune that does not advance the terminal cursor by exactly one
	// column leaves its position unknown.
	if runewidth.RuneWidth(c.Rune) == 1 {
		st.x, st.y = x+1, y
	} else {
		st.x, st.y = -1, -1
	}
	return st
}

func (r *Renderer) flush() error {
	if r.buf.Len() == 0 {
		return nil
	}
	_, err := r.out.Write(r.buf.Bytes())
	return err
}
