package renderer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/dshills/fuzzyselect/internal/renderer/core"
)

// recorder captures each Write separately.
type recorder struct {
	writes [][]byte
	err    error
}

func (r *recorder) Write(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.writes = append(r.writes, bytes.Clone(p))
	return len(p), nil
}

func (r *recorder) last() string {
	if len(r.writes) == 0 {
		return ""
	}
	return string(r.writes[len(r.writes)-1])
}

func TestRenderEmitsMinimalDiff(t *testing.T) {
	out := &recorder{}
	r := New(out, 5, 2, Options{})

	DrawString(r.BackBuffer(), 0, 0, "hi", core.DefaultStyle())
	if err := r.Render(); err != nil {
		t.Fatalf("Render error = %v", err)
	}
	if len(out.writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(out.writes))
	}
	if got, want := out.last(), "\x1b[Hhi"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	out := &recorder{}
	r := New(out, 5, 2, Options{})

	draw := func() {
		fb := r.BackBuffer()
		DrawString(fb, 1, 1, "abc", core.NewStyle(core.ColorGreen))
	}

	draw()
	if err := r.Render(); err != nil {
		t.Fatalf("Render error = %v", err)
	}
	writes := len(out.writes)

	draw()
	if err := r.Render(); err != nil {
		t.Fatalf("Render error = %v", err)
	}
	if len(out.writes) != writes {
		t.Errorf("expected no output for an unchanged frame, got %q", out.last())
	}

	// Render again without composing: the back buffer still holds the frame.
	if err := r.Render(); err != nil {
		t.Fatalf("Render error = %v", err)
	}
	if len(out.writes) != writes {
		t.Errorf("expected no output, got %q", out.last())
	}
	if r.Stats().CellsChanged != 0 {
		t.Errorf("expected 0 changed cells, got %d", r.Stats().CellsChanged)
	}
}

func TestRenderStyleTransitions(t *testing.T) {
	out := &recorder{}
	r := New(out, 4, 2, Options{})

	fb := r.BackBuffer()
	fb.SetCell(2, 1, core.NewCell('x', core.DefaultStyle().Bold()))
	if err := r.Render(); err != nil {
		t.Fatalf("Render error = %v", err)
	}

	want := ansi.CursorPosition(3, 2) + ansi.ResetStyle + "\x1b[1m" + "x" + ansi.ResetStyle
	if got := out.last(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderSkipsRedundantCursorAndStyle(t *testing.T) {
	out := &recorder{}
	r := New(out, 6, 1, Options{})

	style := core.NewStyle(core.ColorRed)
	fb := r.BackBuffer()
	DrawString(fb, 0, 0, "ab", style)
	DrawString(fb, 4, 0, "c", style)
	if err := r.Render(); err != nil {
		t.Fatalf("Render error = %v", err)
	}

	want := "\x1b[H" + ansi.ResetStyle + "\x1b[31m" + "ab" +
		ansi.CursorPosition(5, 1) + "c" + ansi.ResetStyle
	if got := out.last(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderClearedCellReturnsToDefault(t *testing.T) {
	out := &recorder{}
	r := New(out, 2, 1, Options{})

	DrawString(r.BackBuffer(), 0, 0, "a", core.NewStyle(core.ColorBlue))
	if err := r.Render(); err != nil {
		t.Fatalf("Render error = %v", err)
	}

	r.BackBuffer()
	if err := r.Render(); err != nil {
		t.Fatalf("Render error = %v", err)
	}
	if got, want := out.last(), "\x1b[H "; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderWideRuneInvalidatesCursor(t *testing.T) {
	out := &recorder{}
	r := New(out, 4, 1, Options{})

	fb := r.BackBuffer()
	fb.SetCell(0, 0, core.NewCell('世', core.DefaultStyle()))
	fb.SetCell(1, 0, core.NewCell('a', core.DefaultStyle()))
	if err := r.Render(); err != nil {
		t.Fatalf("Render error = %v", err)
	}
	want := "\x1b[H世" + ansi.CursorPosition(2, 1) + "a"
	if got := out.last(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestResizeForcesFullRepaint(t *testing.T) {
	out := &recorder{}
	r := New(out, 3, 1, Options{})

	DrawString(r.BackBuffer(), 0, 0, "abc", core.DefaultStyle())
	if err := r.Render(); err != nil {
		t.Fatalf("Render error = %v", err)
	}

	r.Resize(4, 2)
	if w, h := r.Size(); w != 4 || h != 2 {
		t.Fatalf("expected 4x2, got %dx%d", w, h)
	}
	DrawString(r.BackBuffer(), 0, 0, "abc", core.DefaultStyle())
	if err := r.Render(); err != nil {
		t.Fatalf("Render error = %v", err)
	}
	got := out.last()
	if !strings.HasPrefix(got, ansi.ResetStyle+ansi.EraseEntireScreen) {
		t.Errorf("expected screen clear after resize, got %q", got)
	}
	if !strings.HasSuffix(got, "abc") {
		t.Errorf("expected full repaint of content, got %q", got)
	}
}

func TestRenderWriteError(t *testing.T) {
	boom := errors.New("boom")
	out := &recorder{err: boom}
	r := New(out, 2, 1, Options{})

	DrawString(r.BackBuffer(), 0, 0, "x", core.DefaultStyle())
	if err := r.Render(); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}

	// After recovery the frame is repainted in full.
	out.err = nil
	if err := r.Render(); err != nil {
		t.Fatalf("Render error = %v", err)
	}
	if !strings.Contains(out.last(), "x") {
		t.Errorf("expected repaint after failed write, got %q", out.last())
	}
}

func TestBeginEnd(t *testing.T) {
	out := &recorder{}
	r := New(out, 2, 2, DefaultOptions())

	if err := r.End(); err != nil || len(out.writes) != 0 {
		t.Fatalf("End before Begin should be a no-op")
	}
	if err := r.Begin(); err != nil {
		t.Fatalf("Begin error = %v", err)
	}
	begin := out.last()
	for _, seq := range []string{ansi.SetModeAltScreenSaveCursor, ansi.HideCursor, ansi.EraseEntireScreen} {
		if !strings.Contains(begin, seq) {
			t.Errorf("expected Begin output to contain %q", seq)
		}
	}

	if err := r.End(); err != nil {
		t.Fatalf("End error = %v", err)
	}
	end := out.last()
	for _, seq := range []string{ansi.ResetStyle, ansi.ResetModeAltScreenSaveCursor, ansi.ShowCursor} {
		if !strings.Contains(end, seq) {
			t.Errorf("expected End output to contain %q", seq)
		}
	}

	n := len(out.writes)
	if err := r.End(); err != nil || len(out.writes) != n {
		t.Error("second End should be a no-op")
	}
}

func TestSGR(t *testing.T) {
	tests := []struct {
		name  string
		style core.Style
		want  string
	}{
		{"default", core.DefaultStyle(), ""},
		{"bold red", core.NewStyle(core.ColorRed).Bold(), "\x1b[1;31m"},
		{"reverse", core.DefaultStyle().Reverse(), "\x1b[7m"},
		{"indexed bg", core.DefaultStyle().WithBackground(core.IndexedColor(208)), "\x1b[48;5;208m"},
		{"rgb fg", core.NewStyle(core.RGB(1, 2, 3)), "\x1b[38;2;1;2;3m"},
		{"bright fg", core.NewStyle(core.ColorBrightBlack), "\x1b[90m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sgr(tt.style); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
