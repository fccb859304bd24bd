// Package renderer provides the cell-based display layer of the picker.
//
// The renderer is responsible for:
//   - A cell-addressable Surface with nested, clipped sub-views
//   - Drawing helpers for styled text and box glyphs
//   - Double-buffered output that emits only the cells that changed
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│   Widgets (Box, List, TextBlock, ...)   │
//	├─────────────────────────────────────────┤
//	│  layout.Split / Blueprint  →  SubSurface│
//	├─────────────────────────────────────────┤
//	│  Renderer: back FrameBuffer → ANSI diff │
//	├─────────────────────────────────────────┤
//	│      io.Writer (backend terminal)       │
//	└─────────────────────────────────────────┘
//
// A frame is composed by obtaining a cleared back buffer, drawing into it
// (usually through sub-surfaces carved by the layout package) and calling
// Render, which compares it with the last emitted frame and writes the
// difference to the terminal in a single Write.
//
// Usage:
//
//	r := renderer.New(term, width, height, renderer.DefaultOptions())
//	if err := r.Begin(); err != nil { ... }
//	defer r.End()
//	fb := r.BackBuffer()
//	renderer.DrawString(fb, 0, 0, "hello", core.DefaultStyle())
//	err := r.Render()
package renderer
