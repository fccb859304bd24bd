// Package core provides the value types shared by the renderer, its
// backends and the widgets: colors, text attributes, styles, cells and
// rectangle geometry.
//
// Everything here is a comparable value type. Styles compose with Patch,
// where each field of the overlay wins only when it is set, which lets a
// highlight style (say, bold yellow) be laid over a selected-row style
// (reverse video) without either knowing about the other.
package core
