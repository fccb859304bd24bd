// Package widget provides the components the picker is drawn with.
//
// Every widget implements Component and draws only inside the surface it is
// given. Widgets hold no terminal state; the selector builds a fresh tree
// for each frame:
//
//	Box
//	└── Frame (vertical: query, list, status)
//	    ├── Input
//	    ├── List
//	    └── StatusBar
//
// TextBlock is the shared primitive for a single line of styled spans.
package widget

import "github.com/dshills/fuzzyselect/internal/renderer"

// Component is anything that can draw itself onto a surface.
type Component = renderer.Component
