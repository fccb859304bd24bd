package layout

import (
	"errors"
	"fmt"

	"github.com/dshills/fuzzyselect/internal/renderer"
)

// ErrSectionMismatch is returned by Compose when the number of components
// differs from the number of sections.
var ErrSectionMismatch = errors.New("component count does not match section count")

// Blueprint is a reusable arrangement of sections along one axis.
type Blueprint struct {
	axis     Axis
	sections []SizeSpec
	gap      int
}

// NewBlueprint creates a blueprint with no gap.
func NewBlueprint(axis Axis, sections ...SizeSpec) *Blueprint {
	return &Blueprint{axis: axis, sections: sections}
}

// Gap sets the number of cells between adjacent sections.
func (b *Blueprint) Gap(n int) *Blueprint {
	b.gap = max(0, n)
	return b
}

// Sections returns the section specs.
func (b *Blueprint) Sections() []SizeSpec {
	return b.sections
}

// Compose binds one component to each section, in order.
func (b *Blueprint) Compose(components ...renderer.Component) (*Frame, error) {
	if len(components) != len(b.sections) {
		return nil, fmt.Errorf("%w: %d components for %d sections",
			ErrSectionMismatch, len(components), len(b.sections))
	}
	return &Frame{blueprint: b, components: components}, nil
}

// Frame is a composed blueprint. It is itself a component.
type Frame struct {
	blueprint  *Blueprint
	components []renderer.Component
}

// Render splits s according to the blueprint and renders each component
// into its slot. A nil component leaves its slot untouched.
func (f *Frame) Render(s renderer.Surface) error {
	slots := Split(s, f.blueprint.axis, f.blueprint.sections, f.blueprint.gap)
	for i, c := range f.components {
		if c == nil {
			continue
		}
		if err := c.Render(slots[i]); err != nil {
			return fmt.Errorf("layout slot %d: %w", i, err)
		}
	}
	return nil
}
