// Package layout divides a surface into adjacent slots along one axis.
//
// Each slot is described by a SizeSpec: a Fixed number of cells, a
// Fractional share of the available space, or a Flexible weight that
// absorbs whatever the other two leave over. Solve turns a list of specs
// into concrete sizes; Split carves the matching sub-surfaces; Blueprint
// binds a list of specs to components and renders them as one Frame.
package layout
