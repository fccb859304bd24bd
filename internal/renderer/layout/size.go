package layout

import "fmt"

// Kind identifies the sizing strategy of a SizeSpec.
type Kind uint8

const (
	KindFixed Kind = iota
	KindFlexible
	KindFractional
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindFlexible:
		return "flexible"
	case KindFractional:
		return "fractional"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// SizeSpec describes how much of an axis a section takes.
type SizeSpec struct {
	Kind Kind
	// Cells for KindFixed, weight for KindFlexible.
	Value int
	// Fraction for KindFractional, in [0, 1].
	Fraction float64
}

// Fixed returns a section of exactly n cells. Negative n is treated as 0.
func Fixed(n int) SizeSpec {
	return SizeSpec{Kind: KindFixed, Value: max(0, n)}
}

// Flexible returns a section that shares the leftover space in proportion
// to weight. Negative weights are treated as 0.
func Flexible(weight int) SizeSpec {
	return SizeSpec{Kind: KindFlexible, Value: max(0, weight)}
}

// Fractional returns a section taking floor(frac × available) cells.
// frac is clamped to [0, 1].
func Fractional(frac float64) SizeSpec {
	return SizeSpec{Kind: KindFractional, Fraction: min(1, max(0, frac))}
}

func (s SizeSpec) String() string {
	switch s.Kind {
	case KindFixed:
		return fmt.Sprintf("Fixed(%d)", s.Value)
	case KindFlexible:
		return fmt.Sprintf("Flexible(%d)", s.Value)
	default:
		return fmt.Sprintf("Fractional(%g)", s.Fraction)
	}
}
