package layout

import "math"

// leftoverOrder is the order in which kinds receive rounding leftovers.
var leftoverOrder = [...]Kind{KindFlexible, KindFractional, KindFixed}

// Solve distributes total cells among sections separated by gap cells.
// The returned sizes are in input order.
//
// Fixed and Fractional sections are sized first; Flexible sections split
// what remains by weight. Cells lost to integer division are handed out
// one per section, to Flexible sections first, then Fractional, then
// Fixed, in input order.
func Solve(total int, sections []SizeSpec, gap int) []int {
	n := len(sections)
	sizes := make([]int, n)
	if n == 0 {
		return sizes
	}

	gapSpace := max(0, gap) * (n - 1)
	space := max(0, total-gapSpace)

	fixedTotal, fractionalTotal, weightTotal := 0, 0, 0
	for _, s := range sections {
		switch s.Kind {
		case KindFixed:
			fixedTotal += s.Value
		case KindFractional:
			fractionalTotal += fraction(s, space)
		case KindFlexible:
			weightTotal += s.Value
		}
	}
	remaining := max(0, space-fixedTotal-fractionalTotal)

	allocated := 0
	for i, s := range sections {
		switch s.Kind {
		case KindFixed:
			sizes[i] = s.Value
		case KindFractional:
			sizes[i] = fraction(s, space)
		case KindFlexible:
			if weightTotal > 0 {
				sizes[i] = remaining * s.Value / weightTotal
			}
		}
		allocated += sizes[i]
	}

	leftover := space - allocated
	for _, kind := range leftoverOrder {
		for i := 0; i < n && leftover > 0; i++ {
			if sections[i].Kind == kind {
				sizes[i]++
				leftover--
			}
		}
	}
	return sizes
}

func fraction(s SizeSpec, space int) int {
	return int(math.Floor(s.Fraction * float64(space)))
}
