package fuzzy

import "unicode"

// Scorer calculates match scores.
type Scorer interface {
	// Score rates a match. text is the lowercased candidate and positions
	// the ascending indices of the matched runes. Higher is better.
	Score(text []rune, positions []int) int
}

// Weights are the per-rune bonuses used by WeightedScorer.
type Weights struct {
	// Start is awarded when a match is at index 0.
	Start int
	// Consecutive is awarded when a match directly follows the previous one.
	Consecutive int
	// Boundary is awarded when a match at index > 0 is on a word boundary.
	Boundary int
	// Position is the score of a match at index 0; it drops by one per
	// index, never below zero.
	Position int
}

// DefaultWeights returns the standard weights.
func DefaultWeights() Weights {
	return Weights{
		Start:       20,
		Consecutive: 15,
		Boundary:    10,
		Position:    100,
	}
}

// WeightedScorer sums per-rune bonuses.
type WeightedScorer struct {
	Weights Weights
}

// Score implements the Scorer interface.
func (s WeightedScorer) Score(text []rune, positions []int) int {
	w := s.Weights
	score := 0
	run := 0
	prev := -1
	for _, idx := range positions {
		if idx == 0 {
			score += w.Start
		}

		if run > 0 && idx == prev+1 {
			score += w.Consecutive
			run++
		} else {
			run = 1
		}

		if idx > 0 && isWordBoundary(text, idx) {
			score += w.Boundary
		}

		score += max(0, w.Position-idx)
		prev = idx
	}
	return score
}

// isWordBoundary reports whether the rune at idx is a separator or the
// upper-case half of a camelCase transition.
func isWordBoundary(text []rune, idx int) bool {
	if idx <= 0 || idx >= len(text) {
		return false
	}
	r := text[idx]
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '-', '_', '/', '\\':
		return true
	}
	return unicode.IsLower(text[idx-1]) && unicode.IsUpper(r)
}
