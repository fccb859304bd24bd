package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

// Item represents a searchable item.
type Item struct {
	// Text is the display string matched against the query.
	Text string

	// Data is arbitrary data associated with this item.
	Data any
}

// Result represents a match result with scoring information.
type Result struct {
	// Item is the matched item.
	Item Item

	// Score is the match score (higher is better).
	Score int

	// Positions holds the ascending rune indices of matched characters in
	// Item.Text.
	Positions []int
}

// Options configures the matcher behavior.
type Options struct {
	// Weights tunes the default scorer.
	Weights Weights
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{Weights: DefaultWeights()}
}

// Matcher performs fuzzy string matching.
type Matcher struct {
	scorer Scorer
}

// NewMatcher creates a new fuzzy matcher with the given options.
func NewMatcher(opts Options) *Matcher {
	return &Matcher{scorer: WeightedScorer{Weights: opts.Weights}}
}

// NewMatcherWithScorer creates a matcher that ranks with a custom scorer.
func NewMatcherWithScorer(scorer Scorer) *Matcher {
	return &Matcher{scorer: scorer}
}

// Match returns the items matching query, best first.
//
// An empty or all-whitespace query matches everything: every item is
// returned in input order with a zero score and no positions.
func (m *Matcher) Match(items []Item, query string) []Result {
	if strings.TrimSpace(query) == "" {
		results := make([]Result, len(items))
		for i, item := range items {
			results[i] = Result{Item: item}
		}
		return results
	}

	queryRunes := lowerRunes(query)
	results := make([]Result, 0, len(items))
	for _, item := range items {
		text := lowerRunes(item.Text)
		positions, ok := matchPositions(queryRunes, text)
		if !ok {
			continue
		}
		results = append(results, Result{
			Item:      item,
			Score:     m.scorer.Score(text, positions),
			Positions: positions,
		})
	}

	// Sort by score descending, then by text for deterministic ordering
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Item.Text < results[j].Item.Text
	})
	return results
}

// Limit returns at most n results. A non-positive n returns all of them.
func Limit(results []Result, n int) []Result {
	if n <= 0 || n >= len(results) {
		return results
	}
	return results[:n]
}

// lowerRunes lowercases s rune by rune so that indices stay aligned with
// the runes of s.
func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

// matchPositions binds each query rune to its first occurrence after the
// previous match. It reports false if some rune has no such occurrence.
func matchPositions(query, text []rune) ([]int, bool) {
	positions := make([]int, 0, len(query))
	cursor := 0
	for _, qr := range query {
		found := -1
		for i := cursor; i < len(text); i++ {
			if text[i] == qr {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, false
		}
		positions = append(positions, found)
		cursor = found + 1
	}
	return positions, true
}
