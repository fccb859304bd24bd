// Package fuzzy ranks candidate strings against a typed query.
//
// A candidate matches when every rune of the query appears in it, in
// order, ignoring case. Matching is greedy: each query rune binds to its
// first occurrence after the previous one. Candidates that match are
// scored and returned best first.
//
// # Scoring
//
// Each matched rune earns:
//   - a start bonus when it is the first rune of the text
//   - a consecutive bonus when it directly follows the previous match
//   - a boundary bonus when it sits on a separator (space - _ / \)
//   - a position score that decays with distance from the start
//
// Ties are broken by the item text in ascending byte order, so results
// are fully deterministic.
//
// # Usage
//
//	m := fuzzy.NewMatcher(fuzzy.DefaultOptions())
//	results := m.Match(items, "ap")
//	for _, r := range results {
//	    fmt.Printf("%s (score: %d)\n", r.Item.Text, r.Score)
//	}
//
// A Matcher holds no mutable state and is safe for concurrent use.
package fuzzy
