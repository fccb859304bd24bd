package selector

import (
	"github.com/dshills/fuzzyselect/internal/input/fuzzy"
)

// State is the complete state of a picker session.
type State struct {
	Query   string
	Matches []fuzzy.Result

	// Cursor indexes Matches, or is -1 when there are none.
	Cursor int

	// SelectedIndex is the index into Matches chosen by Select, or -1.
	SelectedIndex int

	ShouldQuit bool
}

// Selected returns the chosen item, if any.
func (s State) Selected() (fuzzy.Item, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Matches) {
		return fuzzy.Item{}, false
	}
	return s.Matches[s.SelectedIndex].Item, true
}

// Model computes state transitions over a fixed item list.
type Model struct {
	items   []fuzzy.Item
	matcher *fuzzy.Matcher
}

// NewModel creates a model. A nil matcher uses the default weights.
func NewModel(items []fuzzy.Item, matcher *fuzzy.Matcher) *Model {
	if matcher == nil {
		matcher = fuzzy.NewMatcher(fuzzy.DefaultOptions())
	}
	return &Model{items: items, matcher: matcher}
}

// Len returns the number of items before filtering.
func (m *Model) Len() int {
	return len(m.items)
}

// Init returns the state at the start of a session: empty query, every
// item listed, cursor on the first.
func (m *Model) Init() State {
	return m.withQuery(State{}, "")
}

// Update returns the state after applying msg to s.
func (m *Model) Update(s State, msg Message) State {
	switch msg := msg.(type) {
	case QueryChange:
		return m.withQuery(s, msg.Query)

	case CursorMove:
		if len(s.Matches) == 0 {
			s.Cursor = -1
			return s
		}
		s.Cursor = clamp(s.Cursor+msg.Delta, 0, len(s.Matches)-1)
		return s

	case Select:
		if s.Cursor >= 0 && s.Cursor < len(s.Matches) {
			s.SelectedIndex = s.Cursor
		}
		s.ShouldQuit = true
		return s

	case Quit:
		s.ShouldQuit = true
		return s
	}
	return s
}

func (m *Model) withQuery(s State, query string) State {
	s.Query = query
	s.Matches = m.matcher.Match(m.items, query)
	s.Cursor = 0
	if len(s.Matches) == 0 {
		s.Cursor = -1
	}
	s.SelectedIndex = -1
	return s
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
