package selector

// Message is an input to Model.Update. The concrete types are QueryChange,
// CursorMove, Select and Quit.
type Message interface {
	isMessage()
}

// QueryChange replaces the query.
type QueryChange struct {
	Query string
}

// CursorMove moves the cursor by Delta rows.
type CursorMove struct {
	Delta int
}

// Select confirms the match under the cursor and ends the session.
type Select struct{}

// Quit ends the session without a selection.
type Quit struct{}

func (QueryChange) isMessage() {}
func (CursorMove) isMessage()  {}
func (Select) isMessage()      {}
func (Quit) isMessage()        {}
