package widget

import (
	"github.com/dshills/fuzzyselect/internal/renderer"
	"github.com/dshills/fuzzyselect/internal/renderer/core"
)

// Input draws the prompt and query on one line, followed by a block
// standing in for the hidden terminal cursor.
type Input struct {
	prompt string
	query  string

	promptStyle core.Style
	queryStyle  core.Style
	cursorStyle core.Style
}

// NewInput creates an input line.
func NewInput(prompt, query string) *Input {
	return &Input{
		prompt:      prompt,
		query:       query,
		cursorStyle: core.DefaultStyle().Reverse(),
	}
}

// PromptStyle sets the style of the prompt.
func (i *Input) PromptStyle(s core.Style) *Input {
	i.promptStyle = s
	return i
}

// QueryStyle sets the style of the query text.
func (i *Input) QueryStyle(s core.Style) *Input {
	i.queryStyle = s
	return i
}

// CursorStyle sets the style of the cursor block.
func (i *Input) CursorStyle(s core.Style) *Input {
	i.cursorStyle = s
	return i
}

func (i *Input) Render(s renderer.Surface) error {
	text := NewTextBlock(
		Span{Text: i.prompt, Style: i.promptStyle},
		Span{Text: i.query, Style: i.queryStyle},
	)
	if err := text.Render(s); err != nil {
		return err
	}
	s.SetCell(text.Len(), 0, core.NewCell(' ', i.cursorStyle))
	return nil
}
