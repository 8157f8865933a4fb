package sdlparser

import "fmt"

// IndentationError reports a layout violation: an unindent that does not
// land on any previously recorded indentation level, or a missing indent
// where the raw-string block requires one. Fatal to the current lex pass.
type IndentationError struct {
	Message string
	Pos     Pos
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Message)
}

// UnknownTokenError reports input no rule matched. Fatal to the current
// lex pass.
type UnknownTokenError struct {
	Text string
	Pos  Pos
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("%s:%d:%d: unknown token %q", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Text)
}
