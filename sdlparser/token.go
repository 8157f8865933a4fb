package sdlparser

// dedicated type for reference to file, in case we need to refactor this later..
type FileRef string

type Pos struct {
	File      FileRef
	Line, Col int
}

// Token is one element of the stream produced by the Lexer. Tokens are
// immutable once produced; synthesized tokens (NL/Indent/Dedent) carry an
// empty Value and a zero-width span at the position that triggered them.
type Token struct {
	Type        TokenType
	Value       string
	Start, Stop Pos
}

// insertedToken builds a zero-width synthetic token anchored at pos.
func insertedToken(tt TokenType, pos Pos) Token {
	return Token{
		Type:  tt,
		Value: "",
		Start: pos,
		Stop:  pos,
	}
}
