package sdlparser

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// Lexer turns schema source text into a token stream. One Lexer instance
// owns one pass over one source unit; it is not safe for concurrent use and
// cannot be restarted. Layout tokens (Indent/Dedent/NL) are synthesized
// between the raw tokens as dictated by the indentation model, so a single
// rule match can put several tokens on the internal queue.
type Lexer struct {
	input string
	file  FileRef

	states stateRules
	state  LexerState

	// one-shot state override requested by the raw-string dedent exit,
	// applied after the current token's synthesis; StateKeep means none
	pendingState LexerState

	pos       int // byte offset of the scan cursor
	line, col int // 1-based source position of the cursor

	// indentation levels, always non-empty with indent[0] == 0; shared
	// between the code layout and the raw-string layout so that leaving a
	// raw block restores the enclosing code indentation
	indent []int

	// false only between a logical end-of-line and the next significant
	// token; guards the indentation check
	logicalLineStarted bool

	queue []Token
	atEOF bool
	err   error
}

var (
	defaultStatesOnce sync.Once
	defaultStates     stateRules
)

// New returns a Lexer over input using the built-in keyword table.
func New(file FileRef, input string) *Lexer {
	defaultStatesOnce.Do(func() {
		defaultStates = compileStates(defaultKeywords)
	})
	return newLexer(file, input, defaultStates)
}

// NewWithKeywords returns a Lexer over input with a caller-supplied keyword
// table, compiling the rule lists on the spot. Callers lexing many sources
// with one table should use CompileKeywords and Keywords.New instead.
func NewWithKeywords(file FileRef, input string, keywords KeywordTable) *Lexer {
	return CompileKeywords(keywords).New(file, input)
}

func newLexer(file FileRef, input string, states stateRules) *Lexer {
	l := &Lexer{
		input:              input,
		file:               file,
		states:             states,
		state:              StateWSSensitive,
		line:               1,
		col:                1,
		indent:             []int{0},
		logicalLineStarted: true,
	}
	l.queue = append(l.queue, l.startTokens()...)
	return l
}

// startTokens is an extension point for derived grammars that need tokens
// in front of the stream; empty for the schema language.
func (l *Lexer) startTokens() []Token {
	return nil
}

// Next returns the next token of the stream. After the input is exhausted
// it returns the EOF-closing tokens (a final NL if a logical line is open,
// then Dedents down to the base level) and then an EOFToken on every
// subsequent call. Errors are sticky: once a pass has failed it stays
// failed.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	for len(l.queue) == 0 {
		if err := l.scan(); err != nil {
			l.err = err
			return Token{}, err
		}
	}
	tok := l.queue[0]
	l.queue = l.queue[1:]
	return tok, nil
}

// Lex drains the stream and returns all tokens before the EOF sentinel.
func (l *Lexer) Lex() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOFToken {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// scan advances the cursor by one rule match and fills the queue with the
// resulting tokens.
func (l *Lexer) scan() error {
	if l.pos >= len(l.input) {
		here := Pos{File: l.file, Line: l.line, Col: l.col}
		if !l.atEOF {
			l.atEOF = true
			if l.logicalLineStarted {
				l.queue = append(l.queue, insertedToken(NLToken, here))
			}
			for len(l.indent) > 1 {
				l.indent = l.indent[:len(l.indent)-1]
				l.queue = append(l.queue, insertedToken(DedentToken, here))
			}
		}
		l.queue = append(l.queue, insertedToken(EOFToken, here))
		return nil
	}

	rule, n := l.match()
	if n < 0 {
		// the synthetic error alternative: no rule matched here
		_, w := utf8.DecodeRuneInString(l.input[l.pos:])
		return &UnknownTokenError{
			Text: l.input[l.pos : l.pos+w],
			Pos:  Pos{File: l.file, Line: l.line, Col: l.col},
		}
	}

	start := Pos{File: l.file, Line: l.line, Col: l.col}
	text := l.input[l.pos : l.pos+n]
	l.advance(text)
	tok := Token{
		Type:  rule.Type,
		Value: text,
		Start: start,
		Stop:  Pos{File: l.file, Line: l.line, Col: l.col},
	}

	if err := l.synthesize(tok); err != nil {
		return err
	}

	if rule.NextState != StateKeep && rule.NextState != l.state {
		l.state = rule.NextState
	} else if l.pendingState != StateKeep {
		l.state = l.pendingState
		l.pendingState = StateKeep
	}
	return nil
}

// match tries the current state's rules in declaration order at the cursor.
func (l *Lexer) match() (Rule, int) {
	for _, rule := range l.states[l.state] {
		if n := rule.Match(l.input, l.pos); n >= 0 {
			return rule, n
		}
	}
	return Rule{}, -1
}

// advance moves the cursor past text, counting lines and (rune) columns,
// including newlines embedded in multi-line tokens.
func (l *Lexer) advance(text string) {
	l.pos += len(text)
	for _, r := range text {
		if r == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
}

func isTrivia(tt TokenType) bool {
	return tt == NewlineToken || tt == WhitespaceToken || tt == CommentToken
}

// synthesize applies the layout model to one raw token: it appends zero or
// more synthetic tokens and then the token itself to the queue, and may
// request a one-shot state override. The raw token is always delivered
// last.
func (l *Lexer) synthesize(tok Token) error {
	tt := tok.Type

	if l.state == StateWSSensitive && !l.logicalLineStarted && !isTrivia(tt) {
		// potential indentation change at the start of a logical line
		last := l.indent[len(l.indent)-1]
		cur := tok.Start.Col - 1

		if cur > last {
			l.indent = append(l.indent, cur)
			l.queue = append(l.queue, insertedToken(IndentToken, tok.Start))
		} else if cur < last {
			for l.indent[len(l.indent)-1] > cur {
				l.indent = l.indent[:len(l.indent)-1]
				if l.indent[len(l.indent)-1] < cur {
					return &IndentationError{Message: "incorrect unindent", Pos: tok.Start}
				}
				l.queue = append(l.queue, insertedToken(DedentToken, tok.Start))
			}
		}
	} else if l.state == StateRawString {
		// raw-string indentation is measured in characters of leading
		// whitespace, against the same stack as the code layout
		last := l.indent[len(l.indent)-1]
		cur := utf8.RuneCountInString(tok.Value)

		if !l.logicalLineStarted && tt != NewlineToken {
			// the block must indent past the enclosing level here
			if tt == RawLeadWSToken && cur > last {
				l.indent = append(l.indent, cur)
				l.queue = append(l.queue, insertedToken(IndentToken, tok.Stop))
			} else if strings.TrimSpace(tok.Value) != "" {
				return &IndentationError{Message: "incorrect indentation", Pos: tok.Stop}
			}
		} else if tt == RawLeadWSToken && cur < last {
			// indentation fell below the block level: close the logical
			// line, unwind the stack and hand the line back to the code
			// layout
			l.queue = append(l.queue, insertedToken(NLToken, tok.Start))
			for l.indent[len(l.indent)-1] > cur {
				l.indent = l.indent[:len(l.indent)-1]
				if l.indent[len(l.indent)-1] < cur {
					return &IndentationError{Message: "incorrect unindent", Pos: tok.Stop}
				}
				l.queue = append(l.queue, insertedToken(DedentToken, tok.Stop))
			}
			l.pendingState = StateWSSensitive
			// this whitespace is ordinary code indentation again, not raw
			// content; emit a fresh token over the same span
			tok = Token{Type: WhitespaceToken, Value: tok.Value, Start: tok.Start, Stop: tok.Stop}
		}
	}

	if l.logicalLineStarted &&
		(l.state == StateWSSensitive || l.state == StateRawString) &&
		tt == NewlineToken {
		l.queue = append(l.queue, insertedToken(NLToken, tok.Start))
		l.logicalLineStarted = false
	} else if !isTrivia(tt) {
		l.logicalLineStarted = true
	}

	l.queue = append(l.queue, tok)
	return nil
}
