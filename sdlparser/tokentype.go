package sdlparser

type TokenType int

const (
	WhitespaceToken TokenType = iota + 1

	CommentToken

	// NewlineToken is the physical \n scanned from the source; NLToken is the
	// synthesized logical end-of-line. The parser consumes NLToken and
	// ignores NewlineToken along with other trivia.
	NewlineToken
	NLToken
	IndentToken
	DedentToken

	LParenToken
	RParenToken
	LSBracketToken
	RSBracketToken
	LCBracketToken
	RCBracketToken
	CommaToken
	DoubleColonToken
	ColonToken
	TurnstileToken
	ArrowToken
	MappingToken
	DotToken

	IntConstToken
	FloatConstToken
	StringToken
	RawStringToken
	IdentToken

	// RawLeadWSToken is the leading whitespace of a line inside a raw-string
	// block; its width drives the raw-string indentation checks.
	RawLeadWSToken

	// Keyword kinds, one per schema keyword. The spelling->kind mapping
	// lives in keywords.go and may be replaced through configuration.
	AbstractToken
	ActionToken
	AggregateToken
	AsToken
	AtomToken
	AttributeToken
	ConceptToken
	ConstraintToken
	EventToken
	ExtendingToken
	FinalToken
	FromToken
	FunctionToken
	ImportToken
	IndexToken
	InitialToken
	LinkToken
	LinkPropertyToken
	OnToken
	RequiredToken
	ToToken
	ValueToken

	EOFToken
)

func (tt TokenType) GoString() string {
	return tokenToDescription[tt]
}

func (tt TokenType) String() string {
	return tokenToDescription[tt]
}

func init() {
	// make sure we panic if a description isn't declared
	for tt := TokenType(1); tt != EOFToken; tt++ {
		if tokenToDescription[tt] == "" {
			panic("you have not updated tokenToDescription")
		}
	}
}

var tokenToDescription = map[TokenType]string{
	WhitespaceToken: "WhitespaceToken",
	CommentToken:    "CommentToken",

	NewlineToken: "NewlineToken",
	NLToken:      "NLToken",
	IndentToken:  "IndentToken",
	DedentToken:  "DedentToken",

	LParenToken:      "LParenToken",
	RParenToken:      "RParenToken",
	LSBracketToken:   "LSBracketToken",
	RSBracketToken:   "RSBracketToken",
	LCBracketToken:   "LCBracketToken",
	RCBracketToken:   "RCBracketToken",
	CommaToken:       "CommaToken",
	DoubleColonToken: "DoubleColonToken",
	ColonToken:       "ColonToken",
	TurnstileToken:   "TurnstileToken",
	ArrowToken:       "ArrowToken",
	MappingToken:     "MappingToken",
	DotToken:         "DotToken",

	IntConstToken:   "IntConstToken",
	FloatConstToken: "FloatConstToken",
	StringToken:     "StringToken",
	RawStringToken:  "RawStringToken",
	IdentToken:      "IdentToken",

	RawLeadWSToken: "RawLeadWSToken",

	AbstractToken:     "AbstractToken",
	ActionToken:       "ActionToken",
	AggregateToken:    "AggregateToken",
	AsToken:           "AsToken",
	AtomToken:         "AtomToken",
	AttributeToken:    "AttributeToken",
	ConceptToken:      "ConceptToken",
	ConstraintToken:   "ConstraintToken",
	EventToken:        "EventToken",
	ExtendingToken:    "ExtendingToken",
	FinalToken:        "FinalToken",
	FromToken:         "FromToken",
	FunctionToken:     "FunctionToken",
	ImportToken:       "ImportToken",
	IndexToken:        "IndexToken",
	InitialToken:      "InitialToken",
	LinkToken:         "LinkToken",
	LinkPropertyToken: "LinkPropertyToken",
	OnToken:           "OnToken",
	RequiredToken:     "RequiredToken",
	ToToken:           "ToToken",
	ValueToken:        "ValueToken",

	EOFToken: "EOFToken",
}
