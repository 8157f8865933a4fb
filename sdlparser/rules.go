package sdlparser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

type LexerState int

const (
	// StateKeep is a pseudo-state used in rule declarations: the rule does
	// not switch the lexer state.
	StateKeep LexerState = iota
	StateWSSensitive
	StateWSInsensitive
	StateRawString
)

// matchFn reports the byte length of a match of the rule's pattern starting
// at src[pos:], or -1 if the rule does not match there. Matchers are allowed
// to inspect text before pos; the line anchors and the after-turnstile rules
// of the raw-string state need that context.
type matchFn func(src string, pos int) int

// Rule is one entry of a state's ordered rule list. At a given position the
// first rule (in declaration order) that matches wins; this is NOT
// longest-match. Keyword rules are declared before the identifier rule so
// keyword spellings take priority, and the two float rules rely on the same
// ordering for overlapping inputs.
type Rule struct {
	Type      TokenType
	NextState LexerState
	Match     matchFn
}

// stateRules is the compiled rule table: one ordered rule list per state.
type stateRules map[LexerState][]Rule

func atLineStart(src string, pos int) bool {
	return pos == 0 || src[pos-1] == '\n'
}

func afterTurnstile(src string, pos int) bool {
	return pos >= 2 && src[pos-2:pos] == ":="
}

// lineWS is whitespace except newline, [^\S\n] in the rule patterns.
func lineWS(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func identStart(r rune) bool {
	return r == '_' || r == '$' || xid.Start(r)
}

func identContinue(r rune) bool {
	return r == '$' || xid.Continue(r)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// lineEnd returns the offset of the next newline at or after pos, or
// len(src).
func lineEnd(src string, pos int) int {
	if i := strings.IndexByte(src[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(src)
}

// matchLiteral matches the exact text lit.
func matchLiteral(lit string) matchFn {
	return func(src string, pos int) int {
		if strings.HasPrefix(src[pos:], lit) {
			return len(lit)
		}
		return -1
	}
}

// matchKeyword matches the exact spelling, provided it is not a prefix of a
// longer identifier.
func matchKeyword(spelling string) matchFn {
	return func(src string, pos int) int {
		if !strings.HasPrefix(src[pos:], spelling) {
			return -1
		}
		r, _ := utf8.DecodeRuneInString(src[pos+len(spelling):])
		if r != utf8.RuneError && identContinue(r) {
			return -1
		}
		return len(spelling)
	}
}

// matchComment matches # up to (not including) the end of line.
func matchComment(src string, pos int) int {
	if pos >= len(src) || src[pos] != '#' {
		return -1
	}
	return lineEnd(src, pos) - pos
}

// matchWS matches a run of non-newline whitespace.
func matchWS(src string, pos int) int {
	i := pos
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		if !lineWS(r) {
			break
		}
		i += w
	}
	if i == pos {
		return -1
	}
	return i - pos
}

func matchNewline(src string, pos int) int {
	if pos < len(src) && src[pos] == '\n' {
		return 1
	}
	return -1
}

// matchMapping matches the link cardinality markers: two characters, each
// '1' or '*'. Declared before the integer rule, so "11" is a mapping, not a
// number.
func matchMapping(src string, pos int) int {
	if pos+2 > len(src) {
		return -1
	}
	for i := pos; i < pos+2; i++ {
		if src[i] != '1' && src[i] != '*' {
			return -1
		}
	}
	return 2
}

// matchIntConst matches digits not followed by [eE.] or another digit
// (which would make it the head of a float).
func matchIntConst(src string, pos int) int {
	i := pos
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i == pos {
		return -1
	}
	if i < len(src) {
		switch src[i] {
		case 'e', 'E', '.':
			return -1
		}
	}
	return i - pos
}

// matchExponent matches [eE][+-]?digits, where the digit run may contain
// underscore separators but must end with a digit. Returns -1 if pos is not
// at a well-formed exponent.
func matchExponent(src string, pos int) int {
	i := pos
	if i >= len(src) || (src[i] != 'e' && src[i] != 'E') {
		return -1
	}
	i++
	if i < len(src) && (src[i] == '+' || src[i] == '-') {
		i++
	}
	digits := i
	for i < len(src) && (isDigit(src[i]) || src[i] == '_') {
		i++
	}
	// trailing underscores are not part of the number
	for i > digits && src[i-1] == '_' {
		i--
	}
	if i == digits || !isDigit(src[digits]) || !isDigit(src[i-1]) {
		return -1
	}
	return i - pos
}

// matchFloatExp matches the exponent form of a float: "12", "12.", "12.5"
// or ".5" mantissas followed by a mandatory exponent.
func matchFloatExp(src string, pos int) int {
	i := pos
	if i < len(src) && isDigit(src[i]) {
		for i < len(src) && isDigit(src[i]) {
			i++
		}
		if i < len(src) && src[i] == '.' {
			i++
			for i < len(src) && isDigit(src[i]) {
				i++
			}
		}
	} else if i+1 < len(src) && src[i] == '.' && isDigit(src[i+1]) {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	} else {
		return -1
	}
	n := matchExponent(src, i)
	if n < 0 {
		return -1
	}
	return i + n - pos
}

// matchFloat matches the plain float forms: digits "." digits* (rejecting a
// second dot directly after the first, so "1..2" matches no number rule)
// and "." digits.
func matchFloat(src string, pos int) int {
	i := pos
	if i < len(src) && isDigit(src[i]) {
		for i < len(src) && isDigit(src[i]) {
			i++
		}
		if i >= len(src) || src[i] != '.' {
			return -1
		}
		i++
		if i < len(src) && src[i] == '.' {
			return -1
		}
		for i < len(src) && isDigit(src[i]) {
			i++
		}
		return i - pos
	}
	if i+1 < len(src) && src[i] == '.' && isDigit(src[i+1]) {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
		return i - pos
	}
	return -1
}

// dollarQuoteTag returns the length of a dollar-quote delimiter ($, an
// optional tag, $) at pos, or -1. Tag characters are letters, underscore or
// bytes in the Latin-1 supplement range, each optionally followed by digits.
func dollarQuoteTag(src string, pos int) int {
	i := pos
	if i >= len(src) || src[i] != '$' {
		return -1
	}
	i++
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		isTagStart := r == '_' ||
			(r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
			(r >= 0x80 && r <= 0xFF)
		if !isTagStart {
			break
		}
		i += w
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i >= len(src) || src[i] != '$' {
		return -1
	}
	return i + 1 - pos
}

// matchString matches a single-line string literal delimited by single
// quotes or by a dollar quote; the closing delimiter is the nearest
// occurrence of the opening one on the same line.
func matchString(src string, pos int) int {
	if pos >= len(src) {
		return -1
	}
	var open string
	switch src[pos] {
	case '\'':
		open = "'"
	case '$':
		n := dollarQuoteTag(src, pos)
		if n < 0 {
			return -1
		}
		open = src[pos : pos+n]
	default:
		return -1
	}
	rest := src[pos+len(open) : lineEnd(src, pos)]
	end := strings.Index(rest, open)
	if end < 0 {
		return -1
	}
	return len(open) + end + len(open)
}

func matchIdent(src string, pos int) int {
	if pos >= len(src) {
		return -1
	}
	r, w := utf8.DecodeRuneInString(src[pos:])
	if !identStart(r) {
		return -1
	}
	i := pos + w
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		if !identContinue(r) {
			break
		}
		i += w
	}
	return i - pos
}

// matchRawNewline matches the whitespace run directly after a turnstile, up
// to and including the last newline of the run.
func matchRawNewline(src string, pos int) int {
	if !afterTurnstile(src, pos) {
		return -1
	}
	i := pos
	lastNL := -1
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		if !unicode.IsSpace(r) {
			break
		}
		if r == '\n' {
			lastNL = i
		}
		i += w
	}
	if lastNL < 0 {
		return -1
	}
	return lastNL + 1 - pos
}

// matchRawOneLine matches a raw string given on the same line as the
// turnstile, through the end of that line.
func matchRawOneLine(src string, pos int) int {
	if !afterTurnstile(src, pos) || pos >= len(src) || src[pos] == '\n' {
		return -1
	}
	return lineEnd(src, pos) - pos
}

// matchRawBlankLine matches a line holding only whitespace, including its
// newline. Blank lines inside a raw block never participate in the
// indentation checks.
func matchRawBlankLine(src string, pos int) int {
	if !atLineStart(src, pos) {
		return -1
	}
	i := pos
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		if !lineWS(r) {
			break
		}
		i += w
	}
	if i >= len(src) || src[i] != '\n' {
		return -1
	}
	return i + 1 - pos
}

// matchRawLeadWS matches the leading whitespace of a raw-block line.
func matchRawLeadWS(src string, pos int) int {
	if !atLineStart(src, pos) {
		return -1
	}
	return matchWS(src, pos)
}

// matchRawLine is the raw-string catch-all: the rest of the line up to but
// not including its newline (the newline then matches here on its own), or
// through end of input.
func matchRawLine(src string, pos int) int {
	if pos >= len(src) {
		return -1
	}
	if src[pos] == '\n' {
		return 1
	}
	return lineEnd(src, pos) - pos
}

// compileStates builds the per-state ordered rule lists from a keyword
// table. The relative order of the non-keyword rules mirrors the grammar's
// priorities and must not be changed: mapping before integer, the exponent
// float form before the plain one, double-colon and turnstile before colon.
func compileStates(keywords KeywordTable) stateRules {
	spellings := make([]string, 0, len(keywords))
	for spelling := range keywords {
		spellings = append(spellings, spelling)
	}
	sort.Strings(spellings)

	common := make([]Rule, 0, len(spellings)+21)
	for _, spelling := range spellings {
		common = append(common, Rule{keywords[spelling], StateKeep, matchKeyword(spelling)})
	}
	common = append(common,
		Rule{CommentToken, StateKeep, matchComment},
		Rule{WhitespaceToken, StateKeep, matchWS},
		Rule{NewlineToken, StateKeep, matchNewline},
		Rule{LParenToken, StateWSInsensitive, matchLiteral("(")},
		Rule{RParenToken, StateWSSensitive, matchLiteral(")")},
		Rule{LSBracketToken, StateWSInsensitive, matchLiteral("[")},
		Rule{RSBracketToken, StateWSSensitive, matchLiteral("]")},
		Rule{LCBracketToken, StateWSInsensitive, matchLiteral("{")},
		Rule{RCBracketToken, StateWSSensitive, matchLiteral("}")},
		Rule{CommaToken, StateKeep, matchLiteral(",")},
		Rule{DoubleColonToken, StateKeep, matchLiteral("::")},
		Rule{TurnstileToken, StateRawString, matchLiteral(":=")},
		Rule{ColonToken, StateKeep, matchLiteral(":")},
		Rule{ArrowToken, StateKeep, matchLiteral("->")},
		Rule{MappingToken, StateKeep, matchMapping},
		Rule{IntConstToken, StateKeep, matchIntConst},
		Rule{FloatConstToken, StateKeep, matchFloatExp},
		Rule{FloatConstToken, StateKeep, matchFloat},
		Rule{DotToken, StateKeep, matchLiteral(".")},
		Rule{StringToken, StateKeep, matchString},
		Rule{IdentToken, StateKeep, matchIdent},
	)

	raw := []Rule{
		{NewlineToken, StateKeep, matchRawNewline},
		{RawStringToken, StateWSSensitive, matchRawOneLine},
		{RawStringToken, StateKeep, matchRawBlankLine},
		{RawLeadWSToken, StateKeep, matchRawLeadWS},
		{RawStringToken, StateKeep, matchRawLine},
	}

	return stateRules{
		StateWSSensitive:   common,
		StateWSInsensitive: common,
		StateRawString:     raw,
	}
}
