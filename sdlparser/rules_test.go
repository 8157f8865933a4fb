package sdlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDollarQuoteTag(t *testing.T) {
	assert.Equal(t, 2, dollarQuoteTag("$$", 0))
	assert.Equal(t, 5, dollarQuoteTag("$foo$", 0))
	assert.Equal(t, 7, dollarQuoteTag("$tag12$", 0))
	assert.Equal(t, 4, dollarQuoteTag("$_1$", 0))
	assert.Equal(t, -1, dollarQuoteTag("$1$", 0)) // tag cannot start with a digit
	assert.Equal(t, -1, dollarQuoteTag("$foo", 0))
	assert.Equal(t, -1, dollarQuoteTag("x$$", 0))
}

func TestMatchExponent(t *testing.T) {
	assert.Equal(t, 2, matchExponent("e5", 0))
	assert.Equal(t, 3, matchExponent("E-2", 0))
	assert.Equal(t, 6, matchExponent("e1_000", 0))
	// trailing separators are not part of the exponent
	assert.Equal(t, 2, matchExponent("e5_", 0))
	assert.Equal(t, -1, matchExponent("e_5", 0))
	assert.Equal(t, -1, matchExponent("e", 0))
	assert.Equal(t, -1, matchExponent("x5", 0))
}

func TestMatchRawNewline(t *testing.T) {
	// only directly after a turnstile, and it swallows every blank line of
	// the whitespace run
	assert.Equal(t, -1, matchRawNewline("x \n", 1))
	src := ":=\n   \n  x"
	assert.Equal(t, 5, matchRawNewline(src, 2)) // "\n   \n"
	assert.Equal(t, -1, matchRawNewline(":= 1", 2))
}

func TestFirstMatchWinsOrder(t *testing.T) {
	states := compileStates(defaultKeywords)
	rules := states[StateWSSensitive]

	index := func(tt TokenType, from int) int {
		for i := from; i < len(rules); i++ {
			if rules[i].Type == tt {
				return i
			}
		}
		return -1
	}

	// the orderings the grammar depends on
	assert.Less(t, index(AbstractToken, 0), index(IdentToken, 0))
	assert.Less(t, index(DoubleColonToken, 0), index(ColonToken, 0))
	assert.Less(t, index(TurnstileToken, 0), index(ColonToken, 0))
	assert.Less(t, index(MappingToken, 0), index(IntConstToken, 0))
	assert.Less(t, index(IntConstToken, 0), index(FloatConstToken, 0))

	// both float rules survive, exponent form first
	first := index(FloatConstToken, 0)
	assert.NotEqual(t, -1, index(FloatConstToken, first+1))
	assert.Less(t, first, index(DotToken, 0))
}
