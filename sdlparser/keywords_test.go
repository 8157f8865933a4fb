package sdlparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeywordTable(t *testing.T) {
	table, err := LoadKeywordTable(strings.NewReader(`
concept: ConceptToken
module: IdentToken
shape: LinkToken
`))
	require.NoError(t, err)
	assert.Equal(t, KeywordTable{
		"concept": ConceptToken,
		"module":  IdentToken,
		"shape":   LinkToken,
	}, table)
}

func TestLoadKeywordTableUnknownKind(t *testing.T) {
	_, err := LoadKeywordTable(strings.NewReader("concept: NoSuchToken\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchToken")
}

func TestCustomKeywordTable(t *testing.T) {
	table := KeywordTable{"shape": ConceptToken}
	tokens, err := NewWithKeywords("test.esdl", "shape concept\n", table).Lex()
	require.NoError(t, err)
	assert.Equal(t, []TokenType{
		ConceptToken, IdentToken, NLToken,
	}, types(significant(tokens)))
}

func TestCompiledKeywordsReuse(t *testing.T) {
	compiled := CompileKeywords(KeywordTable{"shape": ConceptToken})
	for _, input := range []string{"shape a\n", "shape b\n"} {
		tokens, err := compiled.New("test.esdl", input).Lex()
		require.NoError(t, err)
		assert.Equal(t, []TokenType{
			ConceptToken, IdentToken, NLToken,
		}, types(significant(tokens)))
	}
}

func TestDefaultKeywordsIsACopy(t *testing.T) {
	table := DefaultKeywords()
	table["concept"] = IdentToken
	tok, err := New("test.esdl", "concept").Next()
	require.NoError(t, err)
	assert.Equal(t, ConceptToken, tok.Type)
}
