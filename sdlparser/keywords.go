package sdlparser

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// KeywordTable maps exact keyword spellings to their token kinds. It is
// configuration consumed by compileStates; the generated keyword rules are
// always tried before the generic identifier rule so keyword spellings win.
type KeywordTable map[string]TokenType

var defaultKeywords = KeywordTable{
	"abstract":     AbstractToken,
	"action":       ActionToken,
	"aggregate":    AggregateToken,
	"as":           AsToken,
	"atom":         AtomToken,
	"attribute":    AttributeToken,
	"concept":      ConceptToken,
	"constraint":   ConstraintToken,
	"event":        EventToken,
	"extending":    ExtendingToken,
	"final":        FinalToken,
	"from":         FromToken,
	"function":     FunctionToken,
	"import":       ImportToken,
	"index":        IndexToken,
	"initial":      InitialToken,
	"link":         LinkToken,
	"linkproperty": LinkPropertyToken,
	"on":           OnToken,
	"required":     RequiredToken,
	"to":           ToToken,
	"value":        ValueToken,
}

// Keywords is a keyword table compiled into the per-state rule lists. One
// compiled value can back any number of Lexers, so callers lexing many
// sources with the same table pay compilation once.
type Keywords struct {
	states stateRules
}

// CompileKeywords compiles a keyword table for reuse across source units.
func CompileKeywords(table KeywordTable) *Keywords {
	return &Keywords{states: compileStates(table)}
}

// New returns a Lexer over input using the compiled keyword table.
func (k *Keywords) New(file FileRef, input string) *Lexer {
	return newLexer(file, input, k.states)
}

// DefaultKeywords returns a copy of the built-in schema keyword table.
func DefaultKeywords() KeywordTable {
	result := make(KeywordTable, len(defaultKeywords))
	for spelling, tt := range defaultKeywords {
		result[spelling] = tt
	}
	return result
}

// LoadKeywordTable reads a YAML document mapping keyword spellings to token
// kind names (as printed by TokenType.String, e.g. "AbstractToken") and
// returns the corresponding table. Unknown kind names are an error.
func LoadKeywordTable(r io.Reader) (KeywordTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var byName map[string]string
	if err := yaml.Unmarshal(raw, &byName); err != nil {
		return nil, err
	}

	kindByDescription := make(map[string]TokenType, len(tokenToDescription))
	for tt, desc := range tokenToDescription {
		kindByDescription[desc] = tt
	}

	result := make(KeywordTable, len(byName))
	for spelling, kindName := range byName {
		tt, ok := kindByDescription[kindName]
		if !ok {
			return nil, fmt.Errorf("keyword table: %q maps to unknown token kind %q", spelling, kindName)
		}
		result[spelling] = tt
	}
	return result, nil
}
