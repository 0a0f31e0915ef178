package pegtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsekit/peglex"
	"github.com/parsekit/peglex/pegtree"
)

func compileTree(t *testing.T, grammar, input string) peglex.Token {
	t.Helper()
	eng, err := peglex.Compile(grammar)
	require.NoError(t, err)
	tok, err := eng.Tokenize(input)
	require.NoError(t, err)
	return tok
}

func TestWalk_PreOrder(t *testing.T) {
	tok := compileTree(t, `
word ::= [a-z]+
root ::= word " " word
`, "go lang")

	var names []string
	for n := range pegtree.Walk(tok) {
		if name, ok := n.Name(); ok {
			names = append(names, name)
		}
	}
	assert.Equal(t, []string{"root", "word", "word"}, names)
}

func TestFind_FirstMatch(t *testing.T) {
	tok := compileTree(t, `
word ::= [a-z]+
root ::= word " " word
`, "go lang")

	found, ok := pegtree.Find(tok, func(n peglex.Token) bool {
		return n.MatchedText() == "lang"
	})
	require.True(t, ok)
	assert.Equal(t, "lang", found.MatchedText())
}

func TestFind_NoMatch(t *testing.T) {
	tok := compileTree(t, `root ::= "a"`, "a")

	_, ok := pegtree.Find(tok, func(n peglex.Token) bool {
		return n.MatchedText() == "nope"
	})
	assert.False(t, ok)
}

func TestNamed_CollectsAcrossDepths(t *testing.T) {
	tok := compileTree(t, `
digit ::= [0-9]
pair ::= digit digit
root ::= pair pair
`, "1234")

	digits := pegtree.Named(tok, "digit")
	require.Len(t, digits, 4)
	for i, d := range digits {
		assert.Equal(t, string(rune('1'+i)), d.MatchedText())
	}
}
