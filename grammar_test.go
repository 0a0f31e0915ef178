package peglex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_NoRoot(t *testing.T) {
	_, err := Compile(`greeting ::= "hi"`)
	require.Error(t, err)
	var cerr *CompileError
	require.ErrorAs(t, err, &cerr)
}

func TestCompile_DuplicateRuleName(t *testing.T) {
	_, err := Compile(`
root ::= "a"
root ::= "b"
`)
	require.Error(t, err)
	var cerr *CompileError
	require.ErrorAs(t, err, &cerr)
}

func TestCompile_UnknownRuleReference(t *testing.T) {
	_, err := Compile(`root ::= missing`)
	require.Error(t, err)
	var cerr *CompileError
	require.ErrorAs(t, err, &cerr)
}

func TestCompile_TemplateInstantiatedWithoutArguments(t *testing.T) {
	_, err := Compile(`
list<T> ::= "[" T "]"
root ::= list
`)
	require.Error(t, err)
	var cerr *CompileError
	require.ErrorAs(t, err, &cerr)
}

func TestCompile_TemplateArityMismatch(t *testing.T) {
	_, err := Compile(`
pair<A,B> ::= A B
root ::= pair<"x">
`)
	require.Error(t, err)
}

func TestCompile_MutualRecursionCompiles(t *testing.T) {
	eng := mustCompile(t, `
even ::= "a" odd | <eof>
odd ::= "a" even
root ::= even
`)
	tok, err := eng.Tokenize("aa")
	require.NoError(t, err)
	assert.Equal(t, "aa", tok.MatchedText())

	_, err = eng.Tokenize("aaa")
	require.Error(t, err)
}

func TestCompile_TransparentRuleOmittedFromErrors(t *testing.T) {
	eng := mustCompile(t, `
digit! ::= [0-9]
root ::= digit digit
`)
	_, err := eng.Tokenize("4")
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.NotContains(t, rerr.Message, "digit")
}

func TestCompile_WrapperFlatteningHandlesAliasChains(t *testing.T) {
	eng := mustCompile(t, `
c ::= b
b ::= a
a ::= "z"
root ::= c
`)
	tok, err := eng.Tokenize("z")
	require.NoError(t, err)
	assert.Equal(t, "z", tok.MatchedText())
}

func TestCompile_GroupingAndAlternationPrecedence(t *testing.T) {
	// "A | B C" parses as "A | (B C)", not "(A | B) C".
	eng := mustCompile(t, `root ::= "x" | "y" "z"`)

	tok, err := eng.Tokenize("x")
	require.NoError(t, err)
	assert.Equal(t, "x", tok.MatchedText())

	tok, err = eng.Tokenize("yz")
	require.NoError(t, err)
	assert.Equal(t, "yz", tok.MatchedText())

	_, err = eng.Tokenize("xz")
	require.Error(t, err)
}

func TestCompile_RuleNamesAllowDigitsAndUnderscoreAfterFirstChar(t *testing.T) {
	eng := mustCompile(t, `
digit_1 ::= "1"
root ::= digit_1
`)
	tok, err := eng.Tokenize("1")
	require.NoError(t, err)
	assert.Equal(t, "1", tok.MatchedText())
}

func TestCompile_CharClassDoesNotSupportCompoundRanges(t *testing.T) {
	// [a-zA-Z] is not a compound range; it falls back to a literal
	// character set containing 'a', '-', 'z', 'A', 'Z'.
	eng := mustCompile(t, `root ::= [a-zA-Z]+`)

	tok, err := eng.Tokenize("a-zA")
	require.NoError(t, err)
	assert.Equal(t, "a-zA", tok.MatchedText())

	_, err = eng.Tokenize("b")
	require.Error(t, err, "'b' is not a literal member of the set {a,-,z,A,Z}")
}
