package peglex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// canStartWith must never answer false for a matcher that could actually
// succeed starting at a given byte; a false negative would make the
// Choice/Repeat first-byte caches skip a branch that should have been
// tried. Non-ASCII lead bytes in particular must always be treated
// conservatively (true), since a single byte never tells the whole story
// about a multi-byte rune.
func TestCanStartWith_ConservativeOnNonASCII(t *testing.T) {
	tbl := &table{}

	lit := Matcher{variant: variantLiteral, literal: "café", caseSensitive: true}
	assert.True(t, lit.canStartWith(tbl, 0xC3), "lead byte of a multi-byte rune must stay a candidate")

	set := Matcher{variant: variantCharSet, charset: []rune{'a', 'b', 'c'}, invert: true}
	assert.True(t, set.canStartWith(tbl, 0xC3), "an inverted set must not rule out a byte it cannot decode")

	rng := Matcher{variant: variantCharRange, rangeLo: 'a', rangeHi: 'z', invert: true}
	assert.True(t, rng.canStartWith(tbl, 0xC3))
}

func TestCanStartWith_ASCIILiteralFold(t *testing.T) {
	tbl := &table{}
	lit := Matcher{variant: variantLiteral, literal: "Go", caseSensitive: false}
	assert.True(t, lit.canStartWith(tbl, 'g'))
	assert.True(t, lit.canStartWith(tbl, 'G'))
	assert.False(t, lit.canStartWith(tbl, 'x'))
}

func TestCanStartWith_SequenceSkipsZeroWidthPrefix(t *testing.T) {
	tbl := &table{}
	optional := tbl.add(Matcher{variant: variantRepeat, child: tbl.add(Matcher{variant: variantLiteral, literal: "x", caseSensitive: true}), min: 0, max: 1})
	digit := tbl.add(Matcher{variant: variantCharRange, rangeLo: '0', rangeHi: '9'})
	seq := Matcher{variant: variantSequence, children: []int{optional, digit}}

	assert.True(t, seq.canStartWith(tbl, '5'), "the optional 'x' may match zero width, so a following digit must still be reachable")
	assert.False(t, seq.canStartWith(tbl, 'q'))
}

func TestHasRune_Inversion(t *testing.T) {
	m := Matcher{variant: variantCharSet, charset: []rune{'a', 'e', 'i', 'o', 'u'}}
	assert.True(t, m.hasRune('a'))
	assert.False(t, m.hasRune('b'))

	inv := Matcher{variant: variantCharSet, charset: []rune{'a', 'e', 'i', 'o', 'u'}, invert: true}
	assert.False(t, inv.hasRune('a'))
	assert.True(t, inv.hasRune('b'))
}

func TestRuneEqualFold(t *testing.T) {
	assert.True(t, runeEqualFold('a', 'A'))
	assert.True(t, runeEqualFold('z', 'Z'))
	assert.True(t, runeEqualFold('ß', 'ẞ'))
	assert.False(t, runeEqualFold('a', 'b'))
}
