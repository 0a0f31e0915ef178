package peglex

import "iter"

// Token is a node of the parse tree produced by Engine.Tokenize. It
// carries the source range it was matched from and, for variants that
// keep them, an ordered list of children shaped by cull-strategy
// finalization (see cull.go).
type Token struct {
	matcherID int
	name      string
	hasName   bool
	text      string
	begin     int
	end       int
	children  []Token
}

// Name reports the rule name that produced this token, if the matcher
// that produced it was a named production.
func (t Token) Name() (string, bool) {
	return t.name, t.hasName
}

// MatcherID reports the id of the matcher that produced this token.
func (t Token) MatcherID() int {
	return t.matcherID
}

// Begin reports the byte offset, into the tokenized input, where this
// token's range starts.
func (t Token) Begin() int {
	return t.begin
}

// End reports the byte offset, into the tokenized input, just past this
// token's range.
func (t Token) End() int {
	return t.end
}

// MatchedText returns the slice of the original input this token spans.
func (t Token) MatchedText() string {
	return t.text[t.begin:t.end]
}

// Children returns this token's children in source order. The returned
// slice must not be mutated.
func (t Token) Children() []Token {
	return t.children
}

// ChildrenNamed lazily yields this token's direct children whose rule
// name equals name.
func (t Token) ChildrenNamed(name string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for _, c := range t.children {
			if c.hasName && c.name == name {
				if !yield(c) {
					return
				}
			}
		}
	}
}
