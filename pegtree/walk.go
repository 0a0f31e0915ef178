// Package pegtree provides tree-walking helpers over peglex.Token trees
// that only need the public Token API, kept separate so a consumer
// building on top of an Engine's output doesn't need anything from the
// peglex package beyond Token itself.
package pegtree

import (
	"iter"

	"github.com/parsekit/peglex"
)

// Walk yields root and every descendant in pre-order (a node before any
// of its children, children in source order), using an explicit stack
// rather than native recursion so the depth of the yielded tree does
// not bound the depth of the Go call stack.
func Walk(root peglex.Token) iter.Seq[peglex.Token] {
	return func(yield func(peglex.Token) bool) {
		stack := []peglex.Token{root}
		for len(stack) > 0 {
			n := len(stack) - 1
			tok := stack[n]
			stack = stack[:n]
			if !yield(tok) {
				return
			}
			children := tok.Children()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

// Find returns the first node in a pre-order walk of root for which
// pred reports true.
func Find(root peglex.Token, pred func(peglex.Token) bool) (peglex.Token, bool) {
	for tok := range Walk(root) {
		if pred(tok) {
			return tok, true
		}
	}
	return peglex.Token{}, false
}

// Named collects every node in a pre-order walk of root whose rule name
// equals name, regardless of nesting depth.
func Named(root peglex.Token, name string) []peglex.Token {
	var out []peglex.Token
	for tok := range Walk(root) {
		if n, ok := tok.Name(); ok && n == name {
			out = append(out, tok)
		}
	}
	return out
}
