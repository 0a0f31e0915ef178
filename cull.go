package peglex

// finalizeCull rewrites a successfully-matched Sequence, Choice, or
// Repeat's produced children according to m's CullStrategy, per
// spec.md §4.3. Repeat is included alongside Sequence/Choice — the
// spec's "(and at process_children sites)" aside covers it, and
// end-to-end scenario 1 (`root ::= "hello"+` producing a root token
// wrapping its repetitions) only holds if Repeat goes through the same
// finalization.
func finalizeCull(st *evalState, m *Matcher, begin, end int, produced []Token) []Token {
	switch m.cull.kind {
	case cullDeleteAll:
		return nil
	case cullDeleteChildren:
		return []Token{st.newToken(m, begin, end, nil)}
	case cullLiftChildren:
		return produced
	case cullLiftAtMost:
		if len(produced) > m.cull.n {
			return []Token{st.newToken(m, begin, end, produced)}
		}
		return produced
	default: // cullNone
		return []Token{st.newToken(m, begin, end, produced)}
	}
}

// pruneEmptyTokens implements the retain-empty rule from spec.md §4.4:
// once the tree is fully built, any token with an empty source range
// whose matcher's cull strategy is not explicitly None is dropped,
// unless the engine was configured to retain empty tokens. Children are
// pruned before their parent is tested; the parent's own test looks only
// at its source range, so losing children never makes it empty.
func pruneEmptyTokens(tbl *table, tok Token, retainEmpty bool) (Token, bool) {
	if len(tok.children) > 0 {
		kept := make([]Token, 0, len(tok.children))
		for _, c := range tok.children {
			if pruned, ok := pruneEmptyTokens(tbl, c, retainEmpty); ok {
				kept = append(kept, pruned)
			}
		}
		tok.children = kept
	}
	if !retainEmpty && tok.end == tok.begin {
		if tbl.at(tok.matcherID).cull.kind != cullNone {
			return Token{}, false
		}
	}
	return tok, true
}
