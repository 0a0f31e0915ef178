package peglex

// evalState carries the per-tokenize state described in spec.md §4.3:
// an immutable handle to the source text and the best-success mark used
// to synthesize a diagnostic when the root match fails.
type evalState struct {
	text string
	tbl  *table
	mark bestMark
}

// bestMark is the "(begin, end, depth, matcher?)" tuple from spec.md
// §7.2, updated by every matcher that succeeds, even partially.
type bestMark struct {
	begin, end int
	depth      int
	matcherID  int
	hasMatcher bool
}

// record applies the four best-success update rules verbatim. It must
// run for every matcher that succeeds over [p,q) at depth d, including
// a Literal's partial-match prefix on an overall failed match.
func (st *evalState) record(p, q, d int, m *Matcher) {
	if q < st.mark.end {
		return
	}
	if q > st.mark.end {
		st.mark.end = q
		st.mark.depth = d
	}
	st.mark.begin = p
	st.mark.end = q
	if m.showInError && d <= st.mark.depth {
		st.mark.matcherID = m.id
		st.mark.hasMatcher = true
		st.mark.depth = d
	}
}

func (st *evalState) newToken(m *Matcher, begin, end int, children []Token) Token {
	return Token{
		matcherID: m.id,
		name:      m.name,
		hasName:   m.hasName,
		text:      st.text,
		begin:     begin,
		end:       end,
		children:  children,
	}
}

// childDepth computes the depth at which m's children run: entering a
// named matcher increments depth for its subcall, per spec.md §4.3.
func childDepth(m *Matcher, depth int) int {
	if m.hasName {
		return depth + 1
	}
	return depth
}

// eval attempts to match the matcher at id against st.text starting at
// pos, at the given depth. On success it returns the tokens to splice
// into the caller's accumulator (shaped by cull-strategy finalization
// for composite variants) together with the position just past the
// match. On failure it returns ok=false; the caller must not use the
// returned tokens or position.
func (st *evalState) eval(id, pos, depth int) (tokens []Token, end int, ok bool) {
	m := st.tbl.at(id)
	switch m.variant {
	case variantLiteral:
		return st.evalLiteral(m, pos, depth)
	case variantCharSet:
		return st.evalCharSet(m, pos, depth)
	case variantCharRange:
		return st.evalCharRange(m, pos, depth)
	case variantSequence:
		return st.evalSequence(m, pos, depth)
	case variantChoice:
		return st.evalChoice(m, pos, depth)
	case variantRepeat:
		return st.evalRepeat(m, pos, depth)
	case variantNegate:
		return st.evalNegate(m, pos, depth)
	case variantReference:
		return st.evalReference(m, pos, depth)
	case variantEof:
		return st.evalEof(m, pos, depth)
	case variantNewline:
		return st.evalNewline(m, pos, depth)
	default:
		panic(errInternal("evaluated a %v matcher at runtime", m.variant))
	}
}

func (st *evalState) evalLiteral(m *Matcher, pos, depth int) ([]Token, int, bool) {
	want := 0
	have := pos
	for want < len(m.literal) {
		if have >= len(st.text) {
			break
		}
		wr, wn := decodeRuneAt(m.literal, want)
		hr, hn := decodeRuneAt(st.text, have)
		matched := wr == hr
		if !matched && !m.caseSensitive {
			matched = runeEqualFold(wr, hr)
		}
		if !matched {
			break
		}
		want += wn
		have += hn
	}
	if want == len(m.literal) {
		st.record(pos, have, depth, m)
		return []Token{st.newToken(m, pos, have, nil)}, have, true
	}
	if have > pos {
		st.record(pos, have, depth, m)
	}
	return nil, pos, false
}

func (st *evalState) evalCharSet(m *Matcher, pos, depth int) ([]Token, int, bool) {
	if pos >= len(st.text) {
		return nil, pos, false
	}
	r, n := decodeRuneAt(st.text, pos)
	if !m.hasRune(r) {
		return nil, pos, false
	}
	end := pos + n
	st.record(pos, end, depth, m)
	return []Token{st.newToken(m, pos, end, nil)}, end, true
}

func (st *evalState) evalCharRange(m *Matcher, pos, depth int) ([]Token, int, bool) {
	if pos >= len(st.text) {
		return nil, pos, false
	}
	r, n := decodeRuneAt(st.text, pos)
	in := r >= m.rangeLo && r <= m.rangeHi
	if in != !m.invert {
		return nil, pos, false
	}
	end := pos + n
	st.record(pos, end, depth, m)
	return []Token{st.newToken(m, pos, end, nil)}, end, true
}

func (st *evalState) evalSequence(m *Matcher, pos, depth int) ([]Token, int, bool) {
	produced, cur, ok := st.evalSequenceChildren(m, pos, depth)
	if !ok {
		return nil, pos, false
	}
	st.record(pos, cur, depth, m)
	return finalizeCull(st, m, pos, cur, produced), cur, true
}

// evalSequenceChildren runs m's children and reports the tokens they
// produced before cull-strategy finalization is applied.
// tokenizeCompositeRoot uses this directly for a Sequence-bodied root rule, so that the
// top-level Tokenize contract is independent of whatever cull strategy
// the caller has attached to the root's own name.
func (st *evalState) evalSequenceChildren(m *Matcher, pos, depth int) ([]Token, int, bool) {
	d := childDepth(m, depth)
	var produced []Token
	cur := pos
	for _, c := range m.children {
		toks, next, ok := st.eval(c, cur, d)
		if !ok {
			return nil, pos, false
		}
		produced = append(produced, toks...)
		cur = next
	}
	return produced, cur, true
}

func (st *evalState) evalChoice(m *Matcher, pos, depth int) ([]Token, int, bool) {
	produced, next, ok := st.evalChoiceBody(m, pos, depth)
	if !ok {
		return nil, pos, false
	}
	st.record(pos, next, depth, m)
	return finalizeCull(st, m, pos, next, produced), next, true
}

// evalChoiceBody picks the first matching candidate and reports its
// tokens before cull-strategy finalization is applied; see
// evalSequenceChildren.
func (st *evalState) evalChoiceBody(m *Matcher, pos, depth int) ([]Token, int, bool) {
	d := childDepth(m, depth)
	candidates := m.children
	if m.hasFirstByteCache && pos < len(st.text) {
		candidates = m.firstByteChoice[st.text[pos]]
	} else if m.hasFirstByteCache {
		candidates = nil // at EOF, nothing with a non-empty first byte can win; fall through to empty-matching children below
		for _, c := range m.children {
			if st.tbl.at(c).minLength(st.tbl) == 0 {
				candidates = append(candidates, c)
			}
		}
	}
	for _, c := range candidates {
		if toks, next, ok := st.eval(c, pos, d); ok {
			return toks, next, true
		}
	}
	return nil, pos, false
}

func (st *evalState) evalRepeat(m *Matcher, pos, depth int) ([]Token, int, bool) {
	produced, cur, ok := st.evalRepeatChildren(m, pos, depth)
	if !ok {
		return nil, pos, false
	}
	st.record(pos, cur, depth, m)
	return finalizeCull(st, m, pos, cur, produced), cur, true
}

// evalRepeatChildren runs m's repetitions and reports the tokens they
// produced before cull-strategy finalization is applied; see
// evalSequenceChildren.
func (st *evalState) evalRepeatChildren(m *Matcher, pos, depth int) ([]Token, int, bool) {
	d := childDepth(m, depth)
	var produced []Token
	cur := pos
	count := 0
	for m.max < 0 || count < m.max {
		if m.hasFirstByteMask {
			if cur >= len(st.text) {
				if st.tbl.at(m.child).minLength(st.tbl) > 0 {
					break
				}
			} else if !m.firstByteOK[st.text[cur]] {
				break
			}
		}
		toks, next, ok := st.eval(m.child, cur, d)
		if !ok {
			break
		}
		produced = append(produced, toks...)
		zeroWidth := next == cur
		cur = next
		count++
		if zeroWidth {
			break
		}
	}
	if count < m.min {
		return nil, pos, false
	}
	return produced, cur, true
}

func (st *evalState) evalNegate(m *Matcher, pos, depth int) ([]Token, int, bool) {
	d := childDepth(m, depth)
	// The target is a veto probe, not a candidate parse path: whatever it
	// matches or partially matches is about to be discarded regardless of
	// outcome, so it must not feed the furthest-match mark that the rest
	// of the engine uses to report where tokenizing actually got to.
	probe := &evalState{text: st.text, tbl: st.tbl}
	_, _, ok := probe.eval(m.target, pos, d)
	if ok {
		return nil, pos, false
	}
	st.record(pos, pos, depth, m)
	return nil, pos, true
}

func (st *evalState) evalReference(m *Matcher, pos, depth int) ([]Token, int, bool) {
	d := childDepth(m, depth)
	return st.eval(m.target, pos, d)
}

func (st *evalState) evalEof(m *Matcher, pos, depth int) ([]Token, int, bool) {
	if pos != len(st.text) {
		return nil, pos, false
	}
	st.record(pos, pos, depth, m)
	return nil, pos, true
}

func (st *evalState) evalNewline(m *Matcher, pos, depth int) ([]Token, int, bool) {
	if pos < len(st.text) && st.text[pos] == '\r' {
		end := pos + 1
		if end < len(st.text) && st.text[end] == '\n' {
			end++
		}
		st.record(pos, end, depth, m)
		return []Token{st.newToken(m, pos, end, nil)}, end, true
	}
	if pos < len(st.text) && st.text[pos] == '\n' {
		end := pos + 1
		st.record(pos, end, depth, m)
		return []Token{st.newToken(m, pos, end, nil)}, end, true
	}
	return nil, pos, false
}
