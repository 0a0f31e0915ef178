package peglex

// Engine is a compiled grammar: a matcher table, a root rule, and the
// rule-name index, together with the mutable cull configuration applied
// on top of the table's defaults. Build one with Compile. An Engine is
// safe for concurrent use by multiple goroutines calling Tokenize or
// TokenizeWith, provided no configuration method is called concurrently
// with those (spec.md §5).
type Engine struct {
	tbl         *table
	root        int
	ids         map[string]int
	retainEmpty bool
}

func newEngine(tbl *table, root int, ids map[string]int) *Engine {
	return &Engine{tbl: tbl, root: root, ids: ids}
}

// SetRetainEmpty controls whether empty-range tokens survive in the
// output tree; see spec.md §4.4. Default false.
func (e *Engine) SetRetainEmpty(retain bool) {
	e.retainEmpty = retain
}

// SetUnnamedCull applies strategy to every matcher that was not
// introduced by a named production.
func (e *Engine) SetUnnamedCull(strategy CullStrategy) {
	for i := range e.tbl.matchers {
		m := &e.tbl.matchers[i]
		if !m.hasName {
			m.cull = strategy
		}
	}
}

// AddCullForNames applies strategy to every matcher introduced by one
// of the given rule names. Names the grammar does not define are
// ignored, on the assumption that callers configure cull strategies
// against a grammar they just compiled from a known set of rule names.
func (e *Engine) AddCullForNames(names []string, strategy CullStrategy) {
	for _, name := range names {
		if id, ok := e.ids[name]; ok {
			e.tbl.at(id).cull = strategy
		}
	}
}

// Tokenize applies the grammar's declared root rule to input.
func (e *Engine) Tokenize(input string) (Token, error) {
	return e.tokenizeFrom(e.root, input)
}

// TokenizeWith applies the named rule, instead of the declared root, to
// input.
func (e *Engine) TokenizeWith(ruleName, input string) (Token, error) {
	id, ok := e.ids[ruleName]
	if !ok {
		return Token{}, &UnknownRuleError{Name: ruleName}
	}
	return e.tokenizeFrom(id, input)
}

func (e *Engine) tokenizeFrom(rootID int, input string) (Token, error) {
	st := &evalState{text: input, tbl: e.tbl}
	m := e.tbl.at(rootID)

	switch m.variant {
	case variantSequence, variantChoice, variantRepeat:
		return e.tokenizeCompositeRoot(st, m, input)
	default:
		toks, end, ok := st.eval(rootID, 0, 0)
		if ok && end == len(input) && len(toks) > 0 {
			root, kept := pruneEmptyTokens(e.tbl, toks[0], e.retainEmpty)
			if kept {
				return root, nil
			}
		}
		return Token{}, e.synthesizeError(st, input)
	}
}

// tokenizeCompositeRoot evaluates a Sequence/Choice/Repeat-bodied root
// rule without applying whatever cull strategy the caller may have
// attached to its name via AddCullForNames: the top-level
// Tokenize/TokenizeWith contract always hands back exactly one Token
// spanning the whole input (spec.md §6.2), independent of that
// configuration. Without this, a root-level CullDeleteAll would discard
// every produced token and make a fully successful, input-consuming
// parse look like a failure, and a root-level CullLiftChildren would
// surface only the first of several sibling tokens, silently truncating
// the reported match. The root's own emptiness is likewise never
// grounds for dropping the whole result; only its children go through
// the usual retain-empty pruning.
func (e *Engine) tokenizeCompositeRoot(st *evalState, m *Matcher, input string) (Token, error) {
	var children []Token
	var end int
	var ok bool
	switch m.variant {
	case variantSequence:
		children, end, ok = st.evalSequenceChildren(m, 0, 0)
	case variantChoice:
		children, end, ok = st.evalChoiceBody(m, 0, 0)
	case variantRepeat:
		children, end, ok = st.evalRepeatChildren(m, 0, 0)
	}
	if ok {
		st.record(0, end, 0, m)
	}
	if ok && end == len(input) {
		pruned := make([]Token, 0, len(children))
		for _, c := range children {
			if kept, keepOK := pruneEmptyTokens(e.tbl, c, e.retainEmpty); keepOK {
				pruned = append(pruned, kept)
			}
		}
		return st.newToken(m, 0, end, pruned), nil
	}
	return Token{}, e.synthesizeError(st, input)
}

func (e *Engine) synthesizeError(st *evalState, input string) error {
	calc := &positionCalculator{text: input}
	pos := calc.calculate(st.mark.end)
	if st.mark.hasMatcher {
		return newRuntimeError(pos, "expected %s", e.tbl.at(st.mark.matcherID).name)
	}
	return newRuntimeError(pos, "unexpected input")
}
