package peglex

// table is the flat, append-only matcher store built by the grammar
// compiler. Every Matcher's children/target/child fields are indices
// into this slice; there is no owning pointer between matchers, which
// is what lets grammar rules reference each other (including forward
// and mutually cyclic references) without constructing a Go reference
// cycle.
type table struct {
	matchers []Matcher
}

func (t *table) at(id int) *Matcher {
	return &t.matchers[id]
}

func (t *table) len() int {
	return len(t.matchers)
}

// reserve appends n Placeholder matchers and returns the id of the
// first one; reserved ids are assigned contiguously during the grammar
// pre-scan so that forward references resolve before any rule body is
// compiled.
func (t *table) reserve(n int) int {
	first := len(t.matchers)
	for i := 0; i < n; i++ {
		t.matchers = append(t.matchers, Matcher{id: first + i, variant: variantPlaceholder})
	}
	return first
}

// add appends a new anonymous matcher and returns its id.
func (t *table) add(m Matcher) int {
	m.id = len(t.matchers)
	t.matchers = append(t.matchers, m)
	return m.id
}

// replace overwrites the matcher at id in place, preserving id.
func (t *table) replace(id int, m Matcher) {
	m.id = id
	t.matchers[id] = m
}

// truncateLast drops the most recently appended matcher, provided it is
// indeed the last one. Used by the rule compiler to reclaim the
// temporary id a rule's top-level body expression was built under once
// its contents have been copied into the rule's reserved slot.
func (t *table) truncateLast(id int) {
	if id == len(t.matchers)-1 {
		t.matchers = t.matchers[:id]
	}
}
