package peglex

import "slices"

// CullStrategy controls how a successfully-matched subtree is rewritten
// before it is attached to its parent. The zero value is None.
type CullStrategy struct {
	kind cullKind
	n    int // operand for LiftAtMost
}

type cullKind int

const (
	cullNone cullKind = iota
	cullDeleteAll
	cullDeleteChildren
	cullLiftChildren
	cullLiftAtMost
)

var (
	// CullNone keeps a matched subtree as-is: a parent token enclosing
	// its produced children.
	CullNone = CullStrategy{kind: cullNone}

	// CullDeleteAll discards the parent token and all of its produced
	// children.
	CullDeleteAll = CullStrategy{kind: cullDeleteAll}

	// CullDeleteChildren discards the produced children but keeps a
	// childless parent token.
	CullDeleteChildren = CullStrategy{kind: cullDeleteChildren}

	// CullLiftChildren removes the parent; its children are spliced
	// directly into the grandparent's child list.
	CullLiftChildren = CullStrategy{kind: cullLiftChildren}
)

// CullLiftAtMost behaves like CullLiftChildren when at most n children
// were produced, otherwise it behaves like CullNone.
func CullLiftAtMost(n int) CullStrategy {
	return CullStrategy{kind: cullLiftAtMost, n: n}
}

// matcherVariant is the closed set of matcher node kinds described in
// spec.md §3. Exactly one of the typed fields on Matcher is meaningful
// for a given variant.
type matcherVariant int

const (
	variantLiteral matcherVariant = iota
	variantCharSet
	variantCharRange
	variantSequence
	variantChoice
	variantRepeat
	variantNegate
	variantReference
	variantEof
	variantNewline
	variantPlaceholder
)

// Matcher is a single node of the compiled grammar graph. Child/target
// fields are indices into the owning Engine's matcher table; there are
// no owning pointers, which is what lets grammar rules reference each
// other (including forward and cyclic references) without forming a
// reference cycle at the Go object-graph level.
type Matcher struct {
	id          int
	name        string // "" if this matcher was not introduced by a named production
	hasName     bool
	showInError bool
	cull        CullStrategy
	variant     matcherVariant

	// Literal
	literal       string
	caseSensitive bool

	// CharSet
	charset []rune
	invert  bool

	// CharRange
	rangeLo, rangeHi rune

	// Sequence / Choice
	children []int

	// Choice: precomputed per-byte candidate subsets, built after
	// wrapper flattening. firstByteChoice[b] lists, in order, the
	// matcher ids from children whose matcher can-start-with byte b.
	firstByteChoice [256][]int
	hasFirstByteCache bool

	// Repeat
	child       int
	min, max    int
	firstByteOK [256]bool
	hasFirstByteMask bool

	// Negate / Reference
	target int
}

// ID reports the matcher's stable integer identifier.
func (m *Matcher) ID() int { return m.id }

// Name reports the rule name that introduced this matcher, if any.
func (m *Matcher) Name() (string, bool) { return m.name, m.hasName }

// canStartWith reports whether this matcher can consume a non-empty
// prefix whose first byte is b. It is a conservative predicate: for
// variants where the answer isn't readily knowable from local
// information alone (e.g. a Choice still being compiled) it is safe to
// answer true, since this is purely a performance optimization and the
// full match attempt always remains the ground truth.
func (m *Matcher) canStartWith(tbl *table, b byte) bool {
	switch m.variant {
	case variantLiteral:
		if len(m.literal) == 0 {
			return true
		}
		c := m.literal[0]
		if c >= 0x80 || b >= 0x80 {
			return true // first byte of a multi-byte rune; let eval decide for real
		}
		if !m.caseSensitive {
			return foldByte(c) == foldByte(b)
		}
		return c == b
	case variantCharSet:
		return m.charSetCanStartWith(b)
	case variantCharRange:
		return m.rangeCanStartWith(b)
	case variantSequence:
		for _, c := range m.children {
			child := tbl.at(c)
			if !child.canStartWith(tbl, b) {
				return false
			}
			if child.minLength(tbl) > 0 {
				return true
			}
		}
		return true
	case variantChoice:
		for _, c := range m.children {
			if tbl.at(c).canStartWith(tbl, b) {
				return true
			}
		}
		return false
	case variantRepeat:
		if m.min == 0 {
			return true
		}
		return tbl.at(m.child).canStartWith(tbl, b)
	case variantNegate:
		return true
	case variantReference:
		return tbl.at(m.target).canStartWith(tbl, b)
	case variantEof, variantNewline:
		return true
	default:
		return true
	}
}

// minLength is a coarse lower bound used by canStartWith's Sequence case
// and by the evaluator's end-of-input checks on Choice and Repeat; it
// does not need to be exact, but it is zero for any matcher that can
// match zero width.
func (m *Matcher) minLength(tbl *table) int {
	switch m.variant {
	case variantLiteral:
		return len(m.literal)
	case variantCharSet, variantCharRange:
		return 1
	case variantRepeat:
		if m.min > 0 {
			return tbl.at(m.child).minLength(tbl)
		}
		return 0
	case variantNegate, variantEof:
		return 0
	case variantNewline:
		return 1
	case variantReference:
		return tbl.at(m.target).minLength(tbl)
	default:
		return 0
	}
}

func (m *Matcher) charSetCanStartWith(b byte) bool {
	if b >= 0x80 {
		return true // first byte of a multi-byte rune, inverted or not; let eval decide for real
	}
	return m.hasRune(rune(b)) == !m.invert
}

func (m *Matcher) rangeCanStartWith(b byte) bool {
	if b >= 0x80 {
		return true
	}
	in := rune(b) >= m.rangeLo && rune(b) <= m.rangeHi
	return in == !m.invert
}

func (m *Matcher) hasRune(r rune) bool {
	_, found := slices.BinarySearch(m.charset, r)
	ok := found
	if m.invert {
		ok = !ok
	}
	return ok
}

func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
