package peglex

// flattenWrappers implements the "wrapper flattening" pass from
// spec.md §4.2/§9: every Reference whose target is itself a Reference
// is collapsed, by repeated dereference, to the first non-Reference
// matcher reached, and every other matcher's child-referencing fields
// are rewritten to point at that final target directly. This guarantees
// one-hop lookup during evaluation; Reference itself survives as a
// variant (a named rule can legitimately just be an alias for another
// rule), only chains of it are removed.
func flattenWrappers(tbl *table) {
	n := tbl.len()
	resolved := make([]int, n)
	done := make([]bool, n)

	var resolve func(id int) int
	resolve = func(id int) int {
		if done[id] {
			return resolved[id]
		}
		cur := id
		seen := map[int]bool{id: true}
		for tbl.at(cur).variant == variantReference {
			next := tbl.at(cur).target
			if seen[next] {
				break // pure reference cycle; nothing further to collapse
			}
			seen[next] = true
			cur = next
		}
		resolved[id] = cur
		done[id] = true
		return cur
	}
	for i := 0; i < n; i++ {
		resolve(i)
	}
	for i := 0; i < n; i++ {
		m := tbl.at(i)
		switch m.variant {
		case variantSequence, variantChoice:
			for j, c := range m.children {
				m.children[j] = resolved[c]
			}
		case variantRepeat:
			m.child = resolved[m.child]
		case variantNegate:
			m.target = resolved[m.target]
		case variantReference:
			m.target = resolved[m.target]
		}
	}
}

// buildFirstCharCaches computes the per-byte Choice candidate subsets
// and Repeat continuation masks described in spec.md §4.1. It must run
// after flattenWrappers so the canStartWith queries it performs see the
// final, one-hop matcher graph.
func buildFirstCharCaches(tbl *table) {
	n := tbl.len()
	for i := 0; i < n; i++ {
		m := tbl.at(i)
		switch m.variant {
		case variantChoice:
			for b := 0; b < 256; b++ {
				var subset []int
				for _, c := range m.children {
					if tbl.at(c).canStartWith(tbl, byte(b)) {
						subset = append(subset, c)
					}
				}
				m.firstByteChoice[b] = subset
			}
			m.hasFirstByteCache = true
		case variantRepeat:
			for b := 0; b < 256; b++ {
				m.firstByteOK[b] = tbl.at(m.child).canStartWith(tbl, byte(b))
			}
			m.hasFirstByteMask = true
		}
	}
}
