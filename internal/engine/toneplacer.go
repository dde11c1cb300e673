package engine

// hasNucleusPriorityShape reports whether r is one of the vowel letters that
// always carry the tone regardless of position in the cluster: â ă ê ô ơ ư,
// with or without a tone. A vowel shape implies the syllable's nucleus was
// deliberately built around it (spec.md §4.4).
func hasNucleusPriorityShape(r rune) bool {
	_, ok := shapeOf[stripTone(r)]
	return ok
}

// PlaceTone chooses the index within cluster that should carry the tone
// mark, as a pure function of the vowel cluster and whether a final
// consonant follows it. This implements spec.md §4.4's three-tier rule
// directly rather than me4hit-goviet-ime's own findTonePosition heuristic
// (see DESIGN.md for why that heuristic is wrong for the with-coda
// two-vowel case).
func PlaceTone(cluster []rune, hasCoda bool) int {
	n := len(cluster)
	if n <= 1 {
		return 0
	}

	// If more than one nucleus-priority vowel appears (the ươ digraph), the
	// later one carries the tone (ngươi -> người, tone on ơ not ư).
	last := -1
	for i, r := range cluster {
		if hasNucleusPriorityShape(r) {
			last = i
		}
	}
	if last >= 0 {
		return last
	}

	if hasCoda {
		return n - 1
	}

	switch n {
	case 2:
		return 0
	default:
		return 1
	}
}
