package engine

import "unicode"

// splitVowelAndTone separates a possibly-toned vowel rune into its base
// letter and tone, or reports ToneNone if ch carries no tone at all.
func splitVowelAndTone(ch rune) (rune, ToneMark, bool) {
	if e, ok := tonedToBase[ch]; ok && e.tone != ToneNone {
		return e.base, e.tone, true
	}
	return ch, ToneNone, false
}

// applyTone renders base with the given tone. hasTone false means "no tone",
// returning base unchanged (matching the teacher's "ToneNone is a no-op").
func applyTone(base rune, tone ToneMark, hasTone bool) (rune, bool) {
	if !hasTone || tone == ToneNone {
		return base, true
	}
	tones, ok := baseToToned[base]
	if !ok {
		return 0, false
	}
	ch, ok := tones[tone]
	return ch, ok
}

// applyShape applies a circumflex/horn/breve modifier to a vowel, ignoring
// any tone the vowel currently carries (callers needing tone preservation go
// through applyShapePreservingTone instead). Mirrors
// original_source/src/diacritics.rs apply_shape: circumflex also accepts an
// already-breve'd 'ă' (re-shaping to 'â'), and horn also accepts an
// already-circumflexed 'ô' (re-shaping to 'ơ') — the VNI override cases.
func applyShape(base rune, shape Shape) (rune, bool) {
	lower := unicode.ToLower(base)
	upper := unicode.IsUpper(base)
	pick := func(lo, up rune) (rune, bool) {
		if upper {
			return up, true
		}
		return lo, true
	}
	switch shape {
	case ShapeCircumflex:
		switch lower {
		case 'a', 'ă':
			return pick('â', 'Â')
		case 'e':
			return pick('ê', 'Ê')
		case 'o', 'ơ':
			return pick('ô', 'Ô')
		}
	case ShapeHorn:
		switch lower {
		case 'o', 'ô':
			return pick('ơ', 'Ơ')
		case 'u':
			return pick('ư', 'Ư')
		}
	case ShapeBreve:
		switch lower {
		case 'a', 'â':
			return pick('ă', 'Ă')
		}
	}
	return 0, false
}

// applyShapePreservingTone applies shape to ch, keeping any tone ch already
// carries (e.g. 'á' + circumflex gives 'ấ', still carrying sắc).
func applyShapePreservingTone(ch rune, shape Shape) (rune, bool) {
	base, tone, hasTone := splitVowelAndTone(ch)
	shaped, ok := applyShape(base, shape)
	if !ok {
		return 0, false
	}
	return applyTone(shaped, tone, hasTone)
}

// escapeShapePreservingTone removes shape from ch if ch currently carries it,
// keeping any tone. Returns ok=false if ch does not carry that shape.
func escapeShapePreservingTone(ch rune, shape Shape) (rune, bool) {
	base, tone, hasTone := splitVowelAndTone(ch)
	lower := unicode.ToLower(base)
	upper := unicode.IsUpper(base)
	pick := func(lo, up rune) (rune, bool) {
		if upper {
			return up, true
		}
		return lo, true
	}
	var unshaped rune
	var ok bool
	switch shape {
	case ShapeCircumflex:
		switch lower {
		case 'â':
			unshaped, ok = pick('a', 'A')
		case 'ê':
			unshaped, ok = pick('e', 'E')
		case 'ô':
			unshaped, ok = pick('o', 'O')
		}
	case ShapeHorn:
		switch lower {
		case 'ơ':
			unshaped, ok = pick('o', 'O')
		case 'ư':
			unshaped, ok = pick('u', 'U')
		}
	case ShapeBreve:
		switch lower {
		case 'ă':
			unshaped, ok = pick('a', 'A')
		}
	}
	if !ok {
		return 0, false
	}
	return applyTone(unshaped, tone, hasTone)
}

// telexWPreservingTone implements Telex's double-duty 'w' key: it applies a
// breve to 'a', a horn to 'o'/'ô'/'u'. An already-breve'd 'ă' or
// already-horn'd 'ư' with no tone is accepted and returned unchanged; with a
// tone already applied it is rejected, so the tone is not silently lost.
func telexWPreservingTone(ch rune) (rune, bool) {
	base, tone, hasTone := splitVowelAndTone(ch)
	lower := unicode.ToLower(base)
	upper := unicode.IsUpper(base)
	pick := func(lo, up rune) (rune, bool) {
		if upper {
			return up, true
		}
		return lo, true
	}
	var shaped rune
	var ok bool
	switch lower {
	case 'a':
		shaped, ok = pick('ă', 'Ă')
	case 'ă':
		if hasTone && tone != ToneNone {
			return 0, false
		}
		shaped, ok = pick('ă', 'Ă')
	case 'o', 'ô':
		shaped, ok = pick('ơ', 'Ơ')
	case 'u':
		shaped, ok = pick('ư', 'Ư')
	case 'ư':
		if hasTone && tone != ToneNone {
			return 0, false
		}
		shaped, ok = pick('ư', 'Ư')
	default:
		return 0, false
	}
	if !ok {
		return 0, false
	}
	return applyTone(shaped, tone, hasTone)
}

// stripTone removes any tone from ch, returning the bare base letter.
func stripTone(ch rune) rune {
	base, _, _ := splitVowelAndTone(ch)
	return base
}
