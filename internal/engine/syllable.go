package engine

import "unicode"

// Syllable is the onset/nucleus/coda decomposition of a word's rendered
// runes, recomputed from the buffer on every keystroke that changes it.
// Grounded on me4hit-goviet-ime's composition.go Syllable walk, trimmed to
// the fields the dispatcher and tone placer actually need.
type Syllable struct {
	Onset   []rune
	Nucleus []rune
	Coda    []rune
}

// isVowelRune reports whether r is one of the twelve Vietnamese vowel
// letters in any shape (bare, breve, circumflex, horn) and any tone.
func isVowelRune(r rune) bool {
	base, _, has := splitVowelAndTone(r)
	if has {
		r = base
	}
	_, ok := vowelFamily[r]
	return ok
}

// isConsonantRune reports whether r is a Vietnamese consonant letter,
// including the đ/Đ stroke.
func isConsonantRune(r rune) bool {
	switch unicode.ToLower(r) {
	case 'b', 'c', 'd', 'đ', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x':
		return true
	}
	return false
}

// locateSyllable decomposes rendered word runes into onset/nucleus/coda.
// It is a straight three-pass walk (consonant run, vowel run, consonant
// run) in the same spirit as the teacher's updateSyllableStructure, but
// over already-rendered runes instead of raw keystrokes — the dispatcher in
// engine.go is responsible for turning keystrokes into rendered runes first.
func locateSyllable(word []rune) Syllable {
	i := 0
	var onset []rune
	for i < len(word) && !isVowelRune(word[i]) {
		if !isConsonantRune(word[i]) {
			break
		}
		onset = append(onset, word[i])
		i++
	}

	// qu/gi glides: the u in qu and the i in gi belong to the consonant
	// cluster, not the vowel nucleus, so tone placement never lands on
	// them ("quá" not "qúa", "già" not "gìa").
	if len(onset) == 1 && i < len(word) {
		switch unicode.ToLower(onset[0]) {
		case 'q':
			if unicode.ToLower(word[i]) == 'u' {
				onset = append(onset, word[i])
				i++
			}
		case 'g':
			if unicode.ToLower(word[i]) == 'i' && i+1 < len(word) && isVowelRune(word[i+1]) {
				onset = append(onset, word[i])
				i++
			}
		}
	}

	var nucleus []rune
	for i < len(word) && isVowelRune(word[i]) {
		nucleus = append(nucleus, word[i])
		i++
	}

	var coda []rune
	for i < len(word) && isConsonantRune(word[i]) {
		coda = append(coda, word[i])
		i++
	}

	return Syllable{Onset: onset, Nucleus: nucleus, Coda: coda}
}

// familyString lowercases and collapses a rune slice to its vowel-family
// spelling (â/ă -> a, ê -> e, ô/ơ -> o, ư -> u), used to compare a nucleus
// against the legalNuclei/legalFinals tables regardless of shape or tone.
// Tone marks are stripped first: legalNuclei/legalFinals classify by vowel
// family alone, and nuclei are almost always toned by the time this runs
// (revalidate fires right after a tone keystroke commits).
func familyString(runes []rune) string {
	buf := make([]rune, 0, len(runes))
	for _, r := range runes {
		base := stripTone(r)
		if fam, ok := vowelFamily[base]; ok {
			buf = append(buf, rune(fam))
			continue
		}
		buf = append(buf, unicode.ToLower(base))
	}
	return string(buf)
}

// ValidateSyllable reports whether the onset/nucleus/coda combination is a
// legal Vietnamese syllable shape. An illegal shape means the word should
// drop into foreign mode: no more transforms apply to it (spec.md §4.5).
// A word with no vowel yet is accepted when its consonants form a legal
// onset (e.g. "đ" right after a stroke transform).
func ValidateSyllable(s Syllable) bool {
	if len(s.Nucleus) == 0 {
		return len(s.Coda) == 0 && (len(s.Onset) == 0 || legalOnsets[familyString(s.Onset)])
	}
	if !legalNuclei[familyString(s.Nucleus)] {
		return false
	}
	if len(s.Coda) > 0 && !legalFinals[familyString(s.Coda)] {
		return false
	}
	if len(s.Onset) > 0 && !legalOnsets[familyString(s.Onset)] {
		return false
	}
	return true
}
