package engine

import "unicode"

// freeTransformWindow is how many trailing runes of the live word a
// vowel-shape/consonant-stroke key is allowed to reach back over to find its
// target, regardless of how many characters were typed since (spec.md
// §4.3.3). Kept at 4 per DESIGN.md's Open Question decision.
const freeTransformWindow = 4

// Action is a rewrite instruction the engine hands back to its host: delete
// the trailing DeleteCount runes of the currently displayed word, then
// append Text. A nil Action means the host should simply append the typed
// key itself — nothing in the buffer needs rewriting.
type Action struct {
	DeleteCount int
	Text        string
}

// transformRecord remembers the key that triggered the most recent
// transform and the word state just before it, so that repeating the exact
// same key can undo the transform (the escape protocol, spec.md §4.3.4).
type transformRecord struct {
	key     rune
	preWord []rune
}

// Engine is the per-word buffer and transform dispatcher (C3). One Engine
// tracks exactly one in-progress word at a time; completed words move into
// its History log.
type Engine struct {
	config      EngineConfig
	method      Method
	word        []rune
	foreignMode bool
	lastXform   *transformRecord
	history     *History
}

// NewEngine creates an engine with the given configuration.
func NewEngine(config EngineConfig) *Engine {
	return &Engine{
		config:  config,
		method:  config.Method,
		history: NewHistory(),
	}
}

// SetInputMethod switches the active typing convention. It does not reset
// the in-progress word: this mirrors me4hit-goviet-ime's SetInputMethod,
// which can be called mid-composition from its D-Bus config surface.
func (e *Engine) SetInputMethod(method Method) {
	e.method = method
}

// Reset clears all engine state, including history.
func (e *Engine) Reset() {
	e.word = nil
	e.foreignMode = false
	e.lastXform = nil
	e.history.Reset()
}

// Preedit returns the live word's current rendered text.
func (e *Engine) Preedit() string {
	return string(e.word)
}

// CommitPending flushes the in-progress word into history without adding a
// boundary segment, for non-character keys that end composition (Enter,
// Tab, a modifier combo) rather than a typed boundary character.
func (e *Engine) CommitPending() {
	if len(e.word) > 0 {
		e.history.Commit(e.word)
	}
	e.word = nil
	e.foreignMode = false
	e.lastXform = nil
}

// CancelPending discards the in-progress word without committing it to
// history (Escape).
func (e *Engine) CancelPending() {
	e.word = nil
	e.foreignMode = false
	e.lastXform = nil
}

// Process handles one keystroke and returns the rewrite action the host
// should apply, or nil if the key should just be appended literally.
func (e *Engine) Process(key rune) *Action {
	kind := Classify(key, e.method)

	if kind.Kind == KeyBoundary {
		return e.processBoundary(key)
	}

	if e.foreignMode {
		return e.appendLiteral(key)
	}

	if e.lastXform != nil && foldEqual(key, e.lastXform.key) && isTransformKind(kind.Kind) {
		return e.escape(key)
	}

	switch kind.Kind {
	case KeyTone:
		return e.applyToneKey(key, kind.Tone)
	case KeyShape:
		return e.applyShapeKey(key, kind.Shape)
	case KeyStroke:
		return e.applyStrokeKey(key)
	case KeyHornW:
		return e.applyHornWKey(key)
	case KeyVowel:
		return e.applyVowelKey(key)
	default:
		return e.appendLiteral(key)
	}
}

func isTransformKind(k KeyKind) bool {
	switch k {
	case KeyTone, KeyShape, KeyStroke, KeyHornW, KeyVowel:
		return true
	}
	return false
}

func foldEqual(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// diff computes the minimal (delete_count, text) rewrite from oldWord to
// newWord. Every transform in this file works by mutating a copy of the
// word and handing both versions to diff, rather than hand-computing the
// delete count at each call site.
func diff(oldWord, newWord []rune) *Action {
	common := 0
	for common < len(oldWord) && common < len(newWord) && oldWord[common] == newWord[common] {
		common++
	}
	del := len(oldWord) - common
	text := NormalizeText(string(newWord[common:]))
	if del == 0 && text == "" {
		return nil
	}
	return &Action{DeleteCount: del, Text: text}
}

// appendLiteral appends key to the live word verbatim and clears any
// pending escape opportunity.
func (e *Engine) appendLiteral(key rune) *Action {
	old := append([]rune(nil), e.word...)
	e.word = append(e.word, key)
	e.lastXform = nil
	a := diff(old, e.word)
	if a != nil && a.DeleteCount == 0 && a.Text == string(key) {
		return nil
	}
	return a
}

func (e *Engine) commitTransform(key rune, old, newWord []rune) *Action {
	if string(old) == string(newWord) {
		// Nothing changed (e.g. 'z' on an untoned word): keep the key.
		return e.appendLiteral(key)
	}
	e.lastXform = &transformRecord{key: key, preWord: old}
	e.word = newWord
	e.revalidate()
	return diff(old, newWord)
}

// escape undoes the most recent transform, re-appends key literally, and
// pins the word into foreign mode for its remainder (spec.md §4.3.4).
func (e *Engine) escape(key rune) *Action {
	old := append([]rune(nil), e.word...)
	e.word = append(append([]rune(nil), e.lastXform.preWord...), key)
	e.lastXform = nil
	e.foreignMode = true
	return diff(old, e.word)
}

// revalidate re-checks the live word's syllable shape and flips into
// foreign mode if it is no longer a legal Vietnamese syllable (spec.md
// §4.5). Invalid syllables stop accepting transforms until the next word
// boundary.
func (e *Engine) revalidate() {
	if !e.config.EnableValidation {
		return
	}
	if !ValidateSyllable(locateSyllable(e.word)) {
		e.foreignMode = true
	}
}

func (e *Engine) processBoundary(key rune) *Action {
	if len(e.word) > 0 {
		e.history.Commit(e.word)
	}
	e.history.Boundary([]rune{key})
	e.word = nil
	e.foreignMode = false
	e.lastXform = nil
	return nil
}

// applyToneKey places or clears a tone mark on the syllable's nucleus.
func (e *Engine) applyToneKey(key rune, tone ToneMark) *Action {
	syll := locateSyllable(e.word)
	if len(syll.Nucleus) == 0 {
		return e.appendLiteral(key)
	}
	pos := len(syll.Onset) + PlaceTone(syll.Nucleus, len(syll.Coda) > 0)
	target := e.word[pos]

	newRune, ok := applyTone(stripTone(target), tone, true)
	if !ok {
		return e.appendLiteral(key)
	}

	old := append([]rune(nil), e.word...)
	newWord := append([]rune(nil), e.word...)
	newWord[pos] = newRune

	// With free tone placement off, a tone that would make the syllable
	// illegal is refused outright rather than committed and unwound by
	// revalidate: the key becomes a literal and the word goes foreign.
	if e.config.EnableValidation && !e.config.FreeTonePlacement {
		if !ValidateSyllable(locateSyllable(newWord)) {
			e.foreignMode = true
			return e.appendLiteral(key)
		}
	}

	return e.commitTransform(key, old, newWord)
}

// findTransformTarget scans backward over at most freeTransformWindow
// trailing runes of the word for the first one accepted by pred.
func findTransformTarget(word []rune, pred func(rune) bool) int {
	start := len(word) - freeTransformWindow
	if start < 0 {
		start = 0
	}
	for i := len(word) - 1; i >= start; i-- {
		if pred(word[i]) {
			return i
		}
	}
	return -1
}

// applyShapeKey handles VNI's unambiguous shape keys (6 circumflex, 7 horn,
// 8 breve).
func (e *Engine) applyShapeKey(key rune, shape Shape) *Action {
	if shape == ShapeHorn {
		if a := e.tryCompoundHorn(key); a != nilMarker {
			return a
		}
	}
	idx := findTransformTarget(e.word, func(r rune) bool {
		_, ok := applyShapePreservingTone(r, shape)
		return ok
	})
	if idx < 0 {
		return e.appendLiteral(key)
	}
	newRune, _ := applyShapePreservingTone(e.word[idx], shape)
	old := append([]rune(nil), e.word...)
	newWord := append([]rune(nil), e.word...)
	newWord[idx] = newRune
	return e.commitTransform(key, old, newWord)
}

// nilMarker distinguishes "tryCompoundHorn found nothing" from "it produced
// a (possibly nil-meaning-literal) Action", since *Action itself can
// legitimately be nil on success.
var nilMarker *Action = &Action{}

// tryCompoundHorn implements the compound uo/uoi/uou/uu/ou horn rules:
// checked before falling back to the single-target search. It scans vowel
// pairs backward from the end of the free-transform window and fires on the
// first matching pair (see DESIGN.md Open Question decisions).
// Grounded on me4hit-goviet-ime's vni.go inline "uo -> ươ" detection,
// generalized to the rest of the compound family.
func (e *Engine) tryCompoundHorn(key rune) *Action {
	word := e.word
	start := len(word) - freeTransformWindow
	if start < 0 {
		start = 0
	}
	for i := len(word) - 1; i > start; i-- {
		first, second := vowelFamily[word[i-1]], vowelFamily[word[i]]

		var shapeFirst, shapeSecond bool
		switch {
		case first == 'u' && second == 'o':
			// "uo" (also covers the following-glide spellings uoi, uou):
			// both members take the horn.
			shapeFirst, shapeSecond = true, true
		case first == 'u' && second == 'u':
			// "uu" -> "ưu": only the leading u takes the horn.
			shapeFirst = true
		case first == 'o' && second == 'u':
			// "uou": leave it to the "uo" pair just before, which horns both.
			if i-2 >= start && vowelFamily[word[i-2]] == 'u' {
				continue
			}
			// "ou" -> "ơu": only the o takes the horn.
			shapeFirst = true
		default:
			continue
		}

		newWord := append([]rune(nil), word...)
		ok := true
		if shapeFirst {
			shaped, applied := applyShapePreservingTone(word[i-1], ShapeHorn)
			ok = ok && applied
			newWord[i-1] = shaped
		}
		if shapeSecond {
			shaped, applied := applyShapePreservingTone(word[i], ShapeHorn)
			ok = ok && applied
			newWord[i] = shaped
		}
		if !ok {
			continue
		}
		old := append([]rune(nil), word...)
		return e.commitTransform(key, old, newWord)
	}
	return nilMarker
}

// applyStrokeKey turns the nearest 'd'/'D' within the free-transform window
// into 'đ'/'Đ' (Telex "dd", VNI "9").
func (e *Engine) applyStrokeKey(key rune) *Action {
	idx := findTransformTarget(e.word, func(r rune) bool {
		return r == 'd' || r == 'D'
	})
	if idx < 0 {
		return e.appendLiteral(key)
	}
	old := append([]rune(nil), e.word...)
	newWord := append([]rune(nil), e.word...)
	if e.word[idx] == 'd' {
		newWord[idx] = 'đ'
	} else {
		newWord[idx] = 'Đ'
	}
	return e.commitTransform(key, old, newWord)
}

// applyHornWKey handles Telex's double-duty 'w': breve on a, horn on o/u,
// including the compound uo/uu/ou cases checked first. A "ua" pair has no
// compound rule: the single-target search puts a breve on the a ("muaw"
// gives "muă").
func (e *Engine) applyHornWKey(key rune) *Action {
	if a := e.tryCompoundHorn(key); a != nilMarker {
		return a
	}
	idx := findTransformTarget(e.word, func(r rune) bool {
		_, ok := telexWPreservingTone(r)
		return ok
	})
	if idx < 0 {
		return e.appendLiteral(key)
	}
	newRune, _ := telexWPreservingTone(e.word[idx])
	old := append([]rune(nil), e.word...)
	newWord := append([]rune(nil), e.word...)
	newWord[idx] = newRune
	return e.commitTransform(key, old, newWord)
}

// applyVowelKey handles Telex's double-letter circumflex patterns: aa->â,
// ee->ê, oo->ô. Only the immediately preceding rune counts (no free-transform
// window for this rule — it is a literal double-letter, not a reach-back).
func (e *Engine) applyVowelKey(key rune) *Action {
	if len(e.word) == 0 {
		return e.appendLiteral(key)
	}
	last := e.word[len(e.word)-1]
	if !foldEqual(last, key) {
		return e.appendLiteral(key)
	}
	newRune, ok := applyShapePreservingTone(last, ShapeCircumflex)
	if !ok {
		return e.appendLiteral(key)
	}
	old := append([]rune(nil), e.word...)
	newWord := append([]rune(nil), e.word...)
	newWord[len(newWord)-1] = newRune
	return e.commitTransform(key, old, newWord)
}

// DeleteLastCharacter handles a backspace keystroke. It pops the last rune
// of the live word, or — if the live word is already empty — revives the
// most recently committed word from history across the boundary that
// separated them (spec.md §4.6, §8 scenario 6).
func (e *Engine) DeleteLastCharacter() *Action {
	if len(e.word) > 0 {
		e.word = e.word[:len(e.word)-1]
		e.lastXform = nil
		e.foreignMode = false
		e.revalidate()
		return &Action{DeleteCount: 1}
	}

	word, _, ok := e.history.ReviveLastWord()
	if !ok {
		return &Action{DeleteCount: 0}
	}
	e.word = word
	e.lastXform = nil
	e.foreignMode = !ValidateSyllable(locateSyllable(e.word))
	return &Action{DeleteCount: 1}
}
