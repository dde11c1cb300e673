package engine

// Static Vietnamese diacritic tables (component C2 of the design). These are
// plain data: every lookup elsewhere in the package goes through the pure
// functions in diacritics.go, never through this file directly.

// ToneMark identifies one of the five Vietnamese tone marks, or their absence.
type ToneMark int

const (
	ToneNone  ToneMark = iota // thanh ngang
	ToneSac                   // sắc (á)
	ToneHuyen                 // huyền (à)
	ToneHoi                   // hỏi (ả)
	ToneNga                   // ngã (ã)
	ToneNang                  // nặng (ạ)
)

// Shape identifies one of the three vowel-shape modifiers.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeCircumflex
	ShapeHorn
	ShapeBreve
)

// baseToToned maps every shaped vowel base (including the unshaped a/e/i/o/u/y)
// to its six tone variants. This is the same data me4hit-goviet-ime's
// unicode.go carries under the name unicodeVowelTones.
var baseToToned = map[rune]map[ToneMark]rune{
	'a': {ToneNone: 'a', ToneSac: 'á', ToneHuyen: 'à', ToneHoi: 'ả', ToneNga: 'ã', ToneNang: 'ạ'},
	'A': {ToneNone: 'A', ToneSac: 'Á', ToneHuyen: 'À', ToneHoi: 'Ả', ToneNga: 'Ã', ToneNang: 'Ạ'},
	'ă': {ToneNone: 'ă', ToneSac: 'ắ', ToneHuyen: 'ằ', ToneHoi: 'ẳ', ToneNga: 'ẵ', ToneNang: 'ặ'},
	'Ă': {ToneNone: 'Ă', ToneSac: 'Ắ', ToneHuyen: 'Ằ', ToneHoi: 'Ẳ', ToneNga: 'Ẵ', ToneNang: 'Ặ'},
	'â': {ToneNone: 'â', ToneSac: 'ấ', ToneHuyen: 'ầ', ToneHoi: 'ẩ', ToneNga: 'ẫ', ToneNang: 'ậ'},
	'Â': {ToneNone: 'Â', ToneSac: 'Ấ', ToneHuyen: 'Ầ', ToneHoi: 'Ẩ', ToneNga: 'Ẫ', ToneNang: 'Ậ'},
	'e': {ToneNone: 'e', ToneSac: 'é', ToneHuyen: 'è', ToneHoi: 'ẻ', ToneNga: 'ẽ', ToneNang: 'ẹ'},
	'E': {ToneNone: 'E', ToneSac: 'É', ToneHuyen: 'È', ToneHoi: 'Ẻ', ToneNga: 'Ẽ', ToneNang: 'Ẹ'},
	'ê': {ToneNone: 'ê', ToneSac: 'ế', ToneHuyen: 'ề', ToneHoi: 'ể', ToneNga: 'ễ', ToneNang: 'ệ'},
	'Ê': {ToneNone: 'Ê', ToneSac: 'Ế', ToneHuyen: 'Ề', ToneHoi: 'Ể', ToneNga: 'Ễ', ToneNang: 'Ệ'},
	'i': {ToneNone: 'i', ToneSac: 'í', ToneHuyen: 'ì', ToneHoi: 'ỉ', ToneNga: 'ĩ', ToneNang: 'ị'},
	'I': {ToneNone: 'I', ToneSac: 'Í', ToneHuyen: 'Ì', ToneHoi: 'Ỉ', ToneNga: 'Ĩ', ToneNang: 'Ị'},
	'o': {ToneNone: 'o', ToneSac: 'ó', ToneHuyen: 'ò', ToneHoi: 'ỏ', ToneNga: 'õ', ToneNang: 'ọ'},
	'O': {ToneNone: 'O', ToneSac: 'Ó', ToneHuyen: 'Ò', ToneHoi: 'Ỏ', ToneNga: 'Õ', ToneNang: 'Ọ'},
	'ô': {ToneNone: 'ô', ToneSac: 'ố', ToneHuyen: 'ồ', ToneHoi: 'ổ', ToneNga: 'ỗ', ToneNang: 'ộ'},
	'Ô': {ToneNone: 'Ô', ToneSac: 'Ố', ToneHuyen: 'Ồ', ToneHoi: 'Ổ', ToneNga: 'Ỗ', ToneNang: 'Ộ'},
	'ơ': {ToneNone: 'ơ', ToneSac: 'ớ', ToneHuyen: 'ờ', ToneHoi: 'ở', ToneNga: 'ỡ', ToneNang: 'ợ'},
	'Ơ': {ToneNone: 'Ơ', ToneSac: 'Ớ', ToneHuyen: 'Ờ', ToneHoi: 'Ở', ToneNga: 'Ỡ', ToneNang: 'Ợ'},
	'u': {ToneNone: 'u', ToneSac: 'ú', ToneHuyen: 'ù', ToneHoi: 'ủ', ToneNga: 'ũ', ToneNang: 'ụ'},
	'U': {ToneNone: 'U', ToneSac: 'Ú', ToneHuyen: 'Ù', ToneHoi: 'Ủ', ToneNga: 'Ũ', ToneNang: 'Ụ'},
	'ư': {ToneNone: 'ư', ToneSac: 'ứ', ToneHuyen: 'ừ', ToneHoi: 'ử', ToneNga: 'ữ', ToneNang: 'ự'},
	'Ư': {ToneNone: 'Ư', ToneSac: 'Ứ', ToneHuyen: 'Ừ', ToneHoi: 'Ử', ToneNga: 'Ữ', ToneNang: 'Ự'},
	'y': {ToneNone: 'y', ToneSac: 'ý', ToneHuyen: 'ỳ', ToneHoi: 'ỷ', ToneNga: 'ỹ', ToneNang: 'ỵ'},
	'Y': {ToneNone: 'Y', ToneSac: 'Ý', ToneHuyen: 'Ỳ', ToneHoi: 'Ỷ', ToneNga: 'Ỹ', ToneNang: 'Ỵ'},
}

// tonedToBase is the inverse of baseToToned, built once at init.
var tonedToBase = func() map[rune]tonedEntry {
	m := make(map[rune]tonedEntry, 24*6)
	for base, tones := range baseToToned {
		for tone, ch := range tones {
			m[ch] = tonedEntry{base: base, tone: tone}
		}
	}
	return m
}()

type tonedEntry struct {
	base rune
	tone ToneMark
}

// shapeOf reports the shape already carried by a shaped base vowel, and its
// unshaped root. Used by escapeShapePreservingTone and by the cluster/
// compound-rule logic to tell "plain a" from "breve'd ă" etc.
var shapeOf = map[rune]struct {
	root  rune
	shape Shape
}{
	'â': {'a', ShapeCircumflex}, 'Â': {'A', ShapeCircumflex},
	'ă': {'a', ShapeBreve}, 'Ă': {'A', ShapeBreve},
	'ê': {'e', ShapeCircumflex}, 'Ê': {'E', ShapeCircumflex},
	'ô': {'o', ShapeCircumflex}, 'Ô': {'O', ShapeCircumflex},
	'ơ': {'o', ShapeHorn}, 'Ơ': {'O', ShapeHorn},
	'ư': {'u', ShapeHorn}, 'Ư': {'U', ShapeHorn},
}

// vowelFamily maps any base letter (shaped or not, upper or lower) to the
// underlying Latin vowel letter it is a variant of: ă,â -> a; ê -> e; ô,ơ -> o;
// ư -> u. Used for cluster pattern matching (ua, uo, uoi, ...).
var vowelFamily = map[rune]byte{
	'a': 'a', 'A': 'a', 'ă': 'a', 'Ă': 'a', 'â': 'a', 'Â': 'a',
	'e': 'e', 'E': 'e', 'ê': 'e', 'Ê': 'e',
	'i': 'i', 'I': 'i',
	'o': 'o', 'O': 'o', 'ô': 'o', 'Ô': 'o', 'ơ': 'o', 'Ơ': 'o',
	'u': 'u', 'U': 'u', 'ư': 'u', 'Ư': 'u',
	'y': 'y', 'Y': 'y',
}

// legalNuclei is the fixed set of permitted Vietnamese vocalic nuclei
// (spec.md §4.5), lower-cased, vowel-family-normalized spelling (so 'ă', 'â'
// etc. already count as 'a' for this comparison via familyString).
var legalNuclei = map[string]bool{
	"a": true, "ai": true, "ao": true, "au": true, "ay": true,
	"e": true, "eu": true,
	"i": true, "ia": true, "iu": true, "ie": true, "ieu": true,
	"o": true, "oa": true, "oe": true, "oi": true, "ou": true,
	"u": true, "ua": true, "ui": true, "uy": true, "uya": true, "uyu": true, "uu": true,
	"uo": true, "uoi": true, "uou": true, "uye": true,
	"y": true, "ye": true, "yeu": true,
}

// legalFinals is the fixed set of true Vietnamese final consonants
// (phụ âm cuối). Vowel glides (i, y, o, u) are nucleus members, not codas,
// and are intentionally excluded here (see DESIGN.md syllable.go entry).
var legalFinals = map[string]bool{
	"c": true, "ch": true, "m": true, "n": true,
	"ng": true, "nh": true, "p": true, "t": true,
}

// legalOnsets is the fixed set of Vietnamese initial consonant clusters.
var legalOnsets = map[string]bool{
	"b": true, "c": true, "d": true, "đ": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,
	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,
	"ngh": true,
}
