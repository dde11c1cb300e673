package engine

import "golang.org/x/text/unicode/norm"

// NormalizeText runs s through NFC normalization before it leaves the
// engine. Vietnamese precomposed Unicode has one canonical composed form
// per syllable, but apply_tone/apply_shape can reach certain combining
// sequences via more than one composition path; NFC collapses them to the
// single form any downstream consumer expects (see SPEC_FULL.md Domain
// Stack).
func NormalizeText(s string) string {
	return norm.NFC.String(s)
}
