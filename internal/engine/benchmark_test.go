package engine

import "testing"

// Target: <1ms latency per keystroke, matching me4hit-goviet-ime's own
// stated benchmark target.

func BenchmarkProcessLiteralKey(b *testing.B) {
	e := NewEngine(DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Process('t')
		if i%10 == 0 {
			e.Reset()
		}
	}
}

func BenchmarkProcessVietnameseWord(b *testing.B) {
	// "dược" = d u o c w j
	e := NewEngine(DefaultConfig())
	keys := []rune{'d', 'u', 'o', 'c', 'w', 'j'}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			e.Process(k)
		}
		e.Reset()
	}
}

func BenchmarkLocateSyllable(b *testing.B) {
	word := []rune("nghieng")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		locateSyllable(word)
	}
}

func BenchmarkValidateSyllable(b *testing.B) {
	syll := Syllable{Onset: []rune("ngh"), Nucleus: []rune("ie"), Coda: []rune("ng")}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ValidateSyllable(syll)
	}
}

func BenchmarkPreedit(b *testing.B) {
	e := NewEngine(DefaultConfig())
	for _, k := range []rune{'d', 'u', 'o', 'c', 'w', 'j'} {
		e.Process(k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Preedit()
	}
}

func BenchmarkDeleteLastCharacter(b *testing.B) {
	e := NewEngine(DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range []rune{'n', 'g', 'h', 'i', 'e', 'n', 'g'} {
			e.Process(k)
		}
		for j := 0; j < 7; j++ {
			e.DeleteLastCharacter()
		}
	}
}
