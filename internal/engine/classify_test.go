package engine

import "testing"

func TestClassifyTelex(t *testing.T) {
	tests := []struct {
		name string
		ch   rune
		kind KeyKind
		tone ToneMark
	}{
		{"s is sac", 's', KeyTone, ToneSac},
		{"f is huyen", 'f', KeyTone, ToneHuyen},
		{"r is hoi", 'r', KeyTone, ToneHoi},
		{"x is nga", 'x', KeyTone, ToneNga},
		{"j is nang", 'j', KeyTone, ToneNang},
		{"z clears tone", 'z', KeyTone, ToneNone},
		{"w is horn/breve", 'w', KeyHornW, ToneNone},
		{"d is stroke", 'd', KeyStroke, ToneNone},
		{"a is vowel double-letter candidate", 'a', KeyVowel, ToneNone},
		{"e is vowel double-letter candidate", 'e', KeyVowel, ToneNone},
		{"o is vowel double-letter candidate", 'o', KeyVowel, ToneNone},
		{"t is literal", 't', KeyLiteral, ToneNone},
		{"space is boundary", ' ', KeyBoundary, ToneNone},
		{"digit is boundary in telex", '3', KeyBoundary, ToneNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.ch, MethodTelex)
			if c.Kind != tt.kind || (tt.kind == KeyTone && c.Tone != tt.tone) {
				t.Errorf("Classify(%q, Telex) = %+v, want kind %v tone %v", tt.ch, c, tt.kind, tt.tone)
			}
		})
	}
}

func TestClassifyVNI(t *testing.T) {
	tests := []struct {
		name  string
		ch    rune
		kind  KeyKind
		tone  ToneMark
		shape Shape
	}{
		{"1 is sac", '1', KeyTone, ToneSac, ShapeNone},
		{"2 is huyen", '2', KeyTone, ToneHuyen, ShapeNone},
		{"0 clears tone", '0', KeyTone, ToneNone, ShapeNone},
		{"6 is circumflex", '6', KeyShape, ToneNone, ShapeCircumflex},
		{"7 is horn", '7', KeyShape, ToneNone, ShapeHorn},
		{"8 is breve", '8', KeyShape, ToneNone, ShapeBreve},
		{"9 is stroke", '9', KeyStroke, ToneNone, ShapeNone},
		{"digit is not boundary in vni", '3', KeyTone, ToneHoi, ShapeNone},
		{"t is literal", 't', KeyLiteral, ToneNone, ShapeNone},
		{"space is boundary", ' ', KeyBoundary, ToneNone, ShapeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.ch, MethodVNI)
			if c.Kind != tt.kind {
				t.Errorf("Classify(%q, VNI).Kind = %v, want %v", tt.ch, c.Kind, tt.kind)
			}
			if tt.kind == KeyTone && c.Tone != tt.tone {
				t.Errorf("Classify(%q, VNI).Tone = %v, want %v", tt.ch, c.Tone, tt.tone)
			}
			if tt.kind == KeyShape && c.Shape != tt.shape {
				t.Errorf("Classify(%q, VNI).Shape = %v, want %v", tt.ch, c.Shape, tt.shape)
			}
		})
	}
}
