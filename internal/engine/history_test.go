package engine

import "testing"

func TestHistoryLimitedToRecentWords(t *testing.T) {
	h := NewHistory()
	words := []string{"mot", "hai", "ba", "bon", "nam"}
	for _, w := range words {
		h.Commit([]rune(w))
		h.Boundary([]rune(" "))
	}

	kept := 0
	for _, s := range h.segments {
		if s.kind == segWord {
			kept++
		}
	}
	if kept != historyCapacity {
		t.Errorf("history kept %d word segments, want %d", kept, historyCapacity)
	}
}

func TestHistoryReviveLastWord(t *testing.T) {
	h := NewHistory()
	h.Commit([]rune("chan"))
	h.Boundary([]rune(" "))

	word, boundary, ok := h.ReviveLastWord()
	if !ok {
		t.Fatal("ReviveLastWord() ok = false, want true")
	}
	if string(word) != "chan" {
		t.Errorf("revived word = %q, want %q", word, "chan")
	}
	if string(boundary) != " " {
		t.Errorf("revived boundary = %q, want %q", boundary, " ")
	}
	if !h.Empty() {
		t.Errorf("history should be empty after reviving its only word")
	}
}

func TestHistoryReviveWithNoWord(t *testing.T) {
	h := NewHistory()
	if _, _, ok := h.ReviveLastWord(); ok {
		t.Error("ReviveLastWord() on empty history should fail")
	}
}
