package engine

import "testing"

func TestSessionTypeAndSpace(t *testing.T) {
	s := NewSession(DefaultConfig())
	for _, k := range "chaof" {
		s.ProcessKey(KeyEvent{KeySym: uint32(k)})
	}
	if got := s.GetPreedit(); got != "chào" {
		t.Fatalf("preedit = %q, want chào", got)
	}

	result := s.ProcessKey(KeyEvent{KeySym: KeySpace})
	if !result.Handled || result.CommitText != "chào " {
		t.Errorf("space result = %+v, want CommitText \"chào \"", result)
	}
	if s.GetPreedit() != "" {
		t.Errorf("preedit after space = %q, want empty", s.GetPreedit())
	}
}

func TestSessionBackspace(t *testing.T) {
	s := NewSession(DefaultConfig())
	for _, k := range "toi" {
		s.ProcessKey(KeyEvent{KeySym: uint32(k)})
	}
	result := s.ProcessKey(KeyEvent{KeySym: KeyBackspace})
	if !result.Handled || result.Preedit != "to" {
		t.Errorf("backspace result = %+v, want preedit \"to\"", result)
	}
}

func TestSessionBackspaceOnEmptyComposesNoOp(t *testing.T) {
	s := NewSession(DefaultConfig())
	result := s.ProcessKey(KeyEvent{KeySym: KeyBackspace})
	if result.Handled {
		t.Errorf("backspace on empty session/history = %+v, want unhandled no-op", result)
	}
}

func TestSessionReturnCommitsPending(t *testing.T) {
	s := NewSession(DefaultConfig())
	for _, k := range "banj" {
		s.ProcessKey(KeyEvent{KeySym: uint32(k)})
	}
	result := s.ProcessKey(KeyEvent{KeySym: KeyReturn})
	if !result.Handled || result.CommitText != "bạn" {
		t.Errorf("return result = %+v, want CommitText bạn", result)
	}
	if s.GetPreedit() != "" {
		t.Errorf("preedit after return = %q, want empty", s.GetPreedit())
	}
}

func TestSessionEscapeCancelsPending(t *testing.T) {
	s := NewSession(DefaultConfig())
	for _, k := range "banj" {
		s.ProcessKey(KeyEvent{KeySym: uint32(k)})
	}
	s.ProcessKey(KeyEvent{KeySym: KeyEscape})
	if s.GetPreedit() != "" {
		t.Errorf("preedit after escape = %q, want empty", s.GetPreedit())
	}
}

func TestSessionDisabledIgnoresKeys(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.SetEnabled(false)
	result := s.ProcessKey(KeyEvent{KeySym: uint32('a')})
	if result.Handled {
		t.Errorf("disabled session handled a key: %+v", result)
	}
	if s.IsEnabled() {
		t.Error("IsEnabled() = true after SetEnabled(false)")
	}
}
