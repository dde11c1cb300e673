package engine

// Session adapts the rune-level Engine to the KeyEvent/ProcessResult
// surface the D-Bus transport speaks, the way me4hit-goviet-ime's
// CompositionEngine wraps input-method + output-format into one
// ProcessKey(event) call. Session owns special-key handling (backspace,
// space, enter, escape, tab); Engine itself only ever sees the runes that
// make up a word plus its boundary characters.
type Session struct {
	engine  *Engine
	enabled bool
}

// NewSession creates a session with the given engine configuration.
func NewSession(config EngineConfig) *Session {
	return &Session{engine: NewEngine(config), enabled: true}
}

// SetEnabled enables or disables key processing.
func (s *Session) SetEnabled(enabled bool) {
	s.enabled = enabled
	if !enabled {
		s.engine.Reset()
	}
}

// IsEnabled reports whether the session is currently processing keys.
func (s *Session) IsEnabled() bool {
	return s.enabled
}

// Reset clears all composition state, including history.
func (s *Session) Reset() {
	s.engine.Reset()
}

// SetInputMethod switches Telex/VNI mid-session.
func (s *Session) SetInputMethod(method Method) {
	s.engine.SetInputMethod(method)
}

// GetPreedit returns the live word's current text.
func (s *Session) GetPreedit() string {
	return s.engine.Preedit()
}

// ProcessKey handles one keyboard event and returns what the host frontend
// should do with it.
func (s *Session) ProcessKey(event KeyEvent) ProcessResult {
	if !s.enabled {
		return ProcessResult{}
	}

	if result, handled := s.handleSpecialKey(event); handled {
		return result
	}

	if event.Modifiers&(ModControl|ModMod1) != 0 {
		if s.engine.Preedit() != "" {
			preedit := s.engine.Preedit()
			s.engine.CommitPending()
			return ProcessResult{Handled: false, CommitText: preedit}
		}
		return ProcessResult{}
	}

	char := KeysymToRune(event.KeySym)
	if char == 0 {
		return ProcessResult{}
	}

	s.engine.Process(char)
	return ProcessResult{Handled: true, Preedit: s.engine.Preedit()}
}

func (s *Session) handleSpecialKey(event KeyEvent) (ProcessResult, bool) {
	switch event.KeySym {
	case KeyBackspace:
		action := s.engine.DeleteLastCharacter()
		if action.DeleteCount == 0 {
			return ProcessResult{}, true
		}
		return ProcessResult{Handled: true, Preedit: s.engine.Preedit()}, true

	case KeySpace:
		preedit := s.engine.Preedit()
		s.engine.Process(' ')
		return ProcessResult{Handled: true, CommitText: preedit + " "}, true

	case KeyReturn:
		preedit := s.engine.Preedit()
		if preedit == "" {
			return ProcessResult{}, false
		}
		s.engine.CommitPending()
		return ProcessResult{Handled: true, CommitText: preedit}, true

	case KeyEscape:
		s.engine.CancelPending()
		return ProcessResult{Handled: true}, true

	case KeyTab:
		if s.engine.Preedit() == "" {
			return ProcessResult{}, false
		}
		preedit := s.engine.Preedit()
		s.engine.CommitPending()
		return ProcessResult{Handled: true, CommitText: preedit}, true

	case KeyDelete:
		if s.engine.Preedit() != "" {
			preedit := s.engine.Preedit()
			s.engine.CommitPending()
			return ProcessResult{Handled: false, CommitText: preedit}, true
		}
		return ProcessResult{}, false
	}

	return ProcessResult{}, false
}
