// Package engine implements the Vietnamese input-method transform engine:
// per-word incremental keystroke processing for the Telex and VNI typing
// conventions.
package engine

// KeyEvent represents a keyboard event from the frontend.
type KeyEvent struct {
	KeySym    uint32 // X11 keysym value
	Modifiers uint32 // Modifier state (Shift, Ctrl, Alt, etc.)
}

// ProcessResult is the transport-facing result of one key event, shaped for
// the D-Bus surface in cmd/daemon (CommitText/Preedit/Handled), distinct
// from the engine's own internal Action rewrite instructions.
type ProcessResult struct {
	Handled    bool
	CommitText string
	Preedit    string
}

// Modifier flags for keyboard state.
const (
	ModNone    uint32 = 0
	ModShift   uint32 = 1 << 0
	ModLock    uint32 = 1 << 1
	ModControl uint32 = 1 << 2
	ModMod1    uint32 = 1 << 3
	ModMod4    uint32 = 1 << 6
)

// Common keysym values for Vietnamese input.
const (
	KeyBackspace uint32 = 0xff08
	KeyReturn    uint32 = 0xff0d
	KeyEscape    uint32 = 0xff1b
	KeySpace     uint32 = 0x0020
	KeyTab       uint32 = 0xff09
	KeyDelete    uint32 = 0xffff
)

// KeysymToRune converts an X11 keysym to a rune, or 0 if it has no simple
// rune representation (arrow keys, function keys, etc).
func KeysymToRune(keysym uint32) rune {
	if keysym >= 0x0020 && keysym <= 0x007e {
		return rune(keysym)
	}
	if keysym >= 0x00a0 && keysym <= 0x00ff {
		return rune(keysym)
	}
	if keysym >= 0x01000000 {
		return rune(keysym - 0x01000000)
	}
	return 0
}
