// Package input exposes keyboard state as a pure "is this key held" query.
package input

// Key is an abstract game key.
type Key uint8

const (
	KeyRight Key = iota
	KeyLeft
	KeyUp
	KeyDown
	KeySkip    // end the current game session
	KeyConfirm // choose Play on the main menu
	NumKeys    // number of keys, not a key
)

// String returns the display name for a Key.
func (k Key) String() string {
	switch k {
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeySkip:
		return "Skip"
	case KeyConfirm:
		return "Confirm"
	}
	return "Unknown"
}

// Source reports whether a key is currently held.
type Source interface {
	Down(k Key) bool
}

// None is a Source with no keys held, used by headless runs.
type None struct{}

// Down always returns false.
func (None) Down(Key) bool { return false }

// Scripted is a Source whose held keys are set directly.
type Scripted struct {
	held [NumKeys]bool
}

// NewScripted returns a Scripted source with the given keys held.
func NewScripted(keys ...Key) *Scripted {
	s := &Scripted{}
	s.Press(keys...)
	return s
}

// Down reports whether k is held.
func (s *Scripted) Down(k Key) bool {
	if k >= NumKeys {
		return false
	}
	return s.held[k]
}

// Press marks keys as held.
func (s *Scripted) Press(keys ...Key) {
	for _, k := range keys {
		if k < NumKeys {
			s.held[k] = true
		}
	}
}

// Release marks keys as no longer held.
func (s *Scripted) Release(keys ...Key) {
	for _, k := range keys {
		if k < NumKeys {
			s.held[k] = false
		}
	}
}

// Reset releases every key.
func (s *Scripted) Reset() {
	s.held = [NumKeys]bool{}
}
