// Package input defines the platform-neutral input snapshot handed to the scene each frame.
package input

// Key identifies a key the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	Key1
	Key2
	Key3
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyZ
	KeyX
	KeyR
	KeyT
	KeyF
	KeyG
	KeyEqual // '+' shares the '=' key
	KeyMinus
	KeyN
	KeyM
	KeyF12

	keyCount
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyW:       "w",
	KeyA:       "a",
	KeyS:       "s",
	KeyD:       "d",
	Key1:       "1",
	Key2:       "2",
	Key3:       "3",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyZ:       "z",
	KeyX:       "x",
	KeyR:       "r",
	KeyT:       "t",
	KeyF:       "f",
	KeyG:       "g",
	KeyEqual:   "equal",
	KeyMinus:   "minus",
	KeyN:       "n",
	KeyM:       "m",
	KeyF12:     "f12",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "invalid"
	}
	return keyNames[k]
}

// Keys returns every key the viewer polls, in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyEscape; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// KeyState is the set of keys held down at poll time.
type KeyState [keyCount]bool

// Down reports whether k is held.
func (s *KeyState) Down(k Key) bool {
	if k <= KeyUnknown || k >= keyCount {
		return false
	}
	return s[k]
}

// Set marks k as held or released.
func (s *KeyState) Set(k Key, down bool) {
	if k <= KeyUnknown || k >= keyCount {
		return
	}
	s[k] = down
}

// MouseSample is an absolute cursor position.
type MouseSample struct {
	X, Y float64
}

// Resize is a framebuffer size change.
type Resize struct {
	Width, Height int
}

// Snapshot is everything the platform collected during one poll.
type Snapshot struct {
	Keys    KeyState
	Mouse   []MouseSample
	Resizes []Resize
	Quit    bool // Window close requested by the OS
}

// Held is a convenience for tests and callers building snapshots by hand.
func Held(keys ...Key) KeyState {
	var s KeyState
	for _, k := range keys {
		s.Set(k, true)
	}
	return s
}

// LastResize returns the most recent resize in the snapshot, if any.
func (s *Snapshot) LastResize() (Resize, bool) {
	if len(s.Resizes) == 0 {
		return Resize{}, false
	}
	return s.Resizes[len(s.Resizes)-1], true
}

// Reset clears per-poll data while keeping the backing arrays.
func (s *Snapshot) Reset() {
	s.Mouse = s.Mouse[:0]
	s.Resizes = s.Resizes[:0]
	s.Quit = false
}
