package input

import "testing"

func TestKeyState(t *testing.T) {
	s := Held(KeyW, KeyF12)

	if !s.Down(KeyW) || !s.Down(KeyF12) {
		t.Error("expected W and F12 held")
	}
	if s.Down(KeyA) {
		t.Error("A should not be held")
	}

	s.Set(KeyW, false)
	if s.Down(KeyW) {
		t.Error("W should be released")
	}

	// Out of range keys are ignored.
	s.Set(Key(999), true)
	if s.Down(Key(999)) || s.Down(KeyUnknown) {
		t.Error("invalid keys must never report held")
	}
}

func TestKeysCoversEveryName(t *testing.T) {
	keys := Keys()
	if len(keys) != int(keyCount)-1 {
		t.Fatalf("Keys() returned %d keys, want %d", len(keys), keyCount-1)
	}
	seen := make(map[string]bool)
	for _, k := range keys {
		name := k.String()
		if name == "" || name == "invalid" || seen[name] {
			t.Errorf("key %d has bad or duplicate name %q", k, name)
		}
		seen[name] = true
	}
}

func TestSnapshotReset(t *testing.T) {
	s := Snapshot{
		Keys:    Held(KeyEscape),
		Mouse:   []MouseSample{{1, 2}},
		Resizes: []Resize{{800, 600}, {1024, 768}},
		Quit:    true,
	}

	r, ok := s.LastResize()
	if !ok || r.Width != 1024 || r.Height != 768 {
		t.Errorf("LastResize() = %v, %v", r, ok)
	}

	s.Reset()
	if len(s.Mouse) != 0 || len(s.Resizes) != 0 || s.Quit {
		t.Errorf("Reset left data behind: %+v", s)
	}
	if !s.Keys.Down(KeyEscape) {
		t.Error("Reset should keep key state")
	}
	if _, ok := s.LastResize(); ok {
		t.Error("LastResize after Reset should report none")
	}
}
