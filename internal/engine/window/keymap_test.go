package window

import (
	"testing"

	"github.com/Faultbox/sceneview/internal/engine/input"
)

func TestKeyMapsCoverEveryKey(t *testing.T) {
	tests := []struct {
		name string
		keys func() []input.Key
	}{
		{"sdl", func() []input.Key {
			var out []input.Key
			for _, k := range sdlScancodes {
				out = append(out, k)
			}
			return out
		}},
		{"glfw", func() []input.Key {
			var out []input.Key
			for _, k := range glfwKeys {
				out = append(out, k)
			}
			return out
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[input.Key]int)
			for _, k := range tt.keys() {
				seen[k]++
			}
			for _, k := range input.Keys() {
				switch seen[k] {
				case 0:
					t.Errorf("key %s has no mapping", k)
				case 1:
				default:
					t.Errorf("key %s mapped %d times", k, seen[k])
				}
			}
			if seen[input.KeyUnknown] != 0 {
				t.Error("unknown key should not be mapped")
			}
		})
	}
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	if _, err := New(Config{Backend: "vulkan"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}
