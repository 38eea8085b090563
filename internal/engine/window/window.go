// Package window creates the OpenGL window and turns platform events into input snapshots.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/sceneview/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    string
}

// Platform is a window with a current OpenGL 4.1 core context.
//
// The snapshot returned by Poll shares buffers with the platform and is
// only valid until the next call to Poll.
type Platform interface {
	Poll() input.Snapshot
	SwapBuffers()
	FramebufferSize() (int, int)
	ShouldClose() bool
	SetShouldClose(bool)
	Close()
}

// New creates a window using the configured backend. An empty backend means SDL.
func New(cfg Config) (Platform, error) {
	switch cfg.Backend {
	case "", BackendSDL:
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
