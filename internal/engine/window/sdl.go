package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/input"
	"github.com/Faultbox/sceneview/internal/logger"
)

// sdlScancodes maps SDL scancodes to viewer keys.
var sdlScancodes = map[int]input.Key{
	int(sdl.SCANCODE_ESCAPE): input.KeyEscape,
	int(sdl.SCANCODE_W):      input.KeyW,
	int(sdl.SCANCODE_A):      input.KeyA,
	int(sdl.SCANCODE_S):      input.KeyS,
	int(sdl.SCANCODE_D):      input.KeyD,
	int(sdl.SCANCODE_1):      input.Key1,
	int(sdl.SCANCODE_2):      input.Key2,
	int(sdl.SCANCODE_3):      input.Key3,
	int(sdl.SCANCODE_UP):     input.KeyUp,
	int(sdl.SCANCODE_DOWN):   input.KeyDown,
	int(sdl.SCANCODE_LEFT):   input.KeyLeft,
	int(sdl.SCANCODE_RIGHT):  input.KeyRight,
	int(sdl.SCANCODE_Z):      input.KeyZ,
	int(sdl.SCANCODE_X):      input.KeyX,
	int(sdl.SCANCODE_R):      input.KeyR,
	int(sdl.SCANCODE_T):      input.KeyT,
	int(sdl.SCANCODE_F):      input.KeyF,
	int(sdl.SCANCODE_G):      input.KeyG,
	int(sdl.SCANCODE_EQUALS): input.KeyEqual,
	int(sdl.SCANCODE_MINUS):  input.KeyMinus,
	int(sdl.SCANCODE_N):      input.KeyN,
	int(sdl.SCANCODE_M):      input.KeyM,
	int(sdl.SCANCODE_F12):    input.KeyF12,
}

// sdlWindow wraps an SDL2 window and OpenGL context.
type sdlWindow struct {
	window    *sdl.Window
	glContext sdl.GLContext

	// Relative mouse mode reports deltas only, so absolute
	// positions are rebuilt from a virtual cursor.
	cursorX, cursorY float64

	snap        input.Snapshot
	shouldClose bool
}

func newSDL(cfg Config) (*sdlWindow, error) {
	w := &sdlWindow{}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.window, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.window.GLCreateContext()
	if err != nil {
		w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if cfg.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	// Hide and capture the cursor for free-look
	sdl.SetRelativeMouseMode(true)

	logger.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

func (w *sdlWindow) Poll() input.Snapshot {
	w.snap.Reset()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.snap.Quit = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				fw, fh := w.FramebufferSize()
				w.snap.Resizes = append(w.snap.Resizes, input.Resize{Width: fw, Height: fh})
			}
		case *sdl.MouseMotionEvent:
			w.cursorX += float64(e.XRel)
			w.cursorY += float64(e.YRel)
			w.snap.Mouse = append(w.snap.Mouse, input.MouseSample{X: w.cursorX, Y: w.cursorY})
		}
	}

	state := sdl.GetKeyboardState()
	for code, key := range sdlScancodes {
		w.snap.Keys.Set(key, code < len(state) && state[code] != 0)
	}

	if w.snap.Quit {
		w.shouldClose = true
	}
	return w.snap
}

func (w *sdlWindow) SwapBuffers() {
	w.window.GLSwap()
}

// FramebufferSize returns the drawable size in pixels, which differs from
// the window size on high-DPI displays.
func (w *sdlWindow) FramebufferSize() (int, int) {
	width, height := w.window.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindow) ShouldClose() bool {
	return w.shouldClose
}

func (w *sdlWindow) SetShouldClose(v bool) {
	w.shouldClose = v
}

// Close destroys the window and cleans up SDL2.
func (w *sdlWindow) Close() {
	logger.Info("closing window", zap.String("backend", BackendSDL))

	sdl.SetRelativeMouseMode(false)
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.window != nil {
		w.window.Destroy()
	}

	sdl.Quit()
}
