package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/input"
	"github.com/Faultbox/sceneview/internal/logger"
)

// glfwKeys maps GLFW key codes to viewer keys.
var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyEscape: input.KeyEscape,
	glfw.KeyW:      input.KeyW,
	glfw.KeyA:      input.KeyA,
	glfw.KeyS:      input.KeyS,
	glfw.KeyD:      input.KeyD,
	glfw.Key1:      input.Key1,
	glfw.Key2:      input.Key2,
	glfw.Key3:      input.Key3,
	glfw.KeyUp:     input.KeyUp,
	glfw.KeyDown:   input.KeyDown,
	glfw.KeyLeft:   input.KeyLeft,
	glfw.KeyRight:  input.KeyRight,
	glfw.KeyZ:      input.KeyZ,
	glfw.KeyX:      input.KeyX,
	glfw.KeyR:      input.KeyR,
	glfw.KeyT:      input.KeyT,
	glfw.KeyF:      input.KeyF,
	glfw.KeyG:      input.KeyG,
	glfw.KeyEqual:  input.KeyEqual,
	glfw.KeyMinus:  input.KeyMinus,
	glfw.KeyN:      input.KeyN,
	glfw.KeyM:      input.KeyM,
	glfw.KeyF12:    input.KeyF12,
}

// glfwWindow wraps a GLFW window with a current OpenGL context.
type glfwWindow struct {
	window *glfw.Window
	snap   input.Snapshot
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{window: win}

	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.snap.Mouse = append(w.snap.Mouse, input.MouseSample{X: xpos, Y: ypos})
	})
	// Framebuffer size is in pixels, window size is not on high-DPI displays
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.snap.Resizes = append(w.snap.Resizes, input.Resize{Width: width, Height: height})
	})

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

func (w *glfwWindow) Poll() input.Snapshot {
	w.snap.Reset()
	glfw.PollEvents()

	for code, key := range glfwKeys {
		w.snap.Keys.Set(key, w.window.GetKey(code) == glfw.Press)
	}
	w.snap.Quit = w.window.ShouldClose()
	return w.snap
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindow) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

func (w *glfwWindow) Close() {
	logger.Info("closing window", zap.String("backend", BackendGLFW))

	w.window.Destroy()
	glfw.Terminate()
}
