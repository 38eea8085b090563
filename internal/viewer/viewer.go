// Package viewer wires the window, scene and renderer into the main loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/debug"
	"github.com/Faultbox/sceneview/internal/engine/renderer"
	"github.com/Faultbox/sceneview/internal/engine/window"
	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/internal/scene"
)

// Viewer is the running application.
type Viewer struct {
	platform    window.Platform
	renderer    *renderer.Renderer
	screenshots *debug.ScreenshotCapture

	state  *scene.State
	router *scene.Router
	lens   renderer.Lens
	light  renderer.Lighting
}

// New opens the window, creates the GL resources and builds the initial scene.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("backend", cfg.Graphics.Backend),
	)

	v := &Viewer{
		screenshots: debug.NewScreenshotCapture(cfg.Screenshots.Dir, "sceneview"),
		state:       newState(cfg),
		router:      scene.NewRouter(controls(cfg)),
		lens:        lens(cfg),
		light:       renderer.DefaultLighting(),
	}

	// Window first: the renderer needs a current GL context
	var err error
	v.platform, err = window.New(windowConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.platform.FramebufferSize()
	v.renderer, err = renderer.New(rendererConfig(cfg, width, height))
	if err != nil {
		v.platform.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	logger.Info("viewer initialized successfully")
	return v, nil
}

// Run drives the frame loop until the window is asked to close.
func (v *Viewer) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	logger.Info("starting render loop")

	for !v.platform.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		snap := v.platform.Poll()
		if r, ok := snap.LastResize(); ok {
			v.renderer.Resize(r.Width, r.Height)
		}

		result := v.router.Apply(v.state, &snap, dt)
		if result.Quit {
			v.platform.SetShouldClose(true)
		}
		v.state.Step(dt)

		width, height := v.renderer.Size()
		plan := renderer.BuildFramePlan(v.state, width, height, v.lens, v.light)
		v.renderer.Render(&plan)

		if result.Screenshot {
			v.captureScreenshot()
		}

		v.platform.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Stringer("selected", v.state.Selected),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// captureScreenshot reads the back buffer before it is swapped.
func (v *Viewer) captureScreenshot() {
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.platform != nil {
		v.platform.Close()
	}
}
