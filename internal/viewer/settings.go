package viewer

import (
	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/renderer"
	"github.com/Faultbox/sceneview/internal/engine/texture"
	"github.com/Faultbox/sceneview/internal/engine/window"
	"github.com/Faultbox/sceneview/internal/scene"
	"github.com/Faultbox/sceneview/pkg/math"
)

func windowConfig(cfg *config.Config) window.Config {
	return window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Backend:    cfg.Graphics.Backend,
	}
}

func rendererConfig(cfg *config.Config, width, height int) renderer.Config {
	var faces texture.CubeFaces
	for i := range faces {
		if i < len(cfg.Assets.SkyboxFaces) {
			faces[i] = cfg.Assets.Resolve(cfg.Assets.SkyboxFaces[i])
		}
	}
	return renderer.Config{
		Width:         width,
		Height:        height,
		CubeTexture:   cfg.Assets.Resolve(cfg.Assets.CubeTexture),
		GroundTexture: cfg.Assets.Resolve(cfg.Assets.GroundTexture),
		SkyboxFaces:   faces,
	}
}

func lens(cfg *config.Config) renderer.Lens {
	return renderer.Lens{
		FOV:  cfg.Camera.FOV,
		Near: cfg.Camera.Near,
		Far:  cfg.Camera.Far,
	}
}

func controls(cfg *config.Config) scene.Controls {
	return scene.Controls{
		TranslateSpeed: cfg.Controls.TranslateSpeed,
		RotateSpeed:    math.Radians(cfg.Controls.RotateDegrees),
		ScaleRate:      cfg.Controls.ScaleRate,
	}
}

// newState builds the initial scene with camera tuning from the config.
func newState(cfg *config.Config) *scene.State {
	s := scene.NewState()
	s.Camera.Speed = cfg.Camera.Speed
	s.Camera.Sensitivity = cfg.Camera.Sensitivity
	s.AutoRotateSpeed = math.Radians(cfg.Controls.AutoRotateDegrees)
	return s
}
