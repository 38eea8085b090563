// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds all viewer settings.
type Config struct {
	Graphics    GraphicsConfig   `yaml:"graphics"`
	Camera      CameraConfig     `yaml:"camera"`
	Controls    ControlsConfig   `yaml:"controls"`
	Assets      AssetsConfig     `yaml:"assets"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
	Logging     LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
}

// CameraConfig holds projection and fly-camera settings.
type CameraConfig struct {
	FOV         float32 `yaml:"fov"` // Vertical, degrees
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	Speed       float32 `yaml:"speed"`       // Units per second
	Sensitivity float32 `yaml:"sensitivity"` // Degrees per pixel
}

// ControlsConfig holds object editing rates.
type ControlsConfig struct {
	TranslateSpeed    float32 `yaml:"translate_speed"`     // Units per second
	RotateDegrees     float32 `yaml:"rotate_degrees"`      // Degrees per second
	ScaleRate         float32 `yaml:"scale_rate"`          // Scale units per second
	AutoRotateDegrees float32 `yaml:"auto_rotate_degrees"` // Pyramid auto-rotation, degrees per second
}

// AssetsConfig holds texture paths. Relative paths resolve against Root.
type AssetsConfig struct {
	Root          string   `yaml:"root"`
	CubeTexture   string   `yaml:"cube_texture"`
	GroundTexture string   `yaml:"ground_texture"`
	SkyboxFaces   []string `yaml:"skybox_faces"` // +X, -X, +Y, -Y, +Z, -Z
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock viewer settings.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:   "3D Interactive Scene",
			Width:   1000,
			Height:  800,
			VSync:   true,
			Backend: BackendSDL,
		},
		Camera: CameraConfig{
			FOV:         45,
			Near:        0.1,
			Far:         100,
			Speed:       2.5,
			Sensitivity: 0.1,
		},
		Controls: ControlsConfig{
			TranslateSpeed:    2.0,
			RotateDegrees:     90,
			ScaleRate:         0.5,
			AutoRotateDegrees: 30,
		},
		Assets: AssetsConfig{
			CubeTexture:   "textures/texture.jpg",
			GroundTexture: "textures/stone-texture.jpg",
			SkyboxFaces: []string{
				"skybox/posx.jpg",
				"skybox/negx.jpg",
				"skybox/posy.jpg",
				"skybox/negy.jpg",
				"skybox/posz.jpg",
				"skybox/negz.jpg",
			},
		},
		Screenshots: ScreenshotConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every setting that would make the viewer unusable.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.Backend != BackendSDL && c.Graphics.Backend != BackendGLFW {
		errs = append(errs, fmt.Errorf("graphics: unknown backend %q", c.Graphics.Backend))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov must be in (0, 180), got %v", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("camera: need 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if len(c.Assets.SkyboxFaces) != 6 {
		errs = append(errs, fmt.Errorf("assets: skybox needs 6 faces, got %d", len(c.Assets.SkyboxFaces)))
	}

	return errors.Join(errs...)
}

// Resolve returns path joined to the asset root unless it is absolute.
func (a *AssetsConfig) Resolve(path string) string {
	if a.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.Root, path)
}
