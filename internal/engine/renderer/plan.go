package renderer

import (
	"github.com/Faultbox/sceneview/internal/scene"
	"github.com/Faultbox/sceneview/pkg/math"
)

// MeshID names an uploaded mesh.
type MeshID int

const (
	MeshGround MeshID = iota
	MeshCube
	MeshPyramid
	MeshSphere
	MeshSkybox

	meshCount
)

// TextureID names a loaded 2D texture. TextureNone draws with a flat color.
type TextureID int

const (
	TextureNone TextureID = iota
	TextureGround
	TextureCube

	textureCount
)

// Flat colors and the clear color.
var (
	PyramidColor = math.Vec3{X: 0.53, Y: 0.81, Z: 0.92}
	SphereColor  = math.Vec3{X: 0.8, Y: 0.4, Z: 0.2}
	ClearColor   = math.Vec3{X: 0.1, Y: 0.12, Z: 0.15}
)

// Lens holds the perspective projection parameters.
type Lens struct {
	FOV  float32 // Vertical, degrees
	Near float32
	Far  float32
}

// DefaultLens returns a 45 degree lens with a 0.1..100 depth range.
func DefaultLens() Lens {
	return Lens{FOV: 45, Near: 0.1, Far: 100}
}

// Lighting is a single directional light.
type Lighting struct {
	Direction math.Vec3
	Color     math.Vec3
}

// DefaultLighting returns a white light shining down and slightly forward.
func DefaultLighting() Lighting {
	return Lighting{
		Direction: math.Vec3{X: -0.2, Y: -1.0, Z: -0.3},
		Color:     math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Draw is one lit draw call.
type Draw struct {
	Mesh    MeshID
	Model   math.Mat4
	Texture TextureID
	Color   math.Vec3 // Used when Texture is TextureNone
}

// UseTexture reports whether the draw samples a texture.
func (d Draw) UseTexture() bool {
	return d.Texture != TextureNone
}

// FramePlan is everything the GL side needs to draw one frame.
type FramePlan struct {
	View       math.Mat4
	Projection math.Mat4
	ViewPos    math.Vec3
	Light      Lighting

	Draws []Draw

	// SkyView is View without its translation so the sky stays at infinity.
	SkyView math.Mat4
}

// Aspect returns width/height, or 1 when the framebuffer has no height.
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// BuildFramePlan computes matrices and the ordered draw list for the current state.
// Lit draws come first in ground, cube, pyramid, sphere order; the skybox is drawn last.
func BuildFramePlan(s *scene.State, width, height int, lens Lens, light Lighting) FramePlan {
	view := s.Camera.ViewMatrix()

	return FramePlan{
		View:       view,
		Projection: math.Perspective(math.Radians(lens.FOV), Aspect(width, height), lens.Near, lens.Far),
		ViewPos:    s.Camera.Position,
		Light:      light,
		Draws: []Draw{
			{Mesh: MeshGround, Model: math.Identity(), Texture: TextureGround},
			{Mesh: MeshCube, Model: s.ModelMatrix(scene.Cube), Texture: TextureCube},
			{Mesh: MeshPyramid, Model: s.ModelMatrix(scene.Pyramid), Color: PyramidColor},
			{Mesh: MeshSphere, Model: s.ModelMatrix(scene.Sphere), Color: SphereColor},
		},
		SkyView: view.RotationOnly(),
	}
}
