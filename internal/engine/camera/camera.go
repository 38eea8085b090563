// Package camera provides the free-fly camera used by the viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/sceneview/pkg/math"
)

// Pitch limits in degrees. Looking straight up or down would make the
// front vector parallel to world up and break the look-at basis.
const (
	MinPitch = -89.0
	MaxPitch = 89.0
)

// Direction is a camera movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// WorldUp is the fixed up axis used for strafing and the view matrix.
var WorldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// FlyCamera is a first-person camera driven by mouse look and WASD movement.
type FlyCamera struct {
	Position math.Vec3

	// Orientation in degrees
	Yaw   float32
	Pitch float32

	// Derived from Yaw/Pitch, always unit length
	Front math.Vec3

	// Tuning
	Sensitivity float32 // Degrees per pixel of mouse movement
	Speed       float32 // Units per second
}

// NewFlyCamera creates a camera at (0, 1, 8) looking down -Z.
func NewFlyCamera() *FlyCamera {
	c := &FlyCamera{
		Position:    math.Vec3{X: 0, Y: 1, Z: 8},
		Yaw:         -90,
		Pitch:       0,
		Sensitivity: 0.1,
		Speed:       2.5,
	}
	c.updateFront()
	return c
}

// UpdateFromMouseDelta turns the camera by a mouse offset in pixels.
// Positive dy looks up.
func (c *FlyCamera) UpdateFromMouseDelta(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	c.Pitch = math.Clamp(c.Pitch, MinPitch, MaxPitch)
	c.updateFront()
}

// SetOrientation sets yaw and pitch directly, clamping pitch.
func (c *FlyCamera) SetOrientation(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = math.Clamp(pitch, MinPitch, MaxPitch)
	c.updateFront()
}

// Move translates the camera along its front or right vector.
// dt is the frame time in seconds, so motion is frame-rate independent.
func (c *FlyCamera) Move(dir Direction, dt float32) {
	step := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Scale(step))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Scale(step))
	case Left:
		c.Position = c.Position.Sub(c.Right().Scale(step))
	case Right:
		c.Position = c.Position.Add(c.Right().Scale(step))
	}
}

// Right returns the unit strafe vector.
func (c *FlyCamera) Right() math.Vec3 {
	return c.Front.Cross(WorldUp).Normalize()
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), WorldUp)
}

func (c *FlyCamera) updateFront() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))
	c.Front = math.Vec3{
		X: float32(gomath.Cos(pitch) * gomath.Cos(yaw)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Cos(pitch) * gomath.Sin(yaw)),
	}.Normalize()
}
