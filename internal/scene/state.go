// Package scene holds the editable scene state and the input routing that mutates it.
package scene

import (
	"github.com/Faultbox/sceneview/internal/engine/camera"
	"github.com/Faultbox/sceneview/pkg/math"
)

// Object identifies one of the editable primitives.
type Object int

const (
	Cube Object = iota
	Pyramid
	Sphere

	objectCount
)

func (o Object) String() string {
	switch o {
	case Cube:
		return "cube"
	case Pyramid:
		return "pyramid"
	case Sphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Objects lists the editable primitives in draw order.
func Objects() []Object {
	return []Object{Cube, Pyramid, Sphere}
}

// RotationOrder returns the rotation terms used when drawing o.
// Only the pyramid carries a Z term.
func (o Object) RotationOrder() RotationOrder {
	if o == Pyramid {
		return RotateYXZ
	}
	return RotateYX
}

// State is the whole mutable scene: camera, object transforms, selection and
// auto-rotation. It is owned by the main loop and only touched from it.
type State struct {
	Camera *camera.FlyCamera
	Mouse  camera.MouseTracker

	Transforms [objectCount]Transform
	Selected   Object
	AutoRotate bool

	// Pyramid X rotation speed while AutoRotate is set, radians per second.
	AutoRotateSpeed float32
}

// NewState returns the initial scene: cube selected, auto-rotation off.
func NewState() *State {
	s := &State{
		Camera:          camera.NewFlyCamera(),
		Selected:        Cube,
		AutoRotateSpeed: math.Radians(30),
	}
	s.Transforms[Cube] = Transform{Position: math.Vec3{X: -2, Y: 0.5, Z: 0}, Scale: 1.5}
	s.Transforms[Pyramid] = Transform{Position: math.Vec3{X: 0, Y: 0, Z: 2}, Scale: 1.0}
	s.Transforms[Sphere] = Transform{Position: math.Vec3{X: 2, Y: 0.5, Z: 0}, Scale: 1.0}
	return s
}

// Transform returns a pointer to the transform of o.
func (s *State) Transform(o Object) *Transform {
	return &s.Transforms[o]
}

// Active returns the transform of the selected object.
func (s *State) Active() *Transform {
	return &s.Transforms[s.Selected]
}

// Select makes o the edit target. Selecting the current object is a no-op.
func (s *State) Select(o Object) {
	if o < 0 || o >= objectCount {
		return
	}
	s.Selected = o
}

// Step advances time-driven state. While AutoRotate is set the pyramid's
// X rotation advances on top of any manual rotation applied this frame.
func (s *State) Step(dt float32) {
	if s.AutoRotate {
		s.Transforms[Pyramid].RotX += s.AutoRotateSpeed * dt
	}
}

// ModelMatrix returns the model matrix of o using its rotation order.
func (s *State) ModelMatrix(o Object) math.Mat4 {
	return s.Transforms[o].ModelMatrix(o.RotationOrder())
}
