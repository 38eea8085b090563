package scene

import (
	"github.com/Faultbox/sceneview/pkg/math"
)

// MinScale is the smallest uniform scale an object can shrink to.
const MinScale = 0.1

// RotationOrder selects which rotation terms a model matrix includes.
// Rotations always compose as Y, then X, then (optionally) Z.
type RotationOrder int

const (
	// RotateYX applies Y then X. The Z angle is ignored.
	RotateYX RotationOrder = iota
	// RotateYXZ applies Y, X, then Z.
	RotateYXZ
)

// Transform is an editable object placement.
// Angles are radians and accumulate independently per axis.
type Transform struct {
	Position math.Vec3
	RotX     float32
	RotY     float32
	RotZ     float32
	Scale    float32
}

// Translate moves the object by delta.
func (t *Transform) Translate(delta math.Vec3) {
	t.Position = t.Position.Add(delta)
}

// Rescale adds delta to the uniform scale, never going below MinScale.
func (t *Transform) Rescale(delta float32) {
	t.Scale += delta
	if t.Scale < MinScale {
		t.Scale = MinScale
	}
}

// ModelMatrix builds translate · rotY · rotX [· rotZ] · scale.
func (t *Transform) ModelMatrix(order RotationOrder) math.Mat4 {
	m := math.Translate(t.Position).
		Mul(math.RotateY(t.RotY)).
		Mul(math.RotateX(t.RotX))
	if order == RotateYXZ {
		m = m.Mul(math.RotateZ(t.RotZ))
	}
	return m.Mul(math.ScaleUniform(t.Scale))
}
