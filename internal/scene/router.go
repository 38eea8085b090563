package scene

import (
	"github.com/Faultbox/sceneview/internal/engine/camera"
	"github.com/Faultbox/sceneview/internal/engine/input"
	"github.com/Faultbox/sceneview/pkg/math"
)

// Controls holds the per-second rates used when editing objects.
type Controls struct {
	TranslateSpeed float32 // Units per second
	RotateSpeed    float32 // Radians per second
	ScaleRate      float32 // Scale units per second
}

// DefaultControls returns the stock editing rates.
func DefaultControls() Controls {
	return Controls{
		TranslateSpeed: 2.0,
		RotateSpeed:    math.Radians(90),
		ScaleRate:      0.5,
	}
}

// Result reports requests that reach outside the scene.
type Result struct {
	Quit       bool
	Screenshot bool
}

// Router applies one frame of input to a State.
type Router struct {
	Controls Controls

	screenshotHeld bool
}

// NewRouter creates a router with the given rates.
func NewRouter(controls Controls) *Router {
	return &Router{Controls: controls}
}

var cameraKeys = []struct {
	key input.Key
	dir camera.Direction
}{
	{input.KeyW, camera.Forward},
	{input.KeyS, camera.Backward},
	{input.KeyA, camera.Left},
	{input.KeyD, camera.Right},
}

var selectKeys = []struct {
	key input.Key
	obj Object
}{
	{input.Key1, Cube},
	{input.Key2, Pyramid},
	{input.Key3, Sphere},
}

// Apply routes a snapshot into the state. dt is the frame time in seconds;
// every continuous change is scaled by it.
func (r *Router) Apply(s *State, snap *input.Snapshot, dt float32) Result {
	var res Result
	keys := &snap.Keys

	if keys.Down(input.KeyEscape) || snap.Quit {
		res.Quit = true
	}

	for _, sample := range snap.Mouse {
		dx, dy := s.Mouse.Sample(sample.X, sample.Y)
		s.Camera.UpdateFromMouseDelta(dx, dy)
	}

	for _, ck := range cameraKeys {
		if keys.Down(ck.key) {
			s.Camera.Move(ck.dir, dt)
		}
	}

	// Later keys win when several are held.
	for _, sk := range selectKeys {
		if keys.Down(sk.key) {
			s.Select(sk.obj)
		}
	}

	r.editActive(s.Active(), keys, dt)

	if keys.Down(input.KeyN) {
		s.AutoRotate = true
	}
	if keys.Down(input.KeyM) {
		s.AutoRotate = false
	}

	held := keys.Down(input.KeyF12)
	res.Screenshot = held && !r.screenshotHeld
	r.screenshotHeld = held

	return res
}

func (r *Router) editActive(t *Transform, keys *input.KeyState, dt float32) {
	move := r.Controls.TranslateSpeed * dt
	if keys.Down(input.KeyUp) {
		t.Translate(math.Vec3{Z: -move})
	}
	if keys.Down(input.KeyDown) {
		t.Translate(math.Vec3{Z: move})
	}
	if keys.Down(input.KeyLeft) {
		t.Translate(math.Vec3{X: -move})
	}
	if keys.Down(input.KeyRight) {
		t.Translate(math.Vec3{X: move})
	}
	if keys.Down(input.KeyZ) {
		t.Translate(math.Vec3{Y: move})
	}
	if keys.Down(input.KeyX) {
		t.Translate(math.Vec3{Y: -move})
	}

	rot := r.Controls.RotateSpeed * dt
	if keys.Down(input.KeyR) {
		t.RotY += rot
	}
	if keys.Down(input.KeyT) {
		t.RotY -= rot
	}
	if keys.Down(input.KeyF) {
		t.RotX += rot
	}
	if keys.Down(input.KeyG) {
		t.RotX -= rot
	}

	scale := r.Controls.ScaleRate * dt
	if keys.Down(input.KeyEqual) {
		t.Rescale(scale)
	}
	if keys.Down(input.KeyMinus) {
		t.Rescale(-scale)
	}
}
