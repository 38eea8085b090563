package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func assertMat4Near(t *testing.T, name string, got Mat4, want mgl32.Mat4) {
	t.Helper()
	for i := 0; i < 16; i++ {
		if abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s: element %d = %f, want %f", name, i, got[i], want[i])
		}
	}
}

func TestIdentity(t *testing.T) {
	assertMat4Near(t, "Identity", Identity(), mgl32.Ident4())
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	// Translation lives in column 4 (indices 12, 13, 14)
	if got := m.Translation(); got != (Vec3{5, 10, 15}) {
		t.Errorf("Translation() = %v, want (5, 10, 15)", got)
	}
	assertMat4Near(t, "Translate", m, mgl32.Translate3D(5, 10, 15))
}

func TestScaleUniform(t *testing.T) {
	m := ScaleUniform(2)
	got := m.TransformPoint(Vec3{1, 2, 3})
	if got != (Vec3{2, 4, 6}) {
		t.Errorf("TransformPoint with scale: got %v, want (2, 4, 6)", got)
	}
}

func TestRotationsMatchMathGL(t *testing.T) {
	angles := []float32{0, 0.3, float32(math.Pi / 2), -1.7, 4}
	for _, a := range angles {
		assertMat4Near(t, "RotateX", RotateX(a), mgl32.HomogRotate3DX(a))
		assertMat4Near(t, "RotateY", RotateY(a), mgl32.HomogRotate3DY(a))
		assertMat4Near(t, "RotateZ", RotateZ(a), mgl32.HomogRotate3DZ(a))
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestMulOrderMatchesMathGL(t *testing.T) {
	got := Translate(Vec3{1, 2, 3}).Mul(RotateY(0.4)).Mul(RotateX(-0.8)).Mul(ScaleUniform(1.5))
	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DY(0.4)).
		Mul4(mgl32.HomogRotate3DX(-0.8)).
		Mul4(mgl32.Scale3D(1.5, 1.5, 1.5))
	assertMat4Near(t, "TRS", got, want)
}

func TestPerspective(t *testing.T) {
	fov := Radians(45)
	m := Perspective(fov, 1000.0/800.0, 0.1, 100)

	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
	assertMat4Near(t, "Perspective", m, mgl32.Perspective(mgl32.DegToRad(45), 1000.0/800.0, 0.1, 100))
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 1, 8}
	center := Vec3{0, 1, 7}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)
	want := mgl32.LookAtV(mgl32.Vec3{0, 1, 8}, mgl32.Vec3{0, 1, 7}, mgl32.Vec3{0, 1, 0})
	assertMat4Near(t, "LookAt", m, want)

	// The eye maps to the view-space origin.
	p := m.TransformPoint(eye)
	if p.Length() > epsilon {
		t.Errorf("LookAt should map eye to origin, got %v", p)
	}
}

func TestRotationOnly(t *testing.T) {
	view := LookAt(Vec3{3, 2, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	r := view.RotationOnly()

	if got := r.Translation(); got != (Vec3{}) {
		t.Errorf("RotationOnly translation = %v, want zero", got)
	}
	if r[3] != 0 || r[7] != 0 || r[11] != 0 || r[15] != 1 {
		t.Errorf("RotationOnly last row = (%f, %f, %f, %f), want (0, 0, 0, 1)", r[3], r[7], r[11], r[15])
	}
	if r.Mat3x3() != view.Mat3x3() {
		t.Error("RotationOnly should preserve the 3x3 block")
	}
}

func TestFromMat3x3(t *testing.T) {
	m3 := [9]float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	m4 := FromMat3x3(m3)

	if m4[0] != 1 || m4[1] != 2 || m4[2] != 3 {
		t.Error("FromMat3x3 column 0 incorrect")
	}
	if m4[4] != 4 || m4[5] != 5 || m4[6] != 6 {
		t.Error("FromMat3x3 column 1 incorrect")
	}
	if m4[15] != 1 {
		t.Errorf("FromMat3x3 [15] should be 1, got %f", m4[15])
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
