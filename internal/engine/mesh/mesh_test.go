package mesh

import (
	gomath "math"
	"testing"
)

func length(v [3]float32) float64 {
	return gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
}

func TestStaticShapes(t *testing.T) {
	tests := []struct {
		name     string
		mesh     *Mesh
		vertices int
		stride   int
	}{
		{"cube", Cube(), 36, 8},
		{"ground", Ground(), 6, 8},
		{"pyramid", Pyramid(), 18, 8},
		{"skybox", Skybox(), 36, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.VertexCount(); got != tt.vertices {
				t.Errorf("vertex count = %d, want %d", got, tt.vertices)
			}
			if tt.mesh.Indexed() {
				t.Error("static shapes should be non-indexed")
			}
			if got := tt.mesh.DrawCount(); got != tt.vertices {
				t.Errorf("draw count = %d, want %d", got, tt.vertices)
			}
			if got := len(tt.mesh.Interleave()); got != tt.vertices*tt.stride {
				t.Errorf("interleaved length = %d, want %d", got, tt.vertices*tt.stride)
			}
			for i, v := range tt.mesh.Vertices {
				if l := length(v.Normal); gomath.Abs(l-1) > 1e-3 {
					t.Fatalf("vertex %d normal length = %f, want 1", i, l)
				}
			}
		})
	}
}

func TestInterleaveOrder(t *testing.T) {
	m := &Mesh{Vertices: []Vertex{{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		TexCoord: [2]float32{0.25, 0.75},
	}}}

	want := []float32{1, 2, 3, 0, 1, 0, 0.25, 0.75}
	got := m.Interleave()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Interleave()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	m.Layout = LayoutPosition
	if got := m.Interleave(); len(got) != 3 || got[2] != 3 {
		t.Errorf("position-only Interleave() = %v, want [1 2 3]", got)
	}
}

func TestGenerateSphereCounts(t *testing.T) {
	tests := []struct {
		sectors, stacks int
		vertices        int
		indices         int
	}{
		{32, 16, 561, 2880},
		{3, 2, 12, 18},
		{8, 4, 45, 144},
	}

	for _, tt := range tests {
		vertices, indices, err := GenerateSphere(0.5, tt.sectors, tt.stacks)
		if err != nil {
			t.Fatalf("GenerateSphere(%d, %d) error: %v", tt.sectors, tt.stacks, err)
		}
		if len(vertices) != tt.vertices {
			t.Errorf("GenerateSphere(%d, %d) vertices = %d, want %d", tt.sectors, tt.stacks, len(vertices), tt.vertices)
		}
		if len(indices) != tt.indices {
			t.Errorf("GenerateSphere(%d, %d) indices = %d, want %d", tt.sectors, tt.stacks, len(indices), tt.indices)
		}
		if want := 6 * tt.sectors * (tt.stacks - 1); len(indices) != want {
			t.Errorf("index count %d does not match 6*S*(T-1) = %d", len(indices), want)
		}
	}
}

func TestGenerateSphereGeometry(t *testing.T) {
	const radius = 0.5
	const sectors, stacks = 32, 16
	vertices, indices, err := GenerateSphere(radius, sectors, stacks)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range vertices {
		if l := length(v.Position); gomath.Abs(l-radius) > 1e-5 {
			t.Fatalf("vertex %d at distance %f, want %f", i, l, radius)
		}
		if l := length(v.Normal); gomath.Abs(l-1) > 1e-5 {
			t.Fatalf("vertex %d normal length %f, want 1", i, l)
		}
	}

	// Row-major layout and texture coordinates.
	stack, slice := 5, 7
	v := vertices[stack*(sectors+1)+slice]
	if v.TexCoord != [2]float32{float32(slice) / sectors, float32(stack) / stacks} {
		t.Errorf("texcoord at (%d, %d) = %v", stack, slice, v.TexCoord)
	}

	// North pole on the first ring, south pole on the last.
	if z := vertices[0].Position[2]; gomath.Abs(float64(z)-radius) > 1e-6 {
		t.Errorf("first ring z = %f, want %f", z, radius)
	}
	if z := vertices[len(vertices)-1].Position[2]; gomath.Abs(float64(z)+radius) > 1e-6 {
		t.Errorf("last ring z = %f, want %f", z, -radius)
	}

	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}

	// No triangle has two vertices on the same pole ring.
	ringOf := func(idx uint32) int { return int(idx) / (sectors + 1) }
	for tri := 0; tri < len(indices); tri += 3 {
		top, bottom := 0, 0
		for _, idx := range indices[tri : tri+3] {
			switch ringOf(idx) {
			case 0:
				top++
			case stacks:
				bottom++
			}
		}
		if top > 1 || bottom > 1 {
			t.Fatalf("triangle %d is degenerate at a pole: %v", tri/3, indices[tri:tri+3])
		}
	}
}

func TestGenerateSphereDeterministic(t *testing.T) {
	v1, i1, _ := GenerateSphere(1.25, 24, 12)
	v2, i2, _ := GenerateSphere(1.25, 24, 12)

	if len(v1) != len(v2) || len(i1) != len(i2) {
		t.Fatal("repeated generation changed sizes")
	}
	for i := range v1 {
		if v1[i] != v2[i] {
			t.Fatalf("vertex %d differs between runs", i)
		}
	}
	for i := range i1 {
		if i1[i] != i2[i] {
			t.Fatalf("index %d differs between runs", i)
		}
	}
}

func TestGenerateSphereInvalid(t *testing.T) {
	tests := []struct {
		name            string
		radius          float32
		sectors, stacks int
	}{
		{"zero radius", 0, 32, 16},
		{"too few sectors", 1, 2, 16},
		{"too few stacks", 1, 32, 1},
	}
	for _, tt := range tests {
		if _, _, err := GenerateSphere(tt.radius, tt.sectors, tt.stacks); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestSphereMesh(t *testing.T) {
	m, err := Sphere(DefaultSphereRadius, DefaultSphereSectors, DefaultSphereStacks)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Indexed() {
		t.Error("sphere should be indexed")
	}
	if m.DrawCount() != 2880 {
		t.Errorf("sphere draw count = %d, want 2880", m.DrawCount())
	}
}
