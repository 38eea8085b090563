package mesh

import (
	"github.com/Faultbox/sceneview/pkg/math"
)

// cubeTable is a unit cube centred at the origin: position, normal, uv per vertex.
var cubeTable = []float32{
	// Back face
	-0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	-0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	-0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	// Front face
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	// Left face
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,
	-0.5, 0.5, -0.5, -1, 0, 0, 1, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, 0.5, -1, 0, 0, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,
	// Right face
	0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 0, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 0, 1,
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
	// Bottom face
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 1,
	0.5, -0.5, -0.5, 0, -1, 0, 1, 1,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0, 0, 0,
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 1,
	// Top face
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
}

// groundTable is a 100x100 quad on y=0. UVs run to 50 so the texture repeats.
var groundTable = []float32{
	-50, 0, -50, 0, 1, 0, 0, 0,
	50, 0, -50, 0, 1, 0, 50, 0,
	50, 0, 50, 0, 1, 0, 50, 50,

	50, 0, 50, 0, 1, 0, 50, 50,
	-50, 0, 50, 0, 1, 0, 0, 50,
	-50, 0, -50, 0, 1, 0, 0, 0,
}

// pyramidTable is a square base on y=0 with the apex at (0, 1, 0).
var pyramidTable = []float32{
	// Base
	-0.5, 0, -0.5, 0, -1, 0, 0, 0,
	0.5, 0, -0.5, 0, -1, 0, 1, 0,
	0.5, 0, 0.5, 0, -1, 0, 1, 1,
	0.5, 0, 0.5, 0, -1, 0, 1, 1,
	-0.5, 0, 0.5, 0, -1, 0, 0, 1,
	-0.5, 0, -0.5, 0, -1, 0, 0, 0,

	// Back
	-0.5, 0, -0.5, 0, 0.4472, -0.8944, 0, 0,
	0, 1, 0, 0, 0.4472, -0.8944, 0.5, 1,
	0.5, 0, -0.5, 0, 0.4472, -0.8944, 1, 0,

	// Right
	0.5, 0, -0.5, 0.8944, 0.4472, 0, 0, 0,
	0, 1, 0, 0.8944, 0.4472, 0, 0.5, 1,
	0.5, 0, 0.5, 0.8944, 0.4472, 0, 1, 0,

	// Front
	0.5, 0, 0.5, 0, 0.4472, 0.8944, 0, 0,
	0, 1, 0, 0, 0.4472, 0.8944, 0.5, 1,
	-0.5, 0, 0.5, 0, 0.4472, 0.8944, 1, 0,

	// Left
	-0.5, 0, 0.5, -0.8944, 0.4472, 0, 0, 0,
	0, 1, 0, -0.8944, 0.4472, 0, 0.5, 1,
	-0.5, 0, -0.5, -0.8944, 0.4472, 0, 1, 0,
}

// skyboxPositions is a [-1, 1] cube, positions only.
var skyboxPositions = []float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1,
	1, -1, -1, 1, 1, -1, -1, 1, -1,

	-1, -1, 1, -1, -1, -1, -1, 1, -1,
	-1, 1, -1, -1, 1, 1, -1, -1, 1,

	1, -1, -1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, -1, 1, -1, -1,

	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, -1, 1, -1, -1, 1,

	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, 1, -1,

	-1, -1, -1, -1, -1, 1, 1, -1, 1,
	1, -1, 1, 1, -1, -1, -1, -1, -1,
}

// Cube returns the textured unit cube (36 vertices).
func Cube() *Mesh {
	return &Mesh{Name: "cube", Vertices: fromTable(cubeTable)}
}

// Ground returns the textured ground quad (6 vertices).
func Ground() *Mesh {
	return &Mesh{Name: "ground", Vertices: fromTable(groundTable)}
}

// Pyramid returns the square pyramid (18 vertices).
func Pyramid() *Mesh {
	return &Mesh{Name: "pyramid", Vertices: fromTable(pyramidTable)}
}

// Skybox returns the sky cube. Only positions reach the GPU; the normal is
// filled with the outward direction so every Vertex carries a unit normal.
func Skybox() *Mesh {
	vertices := make([]Vertex, 0, len(skyboxPositions)/3)
	for i := 0; i+3 <= len(skyboxPositions); i += 3 {
		p := math.Vec3{X: skyboxPositions[i], Y: skyboxPositions[i+1], Z: skyboxPositions[i+2]}
		vertices = append(vertices, Vertex{
			Position: p.Array(),
			Normal:   p.Normalize().Array(),
		})
	}
	return &Mesh{Name: "skybox", Layout: LayoutPosition, Vertices: vertices}
}
