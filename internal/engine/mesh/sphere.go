package mesh

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/sceneview/pkg/math"
)

// Default tessellation used by the viewer.
const (
	DefaultSphereRadius  = 0.5
	DefaultSphereSectors = 32
	DefaultSphereStacks  = 16
)

// GenerateSphere tessellates a UV sphere centred at the origin.
//
// Vertices are laid out row-major: stack i, sector j lives at i*(sectors+1)+j.
// Stack angles run from +90° down to -90°, so the poles sit on the Z axis.
// The first and last stacks emit one triangle per cell, leaving out the
// zero-area triangle that would touch the pole. The result depends only on
// the arguments.
func GenerateSphere(radius float32, sectors, stacks int) ([]Vertex, []uint32, error) {
	if radius <= 0 {
		return nil, nil, fmt.Errorf("sphere radius must be positive, got %v", radius)
	}
	if sectors < 3 || stacks < 2 {
		return nil, nil, fmt.Errorf("sphere needs at least 3 sectors and 2 stacks, got %d/%d", sectors, stacks)
	}

	sectorStep := 2 * gomath.Pi / float64(sectors)
	stackStep := gomath.Pi / float64(stacks)

	vertices := make([]Vertex, 0, (sectors+1)*(stacks+1))
	for i := 0; i <= stacks; i++ {
		stackAngle := gomath.Pi/2 - float64(i)*stackStep
		xy := float64(radius) * gomath.Cos(stackAngle)
		z := float32(float64(radius) * gomath.Sin(stackAngle))

		for j := 0; j <= sectors; j++ {
			sectorAngle := float64(j) * sectorStep
			p := math.Vec3{
				X: float32(xy * gomath.Cos(sectorAngle)),
				Y: float32(xy * gomath.Sin(sectorAngle)),
				Z: z,
			}
			vertices = append(vertices, Vertex{
				Position: p.Array(),
				Normal:   p.Normalize().Array(),
				TexCoord: [2]float32{float32(j) / float32(sectors), float32(i) / float32(stacks)},
			})
		}
	}

	indices := make([]uint32, 0, 6*sectors*(stacks-1))
	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1
		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				indices = append(indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
		}
	}

	return vertices, indices, nil
}

// Sphere returns the indexed sphere mesh.
func Sphere(radius float32, sectors, stacks int) (*Mesh, error) {
	vertices, indices, err := GenerateSphere(radius, sectors, stacks)
	if err != nil {
		return nil, err
	}
	return &Mesh{Name: "sphere", Vertices: vertices, Indices: indices}, nil
}
