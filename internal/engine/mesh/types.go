// Package mesh builds the static vertex data for the viewer's primitives.
package mesh

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Layout selects which vertex attributes are sent to the GPU.
type Layout int

const (
	// LayoutFull interleaves position, normal and texture coordinates (8 floats).
	LayoutFull Layout = iota
	// LayoutPosition sends positions only (3 floats). Used by the skybox.
	LayoutPosition
)

// Stride returns the number of floats per vertex for the layout.
func (l Layout) Stride() int {
	if l == LayoutPosition {
		return 3
	}
	return 8
}

// Mesh holds immutable geometry ready for GPU upload.
// Indices is nil for non-indexed triangle lists.
type Mesh struct {
	Name     string
	Layout   Layout
	Vertices []Vertex
	Indices  []uint32
}

// Indexed reports whether the mesh is drawn with an index buffer.
func (m *Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// DrawCount returns the element count passed to the draw call.
func (m *Mesh) DrawCount() int {
	if m.Indexed() {
		return len(m.Indices)
	}
	return len(m.Vertices)
}

// Interleave flattens the vertices into the float layout the shaders expect.
func (m *Mesh) Interleave() []float32 {
	stride := m.Layout.Stride()
	out := make([]float32, 0, len(m.Vertices)*stride)
	for _, v := range m.Vertices {
		out = append(out, v.Position[:]...)
		if m.Layout == LayoutFull {
			out = append(out, v.Normal[:]...)
			out = append(out, v.TexCoord[:]...)
		}
	}
	return out
}

// fromTable builds vertices from a flat pos/normal/uv table.
func fromTable(table []float32) []Vertex {
	vertices := make([]Vertex, 0, len(table)/8)
	for i := 0; i+8 <= len(table); i += 8 {
		vertices = append(vertices, Vertex{
			Position: [3]float32{table[i], table[i+1], table[i+2]},
			Normal:   [3]float32{table[i+3], table[i+4], table[i+5]},
			TexCoord: [2]float32{table[i+6], table[i+7]},
		})
	}
	return vertices
}
