package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// IndexSize is the size in bytes of one entry in the index buffer.
const IndexSize = 4

// ComponentsPerVertex is the number of floats per vertex: a position only.
const ComponentsPerVertex = 3

// Shape is a run of indices drawn with a single call.
type Shape struct {
	Name  string
	First int
	Count int
	// Vertex range the indices of this shape must stay within.
	MinVertex uint32
	MaxVertex uint32
}

// ByteOffset is where the shape starts in the index buffer.
func (s Shape) ByteOffset() uintptr {
	return uintptr(s.First * IndexSize)
}

type Mesh struct {
	Vertices []mgl32.Vec3
	Indices  []uint32
	Shapes   []Shape
}

// Default returns the white rectangle and black square.
func Default() *Mesh {
	return &Mesh{
		Vertices: []mgl32.Vec3{
			// rectangle
			{-0.1, -0.25, 0.0},
			{0.1, -0.25, 0.0},
			{0.1, 0.25, 0.0},
			{-0.1, 0.25, 0.0},

			// square
			{-0.2, 0.1, 0.0},
			{-0.1, 0.1, 0.0},
			{-0.1, 0.2, 0.0},
			{-0.2, 0.2, 0.0},
		},
		Indices: []uint32{
			0, 1, 2,
			2, 3, 0,
			4, 5, 6,
			6, 7, 4,
		},
		Shapes: []Shape{
			{Name: "rectangle", First: 0, Count: 6, MinVertex: 0, MaxVertex: 3},
			{Name: "square", First: 6, Count: 6, MinVertex: 4, MaxVertex: 7},
		},
	}
}

// Positions flattens the vertices for upload.
func (m *Mesh) Positions() []float32 {
	out := make([]float32, 0, len(m.Vertices)*ComponentsPerVertex)
	for _, v := range m.Vertices {
		out = append(out, v.X(), v.Y(), v.Z())
	}
	return out
}

// Shape looks up a shape by name.
func (m *Mesh) Shape(name string) (Shape, bool) {
	for _, s := range m.Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// MaxIndex is the largest entry in the index buffer.
func (m *Mesh) MaxIndex() uint32 {
	var hi uint32
	for _, i := range m.Indices {
		if i > hi {
			hi = i
		}
	}
	return hi
}

func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("mesh has no vertices")
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a whole number of triangles", len(m.Indices))
	}
	if hi := m.MaxIndex(); int(hi) >= len(m.Vertices) {
		return fmt.Errorf("index %d is out of range for %d vertices", hi, len(m.Vertices))
	}
	for _, s := range m.Shapes {
		if s.First < 0 || s.Count <= 0 || s.First+s.Count > len(m.Indices) {
			return fmt.Errorf("shape %s draws indices [%d,%d) outside of %d indices", s.Name, s.First, s.First+s.Count, len(m.Indices))
		}
		if s.Count%3 != 0 {
			return fmt.Errorf("shape %s draws %d indices, not whole triangles", s.Name, s.Count)
		}
		for _, i := range m.Indices[s.First : s.First+s.Count] {
			if i < s.MinVertex || i > s.MaxVertex {
				return fmt.Errorf("shape %s references vertex %d outside [%d,%d]", s.Name, i, s.MinVertex, s.MaxVertex)
			}
		}
	}
	return nil
}
