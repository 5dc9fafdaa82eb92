package rendering

import (
	"fmt"

	"github.com/fosdem/glshapes/lib/geometry"
	rc "github.com/fosdem/glshapes/lib/rendering/renderconsts"
)

const f32 = 4

// PositionAttrib is the attribute location the vertex shader reads
// positions from. New attributes must not move it.
const PositionAttrib = 0

// Buffers are the GL objects holding a mesh. They are never updated
// after Upload.
type Buffers struct {
	VAO uint32
	VBO uint32
	EBO uint32

	Mesh *geometry.Mesh
}

func Upload(g GL, mesh *geometry.Mesh) (*Buffers, error) {
	err := mesh.Validate()
	if err != nil {
		return nil, fmt.Errorf("refusing to upload invalid mesh: %w", err)
	}

	b := &Buffers{Mesh: mesh}
	b.VAO = g.GenVertexArray()
	b.VBO = g.GenBuffer()
	b.EBO = g.GenBuffer()

	g.BindVertexArray(b.VAO)

	g.BindBuffer(rc.ARRAY_BUFFER, b.VBO)
	g.BufferData(rc.ARRAY_BUFFER, mesh.Positions(), rc.STATIC_DRAW)

	// the element buffer binding is recorded in the VAO
	g.BindBuffer(rc.ELEMENT_ARRAY_BUFFER, b.EBO)
	g.BufferData(rc.ELEMENT_ARRAY_BUFFER, mesh.Indices, rc.STATIC_DRAW)

	stride := int32(geometry.ComponentsPerVertex * f32)
	g.VertexAttribPointer(PositionAttrib, geometry.ComponentsPerVertex, rc.FLOAT, false, stride, 0)
	g.EnableVertexAttribArray(PositionAttrib)

	g.BindBuffer(rc.ARRAY_BUFFER, 0)
	g.BindVertexArray(0)

	return b, nil
}

// Draw issues an indexed draw for one shape. The VAO must be bound.
func (b *Buffers) Draw(g GL, shape geometry.Shape) {
	g.DrawElements(rc.TRIANGLES, int32(shape.Count), rc.UNSIGNED_INT, shape.ByteOffset())
}

func (b *Buffers) Delete(g GL) {
	g.DeleteVertexArray(b.VAO)
	g.DeleteBuffer(b.VBO)
	g.DeleteBuffer(b.EBO)
}
