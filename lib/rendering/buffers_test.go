package rendering_test

import (
	"testing"

	"github.com/fosdem/glshapes/lib/geometry"
	"github.com/fosdem/glshapes/lib/rendering"
	"github.com/fosdem/glshapes/lib/rendering/gltest"
	rc "github.com/fosdem/glshapes/lib/rendering/renderconsts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDefaultMesh(t *testing.T) {
	g := gltest.New()
	mesh := geometry.Default()

	b, err := rendering.Upload(g, mesh)
	require.NoError(t, err)

	assert.NotZero(t, b.VAO)
	assert.NotZero(t, b.VBO)
	assert.NotZero(t, b.EBO)
	assert.Equal(t, mesh.Positions(), g.Buffers[b.VBO])
	assert.Equal(t, mesh.Indices, g.Buffers[b.EBO])
	assert.True(t, g.AttribEnabled(rendering.PositionAttrib))

	var attrib *gltest.Call
	for i, c := range g.Calls {
		if c.Name == "VertexAttribPointer" {
			attrib = &g.Calls[i]
		}
	}
	require.NotNil(t, attrib)
	assert.Equal(t, []any{uint32(0), int32(3), uint32(rc.FLOAT), false, int32(12), uintptr(0)}, attrib.Args)

	// leaves nothing bound behind
	last := g.Calls[len(g.Calls)-1]
	assert.Equal(t, "BindVertexArray", last.Name)
	assert.Equal(t, []any{uint32(0)}, last.Args)
}

func TestUploadRejectsInvalidMesh(t *testing.T) {
	g := gltest.New()
	mesh := geometry.Default()
	mesh.Indices[0] = 42

	_, err := rendering.Upload(g, mesh)
	assert.Error(t, err)
	assert.Empty(t, g.Calls)
}

func TestDrawUsesShapeOffsets(t *testing.T) {
	g := gltest.New()
	mesh := geometry.Default()
	b, err := rendering.Upload(g, mesh)
	require.NoError(t, err)

	for _, s := range mesh.Shapes {
		b.Draw(g, s)
	}

	require.Len(t, g.Draws, 2)
	assert.EqualValues(t, 6, g.Draws[0].Count)
	assert.EqualValues(t, 0, g.Draws[0].Offset)
	assert.EqualValues(t, 6, g.Draws[1].Count)
	assert.EqualValues(t, 6*4, g.Draws[1].Offset)
	for _, d := range g.Draws {
		assert.EqualValues(t, rc.TRIANGLES, d.Mode)
		assert.EqualValues(t, rc.UNSIGNED_INT, d.Type)
	}
}

func TestDeleteReleasesEverything(t *testing.T) {
	g := gltest.New()
	b, err := rendering.Upload(g, geometry.Default())
	require.NoError(t, err)

	b.Delete(g)
	assert.Empty(t, g.Live())
}
