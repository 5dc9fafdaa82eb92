//go:build glnative

package renderconsts

import (
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestEnumsMatchBindings(t *testing.T) {
	assert.EqualValues(t, gl.TRIANGLES, TRIANGLES)
	assert.EqualValues(t, gl.UNSIGNED_INT, UNSIGNED_INT)
	assert.EqualValues(t, gl.FLOAT, FLOAT)
	assert.EqualValues(t, gl.COLOR_BUFFER_BIT, COLOR_BUFFER_BIT)
	assert.EqualValues(t, gl.ARRAY_BUFFER, ARRAY_BUFFER)
	assert.EqualValues(t, gl.ELEMENT_ARRAY_BUFFER, ELEMENT_ARRAY_BUFFER)
	assert.EqualValues(t, gl.STATIC_DRAW, STATIC_DRAW)
	assert.EqualValues(t, gl.FRAGMENT_SHADER, FRAGMENT_SHADER)
	assert.EqualValues(t, gl.VERTEX_SHADER, VERTEX_SHADER)
	assert.EqualValues(t, gl.COMPILE_STATUS, COMPILE_STATUS)
	assert.EqualValues(t, gl.LINK_STATUS, LINK_STATUS)
	assert.EqualValues(t, gl.INFO_LOG_LENGTH, INFO_LOG_LENGTH)
}
