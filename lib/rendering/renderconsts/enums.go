// Package renderconsts holds the OpenGL enum values the renderer uses, so
// code that only assembles GL calls does not need to link against cgo.
// The values are fixed by the OpenGL registry.
package renderconsts

const (
	FALSE = 0
	TRUE  = 1

	TRIANGLES = 0x0004

	UNSIGNED_INT = 0x1405
	FLOAT        = 0x1406

	COLOR_BUFFER_BIT = 0x00004000

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STATIC_DRAW          = 0x88E4

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84
)
