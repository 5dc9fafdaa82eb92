package kbdctl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	pressed     map[glfw.Key]bool
	shouldClose bool
}

func (w *fakeWindow) GetKey(key glfw.Key) glfw.Action {
	if w.pressed[key] {
		return glfw.Press
	}
	return glfw.Release
}

func (w *fakeWindow) SetShouldClose(value bool) {
	w.shouldClose = value
}

func TestParseKey(t *testing.T) {
	cases := map[string]glfw.Key{
		"A":      glfw.KeyA,
		"a":      glfw.KeyA,
		"z":      glfw.KeyZ,
		"7":      glfw.Key7,
		"Escape": glfw.KeyEscape,
		"SPACE":  glfw.KeySpace,
	}
	for name, want := range cases {
		got, err := ParseKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	for _, name := range []string{"", "ab", "F13", "ä"} {
		_, err := ParseKey(name)
		assert.Error(t, err, name)
	}
}

func TestCloseKeySetsShouldClose(t *testing.T) {
	w := &fakeWindow{pressed: map[glfw.Key]bool{}}
	check := CloseOnKey(w, glfw.KeyA)

	check()
	assert.False(t, w.shouldClose)

	w.pressed[glfw.KeyB] = true
	check()
	assert.False(t, w.shouldClose)

	w.pressed[glfw.KeyA] = true
	check()
	assert.True(t, w.shouldClose)
}
