package kbdctl

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeyWindow is the part of *glfw.Window input handling needs.
type KeyWindow interface {
	GetKey(key glfw.Key) glfw.Action
	SetShouldClose(value bool)
}

var namedKeys = map[string]glfw.Key{
	"escape": glfw.KeyEscape,
	"space":  glfw.KeySpace,
	"enter":  glfw.KeyEnter,
	"tab":    glfw.KeyTab,
	"q":      glfw.KeyQ,
}

// ParseKey accepts a single letter or digit, or one of a few named keys.
func ParseKey(name string) (glfw.Key, error) {
	lower := strings.ToLower(name)
	if key, ok := namedKeys[lower]; ok {
		return key, nil
	}
	if len(lower) == 1 {
		c := lower[0]
		switch {
		case c >= 'a' && c <= 'z':
			return glfw.KeyA + glfw.Key(c-'a'), nil
		case c >= '0' && c <= '9':
			return glfw.Key0 + glfw.Key(c-'0'), nil
		}
	}
	return glfw.KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// CloseOnKey returns the per-frame input check: while key is held down
// the window is told to close.
func CloseOnKey(w KeyWindow, key glfw.Key) func() {
	return func() {
		ProcessInput(w, key)
	}
}

func ProcessInput(w KeyWindow, key glfw.Key) bool {
	if w.GetKey(key) != glfw.Press {
		return false
	}
	slog.Info("told to quit, exiting", slog.String("module", "kbdctl"))
	w.SetShouldClose(true)
	return true
}

func Poll() {
	glfw.PollEvents()
}
