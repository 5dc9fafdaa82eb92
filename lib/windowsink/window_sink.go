package windowsink

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/glshapes/lib/config"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowSink struct {
	Window *glfw.Window
	name   string
}

// New initialises GLFW and opens a window with a current OpenGL 3.3 core
// context. On error GLFW has already been terminated again.
func New(cfg *config.WindowCfg) (*WindowSink, error) {
	w := &WindowSink{name: cfg.Title}
	w.log("Initializing window")

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Resizable != nil {
		resizable := glfw.False
		if *cfg.Resizable {
			resizable = glfw.True
		}
		glfw.WindowHint(glfw.Resizable, resizable)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create window: %w", err)
	}

	window.MakeContextCurrent()
	w.Window = window

	return w, nil
}

// Destroy closes the window and shuts GLFW down.
func (w *WindowSink) Destroy() {
	w.log("Destroying window")
	if w.Window != nil {
		w.Window.Destroy()
		w.Window = nil
	}
	glfw.Terminate()
}

func (w *WindowSink) log(msg string, args ...interface{}) {
	slog.Info(fmt.Sprintf(msg, args...), slog.String("module", "window "+w.name))
}

func (w *WindowSink) ShouldClose() bool {
	return w.Window.ShouldClose()
}

func (w *WindowSink) SetShouldClose(value bool) {
	w.Window.SetShouldClose(value)
}

func (w *WindowSink) SwapBuffers() {
	w.Window.SwapBuffers()
}

func (w *WindowSink) GetKey(key glfw.Key) glfw.Action {
	return w.Window.GetKey(key)
}
