package painter

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/fosdem/glshapes/lib/geometry"
	"github.com/fosdem/glshapes/lib/metrics"
	"github.com/fosdem/glshapes/lib/rendering"
	rc "github.com/fosdem/glshapes/lib/rendering/renderconsts"
	"github.com/fosdem/glshapes/lib/rendering/shaders"
	"github.com/fosdem/glshapes/lib/stats"
	"github.com/fosdem/glshapes/lib/utils"
)

// Window is what the render loop needs from the window it presents to.
type Window interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()
	Destroy()
}

type Options struct {
	// ProcessInput runs at the top of every iteration.
	ProcessInput func()
	// PollEvents runs after every swap.
	PollEvents  func()
	ClearColour utils.Colour
	Mesh        *geometry.Mesh
}

// pass is one draw call: a shape filled by a program.
type pass struct {
	shape   geometry.Shape
	program uint32
	metrics metrics.ShapeMetrics
}

// Painter owns every GL object of the program. All of its methods except
// RequestShutdown and State must run on the thread owning the context.
type Painter struct {
	gl     rendering.GL
	window Window
	opts   Options

	Programs *shaders.Programs
	Buffers  *rendering.Buffers
	Stats    *stats.Stats

	passes     []pass
	iterations int

	state             atomic.Int32
	shutdownRequested atomic.Bool
}

func New(g rendering.GL, window Window, opts Options) *Painter {
	if opts.ProcessInput == nil {
		opts.ProcessInput = func() {}
	}
	if opts.PollEvents == nil {
		opts.PollEvents = func() {}
	}
	if opts.Mesh == nil {
		opts.Mesh = geometry.Default()
	}
	return &Painter{
		gl:     g,
		window: window,
		opts:   opts,
		Stats:  stats.New(),
	}
}

// Setup builds both programs and uploads the geometry. Shader failures
// are logged and do not stop it; the affected shape just won't show.
func (p *Painter) Setup() error {
	programs, errs := shaders.BuildPrograms(p.gl)
	for _, err := range errs {
		slog.Error(err.Error(), slog.String("module", "shaders"))
	}
	if programs == nil {
		return fmt.Errorf("could not build shader programs")
	}
	p.Programs = programs

	buffers, err := rendering.Upload(p.gl, p.opts.Mesh)
	if err != nil {
		return fmt.Errorf("could not upload geometry: %w", err)
	}
	p.Buffers = buffers

	for _, fill := range []struct {
		shape   string
		program uint32
	}{
		{"rectangle", p.Programs.White},
		{"square", p.Programs.Black},
	} {
		shape, ok := p.opts.Mesh.Shape(fill.shape)
		if !ok {
			return fmt.Errorf("mesh has no %s", fill.shape)
		}
		p.passes = append(p.passes, pass{
			shape:   shape,
			program: fill.program,
			metrics: metrics.NewShapeMetrics(fill.shape),
		})
	}

	p.setState(Initialized)
	return nil
}

// Frame clears the framebuffer and draws both shapes.
func (p *Painter) Frame() {
	c := p.opts.ClearColour
	p.gl.ClearColor(c.R, c.G, c.B, c.A)
	p.gl.Clear(rc.COLOR_BUFFER_BIT)

	for i, d := range p.passes {
		p.gl.UseProgram(d.program)
		if i == 0 {
			// both shapes share the vertex layout
			p.gl.BindVertexArray(p.Buffers.VAO)
		}
		p.Buffers.Draw(p.gl, d.shape)
		d.metrics.DrawCalls.Inc()
	}
}

// Run loops until the window is asked to close.
func (p *Painter) Run() {
	p.setState(Running)
	for {
		if p.shutdownRequested.Load() {
			p.window.SetShouldClose(true)
		}
		if p.window.ShouldClose() {
			break
		}

		p.opts.ProcessInput()

		p.Frame()
		p.window.SwapBuffers()
		p.opts.PollEvents()

		p.iterations++
		metrics.FramesDrawn.Inc()
		p.Stats.Update()
	}
	p.setState(ClosingRequested)
	slog.Info(fmt.Sprintf("closing after %d frames", p.iterations), slog.String("module", "painter"))
}

// Teardown releases every GL object and the window. No input is looked
// at from here on.
func (p *Painter) Teardown() {
	if p.Buffers != nil {
		p.Buffers.Delete(p.gl)
	}
	if p.Programs != nil {
		p.Programs.Delete(p.gl)
	}
	p.window.Destroy()
	p.setState(Terminated)
}

// Paint is the whole life of the program: setup, loop and teardown.
func (p *Painter) Paint() error {
	err := p.Setup()
	if err != nil {
		p.Teardown()
		return err
	}
	p.Run()
	p.Teardown()
	return nil
}

// RequestShutdown may be called from any goroutine. The loop closes the
// window at the top of its next iteration.
func (p *Painter) RequestShutdown() {
	p.shutdownRequested.Store(true)
}

func (p *Painter) State() State {
	return State(p.state.Load())
}

// Iterations is how many frames the loop has drawn.
func (p *Painter) Iterations() int {
	return p.iterations
}

func (p *Painter) setState(s State) {
	p.state.Store(int32(s))
}
