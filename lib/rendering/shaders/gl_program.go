package shaders

import (
	"errors"
	"fmt"

	"github.com/fosdem/glshapes/lib/metrics"
	"github.com/fosdem/glshapes/lib/rendering"
	rc "github.com/fosdem/glshapes/lib/rendering/renderconsts"
	"github.com/fosdem/glshapes/lib/utils"
)

// ShaderError carries the driver's info log for a failed compile or link.
type ShaderError struct {
	Stage string
	Link  bool
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Link {
		return fmt.Sprintf("failed to link program %s: %s", e.Stage, e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// Programs are the two linked programs, one per fill colour.
type Programs struct {
	White uint32
	Black uint32
}

// BuildPrograms compiles the shared vertex shader and both fragment
// shaders and links them. Compile and link failures do not stop the
// build: they are returned alongside whatever program objects were made,
// which then draw nothing. Only a broken template yields no programs.
func BuildPrograms(g rendering.GL) (*Programs, []error) {
	shaderer, err := NewShaderer()
	if err != nil {
		return nil, []error{fmt.Errorf("could not get shaders: %w", err)}
	}

	vertexSource, err := shaderer.GetShaderSource(VertexShaderName, nil)
	if err != nil {
		return nil, []error{fmt.Errorf("could not get vertex shader: %w", err)}
	}
	whiteSource, err := shaderer.GetShaderSource(FragmentShaderName, &ShaderData{Colour: utils.White})
	if err != nil {
		return nil, []error{fmt.Errorf("could not get white fragment shader: %w", err)}
	}
	blackSource, err := shaderer.GetShaderSource(FragmentShaderName, &ShaderData{Colour: utils.Black})
	if err != nil {
		return nil, []error{fmt.Errorf("could not get black fragment shader: %w", err)}
	}

	return LinkPrograms(g, vertexSource, whiteSource, blackSource)
}

// LinkPrograms builds both programs from already rendered sources.
func LinkPrograms(g rendering.GL, vertexSource, whiteSource, blackSource string) (*Programs, []error) {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	vertexShader, err := CompileShader(g, "vertex", vertexSource, rc.VERTEX_SHADER)
	collect(err)
	whiteShader, err := CompileShader(g, "fragment (white)", whiteSource, rc.FRAGMENT_SHADER)
	collect(err)
	blackShader, err := CompileShader(g, "fragment (black)", blackSource, rc.FRAGMENT_SHADER)
	collect(err)

	p := &Programs{}
	p.White, err = LinkProgram(g, "white", vertexShader, whiteShader)
	collect(err)
	p.Black, err = LinkProgram(g, "black", vertexShader, blackShader)
	collect(err)

	// the programs keep what they need from the shaders
	g.DeleteShader(vertexShader)
	g.DeleteShader(whiteShader)
	g.DeleteShader(blackShader)

	return p, errs
}

// CompileShader always returns the shader object, even when compiling
// failed, so that callers can carry on.
func CompileShader(g rendering.GL, stage string, source string, shaderType uint32) (uint32, error) {
	shader := g.CreateShader(shaderType)
	g.ShaderSource(shader, source)
	g.CompileShader(shader)

	var status int32
	g.GetShaderiv(shader, rc.COMPILE_STATUS, &status)
	if status == rc.FALSE {
		metrics.ShaderErrors.WithLabelValues(stage).Inc()
		return shader, &ShaderError{Stage: stage, Log: infoLog(g.GetShaderInfoLog(shader))}
	}

	return shader, nil
}

// LinkProgram always returns the program object, even when linking failed.
func LinkProgram(g rendering.GL, name string, shaders ...uint32) (uint32, error) {
	program := g.CreateProgram()

	for _, shader := range shaders {
		g.AttachShader(program, shader)
	}
	g.LinkProgram(program)

	var status int32
	g.GetProgramiv(program, rc.LINK_STATUS, &status)
	if status == rc.FALSE {
		metrics.ShaderErrors.WithLabelValues("program " + name).Inc()
		return program, &ShaderError{Stage: name, Link: true, Log: infoLog(g.GetProgramInfoLog(program))}
	}

	return program, nil
}

// Linked reports whether both programs have their link status set.
func (p *Programs) Linked(g rendering.GL) bool {
	for _, program := range []uint32{p.White, p.Black} {
		var status int32
		g.GetProgramiv(program, rc.LINK_STATUS, &status)
		if status == rc.FALSE {
			return false
		}
	}
	return true
}

func (p *Programs) Delete(g rendering.GL) {
	g.DeleteProgram(p.White)
	g.DeleteProgram(p.Black)
}

// IsShaderError reports whether err came from a compile or link failure.
func IsShaderError(err error) bool {
	var se *ShaderError
	return errors.As(err, &se)
}

func infoLog(log string) string {
	if log == "" {
		return "(driver gave no info log)"
	}
	return log
}
