// Package gltest provides a recording stand-in for rendering.GL so the
// renderer can be exercised without a GPU.
package gltest

import (
	"fmt"
	"strings"

	"github.com/fosdem/glshapes/lib/rendering"
	rc "github.com/fosdem/glshapes/lib/rendering/renderconsts"
)

var _ rendering.GL = (*GL)(nil)

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

type Shader struct {
	Kind     uint32
	Source   string
	Compiled bool
	Log      string
}

type Program struct {
	Shaders []uint32
	Linked  bool
	Log     string
}

// Draw is a recorded DrawElements together with the program in use.
type Draw struct {
	Program uint32
	VAO     uint32
	Mode    uint32
	Count   int32
	Type    uint32
	Offset  uintptr
}

// GL records calls and keeps just enough state to answer queries.
type GL struct {
	// FailCompile makes any shader whose source contains this marker fail
	// to compile. Empty means never.
	FailCompile string
	// FailLink makes every link fail.
	FailLink bool

	Calls    []Call
	Shaders  map[uint32]*Shader
	Programs map[uint32]*Program
	Buffers  map[uint32]any
	VAOs     map[uint32]bool
	Draws    []Draw
	Clears   int

	Deleted map[uint32]bool

	nextID     uint32
	program    uint32
	vao        uint32
	boundBufs  map[uint32]uint32
	attribsSet map[uint32]bool
}

func New() *GL {
	return &GL{
		Shaders:    make(map[uint32]*Shader),
		Programs:   make(map[uint32]*Program),
		Buffers:    make(map[uint32]any),
		VAOs:       make(map[uint32]bool),
		Deleted:    make(map[uint32]bool),
		boundBufs:  make(map[uint32]uint32),
		attribsSet: make(map[uint32]bool),
	}
}

func (g *GL) record(name string, args ...any) {
	g.Calls = append(g.Calls, Call{Name: name, Args: args})
}

func (g *GL) id() uint32 {
	g.nextID++
	return g.nextID
}

// Live returns the ids of objects that were created and not deleted.
func (g *GL) Live() []uint32 {
	var live []uint32
	for i := uint32(1); i <= g.nextID; i++ {
		if !g.Deleted[i] {
			live = append(live, i)
		}
	}
	return live
}

// CallNames lists recorded call names in order.
func (g *GL) CallNames() []string {
	names := make([]string, len(g.Calls))
	for i, c := range g.Calls {
		names[i] = c.Name
	}
	return names
}

// AttribEnabled reports whether a vertex attribute was enabled.
func (g *GL) AttribEnabled(index uint32) bool {
	return g.attribsSet[index]
}

func (g *GL) CreateShader(kind uint32) uint32 {
	id := g.id()
	g.Shaders[id] = &Shader{Kind: kind}
	g.record("CreateShader", kind)
	return id
}

func (g *GL) ShaderSource(shader uint32, source string) {
	g.record("ShaderSource", shader)
	if s, ok := g.Shaders[shader]; ok {
		s.Source = source
	}
}

func (g *GL) CompileShader(shader uint32) {
	g.record("CompileShader", shader)
	s, ok := g.Shaders[shader]
	if !ok {
		return
	}
	if g.FailCompile != "" && strings.Contains(s.Source, g.FailCompile) {
		s.Compiled = false
		s.Log = fmt.Sprintf("0:1(1): error: syntax error, unexpected '%s'", g.FailCompile)
		return
	}
	s.Compiled = true
}

func (g *GL) GetShaderiv(shader uint32, pname uint32, params *int32) {
	s, ok := g.Shaders[shader]
	if !ok {
		*params = 0
		return
	}
	switch pname {
	case rc.COMPILE_STATUS:
		*params = boolToInt(s.Compiled)
	case rc.INFO_LOG_LENGTH:
		*params = int32(len(s.Log))
	}
}

func (g *GL) GetShaderInfoLog(shader uint32) string {
	if s, ok := g.Shaders[shader]; ok {
		return s.Log
	}
	return ""
}

func (g *GL) DeleteShader(shader uint32) {
	g.record("DeleteShader", shader)
	g.Deleted[shader] = true
}

func (g *GL) CreateProgram() uint32 {
	id := g.id()
	g.Programs[id] = &Program{}
	g.record("CreateProgram")
	return id
}

func (g *GL) AttachShader(program uint32, shader uint32) {
	g.record("AttachShader", program, shader)
	if p, ok := g.Programs[program]; ok {
		p.Shaders = append(p.Shaders, shader)
	}
}

func (g *GL) LinkProgram(program uint32) {
	g.record("LinkProgram", program)
	p, ok := g.Programs[program]
	if !ok {
		return
	}
	if g.FailLink {
		p.Log = "error: linking failed"
		return
	}
	for _, sh := range p.Shaders {
		s, ok := g.Shaders[sh]
		if !ok || !s.Compiled {
			p.Log = fmt.Sprintf("error: shader %d is not compiled", sh)
			return
		}
	}
	p.Linked = true
}

func (g *GL) GetProgramiv(program uint32, pname uint32, params *int32) {
	p, ok := g.Programs[program]
	if !ok || g.Deleted[program] {
		*params = 0
		return
	}
	switch pname {
	case rc.LINK_STATUS:
		*params = boolToInt(p.Linked)
	case rc.INFO_LOG_LENGTH:
		*params = int32(len(p.Log))
	}
}

func (g *GL) GetProgramInfoLog(program uint32) string {
	if p, ok := g.Programs[program]; ok {
		return p.Log
	}
	return ""
}

func (g *GL) UseProgram(program uint32) {
	g.record("UseProgram", program)
	g.program = program
}

func (g *GL) DeleteProgram(program uint32) {
	g.record("DeleteProgram", program)
	g.Deleted[program] = true
}

func (g *GL) GenVertexArray() uint32 {
	id := g.id()
	g.VAOs[id] = true
	g.record("GenVertexArray")
	return id
}

func (g *GL) BindVertexArray(vao uint32) {
	g.record("BindVertexArray", vao)
	g.vao = vao
}

func (g *GL) DeleteVertexArray(vao uint32) {
	g.record("DeleteVertexArray", vao)
	g.Deleted[vao] = true
}

func (g *GL) GenBuffer() uint32 {
	id := g.id()
	g.Buffers[id] = nil
	g.record("GenBuffer")
	return id
}

func (g *GL) BindBuffer(target uint32, buffer uint32) {
	g.record("BindBuffer", target, buffer)
	g.boundBufs[target] = buffer
}

func (g *GL) BufferData(target uint32, data any, usage uint32) {
	g.record("BufferData", target, usage)
	g.Buffers[g.boundBufs[target]] = data
}

func (g *GL) DeleteBuffer(buffer uint32) {
	g.record("DeleteBuffer", buffer)
	g.Deleted[buffer] = true
}

func (g *GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	g.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	g.record("EnableVertexAttribArray", index)
	g.attribsSet[index] = true
}

func (g *GL) ClearColor(r, gr, b, a float32) {
	g.record("ClearColor", r, gr, b, a)
}

func (g *GL) Clear(mask uint32) {
	g.record("Clear", mask)
	g.Clears++
}

func (g *GL) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	g.record("DrawElements", mode, count, xtype, offset)
	g.Draws = append(g.Draws, Draw{
		Program: g.program,
		VAO:     g.vao,
		Mode:    mode,
		Count:   count,
		Type:    xtype,
		Offset:  offset,
	})
}

func (g *GL) Version() string {
	return "gltest / fake / 3.3"
}

func boolToInt(b bool) int32 {
	if b {
		return rc.TRUE
	}
	return rc.FALSE
}
