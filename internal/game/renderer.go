//go:build !android

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl64"

	"lookandpick/internal/room"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

var (
	roomColor = [3]float32{0.78, 0.80, 0.84}
	lightDir  = [3]float32{-0.3, -0.9, -0.3}
)

type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uMVP        int32
	uModel      int32
	uNormalSign int32
	uColor      int32
	uAmbient    int32
	uLightDir   int32
	uHighlight  int32
	uGrid       int32

	vertexCount int32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(sceneVertSrc, sceneFragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}
	r := &Renderer{
		prog:        prog,
		uMVP:        gl.GetUniformLocation(prog, gl.Str("uMVP\x00")),
		uModel:      gl.GetUniformLocation(prog, gl.Str("uModel\x00")),
		uNormalSign: gl.GetUniformLocation(prog, gl.Str("uNormalSign\x00")),
		uColor:      gl.GetUniformLocation(prog, gl.Str("uColor\x00")),
		uAmbient:    gl.GetUniformLocation(prog, gl.Str("uAmbient\x00")),
		uLightDir:   gl.GetUniformLocation(prog, gl.Str("uLightDir\x00")),
		uHighlight:  gl.GetUniformLocation(prog, gl.Str("uHighlight\x00")),
		uGrid:       gl.GetUniformLocation(prog, gl.Str("uGrid\x00")),
	}

	mesh := room.CubeMesh()
	r.vertexCount = int32(len(mesh) / room.CubeFloatsPerVertex)
	stride := int32(room.CubeFloatsPerVertex * 4)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh)*4, gl.Ptr(mesh), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.BindVertexArray(0)

	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.Uniform1f(r.uAmbient, Ambient)
	gl.Uniform3f(r.uLightDir, lightDir[0], lightDir[1], lightDir[2])
}

// DrawRoom draws the room box seen from inside.
func (r *Renderer) DrawRoom(viewProj mgl64.Mat4) {
	r.draw(viewProj, room.RoomModel(), roomColor, -1, 0, 2)
}

// DrawTarget draws one target cube, brightened while gazed at.
func (r *Renderer) DrawTarget(viewProj, model mgl64.Mat4, color [3]float32, gazed bool) {
	var hl float32
	if gazed {
		hl = GazeHighlight
	}
	r.draw(viewProj, model, color, 1, hl, 0)
}

func (r *Renderer) draw(viewProj, model mgl64.Mat4, color [3]float32, normalSign, highlight, grid float32) {
	mvp := mat32(viewProj.Mul4(model))
	m := mat32(model)
	gl.UniformMatrix4fv(r.uMVP, 1, false, &mvp[0])
	gl.UniformMatrix4fv(r.uModel, 1, false, &m[0])
	gl.Uniform1f(r.uNormalSign, normalSign)
	gl.Uniform3f(r.uColor, color[0], color[1], color[2])
	gl.Uniform1f(r.uHighlight, highlight)
	gl.Uniform1f(r.uGrid, grid)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
}
