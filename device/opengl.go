package device

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/devblok/glstream/gfx"
)

// NewOpenGL initialises the go-gl bindings and returns a Device backed
// by them. An OpenGL context must be current on the calling thread.
func NewOpenGL() (Device, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.New("gl.Init(): " + err.Error())
	}
	return OpenGL{}, nil
}

// OpenGL issues device calls straight to the go-gl bindings.
type OpenGL struct{}

// GenVertexArray implements interface
func (OpenGL) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

// DeleteVertexArray implements interface
func (OpenGL) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

// BindVertexArray implements interface
func (OpenGL) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// GenBuffer implements interface
func (OpenGL) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

// DeleteBuffer implements interface
func (OpenGL) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

// BindBuffer implements interface
func (OpenGL) BindBuffer(target Target, buf uint32) {
	gl.BindBuffer(glTarget(target), buf)
}

// BufferData implements interface
func (OpenGL) BufferData(target Target, size int, data []byte, usage Usage) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(glTarget(target), size, ptr, glUsage(usage))
}

// BufferSubData implements interface
func (OpenGL) BufferSubData(target Target, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(glTarget(target), offset, len(data), gl.Ptr(data))
}

// EnableVertexAttrib implements interface
func (OpenGL) EnableVertexAttrib(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// VertexAttribPointer implements interface
func (OpenGL) VertexAttribPointer(index uint32, size int32, typ gfx.ElementType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, glType(typ), normalized, stride, offset)
}

// DrawArrays implements interface
func (OpenGL) DrawArrays(mode gfx.PrimitiveType, first, count int32) {
	gl.DrawArrays(glMode(mode), first, count)
}

// DrawElements implements interface
func (OpenGL) DrawElements(mode gfx.PrimitiveType, count int32, typ gfx.ElementType, offset uintptr) {
	gl.DrawElementsWithOffset(glMode(mode), count, glType(typ), offset)
}

// Err implements interface
func (OpenGL) Err() error {
	switch code := gl.GetError(); code {
	case gl.NO_ERROR:
		return nil
	case gl.INVALID_ENUM:
		return errors.New("GL_INVALID_ENUM")
	case gl.INVALID_VALUE:
		return errors.New("GL_INVALID_VALUE")
	case gl.INVALID_OPERATION:
		return errors.New("GL_INVALID_OPERATION")
	case gl.OUT_OF_MEMORY:
		return errors.New("GL_OUT_OF_MEMORY")
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return errors.New("GL_INVALID_FRAMEBUFFER_OPERATION")
	default:
		return fmt.Errorf("GL error 0x%04x", code)
	}
}

func glTarget(target Target) uint32 {
	switch target {
	case ArrayBuffer:
		return gl.ARRAY_BUFFER
	case ElementArrayBuffer:
		return gl.ELEMENT_ARRAY_BUFFER
	}
	panic(fmt.Sprintf("device: unknown buffer target %d", target))
}

func glUsage(usage Usage) uint32 {
	switch usage {
	case StaticDraw:
		return gl.STATIC_DRAW
	case DynamicDraw:
		return gl.DYNAMIC_DRAW
	case StreamDraw:
		return gl.STREAM_DRAW
	}
	panic(fmt.Sprintf("device: unknown usage hint %d", usage))
}

func glType(typ gfx.ElementType) uint32 {
	switch typ {
	case gfx.Int8:
		return gl.BYTE
	case gfx.Uint8:
		return gl.UNSIGNED_BYTE
	case gfx.Int16:
		return gl.SHORT
	case gfx.Uint16:
		return gl.UNSIGNED_SHORT
	case gfx.Int32:
		return gl.INT
	case gfx.Uint32:
		return gl.UNSIGNED_INT
	case gfx.Float32:
		return gl.FLOAT
	}
	panic(fmt.Sprintf("device: unknown element type %d", typ))
}

func glMode(mode gfx.PrimitiveType) uint32 {
	switch mode {
	case gfx.Points:
		return gl.POINTS
	case gfx.Lines:
		return gl.LINES
	case gfx.LineStrip:
		return gl.LINE_STRIP
	case gfx.LineLoop:
		return gl.LINE_LOOP
	case gfx.Triangles:
		return gl.TRIANGLES
	case gfx.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case gfx.TriangleFan:
		return gl.TRIANGLE_FAN
	}
	panic(fmt.Sprintf("device: unknown primitive type %d", mode))
}
