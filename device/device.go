// Package device abstracts the graphics device calls used by the
// streaming renderers. The OpenGL implementation issues real driver
// calls; tests substitute an in-memory recorder.
package device

import "github.com/devblok/glstream/gfx"

// Target selects the buffer binding point a call operates on.
type Target int

// Recognized buffer binding points.
const (
	ArrayBuffer Target = iota
	ElementArrayBuffer
)

// Usage hints the driver about a buffer's access pattern.
type Usage int

// Recognized usage hints. StreamDraw marks contents that are written
// frequently and read a limited number of times.
const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

// Device describes a non-concrete rendering device. Implementations are
// not safe for concurrent use; every call must happen on the thread that
// owns the rendering context.
type Device interface {
	// GenVertexArray allocates a vertex array object handle.
	GenVertexArray() uint32

	// DeleteVertexArray frees a vertex array object handle.
	DeleteVertexArray(vao uint32)

	// BindVertexArray makes a vertex array object current.
	BindVertexArray(vao uint32)

	// GenBuffer allocates a buffer object handle.
	GenBuffer() uint32

	// DeleteBuffer frees a buffer object handle.
	DeleteBuffer(buf uint32)

	// BindBuffer makes a buffer current on the given binding point.
	BindBuffer(target Target, buf uint32)

	// BufferData re-specifies the bound buffer's storage. A nil data
	// slice orphans the buffer: storage of the given size is allocated
	// with undefined contents, telling the driver that previous contents
	// are disposable.
	BufferData(target Target, size int, data []byte, usage Usage)

	// BufferSubData copies data into the bound buffer at a byte offset.
	BufferSubData(target Target, offset int, data []byte)

	// EnableVertexAttrib enables an attribute slot on the bound
	// vertex array object.
	EnableVertexAttrib(index uint32)

	// VertexAttribPointer describes how the attribute slot reads the
	// bound array buffer, starting at a byte offset into it.
	VertexAttribPointer(index uint32, size int32, typ gfx.ElementType, normalized bool, stride int32, offset uintptr)

	// DrawArrays issues a non-indexed draw call.
	DrawArrays(mode gfx.PrimitiveType, first, count int32)

	// DrawElements issues an indexed draw call reading indices from the
	// bound element array buffer at a byte offset.
	DrawElements(mode gfx.PrimitiveType, count int32, typ gfx.ElementType, offset uintptr)

	// Err reports the device's sticky error state, nil when clean.
	Err() error
}
