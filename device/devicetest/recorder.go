// Package devicetest provides an in-memory device.Device implementation
// for exercising the streaming renderers without a live graphics context.
package devicetest

import (
	"fmt"

	"github.com/devblok/glstream/device"
	"github.com/devblok/glstream/gfx"
)

// Call records one device call and a rendering of its arguments.
type Call struct {
	Name string
	Args string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		VertexArrays: make(map[uint32]bool),
		Buffers:      make(map[uint32]bool),
		Bound:        make(map[device.Target]uint32),
		Stores:       make(map[uint32][]byte),
		Sizes:        make(map[uint32]int),
	}
}

// Recorder implements device.Device in memory. It hands out sequential
// handles, tracks live objects and buffer contents, and records every
// call in order. The zero handle stays reserved as the unallocated
// sentinel, matching real devices.
type Recorder struct {
	Calls []Call

	// ErrState is returned by Err; tests set it to simulate a failing
	// device call.
	ErrState error

	VertexArrays map[uint32]bool
	Buffers      map[uint32]bool
	Bound        map[device.Target]uint32
	BoundVAO     uint32

	// Stores holds the last specified contents per buffer handle. A nil
	// value means the buffer was last orphaned (storage without data).
	Stores map[uint32][]byte

	// Sizes holds the storage size per buffer handle.
	Sizes map[uint32]int

	nextID uint32
}

func (r *Recorder) record(name string, args ...interface{}) {
	r.Calls = append(r.Calls, Call{Name: name, Args: fmt.Sprint(args...)})
}

// Count returns how many recorded calls have the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Names returns the recorded call names in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Name
	}
	return names
}

// Reset forgets recorded calls but keeps live objects and buffer state.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// GenVertexArray implements device.Device
func (r *Recorder) GenVertexArray() uint32 {
	r.nextID++
	r.VertexArrays[r.nextID] = true
	r.record("GenVertexArray", r.nextID)
	return r.nextID
}

// DeleteVertexArray implements device.Device
func (r *Recorder) DeleteVertexArray(vao uint32) {
	delete(r.VertexArrays, vao)
	r.record("DeleteVertexArray", vao)
}

// BindVertexArray implements device.Device
func (r *Recorder) BindVertexArray(vao uint32) {
	r.BoundVAO = vao
	r.record("BindVertexArray", vao)
}

// GenBuffer implements device.Device
func (r *Recorder) GenBuffer() uint32 {
	r.nextID++
	r.Buffers[r.nextID] = true
	r.record("GenBuffer", r.nextID)
	return r.nextID
}

// DeleteBuffer implements device.Device
func (r *Recorder) DeleteBuffer(buf uint32) {
	delete(r.Buffers, buf)
	delete(r.Stores, buf)
	delete(r.Sizes, buf)
	r.record("DeleteBuffer", buf)
}

// BindBuffer implements device.Device
func (r *Recorder) BindBuffer(target device.Target, buf uint32) {
	r.Bound[target] = buf
	r.record("BindBuffer", target, buf)
}

// BufferData implements device.Device
func (r *Recorder) BufferData(target device.Target, size int, data []byte, usage device.Usage) {
	buf := r.Bound[target]
	r.Sizes[buf] = size
	if data == nil {
		r.Stores[buf] = nil
	} else {
		r.Stores[buf] = append([]byte(nil), data...)
	}
	r.record("BufferData", target, size, len(data), usage)
}

// BufferSubData implements device.Device
func (r *Recorder) BufferSubData(target device.Target, offset int, data []byte) {
	buf := r.Bound[target]
	store := r.Stores[buf]
	if need := offset + len(data); len(store) < need {
		grown := make([]byte, need)
		copy(grown, store)
		store = grown
	}
	copy(store[offset:], data)
	r.Stores[buf] = store
	r.record("BufferSubData", target, offset, len(data))
}

// EnableVertexAttrib implements device.Device
func (r *Recorder) EnableVertexAttrib(index uint32) {
	r.record("EnableVertexAttrib", index)
}

// VertexAttribPointer implements device.Device
func (r *Recorder) VertexAttribPointer(index uint32, size int32, typ gfx.ElementType, normalized bool, stride int32, offset uintptr) {
	r.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

// DrawArrays implements device.Device
func (r *Recorder) DrawArrays(mode gfx.PrimitiveType, first, count int32) {
	r.record("DrawArrays", mode, first, count)
}

// DrawElements implements device.Device
func (r *Recorder) DrawElements(mode gfx.PrimitiveType, count int32, typ gfx.ElementType, offset uintptr) {
	r.record("DrawElements", mode, count, typ, offset)
}

// Err implements device.Device
func (r *Recorder) Err() error {
	err := r.ErrState
	r.ErrState = nil
	return err
}
