// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import "github.com/devblok/glstream/device"

// baseRingCapacity is the smallest ring buffer the streamer allocates.
// Growth only ever doubles it, so the capacity stays of the form 64*2^k.
const baseRingCapacity = 64

// NewRingStreamer returns a ring streamer that allocates its device
// buffer lazily on the first draw.
func NewRingStreamer(dev device.Device) *RingStreamer {
	return &RingStreamer{dev: dev, capacity: baseRingCapacity}
}

// RingStreamer streams every batch through a single growable device
// buffer with a write cursor. When a batch would overflow the buffer,
// the storage is orphaned (re-specified with no data) so the driver can
// rotate to fresh backing memory instead of fencing on in-flight reads,
// and the cursor wraps to zero. Capacity only grows, and only when a
// single batch cannot fit even in an empty buffer.
//
// Invariants: cursor <= capacity after every draw; the cursor resets to
// zero exactly when the buffer is orphaned or re-specified.
type RingStreamer struct {
	dev      device.Device
	buffer   uint32
	capacity int
	cursor   int
}

// DrawArrays implements Streamer
func (r *RingStreamer) DrawArrays(batch *DrawBatch) error {
	needed := batch.byteLen()

	if r.cursor+needed >= r.capacity {
		for r.capacity < needed {
			r.capacity *= 2
		}
		if r.buffer != 0 {
			// Orphan: same handle, fresh storage, old contents disposable.
			r.dev.BindBuffer(device.ArrayBuffer, r.buffer)
			r.dev.BufferData(device.ArrayBuffer, r.capacity, nil, device.StreamDraw)
		}
		r.cursor = 0
	}
	if r.buffer == 0 {
		r.buffer = r.dev.GenBuffer()
		r.dev.BindBuffer(device.ArrayBuffer, r.buffer)
		r.dev.BufferData(device.ArrayBuffer, r.capacity, nil, device.StreamDraw)
	}

	r.dev.BindVertexArray(batch.VertexArray.Get())
	r.dev.BindBuffer(device.ArrayBuffer, r.buffer)

	pos := r.cursor
	for _, comp := range batch.Components {
		r.dev.BufferSubData(device.ArrayBuffer, pos, comp.Data)
		for _, attr := range comp.Attributes {
			r.dev.EnableVertexAttrib(attr.Index)
			r.dev.VertexAttribPointer(attr.Index, attr.Size, attr.Type,
				attr.Normalized, attr.Stride, uintptr(pos)+attr.ByteOffset)
		}
		pos += len(comp.Data)
	}

	r.dev.DrawArrays(batch.Mode, batch.First, batch.Count)
	r.cursor += needed
	return nil
}

// DrawElements implements Streamer. The single rotating buffer has no
// slot for element data, so indexed draws are rejected rather than
// silently worked around.
func (r *RingStreamer) DrawElements(*DrawBatch, *ElementData) error {
	return ErrIndexedUnsupported
}

// Release implements Streamer. The grown capacity is kept, so a reused
// streamer reallocates at the size it last needed.
func (r *RingStreamer) Release() {
	if r.buffer != 0 {
		r.dev.DeleteBuffer(r.buffer)
		r.buffer = 0
	}
	r.cursor = 0
}

// Capacity returns the current buffer capacity in bytes.
func (r *RingStreamer) Capacity() int {
	return r.capacity
}

// Cursor returns the current write cursor in bytes.
func (r *RingStreamer) Cursor() int {
	return r.cursor
}
