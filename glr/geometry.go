// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import "github.com/devblok/glstream/gfx"

// VertexAttribute describes how to interpret one contiguous attribute
// slice inside a vertex component's bytes: which attribute slot it
// feeds, how many elements make up one vertex, the element type, and
// how the slice is laid out.
type VertexAttribute struct {

	// Index is the attribute slot the data binds to.
	Index uint32

	// Size is the number of elements per vertex, 1 through 4.
	Size int32

	// Type is the scalar type of each element.
	Type gfx.ElementType

	// Normalized maps integer elements to [0,1] or [-1,1] when read.
	Normalized bool

	// Stride is the byte distance between consecutive vertices.
	// Zero means tightly packed.
	Stride int32

	// ByteOffset locates the first element relative to the component's
	// placement in the device buffer.
	ByteOffset uintptr
}

// VertexComponent is one logical vertex stream, either standalone (all
// positions) or interleaved (position plus color in one run of bytes).
// The renderer borrows Data for the duration of a draw submission and
// never retains it past the call.
type VertexComponent struct {
	Data       []byte
	Attributes []VertexAttribute
}

// DrawBatch is one draw call's worth of work: the target vertex array,
// the primitive assembly mode, the draw range and the vertex components
// to upload. Batches are ephemeral; build one per submission and
// discard it.
type DrawBatch struct {
	VertexArray *VertexArray
	Mode        gfx.PrimitiveType
	First       int32
	Count       int32
	Components  []VertexComponent
}

// byteLen is the total payload size of all components in the batch.
func (b *DrawBatch) byteLen() int {
	total := 0
	for _, comp := range b.Components {
		total += len(comp.Data)
	}
	return total
}

// ElementData is the index payload of an indexed draw. Data is borrowed
// for the call only. Type is the scalar type of one index.
type ElementData struct {
	Data  []byte
	Count int32
	Type  gfx.ElementType
}
