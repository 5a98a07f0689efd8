// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package glr implements the dynamic vertex streaming renderers.
//
// Frequently-changing geometry (debug overlays, UI primitives,
// per-frame batches) is described as raw vertex bytes plus attribute
// descriptors and moved into device buffers by one of two
// interchangeable strategies. RingStreamer cycles everything through a
// single growable buffer, orphaning its storage to sidestep
// synchronization with in-flight draws. PoolStreamer keeps one buffer
// per vertex component and fully re-uploads every call; it exists as a
// simple correctness and performance baseline. Context selects between
// the two at runtime and routes draw submissions to the active one.
//
// Nothing in this package is safe for concurrent use. All state is
// confined to the thread that owns the rendering context.
package glr

import "errors"

// package errors
var (
	// ErrIndexedUnsupported is returned for an indexed draw submitted to
	// a streamer that does not implement indexed draws.
	ErrIndexedUnsupported = errors.New("glr: indexed draws not supported by this streamer")

	// ErrInvalidStrategy is returned when the selected strategy is not a
	// recognized one.
	ErrInvalidStrategy = errors.New("glr: invalid renderer strategy")
)

// Streamer is the contract both streaming strategies implement: submit
// a non-indexed draw, submit an indexed draw, release owned device
// resources.
type Streamer interface {

	// DrawArrays uploads the batch's vertex components and issues a
	// non-indexed draw call. The batch's byte payloads are borrowed for
	// the duration of the call only.
	DrawArrays(batch *DrawBatch) error

	// DrawElements uploads the batch and its element data and issues an
	// indexed draw call.
	DrawElements(batch *DrawBatch, elements *ElementData) error

	// Release frees every device buffer the streamer owns. Safe to call
	// more than once.
	Release()
}
