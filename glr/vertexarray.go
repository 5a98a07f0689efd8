// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import "github.com/devblok/glstream/device"

// NewVertexArray returns a handle whose device vertex array object is
// created on first use.
func NewVertexArray(dev device.Device) *VertexArray {
	return &VertexArray{dev: dev}
}

// VertexArray owns zero-or-one device vertex array object. The id is
// either zero (unallocated) or a live device handle, never a stale
// freed one.
type VertexArray struct {
	dev device.Device
	id  uint32
}

// Get returns the device handle, allocating it on the first call.
func (v *VertexArray) Get() uint32 {
	if v.id == 0 {
		v.id = v.dev.GenVertexArray()
	}
	return v.id
}

// Release deletes the device handle if one was created. Safe to call
// more than once.
func (v *VertexArray) Release() {
	if v.id != 0 {
		v.dev.DeleteVertexArray(v.id)
		v.id = 0
	}
}
