// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import "github.com/devblok/glstream/device"

// NewPoolStreamer returns a pool streamer with an empty buffer pool.
func NewPoolStreamer(dev device.Device) *PoolStreamer {
	return &PoolStreamer{dev: dev}
}

// PoolStreamer keeps one device buffer per vertex component, plus one
// more for element data on indexed draws. Buffers are created lazily
// and reused across calls; the pool only ever grows until Release.
// Every call re-uploads each component in full and, right after the
// draw, re-specifies each used buffer with no data (an explicit orphan)
// so the driver treats the just-drawn contents as disposable.
//
// This is the unoptimized reference strategy the ring streamer is
// validated against. It is not trying to be fast; keep it simple.
type PoolStreamer struct {
	dev     device.Device
	buffers []uint32
	sizes   []int
}

// DrawArrays implements Streamer
func (p *PoolStreamer) DrawArrays(batch *DrawBatch) error {
	p.ensure(len(batch.Components))
	p.dev.BindVertexArray(batch.VertexArray.Get())
	p.uploadComponents(batch)
	p.dev.DrawArrays(batch.Mode, batch.First, batch.Count)
	p.orphan(len(batch.Components))
	return nil
}

// DrawElements implements Streamer
func (p *PoolStreamer) DrawElements(batch *DrawBatch, elements *ElementData) error {
	n := len(batch.Components)
	p.ensure(n + 1)
	p.dev.BindVertexArray(batch.VertexArray.Get())
	p.uploadComponents(batch)

	p.dev.BindBuffer(device.ElementArrayBuffer, p.buffers[n])
	p.dev.BufferData(device.ElementArrayBuffer, len(elements.Data), elements.Data, device.StreamDraw)
	p.sizes[n] = len(elements.Data)

	p.dev.DrawElements(batch.Mode, elements.Count, elements.Type, 0)
	p.orphan(n + 1)
	return nil
}

// Release implements Streamer. Empties the pool entirely; a reused
// streamer regrows from scratch.
func (p *PoolStreamer) Release() {
	for _, buf := range p.buffers {
		p.dev.DeleteBuffer(buf)
	}
	p.buffers = p.buffers[:0]
	p.sizes = p.sizes[:0]
}

// PoolLen returns the number of buffers currently in the pool.
func (p *PoolStreamer) PoolLen() int {
	return len(p.buffers)
}

func (p *PoolStreamer) ensure(n int) {
	for len(p.buffers) < n {
		p.buffers = append(p.buffers, p.dev.GenBuffer())
		p.sizes = append(p.sizes, 0)
	}
}

func (p *PoolStreamer) uploadComponents(batch *DrawBatch) {
	for i, comp := range batch.Components {
		p.dev.BindBuffer(device.ArrayBuffer, p.buffers[i])
		p.dev.BufferData(device.ArrayBuffer, len(comp.Data), comp.Data, device.StreamDraw)
		p.sizes[i] = len(comp.Data)
		for _, attr := range comp.Attributes {
			p.dev.EnableVertexAttrib(attr.Index)
			p.dev.VertexAttribPointer(attr.Index, attr.Size, attr.Type,
				attr.Normalized, attr.Stride, attr.ByteOffset)
		}
	}
}

// orphan re-specifies the first n pool buffers with their current
// length and no data.
func (p *PoolStreamer) orphan(n int) {
	for i := 0; i < n; i++ {
		p.dev.BindBuffer(device.ArrayBuffer, p.buffers[i])
		p.dev.BufferData(device.ArrayBuffer, p.sizes[i], nil, device.StreamDraw)
	}
}
