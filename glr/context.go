// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"github.com/devblok/glstream/device"
	"github.com/devblok/glstream/gfx"
)

// Strategy names a streaming implementation the Context can route
// draws to.
type Strategy int

// Recognized strategies. StrategyNone is the zero value and resolves
// to ErrInvalidStrategy.
const (
	StrategyNone Strategy = iota
	StrategyRingBuffer
	StrategyBufferPool
)

// String implements fmt.Stringer
func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "None"
	case StrategyRingBuffer:
		return "RingBuffer"
	case StrategyBufferPool:
		return "BufferPool"
	}
	return "Unknown"
}

// NewContext creates a renderer context with the given initial strategy
// selection. The strategy instance itself is constructed lazily on the
// first draw.
func NewContext(dev device.Device, initial Strategy) *Context {
	return &Context{dev: dev, desired: initial}
}

// Context routes draw submissions to the currently selected streaming
// strategy, constructing strategy instances on first use and whenever
// the selection changes.
//
// SetStrategy only records the selection; the swap happens inside the
// next draw, on the rendering thread. Switching strategies does not
// release the previous strategy's device buffers. Call Release before
// switching if reclaiming that memory matters.
type Context struct {
	dev device.Device

	desired  Strategy
	resolved Strategy
	active   Streamer
}

// SetStrategy records the strategy to use for subsequent draws.
func (c *Context) SetStrategy(s Strategy) {
	c.desired = s
}

// Strategy returns the currently selected strategy.
func (c *Context) Strategy() Strategy {
	return c.desired
}

// DrawArrays submits a non-indexed draw through the active strategy.
func (c *Context) DrawArrays(vao *VertexArray, mode gfx.PrimitiveType, first, count int32, components []VertexComponent) error {
	s, err := c.resolve()
	if err != nil {
		return err
	}
	return s.DrawArrays(&DrawBatch{
		VertexArray: vao,
		Mode:        mode,
		First:       first,
		Count:       count,
		Components:  components,
	})
}

// DrawElements submits an indexed draw through the active strategy.
// Fails with ErrIndexedUnsupported when the ring strategy is active.
func (c *Context) DrawElements(vao *VertexArray, mode gfx.PrimitiveType, first, count int32, components []VertexComponent, elements *ElementData) error {
	s, err := c.resolve()
	if err != nil {
		return err
	}
	return s.DrawElements(&DrawBatch{
		VertexArray: vao,
		Mode:        mode,
		First:       first,
		Count:       count,
		Components:  components,
	}, elements)
}

// Release frees the active strategy's device resources, if any, and
// forces the next draw to construct a fresh instance.
func (c *Context) Release() {
	if c.active != nil {
		c.active.Release()
		c.active = nil
		c.resolved = StrategyNone
	}
}

// resolve returns the active streamer, reusing it while the selection
// is unchanged and constructing the newly selected strategy otherwise.
func (c *Context) resolve() (Streamer, error) {
	if c.active != nil && c.desired == c.resolved {
		return c.active, nil
	}
	switch c.desired {
	case StrategyRingBuffer:
		c.active = NewRingStreamer(c.dev)
	case StrategyBufferPool:
		c.active = NewPoolStreamer(c.dev)
	default:
		return nil, ErrInvalidStrategy
	}
	c.resolved = c.desired
	return c.active, nil
}
