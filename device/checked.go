package device

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/devblok/glstream/gfx"
)

// NewChecked wraps a Device so that every call is followed by a poll of
// the device error state. A dirty error state is a programming or
// resource-exhaustion error, never a transient condition, so it is
// logged with the failing call's name and arguments and then escalated
// with a panic.
func NewChecked(dev Device, log *logrus.Logger) Device {
	return &checked{dev: dev, log: log}
}

type checked struct {
	dev Device
	log *logrus.Logger
}

func (c *checked) check(call string, args ...interface{}) {
	err := c.dev.Err()
	if err == nil {
		return
	}
	c.log.WithFields(logrus.Fields{
		"call": call,
		"args": fmt.Sprint(args...),
	}).Error("device call failed")
	panic(fmt.Sprintf("device: %s%v: %v", call, args, err))
}

// GenVertexArray implements interface
func (c *checked) GenVertexArray() uint32 {
	vao := c.dev.GenVertexArray()
	c.check("GenVertexArray")
	return vao
}

// DeleteVertexArray implements interface
func (c *checked) DeleteVertexArray(vao uint32) {
	c.dev.DeleteVertexArray(vao)
	c.check("DeleteVertexArray", vao)
}

// BindVertexArray implements interface
func (c *checked) BindVertexArray(vao uint32) {
	c.dev.BindVertexArray(vao)
	c.check("BindVertexArray", vao)
}

// GenBuffer implements interface
func (c *checked) GenBuffer() uint32 {
	buf := c.dev.GenBuffer()
	c.check("GenBuffer")
	return buf
}

// DeleteBuffer implements interface
func (c *checked) DeleteBuffer(buf uint32) {
	c.dev.DeleteBuffer(buf)
	c.check("DeleteBuffer", buf)
}

// BindBuffer implements interface
func (c *checked) BindBuffer(target Target, buf uint32) {
	c.dev.BindBuffer(target, buf)
	c.check("BindBuffer", target, buf)
}

// BufferData implements interface
func (c *checked) BufferData(target Target, size int, data []byte, usage Usage) {
	c.dev.BufferData(target, size, data, usage)
	c.check("BufferData", target, size, usage)
}

// BufferSubData implements interface
func (c *checked) BufferSubData(target Target, offset int, data []byte) {
	c.dev.BufferSubData(target, offset, data)
	c.check("BufferSubData", target, offset, len(data))
}

// EnableVertexAttrib implements interface
func (c *checked) EnableVertexAttrib(index uint32) {
	c.dev.EnableVertexAttrib(index)
	c.check("EnableVertexAttrib", index)
}

// VertexAttribPointer implements interface
func (c *checked) VertexAttribPointer(index uint32, size int32, typ gfx.ElementType, normalized bool, stride int32, offset uintptr) {
	c.dev.VertexAttribPointer(index, size, typ, normalized, stride, offset)
	c.check("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

// DrawArrays implements interface
func (c *checked) DrawArrays(mode gfx.PrimitiveType, first, count int32) {
	c.dev.DrawArrays(mode, first, count)
	c.check("DrawArrays", mode, first, count)
}

// DrawElements implements interface
func (c *checked) DrawElements(mode gfx.PrimitiveType, count int32, typ gfx.ElementType, offset uintptr) {
	c.dev.DrawElements(mode, count, typ, offset)
	c.check("DrawElements", mode, count, typ, offset)
}

// Err implements interface
func (c *checked) Err() error {
	return c.dev.Err()
}
