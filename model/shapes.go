// Package model builds per-frame demo geometry for the streaming
// renderer: small animated batches whose bytes change every frame,
// which is exactly the workload the streamers exist for.
package model

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/glstream/gfx"
	"github.com/devblok/glstream/glr"
)

// All shapes live in the unit square; Projection maps it to clip space.
func Projection() mgl32.Mat4 {
	return mgl32.Ortho2D(0, 1, 0, 1)
}

func appendFloat(buf []byte, v float32) []byte {
	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(v))
	return append(buf, scratch[:]...)
}

func appendVec2(buf []byte, v mgl32.Vec2) []byte {
	buf = appendFloat(buf, v.X())
	return appendFloat(buf, v.Y())
}

// LineGrid builds a grid of horizontal and vertical line segments whose
// rows ripple with the given phase. One tightly packed position stream,
// two floats per vertex.
func LineGrid(cols, rows int, phase float32) (glr.VertexComponent, int32) {
	var buf []byte
	count := int32(0)

	wave := func(x, y float32) mgl32.Vec2 {
		off := 0.01 * float32(math.Sin(float64(phase+x*8)))
		return mgl32.Vec2{x, y + off}
	}

	for r := 0; r <= rows; r++ {
		y := float32(r) / float32(rows)
		for c := 0; c < cols; c++ {
			x0 := float32(c) / float32(cols)
			x1 := float32(c+1) / float32(cols)
			buf = appendVec2(buf, wave(x0, y))
			buf = appendVec2(buf, wave(x1, y))
			count += 2
		}
	}
	for c := 0; c <= cols; c++ {
		x := float32(c) / float32(cols)
		buf = appendVec2(buf, mgl32.Vec2{x, 0})
		buf = appendVec2(buf, mgl32.Vec2{x, 1})
		count += 2
	}

	return glr.VertexComponent{
		Data: buf,
		Attributes: []glr.VertexAttribute{
			{Index: 0, Size: 2, Type: gfx.Float32},
		},
	}, count
}

// PointCloud builds an interleaved position-plus-color stream: two
// floats of position followed by four normalized color bytes, twelve
// bytes per vertex. Points orbit the center with the given phase.
func PointCloud(n int, phase float32) (glr.VertexComponent, int32) {
	const stride = 12
	buf := make([]byte, 0, n*stride)

	for i := 0; i < n; i++ {
		t := float32(i) / float32(n)
		angle := phase + t*2*math.Pi
		radius := 0.15 + 0.25*t
		pos := mgl32.Rotate2D(angle).Mul2x1(mgl32.Vec2{radius, 0}).Add(mgl32.Vec2{0.5, 0.5})
		buf = appendVec2(buf, pos)
		buf = append(buf, byte(255*t), byte(255*(1-t)), 200, 255)
	}

	return glr.VertexComponent{
		Data: buf,
		Attributes: []glr.VertexAttribute{
			{Index: 0, Size: 2, Type: gfx.Float32, Stride: stride},
			{Index: 1, Size: 4, Type: gfx.Uint8, Normalized: true, Stride: stride, ByteOffset: 8},
		},
	}, int32(n)
}

// Ribbon builds a rotating triangle fan around the center as an indexed
// mesh: a center vertex, a ring of segment vertices, and three indices
// per triangle. Only drawable by streamers that support indexed draws.
func Ribbon(segments int, phase float32) (glr.VertexComponent, *glr.ElementData) {
	var buf []byte
	buf = appendVec2(buf, mgl32.Vec2{0.5, 0.5})
	for i := 0; i <= segments; i++ {
		angle := phase + float32(i)/float32(segments)*2*math.Pi
		pos := mgl32.Rotate2D(angle).Mul2x1(mgl32.Vec2{0.35, 0}).Add(mgl32.Vec2{0.5, 0.5})
		buf = appendVec2(buf, pos)
	}

	indices := make([]byte, 0, segments*3*4)
	var scratch [4]byte
	putIndex := func(idx uint32) {
		binary.LittleEndian.PutUint32(scratch[:], idx)
		indices = append(indices, scratch[:]...)
	}
	for i := 0; i < segments; i++ {
		putIndex(0)
		putIndex(uint32(i + 1))
		putIndex(uint32(i + 2))
	}

	component := glr.VertexComponent{
		Data: buf,
		Attributes: []glr.VertexAttribute{
			{Index: 0, Size: 2, Type: gfx.Float32},
		},
	}
	return component, &glr.ElementData{
		Data:  indices,
		Count: int32(segments * 3),
		Type:  gfx.Uint32,
	}
}

// RibbonStrip is the non-indexed fallback of Ribbon for streamers that
// reject element data: the same fan unrolled into a triangle list.
func RibbonStrip(segments int, phase float32) (glr.VertexComponent, int32) {
	center := mgl32.Vec2{0.5, 0.5}
	ring := func(i int) mgl32.Vec2 {
		angle := phase + float32(i)/float32(segments)*2*math.Pi
		return mgl32.Rotate2D(angle).Mul2x1(mgl32.Vec2{0.35, 0}).Add(center)
	}

	var buf []byte
	for i := 0; i < segments; i++ {
		buf = appendVec2(buf, center)
		buf = appendVec2(buf, ring(i))
		buf = appendVec2(buf, ring(i+1))
	}

	return glr.VertexComponent{
		Data: buf,
		Attributes: []glr.VertexAttribute{
			{Index: 0, Size: 2, Type: gfx.Float32},
		},
	}, int32(segments * 3)
}
