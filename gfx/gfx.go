// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines rendering related vocabulary shared by renderers
// and the code that feeds them.
package gfx

// Releasable defines any memory-occupying item that can be freed.
type Releasable interface {

	// Release releases memory occupied by the implementing structure.
	Release()
}

// PrimitiveType selects how a draw call assembles vertices into primitives.
type PrimitiveType int

// Recognized primitive types.
const (
	Points PrimitiveType = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
)

// String implements fmt.Stringer
func (p PrimitiveType) String() string {
	switch p {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineStrip:
		return "LineStrip"
	case LineLoop:
		return "LineLoop"
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	}
	return "Unknown"
}

// ElementType is the scalar type of one vertex attribute or index element.
type ElementType int

// Recognized element types.
const (
	Int8 ElementType = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
)

// Size returns the size of one element in bytes.
func (t ElementType) Size() int {
	switch t {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	}
	return 0
}

// String implements fmt.Stringer
func (t ElementType) String() string {
	switch t {
	case Int8:
		return "Int8"
	case Uint8:
		return "Uint8"
	case Int16:
		return "Int16"
	case Uint16:
		return "Uint16"
	case Int32:
		return "Int32"
	case Uint32:
		return "Uint32"
	case Float32:
		return "Float32"
	}
	return "Unknown"
}
