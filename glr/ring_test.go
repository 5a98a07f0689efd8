// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr_test

import (
	"testing"

	"github.com/devblok/glstream/device/devicetest"
	"github.com/devblok/glstream/gfx"
	"github.com/devblok/glstream/glr"
)

// component builds a single-attribute vertex component with n bytes of
// payload, two floats per vertex.
func component(n int) glr.VertexComponent {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return glr.VertexComponent{
		Data: data,
		Attributes: []glr.VertexAttribute{
			{Index: 0, Size: 2, Type: gfx.Float32},
		},
	}
}

func batchOf(vao *glr.VertexArray, comps ...glr.VertexComponent) *glr.DrawBatch {
	count := int32(0)
	for _, c := range comps {
		count += int32(len(c.Data) / 8)
	}
	return &glr.DrawBatch{
		VertexArray: vao,
		Mode:        gfx.Lines,
		First:       0,
		Count:       count,
		Components:  comps,
	}
}

func TestRingFirstDrawAllocatesBaseline(t *testing.T) {
	dev := devicetest.NewRecorder()
	ring := glr.NewRingStreamer(dev)
	vao := glr.NewVertexArray(dev)

	if err := ring.DrawArrays(batchOf(vao, component(40))); err != nil {
		t.Fatal(err)
	}

	if ring.Capacity() != 64 {
		t.Errorf("capacity = %d, want 64", ring.Capacity())
	}
	if ring.Cursor() != 40 {
		t.Errorf("cursor = %d, want 40", ring.Cursor())
	}
	if got := dev.Count("GenBuffer"); got != 1 {
		t.Errorf("GenBuffer called %d times, want 1", got)
	}
	// One allocation, no orphan.
	if got := dev.Count("BufferData"); got != 1 {
		t.Errorf("BufferData called %d times, want 1", got)
	}
	if got := dev.Count("DrawArrays"); got != 1 {
		t.Errorf("DrawArrays called %d times, want 1", got)
	}
}

func TestRingOrphansExactlyOnOverflow(t *testing.T) {
	dev := devicetest.NewRecorder()
	ring := glr.NewRingStreamer(dev)
	vao := glr.NewVertexArray(dev)

	// 40 bytes fit: 0+40 < 64, no orphan.
	if err := ring.DrawArrays(batchOf(vao, component(40))); err != nil {
		t.Fatal(err)
	}
	dev.Reset()

	// 30 more would overflow: 40+30 >= 64, orphan then write at 0.
	if err := ring.DrawArrays(batchOf(vao, component(30))); err != nil {
		t.Fatal(err)
	}
	if got := dev.Count("BufferData"); got != 1 {
		t.Errorf("orphaning BufferData called %d times, want 1", got)
	}
	if ring.Cursor() != 30 {
		t.Errorf("cursor = %d, want 30 after orphan", ring.Cursor())
	}
	if ring.Capacity() != 64 {
		t.Errorf("capacity = %d, want 64 (no growth without need)", ring.Capacity())
	}
	if got := dev.Count("GenBuffer"); got != 0 {
		t.Errorf("GenBuffer called %d times after orphan, want 0", got)
	}
}

func TestRingNoOrphanWhileItFits(t *testing.T) {
	dev := devicetest.NewRecorder()
	ring := glr.NewRingStreamer(dev)
	vao := glr.NewVertexArray(dev)

	if err := ring.DrawArrays(batchOf(vao, component(16))); err != nil {
		t.Fatal(err)
	}
	dev.Reset()

	// 16+32 < 64: the second draw must neither reallocate nor reset.
	if err := ring.DrawArrays(batchOf(vao, component(32))); err != nil {
		t.Fatal(err)
	}
	if got := dev.Count("BufferData"); got != 0 {
		t.Errorf("BufferData called %d times, want 0", got)
	}
	if ring.Cursor() != 48 {
		t.Errorf("cursor = %d, want 48", ring.Cursor())
	}
}

func TestRingCapacityGrowthLaw(t *testing.T) {
	cases := []struct {
		needed   int
		capacity int
	}{
		{8, 64},
		{63, 64},
		{64, 64},
		{65, 128},
		{128, 128},
		{129, 256},
		{1000, 1024},
		{4096, 4096},
	}
	for _, tc := range cases {
		dev := devicetest.NewRecorder()
		ring := glr.NewRingStreamer(dev)
		vao := glr.NewVertexArray(dev)

		if err := ring.DrawArrays(batchOf(vao, component(tc.needed))); err != nil {
			t.Fatal(err)
		}
		if ring.Capacity() != tc.capacity {
			t.Errorf("needed %d: capacity = %d, want %d", tc.needed, ring.Capacity(), tc.capacity)
		}
		if ring.Capacity() < tc.needed {
			t.Errorf("needed %d: capacity %d smaller than payload", tc.needed, ring.Capacity())
		}
	}
}

func TestRingCursorInvariant(t *testing.T) {
	dev := devicetest.NewRecorder()
	ring := glr.NewRingStreamer(dev)
	vao := glr.NewVertexArray(dev)

	sizes := []int{40, 30, 64, 8, 8, 8, 200, 16, 500, 1, 63}
	for _, n := range sizes {
		if err := ring.DrawArrays(batchOf(vao, component(n))); err != nil {
			t.Fatal(err)
		}
		if ring.Cursor() > ring.Capacity() {
			t.Fatalf("after %d-byte draw: cursor %d exceeds capacity %d", n, ring.Cursor(), ring.Capacity())
		}
	}
}

func TestRingGrowthIsMonotonic(t *testing.T) {
	dev := devicetest.NewRecorder()
	ring := glr.NewRingStreamer(dev)
	vao := glr.NewVertexArray(dev)

	if err := ring.DrawArrays(batchOf(vao, component(1000))); err != nil {
		t.Fatal(err)
	}
	grown := ring.Capacity()

	for _, n := range []int{8, 16, 40} {
		if err := ring.DrawArrays(batchOf(vao, component(n))); err != nil {
			t.Fatal(err)
		}
		if ring.Capacity() != grown {
			t.Errorf("capacity changed to %d after small draw, want %d", ring.Capacity(), grown)
		}
	}
}

func TestRingUploadsLandAtCursor(t *testing.T) {
	dev := devicetest.NewRecorder()
	ring := glr.NewRingStreamer(dev)
	vao := glr.NewVertexArray(dev)

	first := component(16)
	second := component(24)
	if err := ring.DrawArrays(batchOf(vao, first)); err != nil {
		t.Fatal(err)
	}
	if err := ring.DrawArrays(batchOf(vao, second)); err != nil {
		t.Fatal(err)
	}

	// Both payloads must sit in the single ring buffer back to back.
	var buffer uint32
	for id := range dev.Buffers {
		buffer = id
	}
	store := dev.Stores[buffer]
	if len(store) < 40 {
		t.Fatalf("ring store holds %d bytes, want at least 40", len(store))
	}
	for i, b := range first.Data {
		if store[i] != b {
			t.Fatalf("first payload corrupted at byte %d", i)
		}
	}
	for i, b := range second.Data {
		if store[16+i] != b {
			t.Fatalf("second payload corrupted at byte %d", i)
		}
	}
}

func TestRingMultiComponentOffsets(t *testing.T) {
	dev := devicetest.NewRecorder()
	ring := glr.NewRingStreamer(dev)
	vao := glr.NewVertexArray(dev)

	positions := component(32)
	colors := glr.VertexComponent{
		Data: make([]byte, 16),
		Attributes: []glr.VertexAttribute{
			{Index: 1, Size: 4, Type: gfx.Uint8, Normalized: true},
		},
	}
	if err := ring.DrawArrays(batchOf(vao, positions, colors)); err != nil {
		t.Fatal(err)
	}

	if ring.Cursor() != 48 {
		t.Errorf("cursor = %d, want 48", ring.Cursor())
	}
	// The second component's attribute must be configured at offset 32,
	// right after the first one.
	want := devicetest.Call{}
	for _, c := range dev.Calls {
		if c.Name == "VertexAttribPointer" {
			want = c
		}
	}
	if want.Name == "" {
		t.Fatal("no VertexAttribPointer recorded")
	}
	// Args render as: index size type normalized stride offset.
	if got := want.Args; got != "1 4 Uint8 true 0 32" {
		t.Errorf("last VertexAttribPointer args = %q, want %q", got, "1 4 Uint8 true 0 32")
	}
}

func TestRingRejectsIndexedDraws(t *testing.T) {
	dev := devicetest.NewRecorder()
	ring := glr.NewRingStreamer(dev)
	vao := glr.NewVertexArray(dev)

	elements := &glr.ElementData{
		Data:  make([]byte, 12),
		Count: 3,
		Type:  gfx.Uint32,
	}
	err := ring.DrawElements(batchOf(vao, component(24)), elements)
	if err != glr.ErrIndexedUnsupported {
		t.Errorf("DrawElements error = %v, want ErrIndexedUnsupported", err)
	}
	if got := dev.Count("DrawElements"); got != 0 {
		t.Errorf("DrawElements reached the device %d times, want 0", got)
	}
}

func TestRingReleaseIdempotent(t *testing.T) {
	dev := devicetest.NewRecorder()
	ring := glr.NewRingStreamer(dev)
	vao := glr.NewVertexArray(dev)

	if err := ring.DrawArrays(batchOf(vao, component(40))); err != nil {
		t.Fatal(err)
	}
	ring.Release()
	if got := dev.Count("DeleteBuffer"); got != 1 {
		t.Fatalf("DeleteBuffer called %d times, want 1", got)
	}
	if ring.Cursor() != 0 {
		t.Errorf("cursor = %d after release, want 0", ring.Cursor())
	}

	ring.Release()
	if got := dev.Count("DeleteBuffer"); got != 1 {
		t.Errorf("second release deleted again, DeleteBuffer count %d", got)
	}
	if len(dev.Buffers) != 0 {
		t.Errorf("%d live buffers after release, want 0", len(dev.Buffers))
	}
}

func TestRingReallocatesAfterRelease(t *testing.T) {
	dev := devicetest.NewRecorder()
	ring := glr.NewRingStreamer(dev)
	vao := glr.NewVertexArray(dev)

	if err := ring.DrawArrays(batchOf(vao, component(200))); err != nil {
		t.Fatal(err)
	}
	grown := ring.Capacity()
	ring.Release()

	if err := ring.DrawArrays(batchOf(vao, component(8))); err != nil {
		t.Fatal(err)
	}
	if ring.Capacity() != grown {
		t.Errorf("capacity = %d after reuse, want kept %d", ring.Capacity(), grown)
	}
	if len(dev.Buffers) != 1 {
		t.Errorf("%d live buffers, want 1", len(dev.Buffers))
	}
}
