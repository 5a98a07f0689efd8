// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package pak_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/devblok/glstream/pak"
)

var (
	testBlob1 = bytes.Repeat([]byte("streamed vertex bytes "), 40)
	testBlob2 = []byte("attribute layout description")
)

func buildArchive(t *testing.T) *bytes.Reader {
	t.Helper()
	builder := pak.NewBuilder(pak.Header{
		Author:  "devblok",
		Created: time.Now().Unix(),
		Version: 1,
	})
	if err := builder.Add("grid", testBlob1); err != nil {
		t.Fatal(err)
	}
	if err := builder.Add("layout", testBlob2); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if _, err := builder.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestCreateAndReadAll(t *testing.T) {
	ar, err := pak.Open(buildArchive(t))
	if err != nil {
		t.Fatal(err)
	}

	got, err := ar.ReadAll("grid")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, testBlob1) {
		t.Error("first entry does not match up")
	}

	got, err = ar.ReadAll("layout")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, testBlob2) {
		t.Error("second entry does not match up")
	}
}

func TestIndexOffsets(t *testing.T) {
	ar, err := pak.Open(buildArchive(t))
	if err != nil {
		t.Fatal(err)
	}
	index := ar.Header().Index
	if len(index) != 2 {
		t.Fatalf("index holds %d entries, want 2", len(index))
	}
	if index[0].Offset != 0 {
		t.Errorf("first entry offset = %d, want 0", index[0].Offset)
	}
	if index[1].Offset != index[0].CompressedSize {
		t.Errorf("second entry offset = %d, want %d", index[1].Offset, index[0].CompressedSize)
	}
	if index[0].Size != int64(len(testBlob1)) {
		t.Errorf("first entry size = %d, want %d", index[0].Size, len(testBlob1))
	}
}

func TestMissingEntry(t *testing.T) {
	ar, err := pak.Open(buildArchive(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ar.ReadAll("nope"); err != pak.ErrNotFound {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	if _, err := pak.Open(bytes.NewReader([]byte("not an archive at all"))); err != pak.ErrFileFormat {
		t.Errorf("error = %v, want ErrFileFormat", err)
	}
}
