// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package pak

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pierrec/lz4"
)

// NewBuilder creates a new Builder. Do not fill the Index in the
// header, it is computed on write.
func NewBuilder(header Header) *Builder {
	return &Builder{header: header}
}

type pendingEntry struct {
	name       string
	size       int64
	compressed []byte
}

// Builder assembles an archive in memory. Archives are versioned and
// cannot be appended to; whenever Add is called the entry is compressed
// immediately, and WriteTo lays everything out with final offsets.
type Builder struct {
	header  Header
	entries []pendingEntry
}

// Add compresses data and queues it under the given name. Blocks until
// lz4 finishes the stream.
func (b *Builder) Add(name string, data []byte) error {
	var buf bytes.Buffer
	writer := lz4.NewWriter(&buf)
	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	b.entries = append(b.entries, pendingEntry{
		name:       name,
		size:       int64(len(data)),
		compressed: buf.Bytes(),
	})
	return nil
}

// WriteTo writes the finished archive.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	header := b.header
	header.Index = nil

	offset := int64(0)
	for _, e := range b.entries {
		header.Index = append(header.Index, IndexEntry{
			Name:           e.name,
			Offset:         offset,
			Size:           e.size,
			CompressedSize: int64(len(e.compressed)),
		})
		offset += int64(len(e.compressed))
	}

	rawHeader, err := encode(header)
	if err != nil {
		return 0, err
	}

	var written int64
	prefix := make([]byte, prefixLength)
	copy(prefix, magic[:])
	binary.LittleEndian.PutUint64(prefix[len(magic):], uint64(len(rawHeader)))

	for _, chunk := range [][]byte{prefix, rawHeader} {
		n, err := w.Write(chunk)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	for _, e := range b.entries {
		n, err := w.Write(e.compressed)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
