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

// Open reads the archive index. Entries are read lazily afterwards, so
// the reader can sit on a memory map or an open file. Safe for
// concurrent reads.
func Open(r io.ReaderAt) (*Archive, error) {
	prefix := make([]byte, prefixLength)
	if _, err := r.ReadAt(prefix, 0); err != nil {
		return nil, ErrFileFormat
	}
	if !bytes.Equal(prefix[:len(magic)], magic[:]) {
		return nil, ErrFileFormat
	}
	headerLen := int64(binary.LittleEndian.Uint64(prefix[len(magic):]))
	if headerLen <= 0 || headerLen > 1<<20 {
		return nil, ErrFileFormat
	}

	rawHeader := make([]byte, headerLen)
	if _, err := r.ReadAt(rawHeader, prefixLength); err != nil {
		return nil, ErrFileFormat
	}
	var header Header
	if err := decode(&header, rawHeader); err != nil {
		return nil, ErrFileFormat
	}

	return &Archive{
		r:         r,
		header:    header,
		dataStart: prefixLength + headerLen,
	}, nil
}

// Archive is an open pak archive.
type Archive struct {
	r         io.ReaderAt
	header    Header
	dataStart int64
}

// Header returns the archive header, index included.
func (a *Archive) Header() Header {
	return a.header
}

// ReadAll decompresses the named entry in full.
func (a *Archive) ReadAll(name string) ([]byte, error) {
	for _, entry := range a.header.Index {
		if entry.Name != name {
			continue
		}
		compressed := make([]byte, entry.CompressedSize)
		if _, err := a.r.ReadAt(compressed, a.dataStart+entry.Offset); err != nil {
			return nil, err
		}
		data, err := io.ReadAll(lz4.NewReader(bytes.NewReader(compressed)))
		if err != nil {
			return nil, err
		}
		if int64(len(data)) != entry.Size {
			return nil, ErrFileFormat
		}
		return data, nil
	}
	return nil, ErrNotFound
}
