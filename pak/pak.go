// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package pak implements the lz4 backed asset pack the demo ships its
// resources in. The archive itself is not compressed; every entry is an
// individual lz4 stream, so any one entry can be read and decompressed
// without touching the rest.
package pak

import (
	"bytes"
	"encoding/gob"
	"errors"
)

// package errors
var (
	ErrFileFormat = errors.New("pak: corrupted or not a pak archive")
	ErrNotFound   = errors.New("pak: no entry with that name")
)

var magic = [4]byte{'G', 'P', 'K', 0}

// fixed prefix: magic plus a little-endian int64 header length.
const prefixLength = 12

// IndexEntry is info for one entry in the archive index. Offset is
// relative to the start of the data section.
type IndexEntry struct {
	Name           string
	Offset         int64
	Size           int64
	CompressedSize int64
}

// Header is the archive header.
type Header struct {
	Author  string
	Created int64
	Version int64
	Index   []IndexEntry
}

func encode(data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(obj interface{}, raw []byte) error {
	return gob.NewDecoder(bytes.NewReader(raw)).Decode(obj)
}
