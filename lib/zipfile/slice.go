// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package zipfile

import (
	"fmt"
	"io"
)

// Slice is a contiguous byte range of a physical file, treated as a
// self-contained archive's bytes. Slice is a comparable value type:
// two slices over the same range of the same PhysicalFile are equal,
// which is what makes it usable as an archive-cache key.
//
// Sub-slices store absolute offsets in the physical file, so a stored
// (uncompressed) archive nested three levels deep still reads straight
// from the outermost file's mapping.
type Slice struct {
	// File is the physical file the range lives in.
	File *PhysicalFile

	// Offset is the absolute byte offset of the range in File.
	Offset int64

	// Length is the range length in bytes.
	Length int64
}

// Whole returns the slice covering all of file.
func Whole(file *PhysicalFile) Slice {
	return Slice{File: file, Offset: 0, Length: file.Size()}
}

// Sub returns the slice covering [offset, offset+length) relative to
// s. The result addresses the physical file directly.
func (s Slice) Sub(offset, length int64) (Slice, error) {
	if offset < 0 || length < 0 || offset+length > s.Length {
		return Slice{}, fmt.Errorf("sub-slice [%d,%d) exceeds slice of length %d", offset, offset+length, s.Length)
	}
	return Slice{File: s.File, Offset: s.Offset + offset, Length: length}, nil
}

// ReaderAt returns a reader over the slice's range. Offsets passed to
// the reader are slice-relative.
func (s Slice) ReaderAt() *io.SectionReader {
	return io.NewSectionReader(s.File, s.Offset, s.Length)
}

// String renders the slice for diagnostics: the file path, with the
// byte range appended when the slice is not the whole file.
func (s Slice) String() string {
	if s.Offset == 0 && s.Length == s.File.Size() {
		return s.File.Path()
	}
	return fmt.Sprintf("%s[%d:%d]", s.File.Path(), s.Offset, s.Offset+s.Length)
}
