// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package zipfile

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/klauspost/compress/zip"
)

// Entry is one file entry in an archive's central directory.
// Directory entries (names ending in "/") are dropped during parsing;
// directories are inferred from entry name prefixes instead.
type Entry struct {
	// Name is the entry's path inside the archive, always with
	// forward slashes and no leading slash.
	Name string

	// Compressed is true when the entry payload is deflated. Stored
	// entries can be addressed as sub-slices without extraction.
	Compressed bool

	// Offset is the byte offset of the entry's payload relative to
	// the start of the archive slice.
	Offset int64

	// CompressedSize is the payload length in the archive. For
	// stored entries it equals Size.
	CompressedSize int64

	// Size is the uncompressed payload length.
	Size int64

	file *zip.File
}

// Open returns a stream of the entry's uncompressed payload.
func (e Entry) Open() (io.ReadCloser, error) {
	return e.file.Open()
}

// Archive is the parsed central directory of one slice: an ordered
// entry list, plus the set of package roots that path resolution has
// discovered inside it. Entries are immutable after parsing; the
// package-root set is mutated concurrently by resolver goroutines.
type Archive struct {
	slice   Slice
	entries []Entry

	rootsMu sync.Mutex
	roots   map[string]struct{}
}

// Parse reads the central directory of the archive occupying slice.
// It fails if the bytes are not a valid zip archive.
func Parse(slice Slice) (*Archive, error) {
	reader, err := zip.NewReader(slice.ReaderAt(), slice.Length)
	if err != nil {
		return nil, fmt.Errorf("parsing archive directory of %s: %w", slice, err)
	}

	entries := make([]Entry, 0, len(reader.File))
	for _, file := range reader.File {
		if strings.HasSuffix(file.Name, "/") {
			continue
		}
		offset, err := file.DataOffset()
		if err != nil {
			return nil, fmt.Errorf("locating payload of %s in %s: %w", file.Name, slice, err)
		}
		entries = append(entries, Entry{
			Name:           strings.TrimPrefix(file.Name, "/"),
			Compressed:     file.Method != zip.Store,
			Offset:         offset,
			CompressedSize: int64(file.CompressedSize64),
			Size:           int64(file.UncompressedSize64),
			file:           file,
		})
	}

	return &Archive{
		slice:   slice,
		entries: entries,
		roots:   make(map[string]struct{}),
	}, nil
}

// Slice returns the byte range this archive was parsed from.
func (a *Archive) Slice() Slice {
	return a.slice
}

// Entries returns the archive's entries in central-directory order.
// The returned slice is shared and must not be modified.
func (a *Archive) Entries() []Entry {
	return a.entries
}

// FindEntry returns the entry with exactly the given name, if any.
func (a *Archive) FindEntry(name string) (Entry, bool) {
	for _, entry := range a.entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}

// HasDirPrefix reports whether any entry lives under the directory
// dir (that is, has "dir/" as a name prefix). dir must not end with a
// slash.
func (a *Archive) HasDirPrefix(dir string) bool {
	prefix := dir + "/"
	for _, entry := range a.entries {
		if strings.HasPrefix(entry.Name, prefix) {
			return true
		}
	}
	return false
}

// AddPackageRoot records a directory inside the archive as a package
// root. Safe for concurrent use; adding the same root twice is a
// no-op. The empty string (the archive root) is never recorded — it
// is implicit.
func (a *Archive) AddPackageRoot(root string) {
	if root == "" {
		return
	}
	a.rootsMu.Lock()
	a.roots[root] = struct{}{}
	a.rootsMu.Unlock()
}

// PackageRoots returns a sorted snapshot of the discovered package
// roots.
func (a *Archive) PackageRoots() []string {
	a.rootsMu.Lock()
	roots := make([]string, 0, len(a.roots))
	for root := range a.roots {
		roots = append(roots, root)
	}
	a.rootsMu.Unlock()
	sort.Strings(roots)
	return roots
}

// HasPackageRoot reports whether root has been recorded.
func (a *Archive) HasPackageRoot(root string) bool {
	a.rootsMu.Lock()
	defer a.rootsMu.Unlock()
	_, ok := a.roots[root]
	return ok
}

// String renders the archive's location for diagnostics.
func (a *Archive) String() string {
	return a.slice.String()
}
