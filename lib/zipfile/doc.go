// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

// Package zipfile provides the three layers of archive access used by
// the resolver: physical files, byte-range slices, and parsed archives.
//
// A [PhysicalFile] is an open, memory-mapped handle on a real file.
// Reads go through the mapping, so repeated central-directory parsing
// and entry streaming cost no syscalls for pages already in the cache.
//
// A [Slice] is a logical view of a contiguous byte range of a physical
// file, treated as a self-contained archive. Slices are plain
// comparable values: a nested archive stored uncompressed inside a
// parent archive is addressed by a sub-slice of the parent's range,
// no extraction or copying involved. Sub-slices flatten to absolute
// offsets in the physical file, so nesting depth never adds
// indirection to reads.
//
// An [Archive] is the parsed central directory of one slice: an
// ordered list of entries plus the set of package roots discovered by
// path resolution. Entry payloads open as streams through
// klauspost/compress, which handles the deflate decoding.
package zipfile
