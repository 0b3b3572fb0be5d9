// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

// Package nestjar resolves nested archive paths: strings addressing a
// file or directory inside an archive that may itself live inside
// other archives, with "!" separating the nesting levels, for example
// "outer.jar!inner.jar!com/pkg/". The first section may be a local
// path or an http(s) URL; every section before the last must be an
// archive.
//
// A [Handler] memoizes everything it resolves. Three caches give
// at-most-once construction per key: canonical file path to open
// physical handle, byte-range slice to parsed archive, and full nested
// path to resolved location. Concurrent Resolve calls for the same
// path coalesce into a single parse, download, or extraction.
//
// Nested archives stored uncompressed are addressed in place, as byte
// range slices of their parent — no bytes are copied. Deflated nested
// archives have to be extracted: a zip central directory can only be
// parsed over random-access bytes, and decompressing on every read
// would cost more than one extraction to a temp file. Temp files from
// extraction and download are tracked and removed by [Handler.Close].
//
// Close is intended to run exactly once, after resolution has
// quiesced. Calling Resolve concurrently with Close is not supported.
package nestjar
