// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest provides BLAKE3 content hashing for archive files.
//
// Digests identify the exact bytes behind a resolved archive in logs
// and CLI output: two downloads of the same URL, or two extractions of
// the same nested entry, produce the same digest even though they land
// in differently named temp files.
//
//   - [HashFile] streams a file through BLAKE3 with constant memory
//   - [HashReader] does the same for an already-open stream
//   - [Format] converts a digest to its canonical hex form
//
// This package has no dependencies on other zipnest packages.
package digest
