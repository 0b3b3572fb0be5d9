// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

// Package modpool recycles reader handles for module references.
//
// Opening a module reader is comparatively expensive, and readers are
// not safe for concurrent use, so each module reference gets a
// [Recycler]: Acquire returns an idle handle or opens a new one,
// Release returns the handle for reuse instead of closing it. Handles
// are only ever closed in bulk, by [Recycler.Close] during shutdown,
// with per-handle failures swallowed.
package modpool
