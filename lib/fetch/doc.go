// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

// Package fetch downloads remote archives into registered temp files.
//
// A failed download is a reported, recoverable condition, not an
// error: [Fetcher.Download] returns ok=false and logs the cause. The
// resolver decides whether an absent result is fatal for its caller.
// Download streams the body with io.Copy — remote archives can be
// arbitrarily large, so nothing is buffered in memory.
package fetch
