// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

// Package pathnorm normalizes raw nested-archive path strings into the
// canonical form used as resolution cache keys.
//
// A nested path may be an ordinary filesystem path, an http(s) URL, or
// either of those followed by `!`-separated in-archive sections.
// Normalization is purely textual: it translates backslashes, unwraps
// jar: and file: scheme prefixes, percent-decodes, and collapses
// duplicate slashes, without touching the filesystem. Two raw strings
// that normalize to the same output are treated as the same resource by
// the resolver, so the rules here directly determine cache hit rates.
package pathnorm
