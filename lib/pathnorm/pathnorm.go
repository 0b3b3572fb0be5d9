// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

package pathnorm

import (
	"strings"
)

// Normalize converts a raw nested path into its canonical textual form.
//
// The following transformations are applied, in order:
//
//   - backslashes become forward slashes (Windows paths and
//     backslash-escaped URLs)
//   - any number of leading "jar:" wrappers are removed
//   - a "file:" or "file://" prefix is removed, leaving a plain path
//   - percent-encoded bytes (%20 and friends) are decoded
//   - duplicate slashes are collapsed, except the "//" that follows an
//     http: or https: scheme
//   - a "!" section separator followed by slashes keeps a single slash
//     removed later by the resolver, so "a.jar!/b" and "a.jar!b" are
//     distinct inputs that resolve identically but "a.jar!//b" never
//     survives to lookup
//   - trailing slashes are preserved (the resolver uses them as a
//     directory hint)
//
// Normalize never fails: malformed percent escapes are left verbatim.
func Normalize(raw string) string {
	path := strings.ReplaceAll(raw, "\\", "/")

	for strings.HasPrefix(path, "jar:") {
		path = path[len("jar:"):]
	}
	if strings.HasPrefix(path, "file://") {
		path = path[len("file://"):]
	} else if strings.HasPrefix(path, "file:") {
		path = path[len("file:"):]
	}

	path = decodePercent(path)

	// Collapse duplicate slashes, preserving the authority separator
	// in http(s) URLs.
	scheme := ""
	rest := path
	if strings.HasPrefix(path, "http://") {
		scheme, rest = "http://", path[len("http://"):]
	} else if strings.HasPrefix(path, "https://") {
		scheme, rest = "https://", path[len("https://"):]
	}
	rest = collapseSlashes(rest)

	return scheme + rest
}

// decodePercent decodes %XX escapes in place. Escapes that are not two
// hex digits are copied through unchanged rather than failing: raw
// filesystem paths may legitimately contain '%'.
func decodePercent(path string) string {
	if !strings.Contains(path, "%") {
		return path
	}
	var builder strings.Builder
	builder.Grow(len(path))
	for i := 0; i < len(path); i++ {
		if path[i] == '%' && i+2 < len(path) {
			high, okHigh := hexValue(path[i+1])
			low, okLow := hexValue(path[i+2])
			if okHigh && okLow {
				builder.WriteByte(high<<4 | low)
				i += 2
				continue
			}
		}
		builder.WriteByte(path[i])
	}
	return builder.String()
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// collapseSlashes reduces every run of slashes to a single slash.
func collapseSlashes(path string) string {
	if !strings.Contains(path, "//") {
		return path
	}
	var builder strings.Builder
	builder.Grow(len(path))
	previousSlash := false
	for i := 0; i < len(path); i++ {
		slash := path[i] == '/'
		if slash && previousSlash {
			continue
		}
		builder.WriteByte(path[i])
		previousSlash = slash
	}
	return builder.String()
}
