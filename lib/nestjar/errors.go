// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package nestjar

import "fmt"

// NotFoundError reports a path component that does not exist: a
// missing or non-regular base file, or a child path with neither an
// exact entry match nor a directory prefix match in its parent
// archive.
type NotFoundError struct {
	// Path is the component that could not be found.
	Path string

	// Archive names the parent archive searched, empty for base
	// path failures.
	Archive string

	// Err is the underlying filesystem error, if any.
	Err error
}

func (e *NotFoundError) Error() string {
	switch {
	case e.Archive != "":
		return fmt.Sprintf("path %q does not exist in archive %s", e.Path, e.Archive)
	case e.Err != nil:
		return fmt.Sprintf("path component %q cannot be read: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("path component %q does not exist", e.Path)
	}
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// DownloadError reports a failed remote archive download. The fetch
// layer logs the underlying cause; by the time the resolver surfaces
// this error only the URL remains.
type DownloadError struct {
	URL string
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("could not download archive %s", e.URL)
}

// NestedJarsDisabledError reports that a path required descending into
// a nested archive while nested-archive scanning is disabled by
// configuration. No extraction is performed.
type NestedJarsDisabledError struct {
	Path string
}

func (e *NestedJarsDisabledError) Error() string {
	return fmt.Sprintf("nested archive scanning is disabled, skipping extraction of %q", e.Path)
}

// NotZipError reports that a path component's bytes could not be
// parsed as an archive, or that extracting them failed.
type NotZipError struct {
	Path string
	Err  error
}

func (e *NotZipError) Error() string {
	return fmt.Sprintf("%q does not appear to be an archive: %v", e.Path, e.Err)
}

func (e *NotZipError) Unwrap() error { return e.Err }

// ResolutionError reports an internal invariant violation: a parent
// path that must be an archive (every non-final "!" section is, by
// construction) resolved without one.
type ResolutionError struct {
	Path string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve parent archive %q", e.Path)
}
