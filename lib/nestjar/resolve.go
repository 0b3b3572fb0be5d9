// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package nestjar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zipnest/zipnest/lib/pathnorm"
	"github.com/zipnest/zipnest/lib/zipfile"
)

// Resolve resolves a nested archive path to the archive whose
// directory was parsed and the package root (in-archive directory)
// the path designates. The package root is "" when the path addresses
// the archive itself.
//
// Results are memoized per normalized path: concurrent Resolve calls
// for the same path block on a single resolution and share its
// outcome, success or failure. Failures are typed — see
// [NotFoundError], [DownloadError], [NestedJarsDisabledError],
// [NotZipError] and [ResolutionError].
func (h *Handler) Resolve(nestedPath string) (*zipfile.Archive, string, error) {
	resolved, err := h.paths.GetOrCreate(pathnorm.Normalize(nestedPath))
	if err != nil {
		return nil, "", err
	}
	return resolved.archive, resolved.packageRoot, nil
}

// resolvePath is the build function of the full-path cache. The path
// it receives is already normalized; recursive calls pass substrings
// of a normalized path, which normalization leaves unchanged.
func (h *Handler) resolvePath(nestedPath string) (resolution, error) {
	lastMarker := strings.LastIndexByte(nestedPath, '!')
	if lastMarker < 0 {
		// No "!" sections: a plain file path or URL. This is also
		// the final frame of the recursion below.
		return h.resolveBase(nestedPath)
	}

	// Split off the last "!" section and recurse on the rest. Each
	// frame shortens the unresolved prefix by one section, so the
	// recursion terminates after at most one frame per "!".
	parentPath := nestedPath[:lastMarker]
	childPath := strings.TrimLeft(nestedPath[lastMarker+1:], "/")

	parent, err := h.paths.GetOrCreate(parentPath)
	if err != nil {
		return resolution{}, err
	}
	if parent.archive == nil {
		// Only the last "!" section may be a non-archive path, so a
		// successfully resolved parent always carries an archive.
		return resolution{}, &ResolutionError{Path: parentPath}
	}

	// A trailing slash marks the child as a directory outright.
	trimmed := strings.TrimRight(childPath, "/")
	isDirectory := trimmed != childPath
	childPath = trimmed

	var childEntry zipfile.Entry
	var haveEntry bool
	if !isDirectory {
		childEntry, haveEntry = parent.archive.FindEntry(childPath)
		if !haveEntry {
			// No exact entry match: the child is a directory if any
			// entry lives under it, otherwise it does not exist. A
			// trailing-slash hint above already settled the question,
			// so hinted directories never reach this check.
			if !parent.archive.HasDirPrefix(childPath) {
				return resolution{}, &NotFoundError{Path: childPath, Archive: parent.archive.String()}
			}
			isDirectory = true
		}
	}

	if isDirectory {
		h.logger.Debug("child path is a directory, using as package root",
			"path", childPath, "archive", parent.archive.String())
		parent.archive.AddPackageRoot(childPath)
		return resolution{archive: parent.archive, packageRoot: childPath}, nil
	}

	// The child is a non-directory entry, so it must itself be a
	// nested archive.
	if !h.scanNested {
		return resolution{}, &NestedJarsDisabledError{Path: nestedPath}
	}

	var childSlice zipfile.Slice
	if childEntry.Compressed {
		// Deflated nested archives must be extracted before their
		// central directory can be read over random-access bytes.
		tempPath, err := h.extractEntry(childEntry)
		if err != nil {
			return resolution{}, &NotZipError{Path: childPath, Err: err}
		}
		physical, err := h.physicalFiles.GetOrCreate(tempPath)
		if err != nil {
			return resolution{}, &NotZipError{Path: childPath, Err: err}
		}
		childSlice = zipfile.Whole(physical)
	} else {
		// Stored nested archives are addressed in place as a byte
		// range of the parent's slice. Most nested archives are
		// stored, so this zero-copy path is the common one.
		childSlice, err = parent.archive.Slice().Sub(childEntry.Offset, childEntry.CompressedSize)
		if err != nil {
			return resolution{}, &NotZipError{Path: childPath, Err: err}
		}
	}

	childArchive, err := h.archives.GetOrCreate(childSlice)
	if err != nil {
		return resolution{}, &NotZipError{Path: childPath, Err: err}
	}
	return resolution{archive: childArchive, packageRoot: ""}, nil
}

// resolveBase resolves a path with no "!" sections: an http(s) URL or
// a local file path naming the outermost archive.
func (h *Handler) resolveBase(basePath string) (resolution, error) {
	localPath := basePath
	if strings.HasPrefix(basePath, "http://") || strings.HasPrefix(basePath, "https://") {
		downloaded, ok := h.fetcher.Download(basePath)
		if !ok {
			return resolution{}, &DownloadError{URL: basePath}
		}
		localPath = downloaded
	}

	canonical, err := canonicalize(localPath)
	if err != nil {
		return resolution{}, &NotFoundError{Path: basePath, Err: err}
	}
	info, err := os.Stat(canonical)
	if err != nil {
		return resolution{}, &NotFoundError{Path: basePath, Err: err}
	}
	if !info.Mode().IsRegular() {
		return resolution{}, &NotFoundError{Path: basePath,
			Err: fmt.Errorf("%s is not a regular file (expected an archive)", canonical)}
	}

	physical, err := h.physicalFiles.GetOrCreate(canonical)
	if err != nil {
		return resolution{}, &NotFoundError{Path: basePath, Err: err}
	}

	archive, err := h.archives.GetOrCreate(zipfile.Whole(physical))
	if err != nil {
		return resolution{}, &NotZipError{Path: basePath, Err: err}
	}
	return resolution{archive: archive, packageRoot: ""}, nil
}

// extractEntry copies a deflated nested archive entry into a fresh
// registered temp file and returns the file's path.
func (h *Handler) extractEntry(entry zipfile.Entry) (string, error) {
	file, err := h.tempFiles.Create(entry.Name)
	if err != nil {
		return "", err
	}
	tempPath := file.Name()
	h.logger.Debug("extracting deflated nested archive",
		"entry", entry.Name, "temp", tempPath)

	stream, err := entry.Open()
	if err != nil {
		file.Close()
		return "", fmt.Errorf("opening entry %s: %w", entry.Name, err)
	}
	_, copyErr := io.Copy(file, stream)
	stream.Close()
	if closeErr := file.Close(); copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		return "", fmt.Errorf("extracting entry %s to %s: %w", entry.Name, tempPath, copyErr)
	}
	return tempPath, nil
}

// canonicalize resolves a local path to its unique filesystem
// identity: absolute, symlinks resolved. Two paths naming the same
// file canonicalize to the same string, which is what keys the
// physical-file cache.
func canonicalize(path string) (string, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(absolute)
}
