// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

package tempfile

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// prefix starts every temp file name created by a Registry.
const prefix = "zipnest--"

// leafSeparator separates the random disambiguator from the sanitized
// source leaf name in temp file names.
const leafSeparator = "---"

// Registry creates uniquely-named temporary files and tracks them for
// deletion. Registration is safe for concurrent use; RemoveAll is
// meant to run once, after all resolution activity has finished.
type Registry struct {
	dir    string
	logger *slog.Logger

	mu    sync.Mutex
	files []string
}

// NewRegistry creates a registry whose files live in dir. If dir is
// empty, the system temp directory is used. A nil logger discards all
// diagnostics.
func NewRegistry(dir string, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{dir: dir, logger: logger}
}

// Create makes a new empty temp file whose name is derived from the
// leaf of hintPath, and registers it for deletion. The returned file
// is open for writing; its name never collides with an existing file
// (os.CreateTemp retries the random part until the create succeeds
// exclusively).
func (r *Registry) Create(hintPath string) (*os.File, error) {
	pattern := prefix + "*" + leafSeparator + sanitizeLeaf(hintPath)
	file, err := os.CreateTemp(r.dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("creating temp file for %s: %w", hintPath, err)
	}

	r.mu.Lock()
	r.files = append(r.files, file.Name())
	r.mu.Unlock()

	return file, nil
}

// Count returns the number of files currently registered.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.files)
}

// RemoveAll deletes every registered file, most recently created
// first. Each deletion is logged; failures are logged and skipped.
// RemoveAll never fails and is idempotent — files already removed are
// no longer registered.
func (r *Registry) RemoveAll() {
	r.mu.Lock()
	files := r.files
	r.files = nil
	r.mu.Unlock()

	if len(files) == 0 {
		return
	}
	r.logger.Info("removing temporary files", "count", len(files))
	for i := len(files) - 1; i >= 0; i-- {
		path := files[i]
		if err := os.Remove(path); err != nil {
			r.logger.Warn("unable to remove temporary file", "path", path, "error", err)
			continue
		}
		r.logger.Debug("removed temporary file", "path", path)
	}
}

// sanitizeLeaf extracts the leaf name of path and replaces characters
// that are unsafe in filenames or ambiguous in URLs. The result keeps
// temp file names readable while staying valid on every filesystem.
func sanitizeLeaf(path string) string {
	leaf := path
	if idx := strings.LastIndexByte(leaf, '/'); idx >= 0 {
		leaf = leaf[idx+1:]
	}
	replacer := strings.NewReplacer(
		"\\", "_",
		":", "_",
		"?", "_",
		"&", "_",
		"=", "_",
		" ", "_",
		"!", "_",
		"*", "_",
	)
	return replacer.Replace(leaf)
}
