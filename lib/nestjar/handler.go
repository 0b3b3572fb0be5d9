// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package nestjar

import (
	"log/slog"
	"net/http"

	"github.com/zipnest/zipnest/lib/fetch"
	"github.com/zipnest/zipnest/lib/modpool"
	"github.com/zipnest/zipnest/lib/singleton"
	"github.com/zipnest/zipnest/lib/tempfile"
	"github.com/zipnest/zipnest/lib/zipfile"
)

// Config holds the parameters for a Handler. The zero value is a
// working configuration: nested scanning enabled, system temp
// directory, default HTTP client, discarded diagnostics.
type Config struct {
	// DisableNestedJars forbids descending into archive entries.
	// Paths whose final section names a nested archive then fail
	// with NestedJarsDisabledError, and nothing is extracted.
	DisableNestedJars bool

	// TempDir is the directory for extracted and downloaded temp
	// files. Empty means the system temp directory.
	TempDir string

	// HTTPClient performs remote archive downloads. If nil, a
	// client bounded by fetch.DefaultTimeout is used.
	HTTPClient *http.Client

	// Logger receives operational diagnostics. If nil, a no-op
	// logger is used.
	Logger *slog.Logger
}

// resolution is the cached outcome for one normalized nested path.
type resolution struct {
	archive     *zipfile.Archive
	packageRoot string
}

// Handler resolves nested archive paths, memoizing every intermediate
// result for its lifetime. Safe for concurrent use by multiple
// goroutines, except that Close must not race with in-flight Resolve
// calls (see the package documentation).
type Handler struct {
	logger     *slog.Logger
	scanNested bool

	tempFiles *tempfile.Registry
	fetcher   *fetch.Fetcher

	// The three memoizing caches. All cross-goroutine reuse of
	// handles, archives, and resolved paths flows through these.
	physicalFiles *singleton.Map[string, *zipfile.PhysicalFile]
	archives      *singleton.Map[zipfile.Slice, *zipfile.Archive]
	paths         *singleton.Map[string, resolution]

	// Reader recyclers per module reference.
	readers *singleton.Map[modpool.ModuleRef, *modpool.Recycler]
}

// New creates a Handler.
func New(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	handler := &Handler{
		logger:     logger,
		scanNested: !cfg.DisableNestedJars,
		tempFiles:  tempfile.NewRegistry(cfg.TempDir, logger),
	}
	handler.fetcher = fetch.NewFetcher(cfg.HTTPClient, handler.tempFiles, logger)

	// One physical handle per canonical file path.
	handler.physicalFiles = singleton.New(zipfile.OpenPhysical)

	// One parsed archive per distinct byte-range slice.
	handler.archives = singleton.New(zipfile.Parse)

	// One resolved location per normalized nested path. The build
	// function recurses into the same map for parent prefixes.
	handler.paths = singleton.New(handler.resolvePath)

	handler.readers = singleton.New(func(ref modpool.ModuleRef) (*modpool.Recycler, error) {
		return modpool.NewRecycler(ref), nil
	})

	return handler
}

// ReaderRecycler returns the pooled-reader recycler for a module
// reference, creating it on first use. The reference's dynamic type
// must be comparable — it is used as a cache key.
func (h *Handler) ReaderRecycler(ref modpool.ModuleRef) *modpool.Recycler {
	recycler, _ := h.readers.GetOrCreate(ref)
	return recycler
}

// TempFileCount returns the number of temp files currently tracked.
func (h *Handler) TempFileCount() int {
	return h.tempFiles.Count()
}

// Close releases everything the handler accumulated: pooled module
// readers, parsed archives, resolved paths, physical file handles, and
// temp files. Close is best-effort — every per-item failure is logged
// and swallowed, and teardown always runs to completion.
//
// Close must not run concurrently with Resolve.
func (h *Handler) Close() {
	for _, recycler := range h.readers.Values() {
		recycler.Close()
	}
	h.readers.Clear()

	// Archives and resolved paths hold no OS resources of their own;
	// dropping the cache entries is enough.
	h.archives.Clear()
	h.paths.Clear()

	for _, physical := range h.physicalFiles.Values() {
		if err := physical.Close(); err != nil {
			h.logger.Warn("closing archive file", "path", physical.Path(), "error", err)
		}
	}
	h.physicalFiles.Clear()

	h.tempFiles.RemoveAll()
}
