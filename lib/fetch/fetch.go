// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/zipnest/zipnest/lib/digest"
	"github.com/zipnest/zipnest/lib/tempfile"
)

// DefaultTimeout bounds a whole download, connection establishment
// included. Remote archives are fetched once per handler lifetime, so
// the limit is generous.
const DefaultTimeout = 5 * time.Minute

// Fetcher downloads http(s) URLs into temp files created through a
// Registry. Safe for concurrent use.
type Fetcher struct {
	client   *http.Client
	registry *tempfile.Registry
	logger   *slog.Logger
}

// NewFetcher creates a fetcher that registers downloads with registry.
// A nil client gets a DefaultTimeout-bounded one; a nil logger
// discards diagnostics.
func NewFetcher(client *http.Client, registry *tempfile.Registry, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Fetcher{client: client, registry: registry, logger: logger}
}

// Download streams the body of url into a fresh registered temp file
// and returns the file's path. Any failure — network, HTTP status,
// disk — is logged and reported as ok=false; the temp file, if one was
// created, stays registered and is cleaned up at shutdown like any
// other.
func (f *Fetcher) Download(url string) (path string, ok bool) {
	logger := f.logger.With("url", url)
	start := time.Now()

	file, err := f.registry.Create(url)
	if err != nil {
		logger.Warn("could not create temp file for download", "error", err)
		return "", false
	}
	path = file.Name()

	written, err := f.fetchInto(file, url)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing %s: %w", path, closeErr)
	}
	if err != nil {
		logger.Warn("could not download archive", "error", err)
		return "", false
	}

	contentDigest, err := digest.HashFile(path)
	if err == nil {
		logger = logger.With("blake3", digest.Format(contentDigest))
	}
	logger.Info("downloaded archive to temporary file",
		"path", path, "bytes", written, "elapsed", time.Since(start))
	logger.Info("note: archives at http(s) addresses are downloaded on every scan; " +
		"prefer a local copy for repeated scanning")
	return path, true
}

// fetchInto performs the HTTP request and streams the body into file.
func (f *Fetcher) fetchInto(file *os.File, url string) (int64, error) {
	response, err := f.client.Get(url)
	if err != nil {
		return 0, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetching %s: unexpected status %s", url, response.Status)
	}

	written, err := io.Copy(file, response.Body)
	if err != nil {
		return written, fmt.Errorf("streaming %s after %d bytes: %w", url, written, err)
	}
	return written, nil
}
