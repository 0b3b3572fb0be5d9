// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/zipnest/zipnest/lib/tempfile"
)

func TestDownload(t *testing.T) {
	payload := []byte("PK\x03\x04 pretend archive bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	registry := tempfile.NewRegistry(t.TempDir(), nil)
	fetcher := NewFetcher(server.Client(), registry, nil)

	path, ok := fetcher.Download(server.URL + "/downloads/app.jar")
	if !ok {
		t.Fatal("Download reported failure")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(content) != string(payload) {
		t.Errorf("downloaded %q, want %q", content, payload)
	}
	if registry.Count() != 1 {
		t.Errorf("registry tracks %d files, want 1", registry.Count())
	}
}

func TestDownloadHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	registry := tempfile.NewRegistry(t.TempDir(), nil)
	fetcher := NewFetcher(server.Client(), registry, nil)

	if _, ok := fetcher.Download(server.URL + "/missing.jar"); ok {
		t.Error("Download of 404 should report failure")
	}
	// The temp file stays registered for shutdown cleanup even though
	// the download failed.
	if registry.Count() != 1 {
		t.Errorf("registry tracks %d files, want 1", registry.Count())
	}
}

func TestDownloadConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	registry := tempfile.NewRegistry(t.TempDir(), nil)
	fetcher := NewFetcher(nil, registry, nil)

	if _, ok := fetcher.Download(url + "/app.jar"); ok {
		t.Error("Download against closed server should report failure")
	}
}
