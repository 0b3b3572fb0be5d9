// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

package tempfile

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestCreateNamesAndRegisters(t *testing.T) {
	dir := t.TempDir()
	registry := NewRegistry(dir, nil)

	file, err := registry.Create("outer.jar!lib/inner spring.jar")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	file.Close()

	name := filepath.Base(file.Name())
	if !strings.HasPrefix(name, "zipnest--") {
		t.Errorf("temp name %q missing prefix", name)
	}
	if !strings.HasSuffix(name, "---inner_spring.jar") {
		t.Errorf("temp name %q missing sanitized leaf suffix", name)
	}
	if registry.Count() != 1 {
		t.Errorf("Count = %d, want 1", registry.Count())
	}
}

func TestCreateUniqueNames(t *testing.T) {
	dir := t.TempDir()
	registry := NewRegistry(dir, nil)

	seen := make(map[string]bool)
	for range 10 {
		file, err := registry.Create("same-hint.jar")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		file.Close()
		if seen[file.Name()] {
			t.Fatalf("duplicate temp file name %s", file.Name())
		}
		seen[file.Name()] = true
	}
}

func TestSanitizeLeaf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"http://example.com/downloads/app.jar", "app.jar"},
		{"http://example.com/app.jar?version=2&arch=x86", "app.jar_version_2_arch_x86"},
		{"dir/my lib.jar", "my_lib.jar"},
		{"plain.jar", "plain.jar"},
		{`win\style.jar`, "win_style.jar"},
	}
	for _, tt := range tests {
		if got := sanitizeLeaf(tt.path); got != tt.want {
			t.Errorf("sanitizeLeaf(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRemoveAll(t *testing.T) {
	dir := t.TempDir()
	registry := NewRegistry(dir, nil)

	var paths []string
	for range 3 {
		file, err := registry.Create("doomed.jar")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		file.Close()
		paths = append(paths, file.Name())
	}

	// Remove one out of band: RemoveAll must skip it without failing.
	if err := os.Remove(paths[1]); err != nil {
		t.Fatalf("out-of-band remove failed: %v", err)
	}

	registry.RemoveAll()
	for _, path := range paths {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("temp file %s still exists after RemoveAll", path)
		}
	}
	if registry.Count() != 0 {
		t.Errorf("Count after RemoveAll = %d, want 0", registry.Count())
	}

	// Idempotent.
	registry.RemoveAll()
}

func TestConcurrentCreate(t *testing.T) {
	dir := t.TempDir()
	registry := NewRegistry(dir, nil)

	var wait sync.WaitGroup
	for range 8 {
		wait.Add(1)
		go func() {
			defer wait.Done()
			for range 4 {
				file, err := registry.Create("concurrent.jar")
				if err != nil {
					t.Errorf("Create failed: %v", err)
					return
				}
				file.Close()
			}
		}()
	}
	wait.Wait()

	if registry.Count() != 32 {
		t.Errorf("Count = %d, want 32", registry.Count())
	}
	registry.RemoveAll()
	remaining, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading temp dir: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("%d files left in temp dir after RemoveAll", len(remaining))
	}
}
