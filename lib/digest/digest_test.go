// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestHashFileMatchesHashReader(t *testing.T) {
	content := []byte("the quick brown fox jumps over the lazy dog")
	path := filepath.Join(t.TempDir(), "content.bin")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	fromFile, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	fromReader, err := HashReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("HashReader failed: %v", err)
	}
	if fromFile != fromReader {
		t.Errorf("HashFile = %s, HashReader = %s", Format(fromFile), Format(fromReader))
	}
}

func TestHashFileDistinguishesContent(t *testing.T) {
	a, err := HashReader(bytes.NewReader([]byte("content a")))
	if err != nil {
		t.Fatalf("HashReader failed: %v", err)
	}
	b, err := HashReader(bytes.NewReader([]byte("content b")))
	if err != nil {
		t.Fatalf("HashReader failed: %v", err)
	}
	if a == b {
		t.Error("different content produced identical digests")
	}
}

func TestHashFileMissing(t *testing.T) {
	if _, err := HashFile(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Error("HashFile of missing file should fail")
	}
}

func TestFormat(t *testing.T) {
	var digest [32]byte
	digest[0] = 0xAB
	digest[31] = 0x01
	formatted := Format(digest)
	if len(formatted) != 64 {
		t.Fatalf("Format length = %d, want 64", len(formatted))
	}
	if formatted[:2] != "ab" || formatted[62:] != "01" {
		t.Errorf("Format = %s, want ab...01", formatted)
	}
}
