// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package zipfile

import (
	"fmt"
	"io"
	"runtime/debug"
	"sync"

	"golang.org/x/sys/unix"
)

// PhysicalFile is an open, read-only, memory-mapped handle on an
// archive file on disk. One PhysicalFile exists per canonical file for
// the lifetime of the handler that opened it; callers share it through
// the handler's physical-file cache and must not close it themselves.
//
// ReadAt is safe for concurrent use — reads access the mapping
// directly with no locking.
type PhysicalFile struct {
	path string
	fd   int
	data []byte
	size int64

	closeOnce sync.Once
	closeErr  error
}

// OpenPhysical opens and memory-maps the file at path. The path should
// already be canonical (symlinks resolved) — it is used verbatim for
// diagnostics. Zero-length files open successfully with an empty
// mapping; they fail later, at parse time, like any other non-archive
// bytes.
func OpenPhysical(path string) (*PhysicalFile, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("stating %s: %w", path, err)
	}

	var data []byte
	if stat.Size > 0 {
		data, err = unix.Mmap(fd, 0, int(stat.Size), unix.PROT_READ, unix.MAP_SHARED)
		if err != nil {
			unix.Close(fd)
			return nil, fmt.Errorf("memory-mapping %s: %w", path, err)
		}
	}

	return &PhysicalFile{
		path: path,
		fd:   fd,
		data: data,
		size: stat.Size,
	}, nil
}

// ReadAt reads len(p) bytes starting at byte offset off. Reads go
// through the memory map — no system call overhead for data in the
// page cache.
func (f *PhysicalFile) ReadAt(p []byte, off int64) (readCount int, err error) {
	if off < 0 || off >= f.size {
		return 0, io.EOF
	}

	// Guard against page faults from I/O errors on the underlying
	// storage. Without this, a SIGBUS would crash the process.
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)
		if r := recover(); r != nil {
			err = fmt.Errorf("page fault reading %s at offset %d: %v", f.path, off, r)
		}
	}()

	readCount = copy(p, f.data[off:])
	if readCount < len(p) {
		return readCount, io.EOF
	}
	return readCount, nil
}

// Size returns the file size in bytes.
func (f *PhysicalFile) Size() int64 {
	return f.size
}

// Path returns the canonical path the file was opened from.
func (f *PhysicalFile) Path() string {
	return f.path
}

// Close unmaps the file and closes the descriptor. Close is
// idempotent: second and later calls return the first call's result.
func (f *PhysicalFile) Close() error {
	f.closeOnce.Do(func() {
		if f.data != nil {
			if err := unix.Munmap(f.data); err != nil {
				f.closeErr = fmt.Errorf("unmapping %s: %w", f.path, err)
			}
			f.data = nil
		}
		if err := unix.Close(f.fd); err != nil && f.closeErr == nil {
			f.closeErr = fmt.Errorf("closing %s: %w", f.path, err)
		}
		f.fd = -1
	})
	return f.closeErr
}
