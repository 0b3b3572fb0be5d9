// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

package modpool

import (
	"errors"
	"io"
	"sync"
)

// ModuleReader is a handle for reading a module's contents. Readers
// are not safe for concurrent use; each goroutine must Acquire its own
// and Release it when done.
type ModuleReader interface {
	io.Closer

	// Open returns a stream of the named resource inside the module.
	Open(name string) (io.ReadCloser, error)
}

// ModuleRef identifies a loadable module. References are compared by
// interface identity when used as cache keys.
type ModuleRef interface {
	// Name returns the module's name for diagnostics.
	Name() string

	// Open creates a new reader for the module.
	Open() (ModuleReader, error)
}

// ErrClosed is returned by Acquire after the recycler has been closed.
var ErrClosed = errors.New("modpool: recycler is closed")

// Recycler pools ModuleReaders for a single module reference. Safe for
// concurrent use.
type Recycler struct {
	open func() (ModuleReader, error)

	mu     sync.Mutex
	idle   []ModuleReader
	closed bool
}

// NewRecycler creates a recycler that opens readers for ref on demand.
func NewRecycler(ref ModuleRef) *Recycler {
	return &Recycler{open: ref.Open}
}

// Acquire returns an idle reader or opens a new one.
func (r *Recycler) Acquire() (ModuleReader, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrClosed
	}
	if n := len(r.idle); n > 0 {
		reader := r.idle[n-1]
		r.idle = r.idle[:n-1]
		r.mu.Unlock()
		return reader, nil
	}
	r.mu.Unlock()

	return r.open()
}

// Release returns a reader to the idle pool for reuse. If the recycler
// has been closed in the meantime, the reader is closed instead.
func (r *Recycler) Release(reader ModuleReader) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		reader.Close()
		return
	}
	r.idle = append(r.idle, reader)
	r.mu.Unlock()
}

// Close closes every idle reader, swallowing individual close
// failures, and marks the recycler closed. Readers still acquired are
// closed when released.
func (r *Recycler) Close() {
	r.mu.Lock()
	idle := r.idle
	r.idle = nil
	r.closed = true
	r.mu.Unlock()

	for _, reader := range idle {
		_ = reader.Close()
	}
}

// IdleCount returns the number of pooled idle readers.
func (r *Recycler) IdleCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.idle)
}
