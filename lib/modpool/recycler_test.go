// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

package modpool

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
)

type fakeReader struct {
	id        int
	closed    atomic.Bool
	failClose bool
}

func (r *fakeReader) Open(name string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("resource %s not present", name)
}

func (r *fakeReader) Close() error {
	r.closed.Store(true)
	if r.failClose {
		return errors.New("close failed")
	}
	return nil
}

type fakeRef struct {
	opened    atomic.Int32
	failClose bool
}

func (f *fakeRef) Name() string { return "fake.module" }

func (f *fakeRef) Open() (ModuleReader, error) {
	id := int(f.opened.Add(1))
	return &fakeReader{id: id, failClose: f.failClose}, nil
}

func TestAcquireReusesReleased(t *testing.T) {
	ref := &fakeRef{}
	recycler := NewRecycler(ref)

	first, err := recycler.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	recycler.Release(first)

	second, err := recycler.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if first != second {
		t.Error("Acquire after Release should return the pooled reader")
	}
	if ref.opened.Load() != 1 {
		t.Errorf("opened %d readers, want 1", ref.opened.Load())
	}
}

func TestAcquireOpensWhenPoolEmpty(t *testing.T) {
	ref := &fakeRef{}
	recycler := NewRecycler(ref)

	a, _ := recycler.Acquire()
	b, _ := recycler.Acquire()
	if a == b {
		t.Error("concurrent Acquires should get distinct readers")
	}
	if ref.opened.Load() != 2 {
		t.Errorf("opened %d readers, want 2", ref.opened.Load())
	}
}

func TestCloseClosesIdle(t *testing.T) {
	ref := &fakeRef{failClose: true}
	recycler := NewRecycler(ref)

	a, _ := recycler.Acquire()
	b, _ := recycler.Acquire()
	recycler.Release(a)
	recycler.Release(b)

	// Close swallows the per-reader close failures.
	recycler.Close()
	if !a.(*fakeReader).closed.Load() || !b.(*fakeReader).closed.Load() {
		t.Error("Close did not close all idle readers")
	}

	if _, err := recycler.Acquire(); !errors.Is(err, ErrClosed) {
		t.Errorf("Acquire after Close = %v, want ErrClosed", err)
	}
}

func TestReleaseAfterCloseClosesReader(t *testing.T) {
	ref := &fakeRef{}
	recycler := NewRecycler(ref)

	reader, _ := recycler.Acquire()
	recycler.Close()
	recycler.Release(reader)

	if !reader.(*fakeReader).closed.Load() {
		t.Error("Release after Close should close the reader")
	}
	if recycler.IdleCount() != 0 {
		t.Errorf("IdleCount = %d after Close, want 0", recycler.IdleCount())
	}
}
