// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

package singleton

import "sync"

// entry holds the completion state for one key. The done channel is
// closed when the build finishes; value and err are written before the
// close and never mutated afterward.
type entry[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// Map memoizes the result of a build function per key, constructing
// each value at most once regardless of how many goroutines ask for it
// concurrently.
//
// Map is safe for concurrent use. The zero value is not usable; use
// [New].
type Map[K comparable, V any] struct {
	build func(key K) (V, error)

	mu      sync.Mutex
	entries map[K]*entry[V]
}

// New creates a Map bound to the given build function.
func New[K comparable, V any](build func(key K) (V, error)) *Map[K, V] {
	return &Map[K, V]{
		build:   build,
		entries: make(map[K]*entry[V]),
	}
}

// GetOrCreate returns the memoized value for key, building it if this
// is the first request. If another goroutine is already building the
// value for key, GetOrCreate blocks until that build completes and
// returns its result. A build error is memoized and returned to every
// caller for the key.
//
// The build function runs without the map lock held, so it may call
// GetOrCreate for other keys.
func (m *Map[K, V]) GetOrCreate(key K) (V, error) {
	m.mu.Lock()
	if existing, ok := m.entries[key]; ok {
		m.mu.Unlock()
		<-existing.done
		return existing.value, existing.err
	}
	created := &entry[V]{done: make(chan struct{})}
	m.entries[key] = created
	m.mu.Unlock()

	created.value, created.err = m.build(key)
	close(created.done)
	return created.value, created.err
}

// Values returns a snapshot of every successfully built value. Entries
// still being built and entries whose build failed are skipped; Values
// never blocks on an in-flight build.
func (m *Map[K, V]) Values() []V {
	m.mu.Lock()
	snapshot := make([]*entry[V], 0, len(m.entries))
	for _, e := range m.entries {
		snapshot = append(snapshot, e)
	}
	m.mu.Unlock()

	values := make([]V, 0, len(snapshot))
	for _, e := range snapshot {
		select {
		case <-e.done:
			if e.err == nil {
				values = append(values, e.value)
			}
		default:
		}
	}
	return values
}

// Clear drops every entry. Builds already in flight complete normally
// and their callers still observe the built result, but the result is
// no longer memoized for future callers.
func (m *Map[K, V]) Clear() {
	m.mu.Lock()
	m.entries = make(map[K]*entry[V])
	m.mu.Unlock()
}

// Len returns the number of entries, including in-flight and failed
// builds.
func (m *Map[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
