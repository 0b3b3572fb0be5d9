// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

// Package singleton provides a concurrency-safe memoizing map with
// blocking, at-most-once construction per key.
//
// A [Map] is bound to a build function at construction. The first
// caller of [Map.GetOrCreate] for a key runs the build function; every
// other caller for the same key blocks until that build completes and
// then observes the same value or the same error. Errors are memoized
// exactly like values — a key whose build failed stays failed until
// [Map.Clear].
//
// Build functions may call GetOrCreate on the same Map for a different
// key. The resolver relies on this for recursive resolution, where each
// recursive key is a strictly shorter prefix of the one being built, so
// the recursion cannot deadlock on itself.
package singleton
