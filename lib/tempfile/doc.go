// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

// Package tempfile creates and tracks the temporary files produced by
// nested-archive extraction and remote downloads.
//
// Every file a [Registry] creates is recorded until [Registry.RemoveAll]
// deletes it during shutdown. Names embed the sanitized leaf of the
// source path after a "---" separator, so a directory listing of stuck
// temp files identifies what they were extracted from. Removal is
// best-effort: each failure is logged and skipped, never escalated.
package tempfile
