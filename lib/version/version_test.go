// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestInfoCleanBuild(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, Version) {
		t.Errorf("Info() = %q, want prefix %q", info, Version)
	}
	if strings.Contains(info, "-dirty") {
		t.Errorf("Info() = %q reports dirty for a clean build", info)
	}
}

func TestInfoDirtyBuild(t *testing.T) {
	saved := GitDirty
	GitDirty = "true"
	defer func() { GitDirty = saved }()

	if info := Info(); !strings.Contains(info, "-dirty") {
		t.Errorf("Info() = %q, want a -dirty marker", info)
	}
}

func TestFullIncludesRuntime(t *testing.T) {
	full := Full()
	if !strings.Contains(full, runtime.Version()) {
		t.Errorf("Full() = %q, want the Go runtime version", full)
	}
	if !strings.Contains(full, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("Full() = %q, want the target platform", full)
	}
	if !strings.HasPrefix(full, Info()) {
		t.Errorf("Full() = %q, want it to start with Info()", full)
	}
}
