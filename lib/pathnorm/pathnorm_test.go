// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

package pathnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain path", "/home/user/app.jar", "/home/user/app.jar"},
		{"backslashes", `C:\Users\user\app.jar`, "C:/Users/user/app.jar"},
		{"jar wrapper", "jar:/opt/app.jar", "/opt/app.jar"},
		{"double jar wrapper", "jar:jar:/opt/app.jar", "/opt/app.jar"},
		{"file scheme", "file:/opt/app.jar", "/opt/app.jar"},
		{"file authority scheme", "file:///opt/app.jar", "/opt/app.jar"},
		{"percent space", "/opt/my%20app.jar", "/opt/my app.jar"},
		{"percent bang", "/opt/app%21.jar", "/opt/app!.jar"},
		{"bad percent kept", "/opt/100%.jar", "/opt/100%.jar"},
		{"duplicate slashes", "/opt//lib///app.jar", "/opt/lib/app.jar"},
		{"http authority preserved", "http://example.com/app.jar", "http://example.com/app.jar"},
		{"https inner slashes", "https://example.com//downloads//app.jar", "https://example.com/downloads/app.jar"},
		{"nested sections kept", "/opt/outer.jar!inner.jar!com/pkg", "/opt/outer.jar!inner.jar!com/pkg"},
		{"nested section slash run", "/opt/outer.jar!//inner.jar", "/opt/outer.jar!/inner.jar"},
		{"trailing slash kept", "/opt/app.jar!dir/", "/opt/app.jar!dir/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"/opt/app.jar",
		`C:\app.jar!lib\inner.jar`,
		"jar:file:///opt/my%20app.jar!dir/",
		"https://example.com//app.jar!inner.jar!pkg",
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}
