// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

// zipnest resolves nested archive paths from the command line.
//
// Each argument is a nested path — a local file or http(s) URL,
// optionally followed by "!"-separated in-archive sections — and is
// resolved to its archive and package root:
//
//	zipnest app.jar
//	zipnest --list 'spring-app.jar!BOOT-INF/lib/guava.jar'
//	zipnest 'https://repo.example.com/app.jar!com/example/'
//
// Exit status is 0 when every path resolves, 1 when any resolution
// fails, 2 on usage errors.
package main
