// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/zipnest/zipnest/lib/config"
	"github.com/zipnest/zipnest/lib/digest"
	"github.com/zipnest/zipnest/lib/nestjar"
	"github.com/zipnest/zipnest/lib/version"
	"github.com/zipnest/zipnest/lib/zipfile"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Handle --version before flag parsing to match other zipnest
	// binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("zipnest")
		return 0
	}

	var configPath string
	var tempDir string
	var logLevel string
	var noNested bool
	var listEntries bool
	var showDigest bool

	flagSet := pflag.NewFlagSet("zipnest", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to zipnest.yaml (default: $ZIPNEST_CONFIG)")
	flagSet.StringVar(&tempDir, "temp-dir", "", "directory for extracted and downloaded temp files")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.BoolVar(&noNested, "no-nested", false, "refuse to descend into nested archives")
	flagSet.BoolVar(&listEntries, "list", false, "list the resolved archive's entries")
	flagSet.BoolVar(&showDigest, "digest", false, "print the BLAKE3 digest of the resolved archive's bytes")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return 0
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "error: no nested paths given")
		printHelp(flagSet)
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if tempDir != "" {
		cfg.TempDir = tempDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	}))

	var client *http.Client
	if timeout := cfg.Timeout(); timeout > 0 {
		client = &http.Client{Timeout: timeout}
	}

	handler := nestjar.New(nestjar.Config{
		DisableNestedJars: noNested || !cfg.NestedJarsEnabled(),
		TempDir:           cfg.TempDir,
		HTTPClient:        client,
		Logger:            logger,
	})
	defer handler.Close()

	failures := 0
	for _, path := range paths {
		if err := report(handler, path, listEntries, showDigest); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)
			failures++
		}
	}
	if failures > 0 {
		return 1
	}
	return 0
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// report resolves one nested path and prints the result.
func report(handler *nestjar.Handler, path string, listEntries, showDigest bool) error {
	archive, packageRoot, err := handler.Resolve(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", path)
	fmt.Printf("  archive: %s\n", archive)
	if packageRoot == "" {
		fmt.Printf("  package root: (archive root)\n")
	} else {
		fmt.Printf("  package root: %s\n", packageRoot)
	}
	fmt.Printf("  entries: %d\n", len(archive.Entries()))

	if showDigest {
		archiveDigest, err := digest.HashReader(archive.Slice().ReaderAt())
		if err != nil {
			return fmt.Errorf("hashing archive bytes: %w", err)
		}
		fmt.Printf("  blake3: %s\n", digest.Format(archiveDigest))
	}

	if listEntries {
		for _, entry := range archive.Entries() {
			fmt.Printf("  %s %10d  %s\n", entryKind(entry), entry.Size, entry.Name)
		}
	}
	return nil
}

func entryKind(entry zipfile.Entry) string {
	if entry.Compressed {
		return "deflated"
	}
	return "stored  "
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `zipnest — resolve nested archive paths

Usage:
  zipnest [flags] <nested-path>...

A nested path is a local file or http(s) URL, optionally followed by
"!"-separated sections addressing archives-within-archives, for
example: outer.jar!inner.jar!com/pkg/

Flags:
%s`, flagSet.FlagUsages())
}
