// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// trustedPrefixes lists the platform system library directories a
// candidate path must resolve under to be trusted without the opt-in
// override.
func trustedPrefixes() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Windows\System32`,
			`C:\Windows\SysWOW64`,
		}
	case "darwin":
		return []string{
			"/usr/lib",
			"/usr/local/lib",
			"/System/Library",
			"/Library/Frameworks",
		}
	default: // linux and other unix-likes
		return []string{
			"/usr/lib",
			"/usr/lib64",
			"/usr/local/lib",
			"/lib",
			"/lib64",
		}
	}
}

// checkTrust canonicalizes path and applies the trust policy: it must
// be a regular file, and unless allowUntrusted is set, it must live
// under one of the platform's trusted prefixes. The regular-file check
// is never skippable.
func checkTrust(path string, allowUntrusted bool, logger *slog.Logger) (string, error) {
	canon, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: cannot canonicalize: %v", ErrLibraryUntrusted, path, err)
	}
	canon = filepath.Clean(canon)

	info, err := os.Lstat(canon)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrLibraryUntrusted, canon, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s: not a regular file", ErrLibraryUntrusted, canon)
	}

	if allowUntrusted {
		logger.Warn("icd: trust policy prefix check bypassed", "path", canon)
		return canon, nil
	}

	for _, prefix := range trustedPrefixes() {
		if withinPrefix(canon, prefix) {
			return canon, nil
		}
	}
	return "", fmt.Errorf("%w: %s: not under a trusted prefix", ErrLibraryUntrusted, canon)
}

func withinPrefix(path, prefix string) bool {
	rel, err := filepath.Rel(prefix, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
