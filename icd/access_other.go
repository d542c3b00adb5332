// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build !unix

package icd

import "os"

// readable reports whether the current process can read path. Platforms
// without access(2) fall back to a stat call; a manifest that fails
// this check is simply skipped, same as a missing one.
func readable(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
