// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build unix

package icd

import "golang.org/x/sys/unix"

// readable reports whether the current process can read path, using the
// same access(2) check the real Vulkan Loader performs before it
// bothers opening a candidate manifest.
func readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
