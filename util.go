// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import "unsafe"

// uintptrOf returns a uintptr to b's backing array, for the handful of
// Vulkan structs that take a raw C-string pointer. b must stay alive and
// unmoved for as long as the returned pointer is in use; callers keep
// the byte slice on the stack/heap across the native call that consumes
// it, mirroring the teacher's own PCode/PNext uintptr(unsafe.Pointer(...))
// conversions in vk/pipeline.go and vk/sync.go.
func uintptrOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}
