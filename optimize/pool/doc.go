// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package pool provides the slab allocator sitting between the safe API
// and vkAllocateMemory. Three pools per device — DeviceLocal,
// HostVisibleCoherent, HostVisibleCached — each grow by fixed-size slabs
// on demand and serve suballocations from a per-slab buddy free list, so
// steady-state allocation after warm-up never touches the driver.
package pool
