// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package pool

import "errors"

var (
	// ErrNoSuitableMemoryType means the device's advertised memory types
	// include nothing matching one of the three fixed classes.
	ErrNoSuitableMemoryType = errors.New("pool: no memory type satisfies this class on this device")

	// ErrOutOfMemory means a slab grow attempt itself failed natively;
	// the allocator does not retry.
	ErrOutOfMemory = errors.New("pool: native memory allocation failed")

	// ErrInvalidSize is returned for a zero or larger-than-slab request.
	ErrInvalidSize = errors.New("pool: invalid allocation size")

	// ErrDoubleFree is returned when freeing an allocation that is not
	// currently live in its slab.
	ErrDoubleFree = errors.New("pool: double free or allocation from a different pool")

	// ErrNotHostVisible is returned by Allocation.Mapped for a
	// DeviceLocal allocation, which is never mapped.
	ErrNotHostVisible = errors.New("pool: allocation is not host-visible")
)
