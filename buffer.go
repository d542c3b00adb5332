// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import (
	"unsafe"

	"github.com/gogpu/vkcompute/optimize/pool"
	"github.com/gogpu/vkcompute/vk"
)

// BufferDescriptor configures Device.CreateBuffer.
type BufferDescriptor struct {
	Label string
	Size  uint64
	Usage BufferUsage

	// MemoryClass selects which of the device's three memory pools backs
	// this buffer. Defaults to pool.DeviceLocal.
	MemoryClass pool.Class
}

// Buffer represents a GPU buffer backed by a suballocation from the
// device's three-class pool allocator.
type Buffer struct {
	device   *Device
	handle   vk.Buffer
	alloc    pool.Allocation
	size     uint64
	usage    BufferUsage
	label    string
	released bool
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() uint64 { return b.size }

// Usage returns the buffer's usage flags.
func (b *Buffer) Usage() BufferUsage { return b.usage }

// Label returns the buffer's debug label.
func (b *Buffer) Label() string { return b.label }

// Mapped returns the host pointer to this buffer's bytes. It is only
// valid for buffers allocated from a host-visible memory class.
func (b *Buffer) Mapped() (unsafe.Pointer, error) {
	return b.alloc.Mapped()
}

// Release frees the buffer's suballocation and destroys the native
// buffer. The device's barrier tracker forgets any state recorded for
// it.
func (b *Buffer) Release() {
	if b.released {
		return
	}
	b.released = true
	b.device.tracker.Forget(b.handle)
	b.device.pool.Free(b.alloc)
	b.device.lib.DestroyBuffer(b.device.handle, b.handle)
}
