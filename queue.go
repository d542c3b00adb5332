// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import (
	"unsafe"

	"github.com/gogpu/vkcompute/optimize/pool"
	"github.com/gogpu/vkcompute/optimize/timeline"
	"github.com/gogpu/vkcompute/vk"
)

// defaultSubmitTimeoutNanos bounds how long Submit waits for the GPU to
// finish, accommodating heavy compute workloads.
const defaultSubmitTimeoutNanos = uint64(30_000_000_000)

// Queue is the device's single compute queue. Submission goes through a
// timeline.Batcher, which accumulates command buffers and flushes them
// as one vkQueueSubmit signaling consecutive timeline values, falling
// back to a per-submit fence when the device has no timeline semaphore
// support.
type Queue struct {
	device  *Device
	handle  vk.Queue
	batcher *timeline.Batcher
}

// Submit records each command buffer into the queue's batcher and blocks
// until the GPU has completed all of them, freeing the command buffers
// afterward.
func (q *Queue) Submit(commandBuffers ...*CommandBuffer) error {
	if len(commandBuffers) == 0 {
		return nil
	}

	var last uint64
	for _, cb := range commandBuffers {
		value, err := q.batcher.Enqueue(cb.handle, nil, nil)
		if err != nil {
			return err
		}
		last = value
	}

	if err := q.batcher.Wait(last, defaultSubmitTimeoutNanos); err != nil {
		return err
	}

	handles := make([]vk.CommandBuffer, len(commandBuffers))
	for i, cb := range commandBuffers {
		handles[i] = cb.handle
	}
	q.device.lib.FreeCommandBuffers(q.device.handle, q.device.commandPool, handles)
	return nil
}

// WriteBuffer uploads data into buffer at offset. Host-visible buffers
// are written directly through their mapped pointer; device-local
// buffers go through a temporary host-visible staging buffer and a
// submitted copy.
func (q *Queue) WriteBuffer(buffer *Buffer, offset uint64, data []byte) error {
	if buffer == nil {
		return ErrNilDescriptor
	}
	if buffer.alloc.Class == pool.DeviceLocal {
		return q.writeViaStaging(buffer, offset, data)
	}

	mapped, err := buffer.Mapped()
	if err != nil {
		return err
	}
	dst := unsafe.Slice((*byte)(unsafe.Add(mapped, offset)), len(data))
	copy(dst, data)
	return nil
}

// ReadBuffer downloads buffer's bytes at offset into data. Device-local
// buffers go through a temporary host-visible staging buffer and a
// submitted copy.
func (q *Queue) ReadBuffer(buffer *Buffer, offset uint64, data []byte) error {
	if buffer == nil {
		return ErrNilDescriptor
	}
	if buffer.alloc.Class == pool.DeviceLocal {
		return q.readViaStaging(buffer, offset, data)
	}

	mapped, err := buffer.Mapped()
	if err != nil {
		return err
	}
	src := unsafe.Slice((*byte)(unsafe.Add(mapped, offset)), len(data))
	copy(data, src)
	return nil
}

func (q *Queue) writeViaStaging(buffer *Buffer, offset uint64, data []byte) error {
	staging, err := q.device.CreateBuffer(&BufferDescriptor{
		Label:       "staging-upload",
		Size:        uint64(len(data)),
		Usage:       BufferUsageCopySrc | BufferUsageCopyDst,
		MemoryClass: pool.HostVisibleCoherent,
	})
	if err != nil {
		return err
	}
	defer staging.Release()

	mapped, err := staging.Mapped()
	if err != nil {
		return err
	}
	copy(unsafe.Slice((*byte)(mapped), len(data)), data)

	enc, err := q.device.CreateCommandEncoder()
	if err != nil {
		return err
	}
	if err := enc.CopyBufferToBuffer(staging, 0, buffer, offset, uint64(len(data))); err != nil {
		return err
	}
	cb, err := enc.Finish()
	if err != nil {
		return err
	}
	return q.Submit(cb)
}

func (q *Queue) readViaStaging(buffer *Buffer, offset uint64, data []byte) error {
	staging, err := q.device.CreateBuffer(&BufferDescriptor{
		Label:       "staging-download",
		Size:        uint64(len(data)),
		Usage:       BufferUsageCopySrc | BufferUsageCopyDst,
		MemoryClass: pool.HostVisibleCoherent,
	})
	if err != nil {
		return err
	}
	defer staging.Release()

	enc, err := q.device.CreateCommandEncoder()
	if err != nil {
		return err
	}
	if err := enc.CopyBufferToBuffer(buffer, offset, staging, 0, uint64(len(data))); err != nil {
		return err
	}
	cb, err := enc.Finish()
	if err != nil {
		return err
	}
	if err := q.Submit(cb); err != nil {
		return err
	}

	mapped, err := staging.Mapped()
	if err != nil {
		return err
	}
	copy(data, unsafe.Slice((*byte)(mapped), len(data)))
	return nil
}

// release closes the batcher's native synchronization objects.
func (q *Queue) release() {
	q.batcher.Close()
}
