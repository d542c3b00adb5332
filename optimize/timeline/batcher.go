// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package timeline implements per-queue submission batching: command
// buffers accumulate in a pending list and flush as one vkQueueSubmit
// call signaling consecutive timeline-semaphore values, generalizing
// the teacher's one-command-buffer-per-submit hal/vulkan/queue.go and
// fence_pool.go bookkeeping into a batching Batcher with a fallback path
// for devices lacking VK_KHR_timeline_semaphore.
package timeline

import (
	"sync"

	"github.com/gogpu/vkcompute/vk"
)

// DefaultBatchSize is the number of command buffers a batch accumulates
// before Enqueue flushes automatically.
const DefaultBatchSize = 16

type pendingEntry struct {
	cb             vk.CommandBuffer
	waitSemaphores []vk.Semaphore
	waitStages     []vk.Flags
	waitValues     []uint64
	signalValue    uint64
}

// Batcher batches submissions to one VkQueue. A zero Batcher is not
// valid; use NewBatcher.
type Batcher struct {
	mu sync.Mutex

	lib    *vk.Library
	device vk.Device
	queue  vk.Queue

	timelineSemaphore vk.Semaphore
	useTimeline       bool
	counter           uint64
	batchSize         int
	pending           []pendingEntry

	// fallback state, used only when useTimeline is false.
	fallbackFence vk.Fence
}

// NewBatcher creates a Batcher for queue. When supportsTimeline is true
// it creates one timeline semaphore for the queue's lifetime; otherwise
// it degrades to the one-submission-per-command-buffer fallback using a
// single reusable fence, per spec.md §4.4.3.
func NewBatcher(lib *vk.Library, device vk.Device, queue vk.Queue, supportsTimeline bool) (*Batcher, error) {
	b := &Batcher{
		lib:         lib,
		device:      device,
		queue:       queue,
		batchSize:   DefaultBatchSize,
		useTimeline: supportsTimeline,
	}

	if supportsTimeline {
		sem, result := lib.CreateSemaphore(device, true, 0)
		if result.IsError() {
			return nil, ErrSubmitFailed
		}
		b.timelineSemaphore = sem
		return b, nil
	}

	fence, result := lib.CreateFence(device, false)
	if result.IsError() {
		return nil, ErrSubmitFailed
	}
	b.fallbackFence = fence
	return b, nil
}

// SetBatchSize changes the flush threshold; n is clamped to a minimum of
// 1.
func (b *Batcher) SetBatchSize(n int) {
	if n < 1 {
		n = 1
	}
	b.mu.Lock()
	b.batchSize = n
	b.mu.Unlock()
}

// Enqueue assigns cb the next timeline signal value, appending it to the
// pending batch and flushing immediately if the batch is now full. It
// returns the signal value a caller can later pass to Wait, or 0 in
// fallback mode (the fallback path waits on a reusable fence instead of
// a timeline value).
func (b *Batcher) Enqueue(cb vk.CommandBuffer, waitSemaphores []vk.Semaphore, waitStages []vk.Flags) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.useTimeline {
		return 0, b.submitFallbackLocked(cb, waitSemaphores, waitStages)
	}

	b.counter++
	value := b.counter
	b.pending = append(b.pending, pendingEntry{
		cb:             cb,
		waitSemaphores: waitSemaphores,
		waitStages:     waitStages,
		signalValue:    value,
	})

	if len(b.pending) >= b.batchSize {
		if err := b.flushLocked(); err != nil {
			return value, err
		}
	}
	return value, nil
}

// Flush issues one native submit containing every pending command
// buffer, each signaling its assigned consecutive timeline value, then
// clears the pending list. It is a no-op in fallback mode, where every
// Enqueue already submitted synchronously.
func (b *Batcher) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushLocked()
}

func (b *Batcher) flushLocked() error {
	if !b.useTimeline || len(b.pending) == 0 {
		return nil
	}

	batches := make([]vk.SubmitBatch, len(b.pending))
	for i, p := range b.pending {
		batches[i] = vk.SubmitBatch{
			WaitSemaphores:   p.waitSemaphores,
			WaitDstStageMask: p.waitStages,
			CommandBuffers:   []vk.CommandBuffer{p.cb},
			SignalSemaphores: []vk.Semaphore{b.timelineSemaphore},
			WaitValues:       p.waitValues,
			SignalValues:     []uint64{p.signalValue},
		}
	}

	result := b.lib.QueueSubmit(b.device, b.queue, batches, 0)
	b.pending = b.pending[:0]
	if result.IsError() {
		return ErrSubmitFailed
	}
	return nil
}

// submitFallbackLocked issues one vkQueueSubmit per command buffer and
// waits on a reusable fence before returning, preserving ordering at the
// cost of the CPU/driver round trips the timeline path batches away.
func (b *Batcher) submitFallbackLocked(cb vk.CommandBuffer, waitSemaphores []vk.Semaphore, waitStages []vk.Flags) error {
	batch := vk.SubmitBatch{
		WaitSemaphores:   waitSemaphores,
		WaitDstStageMask: waitStages,
		CommandBuffers:   []vk.CommandBuffer{cb},
	}

	if result := b.lib.ResetFences(b.device, b.fallbackFence); result.IsError() {
		return ErrSubmitFailed
	}
	if result := b.lib.QueueSubmit(b.device, b.queue, []vk.SubmitBatch{batch}, b.fallbackFence); result.IsError() {
		return ErrSubmitFailed
	}
	if result := b.lib.WaitForFences(b.device, b.fallbackFence, ^uint64(0)); result.IsError() {
		return ErrWaitFailed
	}
	return nil
}

// Wait blocks until the timeline semaphore reaches value, or until
// timeoutNanos elapses, in which case it returns ErrWaitFailed. In
// fallback mode every Enqueue already waited synchronously, so Wait
// returns immediately.
func (b *Batcher) Wait(value uint64, timeoutNanos uint64) error {
	if !b.useTimeline {
		return nil
	}
	if err := b.Flush(); err != nil {
		return err
	}
	result := b.lib.WaitSemaphores(b.device, []vk.Semaphore{b.timelineSemaphore}, []uint64{value}, timeoutNanos)
	if result == vk.Timeout || result.IsError() {
		return ErrWaitFailed
	}
	return nil
}

// Close destroys the batcher's native synchronization objects. Any
// still-pending command buffers are flushed first.
func (b *Batcher) Close() error {
	if err := b.Flush(); err != nil {
		return err
	}
	if b.useTimeline {
		b.lib.DestroySemaphore(b.device, b.timelineSemaphore)
	} else {
		b.lib.DestroyFence(b.device, b.fallbackFence)
	}
	return nil
}
