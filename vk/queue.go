// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// SubmitBatch describes one vkQueueSubmit entry: the command buffers to
// run, the semaphores to wait on and signal, and — when the queue uses a
// timeline semaphore — the paired wait/signal values chained via
// TimelineSemaphoreSubmitInfo.
type SubmitBatch struct {
	WaitSemaphores     []Semaphore
	WaitDstStageMask   []Flags
	CommandBuffers     []CommandBuffer
	SignalSemaphores   []Semaphore
	WaitValues         []uint64
	SignalValues       []uint64
}

// QueueSubmit wraps vkQueueSubmit, submitting all given batches in one
// call and signaling fence (which may be 0) on completion of the last.
func (l *Library) QueueSubmit(device Device, queue Queue, batches []SubmitBatch, fence Fence) Result {
	fn := l.GetDeviceProcAddr(device, "vkQueueSubmit")

	infos := make([]SubmitInfo, len(batches))
	timelineInfos := make([]TimelineSemaphoreSubmitInfo, len(batches))

	for i := range batches {
		b := &batches[i]
		info := SubmitInfo{SType: StructureTypeSubmitInfo}

		if n := len(b.WaitSemaphores); n > 0 {
			info.WaitSemaphoreCount = uint32(n)
			info.PWaitSemaphores = &b.WaitSemaphores[0]
			info.PWaitDstStageMask = &b.WaitDstStageMask[0]
		}
		if n := len(b.CommandBuffers); n > 0 {
			info.CommandBufferCount = uint32(n)
			info.PCommandBuffers = &b.CommandBuffers[0]
		}
		if n := len(b.SignalSemaphores); n > 0 {
			info.SignalSemaphoreCount = uint32(n)
			info.PSignalSemaphores = &b.SignalSemaphores[0]
		}

		if len(b.WaitValues) > 0 || len(b.SignalValues) > 0 {
			t := &timelineInfos[i]
			t.SType = StructureTypeTimelineSemaphoreSubmitInfo
			if n := len(b.WaitValues); n > 0 {
				t.WaitSemaphoreValueCount = uint32(n)
				t.PWaitSemaphoreValues = &b.WaitValues[0]
			}
			if n := len(b.SignalValues); n > 0 {
				t.SignalSemaphoreValueCount = uint32(n)
				t.PSignalSemaphoreValues = &b.SignalValues[0]
			}
			info.PNext = uintptr(unsafe.Pointer(t))
		}

		infos[i] = info
	}

	count := uint32(len(infos))
	var infosPtr unsafe.Pointer
	if count > 0 {
		infosPtr = unsafe.Pointer(&infos[0])
	}

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&queue),
		unsafe.Pointer(&count),
		unsafe.Pointer(&infosPtr),
		unsafe.Pointer(&fence),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kU32, kPtr, kU64}, args)
	return result
}

// QueueWaitIdle wraps vkQueueWaitIdle. The batcher's non-timeline
// fallback waits on a fence instead and does not call it.
func (l *Library) QueueWaitIdle(device Device, queue Queue) Result {
	fn := l.GetDeviceProcAddr(device, "vkQueueWaitIdle")
	var result Result
	args := []unsafe.Pointer{unsafe.Pointer(&queue)}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64}, args)
	return result
}
