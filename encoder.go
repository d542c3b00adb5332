// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import (
	"github.com/gogpu/vkcompute/optimize/barrier"
	"github.com/gogpu/vkcompute/vk"
)

// CommandEncoder records GPU commands for later submission.
//
// A command encoder is single-use. After calling Finish, the encoder
// cannot be used again. Call Device.CreateCommandEncoder to create a new
// one.
//
// NOT thread-safe.
type CommandEncoder struct {
	device   *Device
	handle   vk.CommandBuffer
	finished bool
}

// BeginComputePass begins a compute pass. The returned ComputePassEncoder
// records bind/dispatch commands against this encoder's command buffer.
func (e *CommandEncoder) BeginComputePass() (*ComputePassEncoder, error) {
	if e.finished {
		return nil, ErrReleased
	}
	return &ComputePassEncoder{encoder: e}, nil
}

// CopyBufferToBuffer records a buffer-to-buffer copy, noting a transfer
// write against dst in the device's barrier tracker so the next shader
// access to dst gets the barrier it needs.
func (e *CommandEncoder) CopyBufferToBuffer(src *Buffer, srcOffset uint64, dst *Buffer, dstOffset uint64, size uint64) error {
	if e.finished {
		return ErrReleased
	}

	if b, ok := e.device.tracker.NoteAccess(dst.handle, barrier.TransferWriteInFlight); ok {
		e.device.lib.CmdPipelineBarrier(e.device.handle, e.handle, b.SrcStageMask, b.DstStageMask, []vk.BufferMemoryBarrier{b.AsBufferMemoryBarrier(dst.handle)})
	}

	e.device.lib.CmdCopyBuffer(e.device.handle, e.handle, src.handle, dst.handle, []struct{ SrcOffset, DstOffset, Size vk.DeviceSize }{
		{SrcOffset: vk.DeviceSize(srcOffset), DstOffset: vk.DeviceSize(dstOffset), Size: vk.DeviceSize(size)},
	})
	return nil
}

// Finish completes command recording and returns a CommandBuffer ready
// for Queue.Submit. After calling Finish, the encoder cannot be used
// again.
func (e *CommandEncoder) Finish() (*CommandBuffer, error) {
	if e.finished {
		return nil, ErrReleased
	}
	e.finished = true

	if result := e.device.lib.EndCommandBuffer(e.device.handle, e.handle); result.IsError() {
		return nil, ErrCommandBufferFailed
	}
	return &CommandBuffer{device: e.device, handle: e.handle}, nil
}

// CommandBuffer holds recorded GPU commands ready for submission.
// Created by CommandEncoder.Finish.
type CommandBuffer struct {
	device *Device
	handle vk.CommandBuffer
}
