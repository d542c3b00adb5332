// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import "github.com/gogpu/vkcompute/vk"

// ComputePassEncoder records compute dispatch commands.
//
// Created by CommandEncoder.BeginComputePass. Buffer accesses must be
// declared with UseBuffer before Dispatch; Dispatch flushes whatever
// barrier the device's tracker decided each declared access needs, as
// one combined vkCmdPipelineBarrier call, before issuing vkCmdDispatch.
//
// NOT thread-safe.
type ComputePassEncoder struct {
	encoder *CommandEncoder
	ended   bool

	currentLayout   vk.PipelineLayout
	pendingSrc      vk.Flags
	pendingDst      vk.Flags
	pendingBarriers []vk.BufferMemoryBarrier
}

// SetPipeline binds the active compute pipeline.
func (p *ComputePassEncoder) SetPipeline(pipeline *ComputePipeline) {
	if p.ended || pipeline == nil {
		return
	}
	e := p.encoder
	e.device.lib.CmdBindPipeline(e.device.handle, e.handle, pipeline.handle)
}

// SetBindGroup binds a descriptor set at the given index (currently
// always Set 0, the device's single persistent descriptor-set layout).
func (p *ComputePassEncoder) SetBindGroup(index uint32, group *BindGroup) {
	if p.ended || group == nil {
		return
	}
	e := p.encoder
	e.device.lib.CmdBindDescriptorSets(e.device.handle, e.handle, p.currentLayout, index, []vk.DescriptorSet{group.set})
}

// SetPushConstants pushes bytes into the active pipeline layout's
// push-constant range at offset.
func (p *ComputePassEncoder) SetPushConstants(layout *PipelineLayout, offset uint32, data []byte) {
	if p.ended || layout == nil {
		return
	}
	p.currentLayout = layout.handle
	e := p.encoder
	e.device.lib.CmdPushConstants(e.device.handle, e.handle, layout.handle, vk.ShaderStageComputeBit, offset, data)
}

// UseBuffer declares that buf is about to be accessed as access (read or
// write), consulting the device's barrier tracker for whether a barrier
// is required before the next Dispatch. Call this for every buffer a
// dispatch touches, before calling Dispatch.
func (p *ComputePassEncoder) UseBuffer(buf *Buffer, access Access) {
	if p.ended {
		return
	}
	e := p.encoder
	b, ok := e.device.tracker.NoteAccess(buf.handle, access)
	if !ok {
		return
	}
	p.pendingSrc |= b.SrcStageMask
	p.pendingDst |= b.DstStageMask
	p.pendingBarriers = append(p.pendingBarriers, b.AsBufferMemoryBarrier(buf.handle))
}

// Dispatch flushes any barriers accumulated by UseBuffer calls since the
// last Dispatch, as one vkCmdPipelineBarrier, then records vkCmdDispatch.
func (p *ComputePassEncoder) Dispatch(x, y, z uint32) {
	if p.ended {
		return
	}
	e := p.encoder
	if len(p.pendingBarriers) > 0 {
		e.device.lib.CmdPipelineBarrier(e.device.handle, e.handle, p.pendingSrc, p.pendingDst, p.pendingBarriers)
		p.pendingBarriers = nil
		p.pendingSrc, p.pendingDst = 0, 0
	}
	e.device.lib.CmdDispatch(e.device.handle, e.handle, x, y, z)
}

// End ends the compute pass. Vulkan has no native compute-pass
// boundary; this only prevents further use of the encoder.
func (p *ComputePassEncoder) End() error {
	p.ended = true
	return nil
}
