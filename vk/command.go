// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// CreateCommandPool wraps vkCreateCommandPool.
func (l *Library) CreateCommandPool(device Device, info *CommandPoolCreateInfo) (CommandPool, Result) {
	fn := l.GetDeviceProcAddr(device, "vkCreateCommandPool")
	var pool CommandPool
	poolPtr := unsafe.Pointer(&pool)
	infoPtr := unsafe.Pointer(info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
		unsafe.Pointer(&poolPtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kPtr, kPtr}, args)
	return pool, result
}

// DestroyCommandPool wraps vkDestroyCommandPool.
func (l *Library) DestroyCommandPool(device Device, pool CommandPool) {
	fn := l.GetDeviceProcAddr(device, "vkDestroyCommandPool")
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kPtr}, args)
}

// ResetCommandPool wraps vkResetCommandPool.
func (l *Library) ResetCommandPool(device Device, pool CommandPool) Result {
	fn := l.GetDeviceProcAddr(device, "vkResetCommandPool")
	var flags Flags
	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(&flags),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kU64, kU32}, args)
	return result
}

// AllocateCommandBuffers wraps vkAllocateCommandBuffers.
func (l *Library) AllocateCommandBuffers(device Device, info *CommandBufferAllocateInfo) ([]CommandBuffer, Result) {
	fn := l.GetDeviceProcAddr(device, "vkAllocateCommandBuffers")

	buffers := make([]CommandBuffer, info.CommandBufferCount)
	buffersPtr := unsafe.Pointer(&buffers[0])
	infoPtr := unsafe.Pointer(info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(&buffersPtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kPtr}, args)
	return buffers, result
}

// FreeCommandBuffers wraps vkFreeCommandBuffers.
func (l *Library) FreeCommandBuffers(device Device, pool CommandPool, buffers []CommandBuffer) {
	fn := l.GetDeviceProcAddr(device, "vkFreeCommandBuffers")
	count := uint32(len(buffers))
	var buffersPtr unsafe.Pointer
	if count > 0 {
		buffersPtr = unsafe.Pointer(&buffers[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(&count),
		unsafe.Pointer(&buffersPtr),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kU32, kPtr}, args)
}

// BeginCommandBuffer wraps vkBeginCommandBuffer. device identifies which
// ICD's function table to resolve against; it is never passed to the
// underlying C call, which only takes the command buffer itself.
func (l *Library) BeginCommandBuffer(device Device, cb CommandBuffer, oneTimeSubmit bool) Result {
	fn := l.GetDeviceProcAddr(device, "vkBeginCommandBuffer")
	info := CommandBufferBeginInfo{SType: StructureTypeCommandBufferBeginInfo}
	if oneTimeSubmit {
		info.Flags = 1 // VK_COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT
	}
	infoPtr := unsafe.Pointer(&info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&infoPtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr}, args)
	return result
}

// EndCommandBuffer wraps vkEndCommandBuffer.
func (l *Library) EndCommandBuffer(device Device, cb CommandBuffer) Result {
	fn := l.GetDeviceProcAddr(device, "vkEndCommandBuffer")
	var result Result
	args := []unsafe.Pointer{unsafe.Pointer(&cb)}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64}, args)
	return result
}

// CmdBindPipeline wraps vkCmdBindPipeline for the compute bind point.
func (l *Library) CmdBindPipeline(device Device, cb CommandBuffer, pipeline Pipeline) {
	fn := l.GetDeviceProcAddr(device, "vkCmdBindPipeline")
	bindPoint := uint32(1) // VK_PIPELINE_BIND_POINT_COMPUTE
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&bindPoint),
		unsafe.Pointer(&pipeline),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU32, kU64}, args)
}

// CmdBindDescriptorSets wraps vkCmdBindDescriptorSets for the compute
// bind point with no dynamic offsets.
func (l *Library) CmdBindDescriptorSets(device Device, cb CommandBuffer, layout PipelineLayout, firstSet uint32, sets []DescriptorSet) {
	fn := l.GetDeviceProcAddr(device, "vkCmdBindDescriptorSets")
	bindPoint := uint32(1)
	setCount := uint32(len(sets))
	var setsPtr unsafe.Pointer
	if setCount > 0 {
		setsPtr = unsafe.Pointer(&sets[0])
	}
	var dynCount uint32
	var dynPtr unsafe.Pointer

	args := []unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&bindPoint),
		unsafe.Pointer(&layout),
		unsafe.Pointer(&firstSet),
		unsafe.Pointer(&setCount),
		unsafe.Pointer(&setsPtr),
		unsafe.Pointer(&dynCount),
		unsafe.Pointer(&dynPtr),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU32, kU64, kU32, kU32, kPtr, kU32, kPtr}, args)
}

// CmdPushConstants wraps vkCmdPushConstants. data must be at most 128
// bytes; the persistent-descriptor optimization relies on that limit
// being enforced one layer up, at pipeline-layout creation.
func (l *Library) CmdPushConstants(device Device, cb CommandBuffer, layout PipelineLayout, stageFlags Flags, offset uint32, data []byte) {
	fn := l.GetDeviceProcAddr(device, "vkCmdPushConstants")
	size := uint32(len(data))
	var dataPtr unsafe.Pointer
	if size > 0 {
		dataPtr = unsafe.Pointer(&data[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&layout),
		unsafe.Pointer(&stageFlags),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&size),
		unsafe.Pointer(&dataPtr),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kU32, kU32, kU32, kPtr}, args)
}

// CmdDispatch wraps vkCmdDispatch.
func (l *Library) CmdDispatch(device Device, cb CommandBuffer, groupCountX, groupCountY, groupCountZ uint32) {
	fn := l.GetDeviceProcAddr(device, "vkCmdDispatch")
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&groupCountX),
		unsafe.Pointer(&groupCountY),
		unsafe.Pointer(&groupCountZ),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU32, kU32, kU32}, args)
}

// CmdPipelineBarrier wraps vkCmdPipelineBarrier restricted to buffer
// memory barriers; no global memory barrier is passed, and image
// barriers are never needed by a compute-only facade.
func (l *Library) CmdPipelineBarrier(device Device, cb CommandBuffer, srcStage, dstStage Flags, bufferBarriers []BufferMemoryBarrier) {
	fn := l.GetDeviceProcAddr(device, "vkCmdPipelineBarrier")
	var depFlags Flags
	var memCount uint32
	var memPtr unsafe.Pointer

	bufCount := uint32(len(bufferBarriers))
	var bufPtr unsafe.Pointer
	if bufCount > 0 {
		bufPtr = unsafe.Pointer(&bufferBarriers[0])
	}

	var imgCount uint32
	var imgPtr unsafe.Pointer

	args := []unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&srcStage),
		unsafe.Pointer(&dstStage),
		unsafe.Pointer(&depFlags),
		unsafe.Pointer(&memCount),
		unsafe.Pointer(&memPtr),
		unsafe.Pointer(&bufCount),
		unsafe.Pointer(&bufPtr),
		unsafe.Pointer(&imgCount),
		unsafe.Pointer(&imgPtr),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU32, kU32, kU32, kU32, kPtr, kU32, kPtr, kU32, kPtr}, args)
}

// CmdCopyBuffer wraps vkCmdCopyBuffer.
func (l *Library) CmdCopyBuffer(device Device, cb CommandBuffer, src, dst Buffer, regions []struct{ SrcOffset, DstOffset, Size DeviceSize }) {
	fn := l.GetDeviceProcAddr(device, "vkCmdCopyBuffer")
	count := uint32(len(regions))
	var regionsPtr unsafe.Pointer
	if count > 0 {
		regionsPtr = unsafe.Pointer(&regions[0])
	}
	args := []unsafe.Pointer{
		unsafe.Pointer(&cb),
		unsafe.Pointer(&src),
		unsafe.Pointer(&dst),
		unsafe.Pointer(&count),
		unsafe.Pointer(&regionsPtr),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kU64, kU32, kPtr}, args)
}
