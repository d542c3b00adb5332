// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import (
	"github.com/gogpu/vkcompute/optimize/barrier"
	"github.com/gogpu/vkcompute/optimize/descriptor"
	"github.com/gogpu/vkcompute/optimize/pool"
	"github.com/gogpu/vkcompute/router"
	"github.com/gogpu/vkcompute/vk"
)

// Device represents a logical GPU device opened for compute work. It
// owns the dispatch-layer optimizations described in the package's
// design: the three-class memory pool, the persistent descriptor-set
// allocator, the barrier tracker, and the submission batcher.
//
// Thread-safe for concurrent use, except Release.
type Device struct {
	adapter     *Adapter
	handle      vk.Device
	lib         *vk.Library
	router      *router.Router
	commandPool vk.CommandPool

	queue       *Queue
	pool        *pool.Allocator
	descriptors *descriptor.Allocator
	tracker     *barrier.Tracker

	label    string
	released bool
}

// Queue returns the device's single compute queue.
func (d *Device) Queue() *Queue { return d.queue }

// Adapter returns the physical device this logical device was opened on.
func (d *Device) Adapter() *Adapter { return d.adapter }

// CreateBuffer allocates a native buffer and binds it to memory drawn
// from the device's pool allocator.
func (d *Device) CreateBuffer(desc *BufferDescriptor) (*Buffer, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, ErrNilDescriptor
	}

	class := desc.MemoryClass

	info := &vk.BufferCreateInfo{
		SType: vk.StructureTypeBufferCreateInfo,
		Size:  vk.DeviceSize(desc.Size),
		Usage: desc.Usage,
	}
	handle, result := d.lib.CreateBuffer(d.handle, info)
	if result.IsError() {
		return nil, ErrBufferCreateFailed
	}

	reqs := d.lib.GetBufferMemoryRequirements(d.handle, handle)
	alloc, err := d.pool.Allocate(class, uint64(reqs.Size), uint64(reqs.Alignment))
	if err != nil {
		d.lib.DestroyBuffer(d.handle, handle)
		return nil, err
	}
	if err := d.pool.BindBuffer(handle, alloc); err != nil {
		d.pool.Free(alloc)
		d.lib.DestroyBuffer(d.handle, handle)
		return nil, err
	}

	return &Buffer{
		device: d,
		handle: handle,
		alloc:  alloc,
		size:   desc.Size,
		usage:  desc.Usage,
		label:  desc.Label,
	}, nil
}

// CreateShaderModule loads a SPIR-V module, consumed as an opaque word
// blob: shader authoring and compilation are out of scope.
func (d *Device) CreateShaderModule(code []uint32, label string) (*ShaderModule, error) {
	if d.released {
		return nil, ErrReleased
	}
	if len(code) == 0 {
		return nil, ErrNilDescriptor
	}

	handle, result := d.lib.CreateShaderModule(d.handle, code)
	if result.IsError() {
		return nil, ErrShaderCreateFailed
	}
	return &ShaderModule{device: d, handle: handle, label: label}, nil
}

// PipelineLayoutDescriptor configures CreatePipelineLayout.
type PipelineLayoutDescriptor struct {
	Label string

	// PushConstantBytes is the size in bytes of the push-constant range
	// reserved for this layout, validated against the 128-byte design
	// ceiling.
	PushConstantBytes uint32
}

// CreatePipelineLayout builds a pipeline layout over the device's single
// persistent descriptor-set layout (Set 0) plus an optional push-constant
// range.
func (d *Device) CreatePipelineLayout(desc *PipelineLayoutDescriptor) (*PipelineLayout, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		desc = &PipelineLayoutDescriptor{}
	}

	pcRange := vk.PushConstantRange{
		StageFlags: vk.ShaderStageComputeBit,
		Size:       desc.PushConstantBytes,
	}
	if err := descriptor.ValidatePushConstantRange(pcRange); err != nil {
		return nil, err
	}

	setLayout := d.descriptors.Layout()
	info := &vk.PipelineLayoutCreateInfo{
		SType:          vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount: 1,
		PSetLayouts:    &setLayout,
	}
	if desc.PushConstantBytes > 0 {
		info.PushConstantRangeCount = 1
		info.PPushConstantRanges = &pcRange
	}

	handle, result := d.lib.CreatePipelineLayout(d.handle, info)
	if result.IsError() {
		return nil, ErrPipelineCreateFailed
	}
	return &PipelineLayout{device: d, handle: handle, pushConstantBytes: desc.PushConstantBytes, label: desc.Label}, nil
}

// ComputePipelineDescriptor configures CreateComputePipeline.
type ComputePipelineDescriptor struct {
	Label      string
	Layout     *PipelineLayout
	Module     *ShaderModule
	EntryPoint string // defaults to "main"
}

// CreateComputePipeline compiles a compute pipeline from a shader module
// and pipeline layout.
func (d *Device) CreateComputePipeline(desc *ComputePipelineDescriptor) (*ComputePipeline, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil || desc.Layout == nil || desc.Module == nil {
		return nil, ErrNilDescriptor
	}

	entry := desc.EntryPoint
	if entry == "" {
		entry = "main"
	}
	entryBytes := append([]byte(entry), 0)

	info := &vk.ComputePipelineCreateInfo{
		SType: vk.StructureTypeComputePipelineCreateInfo,
		Stage: vk.PipelineShaderStageCreateInfo{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageComputeBit,
			Module: desc.Module.handle,
			PName:  uintptrOf(entryBytes),
		},
		Layout: desc.Layout.handle,
	}

	handle, result := d.lib.CreateComputePipelines(d.handle, info)
	if result.IsError() {
		return nil, ErrPipelineCreateFailed
	}
	return &ComputePipeline{device: d, handle: handle, layout: desc.Layout, label: desc.Label}, nil
}

// CreateCommandEncoder allocates a primary command buffer from the
// device's command pool and begins recording into it.
func (d *Device) CreateCommandEncoder() (*CommandEncoder, error) {
	if d.released {
		return nil, ErrReleased
	}

	allocInfo := &vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        d.commandPool,
		CommandBufferCount: 1,
	}
	cbs, result := d.lib.AllocateCommandBuffers(d.handle, allocInfo)
	if result.IsError() || len(cbs) == 0 {
		return nil, ErrCommandBufferFailed
	}
	cb := cbs[0]
	d.router.RecordCommandBuffer(cb, d.adapter.owner, d.handle)

	if result := d.lib.BeginCommandBuffer(d.handle, cb, true); result.IsError() {
		d.lib.FreeCommandBuffers(d.handle, d.commandPool, []vk.CommandBuffer{cb})
		return nil, ErrCommandBufferFailed
	}

	return &CommandEncoder{device: d, handle: cb}, nil
}

// GetBindGroup returns a descriptor set bound to buffers at bindings
// 0..len(buffers)-1, served from the device's persistent descriptor
// cache: a repeated call with the same set of buffers (any order) never
// touches the driver again after the first.
func (d *Device) GetBindGroup(buffers []*Buffer) (*BindGroup, error) {
	if d.released {
		return nil, ErrReleased
	}
	handles := make([]vk.Buffer, len(buffers))
	for i, b := range buffers {
		handles[i] = b.handle
	}
	set, err := d.descriptors.GetPersistentDescriptorSet(handles)
	if err != nil {
		return nil, err
	}
	return &BindGroup{set: set, layout: d.descriptors.Layout()}, nil
}

// WaitIdle blocks until every queued operation on this device completes.
func (d *Device) WaitIdle() error {
	if d.released {
		return ErrReleased
	}
	if result := d.lib.DeviceWaitIdle(d.handle); result.IsError() {
		return ErrSubmitFailed
	}
	return nil
}

// Release destroys the device and every resource it owns directly
// (command pool, descriptor pools and layout). Buffers, shader modules
// and pipelines created from this device must be released by the caller
// first; Release does not track or sweep them.
func (d *Device) Release() {
	if d.released {
		return
	}
	d.released = true

	d.queue.release()
	d.descriptors.Cleanup()
	d.lib.DestroyCommandPool(d.handle, d.commandPool)
	d.router.RemoveCommandPool(d.commandPool)

	d.lib.DestroyDevice(d.handle)
	d.router.RemoveDevice(d.handle)
}
