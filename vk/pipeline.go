// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// CreateShaderModule wraps vkCreateShaderModule. code must be SPIR-V
// words; its length in bytes is derived from len(code)*4.
func (l *Library) CreateShaderModule(device Device, code []uint32) (ShaderModule, Result) {
	fn := l.GetDeviceProcAddr(device, "vkCreateShaderModule")

	info := ShaderModuleCreateInfo{
		SType:    StructureTypeShaderModuleCreateInfo,
		CodeSize: uintptr(len(code) * 4),
	}
	if len(code) > 0 {
		info.PCode = uintptr(unsafe.Pointer(&code[0]))
	}

	var mod ShaderModule
	modPtr := unsafe.Pointer(&mod)
	infoPtr := unsafe.Pointer(&info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
		unsafe.Pointer(&modPtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kPtr, kPtr}, args)
	return mod, result
}

// DestroyShaderModule wraps vkDestroyShaderModule.
func (l *Library) DestroyShaderModule(device Device, mod ShaderModule) {
	fn := l.GetDeviceProcAddr(device, "vkDestroyShaderModule")
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&mod),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kPtr}, args)
}

// CreatePipelineLayout wraps vkCreatePipelineLayout.
func (l *Library) CreatePipelineLayout(device Device, info *PipelineLayoutCreateInfo) (PipelineLayout, Result) {
	fn := l.GetDeviceProcAddr(device, "vkCreatePipelineLayout")
	var layout PipelineLayout
	layoutPtr := unsafe.Pointer(&layout)
	infoPtr := unsafe.Pointer(info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
		unsafe.Pointer(&layoutPtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kPtr, kPtr}, args)
	return layout, result
}

// DestroyPipelineLayout wraps vkDestroyPipelineLayout.
func (l *Library) DestroyPipelineLayout(device Device, layout PipelineLayout) {
	fn := l.GetDeviceProcAddr(device, "vkDestroyPipelineLayout")
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&layout),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kPtr}, args)
}

// CreateComputePipelines wraps vkCreateComputePipelines for a single
// pipeline, the only shape the higher layers ever need.
func (l *Library) CreateComputePipelines(device Device, info *ComputePipelineCreateInfo) (Pipeline, Result) {
	fn := l.GetDeviceProcAddr(device, "vkCreateComputePipelines")

	var cache PipelineCache
	var pipeline Pipeline
	pipelinePtr := unsafe.Pointer(&pipeline)
	count := uint32(1)
	infoPtr := unsafe.Pointer(info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&cache),
		unsafe.Pointer(&count),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
		unsafe.Pointer(&pipelinePtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kU64, kU32, kPtr, kPtr, kPtr}, args)
	return pipeline, result
}

// DestroyPipeline wraps vkDestroyPipeline.
func (l *Library) DestroyPipeline(device Device, pipeline Pipeline) {
	fn := l.GetDeviceProcAddr(device, "vkDestroyPipeline")
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pipeline),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kPtr}, args)
}
