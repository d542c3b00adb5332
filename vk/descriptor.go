// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// CreateDescriptorSetLayout wraps vkCreateDescriptorSetLayout.
func (l *Library) CreateDescriptorSetLayout(device Device, info *DescriptorSetLayoutCreateInfo) (DescriptorSetLayout, Result) {
	fn := l.GetDeviceProcAddr(device, "vkCreateDescriptorSetLayout")
	var layout DescriptorSetLayout
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

// DestroyDescriptorSetLayout wraps vkDestroyDescriptorSetLayout.
func (l *Library) DestroyDescriptorSetLayout(device Device, layout DescriptorSetLayout) {
	fn := l.GetDeviceProcAddr(device, "vkDestroyDescriptorSetLayout")
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&layout),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kPtr}, args)
}

// CreateDescriptorPool wraps vkCreateDescriptorPool.
func (l *Library) CreateDescriptorPool(device Device, info *DescriptorPoolCreateInfo) (DescriptorPool, Result) {
	fn := l.GetDeviceProcAddr(device, "vkCreateDescriptorPool")
	var pool DescriptorPool
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

// DestroyDescriptorPool wraps vkDestroyDescriptorPool.
func (l *Library) DestroyDescriptorPool(device Device, pool DescriptorPool) {
	fn := l.GetDeviceProcAddr(device, "vkDestroyDescriptorPool")
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kPtr}, args)
}

// ResetDescriptorPool wraps vkResetDescriptorPool.
func (l *Library) ResetDescriptorPool(device Device, pool DescriptorPool) Result {
	fn := l.GetDeviceProcAddr(device, "vkResetDescriptorPool")
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

// AllocateDescriptorSets wraps vkAllocateDescriptorSets.
func (l *Library) AllocateDescriptorSets(device Device, info *DescriptorSetAllocateInfo) ([]DescriptorSet, Result) {
	fn := l.GetDeviceProcAddr(device, "vkAllocateDescriptorSets")

	sets := make([]DescriptorSet, info.DescriptorSetCount)
	setsPtr := unsafe.Pointer(&sets[0])
	infoPtr := unsafe.Pointer(info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(&setsPtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kPtr}, args)
	return sets, result
}

// FreeDescriptorSets wraps vkFreeDescriptorSets.
func (l *Library) FreeDescriptorSets(device Device, pool DescriptorPool, sets []DescriptorSet) Result {
	fn := l.GetDeviceProcAddr(device, "vkFreeDescriptorSets")
	count := uint32(len(sets))
	var setsPtr unsafe.Pointer
	if count > 0 {
		setsPtr = unsafe.Pointer(&sets[0])
	}

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(&count),
		unsafe.Pointer(&setsPtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kU64, kU32, kPtr}, args)
	return result
}

// UpdateDescriptorSets wraps vkUpdateDescriptorSets. Only writes are
// supported; copies are never produced by this package's higher layers.
func (l *Library) UpdateDescriptorSets(device Device, writes []WriteDescriptorSet) {
	fn := l.GetDeviceProcAddr(device, "vkUpdateDescriptorSets")
	writeCount := uint32(len(writes))
	var writesPtr unsafe.Pointer
	if writeCount > 0 {
		writesPtr = unsafe.Pointer(&writes[0])
	}
	var copyCount uint32
	var copiesPtr unsafe.Pointer

	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&writeCount),
		unsafe.Pointer(&writesPtr),
		unsafe.Pointer(&copyCount),
		unsafe.Pointer(&copiesPtr),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU32, kPtr, kU32, kPtr}, args)
}
