// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// AllocateMemory wraps vkAllocateMemory.
func (l *Library) AllocateMemory(device Device, info *MemoryAllocateInfo) (DeviceMemory, Result) {
	fn := l.GetDeviceProcAddr(device, "vkAllocateMemory")
	var mem DeviceMemory
	memPtr := unsafe.Pointer(&mem)
	infoPtr := unsafe.Pointer(info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
		unsafe.Pointer(&memPtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kPtr, kPtr}, args)
	return mem, result
}

// FreeMemory wraps vkFreeMemory.
func (l *Library) FreeMemory(device Device, mem DeviceMemory) {
	fn := l.GetDeviceProcAddr(device, "vkFreeMemory")
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&mem),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kPtr}, args)
}

// BindBufferMemory wraps vkBindBufferMemory.
func (l *Library) BindBufferMemory(device Device, buffer Buffer, mem DeviceMemory, offset DeviceSize) Result {
	fn := l.GetDeviceProcAddr(device, "vkBindBufferMemory")
	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&mem),
		unsafe.Pointer(&offset),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kU64, kU64, kU64}, args)
	return result
}

// MapMemory wraps vkMapMemory. The returned pointer is valid for [offset,
// offset+size) of the device memory object until UnmapMemory is called.
func (l *Library) MapMemory(device Device, mem DeviceMemory, offset, size DeviceSize) (unsafe.Pointer, Result) {
	fn := l.GetDeviceProcAddr(device, "vkMapMemory")

	var data unsafe.Pointer
	dataPtr := unsafe.Pointer(&data)
	var flags Flags

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&mem),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&size),
		unsafe.Pointer(&flags),
		unsafe.Pointer(&dataPtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kU64, kU64, kU64, kU32, kPtr}, args)
	return data, result
}

// UnmapMemory wraps vkUnmapMemory.
func (l *Library) UnmapMemory(device Device, mem DeviceMemory) {
	fn := l.GetDeviceProcAddr(device, "vkUnmapMemory")
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&mem),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64}, args)
}
