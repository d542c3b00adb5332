// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// CreateDevice wraps vkCreateDevice.
func (l *Library) CreateDevice(pd PhysicalDevice, info *DeviceCreateInfo) (Device, Result) {
	fn := l.GetInstanceProcAddr(0, "vkCreateDevice")

	var device Device
	devicePtr := unsafe.Pointer(&device)
	infoPtr := unsafe.Pointer(info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&pd),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
		unsafe.Pointer(&devicePtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kPtr, kPtr}, args)
	return device, result
}

// DestroyDevice wraps vkDestroyDevice.
func (l *Library) DestroyDevice(device Device) {
	fn := l.GetDeviceProcAddr(device, "vkDestroyDevice")
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kPtr}, args)
}

// GetDeviceQueue wraps vkGetDeviceQueue.
func (l *Library) GetDeviceQueue(device Device, familyIndex, queueIndex uint32) Queue {
	fn := l.GetDeviceProcAddr(device, "vkGetDeviceQueue")
	var queue Queue
	queuePtr := unsafe.Pointer(&queue)
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&familyIndex),
		unsafe.Pointer(&queueIndex),
		unsafe.Pointer(&queuePtr),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU32, kU32, kPtr}, args)
	return queue
}

// DeviceWaitIdle wraps vkDeviceWaitIdle.
func (l *Library) DeviceWaitIdle(device Device) Result {
	fn := l.GetDeviceProcAddr(device, "vkDeviceWaitIdle")
	var result Result
	args := []unsafe.Pointer{unsafe.Pointer(&device)}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64}, args)
	return result
}

// CreateBuffer wraps vkCreateBuffer.
func (l *Library) CreateBuffer(device Device, info *BufferCreateInfo) (Buffer, Result) {
	fn := l.GetDeviceProcAddr(device, "vkCreateBuffer")
	var buffer Buffer
	bufferPtr := unsafe.Pointer(&buffer)
	infoPtr := unsafe.Pointer(info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
		unsafe.Pointer(&bufferPtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kPtr, kPtr}, args)
	return buffer, result
}

// DestroyBuffer wraps vkDestroyBuffer.
func (l *Library) DestroyBuffer(device Device, buffer Buffer) {
	fn := l.GetDeviceProcAddr(device, "vkDestroyBuffer")
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kPtr}, args)
}

// GetBufferMemoryRequirements wraps vkGetBufferMemoryRequirements.
func (l *Library) GetBufferMemoryRequirements(device Device, buffer Buffer) MemoryRequirements {
	fn := l.GetDeviceProcAddr(device, "vkGetBufferMemoryRequirements")
	var req MemoryRequirements
	reqPtr := unsafe.Pointer(&req)
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&reqPtr),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kPtr}, args)
	return req
}
