// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// CreateInstance wraps vkCreateInstance against this library.
func (l *Library) CreateInstance(info *InstanceCreateInfo) (Instance, Result) {
	fn := l.GetInstanceProcAddr(0, "vkCreateInstance")

	var instance Instance
	instancePtr := unsafe.Pointer(&instance)
	infoPtr := unsafe.Pointer(info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(new(unsafe.Pointer)), // pAllocator, always NULL
		unsafe.Pointer(&instancePtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kPtr, kPtr, kPtr}, args)
	return instance, result
}

// DestroyInstance wraps vkDestroyInstance.
func (l *Library) DestroyInstance(instance Instance) {
	fn := l.GetInstanceProcAddr(instance, "vkDestroyInstance")
	args := []unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kPtr}, args)
}

// EnumeratePhysicalDevices wraps vkEnumeratePhysicalDevices, handling the
// query-then-fill two-call idiom Vulkan uses for variable-length arrays.
func (l *Library) EnumeratePhysicalDevices(instance Instance) ([]PhysicalDevice, Result) {
	fn := l.GetInstanceProcAddr(instance, "vkEnumeratePhysicalDevices")

	var count uint32
	countPtr := unsafe.Pointer(&count)
	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&countPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	if err := call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kPtr}, args); err != nil || result.IsError() {
		return nil, result
	}
	if count == 0 {
		return nil, Success
	}

	devices := make([]PhysicalDevice, count)
	devicesPtr := unsafe.Pointer(&devices[0])
	countPtr = unsafe.Pointer(&count)
	args = []unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&countPtr),
		unsafe.Pointer(&devicesPtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kPtr}, args)
	return devices[:count], result
}

// GetPhysicalDeviceProperties wraps vkGetPhysicalDeviceProperties.
func (l *Library) GetPhysicalDeviceProperties(instance Instance, pd PhysicalDevice) PhysicalDeviceProperties {
	fn := l.GetInstanceProcAddr(instance, "vkGetPhysicalDeviceProperties")
	var props PhysicalDeviceProperties
	propsPtr := unsafe.Pointer(&props)
	args := []unsafe.Pointer{
		unsafe.Pointer(&pd),
		unsafe.Pointer(&propsPtr),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kPtr}, args)
	return props
}

// GetPhysicalDeviceQueueFamilyProperties wraps
// vkGetPhysicalDeviceQueueFamilyProperties, again via the query-then-fill
// idiom.
func (l *Library) GetPhysicalDeviceQueueFamilyProperties(instance Instance, pd PhysicalDevice) []QueueFamilyProperties {
	fn := l.GetInstanceProcAddr(instance, "vkGetPhysicalDeviceQueueFamilyProperties")

	var count uint32
	countPtr := unsafe.Pointer(&count)
	args := []unsafe.Pointer{
		unsafe.Pointer(&pd),
		unsafe.Pointer(&countPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kPtr, kPtr}, args)
	if count == 0 {
		return nil
	}

	families := make([]QueueFamilyProperties, count)
	famPtr := unsafe.Pointer(&families[0])
	countPtr = unsafe.Pointer(&count)
	args = []unsafe.Pointer{
		unsafe.Pointer(&pd),
		unsafe.Pointer(&countPtr),
		unsafe.Pointer(&famPtr),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kPtr, kPtr}, args)
	return families
}

// GetPhysicalDeviceMemoryProperties wraps vkGetPhysicalDeviceMemoryProperties.
func (l *Library) GetPhysicalDeviceMemoryProperties(instance Instance, pd PhysicalDevice) PhysicalDeviceMemoryProperties {
	fn := l.GetInstanceProcAddr(instance, "vkGetPhysicalDeviceMemoryProperties")
	var props PhysicalDeviceMemoryProperties
	propsPtr := unsafe.Pointer(&props)
	args := []unsafe.Pointer{
		unsafe.Pointer(&pd),
		unsafe.Pointer(&propsPtr),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kPtr}, args)
	return props
}
