// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package router is the single point through which every intercepted
// Vulkan call passes: it maps opaque native handles to the LoadedICD
// that owns them. It is the generalization of the teacher's
// Registry[T, Marker]/IdentityManager pattern from Go-allocated
// resource IDs to native handles the ICD itself hands out — ownership
// here is recorded, never allocated.
package router

import (
	"sync"

	"github.com/gogpu/vkcompute/icd"
	"github.com/gogpu/vkcompute/vk"
)

// Router holds the process-wide handle→owner mappings, one
// independently-locked map per handle level, exactly as the teacher's
// Hub keeps one RWMutex-guarded map per resource type rather than a
// single global lock.
type Router struct {
	instanceMu sync.RWMutex
	instances  map[vk.Instance]InstanceRecord

	physicalDeviceMu sync.RWMutex
	physicalDevices  map[vk.PhysicalDevice]PhysicalDeviceRecord

	deviceMu sync.RWMutex
	devices  map[vk.Device]DeviceRecord

	queueMu sync.RWMutex
	queues  map[vk.Queue]QueueRecord

	commandPoolMu sync.RWMutex
	commandPools  map[vk.CommandPool]CommandPoolRecord

	commandBufferMu sync.RWMutex
	commandBuffers  map[vk.CommandBuffer]CommandBufferRecord

	// FallbackPrimary is the correctness-critical escape hatch for a
	// device lookup that misses because some code path created a
	// handle without recording it. It must only be set when aggregation
	// is disabled, or when exactly one ICD is loaded — using it with
	// more than one ICD loaded in aggregated mode could silently route
	// a call to the wrong driver.
	FallbackPrimary *icd.LoadedICD
}

// New returns an empty Router.
func New() *Router {
	return &Router{
		instances:       make(map[vk.Instance]InstanceRecord),
		physicalDevices: make(map[vk.PhysicalDevice]PhysicalDeviceRecord),
		devices:         make(map[vk.Device]DeviceRecord),
		queues:          make(map[vk.Queue]QueueRecord),
		commandPools:    make(map[vk.CommandPool]CommandPoolRecord),
		commandBuffers:  make(map[vk.CommandBuffer]CommandBufferRecord),
	}
}

// RecordInstance registers a newly created instance with its owning ICD.
func (r *Router) RecordInstance(handle vk.Instance, owner *icd.LoadedICD) {
	r.instanceMu.Lock()
	defer r.instanceMu.Unlock()
	r.instances[handle] = InstanceRecord{ICD: owner, Instance: handle}
}

// ICDForInstance resolves the ICD owning an instance handle.
func (r *Router) ICDForInstance(handle vk.Instance) (*icd.LoadedICD, error) {
	r.instanceMu.RLock()
	rec, ok := r.instances[handle]
	r.instanceMu.RUnlock()
	if ok {
		return rec.ICD, nil
	}
	return r.fallback()
}

// RemoveInstance drops an instance's record, called from DestroyInstance.
func (r *Router) RemoveInstance(handle vk.Instance) {
	r.instanceMu.Lock()
	defer r.instanceMu.Unlock()
	delete(r.instances, handle)
}

// RecordPhysicalDevice registers a physical device enumerated from instance.
func (r *Router) RecordPhysicalDevice(handle vk.PhysicalDevice, owner *icd.LoadedICD, instance vk.Instance) {
	r.physicalDeviceMu.Lock()
	defer r.physicalDeviceMu.Unlock()
	r.physicalDevices[handle] = PhysicalDeviceRecord{ICD: owner, PhysicalDevice: handle, Instance: instance}
}

// ICDForPhysicalDevice resolves the ICD owning a physical device handle.
func (r *Router) ICDForPhysicalDevice(handle vk.PhysicalDevice) (*icd.LoadedICD, error) {
	r.physicalDeviceMu.RLock()
	rec, ok := r.physicalDevices[handle]
	r.physicalDeviceMu.RUnlock()
	if ok {
		return rec.ICD, nil
	}
	return r.fallback()
}

// RecordDevice registers a newly created device with its owning ICD.
func (r *Router) RecordDevice(handle vk.Device, owner *icd.LoadedICD) {
	r.deviceMu.Lock()
	defer r.deviceMu.Unlock()
	r.devices[handle] = DeviceRecord{ICD: owner, Device: handle}
}

// ICDForDevice resolves the ICD owning a device handle.
func (r *Router) ICDForDevice(handle vk.Device) (*icd.LoadedICD, error) {
	r.deviceMu.RLock()
	rec, ok := r.devices[handle]
	r.deviceMu.RUnlock()
	if ok {
		return rec.ICD, nil
	}
	return r.fallback()
}

// RemoveDevice drops a device's record, called from DestroyDevice.
func (r *Router) RemoveDevice(handle vk.Device) {
	r.deviceMu.Lock()
	defer r.deviceMu.Unlock()
	delete(r.devices, handle)
}

// RecordQueue registers a queue obtained from device.
func (r *Router) RecordQueue(handle vk.Queue, owner *icd.LoadedICD, device vk.Device) {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()
	r.queues[handle] = QueueRecord{ICD: owner, Device: device, Queue: handle}
}

// ICDForQueue resolves the ICD owning a queue handle.
func (r *Router) ICDForQueue(handle vk.Queue) (*icd.LoadedICD, error) {
	r.queueMu.RLock()
	rec, ok := r.queues[handle]
	r.queueMu.RUnlock()
	if ok {
		return rec.ICD, nil
	}
	return r.fallback()
}

// RecordCommandPool registers a command pool created on device.
func (r *Router) RecordCommandPool(handle vk.CommandPool, owner *icd.LoadedICD, device vk.Device) {
	r.commandPoolMu.Lock()
	defer r.commandPoolMu.Unlock()
	r.commandPools[handle] = CommandPoolRecord{ICD: owner, Device: device, Pool: handle}
}

// ICDForCommandPool resolves the ICD owning a command pool handle.
func (r *Router) ICDForCommandPool(handle vk.CommandPool) (*icd.LoadedICD, error) {
	r.commandPoolMu.RLock()
	rec, ok := r.commandPools[handle]
	r.commandPoolMu.RUnlock()
	if ok {
		return rec.ICD, nil
	}
	return r.fallback()
}

// RemoveCommandPool drops a command pool's record.
func (r *Router) RemoveCommandPool(handle vk.CommandPool) {
	r.commandPoolMu.Lock()
	defer r.commandPoolMu.Unlock()
	delete(r.commandPools, handle)
}

// RecordCommandBuffer registers a command buffer allocated from pool.
func (r *Router) RecordCommandBuffer(handle vk.CommandBuffer, owner *icd.LoadedICD, device vk.Device) {
	r.commandBufferMu.Lock()
	defer r.commandBufferMu.Unlock()
	r.commandBuffers[handle] = CommandBufferRecord{ICD: owner, Device: device, CommandBuffer: handle}
}

// ICDForCommandBuffer resolves the ICD owning a command buffer handle.
func (r *Router) ICDForCommandBuffer(handle vk.CommandBuffer) (*icd.LoadedICD, error) {
	r.commandBufferMu.RLock()
	rec, ok := r.commandBuffers[handle]
	r.commandBufferMu.RUnlock()
	if ok {
		return rec.ICD, nil
	}
	return r.fallback()
}

// RemoveCommandBuffer drops a command buffer's record.
func (r *Router) RemoveCommandBuffer(handle vk.CommandBuffer) {
	r.commandBufferMu.Lock()
	defer r.commandBufferMu.Unlock()
	delete(r.commandBuffers, handle)
}

func (r *Router) fallback() (*icd.LoadedICD, error) {
	if r.FallbackPrimary != nil {
		return r.FallbackPrimary, nil
	}
	return nil, ErrNoDevice
}
