// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import (
	"fmt"

	"github.com/gogpu/vkcompute/icd"
	"github.com/gogpu/vkcompute/optimize/barrier"
	"github.com/gogpu/vkcompute/optimize/descriptor"
	"github.com/gogpu/vkcompute/optimize/pool"
	"github.com/gogpu/vkcompute/optimize/timeline"
	"github.com/gogpu/vkcompute/vk"
)

// DeviceDescriptor configures logical device creation.
type DeviceDescriptor struct {
	// Label is an opaque debug name, unused by the driver.
	Label string

	// MaxBufferBindings is the number of storage-buffer slots the
	// device's single persistent descriptor-set layout reserves at Set
	// 0. Defaults to 8.
	MaxBufferBindings uint32

	// SlabSize overrides the three-class allocator's native allocation
	// granularity. Zero selects pool.DefaultSlabSize.
	SlabSize uint64

	// DisableTimelineSemaphore forces the submission batcher into its
	// synchronous, one-submit-per-command-buffer fallback path, for
	// drivers that do not support VK_KHR_timeline_semaphore /
	// Vulkan 1.2 timeline semaphores.
	DisableTimelineSemaphore bool
}

const defaultMaxBufferBindings uint32 = 8

// Adapter represents one physical device reachable through one of the
// instance's loaded ICDs.
type Adapter struct {
	instance *Instance
	owner    *icd.LoadedICD
	pd       vk.PhysicalDevice
	nativeInstance vk.Instance

	props    vk.PhysicalDeviceProperties
	memProps vk.PhysicalDeviceMemoryProperties
	queueFamilyIndex uint32

	info     AdapterInfo
	released bool
}

func (i *Instance) newAdapter(pd vk.PhysicalDevice) (*Adapter, error) {
	owner, err := i.router.ICDForPhysicalDevice(pd)
	if err != nil {
		return nil, fmt.Errorf("resolving ICD for physical device: %w", err)
	}
	native, ok := i.meta.NativeInstance(owner)
	if !ok {
		return nil, fmt.Errorf("no native instance recorded for owning ICD")
	}

	lib := owner.Library()
	props := lib.GetPhysicalDeviceProperties(native, pd)
	memProps := lib.GetPhysicalDeviceMemoryProperties(native, pd)
	families := lib.GetPhysicalDeviceQueueFamilyProperties(native, pd)

	queueFamilyIndex, ok := findComputeQueueFamily(families)
	if !ok {
		return nil, ErrNoComputeQueue
	}

	return &Adapter{
		instance:         i,
		owner:            owner,
		pd:               pd,
		nativeInstance:   native,
		props:            props,
		memProps:         memProps,
		queueFamilyIndex: queueFamilyIndex,
		info: AdapterInfo{
			Name:       deviceName(props),
			VendorID:   props.VendorID,
			DeviceID:   props.DeviceID,
			DeviceType: deviceTypeFromVk(props.DeviceType),
			DriverPath: owner.Info().LibraryPath,
		},
	}, nil
}

// Info returns the adapter's identity snapshot.
func (a *Adapter) Info() AdapterInfo { return a.info }

// RequestDevice creates a logical device with one compute-capable queue,
// and wires up the device's three-class memory pool, persistent
// descriptor allocator, barrier tracker, and submission batcher.
func (a *Adapter) RequestDevice(desc *DeviceDescriptor) (*Device, error) {
	if a.released {
		return nil, ErrReleased
	}
	if desc == nil {
		desc = &DeviceDescriptor{}
	}
	bindings := desc.MaxBufferBindings
	if bindings == 0 {
		bindings = defaultMaxBufferBindings
	}

	lib := a.owner.Library()
	priority := float32(1)
	queueInfo := vk.DeviceQueueCreateInfo{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: a.queueFamilyIndex,
		QueueCount:       1,
		PQueuePriorities: &priority,
	}
	createInfo := &vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: 1,
		PQueueCreateInfos:    &queueInfo,
	}

	handle, err := a.instance.aggregator.CreateDevice(a.pd, createInfo)
	if err != nil {
		return nil, fmt.Errorf("vkcompute: %w", ErrDeviceCreateFailed)
	}

	queueHandle := lib.GetDeviceQueue(handle, a.queueFamilyIndex, 0)
	a.instance.router.RecordQueue(queueHandle, a.owner, handle)

	cmdPoolInfo := &vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		QueueFamilyIndex: a.queueFamilyIndex,
	}
	cmdPool, result := lib.CreateCommandPool(handle, cmdPoolInfo)
	if result.IsError() {
		lib.DestroyDevice(handle)
		return nil, fmt.Errorf("vkcompute: command pool creation failed")
	}
	a.instance.router.RecordCommandPool(cmdPool, a.owner, handle)

	allocator := pool.NewAllocator(lib, handle, a.memProps, desc.SlabSize)

	descAlloc, err := descriptor.CreatePersistentLayout(lib, handle, bindings)
	if err != nil {
		lib.DestroyCommandPool(handle, cmdPool)
		lib.DestroyDevice(handle)
		return nil, fmt.Errorf("vkcompute: %w", err)
	}

	tracker := barrier.NewTracker(barrier.VendorFromID(a.props.VendorID))

	batcher, err := timeline.NewBatcher(lib, handle, queueHandle, !desc.DisableTimelineSemaphore)
	if err != nil {
		descAlloc.Cleanup()
		lib.DestroyCommandPool(handle, cmdPool)
		lib.DestroyDevice(handle)
		return nil, fmt.Errorf("vkcompute: %w", err)
	}

	d := &Device{
		adapter:     a,
		handle:      handle,
		lib:         lib,
		router:      a.instance.router,
		commandPool: cmdPool,
		pool:        allocator,
		descriptors: descAlloc,
		tracker:     tracker,
		label:       desc.Label,
	}
	d.queue = &Queue{device: d, handle: queueHandle, batcher: batcher}
	return d, nil
}

// Release marks the adapter as no longer usable. Physical devices have
// no native destruction call; this only guards against further use.
func (a *Adapter) Release() {
	a.released = true
}

func findComputeQueueFamily(families []vk.QueueFamilyProperties) (uint32, bool) {
	for i, f := range families {
		if f.QueueFlags&vk.QueueComputeBit != 0 {
			return uint32(i), true
		}
	}
	return 0, false
}

func deviceTypeFromVk(t uint32) DeviceType {
	switch t {
	case 1:
		return DeviceTypeIntegratedGPU
	case 2:
		return DeviceTypeDiscreteGPU
	case 3:
		return DeviceTypeVirtualGPU
	case 4:
		return DeviceTypeCPU
	default:
		return DeviceTypeOther
	}
}

func deviceName(props vk.PhysicalDeviceProperties) string {
	end := 0
	for end < len(props.DeviceName) && props.DeviceName[end] != 0 {
		end++
	}
	return string(props.DeviceName[:end])
}
