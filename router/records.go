// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package router

import (
	"github.com/gogpu/vkcompute/icd"
	"github.com/gogpu/vkcompute/vk"
)

// InstanceRecord tracks one native instance and the ICD that owns it.
// In aggregated mode the aggregate package's MetaInstance holds one
// native instance per ICD, and each of those is recorded here as its
// own InstanceRecord; the meta-instance has no native handle of its own.
type InstanceRecord struct {
	ICD      *icd.LoadedICD
	Instance vk.Instance
}

// PhysicalDeviceRecord tracks a physical device's owning ICD and the
// instance it was enumerated from.
type PhysicalDeviceRecord struct {
	ICD            *icd.LoadedICD
	PhysicalDevice vk.PhysicalDevice
	Instance       vk.Instance
}

// DeviceRecord tracks a logical device's owning ICD.
type DeviceRecord struct {
	ICD    *icd.LoadedICD
	Device vk.Device
}

// QueueRecord, CommandPoolRecord, and CommandBufferRecord all resolve to
// their owning device's ICD; the device back-pointer lets higher layers
// find queue-family metadata and other device-scoped state without a
// second lookup.
type QueueRecord struct {
	ICD    *icd.LoadedICD
	Device vk.Device
	Queue  vk.Queue
}

type CommandPoolRecord struct {
	ICD    *icd.LoadedICD
	Device vk.Device
	Pool   vk.CommandPool
}

type CommandBufferRecord struct {
	ICD           *icd.LoadedICD
	Device        vk.Device
	CommandBuffer vk.CommandBuffer
}
