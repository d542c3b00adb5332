// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import (
	"github.com/gogpu/vkcompute/optimize/barrier"
	"github.com/gogpu/vkcompute/vk"
)

// DeviceType classifies the kind of physical device an Adapter reports,
// mirroring VkPhysicalDeviceType's first five values.
type DeviceType int

const (
	DeviceTypeOther DeviceType = iota
	DeviceTypeIntegratedGPU
	DeviceTypeDiscreteGPU
	DeviceTypeVirtualGPU
	DeviceTypeCPU
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeIntegratedGPU:
		return "integrated"
	case DeviceTypeDiscreteGPU:
		return "discrete"
	case DeviceTypeVirtualGPU:
		return "virtual"
	case DeviceTypeCPU:
		return "cpu"
	default:
		return "other"
	}
}

// PowerPreference biases RequestAdapter's choice among multiple physical
// devices toward low-power or high-performance parts.
type PowerPreference int

const (
	PowerPreferenceNone PowerPreference = iota
	PowerPreferenceLowPower
	PowerPreferenceHighPerformance
)

// RequestAdapterOptions configures Instance.RequestAdapter.
type RequestAdapterOptions struct {
	PowerPreference PowerPreference
}

// AdapterInfo is a snapshot of a physical device's identity.
type AdapterInfo struct {
	Name       string
	VendorID   uint32
	DeviceID   uint32
	DeviceType DeviceType
	DriverPath string // the owning ICD's library path
}

// BufferUsage mirrors the subset of VkBufferUsageFlagBits a compute-only
// facade needs: a buffer is either a shader-visible storage resource, a
// transfer source, a transfer destination, or some combination.
type BufferUsage = vk.Flags

const (
	BufferUsageStorage BufferUsage = vk.BufferUsageStorageBufferBit
	BufferUsageCopySrc BufferUsage = vk.BufferUsageTransferSrcBit
	BufferUsageCopyDst BufferUsage = vk.BufferUsageTransferDstBit
)

// Access is the kind of shader/transfer access a ComputePassEncoder
// records against a buffer before a dispatch, feeding the device's
// barrier tracker. It is a thin re-export of optimize/barrier.State so
// callers never need to import that package directly.
type Access = barrier.State

const (
	AccessTransferWrite Access = barrier.TransferWriteInFlight
	AccessRead          Access = barrier.ShaderRead
	AccessWrite         Access = barrier.ShaderWrite
)
