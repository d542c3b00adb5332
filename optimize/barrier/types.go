// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package barrier

import "github.com/gogpu/vkcompute/vk"

// State is a buffer's last-observed access, the compute-only
// specialization of the teacher's BufferTracker usage lattice
// (BufferUsesNone/CopyDst/StorageRead/StorageWrite in core/track) down
// to exactly the transitions a storage-buffer-only dispatch pipeline
// can produce.
type State int

const (
	None State = iota
	TransferWriteInFlight
	ShaderRead
	ShaderWrite
)

func (s State) String() string {
	switch s {
	case TransferWriteInFlight:
		return "TransferWriteInFlight"
	case ShaderRead:
		return "ShaderRead"
	case ShaderWrite:
		return "ShaderWrite"
	default:
		return "None"
	}
}

// Vendor classifies the owning ICD's reported vendor, used only to
// decide whether a same-stage write-after-write transition may be
// elided; it never changes which barrier is emitted when one is
// required.
type Vendor int

const (
	VendorOther Vendor = iota
	VendorAMD
	VendorNVIDIA
	VendorIntel
)

// VendorFromID classifies a VkPhysicalDeviceProperties.VendorID the same
// way hal/vulkan/adapter.go classifies hardware vendors.
func VendorFromID(id uint32) Vendor {
	switch id {
	case vk.VendorAMD:
		return VendorAMD
	case vk.VendorNVIDIA:
		return VendorNVIDIA
	case vk.VendorIntel:
		return VendorIntel
	default:
		return VendorOther
	}
}

// Barrier is the single pipeline barrier NoteAccess says to insert
// before the next command touching a buffer.
type Barrier struct {
	SrcStageMask  vk.Flags
	DstStageMask  vk.Flags
	SrcAccessMask vk.Flags
	DstAccessMask vk.Flags
}

// AsBufferMemoryBarrier renders b as a VkBufferMemoryBarrier against buf,
// covering its full range.
func (b Barrier) AsBufferMemoryBarrier(buf vk.Buffer) vk.BufferMemoryBarrier {
	return vk.BufferMemoryBarrier{
		SType:               vk.StructureTypeBufferMemoryBarrier,
		SrcAccessMask:       b.SrcAccessMask,
		DstAccessMask:       b.DstAccessMask,
		SrcQueueFamilyIndex: ignoredQueueFamily,
		DstQueueFamilyIndex: ignoredQueueFamily,
		Buffer:              buf,
		Offset:              0,
		Size:                vk.WholeSize,
	}
}

// ignoredQueueFamily is VK_QUEUE_FAMILY_IGNORED: the tracker never
// performs queue family ownership transfers, only execution/memory
// ordering within one queue.
const ignoredQueueFamily = 0xFFFFFFFF
