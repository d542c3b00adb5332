// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Handle types. Vulkan dispatchable handles are opaque pointer-sized
// values; non-dispatchable handles are always 64-bit regardless of host
// pointer width. Both are modeled as uint64 here so they can double as
// map keys in the router without a platform-conditional type.
type (
	Instance                uint64
	PhysicalDevice           uint64
	Device                   uint64
	Queue                    uint64
	CommandPool              uint64
	CommandBuffer            uint64
	Buffer                   uint64
	DeviceMemory             uint64
	Semaphore                uint64
	Fence                    uint64
	DescriptorPool           uint64
	DescriptorSet            uint64
	DescriptorSetLayout      uint64
	PipelineLayout           uint64
	Pipeline                 uint64
	PipelineCache            uint64
	ShaderModule             uint64
	DeviceSize               uint64
	DeviceAddress            uint64
	Flags                    uint32
	Bool32                   uint32
)

const (
	True32  Bool32 = 1
	False32 Bool32 = 0
)

// WholeSize stands in for VK_WHOLE_SIZE, meaning "from offset to the end
// of the resource" wherever a DeviceSize range is accepted.
const WholeSize DeviceSize = ^DeviceSize(0)

// Result mirrors VkResult. Negative values are errors.
type Result int32

const (
	Success                     Result = 0
	NotReady                    Result = 1
	Timeout                     Result = 2
	EventSet                    Result = 3
	EventReset                  Result = 4
	Incomplete                  Result = 5
	ErrorOutOfHostMemory        Result = -1
	ErrorOutOfDeviceMemory      Result = -2
	ErrorInitializationFailed   Result = -3
	ErrorDeviceLost             Result = -4
	ErrorMemoryMapFailed        Result = -5
	ErrorLayerNotPresent        Result = -6
	ErrorExtensionNotPresent    Result = -7
	ErrorFeatureNotPresent      Result = -8
	ErrorIncompatibleDriver     Result = -9
	ErrorTooManyObjects         Result = -10
	ErrorFormatNotSupported     Result = -11
	ErrorFragmentedPool         Result = -12
	ErrorUnknown                Result = -13
	ErrorOutOfPoolMemory        Result = -1000069000
	ErrorInvalidExternalHandle  Result = -1000072003
)

func (r Result) String() string {
	if r < 0 {
		return "VkResult(error)"
	}
	return "VkResult(success)"
}

// IsError reports whether the result represents a failure.
func (r Result) IsError() bool { return r < 0 }

// StructureType mirrors VkStructureType for the structs this package defines.
type StructureType int32

const (
	StructureTypeApplicationInfo                       StructureType = 0
	StructureTypeInstanceCreateInfo                     StructureType = 1
	StructureTypeDeviceQueueCreateInfo                  StructureType = 2
	StructureTypeDeviceCreateInfo                       StructureType = 3
	StructureTypeSubmitInfo                             StructureType = 4
	StructureTypeMemoryAllocateInfo                     StructureType = 5
	StructureTypeFenceCreateInfo                        StructureType = 8
	StructureTypeSemaphoreCreateInfo                     StructureType = 9
	StructureTypeBufferCreateInfo                        StructureType = 12
	StructureTypeDescriptorPoolCreateInfo                StructureType = 33
	StructureTypeDescriptorSetAllocateInfo               StructureType = 34
	StructureTypeDescriptorSetLayoutCreateInfo           StructureType = 32
	StructureTypeWriteDescriptorSet                      StructureType = 35
	StructureTypeCopyDescriptorSet                       StructureType = 36
	StructureTypeShaderModuleCreateInfo                  StructureType = 16
	StructureTypePipelineLayoutCreateInfo                StructureType = 30
	StructureTypeComputePipelineCreateInfo               StructureType = 29
	StructureTypePipelineShaderStageCreateInfo           StructureType = 18
	StructureTypeCommandPoolCreateInfo                   StructureType = 39
	StructureTypeCommandBufferAllocateInfo               StructureType = 40
	StructureTypeCommandBufferBeginInfo                  StructureType = 42
	StructureTypeBufferMemoryBarrier                     StructureType = 44
	StructureTypeMemoryBarrier                           StructureType = 46
	StructureTypePhysicalDeviceFeatures2                 StructureType = 1000059000
	StructureTypeTimelineSemaphoreSubmitInfo             StructureType = 1000207003
	StructureTypeSemaphoreTypeCreateInfo                 StructureType = 1000207002
	StructureTypeSemaphoreWaitInfo                       StructureType = 1000207004
)

// Queue family / memory flag bits (subset).
const (
	QueueComputeBit  Flags = 1 << 1
	QueueTransferBit Flags = 1 << 2
)

const (
	MemoryPropertyDeviceLocalBit     Flags = 1 << 0
	MemoryPropertyHostVisibleBit     Flags = 1 << 1
	MemoryPropertyHostCoherentBit    Flags = 1 << 2
	MemoryPropertyHostCachedBit      Flags = 1 << 3
)

const (
	BufferUsageTransferSrcBit   Flags = 1 << 0
	BufferUsageTransferDstBit   Flags = 1 << 1
	BufferUsageStorageBufferBit Flags = 1 << 5
)

const (
	PipelineStageTopOfPipeBit    Flags = 1 << 0
	PipelineStageTransferBit     Flags = 1 << 12
	PipelineStageComputeShaderBit Flags = 1 << 11
	PipelineStageBottomOfPipeBit Flags = 1 << 13
	PipelineStageHostBit         Flags = 1 << 14
	PipelineStageAllCommandsBit  Flags = 1 << 16
)

const (
	AccessTransferWriteBit     Flags = 1 << 12
	AccessShaderReadBit        Flags = 1 << 5
	AccessShaderWriteBit       Flags = 1 << 6
	AccessHostWriteBit         Flags = 1 << 14
)

const (
	DescriptorTypeStorageBuffer Flags = 7
)

const (
	DescriptorPoolCreateFreeDescriptorSetBit Flags = 1 << 0
)

const (
	ShaderStageComputeBit Flags = 1 << 5
)

const (
	CommandPoolCreateResetCommandBufferBit Flags = 1 << 1
)

const (
	CommandBufferLevelPrimary = 0
)

const (
	SemaphoreTypeBinary   int32 = 0
	SemaphoreTypeTimeline int32 = 1
)

const (
	FenceCreateSignaledBit Flags = 1 << 0
)

const (
	SemaphoreWaitAnyBit Flags = 1 << 0
)

// ApplicationInfo mirrors VkApplicationInfo.
type ApplicationInfo struct {
	SType              StructureType
	PNext              uintptr
	PApplicationName   uintptr
	ApplicationVersion uint32
	PEngineName        uintptr
	EngineVersion      uint32
	ApiVersion         uint32
}

// InstanceCreateInfo mirrors VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	Flags                   Flags
	PApplicationInfo        *ApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     uintptr
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames uintptr
}

// PhysicalDeviceProperties mirrors the fixed-size prefix of
// VkPhysicalDeviceProperties that the core cares about (vendor/device
// classification). DeviceName is fixed at the spec's 256-byte limit.
type PhysicalDeviceProperties struct {
	ApiVersion    uint32
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32
	DeviceType    uint32
	DeviceName    [256]byte
	PipelineCacheUUID [16]byte
}

// Known PCI vendor IDs used for barrier-tracker vendor classification.
const (
	VendorAMD    uint32 = 0x1002
	VendorNVIDIA uint32 = 0x10DE
	VendorIntel  uint32 = 0x8086
)

type QueueFamilyProperties struct {
	QueueFlags                 Flags
	QueueCount                 uint32
	TimestampValidBits         uint32
	MinImageTransferGranularity [3]uint32
}

type MemoryType struct {
	PropertyFlags Flags
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  DeviceSize
	Flags Flags
}

type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [32]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [16]MemoryHeap
}

type DeviceQueueCreateInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            Flags
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities *float32
}

type PhysicalDeviceFeatures struct {
	// Opaque blob matching VkPhysicalDeviceFeatures' 55 Bool32 fields.
	// The core never inspects individual feature bits today; compute
	// pipelines only require the baseline Vulkan 1.0 feature set.
	Raw [55]Bool32
}

type DeviceCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	Flags                   Flags
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       *DeviceQueueCreateInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     uintptr
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames uintptr
	PEnabledFeatures        *PhysicalDeviceFeatures
}

type BufferCreateInfo struct {
	SType                 StructureType
	PNext                 uintptr
	Flags                 Flags
	Size                  DeviceSize
	Usage                 Flags
	SharingMode           int32
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
}

type MemoryRequirements struct {
	Size           DeviceSize
	Alignment      DeviceSize
	MemoryTypeBits uint32
}

type MemoryAllocateInfo struct {
	SType           StructureType
	PNext           uintptr
	AllocationSize  DeviceSize
	MemoryTypeIndex uint32
}

type DescriptorSetLayoutBinding struct {
	Binding            uint32
	DescriptorType     Flags
	DescriptorCount    uint32
	StageFlags         Flags
	PImmutableSamplers uintptr
}

type DescriptorSetLayoutCreateInfo struct {
	SType        StructureType
	PNext        uintptr
	Flags        Flags
	BindingCount uint32
	PBindings    *DescriptorSetLayoutBinding
}

type DescriptorPoolSize struct {
	Type            Flags
	DescriptorCount uint32
}

type DescriptorPoolCreateInfo struct {
	SType         StructureType
	PNext         uintptr
	Flags         Flags
	MaxSets       uint32
	PoolSizeCount uint32
	PPoolSizes    *DescriptorPoolSize
}

type DescriptorSetAllocateInfo struct {
	SType              StructureType
	PNext              uintptr
	DescriptorPool     DescriptorPool
	DescriptorSetCount uint32
	PSetLayouts        *DescriptorSetLayout
}

type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset DeviceSize
	Range  DeviceSize
}

type WriteDescriptorSet struct {
	SType            StructureType
	PNext            uintptr
	DstSet           DescriptorSet
	DstBinding       uint32
	DstArrayElement  uint32
	DescriptorCount  uint32
	DescriptorType   Flags
	PImageInfo       uintptr
	PBufferInfo      *DescriptorBufferInfo
	PTexelBufferView uintptr
}

type CopyDescriptorSet struct {
	SType           StructureType
	PNext           uintptr
	SrcSet          DescriptorSet
	SrcBinding      uint32
	SrcArrayElement uint32
	DstSet          DescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
}

type PushConstantRange struct {
	StageFlags Flags
	Offset     uint32
	Size       uint32
}

type PipelineLayoutCreateInfo struct {
	SType                  StructureType
	PNext                  uintptr
	Flags                  Flags
	SetLayoutCount         uint32
	PSetLayouts            *DescriptorSetLayout
	PushConstantRangeCount uint32
	PPushConstantRanges    *PushConstantRange
}

type ShaderModuleCreateInfo struct {
	SType    StructureType
	PNext    uintptr
	Flags    Flags
	CodeSize uintptr
	PCode    uintptr
}

type SpecializationInfo struct {
	MapEntryCount uint32
	PMapEntries   uintptr
	DataSize      uintptr
	PData         uintptr
}

type PipelineShaderStageCreateInfo struct {
	SType               StructureType
	PNext               uintptr
	Flags               Flags
	Stage               Flags
	Module              ShaderModule
	PName               uintptr
	PSpecializationInfo *SpecializationInfo
}

type ComputePipelineCreateInfo struct {
	SType              StructureType
	PNext              uintptr
	Flags              Flags
	Stage              PipelineShaderStageCreateInfo
	Layout             PipelineLayout
	BasePipelineHandle Pipeline
	BasePipelineIndex  int32
}

type CommandPoolCreateInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            Flags
	QueueFamilyIndex uint32
}

type CommandBufferAllocateInfo struct {
	SType              StructureType
	PNext              uintptr
	CommandPool        CommandPool
	Level              uint32
	CommandBufferCount uint32
}

type CommandBufferBeginInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            Flags
	PInheritanceInfo uintptr
}

type MemoryBarrier struct {
	SType         StructureType
	PNext         uintptr
	SrcAccessMask Flags
	DstAccessMask Flags
}

type BufferMemoryBarrier struct {
	SType               StructureType
	PNext               uintptr
	SrcAccessMask       Flags
	DstAccessMask       Flags
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              Buffer
	Offset              DeviceSize
	Size                DeviceSize
}

type SemaphoreCreateInfo struct {
	SType StructureType
	PNext uintptr
	Flags Flags
}

type SemaphoreTypeCreateInfo struct {
	SType         StructureType
	PNext         uintptr
	SemaphoreType int32
	InitialValue  uint64
}

type FenceCreateInfo struct {
	SType StructureType
	PNext uintptr
	Flags Flags
}

type SubmitInfo struct {
	SType                StructureType
	PNext                uintptr
	WaitSemaphoreCount   uint32
	PWaitSemaphores      *Semaphore
	PWaitDstStageMask    *Flags
	CommandBufferCount   uint32
	PCommandBuffers      *CommandBuffer
	SignalSemaphoreCount uint32
	PSignalSemaphores    *Semaphore
}

type TimelineSemaphoreSubmitInfo struct {
	SType                     StructureType
	PNext                     uintptr
	WaitSemaphoreValueCount   uint32
	PWaitSemaphoreValues      *uint64
	SignalSemaphoreValueCount uint32
	PSignalSemaphoreValues    *uint64
}

type SemaphoreWaitInfo struct {
	SType          StructureType
	PNext          uintptr
	Flags          Flags
	SemaphoreCount uint32
	PSemaphores    *Semaphore
	PValues        *uint64
}

// MakeVersion packs a (variant, major, minor, patch) tuple the way VK_MAKE_API_VERSION does.
func MakeVersion(variant, major, minor, patch uint32) uint32 {
	return (variant << 29) | (major << 22) | (minor << 12) | patch
}

// VersionMajor/Minor/Patch unpack a packed Vulkan version.
func VersionMajor(v uint32) uint32 { return (v >> 22) & 0x7f }
func VersionMinor(v uint32) uint32 { return (v >> 12) & 0x3ff }
func VersionPatch(v uint32) uint32 { return v & 0xfff }
