// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package pool

import "github.com/gogpu/vkcompute/vk"

// Class is one of the three fixed memory classes the pool allocator
// maintains per device, replacing the teacher's per-memory-type pool
// indexing (one pool per every VkMemoryType the device happens to
// report) with a small fixed set a compute workload actually needs.
type Class int

const (
	// DeviceLocal memory is fastest for the GPU and not host-visible.
	DeviceLocal Class = iota
	// HostVisibleCoherent memory requires no explicit flush/invalidate.
	HostVisibleCoherent
	// HostVisibleCached memory favors CPU readback over upload speed.
	HostVisibleCached
)

func (c Class) String() string {
	switch c {
	case DeviceLocal:
		return "DeviceLocal"
	case HostVisibleCoherent:
		return "HostVisibleCoherent"
	case HostVisibleCached:
		return "HostVisibleCached"
	default:
		return "unknown"
	}
}

// selector resolves each fixed Class to a concrete VkMemoryType index on
// one device, the way the teacher's MemoryTypeSelector resolves usage
// flags to a type index, but pinned to exactly three outcomes instead of
// a general usage/preference search.
type selector struct {
	props   vk.PhysicalDeviceMemoryProperties
	indices [3]int // -1 when unresolved
}

func newSelector(props vk.PhysicalDeviceMemoryProperties) *selector {
	s := &selector{props: props}
	s.indices[DeviceLocal] = s.find(vk.MemoryPropertyDeviceLocalBit, 0)
	s.indices[HostVisibleCoherent] = s.find(vk.MemoryPropertyHostVisibleBit|vk.MemoryPropertyHostCoherentBit, 0)

	cached := s.find(vk.MemoryPropertyHostVisibleBit|vk.MemoryPropertyHostCachedBit, 0)
	if cached == -1 {
		// Not every device exposes a cached host-visible type; coherent
		// is a correct, only-slower substitute for CPU readback.
		cached = s.indices[HostVisibleCoherent]
	}
	s.indices[HostVisibleCached] = cached

	return s
}

// find returns the index of the first memory type with all of required
// set, preferring the same restriction excludeFlags excludes nothing
// here since the pool allocator does not need exotic-type exclusion the
// way the teacher's general-purpose selector does.
func (s *selector) find(required vk.Flags, excludeFlags vk.Flags) int {
	for i, mt := range s.props.MemoryTypes[:s.props.MemoryTypeCount] {
		if mt.PropertyFlags&required != required {
			continue
		}
		if mt.PropertyFlags&excludeFlags != 0 {
			continue
		}
		return i
	}
	return -1
}

func (s *selector) indexFor(class Class) (uint32, bool) {
	idx := s.indices[class]
	if idx < 0 {
		return 0, false
	}
	return uint32(idx), true
}

func (s *selector) hostVisible(class Class) bool { return class != DeviceLocal }
