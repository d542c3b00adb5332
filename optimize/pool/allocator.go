// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package pool implements the three-class slab allocator: one buddy
// pool each for DeviceLocal, HostVisibleCoherent, and HostVisibleCached
// memory, grounded on the teacher's hal/vulkan/memory package
// (BuddyAllocator for the split/merge algorithm, GpuAllocator/MemoryPool
// for per-class slab management) but narrowed from "one pool per every
// VkMemoryType" to the three classes a compute workload needs.
package pool

import (
	"sync"
	"unsafe"

	"github.com/gogpu/vkcompute/vk"
)

// DefaultSlabSize is the size of each native allocation backing a pool,
// matching the design ceiling chosen to amortize vkAllocateMemory calls
// against typical compute buffer sizes.
const DefaultSlabSize uint64 = 256 << 20

// minBlockSize is the smallest suballocation granularity a slab serves,
// matching Vulkan's common minimum buffer alignment.
const minBlockSize uint64 = 256

// Allocation is a suballocation returned by Allocator.Allocate. Its zero
// value is not valid; always obtain one from Allocate.
type Allocation struct {
	Class  Class
	Memory vk.DeviceMemory
	Offset vk.DeviceSize
	Size   vk.DeviceSize

	mapped  unsafe.Pointer
	slab    *slab
	boffset uint64
}

// Mapped returns the host pointer to this allocation's bytes, valid for
// HostVisibleCoherent and HostVisibleCached allocations for as long as
// the owning slab is alive. It returns ErrNotHostVisible for DeviceLocal
// allocations, which are never mapped.
func (a Allocation) Mapped() (unsafe.Pointer, error) {
	if a.mapped == nil {
		return nil, ErrNotHostVisible
	}
	return unsafe.Add(a.mapped, uintptr(a.Offset)), nil
}

// slab is one native vkAllocateMemory-backed region subdivided by a
// buddyAllocator. Host-visible slabs are mapped exactly once, at
// creation, and never unmapped until the slab itself is freed, following
// the teacher's MemoryBlock.MappedPtr + offset-arithmetic pattern in
// queue.go's WriteBuffer rather than mapping/unmapping per allocation.
type slab struct {
	memory vk.DeviceMemory
	size   uint64
	buddy  *buddyAllocator
	mapped unsafe.Pointer // nil for DeviceLocal slabs
}

// pool holds every slab backing one memory class on one device.
type pool struct {
	mu              sync.Mutex
	class           Class
	memoryTypeIndex uint32
	hostVisible     bool
	slabSize        uint64
	slabs           []*slab
}

// Allocator is the per-device entry point: three pools, one per Class.
type Allocator struct {
	device   vk.Device
	lib      *vk.Library
	selector *selector
	pools    [3]*pool
	slabSize uint64
}

// NewAllocator builds an Allocator for device using the memory
// properties reported for its physical device. slabSize of 0 selects
// DefaultSlabSize.
func NewAllocator(lib *vk.Library, device vk.Device, memProps vk.PhysicalDeviceMemoryProperties, slabSize uint64) *Allocator {
	if slabSize == 0 {
		slabSize = DefaultSlabSize
	}
	sel := newSelector(memProps)

	a := &Allocator{device: device, lib: lib, selector: sel, slabSize: slabSize}
	for c := DeviceLocal; c <= HostVisibleCached; c++ {
		idx, ok := sel.indexFor(c)
		if !ok {
			continue
		}
		a.pools[c] = &pool{
			class:           c,
			memoryTypeIndex: idx,
			hostVisible:     sel.hostVisible(c),
			slabSize:        slabSize,
		}
	}
	return a
}

// Allocate rounds size up to alignment and to the next power of two,
// and serves it from an existing slab's free list when possible. A new
// slab is grown only when no existing slab in the class has room — the
// "warm-up" cost the design invariant expects to pay at most once per
// size class per pool.
func (a *Allocator) Allocate(class Class, size uint64, alignment uint64) (Allocation, error) {
	if size == 0 {
		return Allocation{}, ErrInvalidSize
	}
	p := a.pools[class]
	if p == nil {
		return Allocation{}, ErrNoSuitableMemoryType
	}
	if alignment > minBlockSize {
		size = alignPow2(size, alignment)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, s := range p.slabs {
		if off, actual, ok := s.buddy.alloc(size); ok {
			return p.newAllocation(s, off, actual), nil
		}
	}

	s, err := a.growSlab(p)
	if err != nil {
		return Allocation{}, err
	}
	off, actual, ok := s.buddy.alloc(size)
	if !ok {
		return Allocation{}, ErrInvalidSize
	}
	return p.newAllocation(s, off, actual), nil
}

// Free returns an allocation's block to its slab's free list, coalescing
// with its buddy where possible. The slab itself is never released,
// matching the design's "does not shrink the slab list" invariant.
func (a *Allocator) Free(alloc Allocation) error {
	p := a.pools[alloc.Class]
	if p == nil {
		return ErrDoubleFree
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := alloc.slab.buddy.free(alloc.boffset); !ok {
		return ErrDoubleFree
	}
	return nil
}

// BindBuffer binds a native buffer to the backing memory of alloc at
// alloc's offset.
func (a *Allocator) BindBuffer(buffer vk.Buffer, alloc Allocation) error {
	result := a.lib.BindBufferMemory(a.device, buffer, alloc.Memory, alloc.Offset)
	if result.IsError() {
		return ErrOutOfMemory
	}
	return nil
}

func (p *pool) newAllocation(s *slab, boffset, size uint64) Allocation {
	var mapped unsafe.Pointer
	if s.mapped != nil {
		mapped = s.mapped
	}
	return Allocation{
		Class:   p.class,
		Memory:  s.memory,
		Offset:  vk.DeviceSize(boffset),
		Size:    vk.DeviceSize(size),
		mapped:  mapped,
		slab:    s,
		boffset: boffset,
	}
}

func (a *Allocator) growSlab(p *pool) (*slab, error) {
	info := &vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  vk.DeviceSize(p.slabSize),
		MemoryTypeIndex: p.memoryTypeIndex,
	}
	mem, result := a.lib.AllocateMemory(a.device, info)
	if result.IsError() {
		return nil, ErrOutOfMemory
	}

	s := &slab{
		memory: mem,
		size:   p.slabSize,
		buddy:  newBuddyAllocator(p.slabSize, minBlockSize),
	}

	if p.hostVisible {
		ptr, result := a.lib.MapMemory(a.device, mem, 0, vk.DeviceSize(p.slabSize))
		if result.IsError() {
			a.lib.FreeMemory(a.device, mem)
			return nil, ErrOutOfMemory
		}
		s.mapped = ptr
	}

	p.slabs = append(p.slabs, s)
	return s, nil
}

func alignPow2(size, alignment uint64) uint64 {
	if !isPowerOfTwo(alignment) {
		alignment = nextPowerOfTwo(alignment)
	}
	return (size + alignment - 1) &^ (alignment - 1)
}
