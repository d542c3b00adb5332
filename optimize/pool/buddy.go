// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package pool

import "math/bits"

// buddyAllocator manages one slab's worth of offsets using the
// power-of-two buddy algorithm: allocation rounds up to the nearest
// power of two and splits the smallest free block that fits; freeing
// coalesces a block with its buddy whenever the buddy is also free.
//
// Offsets are relative to the slab, not absolute device-memory
// addresses; each slab is its own VkDeviceMemory allocation, so an
// offset is used unchanged when binding into that slab's memory.
type buddyAllocator struct {
	size         uint64 // must be a power of two
	minBlockSize uint64 // must be a power of two, <= size
	maxOrder     int

	// freeLists[order] holds the offsets of free blocks of size
	// minBlockSize<<order. A map is used instead of a slice since
	// blocks are added/removed from arbitrary positions as splits and
	// merges happen, and lookups by offset (during merge) must be O(1).
	freeLists []map[uint64]struct{}

	// allocated maps the offset of every live allocation to its order,
	// used to validate Free and to recover the order a caller doesn't
	// carry around itself.
	allocated map[uint64]int
}

func newBuddyAllocator(size, minBlockSize uint64) *buddyAllocator {
	maxOrder := log2(size / minBlockSize)
	b := &buddyAllocator{
		size:         size,
		minBlockSize: minBlockSize,
		maxOrder:     maxOrder,
		freeLists:    make([]map[uint64]struct{}, maxOrder+1),
		allocated:    make(map[uint64]int),
	}
	for i := range b.freeLists {
		b.freeLists[i] = make(map[uint64]struct{})
	}
	b.freeLists[maxOrder][0] = struct{}{}
	return b
}

// alloc finds or splits a block of at least size bytes, returning its
// offset and actual (power-of-two) size. ok is false when the slab has
// no sufficiently large free block.
func (b *buddyAllocator) alloc(size uint64) (offset, actualSize uint64, ok bool) {
	allocSize := nextPowerOfTwo(size)
	if allocSize < b.minBlockSize {
		allocSize = b.minBlockSize
	}
	order := log2(allocSize / b.minBlockSize)
	if order > b.maxOrder {
		return 0, 0, false
	}

	offset, found := b.findAndSplit(order)
	if !found {
		return 0, 0, false
	}
	b.allocated[offset] = order
	return offset, b.minBlockSize << order, true
}

// free returns a previously allocated block to the free list, merging
// with its buddy while the buddy is also free. ok is false if offset
// was not a live allocation.
func (b *buddyAllocator) free(offset uint64) (size uint64, ok bool) {
	order, found := b.allocated[offset]
	if !found {
		return 0, false
	}
	delete(b.allocated, offset)
	b.mergeUp(offset, order)
	return b.minBlockSize << order, true
}

func (b *buddyAllocator) findAndSplit(targetOrder int) (uint64, bool) {
	if len(b.freeLists[targetOrder]) > 0 {
		return b.popAny(targetOrder), true
	}

	splitFrom := -1
	for order := targetOrder + 1; order <= b.maxOrder; order++ {
		if len(b.freeLists[order]) > 0 {
			splitFrom = order
			break
		}
	}
	if splitFrom == -1 {
		return 0, false
	}

	offset := b.popAny(splitFrom)
	for order := splitFrom; order > targetOrder; order-- {
		half := (b.minBlockSize << order) >> 1
		buddy := offset + half
		b.freeLists[order-1][buddy] = struct{}{}
	}
	return offset, true
}

func (b *buddyAllocator) mergeUp(offset uint64, order int) {
	for order < b.maxOrder {
		buddy := offset ^ (b.minBlockSize << order)
		if _, free := b.freeLists[order][buddy]; !free {
			break
		}
		delete(b.freeLists[order], buddy)
		if buddy < offset {
			offset = buddy
		}
		order++
	}
	b.freeLists[order][offset] = struct{}{}
}

func (b *buddyAllocator) popAny(order int) uint64 {
	for offset := range b.freeLists[order] {
		delete(b.freeLists[order], offset)
		return offset
	}
	panic("pool: popAny called on empty free list")
}

func isPowerOfTwo(v uint64) bool { return v != 0 && v&(v-1) == 0 }

func nextPowerOfTwo(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len64(v-1)
}

func log2(v uint64) int { return bits.TrailingZeros64(v) }
