// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package pool

import "testing"

func TestBuddyAllocatorAllocBasic(t *testing.T) {
	b := newBuddyAllocator(1<<20, 256) // 1 MiB slab, 256B min block

	tests := []struct {
		name string
		size uint64
		want uint64 // expected rounded-up size
	}{
		{"exact min block", 256, 256},
		{"rounds up to power of two", 300, 512},
		{"already power of two", 4096, 4096},
		{"tiny request still gets min block", 1, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, actual, ok := b.alloc(tt.size)
			if !ok {
				t.Fatalf("alloc(%d) failed", tt.size)
			}
			if actual != tt.want {
				t.Errorf("alloc(%d) actual size = %d, want %d", tt.size, actual, tt.want)
			}
		})
	}
}

func TestBuddyAllocatorFreeAndReuse(t *testing.T) {
	b := newBuddyAllocator(4096, 256)

	off, size, ok := b.alloc(1024)
	if !ok {
		t.Fatal("alloc failed")
	}
	if _, ok := b.free(off); !ok {
		t.Fatal("free failed on live allocation")
	}

	off2, size2, ok := b.alloc(1024)
	if !ok {
		t.Fatal("re-alloc after free failed")
	}
	if off2 != off || size2 != size {
		t.Errorf("re-alloc got offset=%d size=%d, want offset=%d size=%d (should reuse merged block)", off2, size2, off, size)
	}
}

func TestBuddyAllocatorDoubleFree(t *testing.T) {
	b := newBuddyAllocator(4096, 256)
	off, _, _ := b.alloc(256)
	if _, ok := b.free(off); !ok {
		t.Fatal("first free should succeed")
	}
	if _, ok := b.free(off); ok {
		t.Error("second free of the same offset should fail")
	}
}

func TestBuddyAllocatorExhaustion(t *testing.T) {
	b := newBuddyAllocator(1024, 256)

	var offsets []uint64
	for i := 0; i < 4; i++ {
		off, _, ok := b.alloc(256)
		if !ok {
			t.Fatalf("alloc %d of 4 should succeed", i)
		}
		offsets = append(offsets, off)
	}

	if _, _, ok := b.alloc(256); ok {
		t.Error("alloc beyond slab capacity should fail")
	}

	if _, ok := b.free(offsets[0]); !ok {
		t.Fatal("free should succeed")
	}
	if _, _, ok := b.alloc(256); !ok {
		t.Error("alloc after freeing one block should succeed")
	}
}

func TestBuddyAllocatorCoalescesToFullSlab(t *testing.T) {
	b := newBuddyAllocator(4096, 256)

	var offsets []uint64
	for {
		off, _, ok := b.alloc(256)
		if !ok {
			break
		}
		offsets = append(offsets, off)
	}
	for _, off := range offsets {
		if _, ok := b.free(off); !ok {
			t.Fatalf("free(%d) failed", off)
		}
	}

	// Every block should have merged back into one top-level free block,
	// so a single slab-sized allocation must now succeed.
	if _, actual, ok := b.alloc(4096); !ok || actual != 4096 {
		t.Errorf("full-slab alloc after freeing everything: actual=%d ok=%v", actual, ok)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in, want uint64
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {513, 1024}, {1024, 1024},
	}
	for _, tt := range tests {
		if got := nextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
