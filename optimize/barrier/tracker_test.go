// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package barrier

import (
	"testing"

	"github.com/gogpu/vkcompute/vk"
)

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name        string
		from, to    State
		elides      bool
		wantBarrier bool
	}{
		{"upload needs no barrier yet", None, TransferWriteInFlight, false, false},
		{"first read after upload needs barrier", None, ShaderRead, false, true},
		{"read after transfer write needs barrier", TransferWriteInFlight, ShaderRead, false, true},
		{"read after read needs no barrier", ShaderRead, ShaderRead, false, false},
		{"write after read needs barrier", ShaderRead, ShaderWrite, false, true},
		{"read after write needs barrier", ShaderWrite, ShaderRead, false, true},
		{"write after write needs barrier without elision", ShaderWrite, ShaderWrite, false, true},
		{"write after write elided", ShaderWrite, ShaderWrite, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := transition(tt.from, tt.to, tt.elides)
			if ok != tt.wantBarrier {
				t.Errorf("transition(%v, %v, elides=%v) ok = %v, want %v", tt.from, tt.to, tt.elides, ok, tt.wantBarrier)
			}
		})
	}
}

func TestTrackerNoteAccessBumpsGeneration(t *testing.T) {
	tr := NewTracker(VendorOther)
	buf := vk.Buffer(1)

	if _, ok := tr.NoteAccess(buf, TransferWriteInFlight); ok {
		t.Error("first upload should not require a barrier")
	}
	if gen := tr.Generation(buf); gen != 0 {
		t.Errorf("generation after no-barrier transition = %d, want 0", gen)
	}

	if _, ok := tr.NoteAccess(buf, ShaderRead); !ok {
		t.Error("read after upload should require a barrier")
	}
	if gen := tr.Generation(buf); gen != 1 {
		t.Errorf("generation after first barrier = %d, want 1", gen)
	}

	if _, ok := tr.NoteAccess(buf, ShaderRead); ok {
		t.Error("second consecutive read should not require a barrier")
	}
	if gen := tr.Generation(buf); gen != 1 {
		t.Errorf("generation should not bump without a barrier, got %d", gen)
	}
}

func TestTrackerFlushDrainsPending(t *testing.T) {
	tr := NewTracker(VendorOther)
	bufA, bufB := vk.Buffer(1), vk.Buffer(2)

	tr.NoteAccess(bufA, ShaderRead)
	tr.NoteAccess(bufB, ShaderRead)

	barriers := tr.Flush()
	if len(barriers) != 2 {
		t.Fatalf("Flush() returned %d barriers, want 2", len(barriers))
	}
	if more := tr.Flush(); len(more) != 0 {
		t.Errorf("second Flush() should be empty, got %d", len(more))
	}
}

func TestTrackerForget(t *testing.T) {
	tr := NewTracker(VendorOther)
	buf := vk.Buffer(1)
	tr.NoteAccess(buf, ShaderWrite)
	tr.Forget(buf)
	if gen := tr.Generation(buf); gen != 0 {
		t.Errorf("generation after Forget = %d, want 0 (fresh state)", gen)
	}
}

func TestVendorFromID(t *testing.T) {
	tests := []struct {
		id   uint32
		want Vendor
	}{
		{vk.VendorAMD, VendorAMD},
		{vk.VendorNVIDIA, VendorNVIDIA},
		{vk.VendorIntel, VendorIntel},
		{0xDEADBEEF, VendorOther},
	}
	for _, tt := range tests {
		if got := VendorFromID(tt.id); got != tt.want {
			t.Errorf("VendorFromID(%x) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

// TestAverageBarriersPerDispatch exercises the realistic workload the
// target property in spec.md §8 describes: one upload, many reads, one
// write, more reads. It asserts the 0.5-barriers-per-dispatch ceiling
// holds for this shape.
func TestAverageBarriersPerDispatch(t *testing.T) {
	tr := NewTracker(VendorAMD)
	buf := vk.Buffer(1)

	dispatches := 0
	barriers := 0

	note := func(kind State) {
		dispatches++
		if _, ok := tr.NoteAccess(buf, kind); ok {
			barriers++
		}
	}

	note(TransferWriteInFlight)
	for i := 0; i < 10; i++ {
		note(ShaderRead)
	}
	note(ShaderWrite)
	for i := 0; i < 10; i++ {
		note(ShaderRead)
	}

	avg := float64(barriers) / float64(dispatches)
	if avg > 0.5 {
		t.Errorf("average barriers per dispatch = %.3f, want <= 0.5 (barriers=%d dispatches=%d)", avg, barriers, dispatches)
	}
}
