// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package barrier tracks each buffer's last access kind and derives the
// single VkBufferMemoryBarrier (if any) required before the next access,
// generalizing core/track/buffer.go's BufferTracker state machine to the
// four states a compute-only dispatch pipeline can produce.
package barrier

import (
	"sync"

	"github.com/gogpu/vkcompute/vk"
)

// bufferState is the per-buffer record NoteAccess consults and updates.
type bufferState struct {
	state      State
	generation uint64
}

// Tracker holds one buffer state table per device. It is safe for
// concurrent use by multiple goroutines recording accesses against
// different buffers; one mutex guards the whole table, matching the
// teacher's per-tracker (not per-buffer) locking granularity in
// core/track since individual NoteAccess calls are cheap map
// operations, not calls that block on the driver.
type Tracker struct {
	mu     sync.Mutex
	vendor Vendor
	elides bool
	bufs   map[vk.Buffer]*bufferState

	// pending holds buffers whose barrier has been computed by
	// NoteAccess but not yet consumed by Flush, for deferred emission at
	// a command-buffer submission boundary rather than immediately
	// inline in the recording stream.
	pending []pendingBarrier
}

type pendingBarrier struct {
	buffer  vk.Buffer
	barrier Barrier
}

// NewTracker returns an empty Tracker for one device, classified by the
// vendor of the ICD that owns it. For NVIDIA devices the write-after-write
// elision decision is refined once up front by nvidiaArchitectureElides
// (NVML's reported architecture), rather than re-querying NVML on every
// NoteAccess call.
func NewTracker(vendor Vendor) *Tracker {
	elides := vendor == VendorAMD
	if vendor == VendorNVIDIA {
		elides = nvidiaArchitectureElides()
	}
	return &Tracker{vendor: vendor, elides: elides, bufs: make(map[vk.Buffer]*bufferState)}
}

// NoteAccess records that buffer is about to be accessed as kind,
// returning the barrier that must be recorded before the access (ok is
// false when no barrier is needed). The buffer's state is updated to
// kind regardless of whether a barrier was required.
func (t *Tracker) NoteAccess(buffer vk.Buffer, kind State) (b Barrier, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, exists := t.bufs[buffer]
	if !exists {
		st = &bufferState{state: None}
		t.bufs[buffer] = st
	}

	b, ok = transition(st.state, kind, t.elides)
	st.state = kind
	if ok {
		st.generation++
		t.pending = append(t.pending, pendingBarrier{buffer: buffer, barrier: b})
	}
	return b, ok
}

// Flush returns every barrier accumulated since the last Flush, as
// VkBufferMemoryBarrier values ready to pass to vkCmdPipelineBarrier, and
// clears the pending list. Call this at each command-buffer submission
// boundary.
func (t *Tracker) Flush() []vk.BufferMemoryBarrier {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.pending) == 0 {
		return nil
	}
	out := make([]vk.BufferMemoryBarrier, len(t.pending))
	for i, p := range t.pending {
		out[i] = p.barrier.AsBufferMemoryBarrier(p.buffer)
	}
	t.pending = t.pending[:0]
	return out
}

// Generation returns the buffer's current generation counter, bumped
// once per emitted barrier; zero if the buffer has never been observed.
func (t *Tracker) Generation(buffer vk.Buffer) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if st, ok := t.bufs[buffer]; ok {
		return st.generation
	}
	return 0
}

// Forget drops a buffer's tracked state, called when the buffer is
// destroyed.
func (t *Tracker) Forget(buffer vk.Buffer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.bufs, buffer)
}

// transition implements the spec.md §4.4.2 state table. ok is false for
// None→TransferWriteInFlight and ShaderRead→ShaderRead, the two
// transitions that require no barrier, and for the vendor-elided
// ShaderWrite→ShaderWrite case (elides reports whether the tracker's
// vendor/architecture combination trusts that elision).
func transition(from, to State, elides bool) (Barrier, bool) {
	switch {
	case from == None && to == TransferWriteInFlight:
		return Barrier{}, false

	case (from == None || from == TransferWriteInFlight) && to == ShaderRead:
		return Barrier{
			SrcStageMask:  vk.PipelineStageTransferBit,
			DstStageMask:  vk.PipelineStageComputeShaderBit,
			SrcAccessMask: vk.AccessTransferWriteBit,
			DstAccessMask: vk.AccessShaderReadBit,
		}, true

	case from == ShaderRead && to == ShaderRead:
		return Barrier{}, false

	case from == ShaderRead && to == ShaderWrite:
		return Barrier{
			SrcStageMask:  vk.PipelineStageComputeShaderBit,
			DstStageMask:  vk.PipelineStageComputeShaderBit,
			SrcAccessMask: vk.AccessShaderReadBit,
			DstAccessMask: vk.AccessShaderWriteBit,
		}, true

	case from == ShaderWrite && to == ShaderRead:
		return Barrier{
			SrcStageMask:  vk.PipelineStageComputeShaderBit,
			DstStageMask:  vk.PipelineStageComputeShaderBit,
			SrcAccessMask: vk.AccessShaderWriteBit,
			DstAccessMask: vk.AccessShaderReadBit,
		}, true

	case from == ShaderWrite && to == ShaderWrite:
		if elides {
			return Barrier{}, false
		}
		return Barrier{
			SrcStageMask:  vk.PipelineStageComputeShaderBit,
			DstStageMask:  vk.PipelineStageComputeShaderBit,
			SrcAccessMask: vk.AccessShaderWriteBit,
			DstAccessMask: vk.AccessShaderWriteBit,
		}, true

	default:
		// Any transition not named in the table (e.g. a second upload
		// while already TransferWriteInFlight, or skipping straight from
		// ShaderWrite back to TransferWriteInFlight) is conservatively treated as a full
		// read-after-write-class barrier: when in doubt, emit it.
		return Barrier{
			SrcStageMask:  vk.PipelineStageAllCommandsBit,
			DstStageMask:  vk.PipelineStageAllCommandsBit,
			SrcAccessMask: vk.AccessShaderWriteBit | vk.AccessTransferWriteBit,
			DstAccessMask: vk.AccessShaderReadBit | vk.AccessShaderWriteBit | vk.AccessTransferWriteBit,
		}, true
	}
}
