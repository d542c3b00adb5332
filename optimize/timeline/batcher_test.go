// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package timeline

import (
	"testing"

	"github.com/gogpu/vkcompute/vk"
)

// newTestBatcher builds a Batcher bypassing NewBatcher's native calls,
// for testing the pure bookkeeping logic (signal value assignment,
// batch-size clamping) without a loaded driver.
func newTestBatcher(batchSize int) *Batcher {
	return &Batcher{
		useTimeline: true,
		batchSize:   batchSize,
	}
}

func TestEnqueueAssignsConsecutiveValues(t *testing.T) {
	b := newTestBatcher(100) // large enough that no flush is triggered

	for i := 1; i <= 5; i++ {
		value, err := b.Enqueue(vk.CommandBuffer(i), nil, nil)
		if err != nil {
			t.Fatalf("Enqueue() #%d: %v", i, err)
		}
		if value != uint64(i) {
			t.Errorf("Enqueue() #%d value = %d, want %d", i, value, i)
		}
	}
	if len(b.pending) != 5 {
		t.Errorf("pending length = %d, want 5", len(b.pending))
	}
}

func TestSetBatchSizeClampsToOne(t *testing.T) {
	b := newTestBatcher(16)
	b.SetBatchSize(0)
	if b.batchSize != 1 {
		t.Errorf("SetBatchSize(0): batchSize = %d, want 1", b.batchSize)
	}
	b.SetBatchSize(-5)
	if b.batchSize != 1 {
		t.Errorf("SetBatchSize(-5): batchSize = %d, want 1", b.batchSize)
	}
	b.SetBatchSize(32)
	if b.batchSize != 32 {
		t.Errorf("SetBatchSize(32): batchSize = %d, want 32", b.batchSize)
	}
}

func TestFlushNoopWhenEmpty(t *testing.T) {
	b := newTestBatcher(16)
	if err := b.Flush(); err != nil {
		t.Errorf("Flush() on empty batcher: %v", err)
	}
}

func TestWaitFallbackReturnsImmediately(t *testing.T) {
	b := &Batcher{useTimeline: false}
	if err := b.Wait(42, 0); err != nil {
		t.Errorf("Wait() in fallback mode: %v", err)
	}
}
