// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package router

import (
	"errors"
	"testing"

	"github.com/gogpu/vkcompute/icd"
	"github.com/gogpu/vkcompute/vk"
)

func TestRouterDeviceRoundTrip(t *testing.T) {
	r := New()
	owner := &icd.LoadedICD{}

	if _, err := r.ICDForDevice(vk.Device(1)); !errors.Is(err, ErrNoDevice) {
		t.Fatalf("ICDForDevice() before record: err = %v, want ErrNoDevice", err)
	}

	r.RecordDevice(vk.Device(1), owner)
	got, err := r.ICDForDevice(vk.Device(1))
	if err != nil {
		t.Fatalf("ICDForDevice() after record: %v", err)
	}
	if got != owner {
		t.Errorf("ICDForDevice() = %p, want %p", got, owner)
	}

	r.RemoveDevice(vk.Device(1))
	if _, err := r.ICDForDevice(vk.Device(1)); !errors.Is(err, ErrNoDevice) {
		t.Fatalf("ICDForDevice() after remove: err = %v, want ErrNoDevice", err)
	}
}

func TestRouterFallbackPrimary(t *testing.T) {
	r := New()
	primary := &icd.LoadedICD{}
	r.FallbackPrimary = primary

	got, err := r.ICDForDevice(vk.Device(42))
	if err != nil {
		t.Fatalf("ICDForDevice() with fallback set: %v", err)
	}
	if got != primary {
		t.Errorf("ICDForDevice() = %p, want fallback %p", got, primary)
	}
}

func TestRouterQueueAndCommandLevels(t *testing.T) {
	r := New()
	owner := &icd.LoadedICD{}
	device := vk.Device(7)

	r.RecordQueue(vk.Queue(1), owner, device)
	if got, err := r.ICDForQueue(vk.Queue(1)); err != nil || got != owner {
		t.Errorf("ICDForQueue() = %v, %v; want %v, nil", got, err, owner)
	}

	r.RecordCommandPool(vk.CommandPool(2), owner, device)
	if got, err := r.ICDForCommandPool(vk.CommandPool(2)); err != nil || got != owner {
		t.Errorf("ICDForCommandPool() = %v, %v; want %v, nil", got, err, owner)
	}

	r.RecordCommandBuffer(vk.CommandBuffer(3), owner, device)
	if got, err := r.ICDForCommandBuffer(vk.CommandBuffer(3)); err != nil || got != owner {
		t.Errorf("ICDForCommandBuffer() = %v, %v; want %v, nil", got, err, owner)
	}
}

func TestRouterPhysicalDeviceTracksInstance(t *testing.T) {
	r := New()
	owner := &icd.LoadedICD{}
	instance := vk.Instance(9)

	r.RecordPhysicalDevice(vk.PhysicalDevice(4), owner, instance)
	got, err := r.ICDForPhysicalDevice(vk.PhysicalDevice(4))
	if err != nil || got != owner {
		t.Errorf("ICDForPhysicalDevice() = %v, %v; want %v, nil", got, err, owner)
	}
}
