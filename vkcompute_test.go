// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import (
	"testing"

	"github.com/gogpu/vkcompute/vk"
)

func TestDeviceTypeFromVk(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		want DeviceType
	}{
		{"other", 0, DeviceTypeOther},
		{"integrated", 1, DeviceTypeIntegratedGPU},
		{"discrete", 2, DeviceTypeDiscreteGPU},
		{"virtual", 3, DeviceTypeVirtualGPU},
		{"cpu", 4, DeviceTypeCPU},
		{"unknown falls back to other", 99, DeviceTypeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deviceTypeFromVk(tt.in); got != tt.want {
				t.Errorf("deviceTypeFromVk(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeviceName(t *testing.T) {
	var props vk.PhysicalDeviceProperties
	copy(props.DeviceName[:], "Example GPU\x00garbage-after-nul")

	got := deviceName(props)
	if want := "Example GPU"; got != want {
		t.Errorf("deviceName() = %q, want %q", got, want)
	}
}

func TestDeviceNameEmpty(t *testing.T) {
	var props vk.PhysicalDeviceProperties
	if got := deviceName(props); got != "" {
		t.Errorf("deviceName() on zero value = %q, want empty string", got)
	}
}

func TestFindComputeQueueFamily(t *testing.T) {
	const queueGraphicsBit vk.Flags = 1 << 0
	families := []vk.QueueFamilyProperties{
		{QueueFlags: queueGraphicsBit},
		{QueueFlags: queueGraphicsBit | vk.QueueComputeBit},
		{QueueFlags: vk.QueueTransferBit},
	}
	idx, ok := findComputeQueueFamily(families)
	if !ok || idx != 1 {
		t.Fatalf("findComputeQueueFamily() = (%d, %v), want (1, true)", idx, ok)
	}
}

func TestFindComputeQueueFamilyNone(t *testing.T) {
	const queueGraphicsBit vk.Flags = 1 << 0
	families := []vk.QueueFamilyProperties{
		{QueueFlags: queueGraphicsBit},
		{QueueFlags: vk.QueueTransferBit},
	}
	if _, ok := findComputeQueueFamily(families); ok {
		t.Fatalf("findComputeQueueFamily() = ok, want false with no compute-capable family")
	}
}

func TestUintptrOf(t *testing.T) {
	b := []byte("hello\x00")
	if uintptrOf(b) == 0 {
		t.Fatalf("uintptrOf() = 0, want a non-zero pointer into b")
	}
}

func TestDeviceTypeString(t *testing.T) {
	if got := DeviceTypeDiscreteGPU.String(); got == "" {
		t.Errorf("DeviceType.String() returned empty string")
	}
}
