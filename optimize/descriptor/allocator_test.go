// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package descriptor

import (
	"testing"

	"github.com/gogpu/vkcompute/vk"
)

func TestMakeCacheKeyIgnoresOrder(t *testing.T) {
	device := vk.Device(1)
	a := makeCacheKey(device, []vk.Buffer{3, 1, 2})
	b := makeCacheKey(device, []vk.Buffer{1, 2, 3})
	if a != b {
		t.Errorf("makeCacheKey order-sensitive: %q != %q", a, b)
	}
}

func TestMakeCacheKeyDistinguishesDevicesAndBufferSets(t *testing.T) {
	tests := []struct {
		name           string
		deviceA        vk.Device
		buffersA       []vk.Buffer
		deviceB        vk.Device
		buffersB       []vk.Buffer
		wantSameKey    bool
	}{
		{"same device, different buffers", 1, []vk.Buffer{1, 2}, 1, []vk.Buffer{1, 3}, false},
		{"same buffers, different device", 1, []vk.Buffer{1, 2}, 2, []vk.Buffer{1, 2}, false},
		{"identical", 1, []vk.Buffer{1, 2}, 1, []vk.Buffer{1, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka := makeCacheKey(tt.deviceA, tt.buffersA)
			kb := makeCacheKey(tt.deviceB, tt.buffersB)
			if (ka == kb) != tt.wantSameKey {
				t.Errorf("makeCacheKey(%v,%v)==makeCacheKey(%v,%v) = %v, want %v", tt.deviceA, tt.buffersA, tt.deviceB, tt.buffersB, ka == kb, tt.wantSameKey)
			}
		})
	}
}

func TestValidatePushConstantRange(t *testing.T) {
	tests := []struct {
		name    string
		size    uint32
		wantErr bool
	}{
		{"empty range", 0, false},
		{"exactly at ceiling", 128, false},
		{"one byte over", 129, true},
		{"far over", 256, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePushConstantRange(vk.PushConstantRange{Size: tt.size})
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePushConstantRange(size=%d) error = %v, wantErr %v", tt.size, err, tt.wantErr)
			}
		})
	}
}
