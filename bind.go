// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import "github.com/gogpu/vkcompute/vk"

// BindGroup represents a descriptor set served from the device's
// persistent descriptor allocator. BindGroups are cached by the device
// keyed on the bound buffer set, so unlike the teacher's BindGroup they
// have no separate Release: they live for the lifetime of the device and
// are destroyed in bulk when the device's descriptor pools are freed.
type BindGroup struct {
	set    vk.DescriptorSet
	layout vk.DescriptorSetLayout
}
