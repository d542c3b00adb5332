// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import "github.com/gogpu/vkcompute/vk"

// ShaderModule represents a compiled compute shader module, loaded from
// a SPIR-V word blob. Shader authoring and SPIR-V compilation are out of
// scope; code is consumed as opaque words.
type ShaderModule struct {
	device   *Device
	handle   vk.ShaderModule
	label    string
	released bool
}

// Release destroys the shader module.
func (m *ShaderModule) Release() {
	if m.released {
		return
	}
	m.released = true
	m.device.lib.DestroyShaderModule(m.device.handle, m.handle)
}
