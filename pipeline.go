// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import "github.com/gogpu/vkcompute/vk"

// PipelineLayout describes a compute pipeline's resource layout: the
// device's single persistent descriptor-set layout at Set 0, plus an
// optional push-constant range.
type PipelineLayout struct {
	device            *Device
	handle            vk.PipelineLayout
	pushConstantBytes uint32
	label             string
	released          bool
}

// Release destroys the pipeline layout.
func (l *PipelineLayout) Release() {
	if l.released {
		return
	}
	l.released = true
	l.device.lib.DestroyPipelineLayout(l.device.handle, l.handle)
}

// ComputePipeline represents a configured compute pipeline.
type ComputePipeline struct {
	device   *Device
	handle   vk.Pipeline
	layout   *PipelineLayout
	label    string
	released bool
}

// Layout returns the pipeline layout this pipeline was created with.
func (p *ComputePipeline) Layout() *PipelineLayout { return p.layout }

// Release destroys the compute pipeline.
func (p *ComputePipeline) Release() {
	if p.released {
		return
	}
	p.released = true
	p.device.lib.DestroyPipeline(p.device.handle, p.handle)
}
