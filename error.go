// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import "errors"

// Public API sentinel errors, following the teacher's error.go pattern of
// one package-level errors.New per user-facing failure mode.
var (
	// ErrReleased is returned when operating on a released resource.
	ErrReleased = errors.New("vkcompute: resource already released")

	// ErrNilDescriptor is returned when a required descriptor argument is nil.
	ErrNilDescriptor = errors.New("vkcompute: descriptor is nil")

	// ErrNoAdapters is returned by Instance.Adapters when no ICD the
	// instance was created on produces a single enumerable physical
	// device.
	ErrNoAdapters = errors.New("vkcompute: no physical devices available")

	// ErrNoComputeQueue is returned when a physical device exposes no
	// queue family advertising compute support.
	ErrNoComputeQueue = errors.New("vkcompute: adapter has no compute-capable queue family")

	// ErrDeviceCreateFailed, ErrBufferCreateFailed, ErrShaderCreateFailed,
	// ErrPipelineCreateFailed and ErrCommandBufferFailed wrap the
	// corresponding native call returning a VkResult error, mirroring the
	// teacher's practice of one sentinel per failed Create* call rather
	// than surfacing the raw vk.Result to callers.
	ErrDeviceCreateFailed   = errors.New("vkcompute: vkCreateDevice failed")
	ErrBufferCreateFailed   = errors.New("vkcompute: vkCreateBuffer failed")
	ErrShaderCreateFailed   = errors.New("vkcompute: vkCreateShaderModule failed")
	ErrPipelineCreateFailed = errors.New("vkcompute: pipeline creation failed")
	ErrCommandBufferFailed  = errors.New("vkcompute: command buffer operation failed")
	ErrSubmitFailed         = errors.New("vkcompute: queue submission failed")
)
