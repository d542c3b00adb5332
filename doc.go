// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vkcompute provides a safe, ergonomic compute-only API over the
// Vulkan Installable Client Driver layer.
//
// This package wraps the lower-level icd/, router/, aggregate/ and
// optimize/ packages into a user-facing API shaped like the teacher's
// wgpu package, narrowed to storage buffers and compute pipelines: no
// textures, samplers, surfaces, or render passes.
//
// # Quick Start
//
//	instance, err := vkcompute.CreateInstance(nil)
//	adapter, err := instance.RequestAdapter(nil)
//	device, err := adapter.RequestDevice(nil)
//
// # Resource Lifecycle
//
// All GPU resources must be explicitly released with Release(). Release
// is idempotent; using a resource after release returns ErrReleased
// rather than touching freed native memory.
//
// # Discovery
//
// CreateInstance loads every Vulkan ICD it can find via the search rules
// documented in the icd package, honoring VK_ICD_FILENAMES and the
// VKCOMPUTE_* environment variables documented in internal/config.
//
// # Thread Safety
//
// Instance, Adapter, and Device are safe for concurrent use. Encoders
// (CommandEncoder, ComputePassEncoder) are NOT thread-safe.
package vkcompute
