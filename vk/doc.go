// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vk provides pure Go Vulkan bindings for the compute subset of the
// API: instance/device/queue lifecycle, buffers and device memory,
// descriptor sets, compute pipelines, command buffers, and the
// synchronization primitives (fences, binary and timeline semaphores).
//
// Unlike a conventional Vulkan loader, this package never links against a
// single system libvulkan. Every function pointer is resolved against a
// caller-supplied library handle (see Library), because the core routes
// calls to whichever ICD owns the handle in play — there can be more than
// one native Vulkan implementation loaded in the same process.
//
// # Calling convention
//
// All calls go through github.com/go-webgpu/goffi, which uses libffi under
// the hood. goffi's args[] slice holds pointers to where argument values are
// stored, never the values themselves — including for arguments that are
// already pointers (a C `const char*` parameter is passed as a pointer to a
// Go variable holding that pointer). See call in call.go for the helper that
// gets this right once so call sites don't have to.
//
// # Struct layout
//
// Struct fields mirror the Vulkan specification's field names and order.
// Only the subset of Vulkan needed for headless compute dispatch is
// defined here; graphics-only structures (render passes, swapchains,
// samplers bound to image views, vertex/index buffers) are intentionally
// absent.
package vk
