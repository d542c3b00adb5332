// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package aggregate builds one logical Vulkan instance out of every ICD
// a Registry has loaded. It is the layer that turns "pick a driver" into
// "see every driver's devices at once": single-ICD installs behave
// exactly as a direct ICD loader would, while multi-ICD installs (e.g.
// a discrete GPU's driver alongside a software rasterizer) expose every
// device through one enumeration.
package aggregate
