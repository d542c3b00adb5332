// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package icd discovers, trust-checks, and loads native Vulkan ICDs
// (Installable Client Drivers). It never unloads a driver once loaded:
// the dynamic libraries this package opens are leaked for the process
// lifetime by design, matching how a real Vulkan loader treats drivers
// it has committed to. This also means a LoadedICD's function pointers
// stay valid for every record that references it, without any reference
// counting.
package icd
