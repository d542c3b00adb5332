// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package barrier

import "github.com/NVIDIA/go-nvml/pkg/nvml"

// nvidiaArchitectureElides refines the base AMD/NVIDIA write-after-write
// elision decision for NVIDIA devices specifically: only architectures
// from Ampere onward have documented same-queue, same-stage ordering
// guarantees strong enough to trust, so older Kepler/Maxwell/Pascal/
// Volta/Turing parts fall back to always emitting the barrier.
//
// NVML may be unavailable (no driver installed, running in a container
// without device access, CI without a GPU); any failure to initialize
// or query is treated as "don't trust it", matching the tracker's
// when-in-doubt-emit-the-barrier rule.
func nvidiaArchitectureElides() bool {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return false
	}
	defer nvml.Shutdown()

	device, ret := nvml.DeviceGetHandleByIndex(0)
	if ret != nvml.SUCCESS {
		return false
	}

	arch, ret := device.GetArchitecture()
	if ret != nvml.SUCCESS {
		return false
	}

	switch arch {
	case nvml.DEVICE_ARCH_AMPERE, nvml.DEVICE_ARCH_ADA, nvml.DEVICE_ARCH_HOPPER:
		return true
	default:
		return false
	}
}
