// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command vkcompute-info discovers every Vulkan ICD on the host, opens
// an instance (fanned out across all of them when VKCOMPUTE_AGGREGATE is
// enabled, on the primary ICD alone otherwise), and lists each loaded
// ICD's identity alongside the physical devices (adapters) the instance
// exposes.
//
// It is a read-only diagnostic: it creates no logical device and
// dispatches nothing.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/vkcompute"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vkcompute-info: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	instance, err := vkcompute.CreateInstance(&vkcompute.InstanceDescriptor{ApplicationName: "vkcompute-info"})
	if err != nil {
		return fmt.Errorf("CreateInstance: %w", err)
	}
	defer instance.Release()

	icds := instance.ICDs()
	fmt.Printf("Loaded ICDs: %d\n", len(icds))
	for _, info := range icds {
		fmt.Printf("  [%d] %s\n", info.Index, info.LibraryPath)
		fmt.Printf("      manifest:   %s\n", info.ManifestPath)
		fmt.Printf("      apiVersion: %d.%d.%d\n", info.APIVersion>>22, (info.APIVersion>>12)&0x3FF, info.APIVersion&0xFFF)
		fmt.Printf("      class:      %v\n", info.Classification)
	}
	fmt.Println()

	adapters, err := instance.Adapters()
	if err != nil {
		return fmt.Errorf("Adapters: %w", err)
	}
	fmt.Printf("Adapters: %d\n", len(adapters))
	for idx, a := range adapters {
		info := a.Info()
		fmt.Printf("  [%d] %s\n", idx, info.Name)
		fmt.Printf("      type:       %s\n", info.DeviceType)
		fmt.Printf("      vendorID:   0x%04X\n", info.VendorID)
		fmt.Printf("      deviceID:   0x%04X\n", info.DeviceID)
		fmt.Printf("      driver:     %s\n", info.DriverPath)
		a.Release()
	}

	return nil
}
