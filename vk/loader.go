// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// Library is one loaded ICD shared library. Unlike a conventional loader
// that opens a single system libvulkan.so and keeps it in package-level
// globals, every Library is independent: loading a second ICD does not
// disturb the first, and each keeps its own vkGetInstanceProcAddr /
// vkGetDeviceProcAddr resolution state.
type Library struct {
	path string
	handle unsafe.Pointer

	// EntryPoint records which exported symbol vkGetInstanceProcAddr
	// was resolved from: the ICD-specific "vk_icdGetInstanceProcAddr"
	// or, for drivers that skip the ICD interface and export the
	// ordinary loader-facing symbol directly, "vkGetInstanceProcAddr".
	EntryPoint string

	getInstanceProcAddr unsafe.Pointer
	getDeviceProcAddr   unsafe.Pointer

	cifGetInstanceProcAddr types.CallInterface
	cifGetDeviceProcAddr   types.CallInterface
}

// icdEntryPointNames are tried in order when resolving a driver's entry
// point. Real ICDs export vk_icdGetInstanceProcAddr; some loader-layer
// shims export the plain vkGetInstanceProcAddr name instead.
var icdEntryPointNames = []string{"vk_icdGetInstanceProcAddr", "vkGetInstanceProcAddr"}

// LoadLibrary opens the shared library at path and resolves its ICD
// entry point. It does not call vkCreateInstance; that happens later
// once the core has decided this ICD is trusted and wanted.
func LoadLibrary(path string) (*Library, error) {
	handle, err := ffi.LoadLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	lib := &Library{path: path, handle: handle}

	var lastErr error
	for _, name := range icdEntryPointNames {
		lib.getInstanceProcAddr, lastErr = ffi.GetSymbol(handle, name)
		if lastErr == nil {
			lib.EntryPoint = name
			break
		}
	}
	if lib.getInstanceProcAddr == nil {
		_ = ffi.FreeLibrary(handle)
		return nil, fmt.Errorf("%s: no ICD entry point found (tried %v): %w", path, icdEntryPointNames, lastErr)
	}

	err = ffi.PrepareCallInterface(&lib.cifGetInstanceProcAddr, types.DefaultCall,
		types.PointerTypeDescriptor,
		[]*types.TypeDescriptor{
			types.UInt64TypeDescriptor,
			types.PointerTypeDescriptor,
		})
	if err != nil {
		_ = ffi.FreeLibrary(handle)
		return nil, fmt.Errorf("%s: prepare GetInstanceProcAddr interface: %w", path, err)
	}

	err = ffi.PrepareCallInterface(&lib.cifGetDeviceProcAddr, types.DefaultCall,
		types.PointerTypeDescriptor,
		[]*types.TypeDescriptor{
			types.UInt64TypeDescriptor,
			types.PointerTypeDescriptor,
		})
	if err != nil {
		_ = ffi.FreeLibrary(handle)
		return nil, fmt.Errorf("%s: prepare GetDeviceProcAddr interface: %w", path, err)
	}

	return lib, nil
}

// Path returns the filesystem path this library was loaded from.
func (l *Library) Path() string { return l.path }

// GetInstanceProcAddr resolves a global or instance-level function. Pass
// instance 0 for global functions such as vkCreateInstance and
// vkEnumerateInstanceVersion.
func (l *Library) GetInstanceProcAddr(instance Instance, name string) unsafe.Pointer {
	cname := make([]byte, len(name)+1)
	copy(cname, name)

	var result unsafe.Pointer
	namePtr := unsafe.Pointer(&cname[0])
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&namePtr),
	}
	_ = ffi.CallFunction(&l.cifGetInstanceProcAddr, l.getInstanceProcAddr, unsafe.Pointer(&result), args[:])
	return result
}

// SetDeviceProcAddr resolves this library's vkGetDeviceProcAddr against a
// live instance. Some drivers (notably Intel's) return NULL for
// vkGetDeviceProcAddr when queried with a NULL instance, so this must run
// immediately after vkCreateInstance succeeds rather than lazily on first
// device-function lookup.
func (l *Library) SetDeviceProcAddr(instance Instance) {
	if l.getDeviceProcAddr == nil {
		l.getDeviceProcAddr = l.GetInstanceProcAddr(instance, "vkGetDeviceProcAddr")
	}
}

// GetDeviceProcAddr resolves a device-level function. SetDeviceProcAddr
// must have been called at least once for this library beforehand.
func (l *Library) GetDeviceProcAddr(device Device, name string) unsafe.Pointer {
	if l.getDeviceProcAddr == nil {
		return nil
	}

	cname := make([]byte, len(name)+1)
	copy(cname, name)

	var result unsafe.Pointer
	namePtr := unsafe.Pointer(&cname[0])
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&namePtr),
	}
	_ = ffi.CallFunction(&l.cifGetDeviceProcAddr, l.getDeviceProcAddr, unsafe.Pointer(&result), args[:])
	return result
}

// Close releases the underlying shared library. The core never calls
// this (see the icd package's non-unloading policy).
func (l *Library) Close() error {
	if l.handle == nil {
		return nil
	}
	err := ffi.FreeLibrary(l.handle)
	l.handle = nil
	l.getInstanceProcAddr = nil
	l.getDeviceProcAddr = nil
	return err
}
