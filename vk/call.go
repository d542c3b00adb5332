// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// kind identifies an argument or return slot's C type for CallInterface
// preparation. Only the handful of shapes the compute subset's ~55
// commands actually use are represented; anything else is a bug in this
// package, not a missing Vulkan feature.
type kind int

const (
	kU32 kind = iota
	kU64
	kI32
	kPtr
	kVoid
)

func descriptor(k kind) *types.TypeDescriptor {
	switch k {
	case kU32:
		return types.UInt32TypeDescriptor
	case kU64:
		return types.UInt64TypeDescriptor
	case kI32:
		return types.SInt32TypeDescriptor
	case kPtr:
		return types.PointerTypeDescriptor
	default:
		return types.VoidTypeDescriptor
	}
}

// sig is a cache key for a (return, args...) shape.
type sig struct {
	ret  kind
	args [8]kind
	n    int
}

var (
	sigMu    sync.Mutex
	sigCache = map[sig]*types.CallInterface{}
)

func prepared(ret kind, args ...kind) (*types.CallInterface, error) {
	if len(args) > 8 {
		return nil, fmt.Errorf("vk: call shape has too many arguments (%d)", len(args))
	}
	var key sig
	key.ret = ret
	key.n = len(args)
	copy(key.args[:], args)

	sigMu.Lock()
	defer sigMu.Unlock()

	if cif, ok := sigCache[key]; ok {
		return cif, nil
	}

	descs := make([]*types.TypeDescriptor, len(args))
	for i, a := range args {
		descs[i] = descriptor(a)
	}

	cif := &types.CallInterface{}
	if err := ffi.PrepareCallInterface(cif, types.DefaultCall, descriptor(ret), descs); err != nil {
		return nil, fmt.Errorf("vk: prepare call interface: %w", err)
	}
	sigCache[key] = cif
	return cif, nil
}

// call invokes fn, a resolved PFN_vk* pointer, with args boxed as
// pointers-to-storage the way goffi requires (see package doc for why
// pointer-typed arguments need a pointer-to-pointer). ret, if non-nil,
// receives the return value's storage address.
func call(fn unsafe.Pointer, ret kind, retStorage unsafe.Pointer, argKinds []kind, args []unsafe.Pointer) error {
	if fn == nil {
		return fmt.Errorf("vk: nil function pointer")
	}
	cif, err := prepared(ret, argKinds...)
	if err != nil {
		return err
	}
	return ffi.CallFunction(cif, fn, retStorage, args)
}

// cstr converts a Go string into a NUL-terminated byte slice whose first
// element's address is suitable for boxing as a goffi pointer-to-pointer
// argument.
// The caller must keep the returned slice alive until after the call.
func cstr(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}
