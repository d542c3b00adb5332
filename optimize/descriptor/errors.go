// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package descriptor

import "errors"

var (
	// ErrPushConstantTooLarge is returned by ValidatePushConstantRange when
	// a requested push-constant range exceeds the 128-byte design
	// ceiling.
	ErrPushConstantTooLarge = errors.New("descriptor: push constant range exceeds 128 bytes")

	// ErrPoolExhausted is returned when every pool is full and growing a
	// new one failed natively.
	ErrPoolExhausted = errors.New("descriptor: no pool had room and growth failed")

	// ErrLayoutCreateFailed wraps a native vkCreateDescriptorSetLayout
	// failure.
	ErrLayoutCreateFailed = errors.New("descriptor: native layout creation failed")
)
