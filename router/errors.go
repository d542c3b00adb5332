// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package router

import "errors"

// ErrNoDevice is returned when a handle cannot be resolved to an owning
// ICD and no fallback is available. See Router.FallbackPrimary for the
// single-ICD escape hatch that usually prevents this in practice.
var ErrNoDevice = errors.New("router: handle has no recorded owning ICD")
