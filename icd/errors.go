// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import "errors"

// Sentinel errors returned by this package's loading and registry
// functions; Discover itself returns no error, it logs and skips a
// manifest that fails. Wrap with fmt.Errorf's %w so callers can still
// errors.Is against these.
var (
	ErrManifestNotFound  = errors.New("icd: manifest not found")
	ErrManifestInvalid   = errors.New("icd: manifest invalid")
	ErrLibraryUntrusted  = errors.New("icd: library path rejected by trust policy")
	ErrLibraryLoadFailed = errors.New("icd: failed to load native library")
	ErrEntryPointMissing = errors.New("icd: driver entry point not found")
	ErrFunctionLoadFailed = errors.New("icd: failed to resolve a required global function")
	ErrNoICDLoaded       = errors.New("icd: no ICD loaded successfully")
	ErrUnknownPreferred  = errors.New("icd: preferred ICD does not resolve to a loaded ICD")
)
