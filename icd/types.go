// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"encoding/json"

	"github.com/gogpu/vkcompute/vk"
)

// Classification records whether an ICD is heuristically believed to be
// backed by real hardware or a software rasterizer/compute emulator. It
// informs selection policy only; it is never load-bearing for
// correctness.
type Classification int

const (
	ClassificationUnknown Classification = iota
	ClassificationHardware
	ClassificationSoftware
)

func (c Classification) String() string {
	switch c {
	case ClassificationHardware:
		return "hardware"
	case ClassificationSoftware:
		return "software"
	default:
		return "unknown"
	}
}

// Candidate is one manifest-derived entry produced by Discover, not yet
// loaded or trust-checked.
type Candidate struct {
	ManifestPath      string
	LibraryPath       string // as written in the manifest, before resolution
	APIVersion        uint32
	FileFormatVersion string // tolerated, never validated; may be empty
}

// IcdInfo is an immutable snapshot of a LoadedICD, safe to hand out
// without exposing the live library handle or function pointers.
type IcdInfo struct {
	Index          int
	LibraryPath    string // canonical, resolved path actually opened
	ManifestPath   string
	APIVersion     uint32
	Classification Classification
}

// LoadedICD is one successfully loaded native Vulkan driver. It is
// never unloaded during the process lifetime (see the package doc for
// why), and is shared by reference across every record the router
// creates against it.
type LoadedICD struct {
	info    IcdInfo
	library *vk.Library
}

// Info returns the immutable snapshot describing this ICD.
func (l *LoadedICD) Info() IcdInfo { return l.info }

// Library returns the loaded library this ICD's functions are resolved
// against.
func (l *LoadedICD) Library() *vk.Library { return l.library }

// manifestDoc mirrors the nested shape real Vulkan ICD manifests use.
// Unknown fields are ignored by encoding/json by default, matching the
// real loader's tolerant parsing.
type manifestDoc struct {
	FileFormatVersion string      `json:"file_format_version"`
	ICD               manifestICD `json:"ICD"`
}

type manifestICD struct {
	LibraryPath string `json:"library_path"`

	// APIVersion is decoded as raw JSON since real-world manifests write
	// it both as a dotted string ("1.3.296") and as a bare JSON number
	// (packed uint32); parseAPIVersionRaw branches on which one arrived.
	APIVersion json.RawMessage `json:"api_version"`
}
