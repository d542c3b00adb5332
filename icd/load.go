// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gogpu/vkcompute/vk"
)

// Load validates, opens, and classifies one ICD candidate. index is the
// position this ICD will occupy in the registry, recorded into IcdInfo
// for stable ordering (Invariant 6).
func Load(index int, c Candidate, allowUntrusted bool, logger *slog.Logger) (*LoadedICD, error) {
	if logger == nil {
		logger = slog.Default()
	}

	path, err := resolveLibraryPath(c, allowUntrusted, logger)
	if err != nil {
		return nil, err
	}

	lib, err := vk.LoadLibrary(path)
	if err != nil {
		logger.Warn("icd: load failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrLibraryLoadFailed, path, err)
	}

	if lib.EntryPoint == "" {
		return nil, fmt.Errorf("%w: %s", ErrEntryPointMissing, path)
	}

	info := IcdInfo{
		Index:          index,
		LibraryPath:    path,
		ManifestPath:   c.ManifestPath,
		APIVersion:     c.APIVersion,
		Classification: classify(path, lib),
	}
	logger.Info("icd: loaded", "path", path, "api_version", info.APIVersion, "classification", info.Classification)

	return &LoadedICD{info: info, library: lib}, nil
}

// resolveLibraryPath tries a relative library_path first as given,
// resolved against the working directory, then joined with the
// manifest's own directory. Both candidates are subject to the trust
// policy; the first that passes wins. A bare library name is not looked
// up on the dynamic linker's search path.
func resolveLibraryPath(c Candidate, allowUntrusted bool, logger *slog.Logger) (string, error) {
	if filepath.IsAbs(c.LibraryPath) {
		return checkTrust(c.LibraryPath, allowUntrusted, logger)
	}

	if path, err := checkTrust(c.LibraryPath, allowUntrusted, logger); err == nil {
		return path, nil
	}

	joined := filepath.Join(filepath.Dir(c.ManifestPath), c.LibraryPath)
	return checkTrust(joined, allowUntrusted, logger)
}

// classify makes a best-effort hardware/software determination. A
// software ICD conventionally names itself (lavapipe, swiftshader,
// mock, llvmpipe); anything else is assumed to be hardware-backed. This
// is a heuristic only — it never affects dispatch correctness.
func classify(path string, lib *vk.Library) Classification {
	base := filepath.Base(path)
	for _, hint := range []string{"lavapipe", "swiftshader", "llvmpipe", "mock", "software"} {
		if containsFold(base, hint) {
			return ClassificationSoftware
		}
	}
	_ = lib
	return ClassificationHardware
}

func containsFold(s, substr string) bool {
	sl, subl := len(s), len(substr)
	if subl == 0 {
		return true
	}
	for i := 0; i+subl <= sl; i++ {
		if foldEqual(s[i:i+subl], substr) {
			return true
		}
	}
	return false
}

func foldEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
