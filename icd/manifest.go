// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// parseManifest reads and decodes one manifest file into a Candidate.
// It tolerates unknown fields (encoding/json ignores them by default)
// and an optional file_format_version, matching the real Vulkan
// Loader's lenient stance: the version is carried through but never
// validated.
func parseManifest(path string) (Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: %s: %v", ErrManifestNotFound, path, err)
	}

	var doc manifestDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return Candidate{}, fmt.Errorf("%w: %s: %v", ErrManifestInvalid, path, err)
	}
	if doc.ICD.LibraryPath == "" {
		return Candidate{}, fmt.Errorf("%w: %s: missing ICD.library_path", ErrManifestInvalid, path)
	}

	version, err := parseAPIVersionRaw(doc.ICD.APIVersion)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: %s: %v", ErrManifestInvalid, path, err)
	}

	return Candidate{
		ManifestPath:      path,
		LibraryPath:       doc.ICD.LibraryPath,
		APIVersion:        version,
		FileFormatVersion: doc.FileFormatVersion,
	}, nil
}

// parseAPIVersionRaw accepts api_version written as either a JSON string
// ("1.3.296" or a bare packed-version string) or a JSON number (a bare
// packed-version integer), since real-world manifests use either form.
func parseAPIVersionRaw(raw json.RawMessage) (uint32, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("missing api_version")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseAPIVersion(s)
	}

	var n uint64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("invalid api_version %s: %w", raw, err)
	}
	return uint32(n), nil
}

// parseAPIVersion accepts both the "1.3.296" dotted form and a raw
// decimal packed-version string, since real-world manifests use either.
func parseAPIVersion(s string) (uint32, error) {
	if s == "" {
		return 0, fmt.Errorf("empty api_version")
	}
	if !strings.Contains(s, ".") {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid api_version %q: %w", s, err)
		}
		return uint32(v), nil
	}

	parts := strings.SplitN(s, ".", 3)
	var nums [3]uint64
	for i, p := range parts {
		if i >= 3 {
			break
		}
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid api_version %q: %w", s, err)
		}
		nums[i] = n
	}
	return uint32((nums[0] << 22) | (nums[1] << 12) | nums[2]), nil
}
