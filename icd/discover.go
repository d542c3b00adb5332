// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gogpu/vkcompute/internal/config"
)

// platformDefaultDirs returns the manifest search directories used when
// no environment override is present. These mirror the real Vulkan
// Loader's well-known locations; this package never touches the
// Windows registry, so on Windows only the filesystem-based fallback
// directories are scanned.
func platformDefaultDirs() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Windows\System32\vulkan\icd.d`,
		}
	case "darwin":
		return []string{
			"/usr/local/share/vulkan/icd.d",
			"/opt/homebrew/share/vulkan/icd.d",
		}
	default:
		dirs := []string{
			"/usr/share/vulkan/icd.d",
			"/etc/vulkan/icd.d",
		}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".local/share/vulkan/icd.d"))
		}
		return dirs
	}
}

// Discover scans for ICD manifests and parses each into a Candidate.
// VK_ICD_FILENAMES, if set, names explicit manifest files and is a
// priority override, not an exclusive one: if at least one of them
// parses into a Candidate, that list is returned as-is; otherwise
// discovery falls back to scanning VKCOMPUTE_ICD_SEARCH_PATH directories
// ahead of the platform defaults, same as when no override is set at
// all. Whether a returned candidate's library actually loads is not
// checked here. Every search path, every manifest found, and every parse
// outcome is logged.
func Discover(cfg config.Config, logger *slog.Logger) []Candidate {
	if logger == nil {
		logger = slog.Default()
	}

	if len(cfg.ICDFilenames) > 0 {
		logger.Info("icd: using explicit manifest list", "count", len(cfg.ICDFilenames))
		if candidates := parseManifests(cfg.ICDFilenames, logger); len(candidates) > 0 {
			return candidates
		}
		logger.Warn("icd: explicit manifest list produced no valid manifest, falling back to platform defaults")
	}

	dirs := append(append([]string{}, cfg.ICDSearchPath...), platformDefaultDirs()...)

	var manifestPaths []string
	for _, dir := range dirs {
		logger.Debug("icd: scanning search directory", "dir", dir)
		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Debug("icd: search directory unavailable", "dir", dir, "error", err)
			continue
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if !readable(path) {
				logger.Debug("icd: manifest not readable, skipping", "path", path)
				continue
			}
			manifestPaths = append(manifestPaths, path)
		}
	}

	return parseManifests(manifestPaths, logger)
}

func parseManifests(paths []string, logger *slog.Logger) []Candidate {
	candidates := make([]Candidate, 0, len(paths))
	for _, path := range paths {
		c, err := parseManifest(path)
		if err != nil {
			logger.Warn("icd: manifest rejected", "path", path, "error", err)
			continue
		}
		logger.Info("icd: manifest discovered", "path", path, "library_path", c.LibraryPath, "api_version", c.APIVersion)
		candidates = append(candidates, c)
	}
	return candidates
}
