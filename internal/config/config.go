// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package config centralizes environment-variable parsing so no other
// package reads os.Getenv directly. Every variable has a documented
// default, mirroring the descriptor-with-defaults pattern used
// throughout the teacher's gputypes descriptors.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names. VK_ICD_FILENAMES matches the real Vulkan
// Loader's variable of the same name so existing driver installs and CI
// images need no new configuration; the rest are namespaced under
// VKCOMPUTE_ as first-party configuration.
const (
	EnvICDFilenames      = "VK_ICD_FILENAMES"
	EnvICDSearchPath     = "VKCOMPUTE_ICD_SEARCH_PATH"
	EnvAggregate         = "VKCOMPUTE_AGGREGATE"
	EnvPreferHardware    = "VKCOMPUTE_PREFER_HARDWARE"
	EnvAllowUntrustedICD = "VKCOMPUTE_ALLOW_UNTRUSTED_ICD"
	EnvLog               = "VKCOMPUTE_LOG"
)

// Config is the resolved set of process-wide knobs, parsed once at
// startup. Nothing in the core re-reads the environment after this.
type Config struct {
	// ICDFilenames lists explicit manifest file paths. When at least one
	// of them parses, discovery uses them instead of any search
	// directory; otherwise discovery falls back to the directory scan.
	ICDFilenames []string

	// ICDSearchPath adds extra directories to scan for manifests,
	// searched before the platform defaults.
	ICDSearchPath []string

	// Aggregate enables the aggregation layer's meta-instance mode.
	Aggregate bool

	// PreferHardware biases selection policy toward hardware ICDs.
	// Defaults to true.
	PreferHardware bool

	// AllowUntrustedICD disables the trust policy's prefix check (the
	// regular-file check is never disabled). Using it is always logged
	// at warning level by the icd package.
	AllowUntrustedICD bool

	// LogLevel is the requested slog level name (debug/info/warn/error).
	// Empty means the default logger configuration applies.
	LogLevel string
}

// Load reads Config from the process environment.
func Load() Config {
	return Config{
		ICDFilenames:      splitList(os.Getenv(EnvICDFilenames)),
		ICDSearchPath:     splitList(os.Getenv(EnvICDSearchPath)),
		Aggregate:         parseBool(os.Getenv(EnvAggregate), false),
		PreferHardware:    parseBool(os.Getenv(EnvPreferHardware), true),
		AllowUntrustedICD: parseBool(os.Getenv(EnvAllowUntrustedICD), false),
		LogLevel:          os.Getenv(EnvLog),
	}
}

// splitList splits a colon- or semicolon-separated list, accepting
// either separator so the same variable works unmodified across POSIX
// and Windows hosts.
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	sep := ":"
	if strings.Contains(v, ";") || os.PathListSeparator == ';' {
		sep = ";"
	}
	parts := strings.Split(v, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(v string, def bool) bool {
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
