// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"log/slog"
	"sync"

	"github.com/gogpu/vkcompute/internal/config"
)

// Registry is the process-wide set of loaded ICDs. It is built once by
// InitializeRegistry and never shrinks: ICDs are never unloaded for the
// lifetime of the process (see the package doc).
type Registry struct {
	mu sync.RWMutex

	loaded  []*LoadedICD
	primary *LoadedICD

	preferredIndex int
	preferredPath  string
}

// NewRegistry returns an empty registry with no preference set.
func NewRegistry() *Registry {
	return &Registry{preferredIndex: -1}
}

// SetPreferred records a preferred ICD by index or library path, to be
// applied the next time InitializeRegistry runs. Calling it after
// initialization has no effect on already-bound handles; it only takes
// effect on a subsequent InitializeRegistry call.
func (r *Registry) SetPreferred(index int, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.preferredIndex = index
	r.preferredPath = path
}

// InitializeRegistry runs discovery, loads every candidate, and selects
// a primary ICD. Every ICD that loads successfully is kept in the
// registry even if a later candidate fails; the call only fails as a
// whole when nothing loaded.
func (r *Registry) InitializeRegistry(cfg config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	candidates := Discover(cfg, logger)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.loaded = r.loaded[:0]
	for _, c := range candidates {
		loaded, err := Load(len(r.loaded), c, cfg.AllowUntrustedICD, logger)
		if err != nil {
			logger.Warn("icd: candidate skipped", "manifest", c.ManifestPath, "error", err)
			continue
		}
		r.loaded = append(r.loaded, loaded)
	}

	if len(r.loaded) == 0 {
		return ErrNoICDLoaded
	}

	r.primary = selectPrimary(r.loaded, r.preferredIndex, r.preferredPath, cfg.PreferHardware)
	logger.Info("icd: registry initialized", "loaded", len(r.loaded), "primary", r.primary.info.LibraryPath)
	return nil
}

// AvailableICDs returns a read-only snapshot of every loaded ICD's
// IcdInfo, in registry (discovery) order.
func (r *Registry) AvailableICDs() []IcdInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]IcdInfo, len(r.loaded))
	for i, icd := range r.loaded {
		out[i] = icd.info
	}
	return out
}

// Loaded returns the live LoadedICD handles in registry order. Callers
// must not mutate the returned slice's backing array.
func (r *Registry) Loaded() []*LoadedICD {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*LoadedICD, len(r.loaded))
	copy(out, r.loaded)
	return out
}

// Primary returns the selected primary ICD, or nil if the registry has
// not been initialized.
func (r *Registry) Primary() *LoadedICD {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.primary
}

// Count returns the number of loaded ICDs.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.loaded)
}
