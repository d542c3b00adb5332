// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkcompute

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/vkcompute/aggregate"
	"github.com/gogpu/vkcompute/icd"
	"github.com/gogpu/vkcompute/internal/config"
	"github.com/gogpu/vkcompute/router"
	"github.com/gogpu/vkcompute/vk"
)

// apiVersion1_0 encodes VK_API_VERSION_1_0 (variant 0, major 1, minor 0,
// patch 0) per VK_MAKE_API_VERSION's bit layout.
const apiVersion1_0 uint32 = 1 << 22

// InstanceDescriptor configures instance creation. A nil descriptor uses
// the default application name and the logger VKCOMPUTE_LOG configures;
// the VKCOMPUTE_* environment variables are read either way.
type InstanceDescriptor struct {
	// ApplicationName is recorded in VkApplicationInfo; purely
	// informational to drivers that log or special-case it.
	ApplicationName string

	// Logger receives discovery and aggregation diagnostics. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Instance is the entry point for GPU operations: it owns ICD discovery,
// the handle-routing table, and the meta-instance, which fans out across
// every loaded ICD when aggregation is enabled and holds only the
// primary ICD's instance otherwise.
//
// Instance methods are safe for concurrent use, except Release which
// must not be called concurrently with other methods.
type Instance struct {
	registry   *icd.Registry
	router     *router.Router
	aggregator *aggregate.Aggregator
	meta       *aggregate.MetaInstance
	logger     *slog.Logger
	released   bool
}

// CreateInstance discovers and loads every available ICD. When the
// aggregation layer is disabled (the default), it creates a single
// native VkInstance on the selected primary ICD and routes every call
// to it via the router's FallbackPrimary; when enabled, it fans out to
// one native VkInstance per loaded ICD through the aggregation layer.
func CreateInstance(desc *InstanceDescriptor) (*Instance, error) {
	cfg := config.Load()

	logger := loggerFromConfig(cfg)
	appName := "vkcompute"
	if desc != nil {
		if desc.Logger != nil {
			logger = desc.Logger
		}
		if desc.ApplicationName != "" {
			appName = desc.ApplicationName
		}
	}

	reg := icd.NewRegistry()
	if err := reg.InitializeRegistry(cfg, logger); err != nil {
		return nil, fmt.Errorf("vkcompute: %w", err)
	}

	rt := router.New()
	agg := aggregate.New(reg, rt, logger)

	appNameBytes := append([]byte(appName), 0)
	appInfo := &vk.ApplicationInfo{
		SType:            vk.StructureTypeApplicationInfo,
		PApplicationName: uintptrOf(appNameBytes),
		ApiVersion:       apiVersion1_0,
	}
	info := &vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: appInfo,
	}

	// The aggregation layer is an optional mode (VKCOMPUTE_AGGREGATE).
	// With it off, bind to the selected primary only: one native
	// instance, and FallbackPrimary routes every subsequent call to it
	// regardless of how many other ICDs are loaded.
	targets := reg.Loaded()
	if !cfg.Aggregate {
		primary := reg.Primary()
		rt.FallbackPrimary = primary
		targets = []*icd.LoadedICD{primary}
	}

	meta, err := agg.CreateInstanceOn(info, targets)
	if err != nil {
		if meta == nil {
			return nil, fmt.Errorf("vkcompute: %w", err)
		}
		logger.Warn("vkcompute: some ICDs failed to create an instance", "error", err, "failed", meta.Failed)
	}

	return &Instance{
		registry:   reg,
		router:     rt,
		aggregator: agg,
		meta:       meta,
		logger:     logger,
	}, nil
}

// loggerFromConfig builds the default logger CreateInstance uses when the
// caller doesn't supply one, applying VKCOMPUTE_LOG's verbosity to
// discovery and aggregation diagnostics.
func loggerFromConfig(cfg config.Config) *slog.Logger {
	level, ok := parseLogLevel(cfg.LogLevel)
	if !ok {
		return slog.Default()
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// parseLogLevel maps a VKCOMPUTE_LOG value to an slog.Level. An empty or
// unrecognized value reports ok=false so the caller keeps slog.Default().
func parseLogLevel(s string) (level slog.Level, ok bool) {
	switch s {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

// ICDs returns identity information for every ICD this instance loaded,
// in discovery order.
func (i *Instance) ICDs() []icd.IcdInfo {
	out := make([]icd.IcdInfo, 0, len(i.registry.Loaded()))
	for _, l := range i.registry.Loaded() {
		out = append(out, l.Info())
	}
	return out
}

// Adapters enumerates every physical device across the ICDs this
// instance was created on (every loaded ICD when aggregation is enabled,
// the primary alone otherwise), in stable discovery order.
func (i *Instance) Adapters() ([]*Adapter, error) {
	if i.released {
		return nil, ErrReleased
	}

	pds, err := i.aggregator.EnumeratePhysicalDevices(i.meta)
	if err != nil {
		return nil, fmt.Errorf("vkcompute: %w", err)
	}
	if len(pds) == 0 {
		return nil, ErrNoAdapters
	}

	out := make([]*Adapter, 0, len(pds))
	for _, pd := range pds {
		a, err := i.newAdapter(pd)
		if err != nil {
			i.logger.Warn("vkcompute: skipping physical device", "error", err)
			continue
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil, ErrNoAdapters
	}
	return out, nil
}

// RequestAdapter returns one adapter, preferring a discrete GPU when
// opts.PowerPreference is PowerPreferenceHighPerformance and an
// integrated or CPU one when PowerPreferenceLowPower, falling back to
// the first enumerated adapter otherwise.
func (i *Instance) RequestAdapter(opts *RequestAdapterOptions) (*Adapter, error) {
	adapters, err := i.Adapters()
	if err != nil {
		return nil, err
	}

	if opts == nil || opts.PowerPreference == PowerPreferenceNone {
		return adapters[0], nil
	}

	var best *Adapter
	for _, a := range adapters {
		switch opts.PowerPreference {
		case PowerPreferenceHighPerformance:
			if a.info.DeviceType == DeviceTypeDiscreteGPU {
				best = a
			}
		case PowerPreferenceLowPower:
			if a.info.DeviceType == DeviceTypeIntegratedGPU || a.info.DeviceType == DeviceTypeCPU {
				best = a
			}
		}
		if best != nil {
			break
		}
	}
	if best == nil {
		best = adapters[0]
	}
	return best, nil
}

// Release destroys every native instance this Instance fanned out over.
func (i *Instance) Release() {
	if i.released {
		return
	}
	i.released = true
	i.aggregator.DestroyInstance(i.meta)
}
