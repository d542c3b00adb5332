// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package aggregate implements the multi-ICD aggregation layer: a single
// logical instance that fans out to one native VkInstance per loaded
// ICD, and a physical device enumeration that concatenates every ICD's
// devices in stable discovery order (Invariant 6 in the design notes).
//
// This is the generalization of core.Instance.halInstances — which
// tracks one hal.Instance per enabled backend — to tracking one native
// Vulkan instance per loaded ICD instead of per backend API.
package aggregate

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/vkcompute/icd"
	"github.com/gogpu/vkcompute/router"
	"github.com/gogpu/vkcompute/vk"
)

// Aggregator coordinates instance and physical-device fan-out across
// every ICD in a Registry, recording ownership in a Router as it goes.
type Aggregator struct {
	registry *icd.Registry
	router   *router.Router
	logger   *slog.Logger
}

// New returns an Aggregator bound to the given registry and router.
func New(registry *icd.Registry, r *router.Router, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{registry: registry, router: r, logger: logger}
}

// CreateInstance creates one native instance per loaded ICD. It returns
// a usable *MetaInstance as soon as at least one ICD succeeds; the error
// is ErrAggregationPartial when some (but not all) ICDs failed, and
// ErrAggregationFailed only when none did, matching the Loaded()
// best-effort behavior already used during registry initialization.
//
// The known past defect from single-ICD aggregation is fixed here:
// SetDeviceProcAddr runs immediately after each per-ICD vkCreateInstance
// succeeds, never deferred to first device-function lookup, because
// some drivers return NULL for vkGetDeviceProcAddr when queried against
// a NULL instance.
func (a *Aggregator) CreateInstance(info *vk.InstanceCreateInfo) (*MetaInstance, error) {
	return a.CreateInstanceOn(info, a.registry.Loaded())
}

// CreateInstanceOn is CreateInstance restricted to an explicit subset of
// loaded ICDs, rather than every ICD in the registry. The aggregation
// layer is an optional mode: when it is disabled, the caller passes a
// single-element slice (the selected primary) so that exactly one
// native instance is created and fan-out never happens.
func (a *Aggregator) CreateInstanceOn(info *vk.InstanceCreateInfo, loaded []*icd.LoadedICD) (*MetaInstance, error) {
	meta := &MetaInstance{Failed: make(map[int]vk.Result)}

	for _, l := range loaded {
		lib := l.Library()
		instance, result := lib.CreateInstance(info)
		if result != vk.Success {
			meta.Failed[l.Info().Index] = result
			a.logger.Warn("aggregate: vkCreateInstance failed on ICD", "icd", l.Info().LibraryPath, "result", result.String())
			continue
		}

		lib.SetDeviceProcAddr(instance)
		a.router.RecordInstance(instance, l)
		meta.entries = append(meta.entries, instanceEntry{icd: l, instance: instance})
	}

	if len(meta.entries) == 0 {
		return nil, ErrAggregationFailed
	}
	if len(meta.Failed) > 0 {
		return meta, ErrAggregationPartial
	}
	return meta, nil
}

// DestroyInstance destroys every native instance behind a meta-instance.
func (a *Aggregator) DestroyInstance(meta *MetaInstance) {
	for _, e := range meta.entries {
		e.icd.Library().DestroyInstance(e.instance)
		a.router.RemoveInstance(e.instance)
	}
}

// EnumeratePhysicalDevices concatenates every ICD's physical devices, in
// the same order CreateInstance created their native instances (which is
// registry discovery order), satisfying the stable-ordering invariant a
// caller depends on when picking "the first device" deterministically.
func (a *Aggregator) EnumeratePhysicalDevices(meta *MetaInstance) ([]vk.PhysicalDevice, error) {
	var all []vk.PhysicalDevice
	for _, e := range meta.entries {
		devices, result := e.icd.Library().EnumeratePhysicalDevices(e.instance)
		if result.IsError() {
			return nil, fmt.Errorf("aggregate: enumerate physical devices on %s: %s", e.icd.Info().LibraryPath, result.String())
		}
		for _, pd := range devices {
			a.router.RecordPhysicalDevice(pd, e.icd, e.instance)
		}
		all = append(all, devices...)
	}
	return all, nil
}

// CreateDevice creates a logical device on pd, dispatching to whichever
// ICD owns it (as recorded by a prior EnumeratePhysicalDevices call).
func (a *Aggregator) CreateDevice(pd vk.PhysicalDevice, info *vk.DeviceCreateInfo) (vk.Device, error) {
	owner, err := a.router.ICDForPhysicalDevice(pd)
	if err != nil {
		return 0, fmt.Errorf("aggregate: create device: %w", err)
	}

	device, result := owner.Library().CreateDevice(pd, info)
	if result.IsError() {
		return 0, fmt.Errorf("aggregate: vkCreateDevice on %s: %s", owner.Info().LibraryPath, result.String())
	}

	a.router.RecordDevice(device, owner)
	return device, nil
}

// DestroyDevice destroys a logical device previously created by
// CreateDevice, dispatching to its owning ICD and dropping its router
// record.
func (a *Aggregator) DestroyDevice(device vk.Device) error {
	owner, err := a.router.ICDForDevice(device)
	if err != nil {
		return fmt.Errorf("aggregate: destroy device: %w", err)
	}
	owner.Library().DestroyDevice(device)
	a.router.RemoveDevice(device)
	return nil
}
