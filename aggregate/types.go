// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package aggregate

import (
	"github.com/gogpu/vkcompute/icd"
	"github.com/gogpu/vkcompute/vk"
)

// instanceEntry is one per-ICD native instance held by a MetaInstance.
type instanceEntry struct {
	icd      *icd.LoadedICD
	instance vk.Instance
}

// MetaInstance fans one logical "instance" out across every loaded ICD,
// the way core.Instance.halInstances tracks one hal.Instance per
// enabled backend. There is no native handle for a meta-instance; a
// *MetaInstance pointer is itself the handle callers hold.
type MetaInstance struct {
	entries []instanceEntry

	// Failed records ICDs whose vkCreateInstance call did not return
	// Success, keyed by the ICD's registry index. A MetaInstance with a
	// non-empty Failed but at least one successful entry is usable;
	// CreateInstance reports this with ErrAggregationPartial.
	Failed map[int]vk.Result
}

// ICDs returns the loaded ICDs this meta-instance successfully created a
// native instance on, in registry (discovery) order.
func (m *MetaInstance) ICDs() []*icd.LoadedICD {
	out := make([]*icd.LoadedICD, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.icd
	}
	return out
}

// nativeFor returns the native instance handle this meta-instance holds
// for the given ICD, and whether one exists.
func (m *MetaInstance) nativeFor(owner *icd.LoadedICD) (vk.Instance, bool) {
	for _, e := range m.entries {
		if e.icd == owner {
			return e.instance, true
		}
	}
	return 0, false
}

// NativeInstance is the exported form of nativeFor, for callers outside
// this package that need the per-ICD native vk.Instance behind a
// physical device handle (e.g. to query its properties through the
// owning ICD's own function table).
func (m *MetaInstance) NativeInstance(owner *icd.LoadedICD) (vk.Instance, bool) {
	return m.nativeFor(owner)
}
