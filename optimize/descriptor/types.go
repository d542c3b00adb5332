// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package descriptor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/vkcompute/vk"
)

// MaxPushConstantBytes is the design ceiling push-constant ranges are
// checked against at pipeline-layout creation; per-dispatch parameters
// are expected to fit within it.
const MaxPushConstantBytes = 128

// cacheKey identifies one (device, buffer-set) binding group. Buffer
// handles are sorted before building the key so the same set of
// buffers passed in a different order still hits the cache.
type cacheKey string

func makeCacheKey(device vk.Device, buffers []vk.Buffer) cacheKey {
	sorted := append([]vk.Buffer(nil), buffers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var b strings.Builder
	fmt.Fprintf(&b, "%d", device)
	for _, buf := range sorted {
		fmt.Fprintf(&b, ":%d", buf)
	}
	return cacheKey(b.String())
}

// pool tracks one VkDescriptorPool and how many of its sets are in use.
type pool struct {
	handle        vk.DescriptorPool
	maxSets       uint32
	allocatedSets uint32
}
