// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package timeline

import "errors"

// ErrTimelineUnavailable is never returned by NewBatcher; it documents
// why a caller should check the device's advertised API version/
// extension list before requesting timeline mode, since NewBatcher
// silently takes whichever mode it is told to use.
var ErrTimelineUnavailable = errors.New("timeline: device does not advertise VK_KHR_timeline_semaphore or Vulkan 1.2")

// ErrSubmitFailed wraps a native vkQueueSubmit failure.
var ErrSubmitFailed = errors.New("timeline: native submit failed")

// ErrWaitFailed wraps a native wait failure (timeout or device lost).
var ErrWaitFailed = errors.New("timeline: wait failed")
