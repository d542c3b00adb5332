// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// CreateSemaphore wraps vkCreateSemaphore. If timeline is true, pNext
// chains a VkSemaphoreTypeCreateInfo requesting VK_SEMAPHORE_TYPE_TIMELINE
// with the given initial value; otherwise an ordinary binary semaphore is
// created.
func (l *Library) CreateSemaphore(device Device, timeline bool, initialValue uint64) (Semaphore, Result) {
	fn := l.GetDeviceProcAddr(device, "vkCreateSemaphore")

	info := SemaphoreCreateInfo{SType: StructureTypeSemaphoreCreateInfo}
	var typeInfo SemaphoreTypeCreateInfo
	if timeline {
		typeInfo = SemaphoreTypeCreateInfo{
			SType:         StructureTypeSemaphoreTypeCreateInfo,
			SemaphoreType: SemaphoreTypeTimeline,
			InitialValue:  initialValue,
		}
		info.PNext = uintptr(unsafe.Pointer(&typeInfo))
	}

	var sem Semaphore
	semPtr := unsafe.Pointer(&sem)
	infoPtr := unsafe.Pointer(&info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
		unsafe.Pointer(&semPtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kPtr, kPtr}, args)
	return sem, result
}

// DestroySemaphore wraps vkDestroySemaphore.
func (l *Library) DestroySemaphore(device Device, sem Semaphore) {
	fn := l.GetDeviceProcAddr(device, "vkDestroySemaphore")
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&sem),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kPtr}, args)
}

// GetSemaphoreCounterValue wraps vkGetSemaphoreCounterValue.
func (l *Library) GetSemaphoreCounterValue(device Device, sem Semaphore) (uint64, Result) {
	fn := l.GetDeviceProcAddr(device, "vkGetSemaphoreCounterValue")
	var value uint64
	valuePtr := unsafe.Pointer(&value)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&sem),
		unsafe.Pointer(&valuePtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kU64, kPtr}, args)
	return value, result
}

// WaitSemaphores wraps vkWaitSemaphores, waiting for all listed
// semaphores to reach their paired target value.
func (l *Library) WaitSemaphores(device Device, sems []Semaphore, values []uint64, timeoutNanos uint64) Result {
	fn := l.GetDeviceProcAddr(device, "vkWaitSemaphores")

	count := uint32(len(sems))
	var semsPtr, valuesPtr unsafe.Pointer
	if count > 0 {
		semsPtr = unsafe.Pointer(&sems[0])
		valuesPtr = unsafe.Pointer(&values[0])
	}

	info := SemaphoreWaitInfo{
		SType:          StructureTypeSemaphoreWaitInfo,
		SemaphoreCount: count,
	}
	_ = semsPtr
	_ = valuesPtr
	info.PSemaphores = (*Semaphore)(semsPtr)
	info.PValues = (*uint64)(valuesPtr)
	infoPtr := unsafe.Pointer(&info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(&timeoutNanos),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kU64}, args)
	return result
}

// CreateFence wraps vkCreateFence.
func (l *Library) CreateFence(device Device, signaled bool) (Fence, Result) {
	fn := l.GetDeviceProcAddr(device, "vkCreateFence")
	info := FenceCreateInfo{SType: StructureTypeFenceCreateInfo}
	if signaled {
		info.Flags = FenceCreateSignaledBit
	}

	var fence Fence
	fencePtr := unsafe.Pointer(&fence)
	infoPtr := unsafe.Pointer(&info)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&infoPtr),
		unsafe.Pointer(new(unsafe.Pointer)),
		unsafe.Pointer(&fencePtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kPtr, kPtr, kPtr}, args)
	return fence, result
}

// DestroyFence wraps vkDestroyFence.
func (l *Library) DestroyFence(device Device, fence Fence) {
	fn := l.GetDeviceProcAddr(device, "vkDestroyFence")
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&fence),
		unsafe.Pointer(new(unsafe.Pointer)),
	}
	_ = call(fn, kVoid, nil, []kind{kU64, kU64, kPtr}, args)
}

// ResetFences wraps vkResetFences for a single fence, the only shape the
// higher layers need.
func (l *Library) ResetFences(device Device, fence Fence) Result {
	fn := l.GetDeviceProcAddr(device, "vkResetFences")
	count := uint32(1)
	fencePtr := unsafe.Pointer(&fence)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&count),
		unsafe.Pointer(&fencePtr),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kU32, kPtr}, args)
	return result
}

// WaitForFences wraps vkWaitForFences for a single fence.
func (l *Library) WaitForFences(device Device, fence Fence, timeoutNanos uint64) Result {
	fn := l.GetDeviceProcAddr(device, "vkWaitForFences")
	count := uint32(1)
	fencePtr := unsafe.Pointer(&fence)
	waitAll := uint32(1)

	var result Result
	args := []unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&count),
		unsafe.Pointer(&fencePtr),
		unsafe.Pointer(&waitAll),
		unsafe.Pointer(&timeoutNanos),
	}
	_ = call(fn, kI32, unsafe.Pointer(&result), []kind{kU64, kU32, kPtr, kU32, kU64}, args)
	return result
}
