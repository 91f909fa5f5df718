package ral

import (
	"unsafe"

	"golang.org/x/exp/slog"
)

// MemoryType classifies where an allocation lives and how the CPU may
// touch it.
type MemoryType uint8

const (
	// MemoryTypeGpu is device-local memory the CPU cannot map.
	MemoryTypeGpu MemoryType = iota
	// MemoryTypeUpload is CPU-writable memory for staging data to the GPU.
	MemoryTypeUpload
	// MemoryTypeReadback is CPU-readable memory for reading results back.
	MemoryTypeReadback

	MemoryTypeCount = int(MemoryTypeReadback) + 1
)

var memoryTypeNames = [MemoryTypeCount]string{"Gpu", "Upload", "Readback"}

func (t MemoryType) String() string {
	if int(t) >= MemoryTypeCount {
		return "MemoryType(invalid)"
	}
	return memoryTypeNames[t]
}

// MemoryAllocationFlags tune an allocation request.
type MemoryAllocationFlags uint8

const (
	// MemoryAllocationDedicated requests a dedicated allocation for the
	// resource.
	MemoryAllocationDedicated MemoryAllocationFlags = 1 << iota
	// MemoryAllocationCanAlias allows the memory to be aliased between
	// multiple resources.
	MemoryAllocationCanAlias
)

// GpuAllocationDesc is the user-facing part of an allocation request.
type GpuAllocationDesc struct {
	MemoryType MemoryType
	Flags      MemoryAllocationFlags
}

// ApiMemoryRequest carries the additional requirements the backend imposes
// on an allocation for a specific resource.
type ApiMemoryRequest struct {
	// PreferDedicated is set when the backend would rather see a dedicated
	// allocation; RequireDedicated when it insists.
	PreferDedicated  bool
	RequireDedicated bool
	// Alignment is the minimum memory alignment. Always a power of two.
	Alignment uint64
	// MemoryTypes lists the memory types the resource can live in.
	MemoryTypes []MemoryType
}

// AllowsMemoryType reports whether the request permits the given type.
func (r *ApiMemoryRequest) AllowsMemoryType(t MemoryType) bool {
	for _, allowed := range r.MemoryTypes {
		if allowed == t {
			return true
		}
	}
	return false
}

// GpuAddress is a device-visible address of a resource.
type GpuAddress uint64

// At returns the address advanced by offset bytes.
func (a GpuAddress) At(offset uint64) GpuAddress {
	return a + GpuAddress(offset)
}

// MemoryHeapBackend is the backend token for one native memory heap.
type MemoryHeapBackend interface {
	Destroy()
}

// MemoryHeap is a slab of device memory resources are suballocated from.
type MemoryHeap struct {
	backend     MemoryHeapBackend
	memoryType  MemoryType
	msaaSupport bool
}

// MemoryHeapHandle is the counted handle to a MemoryHeap.
type MemoryHeapHandle = Handle[MemoryHeap]

// NewMemoryHeap wraps a backend heap token in a counted handle. Only
// HeapProvider implementations have business calling this.
func NewMemoryHeap(backend MemoryHeapBackend, memoryType MemoryType, msaaSupport bool) MemoryHeapHandle {
	return NewHandle(MemoryHeap{
		backend:     backend,
		memoryType:  memoryType,
		msaaSupport: msaaSupport,
	}, func(h *MemoryHeap) {
		h.backend.Destroy()
	})
}

// MemoryType returns the memory type the heap was allocated in.
func (h *MemoryHeap) MemoryType() MemoryType { return h.memoryType }

// HasMsaaSupport reports whether the heap alignment supports MSAA targets.
func (h *MemoryHeap) HasMsaaSupport() bool { return h.msaaSupport }

// Backend returns the backend token. Only backend implementations and
// allocator strategies have business calling this.
func (h *MemoryHeap) Backend() MemoryHeapBackend { return h.backend }

// GpuAllocation is an opaque region of device memory: a heap reference
// plus enough metadata (type, offset) for mapping. It is produced by a
// GpuAllocator's Alloc and consumed exactly once by its Free, strictly
// after the native resource using it has been destroyed.
type GpuAllocation struct {
	Heap      MemoryHeapHandle
	Offset    uint64
	Size      uint64
	Align     uint64
	Dedicated bool
}

// HeapProvider is the slice of Device an allocator strategy needs: raw
// native heap allocation and release.
type HeapProvider interface {
	// AllocateHeap allocates a native heap. The alignment is
	// MinMsaaAllocationAlign when msaaSupport is set and
	// MinAllocationAlign otherwise.
	AllocateHeap(size uint64, msaaSupport bool, memoryType MemoryType) (MemoryHeapHandle, error)
	// FreeHeap releases a heap obtained from AllocateHeap.
	FreeHeap(heap MemoryHeapHandle)
}

// GpuAllocatorStrategy is the pluggable allocation strategy supplied by
// the embedding application. The RAL prescribes no concrete strategy,
// only the ordering contract: Free is called exactly once per
// allocation, strictly after the owning resource's native handle has
// been destroyed, and never concurrently for the same allocation (the
// single-owner drop path of Handle guarantees this). Double-free is a
// caller bug the strategy is not obligated to detect.
type GpuAllocatorStrategy interface {
	Alloc(device HeapProvider, memInfo *MemoryInfo, size uint64, desc GpuAllocationDesc, req ApiMemoryRequest) (*GpuAllocation, error)
	Free(device HeapProvider, allocation *GpuAllocation)
}

// GpuAllocator wraps the application-chosen strategy together with the
// owning device's memory layout. Backends allocate resource memory
// through it.
type GpuAllocator struct {
	device   WeakHandle[Device]
	memInfo  MemoryInfo
	strategy GpuAllocatorStrategy
	logger   *slog.Logger
}

// MemoryInfo returns the memory layout of the owning physical device.
func (a *GpuAllocator) MemoryInfo() *MemoryInfo {
	return &a.memInfo
}

// Alloc requests device memory for a resource. The requested memory type
// must be among the types the backend allows for the resource.
func (a *GpuAllocator) Alloc(size uint64, desc GpuAllocationDesc, req ApiMemoryRequest) (*GpuAllocation, error) {
	if !req.AllowsMemoryType(desc.MemoryType) {
		return nil, invalidParameterf("memory type %v is not allowed for this allocation", desc.MemoryType)
	}

	device, ok := a.device.Upgrade()
	if !ok {
		return nil, ErrDeviceGone
	}
	defer device.Release()

	return a.strategy.Alloc(device.Get(), &a.memInfo, size, desc, req)
}

// Free releases an allocation. Called from resource teardown, strictly
// after the native resource was destroyed. When the owning device is
// already gone the allocation is unreachable anyway; the failure is
// logged rather than escalated, since Free runs on teardown paths.
func (a *GpuAllocator) Free(allocation *GpuAllocation) {
	device, ok := a.device.Upgrade()
	if !ok {
		a.logger.Error("freeing a GPU allocation after its device was destroyed; allocation leaked")
		return
	}
	defer device.Release()

	a.strategy.Free(device.Get(), allocation)
}

// MappedMemory is a live CPU view into a mapped buffer. Views into
// Readback memory are read-only; all other views are write-only.
type MappedMemory struct {
	ptr      unsafe.Pointer
	offset   uint64
	size     uint64
	readable bool
	writable bool
}

// Write copies data into the view. It returns the number of bytes
// written, clamped to the view size, and reports false without copying
// when the view is not writable.
func (m *MappedMemory) Write(data []byte) (int, bool) {
	if !m.writable {
		return 0, false
	}
	n := copy(unsafe.Slice((*byte)(m.ptr), m.size), data)
	return n, true
}

// Read copies data out of the view. It returns the number of bytes read,
// clamped to the view size, and reports false without copying when the
// view is not readable.
func (m *MappedMemory) Read(dst []byte) (int, bool) {
	if !m.readable {
		return 0, false
	}
	n := copy(dst, unsafe.Slice((*byte)(m.ptr), m.size))
	return n, true
}

// IsWritable reports whether the view accepts writes.
func (m *MappedMemory) IsWritable() bool { return m.writable }

// IsReadable reports whether the view can be read.
func (m *MappedMemory) IsReadable() bool { return m.readable }

// Offset returns the byte offset of the view within its buffer.
func (m *MappedMemory) Offset() uint64 { return m.offset }

// Size returns the view size in bytes.
func (m *MappedMemory) Size() uint64 { return m.size }
