package ral

import (
	"time"
	"unsafe"

	"golang.org/x/exp/slog"
)

// This file is the contract between the RAL core and a native-API backend.
// Applications never call these interfaces directly; they go through the
// handles the core wraps around them.

// CreateInfo is handed to a backend module's create entry point.
type CreateInfo struct {
	// Logger receives the backend's structured diagnostics.
	Logger *slog.Logger
	// Settings carries the common and backend-specific configuration.
	Settings *Settings
}

// Interface is the root backend object: the fixed entry-point contract
// every native-API module implements.
type Interface interface {
	// Settings returns the settings the backend was created with.
	Settings() *Settings

	// EnumeratePhysicalDevices returns the available adapters, in an
	// order that is stable for a static hardware configuration. Pure
	// query, repeatable on demand.
	EnumeratePhysicalDevices() ([]*PhysicalDevice, error)

	// CreateDevice creates the logical device for an adapter, requesting
	// the fixed capability set the RAL promises to use. An unsupported
	// capability fails with ErrMissingCapability rather than silently
	// degrading. The queue matrix covers every type and priority band;
	// entries may alias the same native queue.
	CreateDevice(physicalDevice *PhysicalDevice) (DeviceBackend, QueueBackendMatrix, error)

	// Destroy tears down the backend object.
	Destroy() error
}

// QueueBackendEntry is one slot of the queue matrix.
type QueueBackendEntry struct {
	Backend CommandQueueBackend
	Index   QueueIndex
}

// QueueBackendMatrix is the fixed type × priority queue matrix a backend
// returns from CreateDevice.
type QueueBackendMatrix [QueueTypeCount][QueuePriorityCount]QueueBackendEntry

// DeviceBackend is the backend surface of one logical device.
type DeviceBackend interface {
	// CreateSwapChain creates the native swap chain and its initial
	// backbuffer set. The result reports the values the backend actually
	// chose (clamped size, picked format, clamped backbuffer count).
	CreateSwapChain(physicalDevice *PhysicalDevice, desc *SwapChainDesc) (SwapChainBackend, *SwapChainResultInfo, error)

	// CreateBuffer creates the native buffer and binds memory obtained
	// through the given allocator.
	CreateBuffer(desc *BufferDesc, allocator *GpuAllocator) (BufferBackend, *GpuAllocation, GpuAddress, error)

	// CreateCommandPool creates a native command pool for a list type.
	CreateCommandPool(listType CommandListType, flags CommandPoolFlags) (CommandPoolBackend, error)

	// CreateFence creates a native timeline fence starting at value 0.
	CreateFence() (FenceBackend, error)

	// Flush blocks until the device is idle across all queues.
	Flush() error

	// AllocateHeap allocates a native memory heap. Alignment is one of
	// MinAllocationAlign or MinMsaaAllocationAlign.
	AllocateHeap(size, alignment uint64, memoryType MemoryType, memInfo *MemoryInfo) (MemoryHeapBackend, error)

	// Destroy tears down the native device. The core calls it only after
	// the caller has flushed all queues.
	Destroy()
}

// BufferBackend is the backend surface of one native buffer.
type BufferBackend interface {
	// Map maps size bytes at offset. offset/size are relative to the
	// buffer; the backend applies the allocation's own offset.
	Map(allocation *GpuAllocation, offset, size uint64) (unsafe.Pointer, error)
	// Unmap releases the mapping previously returned from Map.
	Unmap(allocation *GpuAllocation, ptr unsafe.Pointer, offset, size uint64) error
	// Destroy destroys the native buffer. The allocation outlives this
	// call and is freed by the core afterwards.
	Destroy()
}

// SwapChainBackend is the backend surface of one native swap chain.
type SwapChainBackend interface {
	// Present presents the given backbuffer on the given queue. A
	// non-nil update-rect list in info is guaranteed non-empty by the
	// core.
	Present(mode PresentMode, backbufferIndex int, queue *CommandQueue, info *PresentInfo) error

	// AcquireNextBackbuffer blocks until a backbuffer is available and
	// returns its index.
	AcquireNextBackbuffer() (int, error)

	// NeedsRecreateForPresentMode reports whether switching to mode
	// requires rebuilding the backbuffer set. Backends that cannot
	// answer return ErrNotImplemented and the core assumes recreation.
	NeedsRecreateForPresentMode(mode PresentMode) (bool, error)

	// RecreateBackbuffers rebuilds the native swap chain for the given
	// parameters and returns the complete replacement backbuffer set
	// plus the actual (possibly clamped) size. On error the previous
	// native state must remain usable.
	RecreateBackbuffers(params *SwapChainChangeParams) (*SwapChainRecreateInfo, error)

	// Destroy tears down the native swap chain. Backbuffer backends are
	// destroyed separately through their own tokens first.
	Destroy()
}

// TextureBackend is the backend surface of one native texture.
type TextureBackend interface {
	Destroy()
}

// RenderTargetViewBackend is the backend surface of one native RTV.
type RenderTargetViewBackend interface {
	Destroy()
}

// FenceBackend is the backend surface of one native timeline fence.
type FenceBackend interface {
	Signal(value uint64) error
	Wait(value uint64, timeout time.Duration) error
	Value() (uint64, error)
	Destroy()
}

// CommandPoolBackend is the backend surface of one native command pool.
type CommandPoolBackend interface {
	Reset() error
	Destroy()
}

// BackbufferBackends is the pair of backend tokens for one backbuffer.
type BackbufferBackends struct {
	Texture      TextureBackend
	RenderTarget RenderTargetViewBackend
}

// SwapChainResultInfo reports the values a backend actually chose while
// creating a swap chain: clamped size and backbuffer count, the first
// supported format from the preference list, the granted usages.
type SwapChainResultInfo struct {
	Backbuffers    []BackbufferBackends
	Width          int
	Height         int
	NumBackbuffers int
	Format         Format
	Usages         TextureUsage
	PresentMode    PresentMode
}

// SwapChainChangeParams carries everything a backend needs to rebuild a
// backbuffer set, for a resize or a present-mode change.
type SwapChainChangeParams struct {
	Width          int
	Height         int
	NumBackbuffers int
	Format         Format
	Usages         TextureUsage
	PresentMode    PresentMode
	AlphaMode      SwapChainAlphaMode
	Queue          *CommandQueue
}

// SwapChainRecreateInfo is the replacement set a backend built for a
// RecreateBackbuffers call, plus the actual size it ended up with.
type SwapChainRecreateInfo struct {
	Backbuffers []BackbufferBackends
	Width       int
	Height      int
}
