package ral

import (
	"golang.org/x/exp/slog"
)

// Device is the logical device: it owns the command queue matrix, wraps
// the backend device and is the factory for every resource created on
// this adapter.
//
// Teardown contract: the last strong handle may be released only after
// Flush (or per-queue flushes) succeeded; destroying a device with work
// in flight is a fatal usage error the native API is free to punish.
type Device struct {
	backend        DeviceBackend
	physicalDevice *PhysicalDevice
	queues         [QueueTypeCount][QueuePriorityCount]CommandQueueHandle
	allocator      GpuAllocator
	logger         *slog.Logger

	// self lets factory methods hand weak back-references to dependents.
	self WeakHandle[Device]
}

// DeviceHandle is the counted handle to a Device.
type DeviceHandle = Handle[Device]

func newDevice(backend DeviceBackend, physicalDevice *PhysicalDevice, queueBackends QueueBackendMatrix, strategy GpuAllocatorStrategy, logger *slog.Logger) DeviceHandle {
	return NewCyclic(func(self WeakHandle[Device]) Device {
		device := Device{
			backend:        backend,
			physicalDevice: physicalDevice,
			logger:         logger,
			self:           self,
			allocator: GpuAllocator{
				device:   self.Clone(),
				memInfo:  physicalDevice.Memory,
				strategy: strategy,
				logger:   logger,
			},
		}
		realtime := physicalDevice.HasCapabilities(CapabilityRealtimeQueues)
		for qt := 0; qt < QueueTypeCount; qt++ {
			for qp := 0; qp < QueuePriorityCount; qp++ {
				entry := queueBackends[qt][qp]
				if QueuePriority(qp) == QueuePriorityGlobalRealtime && (!realtime || entry.Backend == nil) {
					// No realtime band on this adapter, alias High.
					device.queues[qt][qp] = device.queues[qt][QueuePriorityHigh].Clone()
					continue
				}
				device.queues[qt][qp] = NewHandle(CommandQueue{
					backend:  entry.Backend,
					index:    entry.Index,
					kind:     QueueType(qt),
					priority: QueuePriority(qp),
				}, nil)
			}
		}
		return device
	}, (*Device).destroy)
}

func (d *Device) destroy() {
	for qt := 0; qt < QueueTypeCount; qt++ {
		for qp := 0; qp < QueuePriorityCount; qp++ {
			d.queues[qt][qp].Release()
		}
	}
	d.allocator.device.Release()
	d.self.Release()
	d.backend.Destroy()
}

// PhysicalDevice returns the adapter the device was created on.
func (d *Device) PhysicalDevice() *PhysicalDevice {
	return d.physicalDevice
}

// GpuAllocator returns the device's GPU memory allocator.
func (d *Device) GpuAllocator() *GpuAllocator {
	return &d.allocator
}

// Queue returns a counted handle to the queue for a type and priority
// band. Several bands may alias the same native queue.
func (d *Device) Queue(queueType QueueType, priority QueuePriority) CommandQueueHandle {
	return d.queues[queueType][priority].Clone()
}

// Flush blocks until the device is idle across all queues. Required
// before releasing the last strong device handle.
func (d *Device) Flush() error {
	return wrapBackendErr(d.backend.Flush(), "flushing device")
}

// CreateSwapChain creates a swap chain for a window surface.
func (d *Device) CreateSwapChain(desc *SwapChainDesc) (SwapChainHandle, error) {
	if err := desc.validate(); err != nil {
		return SwapChainHandle{}, err
	}
	backend, result, err := d.backend.CreateSwapChain(d.physicalDevice, desc)
	if err != nil {
		return SwapChainHandle{}, wrapBackendErr(err, "creating swap chain %dx%d", desc.Width, desc.Height)
	}
	return newSwapChain(d, desc, backend, result), nil
}

// CreateBuffer creates a linear GPU memory resource.
func (d *Device) CreateBuffer(desc *BufferDesc) (BufferHandle, error) {
	if err := validateBufferDesc(desc); err != nil {
		return BufferHandle{}, err
	}
	backend, allocation, address, err := d.backend.CreateBuffer(desc, &d.allocator)
	if err != nil {
		return BufferHandle{}, wrapBackendErr(err, "creating buffer of %d bytes", desc.Size)
	}
	return newBuffer(d, backend, allocation, address, *desc), nil
}

// CreateGraphicsCommandPool creates a command pool for graphics lists.
func (d *Device) CreateGraphicsCommandPool(flags CommandPoolFlags) (CommandPoolHandle, error) {
	return d.createCommandPool(CommandListTypeGraphics, QueueTypeGraphics, flags)
}

// CreateComputeCommandPool creates a command pool for compute lists.
func (d *Device) CreateComputeCommandPool(flags CommandPoolFlags) (CommandPoolHandle, error) {
	return d.createCommandPool(CommandListTypeCompute, QueueTypeCompute, flags)
}

// CreateCopyCommandPool creates a command pool for copy lists.
func (d *Device) CreateCopyCommandPool(flags CommandPoolFlags) (CommandPoolHandle, error) {
	return d.createCommandPool(CommandListTypeCopy, QueueTypeCopy, flags)
}

// CreateBundleCommandPool creates a command pool for bundles, which are
// executed from graphics lists.
func (d *Device) CreateBundleCommandPool(flags CommandPoolFlags) (CommandPoolHandle, error) {
	return d.createCommandPool(CommandListTypeBundle, QueueTypeGraphics, flags)
}

func (d *Device) createCommandPool(listType CommandListType, queueType QueueType, flags CommandPoolFlags) (CommandPoolHandle, error) {
	backend, err := d.backend.CreateCommandPool(listType, flags)
	if err != nil {
		return CommandPoolHandle{}, wrapBackendErr(err, "creating %v command pool", listType)
	}
	queueIndex := d.queues[queueType][QueuePriorityNormal].Get().Index()
	return newCommandPool(backend, listType, flags, queueIndex), nil
}

// CreateFence creates a timeline fence starting at value 0.
func (d *Device) CreateFence() (FenceHandle, error) {
	backend, err := d.backend.CreateFence()
	if err != nil {
		return FenceHandle{}, wrapBackendErr(err, "creating fence")
	}
	return newFence(backend), nil
}

// AllocateHeap allocates a native memory heap. Allocator strategies call
// this; resources never do directly.
func (d *Device) AllocateHeap(size uint64, msaaSupport bool, memoryType MemoryType) (MemoryHeapHandle, error) {
	alignment := MinAllocationAlign
	if msaaSupport {
		alignment = MinMsaaAllocationAlign
	}
	backend, err := d.backend.AllocateHeap(size, alignment, memoryType, &d.physicalDevice.Memory)
	if err != nil {
		return MemoryHeapHandle{}, wrapBackendErr(err, "allocating %d byte heap in %v memory", size, memoryType)
	}
	return NewMemoryHeap(backend, memoryType, msaaSupport), nil
}

// FreeHeap releases a heap obtained from AllocateHeap.
func (d *Device) FreeHeap(heap MemoryHeapHandle) {
	heap.Release()
}
