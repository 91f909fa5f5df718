package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/core1_2"
	"github.com/vkngwrapper/extensions/v2/ext_memory_budget"
	"github.com/vkngwrapper/extensions/v2/khr_portability_subset"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"golang.org/x/exp/slog"

	"github.com/onca-engine/ral"
)

// Queue priorities, in creation order, for families that expose more than
// one queue. The normal band sits at half priority so high-band work can
// overtake it.
var queueBandPriorities = []float32{0.5, 1.0}

func (b *backend) CreateDevice(physicalDevice *ral.PhysicalDevice) (ral.DeviceBackend, ral.QueueBackendMatrix, error) {
	var matrix ral.QueueBackendMatrix

	pd, ok := physicalDevice.Backend().(*physicalDeviceBackend)
	if !ok {
		return nil, matrix, errors.New("the physical device was not enumerated by this backend")
	}

	if physicalDevice.APIVersion.Major < 1 ||
		(physicalDevice.APIVersion.Major == 1 && physicalDevice.APIVersion.Minor < 2) {
		return nil, matrix, errors.Wrapf(ral.ErrMissingCapability,
			"adapter %s only supports vulkan %s, 1.2 is required for timeline fences",
			physicalDevice.Name, physicalDevice.APIVersion)
	}

	extensionNames, err := pd.deviceExtensionNames()
	if err != nil {
		return nil, matrix, err
	}

	// One create info per distinct family. Types that fall back to a
	// shared family must not request it twice.
	var queueCreateInfos []core1_0.DeviceQueueCreateInfo
	queuesPerFamily := map[int]int{}
	for _, info := range physicalDevice.QueueInfos {
		family := int(info.Index)
		if _, seen := queuesPerFamily[family]; seen {
			continue
		}
		count := len(queueBandPriorities)
		if info.Count.Known && int(info.Count.Count) < count {
			count = int(info.Count.Count)
		}
		queuesPerFamily[family] = count
		queueCreateInfos = append(queueCreateInfos, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  queueBandPriorities[:count],
		})
	}

	enabledFeatures := &core1_0.PhysicalDeviceFeatures{
		SampleRateShading: physicalDevice.HasCapabilities(ral.CapabilityMinSampleShading),
	}

	device, res, err := pd.device.CreateDevice(nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueCreateInfos,
		EnabledExtensionNames: extensionNames,
		EnabledFeatures:       enabledFeatures,
		NextOptions: common.NextOptions{
			Next: core1_2.PhysicalDeviceVulkan12Features{
				TimelineSemaphore: true,
			},
		},
	})
	if err != nil {
		return nil, matrix, ralError(res, errors.Wrap(err, "creating the vulkan device"))
	}

	device12 := core1_2.PromoteDevice(device)
	if device12 == nil {
		device.Destroy(nil)
		return nil, matrix, errors.Wrap(ral.ErrMissingCapability,
			"the driver refused vulkan 1.2 promotion")
	}

	d := &deviceBackend{
		backend:  b,
		phys:     pd,
		device:   device,
		device12: device12,
		logger:   b.logger.With(slog.String("adapter", physicalDevice.Name)),
	}

	// Band queues per family: queue 0 is the normal band, queue 1 the
	// high band when the family granted a second queue. The realtime
	// band stays empty; the core aliases it onto the high band.
	for qt := 0; qt < ral.QueueTypeCount; qt++ {
		family := int(physicalDevice.QueueInfos[qt].Index)
		d.families[qt] = family

		normal := device.GetQueue(family, 0)
		high := normal
		if queuesPerFamily[family] > 1 {
			high = device.GetQueue(family, 1)
		}
		matrix[qt][ral.QueuePriorityNormal] = ral.QueueBackendEntry{
			Backend: &queueBackend{queue: normal},
			Index:   ral.QueueIndex(family),
		}
		matrix[qt][ral.QueuePriorityHigh] = ral.QueueBackendEntry{
			Backend: &queueBackend{queue: high},
			Index:   ral.QueueIndex(family),
		}
	}

	return d, matrix, nil
}

// deviceExtensionNames picks the device extensions to enable: the swap
// chain support the RAL requires, plus optional extensions the adapter
// was probed with.
func (p *physicalDeviceBackend) deviceExtensionNames() ([]string, error) {
	if _, ok := p.deviceExtensions[khr_swapchain.ExtensionName]; !ok {
		return nil, errors.Wrap(ral.ErrMissingCapability,
			"the adapter cannot present, khr_swapchain is unavailable")
	}
	names := []string{khr_swapchain.ExtensionName}

	if _, ok := p.deviceExtensions[khr_portability_subset.ExtensionName]; ok {
		names = append(names, khr_portability_subset.ExtensionName)
	}
	if p.useMemoryBudget {
		names = append(names, ext_memory_budget.ExtensionName)
	}
	return names, nil
}

type deviceBackend struct {
	backend  *backend
	phys     *physicalDeviceBackend
	device   core1_0.Device
	device12 core1_2.Device
	logger   *slog.Logger

	families [ral.QueueTypeCount]int
}

func (d *deviceBackend) Flush() error {
	res, err := d.device.WaitIdle()
	return ralError(res, err)
}

func (d *deviceBackend) Destroy() {
	d.device.Destroy(nil)
}

// AllocateHeap backs a RAL heap with one native device memory block.
// Vulkan aligns device memory allocations at least to
// bufferImageGranularity, which covers both RAL alignment classes, so
// the alignment parameter needs no native plumbing.
func (d *deviceBackend) AllocateHeap(size, alignment uint64, memoryType ral.MemoryType, memInfo *ral.MemoryInfo) (ral.MemoryHeapBackend, error) {
	typeIndex, err := findMemoryTypeIndex(memInfo, memoryType)
	if err != nil {
		return nil, err
	}

	memory, res, err := d.device.AllocateMemory(nil, core1_0.MemoryAllocateInfo{
		AllocationSize:  int(size),
		MemoryTypeIndex: typeIndex,
	})
	if err != nil {
		return nil, ralError(res, errors.Wrapf(err, "allocating a %d byte %s heap", size, memoryType))
	}
	return &memoryHeapBackend{memory: memory}, nil
}

// findMemoryTypeIndex picks the native memory type for a RAL memory
// class. Readback prefers cached host memory and falls back to the
// plain host-visible type when no cached one exists.
func findMemoryTypeIndex(memInfo *ral.MemoryInfo, memoryType ral.MemoryType) (int, error) {
	var required, preferred ral.MemoryTypeFlags
	switch memoryType {
	case ral.MemoryTypeGpu:
		required = ral.MemoryTypeDeviceLocal
	case ral.MemoryTypeUpload:
		required = ral.MemoryTypeHostVisible | ral.MemoryTypeHostCoherent
	case ral.MemoryTypeReadback:
		required = ral.MemoryTypeHostVisible | ral.MemoryTypeHostCoherent
		preferred = ral.MemoryTypeHostCached
	}

	best := -1
	for i, info := range memInfo.Types {
		if info.Flags&required != required {
			continue
		}
		if info.Flags&preferred == preferred {
			return i, nil
		}
		if best < 0 {
			best = i
		}
	}
	if best < 0 {
		return 0, errors.Wrapf(ral.ErrMissingCapability,
			"the adapter has no memory type usable as %s", memoryType)
	}
	return best, nil
}

type memoryHeapBackend struct {
	memory core1_0.DeviceMemory
}

func (h *memoryHeapBackend) Destroy() {
	h.memory.Free(nil)
}

type queueBackend struct {
	queue core1_0.Queue
}

func (q *queueBackend) Flush() error {
	res, err := q.queue.WaitIdle()
	return ralError(res, err)
}
