package vulkan

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/core1_1"
	"github.com/vkngwrapper/extensions/v2/ext_memory_budget"
	"github.com/vkngwrapper/extensions/v2/khr_get_physical_device_properties2"
	khr_get_physical_device_properties2_shim "github.com/vkngwrapper/extensions/v2/khr_get_physical_device_properties2/shim"

	"github.com/onca-engine/ral"
)

const fragmentShaderInterlockExtension = "VK_EXT_fragment_shader_interlock"

func (b *backend) EnumeratePhysicalDevices() ([]*ral.PhysicalDevice, error) {
	gpus, _, err := b.instance.EnumeratePhysicalDevices()
	if err != nil {
		return nil, errors.Wrap(err, "enumerating vulkan physical devices")
	}

	adapters := make([]*ral.PhysicalDevice, 0, len(gpus))
	for _, gpu := range gpus {
		adapter, err := b.convertPhysicalDevice(gpu)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, adapter)
	}
	return adapters, nil
}

func (b *backend) convertPhysicalDevice(gpu core1_0.PhysicalDevice) (*ral.PhysicalDevice, error) {
	properties, err := gpu.Properties()
	if err != nil {
		return nil, errors.Wrap(err, "querying physical device properties")
	}

	deviceExtensions, _, err := gpu.EnumerateDeviceExtensionProperties()
	if err != nil {
		return nil, errors.Wrap(err, "enumerating device extensions")
	}

	pd := &physicalDeviceBackend{
		backend:          b,
		device:           gpu,
		deviceExtensions: deviceExtensions,
	}

	pd.properties2 = core1_1.PromoteInstanceScopedPhysicalDevice(gpu)
	if pd.properties2 == nil && b.instance.IsInstanceExtensionActive(khr_get_physical_device_properties2.ExtensionName) {
		extension := khr_get_physical_device_properties2.CreateExtensionFromInstance(b.instance)
		pd.properties2 = khr_get_physical_device_properties2_shim.NewShim(extension, gpu)
	}

	features := gpu.Features()

	var caps ral.Capabilities
	if features.SampleRateShading {
		caps |= ral.CapabilityMinSampleShading
	}
	if _, ok := deviceExtensions[fragmentShaderInterlockExtension]; ok {
		caps |= ral.CapabilityRasterizerOrderViews
	}
	if _, ok := deviceExtensions[ext_memory_budget.ExtensionName]; ok && pd.properties2 != nil {
		pd.useMemoryBudget = true
		caps |= ral.CapabilityMemoryBudget
	}

	return ral.NewPhysicalDevice(pd, ral.PhysicalDevice{
		Name:          properties.DriverName,
		Type:          convertDeviceType(properties.DriverType),
		VendorID:      properties.VendorID,
		ProductID:     properties.DeviceID,
		DriverVersion: convertVersion(common.APIVersion(properties.DriverVersion)),
		APIVersion:    convertVersion(properties.APIVersion),
		QueueInfos:    convertQueueFamilies(gpu.QueueFamilyProperties()),
		Memory:        convertMemoryInfo(gpu.MemoryProperties()),
		Capabilities:  caps,
	}), nil
}

func convertDeviceType(deviceType core1_0.PhysicalDeviceType) ral.PhysicalDeviceType {
	switch deviceType {
	case core1_0.PhysicalDeviceTypeDiscreteGPU:
		return ral.PhysicalDeviceTypeDiscrete
	case core1_0.PhysicalDeviceTypeIntegratedGPU:
		return ral.PhysicalDeviceTypeIntegrated
	case core1_0.PhysicalDeviceTypeVirtualGPU:
		return ral.PhysicalDeviceTypeVirtual
	default:
		return ral.PhysicalDeviceTypeSoftware
	}
}

func convertVersion(version common.APIVersion) ral.Version {
	return ral.Version{
		Major: uint32(version.Major()),
		Minor: uint32(version.Minor()),
		Patch: uint32(version.Patch()),
	}
}

func convertMemoryInfo(memoryProperties *core1_0.PhysicalDeviceMemoryProperties) ral.MemoryInfo {
	info := ral.MemoryInfo{
		Types: make([]ral.MemoryTypeInfo, len(memoryProperties.MemoryTypes)),
		Heaps: make([]ral.MemoryHeapInfo, len(memoryProperties.MemoryHeaps)),
	}

	for i, memType := range memoryProperties.MemoryTypes {
		var flags ral.MemoryTypeFlags
		if memType.PropertyFlags&core1_0.MemoryPropertyDeviceLocal != 0 {
			flags |= ral.MemoryTypeDeviceLocal
		}
		if memType.PropertyFlags&core1_0.MemoryPropertyHostVisible != 0 {
			flags |= ral.MemoryTypeHostVisible
		}
		if memType.PropertyFlags&core1_0.MemoryPropertyHostCoherent != 0 {
			flags |= ral.MemoryTypeHostCoherent
		}
		if memType.PropertyFlags&core1_0.MemoryPropertyHostCached != 0 {
			flags |= ral.MemoryTypeHostCached
		}
		info.Types[i] = ral.MemoryTypeInfo{
			Flags:     flags,
			HeapIndex: memType.HeapIndex,
		}
	}

	for i, heap := range memoryProperties.MemoryHeaps {
		var flags ral.MemoryHeapFlags
		if heap.Flags&core1_0.MemoryHeapDeviceLocal != 0 {
			flags |= ral.MemoryHeapDeviceLocal
		}
		info.Heaps[i] = ral.MemoryHeapInfo{
			Flags: flags,
			Size:  uint64(heap.Size),
		}
	}

	return info
}

// convertQueueFamilies picks one native family per queue type. Compute
// and copy prefer families dedicated to them, so async work does not
// contend with the graphics family, and fall back to the most capable
// family available.
func convertQueueFamilies(families []*core1_0.QueueFamilyProperties) [ral.QueueTypeCount]ral.QueueInfo {
	graphics, compute, copyFamily := -1, -1, -1
	for index, family := range families {
		flags := family.QueueFlags
		switch {
		case flags&core1_0.QueueGraphics != 0:
			if graphics < 0 {
				graphics = index
			}
		case flags&core1_0.QueueCompute != 0:
			if compute < 0 {
				compute = index
			}
		case flags&core1_0.QueueTransfer != 0:
			if copyFamily < 0 {
				copyFamily = index
			}
		}
	}
	if graphics < 0 {
		// Every conformant implementation exposes at least one family;
		// a headless adapter without graphics still routes through it.
		graphics = 0
	}
	if compute < 0 {
		compute = graphics
	}
	if copyFamily < 0 {
		copyFamily = compute
	}

	var infos [ral.QueueTypeCount]ral.QueueInfo
	for qt, familyIndex := range [ral.QueueTypeCount]int{graphics, compute, copyFamily} {
		infos[qt] = ral.QueueInfo{
			Type:  ral.QueueType(qt),
			Count: ral.QueueCount{Known: true, Count: uint32(families[familyIndex].QueueCount)},
			Index: uint8(familyIndex),
		}
	}
	return infos
}

// physicalDeviceBackend is the per-adapter native surface. It keeps the
// native handle and the extension probes CreateDevice and the budget
// query need.
type physicalDeviceBackend struct {
	backend          *backend
	device           core1_0.PhysicalDevice
	deviceExtensions map[string]*core1_0.ExtensionProperties
	properties2      khr_get_physical_device_properties2_shim.Shim
	useMemoryBudget  bool

	reservationMu sync.Mutex
	reservations  map[int]uint64
}

func (p *physicalDeviceBackend) MemoryBudget() (ral.MemoryBudgetInfo, error) {
	if !p.useMemoryBudget {
		return ral.MemoryBudgetInfo{}, errors.Wrap(ral.ErrNotImplemented,
			"memory budget reporting is not available on this adapter")
	}

	var budgetProperties ext_memory_budget.PhysicalDeviceMemoryBudgetProperties
	memoryProperties := core1_1.PhysicalDeviceMemoryProperties2{
		NextOutData: common.NextOutData{Next: &budgetProperties},
	}
	if err := p.properties2.MemoryProperties2(&memoryProperties); err != nil {
		return ral.MemoryBudgetInfo{}, errors.Wrap(err, "querying the memory budget")
	}

	heapCount := len(memoryProperties.MemoryProperties.MemoryHeaps)
	info := ral.MemoryBudgetInfo{
		Heaps: make([]ral.MemoryBudgetValue, heapCount),
	}
	for i := 0; i < heapCount; i++ {
		info.Heaps[i] = ral.MemoryBudgetValue{
			Budget: uint64(budgetProperties.HeapBudget[i]),
			Usage:  uint64(budgetProperties.HeapUsage[i]),
		}
	}
	return info, nil
}

// ReserveMemory records the reservation hint. Vulkan has no native
// reservation call, so the hint only informs future allocation
// decisions on this adapter.
func (p *physicalDeviceBackend) ReserveMemory(heapIndex int, bytes uint64) error {
	p.reservationMu.Lock()
	defer p.reservationMu.Unlock()
	if p.reservations == nil {
		p.reservations = make(map[int]uint64)
	}
	p.reservations[heapIndex] = bytes
	return nil
}
