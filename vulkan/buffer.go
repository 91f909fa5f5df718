package vulkan

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"

	"github.com/onca-engine/ral"
)

func (d *deviceBackend) CreateBuffer(desc *ral.BufferDesc, allocator *ral.GpuAllocator) (ral.BufferBackend, *ral.GpuAllocation, ral.GpuAddress, error) {
	buffer, res, err := d.device.CreateBuffer(nil, core1_0.BufferCreateInfo{
		Size:        int(desc.Size),
		Usage:       vkBufferUsage(desc.Usage),
		SharingMode: core1_0.SharingModeExclusive,
	})
	if err != nil {
		return nil, nil, 0, ralError(res, errors.Wrap(err, "creating a vulkan buffer"))
	}

	memReqs := buffer.MemoryRequirements()
	request := ral.ApiMemoryRequest{
		Alignment:   uint64(memReqs.Alignment),
		MemoryTypes: usableMemoryTypes(allocator.MemoryInfo(), memReqs.MemoryTypeBits),
	}

	allocation, err := allocator.Alloc(uint64(memReqs.Size), ral.GpuAllocationDesc{
		MemoryType: desc.MemoryType,
		Flags:      desc.AllocFlags,
	}, request)
	if err != nil {
		buffer.Destroy(nil)
		return nil, nil, 0, err
	}

	memory := nativeHeapMemory(allocation.Heap)
	res, err = buffer.BindBufferMemory(memory, int(allocation.Offset))
	if err != nil {
		buffer.Destroy(nil)
		allocator.Free(allocation)
		return nil, nil, 0, ralError(res, errors.Wrap(err, "binding buffer memory"))
	}

	// Device addresses need the buffer-device-address feature, which
	// this backend does not enable. Address 0 means "not addressable".
	return &bufferBackend{buffer: buffer, memory: memory}, allocation, 0, nil
}

// usableMemoryTypes maps a native memoryTypeBits mask to the RAL memory
// classes that have at least one compatible native type.
func usableMemoryTypes(memInfo *ral.MemoryInfo, typeBits uint32) []ral.MemoryType {
	var classes []ral.MemoryType
	for class := ral.MemoryType(0); int(class) < ral.MemoryTypeCount; class++ {
		index, err := findMemoryTypeIndex(memInfo, class)
		if err != nil {
			continue
		}
		if typeBits&(1<<uint(index)) != 0 {
			classes = append(classes, class)
		}
	}
	return classes
}

// nativeHeapMemory digs the device memory out of a RAL heap handle.
func nativeHeapMemory(heap ral.MemoryHeapHandle) core1_0.DeviceMemory {
	return heap.Get().Backend().(*memoryHeapBackend).memory
}

type bufferBackend struct {
	buffer core1_0.Buffer
	memory core1_0.DeviceMemory
}

func (b *bufferBackend) Map(allocation *ral.GpuAllocation, offset, size uint64) (unsafe.Pointer, error) {
	ptr, res, err := b.memory.Map(int(allocation.Offset+offset), int(size), 0)
	if err != nil {
		return nil, ralError(res, errors.Wrap(err, "mapping buffer memory"))
	}
	return ptr, nil
}

func (b *bufferBackend) Unmap(allocation *ral.GpuAllocation, ptr unsafe.Pointer, offset, size uint64) error {
	b.memory.Unmap()
	return nil
}

func (b *bufferBackend) Destroy() {
	b.buffer.Destroy(nil)
}
