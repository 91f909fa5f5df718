package ral

import (
	"golang.org/x/exp/slog"
)

// BufferUsage describes the ways a buffer may be used. At least one
// usage is required at creation.
type BufferUsage uint16

const (
	// BufferUsageCopySrc allows the buffer to be the source of copies.
	BufferUsageCopySrc BufferUsage = 1 << iota
	// BufferUsageCopyDst allows the buffer to be the destination of copies.
	BufferUsageCopyDst
	// BufferUsageConstantBuffer allows binding as a constant buffer.
	BufferUsageConstantBuffer
	// BufferUsageVertexBuffer allows binding as a vertex buffer.
	BufferUsageVertexBuffer
	// BufferUsageIndexBuffer allows binding as an index buffer.
	BufferUsageIndexBuffer
	// BufferUsageIndirectArguments allows use as an indirect argument source.
	BufferUsageIndirectArguments
	// BufferUsageConditionalRendering allows use as a conditional rendering predicate.
	BufferUsageConditionalRendering
	// BufferUsageReadBuffer allows read-only shader access (texel or structured).
	BufferUsageReadBuffer
	// BufferUsageReadWriteBuffer allows read-write shader access.
	BufferUsageReadWriteBuffer
)

// BufferDesc describes a buffer to be created.
type BufferDesc struct {
	// Size of the buffer in bytes. Must be non-zero.
	Size uint64
	// Usage the buffer will be created with.
	Usage BufferUsage
	// MemoryType the backing allocation must come from.
	MemoryType MemoryType
	// AllocFlags tune the backing allocation.
	AllocFlags MemoryAllocationFlags
}

func validateBufferDesc(desc *BufferDesc) error {
	if desc == nil {
		return invalidParameterf("buffer desc may not be nil")
	}
	if desc.Size == 0 {
		return invalidParameterf("buffer size may not be 0")
	}
	if desc.Usage == 0 {
		return invalidParameterf("buffer needs at least one usage")
	}
	return nil
}

// BufferRange is a byte range within a buffer. Offset and Size must both
// be multiples of 4.
type BufferRange struct {
	Offset uint64
	Size   uint64
}

// NewBufferRange builds a byte range of size bytes starting at offset.
// Both must be multiples of 4 and size must be non-zero; whether the
// range fits a particular buffer is checked by Validate.
func NewBufferRange(offset, size uint64) (BufferRange, error) {
	r := BufferRange{Offset: offset, Size: size}
	if err := r.validateShape(); err != nil {
		return BufferRange{}, err
	}
	return r, nil
}

func (r BufferRange) validateShape() error {
	if r.Size == 0 {
		return invalidParameterf("buffer range size may not be 0")
	}
	if r.Offset%4 != 0 || r.Size%4 != 0 {
		return invalidParameterf("buffer range (offset: %d, size: %d) must be 4 byte aligned", r.Offset, r.Size)
	}
	return nil
}

func (r BufferRange) Validate(bufferSize uint64) error {
	if err := r.validateShape(); err != nil {
		return err
	}
	// Subtraction form, the sum can wrap for adversarial sizes.
	if r.Offset > bufferSize || r.Size > bufferSize-r.Offset {
		return invalidParameterf("buffer range (offset: %d, size: %d) exceeds the buffer size of %d", r.Offset, r.Size, bufferSize)
	}
	return nil
}

// StructuredBufferViewDesc describes a shader-visible view over an array
// of equally sized elements.
type StructuredBufferViewDesc struct {
	// Offset of the first element in bytes, a multiple of 4.
	Offset uint64
	// ElementCount is the number of elements in the view.
	ElementCount uint64
	// ElementSize is the stride of one element in bytes, a multiple of 4.
	ElementSize uint64
}

func (d StructuredBufferViewDesc) Validate(bufferSize uint64) error {
	if d.ElementCount == 0 || d.ElementSize == 0 {
		return invalidParameterf("structured buffer view needs a non-zero element count and size")
	}
	if d.Offset%4 != 0 || d.ElementSize%4 != 0 {
		return invalidParameterf("structured buffer view (offset: %d, element size: %d) must be 4 byte aligned", d.Offset, d.ElementSize)
	}
	// Division form, the product and the sum can both wrap.
	if d.Offset > bufferSize || d.ElementCount > (bufferSize-d.Offset)/d.ElementSize {
		return invalidParameterf("structured buffer view of %d elements of %d bytes at offset %d exceeds the buffer size of %d",
			d.ElementCount, d.ElementSize, d.Offset, bufferSize)
	}
	return nil
}

// TexelBufferViewDesc describes a formatted, texel-addressed view of a
// buffer range.
type TexelBufferViewDesc struct {
	// Range of the buffer covered by the view.
	Range BufferRange
	// Format the texels are interpreted as.
	Format VertexFormat
}

func (d TexelBufferViewDesc) Validate(bufferSize uint64) error {
	if d.Format == VertexFormatUndefined {
		return invalidParameterf("texel buffer view needs a format")
	}
	if err := d.Range.Validate(bufferSize); err != nil {
		return err
	}
	if d.Range.Size%uint64(d.Format.ByteSize()) != 0 {
		return invalidParameterf("texel buffer view size %d is not a multiple of the %v texel size", d.Range.Size, d.Format)
	}
	return nil
}

// Buffer is a linear GPU memory resource.
type Buffer struct {
	device     WeakHandle[Device]
	backend    BufferBackend
	allocation *GpuAllocation
	address    GpuAddress
	desc       BufferDesc
	logger     *slog.Logger

	validation bufferValidation
}

// BufferHandle is the counted handle to a Buffer.
type BufferHandle = Handle[Buffer]

func newBuffer(device *Device, backend BufferBackend, allocation *GpuAllocation, address GpuAddress, desc BufferDesc) BufferHandle {
	return NewHandle(Buffer{
		device:     device.self.Clone(),
		backend:    backend,
		allocation: allocation,
		address:    address,
		desc:       desc,
		logger:     device.logger,
	}, (*Buffer).destroy)
}

func (b *Buffer) destroy() {
	b.backend.Destroy()
	if device, ok := b.device.Upgrade(); ok {
		device.Get().allocator.Free(b.allocation)
		device.Release()
	} else {
		b.logger.Error("buffer outlived its device, leaking the backing allocation")
	}
	b.device.Release()
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() uint64 {
	return b.desc.Size
}

// Usage returns the usages the buffer was created with.
func (b *Buffer) Usage() BufferUsage {
	return b.desc.Usage
}

// MemoryType returns the memory type backing the buffer.
func (b *Buffer) MemoryType() MemoryType {
	return b.desc.MemoryType
}

// GpuAddress returns the buffer's GPU virtual address.
func (b *Buffer) GpuAddress() GpuAddress {
	return b.address
}

// Map maps a range of the buffer into host memory. Only buffers in
// Upload or Readback memory can be mapped; Upload mappings are
// write-only and Readback mappings are read-only. A size of 0 maps the
// remainder of the buffer, and a size past the end is clamped. At most
// one mapping may be live at a time.
func (b *Buffer) Map(offset, size uint64) (MappedMemory, error) {
	if b.desc.MemoryType == MemoryTypeGpu {
		return MappedMemory{}, invalidParameterf("buffers in gpu memory cannot be mapped")
	}
	if offset >= b.desc.Size {
		return MappedMemory{}, invalidParameterf("map offset %d is past the end of the %d byte buffer", offset, b.desc.Size)
	}
	// Subtraction form, offset+size can wrap for adversarial sizes.
	if size == 0 || size > b.desc.Size-offset {
		size = b.desc.Size - offset
	}
	if err := b.validation.checkMap(); err != nil {
		return MappedMemory{}, err
	}
	ptr, err := b.backend.Map(b.allocation, offset, size)
	if err != nil {
		b.validation.abortMap()
		return MappedMemory{}, wrapBackendErr(err, "mapping %d bytes at offset %d", size, offset)
	}
	b.validation.recordMap(ptr)
	return MappedMemory{
		ptr:      ptr,
		offset:   offset,
		size:     size,
		readable: b.desc.MemoryType == MemoryTypeReadback,
		writable: b.desc.MemoryType == MemoryTypeUpload,
	}, nil
}

// Unmap unmaps a mapping obtained from Map. The mapping must not be
// used afterwards. Unmap is often called from teardown paths, so a
// contract violation is logged and ignored instead of propagated.
func (b *Buffer) Unmap(memory MappedMemory) {
	if err := b.validation.checkUnmap(memory.ptr); err != nil {
		b.logger.Error("ignoring invalid unmap", "err", err)
		return
	}
	if err := b.backend.Unmap(b.allocation, memory.ptr, memory.offset, memory.size); err != nil {
		b.logger.Error("failed to unmap buffer memory", "err", err, "offset", memory.offset, "size", memory.size)
	}
	b.validation.recordUnmap()
}

// Backend returns the backend token. Only backend implementations have
// business calling this.
func (b *Buffer) Backend() BufferBackend {
	return b.backend
}
