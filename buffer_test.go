package ral_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/onca-engine/ral"
	"github.com/onca-engine/ral/mock"
)

// newTestBuffer creates a buffer on a mocked device. The returned
// backing slice is the memory the mock Map hands out.
func newTestBuffer(t *testing.T, d *testDevice, desc ral.BufferDesc) (ral.BufferHandle, *mock.MockBufferBackend, *ral.GpuAllocation) {
	t.Helper()

	bufferBackend := mock.NewMockBufferBackend(d.ctrl)
	allocation := &ral.GpuAllocation{Size: desc.Size, Align: ral.MinAllocationAlign}
	d.backend.EXPECT().
		CreateBuffer(&desc, d.device().GpuAllocator()).
		Return(bufferBackend, allocation, ral.GpuAddress(0x1000), nil)

	buffer, err := d.device().CreateBuffer(&desc)
	require.NoError(t, err)
	return buffer, bufferBackend, allocation
}

// releaseTestBuffer releases the handle expecting the contract order:
// native destroy first, allocation free strictly after.
func releaseTestBuffer(t *testing.T, d *testDevice, buffer ral.BufferHandle, backend *mock.MockBufferBackend, allocation *ral.GpuAllocation) {
	t.Helper()
	gomock.InOrder(
		backend.EXPECT().Destroy(),
		d.strategy.EXPECT().Free(gomock.Any(), allocation),
	)
	buffer.Release()
}

func TestBufferProperties(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)

	desc := ral.BufferDesc{Size: 1024, Usage: ral.BufferUsageVertexBuffer | ral.BufferUsageCopyDst, MemoryType: ral.MemoryTypeGpu}
	buffer, backend, allocation := newTestBuffer(t, d, desc)

	require.EqualValues(t, 1024, buffer.Get().Size())
	require.Equal(t, desc.Usage, buffer.Get().Usage())
	require.Equal(t, ral.MemoryTypeGpu, buffer.Get().MemoryType())
	require.Equal(t, ral.GpuAddress(0x1000), buffer.Get().GpuAddress())
	require.Equal(t, ral.GpuAddress(0x1010), buffer.Get().GpuAddress().At(0x10))

	releaseTestBuffer(t, d, buffer, backend, allocation)
}

func TestBufferMapGpuMemoryFails(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)

	buffer, backend, allocation := newTestBuffer(t, d, ral.BufferDesc{
		Size: 256, Usage: ral.BufferUsageCopyDst, MemoryType: ral.MemoryTypeGpu,
	})

	// No Map expectation: gpu memory must be rejected before the backend.
	_, err := buffer.Get().Map(0, 0)
	require.ErrorIs(t, err, ral.ErrInvalidParameter)

	releaseTestBuffer(t, d, buffer, backend, allocation)
}

func TestBufferMapOffsetPastEnd(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)

	buffer, backend, allocation := newTestBuffer(t, d, ral.BufferDesc{
		Size: 256, Usage: ral.BufferUsageCopySrc, MemoryType: ral.MemoryTypeUpload,
	})

	_, err := buffer.Get().Map(256, 0)
	require.ErrorIs(t, err, ral.ErrInvalidParameter)

	releaseTestBuffer(t, d, buffer, backend, allocation)
}

func TestBufferMapClampsSize(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)

	buffer, backend, allocation := newTestBuffer(t, d, ral.BufferDesc{
		Size: 256, Usage: ral.BufferUsageCopySrc, MemoryType: ral.MemoryTypeUpload,
	})

	backing := make([]byte, 256)
	ptr := unsafe.Pointer(&backing[0])

	// Size 0 maps the remainder; an oversized range is clamped.
	backend.EXPECT().Map(allocation, uint64(64), uint64(192)).Return(ptr, nil)
	memory, err := buffer.Get().Map(64, 0)
	require.NoError(t, err)
	require.EqualValues(t, 64, memory.Offset())
	require.EqualValues(t, 192, memory.Size())

	backend.EXPECT().Unmap(allocation, ptr, uint64(64), uint64(192)).Return(nil)
	buffer.Get().Unmap(memory)

	backend.EXPECT().Map(allocation, uint64(0), uint64(256)).Return(ptr, nil)
	memory, err = buffer.Get().Map(0, 1<<20)
	require.NoError(t, err)
	require.EqualValues(t, 256, memory.Size())

	backend.EXPECT().Unmap(allocation, ptr, uint64(0), uint64(256)).Return(nil)
	buffer.Get().Unmap(memory)

	// A size so large that offset+size wraps around must still clamp to
	// the remainder instead of slipping past the bounds check.
	backend.EXPECT().Map(allocation, uint64(8), uint64(248)).Return(ptr, nil)
	memory, err = buffer.Get().Map(8, math.MaxUint64)
	require.NoError(t, err)
	require.EqualValues(t, 248, memory.Size())

	backend.EXPECT().Unmap(allocation, ptr, uint64(8), uint64(248)).Return(nil)
	buffer.Get().Unmap(memory)

	releaseTestBuffer(t, d, buffer, backend, allocation)
}

func TestBufferDoubleMapFails(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)

	buffer, backend, allocation := newTestBuffer(t, d, ral.BufferDesc{
		Size: 256, Usage: ral.BufferUsageCopySrc, MemoryType: ral.MemoryTypeUpload,
	})

	backing := make([]byte, 256)
	ptr := unsafe.Pointer(&backing[0])

	backend.EXPECT().Map(allocation, uint64(0), uint64(256)).Return(ptr, nil)
	memory, err := buffer.Get().Map(0, 0)
	require.NoError(t, err)

	// The second map must fail without reaching the backend.
	_, err = buffer.Get().Map(0, 0)
	require.ErrorIs(t, err, ral.ErrInvalidParameter)

	backend.EXPECT().Unmap(allocation, ptr, uint64(0), uint64(256)).Return(nil)
	buffer.Get().Unmap(memory)

	// After the unmap, mapping works again.
	backend.EXPECT().Map(allocation, uint64(0), uint64(256)).Return(ptr, nil)
	memory, err = buffer.Get().Map(0, 0)
	require.NoError(t, err)
	backend.EXPECT().Unmap(allocation, ptr, uint64(0), uint64(256)).Return(nil)
	buffer.Get().Unmap(memory)

	releaseTestBuffer(t, d, buffer, backend, allocation)
}

func TestBufferUploadMappingIsWriteOnly(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)

	buffer, backend, allocation := newTestBuffer(t, d, ral.BufferDesc{
		Size: 16, Usage: ral.BufferUsageCopySrc, MemoryType: ral.MemoryTypeUpload,
	})

	backing := make([]byte, 16)
	ptr := unsafe.Pointer(&backing[0])
	backend.EXPECT().Map(allocation, uint64(0), uint64(16)).Return(ptr, nil)

	memory, err := buffer.Get().Map(0, 0)
	require.NoError(t, err)
	require.True(t, memory.IsWritable())
	require.False(t, memory.IsReadable())

	n, ok := memory.Write([]byte("staging data run"))
	require.True(t, ok)
	require.Equal(t, 16, n)
	require.Equal(t, []byte("staging data run"), backing)

	_, ok = memory.Read(make([]byte, 16))
	require.False(t, ok)

	backend.EXPECT().Unmap(allocation, ptr, uint64(0), uint64(16)).Return(nil)
	buffer.Get().Unmap(memory)

	releaseTestBuffer(t, d, buffer, backend, allocation)
}

func TestBufferReadbackMappingIsReadOnly(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)

	buffer, backend, allocation := newTestBuffer(t, d, ral.BufferDesc{
		Size: 8, Usage: ral.BufferUsageCopyDst, MemoryType: ral.MemoryTypeReadback,
	})

	backing := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	ptr := unsafe.Pointer(&backing[0])
	backend.EXPECT().Map(allocation, uint64(0), uint64(8)).Return(ptr, nil)

	memory, err := buffer.Get().Map(0, 0)
	require.NoError(t, err)
	require.True(t, memory.IsReadable())
	require.False(t, memory.IsWritable())

	dst := make([]byte, 8)
	n, ok := memory.Read(dst)
	require.True(t, ok)
	require.Equal(t, 8, n)
	require.Equal(t, backing, dst)

	_, ok = memory.Write([]byte{9})
	require.False(t, ok)

	backend.EXPECT().Unmap(allocation, ptr, uint64(0), uint64(8)).Return(nil)
	buffer.Get().Unmap(memory)

	releaseTestBuffer(t, d, buffer, backend, allocation)
}

func TestBufferMapBackendFailureResetsState(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)

	buffer, backend, allocation := newTestBuffer(t, d, ral.BufferDesc{
		Size: 64, Usage: ral.BufferUsageCopySrc, MemoryType: ral.MemoryTypeUpload,
	})

	mapErr := ral.ErrOutOfHostMemory
	backend.EXPECT().Map(allocation, uint64(0), uint64(64)).Return(unsafe.Pointer(nil), mapErr)
	_, err := buffer.Get().Map(0, 0)
	require.ErrorIs(t, err, ral.ErrOutOfHostMemory)

	// The failed attempt must not leave a phantom mapping behind.
	backing := make([]byte, 64)
	ptr := unsafe.Pointer(&backing[0])
	backend.EXPECT().Map(allocation, uint64(0), uint64(64)).Return(ptr, nil)
	memory, err := buffer.Get().Map(0, 0)
	require.NoError(t, err)

	backend.EXPECT().Unmap(allocation, ptr, uint64(0), uint64(64)).Return(nil)
	buffer.Get().Unmap(memory)

	releaseTestBuffer(t, d, buffer, backend, allocation)
}

func TestBufferUnmapViolationsAreAdvisory(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)

	buffer, backend, allocation := newTestBuffer(t, d, ral.BufferDesc{
		Size: 32, Usage: ral.BufferUsageCopySrc, MemoryType: ral.MemoryTypeUpload,
	})

	// Unmapping an unmapped buffer is logged and ignored, and must not
	// reach the backend.
	buffer.Get().Unmap(ral.MappedMemory{})

	backing := make([]byte, 32)
	ptr := unsafe.Pointer(&backing[0])
	backend.EXPECT().Map(allocation, uint64(0), uint64(32)).Return(ptr, nil)
	memory, err := buffer.Get().Map(0, 0)
	require.NoError(t, err)

	// A foreign mapping is rejected without touching the live one.
	buffer.Get().Unmap(ral.MappedMemory{})

	backend.EXPECT().Unmap(allocation, ptr, uint64(0), uint64(32)).Return(nil)
	buffer.Get().Unmap(memory)

	releaseTestBuffer(t, d, buffer, backend, allocation)
}

func TestNewBufferRange(t *testing.T) {
	r, err := ral.NewBufferRange(4, 8)
	require.NoError(t, err)
	require.Equal(t, ral.BufferRange{Offset: 4, Size: 8}, r)

	_, err = ral.NewBufferRange(0, 0)
	require.ErrorIs(t, err, ral.ErrInvalidParameter)
	_, err = ral.NewBufferRange(2, 8)
	require.ErrorIs(t, err, ral.ErrInvalidParameter)
	_, err = ral.NewBufferRange(0, 6)
	require.ErrorIs(t, err, ral.ErrInvalidParameter)
}

func TestBufferRangeValidate(t *testing.T) {
	require.NoError(t, ral.BufferRange{Offset: 4, Size: 8}.Validate(64))
	require.ErrorIs(t, ral.BufferRange{Offset: 0, Size: 0}.Validate(64), ral.ErrInvalidParameter)
	require.ErrorIs(t, ral.BufferRange{Offset: 2, Size: 8}.Validate(64), ral.ErrInvalidParameter)
	require.ErrorIs(t, ral.BufferRange{Offset: 0, Size: 6}.Validate(64), ral.ErrInvalidParameter)
	require.ErrorIs(t, ral.BufferRange{Offset: 32, Size: 64}.Validate(64), ral.ErrInvalidParameter)

	// Ranges built to wrap offset+size around uint64 must still fail.
	require.ErrorIs(t, ral.BufferRange{Offset: math.MaxUint64 - 3, Size: 8}.Validate(64), ral.ErrInvalidParameter)
	require.ErrorIs(t, ral.BufferRange{Offset: 32, Size: math.MaxUint64 - 31}.Validate(64), ral.ErrInvalidParameter)
}

func TestStructuredBufferViewDescValidate(t *testing.T) {
	require.NoError(t, ral.StructuredBufferViewDesc{ElementCount: 4, ElementSize: 16}.Validate(64))
	require.ErrorIs(t, ral.StructuredBufferViewDesc{ElementCount: 0, ElementSize: 16}.Validate(64), ral.ErrInvalidParameter)
	require.ErrorIs(t, ral.StructuredBufferViewDesc{ElementCount: 4, ElementSize: 6}.Validate(64), ral.ErrInvalidParameter)
	require.ErrorIs(t, ral.StructuredBufferViewDesc{Offset: 32, ElementCount: 4, ElementSize: 16}.Validate(64), ral.ErrInvalidParameter)

	// Counts and offsets built to wrap count*size+offset must still fail.
	require.ErrorIs(t, ral.StructuredBufferViewDesc{ElementCount: 1 << 62, ElementSize: 16}.Validate(64), ral.ErrInvalidParameter)
	require.ErrorIs(t, ral.StructuredBufferViewDesc{Offset: math.MaxUint64 - 3, ElementCount: 4, ElementSize: 16}.Validate(64), ral.ErrInvalidParameter)
}
