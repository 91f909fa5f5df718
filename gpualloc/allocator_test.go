package gpualloc_test

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"

	"github.com/onca-engine/ral"
	"github.com/onca-engine/ral/gpualloc"
	"github.com/onca-engine/ral/internal/memutils"
	"github.com/onca-engine/ral/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

// expectHeap wires one AllocateHeap call on the provider and returns the
// heap handle the provider will hand out.
func expectHeap(ctrl *gomock.Controller, provider *mock.MockHeapProvider, size uint64, msaaSupport bool, memoryType ral.MemoryType) ral.MemoryHeapHandle {
	heap := ral.NewMemoryHeap(mock.NewMockMemoryHeapBackend(ctrl), memoryType, msaaSupport)
	provider.EXPECT().AllocateHeap(size, msaaSupport, memoryType).Return(heap, nil)
	return heap
}

func TestDedicatedAllocRoundsUpToAlignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockHeapProvider(ctrl)
	allocator := gpualloc.New(gpualloc.CreateOptions{Logger: testLogger()})

	expectHeap(ctrl, provider, 2*ral.MinAllocationAlign, false, ral.MemoryTypeGpu)

	allocation, err := allocator.Alloc(provider, nil, ral.MinAllocationAlign+1,
		ral.GpuAllocationDesc{MemoryType: ral.MemoryTypeGpu},
		ral.ApiMemoryRequest{Alignment: ral.MinAllocationAlign})
	require.NoError(t, err)
	require.Equal(t, 2*ral.MinAllocationAlign, allocation.Size)
	require.Equal(t, ral.MinAllocationAlign, allocation.Align)
	require.Equal(t, uint64(0), allocation.Offset)
	require.True(t, allocation.Dedicated)
	require.False(t, allocator.IsEmpty())

	provider.EXPECT().FreeHeap(allocation.Heap)
	allocator.Free(provider, allocation)
	require.True(t, allocator.IsEmpty())
}

func TestDedicatedAllocDefaultsAlignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockHeapProvider(ctrl)
	allocator := gpualloc.New(gpualloc.CreateOptions{Logger: testLogger()})

	// A zero backend alignment falls back to the minimum heap alignment.
	expectHeap(ctrl, provider, ral.MinAllocationAlign, false, ral.MemoryTypeUpload)

	allocation, err := allocator.Alloc(provider, nil, 256,
		ral.GpuAllocationDesc{MemoryType: ral.MemoryTypeUpload},
		ral.ApiMemoryRequest{})
	require.NoError(t, err)
	require.Equal(t, ral.MinAllocationAlign, allocation.Align)

	provider.EXPECT().FreeHeap(allocation.Heap)
	allocator.Free(provider, allocation)
}

func TestDedicatedAllocMsaaAlignmentRequestsMsaaHeap(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockHeapProvider(ctrl)
	allocator := gpualloc.New(gpualloc.CreateOptions{Logger: testLogger()})

	expectHeap(ctrl, provider, ral.MinMsaaAllocationAlign, true, ral.MemoryTypeGpu)

	allocation, err := allocator.Alloc(provider, nil, 1024,
		ral.GpuAllocationDesc{MemoryType: ral.MemoryTypeGpu},
		ral.ApiMemoryRequest{Alignment: ral.MinMsaaAllocationAlign})
	require.NoError(t, err)
	require.True(t, allocation.Heap.Get().HasMsaaSupport())

	provider.EXPECT().FreeHeap(allocation.Heap)
	allocator.Free(provider, allocation)
}

func TestDedicatedAllocHeapFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockHeapProvider(ctrl)
	allocator := gpualloc.New(gpualloc.CreateOptions{Logger: testLogger()})

	provider.EXPECT().AllocateHeap(gomock.Any(), false, ral.MemoryTypeGpu).
		Return(ral.MemoryHeapHandle{}, ral.ErrOutOfDeviceMemory)

	_, err := allocator.Alloc(provider, nil, 1024,
		ral.GpuAllocationDesc{MemoryType: ral.MemoryTypeGpu},
		ral.ApiMemoryRequest{})
	require.ErrorIs(t, err, ral.ErrOutOfDeviceMemory)
	require.True(t, allocator.IsEmpty())
}

func TestDedicatedFreeNilIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockHeapProvider(ctrl)
	allocator := gpualloc.New(gpualloc.CreateOptions{Logger: testLogger()})

	allocator.Free(provider, nil)
}

func TestDedicatedFreeUnknownAllocationIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockHeapProvider(ctrl)
	allocator := gpualloc.New(gpualloc.CreateOptions{Logger: testLogger()})

	// No FreeHeap expectation: an allocation this allocator never
	// produced must not release anything.
	foreign := &ral.GpuAllocation{
		Heap: ral.NewMemoryHeap(mock.NewMockMemoryHeapBackend(ctrl), ral.MemoryTypeGpu, false),
		Size: 4096,
	}
	allocator.Free(provider, foreign)

	// A double free is likewise swallowed.
	expectHeap(ctrl, provider, ral.MinAllocationAlign, false, ral.MemoryTypeGpu)
	allocation, err := allocator.Alloc(provider, nil, 64,
		ral.GpuAllocationDesc{MemoryType: ral.MemoryTypeGpu},
		ral.ApiMemoryRequest{})
	require.NoError(t, err)

	provider.EXPECT().FreeHeap(allocation.Heap)
	allocator.Free(provider, allocation)
	allocator.Free(provider, allocation)
}

func TestDedicatedValidateAndStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockHeapProvider(ctrl)
	allocator := gpualloc.New(gpualloc.CreateOptions{Logger: testLogger(), SingleGoroutine: true})

	require.NoError(t, allocator.Validate())

	expectHeap(ctrl, provider, ral.MinAllocationAlign, false, ral.MemoryTypeGpu)
	small, err := allocator.Alloc(provider, nil, 64,
		ral.GpuAllocationDesc{MemoryType: ral.MemoryTypeGpu},
		ral.ApiMemoryRequest{})
	require.NoError(t, err)

	expectHeap(ctrl, provider, 4*ral.MinAllocationAlign, false, ral.MemoryTypeReadback)
	large, err := allocator.Alloc(provider, nil, 4*ral.MinAllocationAlign,
		ral.GpuAllocationDesc{MemoryType: ral.MemoryTypeReadback},
		ral.ApiMemoryRequest{})
	require.NoError(t, err)

	require.NoError(t, allocator.Validate())

	var stats memutils.DetailedStatistics
	allocator.CalculateStatistics(&stats)
	require.Equal(t, 2, stats.HeapCount)
	require.Equal(t, 2, stats.AllocationCount)
	require.Equal(t, 5*ral.MinAllocationAlign, stats.HeapBytes)
	require.Equal(t, 5*ral.MinAllocationAlign, stats.AllocationBytes)
	require.Equal(t, ral.MinAllocationAlign, stats.AllocationSizeMin)
	require.Equal(t, 4*ral.MinAllocationAlign, stats.AllocationSizeMax)

	provider.EXPECT().FreeHeap(small.Heap)
	provider.EXPECT().FreeHeap(large.Heap)
	allocator.Free(provider, small)
	allocator.Free(provider, large)

	allocator.CalculateStatistics(&stats)
	require.Equal(t, 0, stats.AllocationCount)
}

func TestDedicatedBuildStatsString(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockHeapProvider(ctrl)
	allocator := gpualloc.New(gpualloc.CreateOptions{Logger: testLogger()})

	expectHeap(ctrl, provider, ral.MinAllocationAlign, false, ral.MemoryTypeUpload)
	allocation, err := allocator.Alloc(provider, nil, 128,
		ral.GpuAllocationDesc{MemoryType: ral.MemoryTypeUpload},
		ral.ApiMemoryRequest{})
	require.NoError(t, err)

	var stats map[string][]map[string]float64
	require.NoError(t, json.Unmarshal([]byte(allocator.BuildStatsString()), &stats))
	require.Len(t, stats["Gpu"], 0)
	require.Len(t, stats["Upload"], 1)
	require.Equal(t, float64(ral.MinAllocationAlign), stats["Upload"][0]["Size"])
	require.Equal(t, float64(ral.MinAllocationAlign), stats["Upload"][0]["Align"])

	provider.EXPECT().FreeHeap(allocation.Heap)
	allocator.Free(provider, allocation)
}
