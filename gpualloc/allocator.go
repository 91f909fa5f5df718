// Package gpualloc provides GPU memory allocation strategies for the RAL.
//
// The only strategy currently shipped is the DedicatedAllocator, which
// backs every allocation with its own native heap. It is simple,
// predictable and wasteful; applications that create many small
// resources should plug in a suballocating strategy of their own.
package gpualloc

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"

	"github.com/onca-engine/ral"
	"github.com/onca-engine/ral/internal/memutils"
)

// CreateOptions configures a DedicatedAllocator.
type CreateOptions struct {
	// Logger receives diagnostics for contract violations. Defaults to
	// slog.Default.
	Logger *slog.Logger
	// SingleGoroutine skips internal locking. Only set it when all
	// resource creation and destruction happens on one goroutine.
	SingleGoroutine bool
}

// DedicatedAllocator is a ral.GpuAllocatorStrategy that gives every
// allocation a dedicated native heap. Outstanding allocations are
// tracked per memory type so leaks show up in stats and Validate.
type DedicatedAllocator struct {
	logger *slog.Logger
	lists  [ral.MemoryTypeCount]dedicatedAllocationList
}

var _ ral.GpuAllocatorStrategy = (*DedicatedAllocator)(nil)

// New creates a DedicatedAllocator.
func New(options CreateOptions) *DedicatedAllocator {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	allocator := &DedicatedAllocator{logger: logger}
	for i := range allocator.lists {
		allocator.lists[i].Init(!options.SingleGoroutine)
	}
	return allocator
}

// Alloc satisfies a request with a fresh heap of exactly the aligned
// size.
func (a *DedicatedAllocator) Alloc(device ral.HeapProvider, memInfo *ral.MemoryInfo, size uint64, desc ral.GpuAllocationDesc, req ral.ApiMemoryRequest) (*ral.GpuAllocation, error) {
	alignment := req.Alignment
	if alignment == 0 {
		alignment = ral.MinAllocationAlign
	}
	memutils.DebugCheckPow2(alignment, "allocation alignment")

	alignedSize := memutils.AlignUp(size, alignment)
	msaaSupport := alignment >= ral.MinMsaaAllocationAlign

	heap, err := device.AllocateHeap(alignedSize, msaaSupport, desc.MemoryType)
	if err != nil {
		return nil, err
	}

	allocation := &ral.GpuAllocation{
		Heap:      heap,
		Offset:    0,
		Size:      alignedSize,
		Align:     alignment,
		Dedicated: true,
	}
	a.lists[desc.MemoryType].Register(allocation)
	return allocation, nil
}

// Free releases the allocation's heap. An allocation this allocator
// never produced (or already freed) is logged and ignored, since Free
// runs on teardown paths.
func (a *DedicatedAllocator) Free(device ral.HeapProvider, allocation *ral.GpuAllocation) {
	if allocation == nil {
		return
	}
	memoryType := allocation.Heap.Get().MemoryType()
	if !a.lists[memoryType].Unregister(allocation) {
		a.logger.Error("freeing an unknown GPU allocation, ignoring",
			slog.Uint64("size", allocation.Size),
			slog.String("memoryType", memoryType.String()))
		return
	}
	device.FreeHeap(allocation.Heap)
}

// Validate checks internal bookkeeping consistency.
func (a *DedicatedAllocator) Validate() error {
	for i := range a.lists {
		if err := a.lists[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsEmpty reports whether no allocations are outstanding.
func (a *DedicatedAllocator) IsEmpty() bool {
	for i := range a.lists {
		if !a.lists[i].IsEmpty() {
			return false
		}
	}
	return true
}

// CalculateStatistics aggregates the outstanding allocations into stats.
func (a *DedicatedAllocator) CalculateStatistics(stats *memutils.DetailedStatistics) {
	stats.Clear()
	for i := range a.lists {
		a.lists[i].AddDetailedStatistics(stats)
	}
}

// BuildStatsString writes a JSON description of the outstanding
// allocations, grouped by memory type.
func (a *DedicatedAllocator) BuildStatsString() string {
	writer := jwriter.NewWriter()
	obj := writer.Object()
	for i := range a.lists {
		arr := obj.Name(ral.MemoryType(i).String()).Array()
		a.lists[i].BuildStatsString(&arr)
		arr.End()
	}
	obj.End()
	return string(writer.Bytes())
}
