package gpualloc

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"

	"github.com/onca-engine/ral"
	"github.com/onca-engine/ral/internal/memutils"
)

// dedicatedAllocationList tracks the outstanding dedicated allocations of
// one memory type.
type dedicatedAllocationList struct {
	mutex memutils.OptionalRWMutex

	count       int
	allocations map[*ral.GpuAllocation]struct{}
}

func (l *dedicatedAllocationList) Init(useMutex bool) {
	l.mutex = memutils.OptionalRWMutex{UseMutex: useMutex}
	l.allocations = make(map[*ral.GpuAllocation]struct{})
}

func (l *dedicatedAllocationList) Validate() error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if l.count != len(l.allocations) {
		return errors.Errorf("the listed number of dedicated allocations (%d) does not match the actual number of allocations (%d)", l.count, len(l.allocations))
	}

	return nil
}

func (l *dedicatedAllocationList) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	for alloc := range l.allocations {
		stats.HeapCount++
		stats.HeapBytes += alloc.Size
		stats.AddAllocation(alloc.Size)
	}
}

func (l *dedicatedAllocationList) BuildStatsString(s *jwriter.ArrayState) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	for alloc := range l.allocations {
		o := s.Object()
		o.Name("Size").Float64(float64(alloc.Size))
		o.Name("Align").Float64(float64(alloc.Align))
		o.End()
	}
}

func (l *dedicatedAllocationList) IsEmpty() bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.count == 0
}

func (l *dedicatedAllocationList) Register(alloc *ral.GpuAllocation) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.allocations[alloc] = struct{}{}
	l.count++
}

// Unregister removes an allocation, reporting false when it was never
// registered (or already freed).
func (l *dedicatedAllocationList) Unregister(alloc *ral.GpuAllocation) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if _, ok := l.allocations[alloc]; !ok {
		return false
	}
	delete(l.allocations, alloc)
	l.count--
	return true
}
