package memutils_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"

	"github.com/onca-engine/ral/internal/memutils"
)

func TestDetailedStatisticsClear(t *testing.T) {
	var stats memutils.DetailedStatistics
	stats.AddAllocation(100)
	stats.AddUnusedRange(50)

	stats.Clear()
	require.Equal(t, 0, stats.AllocationCount)
	require.Equal(t, 0, stats.UnusedRangeCount)
	require.Equal(t, uint64(math.MaxUint64), stats.AllocationSizeMin)
	require.Equal(t, uint64(0), stats.AllocationSizeMax)
}

func TestDetailedStatisticsTracksExtremes(t *testing.T) {
	var stats memutils.DetailedStatistics
	stats.Clear()

	stats.AddAllocation(100)
	stats.AddAllocation(10)
	stats.AddAllocation(1000)
	stats.AddUnusedRange(4)
	stats.AddUnusedRange(64)

	require.Equal(t, 3, stats.AllocationCount)
	require.Equal(t, uint64(1110), stats.AllocationBytes)
	require.Equal(t, uint64(10), stats.AllocationSizeMin)
	require.Equal(t, uint64(1000), stats.AllocationSizeMax)
	require.Equal(t, 2, stats.UnusedRangeCount)
	require.Equal(t, uint64(4), stats.UnusedRangeSizeMin)
	require.Equal(t, uint64(64), stats.UnusedRangeSizeMax)
}

func TestDetailedStatisticsMerge(t *testing.T) {
	var a, b memutils.DetailedStatistics
	a.Clear()
	b.Clear()

	a.HeapCount = 1
	a.HeapBytes = 1 << 20
	a.AddAllocation(128)
	b.HeapCount = 2
	b.HeapBytes = 2 << 20
	b.AddAllocation(64)
	b.AddAllocation(4096)
	b.AddUnusedRange(32)

	a.AddDetailedStatistics(&b)
	require.Equal(t, 3, a.HeapCount)
	require.Equal(t, uint64(3<<20), a.HeapBytes)
	require.Equal(t, 3, a.AllocationCount)
	require.Equal(t, uint64(64), a.AllocationSizeMin)
	require.Equal(t, uint64(4096), a.AllocationSizeMax)
	require.Equal(t, 1, a.UnusedRangeCount)
}

func TestDetailedStatisticsPrintJson(t *testing.T) {
	var stats memutils.DetailedStatistics
	stats.Clear()
	stats.HeapCount = 2
	stats.HeapBytes = 8192
	stats.AddAllocation(1024)
	stats.AddAllocation(2048)

	writer := jwriter.NewWriter()
	obj := writer.Object()
	stats.PrintJson(&obj)
	obj.End()

	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(writer.Bytes(), &decoded))
	require.Equal(t, float64(2), decoded["HeapCount"])
	require.Equal(t, float64(8192), decoded["HeapBytes"])
	require.Equal(t, float64(2), decoded["AllocationCount"])
	require.Equal(t, float64(3072), decoded["AllocationBytes"])
	require.Equal(t, float64(1024), decoded["AllocationSizeMin"])
	require.Equal(t, float64(2048), decoded["AllocationSizeMax"])
}
