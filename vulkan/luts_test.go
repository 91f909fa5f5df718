package vulkan

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"

	"github.com/onca-engine/ral"
)

func TestFormatRoundTrip(t *testing.T) {
	for format, vk := range formatToVk {
		back, ok := FormatFromVk(vk)
		require.True(t, ok, "no reverse mapping for %s", format)
		require.Equal(t, format, back)
	}
}

func TestFormatTypelessHasNoVkEquivalent(t *testing.T) {
	for _, format := range []ral.Format{
		ral.FormatR32G32B32A32Typeless,
		ral.FormatR16G16Typeless,
		ral.FormatR8Typeless,
	} {
		_, ok := VkFormat(format)
		require.False(t, ok, "%s should not map to a native format", format)
	}
}

func TestBufferUsageMapping(t *testing.T) {
	flags := vkBufferUsage(ral.BufferUsageCopySrc | ral.BufferUsageVertexBuffer)
	require.Equal(t, core1_0.BufferUsageTransferSrc|core1_0.BufferUsageVertexBuffer, flags)

	flags = vkBufferUsage(ral.BufferUsageReadWriteBuffer)
	require.NotZero(t, flags&core1_0.BufferUsageStorageBuffer)
	require.NotZero(t, flags&core1_0.BufferUsageStorageTexelBuffer)
}

func TestImageUsageMapping(t *testing.T) {
	flags := vkImageUsage(ral.TextureUsageColorAttachment | ral.TextureUsageSampled)
	require.Equal(t, core1_0.ImageUsageColorAttachment|core1_0.ImageUsageSampled, flags)
}

func TestPresentModeMapping(t *testing.T) {
	require.Equal(t, khr_surface.PresentModeImmediate, vkPresentMode(ral.PresentModeImmediate))
	require.Equal(t, khr_surface.PresentModeMailbox, vkPresentMode(ral.PresentModeMailbox))
	require.Equal(t, khr_surface.PresentModeFIFO, vkPresentMode(ral.PresentModeFifo))
}

func TestClampInt(t *testing.T) {
	require.Equal(t, 3, clampInt(1, 3, 8))
	require.Equal(t, 8, clampInt(12, 3, 8))
	require.Equal(t, 5, clampInt(5, 3, 8))
	// A zero upper bound means unbounded.
	require.Equal(t, 500, clampInt(500, 3, 0))
}

func TestMemoryTypeSelection(t *testing.T) {
	memInfo := &ral.MemoryInfo{
		Types: []ral.MemoryTypeInfo{
			{Flags: ral.MemoryTypeDeviceLocal, HeapIndex: 0},
			{Flags: ral.MemoryTypeHostVisible | ral.MemoryTypeHostCoherent, HeapIndex: 1},
			{Flags: ral.MemoryTypeHostVisible | ral.MemoryTypeHostCoherent | ral.MemoryTypeHostCached, HeapIndex: 1},
		},
		Heaps: []ral.MemoryHeapInfo{
			{Flags: ral.MemoryHeapDeviceLocal, Size: 8 << 30},
			{Size: 16 << 30},
		},
	}

	index, err := findMemoryTypeIndex(memInfo, ral.MemoryTypeGpu)
	require.NoError(t, err)
	require.Equal(t, 0, index)

	index, err = findMemoryTypeIndex(memInfo, ral.MemoryTypeUpload)
	require.NoError(t, err)
	require.Equal(t, 1, index)

	// Readback prefers the cached type.
	index, err = findMemoryTypeIndex(memInfo, ral.MemoryTypeReadback)
	require.NoError(t, err)
	require.Equal(t, 2, index)

	_, err = findMemoryTypeIndex(&ral.MemoryInfo{}, ral.MemoryTypeGpu)
	require.ErrorIs(t, err, ral.ErrMissingCapability)
}

func TestUsableMemoryTypes(t *testing.T) {
	memInfo := &ral.MemoryInfo{
		Types: []ral.MemoryTypeInfo{
			{Flags: ral.MemoryTypeDeviceLocal, HeapIndex: 0},
			{Flags: ral.MemoryTypeHostVisible | ral.MemoryTypeHostCoherent, HeapIndex: 1},
		},
	}

	// Only the device-local type is in the mask.
	classes := usableMemoryTypes(memInfo, 0b01)
	require.Equal(t, []ral.MemoryType{ral.MemoryTypeGpu}, classes)

	classes = usableMemoryTypes(memInfo, 0b11)
	require.ElementsMatch(t, []ral.MemoryType{ral.MemoryTypeGpu, ral.MemoryTypeUpload, ral.MemoryTypeReadback}, classes)
}
