package ral_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onca-engine/ral"
)

func TestFormatCatalogConsistency(t *testing.T) {
	seen := map[string]ral.Format{}
	for _, f := range ral.AllFormats() {
		require.NotEmpty(t, f.String())
		require.NotContains(t, seen, f.String(), "duplicate format name")
		seen[f.String()] = f

		// Every catalog entry must round-trip through its pair lookup.
		back, ok := ral.FormatFromComponentsAndDataType(f.Components(), f.DataType())
		require.True(t, ok, "format %v not reachable from its pair", f)
		require.Equal(t, f, back)
	}
	require.NotContains(t, seen, "Undefined")
}

func TestFormatFromUnknownPair(t *testing.T) {
	// D32 exists only as SFloat.
	_, ok := ral.FormatFromComponentsAndDataType(ral.FormatComponentsD32, ral.FormatDataTypeUNorm)
	require.False(t, ok)
}

func TestFormatAspects(t *testing.T) {
	require.Equal(t, ral.TextureAspectColor, ral.FormatR8G8B8A8UNorm.Aspect())
	require.True(t, ral.FormatD32SFloat.HasDepth())
	require.False(t, ral.FormatD32SFloat.HasStencil())
	require.True(t, ral.FormatD32SFloatS8UInt.IsDepthStencil())
	require.False(t, ral.FormatR8G8B8A8UNorm.HasDepth())
}

func TestFormatPlaneFromAspect(t *testing.T) {
	plane, err := ral.FormatD32SFloatS8UInt.PlaneFromAspect(ral.TextureAspectDepth)
	require.NoError(t, err)
	require.Equal(t, 0, plane)

	plane, err = ral.FormatD32SFloatS8UInt.PlaneFromAspect(ral.TextureAspectStencil)
	require.NoError(t, err)
	require.Equal(t, 1, plane)

	_, err = ral.FormatD32SFloatS8UInt.PlaneFromAspect(ral.TextureAspectDepth | ral.TextureAspectStencil)
	require.ErrorIs(t, err, ral.ErrInvalidParameter)

	_, err = ral.FormatR8G8B8A8UNorm.PlaneFromAspect(ral.TextureAspectDepth)
	require.ErrorIs(t, err, ral.ErrInvalidParameter)
}

func TestFormatSizes(t *testing.T) {
	require.Equal(t, 128, ral.FormatR32G32B32A32SFloat.BitsPerPixel())
	require.Equal(t, 16, ral.FormatR32G32B32A32SFloat.UnitByteSize())
	require.Equal(t, 4, ral.FormatBC1UNorm.BitsPerPixel())
	require.True(t, ral.FormatBC1UNorm.IsBlockCompressed())

	width, height := ral.FormatBC1UNorm.MinMipSize()
	require.Equal(t, 4, width)
	require.Equal(t, 4, height)
}

func TestFormatSupport(t *testing.T) {
	require.True(t, ral.FormatR8G8B8A8UNorm.IsAlwaysSupported())
	require.True(t, ral.FormatR8G8B8A8UNorm.Support()&ral.FormatSupportDisplay != 0)
	require.False(t, ral.FormatR32G32B32A32Typeless.IsAlwaysSupported())
	require.True(t, ral.FormatD32SFloat.Support()&ral.FormatSupportDepthStencil != 0)
}

func TestVertexFormatCatalogConsistency(t *testing.T) {
	for _, f := range ral.AllVertexFormats() {
		require.NotEmpty(t, f.String())
		require.Greater(t, f.ByteSize(), 0)

		back, ok := ral.VertexFormatFromComponentsAndDataType(f.Components(), f.DataType())
		require.True(t, ok)
		require.Equal(t, f, back)
	}

	// 8-bit float vertices do not exist.
	_, ok := ral.VertexFormatFromComponentsAndDataType(ral.VertexComponentsX8, ral.VertexDataTypeSFloat)
	require.False(t, ok)
}
