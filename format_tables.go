package ral

// The format catalog. The enumeration is closed: adding a format means
// adding it here, to formatDescs, and nowhere else — the inverse
// components×data-type mapping is derived at init time so the round trip
// cannot drift out of sync with the forward tables.

const (
	FormatUndefined Format = iota

	// 32-bit component RGBA
	FormatR32G32B32A32Typeless
	FormatR32G32B32A32SFloat
	FormatR32G32B32A32UInt
	FormatR32G32B32A32SInt
	// 32-bit component RG
	FormatR32G32Typeless
	FormatR32G32SFloat
	FormatR32G32UInt
	FormatR32G32SInt
	// 32-bit component R
	FormatR32Typeless
	FormatR32SFloat
	FormatR32UInt
	FormatR32SInt

	// 16-bit component RGBA
	FormatR16G16B16A16Typeless
	FormatR16G16B16A16SFloat
	FormatR16G16B16A16UInt
	FormatR16G16B16A16SInt
	FormatR16G16B16A16UNorm
	FormatR16G16B16A16SNorm
	// 16-bit component RG
	FormatR16G16Typeless
	FormatR16G16SFloat
	FormatR16G16UInt
	FormatR16G16SInt
	FormatR16G16UNorm
	FormatR16G16SNorm
	// 16-bit component R
	FormatR16Typeless
	FormatR16SFloat
	FormatR16UInt
	FormatR16SInt
	FormatR16UNorm
	FormatR16SNorm

	// 8-bit component RGBA
	FormatR8G8B8A8Typeless
	FormatR8G8B8A8UInt
	FormatR8G8B8A8SInt
	FormatR8G8B8A8UNorm
	FormatR8G8B8A8SNorm
	FormatR8G8B8A8Srgb
	// 8-bit component RG
	FormatR8G8Typeless
	FormatR8G8UInt
	FormatR8G8SInt
	FormatR8G8UNorm
	FormatR8G8SNorm
	// 8-bit component R
	FormatR8Typeless
	FormatR8UInt
	FormatR8SInt
	FormatR8UNorm
	FormatR8SNorm

	// 8-bit component BGRA
	FormatB8G8R8A8Typeless
	FormatB8G8R8A8UNorm
	FormatB8G8R8A8Srgb

	// 10-bit component RGB with 2-bit A
	FormatR10G10B10A2Typeless
	FormatR10G10B10A2UInt
	FormatR10G10B10A2UNorm

	// 11-bit R and G, 10-bit B
	FormatR11G11B10UFloat

	// 9-bit component RGB with a 5-bit shared exponent
	FormatR9G9B9E5UFloat

	// Depth/stencil
	FormatD32SFloat
	FormatD32SFloatS8UInt
	FormatS8UInt

	// Block compression
	FormatBC1Typeless
	FormatBC1UNorm
	FormatBC1Srgb
	FormatBC2Typeless
	FormatBC2UNorm
	FormatBC2Srgb
	FormatBC3Typeless
	FormatBC3UNorm
	FormatBC3Srgb
	FormatBC4Typeless
	FormatBC4UNorm
	FormatBC4SNorm
	FormatBC5Typeless
	FormatBC5UNorm
	FormatBC5SNorm
	FormatBC6HTypeless
	FormatBC6HSFloat
	FormatBC6HUFloat
	FormatBC7Typeless
	FormatBC7UNorm
	FormatBC7Srgb

	// Sampler feedback opaques
	FormatSamplerFeedbackMinMipOpaque
	FormatSamplerFeedbackMipRegionOpaque

	FormatCount = int(FormatSamplerFeedbackMipRegionOpaque) + 1
)

type formatComponentsDesc struct {
	name            string
	aspect          TextureAspect
	blockCompressed bool
	bitsPerPixel    uint16
	unitByteSize    uint8
	numPlanes       uint8
	minMipWidth     uint8
	minMipHeight    uint8
}

var formatComponentsDescs = [FormatComponentsCount]formatComponentsDesc{
	FormatComponentsR32G32B32A32: {"R32G32B32A32", TextureAspectColor, false, 128, 16, 1, 1, 1},
	FormatComponentsR32G32:       {"R32G32", TextureAspectColor, false, 64, 8, 1, 1, 1},
	FormatComponentsR32:          {"R32", TextureAspectColor, false, 32, 4, 1, 1, 1},
	FormatComponentsR16G16B16A16: {"R16G16B16A16", TextureAspectColor, false, 64, 8, 1, 1, 1},
	FormatComponentsR16G16:       {"R16G16", TextureAspectColor, false, 32, 4, 1, 1, 1},
	FormatComponentsR16:          {"R16", TextureAspectColor, false, 16, 2, 1, 1, 1},
	FormatComponentsR8G8B8A8:     {"R8G8B8A8", TextureAspectColor, false, 32, 4, 1, 1, 1},
	FormatComponentsR8G8:         {"R8G8", TextureAspectColor, false, 16, 2, 1, 1, 1},
	FormatComponentsR8:           {"R8", TextureAspectColor, false, 8, 1, 1, 1, 1},
	FormatComponentsB8G8R8A8:     {"B8G8R8A8", TextureAspectColor, false, 32, 4, 1, 1, 1},
	FormatComponentsR10G10B10A2:  {"R10G10B10A2", TextureAspectColor, false, 32, 4, 1, 1, 1},
	FormatComponentsR11G11B10:    {"R11G11B10", TextureAspectColor, false, 32, 4, 1, 1, 1},
	FormatComponentsR9G9B9E5:     {"R9G9B9E5", TextureAspectColor, false, 32, 4, 1, 1, 1},
	FormatComponentsD32:          {"D32", TextureAspectDepth, false, 32, 4, 1, 1, 1},
	FormatComponentsD32S8:        {"D32S8", TextureAspectDepth | TextureAspectStencil, false, 40, 8, 2, 1, 1},
	FormatComponentsS8:           {"S8", TextureAspectStencil, false, 8, 1, 1, 1, 1},
	FormatComponentsBC1:          {"BC1", TextureAspectColor, true, 4, 0, 1, 4, 4},
	FormatComponentsBC2:          {"BC2", TextureAspectColor, true, 8, 0, 1, 4, 4},
	FormatComponentsBC3:          {"BC3", TextureAspectColor, true, 8, 0, 1, 4, 4},
	FormatComponentsBC4:          {"BC4", TextureAspectColor, true, 4, 0, 1, 4, 4},
	FormatComponentsBC5:          {"BC5", TextureAspectColor, true, 8, 0, 1, 4, 4},
	FormatComponentsBC6H:         {"BC6H", TextureAspectColor, true, 8, 0, 1, 4, 4},
	FormatComponentsBC7:          {"BC7", TextureAspectColor, true, 8, 0, 1, 4, 4},

	FormatComponentsSamplerFeedbackMinMip:        {"SamplerFeedbackMinMip", TextureAspectColor, false, 0, 0, 1, 1, 1},
	FormatComponentsSamplerFeedbackMipRegionUsed: {"SamplerFeedbackMipRegionUsed", TextureAspectColor, false, 0, 0, 1, 1, 1},
}

type formatDesc struct {
	name       string
	components FormatComponents
	dataType   FormatDataType
	support    FormatSupport
}

// Abbreviations for the support column.
const (
	fmtSupColor   = FormatSupportSampled | FormatSupportStorage
	fmtSupRender  = fmtSupColor | FormatSupportRenderTarget | FormatSupportBlend
	fmtSupDisplay = fmtSupRender | FormatSupportDisplay
	fmtSupDepth   = FormatSupportSampled | FormatSupportDepthStencil
	fmtSupBC      = FormatSupportSampled
	fmtAlways     = FormatSupportAlways
)

var formatDescs = [FormatCount]formatDesc{
	FormatUndefined: {"Undefined", 0, 0, 0},

	FormatR32G32B32A32Typeless: {"R32G32B32A32Typeless", FormatComponentsR32G32B32A32, FormatDataTypeTypeless, fmtSupColor},
	FormatR32G32B32A32SFloat:   {"R32G32B32A32SFloat", FormatComponentsR32G32B32A32, FormatDataTypeSFloat, fmtSupRender | fmtAlways},
	FormatR32G32B32A32UInt:     {"R32G32B32A32UInt", FormatComponentsR32G32B32A32, FormatDataTypeUInt, fmtSupRender | fmtAlways},
	FormatR32G32B32A32SInt:     {"R32G32B32A32SInt", FormatComponentsR32G32B32A32, FormatDataTypeSInt, fmtSupRender | fmtAlways},

	FormatR32G32Typeless: {"R32G32Typeless", FormatComponentsR32G32, FormatDataTypeTypeless, fmtSupColor},
	FormatR32G32SFloat:   {"R32G32SFloat", FormatComponentsR32G32, FormatDataTypeSFloat, fmtSupRender | fmtAlways},
	FormatR32G32UInt:     {"R32G32UInt", FormatComponentsR32G32, FormatDataTypeUInt, fmtSupRender | fmtAlways},
	FormatR32G32SInt:     {"R32G32SInt", FormatComponentsR32G32, FormatDataTypeSInt, fmtSupRender | fmtAlways},

	FormatR32Typeless: {"R32Typeless", FormatComponentsR32, FormatDataTypeTypeless, fmtSupColor},
	FormatR32SFloat:   {"R32SFloat", FormatComponentsR32, FormatDataTypeSFloat, fmtSupRender | fmtAlways},
	FormatR32UInt:     {"R32UInt", FormatComponentsR32, FormatDataTypeUInt, fmtSupRender | fmtAlways},
	FormatR32SInt:     {"R32SInt", FormatComponentsR32, FormatDataTypeSInt, fmtSupRender | fmtAlways},

	FormatR16G16B16A16Typeless: {"R16G16B16A16Typeless", FormatComponentsR16G16B16A16, FormatDataTypeTypeless, fmtSupColor},
	FormatR16G16B16A16SFloat:   {"R16G16B16A16SFloat", FormatComponentsR16G16B16A16, FormatDataTypeSFloat, fmtSupDisplay | fmtAlways},
	FormatR16G16B16A16UInt:     {"R16G16B16A16UInt", FormatComponentsR16G16B16A16, FormatDataTypeUInt, fmtSupRender | fmtAlways},
	FormatR16G16B16A16SInt:     {"R16G16B16A16SInt", FormatComponentsR16G16B16A16, FormatDataTypeSInt, fmtSupRender | fmtAlways},
	FormatR16G16B16A16UNorm:    {"R16G16B16A16UNorm", FormatComponentsR16G16B16A16, FormatDataTypeUNorm, fmtSupRender | fmtAlways},
	FormatR16G16B16A16SNorm:    {"R16G16B16A16SNorm", FormatComponentsR16G16B16A16, FormatDataTypeSNorm, fmtSupRender | fmtAlways},

	FormatR16G16Typeless: {"R16G16Typeless", FormatComponentsR16G16, FormatDataTypeTypeless, fmtSupColor},
	FormatR16G16SFloat:   {"R16G16SFloat", FormatComponentsR16G16, FormatDataTypeSFloat, fmtSupRender | fmtAlways},
	FormatR16G16UInt:     {"R16G16UInt", FormatComponentsR16G16, FormatDataTypeUInt, fmtSupRender | fmtAlways},
	FormatR16G16SInt:     {"R16G16SInt", FormatComponentsR16G16, FormatDataTypeSInt, fmtSupRender | fmtAlways},
	FormatR16G16UNorm:    {"R16G16UNorm", FormatComponentsR16G16, FormatDataTypeUNorm, fmtSupRender},
	FormatR16G16SNorm:    {"R16G16SNorm", FormatComponentsR16G16, FormatDataTypeSNorm, fmtSupRender},

	FormatR16Typeless: {"R16Typeless", FormatComponentsR16, FormatDataTypeTypeless, fmtSupColor},
	FormatR16SFloat:   {"R16SFloat", FormatComponentsR16, FormatDataTypeSFloat, fmtSupRender | fmtAlways},
	FormatR16UInt:     {"R16UInt", FormatComponentsR16, FormatDataTypeUInt, fmtSupRender | fmtAlways},
	FormatR16SInt:     {"R16SInt", FormatComponentsR16, FormatDataTypeSInt, fmtSupRender | fmtAlways},
	FormatR16UNorm:    {"R16UNorm", FormatComponentsR16, FormatDataTypeUNorm, fmtSupRender},
	FormatR16SNorm:    {"R16SNorm", FormatComponentsR16, FormatDataTypeSNorm, fmtSupRender},

	FormatR8G8B8A8Typeless: {"R8G8B8A8Typeless", FormatComponentsR8G8B8A8, FormatDataTypeTypeless, fmtSupColor},
	FormatR8G8B8A8UInt:     {"R8G8B8A8UInt", FormatComponentsR8G8B8A8, FormatDataTypeUInt, fmtSupRender | fmtAlways},
	FormatR8G8B8A8SInt:     {"R8G8B8A8SInt", FormatComponentsR8G8B8A8, FormatDataTypeSInt, fmtSupRender | fmtAlways},
	FormatR8G8B8A8UNorm:    {"R8G8B8A8UNorm", FormatComponentsR8G8B8A8, FormatDataTypeUNorm, fmtSupDisplay | fmtAlways},
	FormatR8G8B8A8SNorm:    {"R8G8B8A8SNorm", FormatComponentsR8G8B8A8, FormatDataTypeSNorm, fmtSupRender | fmtAlways},
	FormatR8G8B8A8Srgb:     {"R8G8B8A8Srgb", FormatComponentsR8G8B8A8, FormatDataTypeSrgb, fmtSupDisplay | fmtAlways},

	FormatR8G8Typeless: {"R8G8Typeless", FormatComponentsR8G8, FormatDataTypeTypeless, fmtSupColor},
	FormatR8G8UInt:     {"R8G8UInt", FormatComponentsR8G8, FormatDataTypeUInt, fmtSupRender | fmtAlways},
	FormatR8G8SInt:     {"R8G8SInt", FormatComponentsR8G8, FormatDataTypeSInt, fmtSupRender | fmtAlways},
	FormatR8G8UNorm:    {"R8G8UNorm", FormatComponentsR8G8, FormatDataTypeUNorm, fmtSupRender | fmtAlways},
	FormatR8G8SNorm:    {"R8G8SNorm", FormatComponentsR8G8, FormatDataTypeSNorm, fmtSupRender},

	FormatR8Typeless: {"R8Typeless", FormatComponentsR8, FormatDataTypeTypeless, fmtSupColor},
	FormatR8UInt:     {"R8UInt", FormatComponentsR8, FormatDataTypeUInt, fmtSupRender | fmtAlways},
	FormatR8SInt:     {"R8SInt", FormatComponentsR8, FormatDataTypeSInt, fmtSupRender | fmtAlways},
	FormatR8UNorm:    {"R8UNorm", FormatComponentsR8, FormatDataTypeUNorm, fmtSupRender | fmtAlways},
	FormatR8SNorm:    {"R8SNorm", FormatComponentsR8, FormatDataTypeSNorm, fmtSupRender},

	FormatB8G8R8A8Typeless: {"B8G8R8A8Typeless", FormatComponentsB8G8R8A8, FormatDataTypeTypeless, fmtSupColor},
	FormatB8G8R8A8UNorm:    {"B8G8R8A8UNorm", FormatComponentsB8G8R8A8, FormatDataTypeUNorm, fmtSupDisplay | fmtAlways},
	FormatB8G8R8A8Srgb:     {"B8G8R8A8Srgb", FormatComponentsB8G8R8A8, FormatDataTypeSrgb, fmtSupDisplay | fmtAlways},

	FormatR10G10B10A2Typeless: {"R10G10B10A2Typeless", FormatComponentsR10G10B10A2, FormatDataTypeTypeless, fmtSupColor},
	FormatR10G10B10A2UInt:     {"R10G10B10A2UInt", FormatComponentsR10G10B10A2, FormatDataTypeUInt, fmtSupRender},
	FormatR10G10B10A2UNorm:    {"R10G10B10A2UNorm", FormatComponentsR10G10B10A2, FormatDataTypeUNorm, fmtSupDisplay},

	FormatR11G11B10UFloat: {"R11G11B10UFloat", FormatComponentsR11G11B10, FormatDataTypeUFloat, fmtSupRender},
	FormatR9G9B9E5UFloat:  {"R9G9B9E5UFloat", FormatComponentsR9G9B9E5, FormatDataTypeUFloat, FormatSupportSampled},

	FormatD32SFloat:       {"D32SFloat", FormatComponentsD32, FormatDataTypeSFloat, fmtSupDepth | fmtAlways},
	FormatD32SFloatS8UInt: {"D32SFloatS8UInt", FormatComponentsD32S8, FormatDataTypeSFloat, fmtSupDepth},
	FormatS8UInt:          {"S8UInt", FormatComponentsS8, FormatDataTypeUInt, FormatSupportDepthStencil},

	FormatBC1Typeless:  {"BC1Typeless", FormatComponentsBC1, FormatDataTypeTypeless, fmtSupBC},
	FormatBC1UNorm:     {"BC1UNorm", FormatComponentsBC1, FormatDataTypeUNorm, fmtSupBC | fmtAlways},
	FormatBC1Srgb:      {"BC1Srgb", FormatComponentsBC1, FormatDataTypeSrgb, fmtSupBC | fmtAlways},
	FormatBC2Typeless:  {"BC2Typeless", FormatComponentsBC2, FormatDataTypeTypeless, fmtSupBC},
	FormatBC2UNorm:     {"BC2UNorm", FormatComponentsBC2, FormatDataTypeUNorm, fmtSupBC | fmtAlways},
	FormatBC2Srgb:      {"BC2Srgb", FormatComponentsBC2, FormatDataTypeSrgb, fmtSupBC | fmtAlways},
	FormatBC3Typeless:  {"BC3Typeless", FormatComponentsBC3, FormatDataTypeTypeless, fmtSupBC},
	FormatBC3UNorm:     {"BC3UNorm", FormatComponentsBC3, FormatDataTypeUNorm, fmtSupBC | fmtAlways},
	FormatBC3Srgb:      {"BC3Srgb", FormatComponentsBC3, FormatDataTypeSrgb, fmtSupBC | fmtAlways},
	FormatBC4Typeless:  {"BC4Typeless", FormatComponentsBC4, FormatDataTypeTypeless, fmtSupBC},
	FormatBC4UNorm:     {"BC4UNorm", FormatComponentsBC4, FormatDataTypeUNorm, fmtSupBC | fmtAlways},
	FormatBC4SNorm:     {"BC4SNorm", FormatComponentsBC4, FormatDataTypeSNorm, fmtSupBC | fmtAlways},
	FormatBC5Typeless:  {"BC5Typeless", FormatComponentsBC5, FormatDataTypeTypeless, fmtSupBC},
	FormatBC5UNorm:     {"BC5UNorm", FormatComponentsBC5, FormatDataTypeUNorm, fmtSupBC | fmtAlways},
	FormatBC5SNorm:     {"BC5SNorm", FormatComponentsBC5, FormatDataTypeSNorm, fmtSupBC | fmtAlways},
	FormatBC6HTypeless: {"BC6HTypeless", FormatComponentsBC6H, FormatDataTypeTypeless, fmtSupBC},
	FormatBC6HSFloat:   {"BC6HSFloat", FormatComponentsBC6H, FormatDataTypeSFloat, fmtSupBC | fmtAlways},
	FormatBC6HUFloat:   {"BC6HUFloat", FormatComponentsBC6H, FormatDataTypeUFloat, fmtSupBC | fmtAlways},
	FormatBC7Typeless:  {"BC7Typeless", FormatComponentsBC7, FormatDataTypeTypeless, fmtSupBC},
	FormatBC7UNorm:     {"BC7UNorm", FormatComponentsBC7, FormatDataTypeUNorm, fmtSupBC | fmtAlways},
	FormatBC7Srgb:      {"BC7Srgb", FormatComponentsBC7, FormatDataTypeSrgb, fmtSupBC | fmtAlways},

	FormatSamplerFeedbackMinMipOpaque:    {"SamplerFeedbackMinMipOpaque", FormatComponentsSamplerFeedbackMinMip, FormatDataTypeTypeless, 0},
	FormatSamplerFeedbackMipRegionOpaque: {"SamplerFeedbackMipRegionOpaque", FormatComponentsSamplerFeedbackMipRegionUsed, FormatDataTypeTypeless, 0},
}

// formatFromPair is the derived inverse of formatDescs.
var formatFromPair [FormatComponentsCount][FormatDataTypeCount]Format

func init() {
	for f := Format(1); int(f) < FormatCount; f++ {
		d := &formatDescs[f]
		if d.name == "" {
			panic("ral: format catalog entry missing")
		}
		if formatFromPair[d.components][d.dataType] != FormatUndefined {
			panic("ral: duplicate components/data-type pair in format catalog")
		}
		formatFromPair[d.components][d.dataType] = f
	}
}
