package vulkan

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"

	"github.com/onca-engine/ral"
)

// formatToVk maps the non-typeless formats onto their Vulkan
// equivalents. Typeless formats have no Vulkan representation and are
// absent; resources wanting reinterpretation create typed views instead.
var formatToVk = map[ral.Format]core1_0.Format{
	ral.FormatR32G32B32A32SFloat: core1_0.FormatR32G32B32A32SignedFloat,
	ral.FormatR32G32B32A32UInt:   core1_0.FormatR32G32B32A32UnsignedInt,
	ral.FormatR32G32B32A32SInt:   core1_0.FormatR32G32B32A32SignedInt,

	ral.FormatR32G32SFloat: core1_0.FormatR32G32SignedFloat,
	ral.FormatR32G32UInt:   core1_0.FormatR32G32UnsignedInt,
	ral.FormatR32G32SInt:   core1_0.FormatR32G32SignedInt,

	ral.FormatR32SFloat: core1_0.FormatR32SignedFloat,
	ral.FormatR32UInt:   core1_0.FormatR32UnsignedInt,
	ral.FormatR32SInt:   core1_0.FormatR32SignedInt,

	ral.FormatR16G16B16A16SFloat: core1_0.FormatR16G16B16A16SignedFloat,
	ral.FormatR16G16B16A16UInt:   core1_0.FormatR16G16B16A16UnsignedInt,
	ral.FormatR16G16B16A16SInt:   core1_0.FormatR16G16B16A16SignedInt,
	ral.FormatR16G16B16A16UNorm:  core1_0.FormatR16G16B16A16UnsignedNormalized,
	ral.FormatR16G16B16A16SNorm:  core1_0.FormatR16G16B16A16SignedNormalized,

	ral.FormatR16G16SFloat: core1_0.FormatR16G16SignedFloat,
	ral.FormatR16G16UInt:   core1_0.FormatR16G16UnsignedInt,
	ral.FormatR16G16SInt:   core1_0.FormatR16G16SignedInt,
	ral.FormatR16G16UNorm:  core1_0.FormatR16G16UnsignedNormalized,
	ral.FormatR16G16SNorm:  core1_0.FormatR16G16SignedNormalized,

	ral.FormatR16SFloat: core1_0.FormatR16SignedFloat,
	ral.FormatR16UInt:   core1_0.FormatR16UnsignedInt,
	ral.FormatR16SInt:   core1_0.FormatR16SignedInt,
	ral.FormatR16UNorm:  core1_0.FormatR16UnsignedNormalized,
	ral.FormatR16SNorm:  core1_0.FormatR16SignedNormalized,

	ral.FormatR8G8B8A8UInt:  core1_0.FormatR8G8B8A8UnsignedInt,
	ral.FormatR8G8B8A8SInt:  core1_0.FormatR8G8B8A8SignedInt,
	ral.FormatR8G8B8A8UNorm: core1_0.FormatR8G8B8A8UnsignedNormalized,
	ral.FormatR8G8B8A8SNorm: core1_0.FormatR8G8B8A8SignedNormalized,
	ral.FormatR8G8B8A8Srgb:  core1_0.FormatR8G8B8A8SRGB,

	ral.FormatR8G8UInt:  core1_0.FormatR8G8UnsignedInt,
	ral.FormatR8G8SInt:  core1_0.FormatR8G8SignedInt,
	ral.FormatR8G8UNorm: core1_0.FormatR8G8UnsignedNormalized,
	ral.FormatR8G8SNorm: core1_0.FormatR8G8SignedNormalized,

	ral.FormatR8UInt:  core1_0.FormatR8UnsignedInt,
	ral.FormatR8SInt:  core1_0.FormatR8SignedInt,
	ral.FormatR8UNorm: core1_0.FormatR8UnsignedNormalized,
	ral.FormatR8SNorm: core1_0.FormatR8SignedNormalized,

	ral.FormatB8G8R8A8UNorm: core1_0.FormatB8G8R8A8UnsignedNormalized,
	ral.FormatB8G8R8A8Srgb:  core1_0.FormatB8G8R8A8SRGB,

	ral.FormatR10G10B10A2UInt:  core1_0.FormatA2B10G10R10UnsignedIntPacked,
	ral.FormatR10G10B10A2UNorm: core1_0.FormatA2B10G10R10UnsignedNormalizedPacked,

	ral.FormatR11G11B10UFloat: core1_0.FormatB10G11R11UnsignedFloatPacked,
	ral.FormatR9G9B9E5UFloat:  core1_0.FormatE5B9G9R9UnsignedFloatPacked,

	ral.FormatD32SFloat:       core1_0.FormatD32SignedFloat,
	ral.FormatD32SFloatS8UInt: core1_0.FormatD32SignedFloatS8UnsignedInt,
	ral.FormatS8UInt:          core1_0.FormatS8UnsignedInt,

	ral.FormatBC1UNorm:   core1_0.FormatBC1_RGBAUnsignedNormalized,
	ral.FormatBC1Srgb:    core1_0.FormatBC1_RGBAsRGB,
	ral.FormatBC2UNorm:   core1_0.FormatBC2_UnsignedNormalized,
	ral.FormatBC2Srgb:    core1_0.FormatBC2_sRGB,
	ral.FormatBC3UNorm:   core1_0.FormatBC3_UnsignedNormalized,
	ral.FormatBC3Srgb:    core1_0.FormatBC3_sRGB,
	ral.FormatBC4UNorm:   core1_0.FormatBC4_UnsignedNormalized,
	ral.FormatBC4SNorm:   core1_0.FormatBC4_SignedNormalized,
	ral.FormatBC5UNorm:   core1_0.FormatBC5_UnsignedNormalized,
	ral.FormatBC5SNorm:   core1_0.FormatBC5_SignedNormalized,
	ral.FormatBC6HUFloat: core1_0.FormatBC6_UnsignedFloat,
	ral.FormatBC6HSFloat: core1_0.FormatBC6_SignedFloat,
	ral.FormatBC7UNorm:   core1_0.FormatBC7_UnsignedNormalized,
	ral.FormatBC7Srgb:    core1_0.FormatBC7_sRGB,
}

var vkToFormat map[core1_0.Format]ral.Format

func init() {
	vkToFormat = make(map[core1_0.Format]ral.Format, len(formatToVk))
	for r, vk := range formatToVk {
		if _, dup := vkToFormat[vk]; dup {
			panic("vulkan: two formats map to the same native format")
		}
		vkToFormat[vk] = r
	}
}

// VkFormat returns the Vulkan equivalent of a format.
func VkFormat(format ral.Format) (core1_0.Format, bool) {
	vk, ok := formatToVk[format]
	return vk, ok
}

// FormatFromVk returns the format matching a Vulkan format.
func FormatFromVk(vk core1_0.Format) (ral.Format, bool) {
	format, ok := vkToFormat[vk]
	return format, ok
}

func vkBufferUsage(usage ral.BufferUsage) core1_0.BufferUsageFlags {
	var flags core1_0.BufferUsageFlags
	if usage&ral.BufferUsageCopySrc != 0 {
		flags |= core1_0.BufferUsageTransferSrc
	}
	if usage&ral.BufferUsageCopyDst != 0 {
		flags |= core1_0.BufferUsageTransferDst
	}
	if usage&ral.BufferUsageConstantBuffer != 0 {
		flags |= core1_0.BufferUsageUniformBuffer
	}
	if usage&ral.BufferUsageVertexBuffer != 0 {
		flags |= core1_0.BufferUsageVertexBuffer
	}
	if usage&ral.BufferUsageIndexBuffer != 0 {
		flags |= core1_0.BufferUsageIndexBuffer
	}
	if usage&ral.BufferUsageIndirectArguments != 0 {
		flags |= core1_0.BufferUsageIndirectBuffer
	}
	if usage&ral.BufferUsageConditionalRendering != 0 {
		// Predicates are read as uniform data when the conditional
		// rendering extension is unavailable.
		flags |= core1_0.BufferUsageUniformBuffer
	}
	if usage&ral.BufferUsageReadBuffer != 0 {
		flags |= core1_0.BufferUsageUniformTexelBuffer | core1_0.BufferUsageStorageBuffer
	}
	if usage&ral.BufferUsageReadWriteBuffer != 0 {
		flags |= core1_0.BufferUsageStorageTexelBuffer | core1_0.BufferUsageStorageBuffer
	}
	return flags
}

func vkImageUsage(usage ral.TextureUsage) core1_0.ImageUsageFlags {
	var flags core1_0.ImageUsageFlags
	if usage&ral.TextureUsageCopySrc != 0 {
		flags |= core1_0.ImageUsageTransferSrc
	}
	if usage&ral.TextureUsageCopyDst != 0 {
		flags |= core1_0.ImageUsageTransferDst
	}
	if usage&ral.TextureUsageSampled != 0 {
		flags |= core1_0.ImageUsageSampled
	}
	if usage&ral.TextureUsageStorage != 0 {
		flags |= core1_0.ImageUsageStorage
	}
	if usage&ral.TextureUsageColorAttachment != 0 {
		flags |= core1_0.ImageUsageColorAttachment
	}
	if usage&ral.TextureUsageDepthStencilAttachment != 0 {
		flags |= core1_0.ImageUsageDepthStencilAttachment
	}
	return flags
}

func vkPresentMode(mode ral.PresentMode) khr_surface.PresentMode {
	switch mode {
	case ral.PresentModeImmediate:
		return khr_surface.PresentModeImmediate
	case ral.PresentModeMailbox:
		return khr_surface.PresentModeMailbox
	default:
		return khr_surface.PresentModeFIFO
	}
}

func vkCompositeAlpha(mode ral.SwapChainAlphaMode) khr_surface.CompositeAlphaFlags {
	switch mode {
	case ral.SwapChainAlphaModePremultiplied:
		return khr_surface.CompositeAlphaPreMultiplied
	case ral.SwapChainAlphaModePostmultiplied:
		return khr_surface.CompositeAlphaPostMultiplied
	case ral.SwapChainAlphaModeUnspecified:
		return khr_surface.CompositeAlphaInherit
	default:
		return khr_surface.CompositeAlphaOpaque
	}
}
