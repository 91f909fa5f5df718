package ral

// TextureAspect identifies which aspects of a texture a format carries.
type TextureAspect uint8

const (
	TextureAspectColor TextureAspect = 1 << iota
	TextureAspectDepth
	TextureAspectStencil
)

// Contains reports whether all aspects in other are present.
func (a TextureAspect) Contains(other TextureAspect) bool {
	return a&other == other
}

// FormatDataType is the numeric representation of a format's components.
type FormatDataType uint8

const (
	// FormatDataTypeTypeless formats can be cast to other formats with the
	// same FormatComponents.
	FormatDataTypeTypeless FormatDataType = iota
	FormatDataTypeUFloat
	FormatDataTypeSFloat
	FormatDataTypeUInt
	FormatDataTypeSInt
	FormatDataTypeUNorm
	FormatDataTypeSNorm
	FormatDataTypeSrgb

	FormatDataTypeCount = int(FormatDataTypeSrgb) + 1
)

var formatDataTypeNames = [FormatDataTypeCount]string{
	"Typeless", "UFloat", "SFloat", "UInt", "SInt", "UNorm", "SNorm", "Srgb",
}

func (t FormatDataType) String() string {
	if int(t) >= FormatDataTypeCount {
		return "FormatDataType(invalid)"
	}
	return formatDataTypeNames[t]
}

// IsInteger reports whether the data type is an integer type.
func (t FormatDataType) IsInteger() bool {
	return t == FormatDataTypeUInt || t == FormatDataTypeSInt
}

// IsNonInteger reports whether the data type is a non-integer type.
// Prefer this over !IsInteger(), since a typeless format is neither.
func (t FormatDataType) IsNonInteger() bool {
	return t != FormatDataTypeTypeless && !t.IsInteger()
}

// FormatComponents is the component layout of a format.
type FormatComponents uint8

const (
	FormatComponentsR32G32B32A32 FormatComponents = iota
	FormatComponentsR32G32
	FormatComponentsR32
	FormatComponentsR16G16B16A16
	FormatComponentsR16G16
	FormatComponentsR16
	FormatComponentsR8G8B8A8
	FormatComponentsR8G8
	FormatComponentsR8
	FormatComponentsB8G8R8A8
	FormatComponentsR10G10B10A2
	FormatComponentsR11G11B10
	FormatComponentsR9G9B9E5
	FormatComponentsD32
	FormatComponentsD32S8
	FormatComponentsS8
	FormatComponentsBC1
	FormatComponentsBC2
	FormatComponentsBC3
	FormatComponentsBC4
	FormatComponentsBC5
	FormatComponentsBC6H
	FormatComponentsBC7
	FormatComponentsSamplerFeedbackMinMip
	FormatComponentsSamplerFeedbackMipRegionUsed

	FormatComponentsCount = int(FormatComponentsSamplerFeedbackMipRegionUsed) + 1
)

func (c FormatComponents) String() string {
	if int(c) >= FormatComponentsCount {
		return "FormatComponents(invalid)"
	}
	return formatComponentsDescs[c].name
}

// Aspect returns the texture aspect the component layout carries.
func (c FormatComponents) Aspect() TextureAspect {
	return formatComponentsDescs[c].aspect
}

// IsBlockCompressed reports whether the layout is a BC block-compression
// layout.
func (c FormatComponents) IsBlockCompressed() bool {
	return formatComponentsDescs[c].blockCompressed
}

// IsCompressed reports whether the layout is any compressed layout.
func (c FormatComponents) IsCompressed() bool {
	return c.IsBlockCompressed()
}

// IsPlanar reports whether the layout stores its aspects in separate planes.
func (c FormatComponents) IsPlanar() bool {
	return formatComponentsDescs[c].numPlanes > 1
}

// NumPlanes returns the number of planes in the layout.
func (c FormatComponents) NumPlanes() int {
	return int(formatComponentsDescs[c].numPlanes)
}

// BitsPerPixel returns the number of bits per pixel.
func (c FormatComponents) BitsPerPixel() int {
	return int(formatComponentsDescs[c].bitsPerPixel)
}

// UnitByteSize returns the size of a single addressable element in bytes.
// Unlike BitsPerPixel/8 it returns 0 for layouts that cannot store
// individual pixels (block-compressed layouts).
func (c FormatComponents) UnitByteSize() int {
	return int(formatComponentsDescs[c].unitByteSize)
}

// MinMipSize returns the minimum mip dimensions for the layout.
func (c FormatComponents) MinMipSize() (width, height int) {
	d := &formatComponentsDescs[c]
	return int(d.minMipWidth), int(d.minMipHeight)
}

// HasMips reports whether the layout supports mip levels.
func (c FormatComponents) HasMips() bool {
	return c != FormatComponentsSamplerFeedbackMinMip &&
		c != FormatComponentsSamplerFeedbackMipRegionUsed
}

// FormatSupport describes what a format is usable for, and whether it is
// part of the subset guaranteed present on every backend.
type FormatSupport uint16

const (
	FormatSupportSampled FormatSupport = 1 << iota
	FormatSupportRenderTarget
	FormatSupportDepthStencil
	FormatSupportStorage
	FormatSupportBlend
	FormatSupportDisplay
	// FormatSupportAlways marks the subset every backend must provide.
	FormatSupportAlways
)

// Format is a closed catalog of pixel formats. Values are never constructed
// dynamically; all per-format properties are O(1) table lookups.
type Format uint8

// Methods on Format are pure lookups into static tables: no state, no
// allocation, safe from any goroutine.

// FormatFromComponentsAndDataType returns the format with the given layout
// and data type. The mapping is the exact inverse of
// (Format).Components/(Format).DataType; it reports false when no defined
// format has that pair.
func FormatFromComponentsAndDataType(components FormatComponents, dataType FormatDataType) (Format, bool) {
	if int(components) >= FormatComponentsCount || int(dataType) >= FormatDataTypeCount {
		return FormatUndefined, false
	}
	f := formatFromPair[components][dataType]
	return f, f != FormatUndefined
}

// AllFormats returns every defined format, in catalog order.
func AllFormats() []Format {
	all := make([]Format, 0, FormatCount-1)
	for f := Format(1); int(f) < FormatCount; f++ {
		all = append(all, f)
	}
	return all
}

func (f Format) String() string {
	if int(f) >= FormatCount {
		return "Format(invalid)"
	}
	return formatDescs[f].name
}

// Components returns the format's component layout.
func (f Format) Components() FormatComponents {
	return formatDescs[f].components
}

// DataType returns the format's numeric representation.
func (f Format) DataType() FormatDataType {
	return formatDescs[f].dataType
}

// Aspect returns the texture aspect associated with the format.
func (f Format) Aspect() TextureAspect {
	return f.Components().Aspect()
}

// HasDepth reports whether the format contains a depth aspect.
func (f Format) HasDepth() bool {
	return f.Aspect()&TextureAspectDepth != 0
}

// HasStencil reports whether the format contains a stencil aspect.
func (f Format) HasStencil() bool {
	return f.Aspect()&TextureAspectStencil != 0
}

// IsDepthStencil reports whether the format is a depth and/or stencil
// format.
func (f Format) IsDepthStencil() bool {
	return f.Aspect()&(TextureAspectDepth|TextureAspectStencil) != 0
}

// IsBlockCompressed reports whether the format is a BC format.
func (f Format) IsBlockCompressed() bool {
	return f.Components().IsBlockCompressed()
}

// IsCompressed reports whether the format is any compressed format.
func (f Format) IsCompressed() bool {
	return f.Components().IsCompressed()
}

// BitsPerPixel returns the number of bits per pixel.
func (f Format) BitsPerPixel() int {
	return f.Components().BitsPerPixel()
}

// UnitByteSize returns the byte size of a single element, or 0 for formats
// that cannot store individual pixels.
func (f Format) UnitByteSize() int {
	return f.Components().UnitByteSize()
}

// NumPlanes returns the number of planes.
func (f Format) NumPlanes() int {
	return f.Components().NumPlanes()
}

// HasMips reports whether the format supports mip levels.
func (f Format) HasMips() bool {
	return f.Components().HasMips()
}

// MinMipSize returns the minimum mip dimensions.
func (f Format) MinMipSize() (width, height int) {
	return f.Components().MinMipSize()
}

// Support returns what the format is usable for.
func (f Format) Support() FormatSupport {
	return formatDescs[f].support
}

// IsAlwaysSupported reports whether the format belongs to the subset
// guaranteed present on every backend.
func (f Format) IsAlwaysSupported() bool {
	return f.Support()&FormatSupportAlways != 0
}

// PlaneFromAspect returns the plane index holding the given single aspect.
// Stencil data always lives on plane 1 of a planar format.
func (f Format) PlaneFromAspect(aspect TextureAspect) (int, error) {
	if aspect == 0 || aspect&(aspect-1) != 0 {
		return 0, invalidParameterf("cannot resolve a plane for multiple aspects: %v", aspect)
	}
	if !f.Aspect().Contains(aspect) {
		return 0, invalidParameterf("format %v does not carry the requested aspect", f)
	}
	if aspect == TextureAspectStencil && f.NumPlanes() > 1 {
		return 1, nil
	}
	return 0, nil
}
