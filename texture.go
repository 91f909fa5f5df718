package ral

// TextureUsage describes the ways a texture may be used.
type TextureUsage uint8

const (
	// TextureUsageCopySrc allows the texture to be the source of copies.
	TextureUsageCopySrc TextureUsage = 1 << iota
	// TextureUsageCopyDst allows the texture to be the destination of copies.
	TextureUsageCopyDst
	// TextureUsageSampled allows sampled shader reads.
	TextureUsageSampled
	// TextureUsageStorage allows read-write shader access.
	TextureUsageStorage
	// TextureUsageColorAttachment allows use as a color render target.
	TextureUsageColorAttachment
	// TextureUsageDepthStencilAttachment allows use as a depth/stencil target.
	TextureUsageDepthStencilAttachment
)

// TextureSize holds the dimensions of a texture. Unused dimensions are 1.
type TextureSize struct {
	Width  uint32
	Height uint32
	Depth  uint16
	Layers uint16
}

// Texture1DSize returns the size of a 1D texture array.
func Texture1DSize(width uint32, layers uint16) TextureSize {
	return TextureSize{Width: width, Height: 1, Depth: 1, Layers: layers}
}

// Texture2DSize returns the size of a 2D texture array.
func Texture2DSize(width, height uint32, layers uint16) TextureSize {
	return TextureSize{Width: width, Height: height, Depth: 1, Layers: layers}
}

// Texture3DSize returns the size of a volume texture.
func Texture3DSize(width, height uint32, depth uint16) TextureSize {
	return TextureSize{Width: width, Height: height, Depth: depth, Layers: 1}
}

// Texture is an image resource. Swap chain backbuffers are textures
// owned by their swap chain.
type Texture struct {
	backend TextureBackend
	size    TextureSize
	format  Format
	usage   TextureUsage
	mips    uint8
}

// TextureHandle is the counted handle to a Texture.
type TextureHandle = Handle[Texture]

func newTexture(backend TextureBackend, size TextureSize, format Format, usage TextureUsage, mips uint8) TextureHandle {
	return NewHandle(Texture{
		backend: backend,
		size:    size,
		format:  format,
		usage:   usage,
		mips:    mips,
	}, (*Texture).destroy)
}

func (t *Texture) destroy() {
	t.backend.Destroy()
}

// Size returns the texture dimensions.
func (t *Texture) Size() TextureSize {
	return t.size
}

// Format returns the texture format.
func (t *Texture) Format() Format {
	return t.format
}

// Usage returns the usages the texture was created with.
func (t *Texture) Usage() TextureUsage {
	return t.usage
}

// MipLevels returns the number of mip levels.
func (t *Texture) MipLevels() uint8 {
	return t.mips
}

// Backend returns the backend token. Only backend implementations have
// business calling this.
func (t *Texture) Backend() TextureBackend {
	return t.backend
}

// RenderTargetView is a render target view of a texture. It holds a weak
// reference to its texture, so a view does not keep the texture alive.
type RenderTargetView struct {
	backend RenderTargetViewBackend
	texture WeakHandle[Texture]
	format  Format
}

// RenderTargetViewHandle is the counted handle to a RenderTargetView.
type RenderTargetViewHandle = Handle[RenderTargetView]

func newRenderTargetView(backend RenderTargetViewBackend, texture TextureHandle, format Format) RenderTargetViewHandle {
	return NewHandle(RenderTargetView{
		backend: backend,
		texture: texture.Downgrade(),
		format:  format,
	}, (*RenderTargetView).destroy)
}

func (v *RenderTargetView) destroy() {
	v.backend.Destroy()
	v.texture.Release()
}

// Texture returns a strong handle to the viewed texture, or false when
// the texture has already been destroyed.
func (v *RenderTargetView) Texture() (TextureHandle, bool) {
	return v.texture.Upgrade()
}

// Format returns the format the view interprets the texture as.
func (v *RenderTargetView) Format() Format {
	return v.format
}

// Backend returns the backend token. Only backend implementations have
// business calling this.
func (v *RenderTargetView) Backend() RenderTargetViewBackend {
	return v.backend
}

// Backbuffer pairs a swap chain texture with its render target view.
type Backbuffer struct {
	Texture      TextureHandle
	RenderTarget RenderTargetViewHandle
}

func (b *Backbuffer) release() {
	b.RenderTarget.Release()
	b.Texture.Release()
}
