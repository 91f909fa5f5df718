package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"

	"github.com/onca-engine/ral"
)

// SurfaceConstructor builds a khr_surface.Surface from the raw OS
// handles an application passes in a swap chain desc. Surface creation
// is platform specific (win32, xlib, wayland, metal), so the embedding
// application installs the constructor for its platform before creating
// swap chains. A nil constructor fails swap chain creation with
// ral.ErrNotImplemented.
var SurfaceConstructor func(instance core1_0.Instance, appHandle, windowHandle uintptr) (khr_surface.Surface, error)

func (d *deviceBackend) CreateSwapChain(physicalDevice *ral.PhysicalDevice, desc *ral.SwapChainDesc) (ral.SwapChainBackend, *ral.SwapChainResultInfo, error) {
	pd, ok := physicalDevice.Backend().(*physicalDeviceBackend)
	if !ok {
		return nil, nil, errors.New("the physical device was not enumerated by this backend")
	}
	if SurfaceConstructor == nil {
		return nil, nil, errors.Wrap(ral.ErrNotImplemented,
			"no surface constructor installed for this platform")
	}

	surface, err := SurfaceConstructor(d.backend.instance, desc.AppHandle, desc.WindowHandle)
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating the window surface")
	}

	presentFamily := int(desc.Queue.Get().Index())
	supported, res, err := surface.PhysicalDeviceSurfaceSupport(pd.device, presentFamily)
	if err != nil {
		surface.Destroy(nil)
		return nil, nil, ralError(res, errors.Wrap(err, "querying surface support"))
	}
	if !supported {
		surface.Destroy(nil)
		return nil, nil, errors.Wrapf(ral.ErrMissingCapability,
			"queue family %d cannot present to this surface", presentFamily)
	}

	s := &swapChain{
		device:   d,
		surface:  surface,
		ext:      khr_swapchain.CreateExtensionFromDevice(d.device),
		phys:     pd,
		alpha:    desc.AlphaMode,
		preserve: desc.PreserveAfterPresent,
	}

	s.acquireFence, res, err = d.device.CreateFence(nil, core1_0.FenceCreateInfo{})
	if err != nil {
		surface.Destroy(nil)
		return nil, nil, ralError(res, errors.Wrap(err, "creating the acquire fence"))
	}

	vkFormat, colorSpace, format, err := s.chooseSurfaceFormat(desc.Formats)
	if err != nil {
		s.Destroy()
		return nil, nil, err
	}
	s.vkFormat = vkFormat
	s.colorSpace = colorSpace

	build, err := s.buildSwapchain(buildParams{
		width:          desc.Width,
		height:         desc.Height,
		numBackbuffers: desc.NumBackbuffers,
		usages:         desc.Usages,
		presentMode:    desc.PresentMode,
	})
	if err != nil {
		s.Destroy()
		return nil, nil, err
	}
	s.adopt(build)

	return s, &ral.SwapChainResultInfo{
		Backbuffers:    build.backbuffers,
		Width:          build.width,
		Height:         build.height,
		NumBackbuffers: len(build.backbuffers),
		Format:         format,
		Usages:         desc.Usages,
		PresentMode:    build.presentMode,
	}, nil
}

type swapChain struct {
	device  *deviceBackend
	surface khr_surface.Surface
	ext     khr_swapchain.Extension
	phys    *physicalDeviceBackend

	vkFormat   core1_0.Format
	colorSpace khr_surface.ColorSpace
	alpha      ral.SwapChainAlphaMode
	preserve   bool

	swapchain    khr_swapchain.Swapchain
	acquireFence core1_0.Fence
}

// buildParams is the subset of swap chain parameters a (re)build needs.
type buildParams struct {
	width          int
	height         int
	numBackbuffers int
	usages         ral.TextureUsage
	presentMode    ral.PresentMode
}

// built is the outcome of one native swapchain build: the new native
// object and the fully wrapped replacement backbuffer set.
type built struct {
	swapchain   khr_swapchain.Swapchain
	backbuffers []ral.BackbufferBackends
	width       int
	height      int
	presentMode ral.PresentMode
}

func (s *swapChain) chooseSurfaceFormat(preferences []ral.Format) (core1_0.Format, khr_surface.ColorSpace, ral.Format, error) {
	surfaceFormats, res, err := s.surface.PhysicalDeviceSurfaceFormats(s.phys.device)
	if err != nil {
		return 0, 0, 0, ralError(res, errors.Wrap(err, "querying surface formats"))
	}

	for _, preference := range preferences {
		vkFormat, ok := VkFormat(preference)
		if !ok {
			continue
		}
		for _, surfaceFormat := range surfaceFormats {
			if surfaceFormat.Format == vkFormat && surfaceFormat.ColorSpace == khr_surface.ColorSpaceSRGBNonlinear {
				return vkFormat, surfaceFormat.ColorSpace, preference, nil
			}
		}
	}
	return 0, 0, 0, errors.Wrapf(ral.ErrUnsupportedFormat,
		"none of the %d preferred formats is displayable on this surface", len(preferences))
}

// buildSwapchain creates a native swapchain for the given parameters,
// retiring the current one (if any) through oldSwapchain, and wraps its
// images into backbuffer backends. The caller swaps the result in; on
// error the previous native state is untouched.
func (s *swapChain) buildSwapchain(params buildParams) (*built, error) {
	caps, res, err := s.surface.PhysicalDeviceSurfaceCapabilities(s.phys.device)
	if err != nil {
		return nil, ralError(res, errors.Wrap(err, "querying surface capabilities"))
	}

	width, height := surfaceExtent(caps, params.width, params.height)
	imageCount := clampInt(params.numBackbuffers, caps.MinImageCount, caps.MaxImageCount)
	presentMode, err := s.choosePresentMode(params.presentMode)
	if err != nil {
		return nil, err
	}

	swapchain, res, err := s.ext.CreateSwapchain(s.device.device, nil, khr_swapchain.SwapchainCreateInfo{
		Surface:          s.surface,
		MinImageCount:    imageCount,
		ImageFormat:      s.vkFormat,
		ImageColorSpace:  s.colorSpace,
		ImageExtent:      core1_0.Extent2D{Width: width, Height: height},
		ImageArrayLayers: 1,
		ImageUsage:       vkImageUsage(params.usages),
		ImageSharingMode: core1_0.SharingModeExclusive,
		PreTransform:     caps.CurrentTransform,
		CompositeAlpha:   vkCompositeAlpha(s.alpha),
		PresentMode:      vkPresentMode(presentMode),
		Clipped:          !s.preserve,
		OldSwapchain:     s.swapchain,
	})
	if err != nil {
		return nil, ralError(res, errors.Wrap(err, "creating the vulkan swapchain"))
	}

	backbuffers, err := s.wrapImages(swapchain)
	if err != nil {
		swapchain.Destroy(nil)
		return nil, err
	}

	return &built{
		swapchain:   swapchain,
		backbuffers: backbuffers,
		width:       width,
		height:      height,
		presentMode: presentMode,
	}, nil
}

// adopt swaps a successful build in and retires the previous native
// swapchain. The old image views belong to the old backbuffer handles
// and are destroyed through them.
func (s *swapChain) adopt(build *built) {
	if s.swapchain != nil {
		s.swapchain.Destroy(nil)
	}
	s.swapchain = build.swapchain
}

func (s *swapChain) wrapImages(swapchain khr_swapchain.Swapchain) ([]ral.BackbufferBackends, error) {
	images, res, err := swapchain.SwapchainImages()
	if err != nil {
		return nil, ralError(res, errors.Wrap(err, "querying swapchain images"))
	}

	backbuffers := make([]ral.BackbufferBackends, 0, len(images))
	for _, image := range images {
		view, res, err := s.device.device.CreateImageView(nil, core1_0.ImageViewCreateInfo{
			Image:    image,
			ViewType: core1_0.ImageViewType2D,
			Format:   s.vkFormat,
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask: core1_0.ImageAspectColor,
				LevelCount: 1,
				LayerCount: 1,
			},
		})
		if err != nil {
			for _, wrapped := range backbuffers {
				wrapped.RenderTarget.Destroy()
			}
			return nil, ralError(res, errors.Wrap(err, "creating a backbuffer view"))
		}
		backbuffers = append(backbuffers, ral.BackbufferBackends{
			Texture:      &backbufferTexture{image: image},
			RenderTarget: &backbufferView{view: view},
		})
	}
	return backbuffers, nil
}

// choosePresentMode returns the requested mode when the surface supports
// it, falling back to FIFO, which every surface supports.
func (s *swapChain) choosePresentMode(mode ral.PresentMode) (ral.PresentMode, error) {
	modes, res, err := s.surface.PhysicalDeviceSurfacePresentModes(s.phys.device)
	if err != nil {
		return 0, ralError(res, errors.Wrap(err, "querying surface present modes"))
	}
	wanted := vkPresentMode(mode)
	for _, supported := range modes {
		if supported == wanted {
			return mode, nil
		}
	}
	return ral.PresentModeFifo, nil
}

func (s *swapChain) AcquireNextBackbuffer() (int, error) {
	index, res, err := s.swapchain.AcquireNextImage(common.NoTimeout, nil, s.acquireFence)
	if err != nil {
		return 0, ralError(res, errors.Wrap(err, "acquiring the next backbuffer"))
	}

	res, err = s.device.device.WaitForFences(true, common.NoTimeout, []core1_0.Fence{s.acquireFence})
	if err != nil {
		return 0, ralError(res, errors.Wrap(err, "waiting for the acquire fence"))
	}
	res, err = s.device.device.ResetFences([]core1_0.Fence{s.acquireFence})
	if err != nil {
		return 0, ralError(res, errors.Wrap(err, "resetting the acquire fence"))
	}
	return index, nil
}

func (s *swapChain) Present(mode ral.PresentMode, backbufferIndex int, queue *ral.CommandQueue, info *ral.PresentInfo) error {
	// Update rects need the incremental-present extension, which this
	// backend does not enable; a full present is always correct.
	native, ok := queue.Backend().(*queueBackend)
	if !ok {
		return errors.New("the present queue does not belong to this backend")
	}

	res, err := s.ext.QueuePresent(native.queue, khr_swapchain.PresentInfo{
		Swapchains:   []khr_swapchain.Swapchain{s.swapchain},
		ImageIndices: []int{backbufferIndex},
	})
	return ralError(res, err)
}

// NeedsRecreateForPresentMode always reports true: a Vulkan swapchain
// fixes its present mode at creation.
func (s *swapChain) NeedsRecreateForPresentMode(mode ral.PresentMode) (bool, error) {
	return true, nil
}

func (s *swapChain) RecreateBackbuffers(params *ral.SwapChainChangeParams) (*ral.SwapChainRecreateInfo, error) {
	// Presentation of retired backbuffers must finish before the old
	// swapchain goes away behind them.
	if params.Queue != nil {
		if native, ok := params.Queue.Backend().(*queueBackend); ok {
			if _, err := native.queue.WaitIdle(); err != nil {
				return nil, errors.Wrap(err, "draining the present queue")
			}
		}
	}

	build, err := s.buildSwapchain(buildParams{
		width:          params.Width,
		height:         params.Height,
		numBackbuffers: params.NumBackbuffers,
		usages:         params.Usages,
		presentMode:    params.PresentMode,
	})
	if err != nil {
		return nil, err
	}
	s.adopt(build)

	return &ral.SwapChainRecreateInfo{
		Backbuffers: build.backbuffers,
		Width:       build.width,
		Height:      build.height,
	}, nil
}

func (s *swapChain) Destroy() {
	if s.swapchain != nil {
		s.swapchain.Destroy(nil)
		s.swapchain = nil
	}
	if s.acquireFence != nil {
		s.acquireFence.Destroy(nil)
		s.acquireFence = nil
	}
	s.surface.Destroy(nil)
}

// surfaceExtent picks the swapchain extent: the surface dictates it when
// the window system reports a current extent, otherwise the request is
// clamped to the supported range. Surfaces without a fixed extent report
// a sentinel outside any real resolution.
func surfaceExtent(caps *khr_surface.SurfaceCapabilities, width, height int) (int, int) {
	current := caps.CurrentExtent
	if current.Width > 0 && current.Width < 1<<30 {
		return current.Width, current.Height
	}
	return clampInt(width, caps.MinImageExtent.Width, caps.MaxImageExtent.Width),
		clampInt(height, caps.MinImageExtent.Height, caps.MaxImageExtent.Height)
}

// clampInt clamps value to [low, high]; high <= 0 means unbounded.
func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if high > 0 && value > high {
		return high
	}
	return value
}

// backbufferTexture wraps one swapchain image. The image belongs to the
// swapchain and dies with it, so destroy is a no-op.
type backbufferTexture struct {
	image core1_0.Image
}

func (t *backbufferTexture) Destroy() {}

type backbufferView struct {
	view core1_0.ImageView
}

func (v *backbufferView) Destroy() {
	v.view.Destroy(nil)
}
