package ral

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// PresentMode controls how presents are paced against the display.
type PresentMode uint8

const (
	// PresentModeImmediate presents without waiting for vsync, tearing allowed.
	PresentModeImmediate PresentMode = iota
	// PresentModeMailbox replaces the queued image, no tearing, low latency.
	PresentModeMailbox
	// PresentModeFifo queues images and presents on vsync.
	PresentModeFifo
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeImmediate:
		return "Immediate"
	case PresentModeMailbox:
		return "Mailbox"
	case PresentModeFifo:
		return "Fifo"
	}
	return "Unknown"
}

// SwapChainAlphaMode controls how the backbuffer alpha channel is
// composited with the rest of the desktop.
type SwapChainAlphaMode uint8

const (
	// SwapChainAlphaModeIgnored composites without alpha.
	SwapChainAlphaModeIgnored SwapChainAlphaMode = iota
	// SwapChainAlphaModePremultiplied expects premultiplied alpha.
	SwapChainAlphaModePremultiplied
	// SwapChainAlphaModePostmultiplied expects straight alpha.
	SwapChainAlphaModePostmultiplied
	// SwapChainAlphaModeUnspecified lets the backend pick.
	SwapChainAlphaModeUnspecified
)

// Rect is a region of a backbuffer, in pixels.
type Rect struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// PresentInfo carries optional per-present parameters. A nil UpdateRects
// presents the whole backbuffer; a non-nil list must be non-empty.
type PresentInfo struct {
	UpdateRects []Rect
}

// SwapChainDesc describes a swap chain to be created. The backend may
// clamp the size and backbuffer count; the values actually used are
// readable from the created swap chain.
type SwapChainDesc struct {
	// AppHandle is the OS application/instance handle.
	AppHandle uintptr
	// WindowHandle is the OS window handle to present to.
	WindowHandle uintptr
	// Width and Height of the window surface in pixels.
	Width  int
	Height int
	// NumBackbuffers requested, at most MaxBackbuffers.
	NumBackbuffers int
	// Formats is the ordered preference list; the first format the
	// backend supports for display wins.
	Formats []Format
	// Usages the backbuffer textures are created with.
	Usages TextureUsage
	// PresentMode to start in.
	PresentMode PresentMode
	// AlphaMode for desktop composition.
	AlphaMode SwapChainAlphaMode
	// PreserveAfterPresent keeps backbuffer contents valid across a
	// present, when the backend supports it.
	PreserveAfterPresent bool
	// Queue the swap chain presents on.
	Queue CommandQueueHandle
}

func (d *SwapChainDesc) validate() error {
	if d == nil {
		return invalidParameterf("swap chain desc may not be nil")
	}
	if d.Width <= 0 || d.Height <= 0 {
		return invalidParameterf("swap chain size %dx%d must be positive", d.Width, d.Height)
	}
	if d.NumBackbuffers < 1 || d.NumBackbuffers > MaxBackbuffers {
		return invalidParameterf("swap chain needs between 1 and %d backbuffers, got %d", MaxBackbuffers, d.NumBackbuffers)
	}
	if len(d.Formats) == 0 {
		return invalidParameterf("swap chain needs at least one preferred format")
	}
	if d.Usages == 0 {
		return invalidParameterf("swap chain backbuffers need at least one usage")
	}
	if !d.Queue.IsValid() {
		return invalidParameterf("swap chain needs a valid present queue")
	}
	return nil
}

// swapChainDynamic is the mutable part of a swap chain, guarded by
// SwapChain.mu. Backbuffers are recreated wholesale on resolution or
// incompatible present-mode changes, never resized in place.
type swapChainDynamic struct {
	width        int
	height       int
	presentMode  PresentMode
	backbuffers  []Backbuffer
	currentIndex int
}

// SwapChain is a per-window presentation surface owning a ring of
// backbuffer textures.
type SwapChain struct {
	device               WeakHandle[Device]
	backend              SwapChainBackend
	format               Format
	usages               TextureUsage
	alphaMode            SwapChainAlphaMode
	preserveAfterPresent bool
	queue                CommandQueueHandle

	mu      sync.RWMutex
	dynamic swapChainDynamic
}

// SwapChainHandle is the counted handle to a SwapChain.
type SwapChainHandle = Handle[SwapChain]

func newSwapChain(device *Device, desc *SwapChainDesc, backend SwapChainBackend, result *SwapChainResultInfo) SwapChainHandle {
	size := Texture2DSize(uint32(result.Width), uint32(result.Height), 1)
	return NewHandle(SwapChain{
		device:               device.self.Clone(),
		backend:              backend,
		format:               result.Format,
		usages:               result.Usages,
		alphaMode:            desc.AlphaMode,
		preserveAfterPresent: desc.PreserveAfterPresent,
		queue:                desc.Queue.Clone(),
		dynamic: swapChainDynamic{
			width:       result.Width,
			height:      result.Height,
			presentMode: result.PresentMode,
			backbuffers: wrapBackbuffers(result.Backbuffers, size, result.Format, result.Usages),
		},
	}, (*SwapChain).destroy)
}

func wrapBackbuffers(backends []BackbufferBackends, size TextureSize, format Format, usages TextureUsage) []Backbuffer {
	backbuffers := make([]Backbuffer, len(backends))
	for i, b := range backends {
		texture := newTexture(b.Texture, size, format, usages, 1)
		backbuffers[i] = Backbuffer{
			Texture:      texture,
			RenderTarget: newRenderTargetView(b.RenderTarget, texture, format),
		}
	}
	return backbuffers
}

func (s *SwapChain) destroy() {
	for i := range s.dynamic.backbuffers {
		s.dynamic.backbuffers[i].release()
	}
	s.backend.Destroy()
	s.queue.Release()
	s.device.Release()
}

// Format returns the backbuffer format the backend picked from the
// preference list.
func (s *SwapChain) Format() Format {
	return s.format
}

// Usages returns the backbuffer usages.
func (s *SwapChain) Usages() TextureUsage {
	return s.usages
}

// NumBackbuffers returns the number of backbuffers in the ring.
func (s *SwapChain) NumBackbuffers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dynamic.backbuffers)
}

// Size returns the current backbuffer size in pixels.
func (s *SwapChain) Size() (width, height int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dynamic.width, s.dynamic.height
}

// PresentMode returns the current present mode.
func (s *SwapChain) PresentMode() PresentMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dynamic.presentMode
}

// CurrentBackbuffer returns strong handles to the backbuffer selected by
// the last acquire.
func (s *SwapChain) CurrentBackbuffer() Backbuffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	current := s.dynamic.backbuffers[s.dynamic.currentIndex]
	return Backbuffer{
		Texture:      current.Texture.Clone(),
		RenderTarget: current.RenderTarget.Clone(),
	}
}

// AcquireNextBackbuffer blocks until a backbuffer is available and makes
// it the current one.
func (s *SwapChain) AcquireNextBackbuffer() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index, err := s.backend.AcquireNextBackbuffer()
	if err != nil {
		return 0, wrapBackendErr(err, "acquiring next backbuffer")
	}
	s.dynamic.currentIndex = index
	return index, nil
}

// Present presents the current backbuffer on the owning queue.
func (s *SwapChain) Present(info *PresentInfo) error {
	if info != nil && info.UpdateRects != nil && len(info.UpdateRects) == 0 {
		return invalidParameterf("a present update-rect list may not be empty")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	err := s.backend.Present(s.dynamic.presentMode, s.dynamic.currentIndex, s.queue.Get(), info)
	return wrapBackendErr(err, "presenting backbuffer %d", s.dynamic.currentIndex)
}

// ChangePresentMode switches to mode. When the backend reports the
// switch needs new backbuffers, or cannot answer, the ring is rebuilt
// first; otherwise only the mode field changes.
func (s *SwapChain) ChangePresentMode(mode PresentMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode == s.dynamic.presentMode {
		return nil
	}
	needsRecreate, err := s.backend.NeedsRecreateForPresentMode(mode)
	if err != nil {
		if !errors.Is(err, ErrNotImplemented) {
			return wrapBackendErr(err, "querying present mode %v", mode)
		}
		needsRecreate = true
	}
	if !needsRecreate {
		s.dynamic.presentMode = mode
		return nil
	}
	params := s.changeParams()
	params.PresentMode = mode
	return s.recreateBackbuffers(params)
}

// Resize resizes the backbuffers to width x height. Unchanged dimensions
// are a no-op. The size actually used may differ from the request when
// the backend clamps it.
func (s *SwapChain) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return invalidParameterf("swap chain size %dx%d must be positive", width, height)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if width == s.dynamic.width && height == s.dynamic.height {
		return nil
	}
	params := s.changeParams()
	params.Width = width
	params.Height = height
	return s.recreateBackbuffers(params)
}

// changeParams snapshots the recreation parameters. Caller holds mu.
func (s *SwapChain) changeParams() *SwapChainChangeParams {
	return &SwapChainChangeParams{
		Width:          s.dynamic.width,
		Height:         s.dynamic.height,
		NumBackbuffers: len(s.dynamic.backbuffers),
		Format:         s.format,
		Usages:         s.usages,
		PresentMode:    s.dynamic.presentMode,
		AlphaMode:      s.alphaMode,
		Queue:          s.queue.Get(),
	}
}

// recreateBackbuffers rebuilds the ring through the backend. The
// replacement set is fully built before it replaces the old one, so a
// backend failure leaves the old backbuffers intact. Caller holds mu for
// writing.
func (s *SwapChain) recreateBackbuffers(params *SwapChainChangeParams) error {
	info, err := s.backend.RecreateBackbuffers(params)
	if err != nil {
		return wrapBackendErr(err, "recreating %d backbuffers at %dx%d", params.NumBackbuffers, params.Width, params.Height)
	}
	size := Texture2DSize(uint32(info.Width), uint32(info.Height), 1)
	replacement := wrapBackbuffers(info.Backbuffers, size, s.format, s.usages)

	old := s.dynamic.backbuffers
	s.dynamic.backbuffers = replacement
	s.dynamic.width = info.Width
	s.dynamic.height = info.Height
	s.dynamic.presentMode = params.PresentMode
	s.dynamic.currentIndex = 0
	for i := range old {
		old[i].release()
	}
	return nil
}
