package ral_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/onca-engine/ral"
	"github.com/onca-engine/ral/mock"
)

// testSwapChain bundles a swap chain created through the public entry
// points with the mocks behind it.
type testSwapChain struct {
	backend  *mock.MockSwapChainBackend
	queue    ral.CommandQueueHandle
	handle   ral.SwapChainHandle
	textures []*mock.MockTextureBackend
	views    []*mock.MockRenderTargetViewBackend
}

func (s *testSwapChain) chain() *ral.SwapChain {
	return s.handle.Get()
}

// close releases the swap chain, expecting the native teardown of the
// current backbuffer set and the swap chain itself.
func (s *testSwapChain) close(t *testing.T) {
	t.Helper()
	for i := range s.textures {
		s.views[i].EXPECT().Destroy()
		s.textures[i].EXPECT().Destroy()
	}
	s.backend.EXPECT().Destroy()
	s.handle.Release()
	s.queue.Release()
}

func mockBackbuffers(ctrl *gomock.Controller, count int) ([]*mock.MockTextureBackend, []*mock.MockRenderTargetViewBackend, []ral.BackbufferBackends) {
	textures := make([]*mock.MockTextureBackend, count)
	views := make([]*mock.MockRenderTargetViewBackend, count)
	backends := make([]ral.BackbufferBackends, count)
	for i := 0; i < count; i++ {
		textures[i] = mock.NewMockTextureBackend(ctrl)
		views[i] = mock.NewMockRenderTargetViewBackend(ctrl)
		backends[i] = ral.BackbufferBackends{
			Texture:      textures[i],
			RenderTarget: views[i],
		}
	}
	return textures, views, backends
}

func testSwapChainDesc(queue ral.CommandQueueHandle) *ral.SwapChainDesc {
	return &ral.SwapChainDesc{
		WindowHandle:   1,
		Width:          1280,
		Height:         720,
		NumBackbuffers: 3,
		Formats:        []ral.Format{ral.FormatB8G8R8A8Srgb, ral.FormatB8G8R8A8UNorm},
		Usages:         ral.TextureUsageColorAttachment | ral.TextureUsageCopyDst,
		PresentMode:    ral.PresentModeMailbox,
		Queue:          queue,
	}
}

func newTestSwapChain(t *testing.T, d *testDevice) *testSwapChain {
	t.Helper()

	queue := d.device().Queue(ral.QueueTypeGraphics, ral.QueuePriorityNormal)
	desc := testSwapChainDesc(queue)

	backend := mock.NewMockSwapChainBackend(d.ctrl)
	textures, views, backbuffers := mockBackbuffers(d.ctrl, desc.NumBackbuffers)
	d.backend.EXPECT().CreateSwapChain(d.adapter, desc).Return(backend, &ral.SwapChainResultInfo{
		Backbuffers:    backbuffers,
		Width:          desc.Width,
		Height:         desc.Height,
		NumBackbuffers: desc.NumBackbuffers,
		Format:         ral.FormatB8G8R8A8Srgb,
		Usages:         desc.Usages,
		PresentMode:    desc.PresentMode,
	}, nil)

	handle, err := d.device().CreateSwapChain(desc)
	require.NoError(t, err)

	return &testSwapChain{
		backend:  backend,
		queue:    queue,
		handle:   handle,
		textures: textures,
		views:    views,
	}
}

func TestSwapChainDescValidation(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)

	queue := d.device().Queue(ral.QueueTypeGraphics, ral.QueuePriorityNormal)
	defer queue.Release()

	tests := []struct {
		name   string
		mutate func(*ral.SwapChainDesc)
	}{
		{"zero width", func(d *ral.SwapChainDesc) { d.Width = 0 }},
		{"negative height", func(d *ral.SwapChainDesc) { d.Height = -1 }},
		{"zero backbuffers", func(d *ral.SwapChainDesc) { d.NumBackbuffers = 0 }},
		{"too many backbuffers", func(d *ral.SwapChainDesc) { d.NumBackbuffers = ral.MaxBackbuffers + 1 }},
		{"no formats", func(d *ral.SwapChainDesc) { d.Formats = nil }},
		{"no usages", func(d *ral.SwapChainDesc) { d.Usages = 0 }},
		{"invalid queue", func(d *ral.SwapChainDesc) { d.Queue = ral.CommandQueueHandle{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := testSwapChainDesc(queue)
			tt.mutate(desc)

			// No backend expectation: a bad desc must be rejected
			// before the backend sees it.
			_, err := d.device().CreateSwapChain(desc)
			require.ErrorIs(t, err, ral.ErrInvalidParameter)
		})
	}

	_, err := d.device().CreateSwapChain(nil)
	require.ErrorIs(t, err, ral.ErrInvalidParameter)
}

func TestSwapChainReportsBackendResult(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)
	s := newTestSwapChain(t, d)
	defer s.close(t)

	require.Equal(t, ral.FormatB8G8R8A8Srgb, s.chain().Format())
	require.Equal(t, ral.TextureUsageColorAttachment|ral.TextureUsageCopyDst, s.chain().Usages())
	require.Equal(t, 3, s.chain().NumBackbuffers())
	require.Equal(t, ral.PresentModeMailbox, s.chain().PresentMode())

	width, height := s.chain().Size()
	require.Equal(t, 1280, width)
	require.Equal(t, 720, height)
}

func TestSwapChainCreationFailure(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)

	queue := d.device().Queue(ral.QueueTypeGraphics, ral.QueuePriorityNormal)
	defer queue.Release()
	desc := testSwapChainDesc(queue)

	d.backend.EXPECT().CreateSwapChain(d.adapter, desc).Return(nil, nil, ral.ErrUnsupportedFormat)

	_, err := d.device().CreateSwapChain(desc)
	require.ErrorIs(t, err, ral.ErrUnsupportedFormat)
}

func TestSwapChainAcquireAndCurrentBackbuffer(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)
	s := newTestSwapChain(t, d)
	defer s.close(t)

	s.backend.EXPECT().AcquireNextBackbuffer().Return(2, nil)
	index, err := s.chain().AcquireNextBackbuffer()
	require.NoError(t, err)
	require.Equal(t, 2, index)

	backbuffer := s.chain().CurrentBackbuffer()
	require.True(t, backbuffer.Texture.IsValid())
	require.True(t, backbuffer.RenderTarget.IsValid())

	size := backbuffer.Texture.Get().Size()
	require.Equal(t, uint32(1280), size.Width)
	require.Equal(t, uint32(720), size.Height)
	require.Equal(t, ral.FormatB8G8R8A8Srgb, backbuffer.Texture.Get().Format())

	viewed, ok := backbuffer.RenderTarget.Get().Texture()
	require.True(t, ok)
	require.True(t, viewed.Same(backbuffer.Texture))

	viewed.Release()
	backbuffer.RenderTarget.Release()
	backbuffer.Texture.Release()
}

func TestSwapChainAcquireFailure(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)
	s := newTestSwapChain(t, d)
	defer s.close(t)

	s.backend.EXPECT().AcquireNextBackbuffer().Return(0, ral.ErrDeviceLost)
	_, err := s.chain().AcquireNextBackbuffer()
	require.ErrorIs(t, err, ral.ErrDeviceLost)
}

func TestSwapChainPresent(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)
	s := newTestSwapChain(t, d)
	defer s.close(t)

	s.backend.EXPECT().AcquireNextBackbuffer().Return(1, nil)
	_, err := s.chain().AcquireNextBackbuffer()
	require.NoError(t, err)

	s.backend.EXPECT().Present(ral.PresentModeMailbox, 1, s.queue.Get(), nil).Return(nil)
	require.NoError(t, s.chain().Present(nil))

	info := &ral.PresentInfo{UpdateRects: []ral.Rect{{Width: 64, Height: 64}}}
	s.backend.EXPECT().Present(ral.PresentModeMailbox, 1, s.queue.Get(), info).Return(nil)
	require.NoError(t, s.chain().Present(info))
}

func TestSwapChainPresentRejectsEmptyUpdateRects(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)
	s := newTestSwapChain(t, d)
	defer s.close(t)

	// A non-nil but empty rect list is a caller mistake, not "present
	// everything". The backend must not be reached.
	err := s.chain().Present(&ral.PresentInfo{UpdateRects: []ral.Rect{}})
	require.ErrorIs(t, err, ral.ErrInvalidParameter)
}

func TestSwapChainChangePresentModeFieldOnly(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)
	s := newTestSwapChain(t, d)
	defer s.close(t)

	// Same mode is a no-op without touching the backend.
	require.NoError(t, s.chain().ChangePresentMode(ral.PresentModeMailbox))

	s.backend.EXPECT().NeedsRecreateForPresentMode(ral.PresentModeFifo).Return(false, nil)
	require.NoError(t, s.chain().ChangePresentMode(ral.PresentModeFifo))
	require.Equal(t, ral.PresentModeFifo, s.chain().PresentMode())
	require.Equal(t, 3, s.chain().NumBackbuffers())
}

func TestSwapChainChangePresentModeRecreates(t *testing.T) {
	for _, answer := range []struct {
		name string
		err  error
	}{
		{"backend says recreate", nil},
		{"backend cannot answer", ral.ErrNotImplemented},
	} {
		t.Run(answer.name, func(t *testing.T) {
			d := newTestDevice(t, 0, false)
			defer d.close(t)
			s := newTestSwapChain(t, d)

			textures, views, backbuffers := mockBackbuffers(d.ctrl, 3)
			if answer.err != nil {
				s.backend.EXPECT().NeedsRecreateForPresentMode(ral.PresentModeImmediate).Return(false, answer.err)
			} else {
				s.backend.EXPECT().NeedsRecreateForPresentMode(ral.PresentModeImmediate).Return(true, nil)
			}
			s.backend.EXPECT().RecreateBackbuffers(gomock.AssignableToTypeOf(&ral.SwapChainChangeParams{})).
				DoAndReturn(func(params *ral.SwapChainChangeParams) (*ral.SwapChainRecreateInfo, error) {
					require.Equal(t, ral.PresentModeImmediate, params.PresentMode)
					require.Equal(t, 1280, params.Width)
					require.Equal(t, 720, params.Height)
					require.Equal(t, 3, params.NumBackbuffers)
					require.Same(t, s.queue.Get(), params.Queue)
					return &ral.SwapChainRecreateInfo{
						Backbuffers: backbuffers,
						Width:       1280,
						Height:      720,
					}, nil
				})
			for i := range s.textures {
				s.views[i].EXPECT().Destroy()
				s.textures[i].EXPECT().Destroy()
			}

			require.NoError(t, s.chain().ChangePresentMode(ral.PresentModeImmediate))
			require.Equal(t, ral.PresentModeImmediate, s.chain().PresentMode())

			s.textures, s.views = textures, views
			s.close(t)
		})
	}
}

func TestSwapChainChangePresentModeQueryFailure(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)
	s := newTestSwapChain(t, d)
	defer s.close(t)

	s.backend.EXPECT().NeedsRecreateForPresentMode(ral.PresentModeFifo).Return(false, ral.ErrDeviceLost)
	err := s.chain().ChangePresentMode(ral.PresentModeFifo)
	require.ErrorIs(t, err, ral.ErrDeviceLost)
	require.Equal(t, ral.PresentModeMailbox, s.chain().PresentMode())
}

func TestSwapChainResizeValidation(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)
	s := newTestSwapChain(t, d)
	defer s.close(t)

	require.ErrorIs(t, s.chain().Resize(0, 720), ral.ErrInvalidParameter)
	require.ErrorIs(t, s.chain().Resize(1280, -1), ral.ErrInvalidParameter)

	// Unchanged size must not reach the backend.
	require.NoError(t, s.chain().Resize(1280, 720))
}

func TestSwapChainResizeAdoptsClampedSize(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)
	s := newTestSwapChain(t, d)

	textures, views, backbuffers := mockBackbuffers(d.ctrl, 3)
	s.backend.EXPECT().RecreateBackbuffers(gomock.AssignableToTypeOf(&ral.SwapChainChangeParams{})).
		DoAndReturn(func(params *ral.SwapChainChangeParams) (*ral.SwapChainRecreateInfo, error) {
			require.Equal(t, 4096, params.Width)
			require.Equal(t, 4096, params.Height)
			require.Equal(t, ral.PresentModeMailbox, params.PresentMode)
			// The backend clamps to its surface maximum.
			return &ral.SwapChainRecreateInfo{
				Backbuffers: backbuffers,
				Width:       2048,
				Height:      2048,
			}, nil
		})
	for i := range s.textures {
		s.views[i].EXPECT().Destroy()
		s.textures[i].EXPECT().Destroy()
	}

	require.NoError(t, s.chain().Resize(4096, 4096))

	width, height := s.chain().Size()
	require.Equal(t, 2048, width)
	require.Equal(t, 2048, height)

	backbuffer := s.chain().CurrentBackbuffer()
	size := backbuffer.Texture.Get().Size()
	require.Equal(t, uint32(2048), size.Width)
	backbuffer.RenderTarget.Release()
	backbuffer.Texture.Release()

	s.textures, s.views = textures, views
	s.close(t)
}

func TestSwapChainResizeFailureKeepsOldBackbuffers(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)
	s := newTestSwapChain(t, d)
	defer s.close(t)

	before := s.chain().CurrentBackbuffer()

	// No Destroy expectations on the old set: a failed rebuild must
	// leave it untouched.
	s.backend.EXPECT().RecreateBackbuffers(gomock.Any()).Return(nil, ral.ErrOutOfDeviceMemory)
	err := s.chain().Resize(640, 480)
	require.ErrorIs(t, err, ral.ErrOutOfDeviceMemory)

	width, height := s.chain().Size()
	require.Equal(t, 1280, width)
	require.Equal(t, 720, height)

	after := s.chain().CurrentBackbuffer()
	require.True(t, after.Texture.Same(before.Texture))

	after.RenderTarget.Release()
	after.Texture.Release()
	before.RenderTarget.Release()
	before.Texture.Release()
}

func TestSwapChainRenderTargetViewOutlivesTexture(t *testing.T) {
	d := newTestDevice(t, 0, false)
	defer d.close(t)
	s := newTestSwapChain(t, d)

	backbuffer := s.chain().CurrentBackbuffer()
	view := backbuffer.RenderTarget.Clone()
	backbuffer.RenderTarget.Release()
	backbuffer.Texture.Release()

	s.close(t)

	// The swap chain released its backbuffers, so the weak texture
	// reference inside the surviving view can no longer be upgraded.
	_, ok := view.Get().Texture()
	require.False(t, ok)
	view.Release()
}

func TestPresentModeString(t *testing.T) {
	require.Equal(t, "Immediate", ral.PresentModeImmediate.String())
	require.Equal(t, "Mailbox", ral.PresentModeMailbox.String())
	require.Equal(t, "Fifo", ral.PresentModeFifo.String())
	require.Equal(t, "Unknown", ral.PresentMode(200).String())
}
