package ral

// Cross-backend limits every backend must honor. Backends may exceed these
// natively; the RAL only promises the values below.
const (
	MaxTextureSize2D   = 16384
	MaxTextureLayers2D = 2048

	// MinAllocationAlign is the heap alignment that supports most
	// resources (no MSAA).
	MinAllocationAlign uint64 = 64 * 1024
	// MinMsaaAllocationAlign is the heap alignment that supports all
	// resources, including MSAA targets.
	MinMsaaAllocationAlign uint64 = 4 * 1024 * 1024

	MinTexelBufferOffsetAlign    uint64 = 64
	MinConstantBufferOffsetAlign uint64 = 64
	MinStorageBufferOffsetAlign  uint64 = 64
	ConstantBufferSizeAlign      uint64 = 256

	// MaxBackbuffers bounds the backbuffer ring a swap chain may request.
	MaxBackbuffers = 8
)
