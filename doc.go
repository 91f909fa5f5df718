// Package ral is a thin abstraction layer over native rendering APIs.
//
// Applications load a backend module (Vulkan, DirectX 12, a software
// rasterizer) through New, pick a PhysicalDevice, create a Device and
// from it the resources they render with: buffers, textures, swap
// chains, fences and command pools. Resources are reference counted
// through Handle, with deterministic native teardown when the last
// strong reference goes away.
//
// GPU memory placement is delegated to an application-supplied
// GpuAllocatorStrategy; the gpualloc package ships a simple dedicated
// allocator to start from.
//
// Backend packages register themselves on import:
//
//	import _ "github.com/onca-engine/ral/vulkan"
package ral
