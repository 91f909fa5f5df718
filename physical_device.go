package ral

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// PhysicalDeviceType classifies an adapter.
type PhysicalDeviceType uint8

const (
	PhysicalDeviceTypeDiscrete PhysicalDeviceType = iota
	PhysicalDeviceTypeIntegrated
	PhysicalDeviceTypeVirtual
	PhysicalDeviceTypeSoftware
)

var physicalDeviceTypeNames = [...]string{"Discrete", "Integrated", "Virtual", "Software"}

func (t PhysicalDeviceType) String() string {
	if int(t) >= len(physicalDeviceTypeNames) {
		return "PhysicalDeviceType(invalid)"
	}
	return physicalDeviceTypeNames[t]
}

// Capabilities records optional features probed once at enumeration time,
// so call sites can branch without re-querying the backend.
type Capabilities uint32

const (
	// CapabilityRasterizerOrderViews: rasterizer ordered views are
	// supported.
	CapabilityRasterizerOrderViews Capabilities = 1 << iota
	// CapabilityMinSampleShading: a [0;1] scalar can set the minimum
	// fraction of shader invocations per pixel.
	CapabilityMinSampleShading
	// CapabilityBackgroundShaderRecompilation: the driver can re-optimize
	// shaders asynchronously.
	CapabilityBackgroundShaderRecompilation
	// CapabilityMemoryBudget: the backend can report live memory budget
	// and usage per heap.
	CapabilityMemoryBudget
	// CapabilityRealtimeQueues: the backend exposes a global-realtime
	// queue priority band above High.
	CapabilityRealtimeQueues
	// CapabilitySwapChainPresentModeSwitch: the backend can switch
	// present modes without rebuilding the backbuffer set.
	CapabilitySwapChainPresentModeSwitch
)

// Version is a backend-reported driver or API version.
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// MemoryTypeFlags describe one native memory type.
type MemoryTypeFlags uint8

const (
	MemoryTypeDeviceLocal MemoryTypeFlags = 1 << iota
	MemoryTypeHostVisible
	MemoryTypeHostCoherent
	MemoryTypeHostCached
)

// MemoryHeapFlags describe one native memory heap.
type MemoryHeapFlags uint8

const (
	MemoryHeapDeviceLocal MemoryHeapFlags = 1 << iota
	MemoryHeapMultiInstance
)

// MemoryTypeInfo is one native memory type and the heap it draws from.
type MemoryTypeInfo struct {
	Flags     MemoryTypeFlags
	HeapIndex int
}

// MemoryHeapInfo is one native memory heap.
type MemoryHeapInfo struct {
	Flags MemoryHeapFlags
	Size  uint64
}

// MemoryInfo is the full memory layout of an adapter.
type MemoryInfo struct {
	Types []MemoryTypeInfo
	Heaps []MemoryHeapInfo
}

// MemoryBudgetValue is the budget/usage pair for one heap.
type MemoryBudgetValue struct {
	// Budget is an OS-provided estimate of how much the process may use.
	Budget uint64
	// Usage is the process's current usage.
	Usage uint64
}

// MemoryBudgetInfo is a point-in-time memory budget snapshot.
type MemoryBudgetInfo struct {
	Heaps []MemoryBudgetValue
}

// QueueCount is a backend-reported queue count that may be unknown.
type QueueCount struct {
	Known bool
	Count uint32
}

// QueueInfo describes one queue family as reported by the backend.
type QueueInfo struct {
	Type  QueueType
	Count QueueCount
	// Index is the native family index.
	Index uint8
}

// PhysicalDeviceBackend is the per-adapter backend surface: the handful
// of queries that go to the native API after enumeration.
type PhysicalDeviceBackend interface {
	// MemoryBudget returns the current budget snapshot. Backends without
	// CapabilityMemoryBudget return ErrNotImplemented.
	MemoryBudget() (MemoryBudgetInfo, error)
	// ReserveMemory hints the OS that the process will use the given
	// amount on a heap.
	ReserveMemory(heapIndex int, bytes uint64) error
}

// PhysicalDevice is an immutable adapter description produced by one
// enumeration call and never mutated afterwards. Enumeration is a pure
// query: an ordered list, stable for a static hardware configuration,
// repeatable on demand.
type PhysicalDevice struct {
	backend PhysicalDeviceBackend

	Name          string
	Type          PhysicalDeviceType
	VendorID      uint32
	ProductID     uint32
	DriverVersion Version
	APIVersion    Version

	QueueInfos   [QueueTypeCount]QueueInfo
	Memory       MemoryInfo
	Capabilities Capabilities
}

// NewPhysicalDevice binds an adapter description to its backend. Only
// backend implementations call this.
func NewPhysicalDevice(backend PhysicalDeviceBackend, desc PhysicalDevice) *PhysicalDevice {
	desc.backend = backend
	return &desc
}

// Backend returns the backend token. Only backend implementations have
// business calling this.
func (p *PhysicalDevice) Backend() PhysicalDeviceBackend { return p.backend }

// HasCapabilities reports whether all given capabilities are present.
func (p *PhysicalDevice) HasCapabilities(caps Capabilities) bool {
	return p.Capabilities&caps == caps
}

// MemoryBudget queries the current memory budget snapshot from the
// backend.
func (p *PhysicalDevice) MemoryBudget() (MemoryBudgetInfo, error) {
	return p.backend.MemoryBudget()
}

// ReserveMemory forwards a memory reservation hint to the backend.
func (p *PhysicalDevice) ReserveMemory(heapIndex int, bytes uint64) error {
	if heapIndex < 0 || heapIndex >= len(p.Memory.Heaps) {
		return invalidParameterf("heap index %d out of range, adapter has %d heaps", heapIndex, len(p.Memory.Heaps))
	}
	return p.backend.ReserveMemory(heapIndex, bytes)
}

// BuildStatsString dumps the adapter description, memory layout and (when
// available) live budget as a JSON document.
func (p *PhysicalDevice) BuildStatsString(indent bool) string {
	writer := jwriter.NewWriter()
	obj := writer.Object()

	obj.Name("Name").String(p.Name)
	obj.Name("Type").String(p.Type.String())
	obj.Name("VendorID").Int(int(p.VendorID))
	obj.Name("ProductID").Int(int(p.ProductID))
	obj.Name("DriverVersion").String(p.DriverVersion.String())
	obj.Name("ApiVersion").String(p.APIVersion.String())

	budget, budgetErr := p.MemoryBudget()

	heapsArray := obj.Name("MemoryHeaps").Array()
	for i, heap := range p.Memory.Heaps {
		heapObj := heapsArray.Object()
		heapObj.Name("Size").Int(int(heap.Size))
		heapObj.Name("DeviceLocal").Bool(heap.Flags&MemoryHeapDeviceLocal != 0)
		if budgetErr == nil && i < len(budget.Heaps) {
			heapObj.Name("Budget").Int(int(budget.Heaps[i].Budget))
			heapObj.Name("Usage").Int(int(budget.Heaps[i].Usage))
		}
		heapObj.End()
	}
	heapsArray.End()

	typesArray := obj.Name("MemoryTypes").Array()
	for _, memType := range p.Memory.Types {
		typeObj := typesArray.Object()
		typeObj.Name("HeapIndex").Int(memType.HeapIndex)
		typeObj.Name("DeviceLocal").Bool(memType.Flags&MemoryTypeDeviceLocal != 0)
		typeObj.Name("HostVisible").Bool(memType.Flags&MemoryTypeHostVisible != 0)
		typeObj.Name("HostCoherent").Bool(memType.Flags&MemoryTypeHostCoherent != 0)
		typeObj.Name("HostCached").Bool(memType.Flags&MemoryTypeHostCached != 0)
		typeObj.End()
	}
	typesArray.End()

	obj.End()
	if indent {
		if pretty, err := prettyPrintJSON(writer.Bytes()); err == nil {
			return string(pretty)
		}
	}
	return string(writer.Bytes())
}

func prettyPrintJSON(data []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
