package ral

import (
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// BackendModule is a named native-API backend and its fixed entry points.
// Backend packages register themselves from an init function, so a blank
// import of the backend package is enough to make it loadable:
//
//	import _ "github.com/onca-engine/ral/vulkan"
type BackendModule struct {
	// Name is the module name, e.g. "vulkan" or "onca_ral_myapi".
	Name string
	// Create produces the backend's Interface. Required.
	Create func(info CreateInfo) (Interface, error)
	// Destroy tears the Interface down. A module without a destroy entry
	// point is tolerated: teardown logs an error and leaks the backend
	// object, which beats handing it to a mismatched destructor.
	Destroy func(Interface) error
}

var (
	backendsMu sync.Mutex
	backends   = make(map[string]BackendModule)
)

// RegisterBackend registers a backend module. Registering a second module
// under the same name replaces the first.
func RegisterBackend(module BackendModule) {
	if module.Name == "" {
		panic("ral: registering a backend module without a name")
	}
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[module.Name] = module
}

// RegisteredBackends returns the names of all registered backend modules.
func RegisteredBackends() []string {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

func lookupBackend(name string) (BackendModule, bool) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	module, ok := backends[name]
	return module, ok
}

// RAL is the front door of the render abstraction layer: it owns the
// loaded backend and is the factory for devices.
type RAL struct {
	module BackendModule
	iface  Interface
	logger *slog.Logger
}

// New resolves the backend module named by the settings, creates its
// Interface and wraps it. Fails with ErrBackendNotFound when no module is
// registered under the resolved name and ErrEntryPointMissing when the
// module lacks a create entry point; both are startup-fatal for callers.
func New(logger *slog.Logger, settings *Settings) (*RAL, error) {
	if logger == nil {
		logger = slog.Default()
	}
	name := settings.API.ModuleName()

	module, ok := lookupBackend(name)
	if !ok {
		return nil, errors.Wrapf(ErrBackendNotFound, "no backend module registered as %q", name)
	}
	if module.Create == nil {
		return nil, errors.Wrapf(ErrEntryPointMissing, "backend module %q has no create entry point", name)
	}

	iface, err := module.Create(CreateInfo{Logger: logger, Settings: settings})
	if err != nil {
		return nil, wrapBackendErr(err, "creating backend %q", name)
	}

	return &RAL{module: module, iface: iface, logger: logger}, nil
}

// Settings returns the settings the backend was created with.
func (r *RAL) Settings() *Settings {
	return r.iface.Settings()
}

// PhysicalDevices enumerates the available adapters.
func (r *RAL) PhysicalDevices() ([]*PhysicalDevice, error) {
	return r.iface.EnumeratePhysicalDevices()
}

// CreateDevice creates a logical device on the chosen adapter. strategy
// is the application-supplied GPU memory allocation strategy; the RAL
// does not pick one for you (the gpualloc package has a serviceable
// default).
func (r *RAL) CreateDevice(physicalDevice *PhysicalDevice, strategy GpuAllocatorStrategy) (DeviceHandle, error) {
	if strategy == nil {
		return DeviceHandle{}, invalidParameterf("a GPU allocator strategy is required to create a device")
	}
	backend, queues, err := r.iface.CreateDevice(physicalDevice)
	if err != nil {
		return DeviceHandle{}, wrapBackendErr(err, "creating device on %q", physicalDevice.Name)
	}
	return newDevice(backend, physicalDevice, queues, strategy, r.logger), nil
}

// Destroy tears down the backend. When the module has no destroy entry
// point the backend object is deliberately leaked and an error logged;
// Destroy still returns nil in that case, since the caller can do
// nothing better.
func (r *RAL) Destroy() error {
	if r.iface == nil {
		return nil
	}
	iface := r.iface
	r.iface = nil

	if r.module.Destroy == nil {
		r.logger.Error("backend module has no destroy entry point; leaking the backend object",
			slog.String("module", r.module.Name))
		return nil
	}
	return r.module.Destroy(iface)
}
