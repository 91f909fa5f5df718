package ral

import "time"

// Fence is a timeline fence: a monotonically increasing 64-bit counter
// signalled from the CPU or a queue and waitable from the CPU.
type Fence struct {
	backend FenceBackend
}

// FenceHandle is the counted handle to a Fence.
type FenceHandle = Handle[Fence]

func newFence(backend FenceBackend) FenceHandle {
	return NewHandle(Fence{backend: backend}, (*Fence).destroy)
}

func (f *Fence) destroy() {
	f.backend.Destroy()
}

// Signal sets the fence to value from the CPU. Values must only ever
// increase.
func (f *Fence) Signal(value uint64) error {
	return wrapBackendErr(f.backend.Signal(value), "signalling fence to %d", value)
}

// Wait blocks until the fence reaches value or the timeout expires, in
// which case ErrTimeout is returned.
func (f *Fence) Wait(value uint64, timeout time.Duration) error {
	return wrapBackendErr(f.backend.Wait(value, timeout), "waiting for fence value %d", value)
}

// Value returns the last value the fence completed.
func (f *Fence) Value() (uint64, error) {
	value, err := f.backend.Value()
	return value, wrapBackendErr(err, "reading fence value")
}

// Backend returns the backend token. Only backend implementations have
// business calling this.
func (f *Fence) Backend() FenceBackend {
	return f.backend
}
