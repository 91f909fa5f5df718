package ral

import (
	"sync/atomic"
)

// handleBlock is the shared control block behind every Handle and WeakHandle.
// The payload lives inside the block itself, so a resource is destroyed in
// place when its last strong reference goes away, without waiting for the
// garbage collector to decide anything about native teardown order.
type handleBlock[T any] struct {
	strong  atomic.Int64
	weak    atomic.Int64
	destroy func(*T)
	payload T
}

// Handle is a strong, reference-counted handle to a RAL resource.
//
// The native resource wrapped by the payload is valid exactly between the
// strong count becoming 1 and it becoming 0. Release on the last strong
// handle runs the resource's destroy function on the calling goroutine;
// any native teardown (and any allocator Free that must follow it) happens
// right there, deterministically.
//
// Handle values are cheap to copy but copies share the reference: use Clone
// to take an additional counted reference and Release to give one back.
// Clone and Release are safe to call concurrently from multiple goroutines;
// the payload itself is not implicitly synchronized.
type Handle[T any] struct {
	b *handleBlock[T]
}

// WeakHandle is a non-owning back-reference to a resource. It keeps the
// control block's weak count alive but does not keep the payload alive:
// once the last strong handle is released, Upgrade fails. Dependent
// resources hold a WeakHandle to their Device for exactly this reason —
// a dead owner is detected as a failed upgrade, never as a dangling
// native pointer.
type WeakHandle[T any] struct {
	b *handleBlock[T]
}

// NewHandle creates the first strong handle to payload. destroy, which may
// be nil, runs exactly once when the strong count reaches zero.
func NewHandle[T any](payload T, destroy func(*T)) Handle[T] {
	b := &handleBlock[T]{destroy: destroy, payload: payload}
	b.strong.Store(1)
	return Handle[T]{b: b}
}

// NewCyclic creates a handle whose payload needs a weak reference to
// itself during construction. build receives that weak reference; the
// payload it returns becomes the handle's payload. The weak reference
// handed to build is counted, so the payload may store it (or clones of
// it) without further bookkeeping.
func NewCyclic[T any](build func(self WeakHandle[T]) T, destroy func(*T)) Handle[T] {
	b := &handleBlock[T]{destroy: destroy}
	b.weak.Store(1)
	b.payload = build(WeakHandle[T]{b: b})
	b.strong.Store(1)
	return Handle[T]{b: b}
}

// Get returns the payload, or nil if the handle has been released.
func (h Handle[T]) Get() *T {
	if h.b == nil {
		return nil
	}
	return &h.b.payload
}

// Clone takes an additional strong reference.
func (h Handle[T]) Clone() Handle[T] {
	if h.b != nil {
		h.b.strong.Add(1)
	}
	return Handle[T]{b: h.b}
}

// Release drops this strong reference. When it was the last one the
// payload's destroy function runs in place before Release returns.
// Releasing an already-released or zero handle is a no-op.
func (h *Handle[T]) Release() {
	b := h.b
	if b == nil {
		return
	}
	h.b = nil
	if n := b.strong.Add(-1); n == 0 {
		if b.destroy != nil {
			b.destroy(&b.payload)
		}
	} else if n < 0 {
		panic("ral: strong handle count underflow")
	}
}

// Downgrade produces a weak reference without affecting the strong count.
func (h Handle[T]) Downgrade() WeakHandle[T] {
	if h.b == nil {
		return WeakHandle[T]{}
	}
	h.b.weak.Add(1)
	return WeakHandle[T]{b: h.b}
}

// IsValid reports whether the handle still refers to a live resource.
func (h Handle[T]) IsValid() bool {
	return h.b != nil
}

// Same reports whether two handles refer to the same resource.
func (h Handle[T]) Same(other Handle[T]) bool {
	return h.b != nil && h.b == other.b
}

// SameWeak reports whether the handle and a weak handle refer to the same
// resource.
func (h Handle[T]) SameWeak(weak WeakHandle[T]) bool {
	return h.b != nil && h.b == weak.b
}

// strongCount is exposed for tests; outside code must not make liveness
// decisions from a count it cannot hold stable.
func (h Handle[T]) strongCount() int64 {
	if h.b == nil {
		return 0
	}
	return h.b.strong.Load()
}

// Upgrade attempts to produce a new strong handle. It succeeds only while
// at least one strong reference exists; after the last one is released it
// returns a zero handle and false. A failed upgrade is the sanctioned way
// to detect "owner already gone" — callers report it, they never touch
// the payload.
func (w WeakHandle[T]) Upgrade() (Handle[T], bool) {
	b := w.b
	if b == nil {
		return Handle[T]{}, false
	}
	for {
		n := b.strong.Load()
		if n <= 0 {
			return Handle[T]{}, false
		}
		if b.strong.CompareAndSwap(n, n+1) {
			return Handle[T]{b: b}, true
		}
	}
}

// Clone takes an additional weak reference.
func (w WeakHandle[T]) Clone() WeakHandle[T] {
	if w.b != nil {
		w.b.weak.Add(1)
	}
	return WeakHandle[T]{b: w.b}
}

// Release drops this weak reference. No-op on a zero or released handle.
func (w *WeakHandle[T]) Release() {
	b := w.b
	if b == nil {
		return
	}
	w.b = nil
	if b.weak.Add(-1) < 0 {
		panic("ral: weak handle count underflow")
	}
}
