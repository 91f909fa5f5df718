package ral

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type testPayload struct {
	name string
}

func TestHandleDestroyRunsOnceOnLastRelease(t *testing.T) {
	destroyed := 0
	handle := NewHandle(testPayload{name: "resource"}, func(p *testPayload) {
		destroyed++
	})

	clone := handle.Clone()
	require.EqualValues(t, 2, handle.strongCount())

	handle.Release()
	require.Zero(t, destroyed)
	require.False(t, handle.IsValid())
	require.True(t, clone.IsValid())

	clone.Release()
	require.Equal(t, 1, destroyed)

	// Releasing again is a no-op, not a double destroy.
	clone.Release()
	require.Equal(t, 1, destroyed)
}

func TestHandleNilDestroyIsAllowed(t *testing.T) {
	handle := NewHandle(testPayload{}, nil)
	handle.Release()
	require.False(t, handle.IsValid())
}

func TestWeakHandleUpgradeFailsAfterLastRelease(t *testing.T) {
	handle := NewHandle(testPayload{name: "owner"}, nil)
	weak := handle.Downgrade()

	upgraded, ok := weak.Upgrade()
	require.True(t, ok)
	require.Equal(t, "owner", upgraded.Get().name)
	upgraded.Release()

	handle.Release()

	_, ok = weak.Upgrade()
	require.False(t, ok)
	weak.Release()
}

func TestWeakUpgradeKeepsPayloadAlive(t *testing.T) {
	destroyed := false
	handle := NewHandle(testPayload{}, func(*testPayload) { destroyed = true })
	weak := handle.Downgrade()

	upgraded, ok := weak.Upgrade()
	require.True(t, ok)

	handle.Release()
	require.False(t, destroyed, "an upgraded reference must keep the payload alive")

	upgraded.Release()
	require.True(t, destroyed)
	weak.Release()
}

func TestNewCyclicSelfReference(t *testing.T) {
	type node struct {
		self WeakHandle[node]
	}

	handle := NewCyclic(func(self WeakHandle[node]) node {
		return node{self: self}
	}, func(n *node) {
		n.self.Release()
	})

	require.True(t, handle.SameWeak(handle.Get().self))

	upgraded, ok := handle.Get().self.Upgrade()
	require.True(t, ok)
	require.True(t, handle.Same(upgraded))
	upgraded.Release()

	handle.Release()
}

func TestHandleSame(t *testing.T) {
	a := NewHandle(testPayload{}, nil)
	b := NewHandle(testPayload{}, nil)
	defer a.Release()
	defer b.Release()

	clone := a.Clone()
	defer clone.Release()

	require.True(t, a.Same(clone))
	require.False(t, a.Same(b))
	require.False(t, Handle[testPayload]{}.Same(a))
}

func TestHandleConcurrentCloneRelease(t *testing.T) {
	destroyed := 0
	handle := NewHandle(testPayload{}, func(*testPayload) { destroyed++ })

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		clone := handle.Clone()
		go func(h Handle[testPayload]) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				inner := h.Clone()
				inner.Release()
			}
			h.Release()
		}(clone)
	}
	wg.Wait()

	require.Zero(t, destroyed)
	handle.Release()
	require.Equal(t, 1, destroyed)
}
