package ral

// CommandListType is the kind of command list a pool allocates.
type CommandListType uint8

const (
	// CommandListTypeGraphics lists run on a graphics queue.
	CommandListTypeGraphics CommandListType = iota
	// CommandListTypeCompute lists run on a compute queue.
	CommandListTypeCompute
	// CommandListTypeCopy lists run on a copy queue.
	CommandListTypeCopy
	// CommandListTypeBundle lists are executed from graphics lists.
	CommandListTypeBundle
)

func (t CommandListType) String() string {
	switch t {
	case CommandListTypeGraphics:
		return "Graphics"
	case CommandListTypeCompute:
		return "Compute"
	case CommandListTypeCopy:
		return "Copy"
	case CommandListTypeBundle:
		return "Bundle"
	}
	return "Unknown"
}

// CommandPoolFlags tune command pool behavior.
type CommandPoolFlags uint8

const (
	// CommandPoolFlagTransient hints that lists from this pool are
	// short-lived.
	CommandPoolFlagTransient CommandPoolFlags = 1 << iota
	// CommandPoolFlagResetList allows resetting individual lists instead
	// of the whole pool.
	CommandPoolFlagResetList
)

// CommandPool allocates command lists of one type. Pools are not thread
// safe; use one pool per recording thread.
type CommandPool struct {
	backend    CommandPoolBackend
	listType   CommandListType
	flags      CommandPoolFlags
	queueIndex QueueIndex
}

// CommandPoolHandle is the counted handle to a CommandPool.
type CommandPoolHandle = Handle[CommandPool]

func newCommandPool(backend CommandPoolBackend, listType CommandListType, flags CommandPoolFlags, queueIndex QueueIndex) CommandPoolHandle {
	return NewHandle(CommandPool{
		backend:    backend,
		listType:   listType,
		flags:      flags,
		queueIndex: queueIndex,
	}, (*CommandPool).destroy)
}

func (p *CommandPool) destroy() {
	p.backend.Destroy()
}

// ListType returns the kind of command list the pool allocates.
func (p *CommandPool) ListType() CommandListType {
	return p.listType
}

// Flags returns the flags the pool was created with.
func (p *CommandPool) Flags() CommandPoolFlags {
	return p.flags
}

// QueueIndex returns the native queue family the pool's lists submit to.
func (p *CommandPool) QueueIndex() QueueIndex {
	return p.queueIndex
}

// Reset recycles all command lists allocated from the pool. No list may
// be in flight on a queue.
func (p *CommandPool) Reset() error {
	return wrapBackendErr(p.backend.Reset(), "resetting %v command pool", p.listType)
}

// Backend returns the backend token. Only backend implementations have
// business calling this.
func (p *CommandPool) Backend() CommandPoolBackend {
	return p.backend
}
