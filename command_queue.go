package ral

import "fmt"

// QueueType selects a command queue family.
type QueueType uint8

const (
	// QueueTypeGraphics supports present, graphics, compute and copy.
	QueueTypeGraphics QueueType = iota
	// QueueTypeCompute supports compute and copy.
	QueueTypeCompute
	// QueueTypeCopy supports copy only.
	QueueTypeCopy

	QueueTypeCount = int(QueueTypeCopy) + 1
)

var queueTypeNames = [QueueTypeCount]string{"Graphics", "Compute", "Copy"}

func (t QueueType) String() string {
	if int(t) >= QueueTypeCount {
		return "QueueType(invalid)"
	}
	return queueTypeNames[t]
}

// QueuePriority selects a priority band within a queue family. Backends
// map the bands onto whatever native priority mechanism exists; bands
// alias the same native queue when a family exposes too few queues, and
// GlobalRealtime aliases High on backends without
// CapabilityRealtimeQueues.
type QueuePriority uint8

const (
	QueuePriorityNormal QueuePriority = iota
	QueuePriorityHigh
	QueuePriorityGlobalRealtime

	QueuePriorityCount = int(QueuePriorityGlobalRealtime) + 1
)

var queuePriorityNames = [QueuePriorityCount]string{"Normal", "High", "GlobalRealtime"}

func (p QueuePriority) String() string {
	if int(p) >= QueuePriorityCount {
		return "QueuePriority(invalid)"
	}
	return queuePriorityNames[p]
}

// QueueIndex identifies a native queue within the device.
type QueueIndex uint8

func (i QueueIndex) String() string {
	return fmt.Sprintf("queue-index %d", uint8(i))
}

// CommandQueueBackend is the backend surface of one native queue.
type CommandQueueBackend interface {
	// Flush blocks until all work submitted to the queue has completed.
	Flush() error
}

// CommandQueue is one priority band of one queue family on a Device.
type CommandQueue struct {
	backend  CommandQueueBackend
	index    QueueIndex
	kind     QueueType
	priority QueuePriority
}

// CommandQueueHandle is the counted handle to a CommandQueue.
type CommandQueueHandle = Handle[CommandQueue]

// Index returns the native queue index.
func (q *CommandQueue) Index() QueueIndex { return q.index }

// Type returns the queue family type.
func (q *CommandQueue) Type() QueueType { return q.kind }

// Priority returns the priority band.
func (q *CommandQueue) Priority() QueuePriority { return q.priority }

// Flush blocks until all work on this queue has completed. Prefer fences
// for synchronization; Flush is the sledgehammer teardown paths need.
func (q *CommandQueue) Flush() error {
	return q.backend.Flush()
}

// Backend returns the backend token. Only backend implementations have
// business calling this; it lets a backend recover its native queue from
// the handle the core passes back in.
func (q *CommandQueue) Backend() CommandQueueBackend {
	return q.backend
}
