//go:build !ral_no_validation

package ral

import (
	"sync"
	"unsafe"
)

// ValidationEnabled reports whether API usage validation is compiled in.
// Build with the ral_no_validation tag to compile it out.
const ValidationEnabled = true

type bufferValidation struct {
	mu     sync.Mutex
	mapped unsafe.Pointer
	live   bool
}

func (v *bufferValidation) checkMap() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.live {
		return invalidParameterf("buffer is already mapped")
	}
	v.live = true
	return nil
}

func (v *bufferValidation) recordMap(ptr unsafe.Pointer) {
	v.mu.Lock()
	v.mapped = ptr
	v.mu.Unlock()
}

func (v *bufferValidation) abortMap() {
	v.mu.Lock()
	v.live = false
	v.mapped = nil
	v.mu.Unlock()
}

func (v *bufferValidation) checkUnmap(ptr unsafe.Pointer) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.live {
		return invalidParameterf("buffer is not mapped")
	}
	if ptr != v.mapped {
		return invalidParameterf("mapped memory does not belong to this buffer")
	}
	return nil
}

func (v *bufferValidation) recordUnmap() {
	v.mu.Lock()
	v.live = false
	v.mapped = nil
	v.mu.Unlock()
}
