//go:build ral_no_validation

package ral

import "unsafe"

// ValidationEnabled reports whether API usage validation is compiled in.
// Build with the ral_no_validation tag to compile it out.
const ValidationEnabled = false

type bufferValidation struct{}

func (v *bufferValidation) checkMap() error { return nil }

func (v *bufferValidation) recordMap(ptr unsafe.Pointer) {}

func (v *bufferValidation) abortMap() {}

func (v *bufferValidation) checkUnmap(ptr unsafe.Pointer) error { return nil }

func (v *bufferValidation) recordUnmap() {}
