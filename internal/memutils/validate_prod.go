//go:build !ral_debug_mem

package memutils

// DebugValidate calls Validate on the provided object and panics if any
// errors are returned. This method no-ops unless the ral_debug_mem build
// tag is present.
func DebugValidate(validatable Validatable) {
}

// DebugCheckPow2 verifies that the numerical value passed in is a power
// of two, and panics if it is not. This method no-ops unless the
// ral_debug_mem build tag is present.
func DebugCheckPow2[T Number](value T, name string) {
}
