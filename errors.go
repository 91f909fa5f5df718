package ral

import (
	"github.com/cockroachdb/errors"
)

// Sentinel error kinds. Errors returned from this package can be classified
// with errors.Is against these; most carry additional context on top.
var (
	// ErrInvalidParameter marks a caller-supplied value that violates a
	// documented precondition: a bad buffer range, an empty update-rect
	// list, sub-minimum swap-chain dimensions.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrBackendNotFound means no backend module is registered under the
	// requested name. Fatal at startup.
	ErrBackendNotFound = errors.New("backend module not found")

	// ErrEntryPointMissing means a registered backend module lacks a
	// required entry point. Fatal at startup.
	ErrEntryPointMissing = errors.New("backend entry point missing")

	// ErrNotImplemented means the backend legitimately lacks an optional
	// capability. Call sites that can work around the gap treat this as a
	// branch, not a failure.
	ErrNotImplemented = errors.New("not implemented")

	// ErrMissingCapability means device creation requested a capability the
	// adapter does not support. The RAL never silently degrades.
	ErrMissingCapability = errors.New("missing required capability")

	// ErrDeviceGone means a dependent resource outlived its Device and the
	// weak back-reference failed to upgrade.
	ErrDeviceGone = errors.New("device has already been destroyed")

	// ErrOutOfHostMemory and ErrOutOfDeviceMemory classify native
	// allocation failures reported by the backend.
	ErrOutOfHostMemory   = errors.New("out of host memory")
	ErrOutOfDeviceMemory = errors.New("out of device memory")

	// ErrDeviceLost is the backend reporting the native device in an
	// unrecoverable state.
	ErrDeviceLost = errors.New("device lost")

	// ErrTimeout means a bounded native wait ran out of time.
	ErrTimeout = errors.New("operation timed out")

	// ErrUnsupportedFormat means none of the requested formats is usable
	// for the operation (e.g. no swap-chain format preference matched).
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// invalidParameterf builds an InvalidParameter error with formatted context.
func invalidParameterf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}

// notImplementedf builds a NotImplemented error with formatted context.
func notImplementedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotImplemented, format, args...)
}

// wrapBackendErr wraps a backend-reported native error with reproduction
// context. Backend errors are returned to the caller, never treated as
// fatal process termination.
func wrapBackendErr(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
