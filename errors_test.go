package ral

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// The sentinel must sit in the Unwrap chain so that classification works
// with the standard library's errors.Is, not only cockroachdb's.
func TestErrorHelpersClassifyWithStdlibIs(t *testing.T) {
	err := invalidParameterf("offset %d is bad", 12)
	require.True(t, stderrors.Is(err, ErrInvalidParameter))
	require.Contains(t, err.Error(), "offset 12 is bad")

	err = notImplementedf("no sparse textures")
	require.True(t, stderrors.Is(err, ErrNotImplemented))

	err = wrapBackendErr(ErrOutOfDeviceMemory, "allocating %d bytes", 64)
	require.True(t, stderrors.Is(err, ErrOutOfDeviceMemory))
	require.Contains(t, err.Error(), "allocating 64 bytes")

	require.NoError(t, wrapBackendErr(nil, "never built"))
}
