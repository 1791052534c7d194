package ffi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOK(t *testing.T) {
	require.NoError(t, Check(StatusOK))
}

func TestCheckMapsEveryStatus(t *testing.T) {
	tests := []struct {
		status Status
		want   error
	}{
		{StatusError, ErrError},
		{StatusNoAcceleration, ErrNoAcceleration},
		{StatusPlatformNotFound, ErrPlatformNotFound},
		{StatusDeviceNotFound, ErrDeviceNotFound},
		{StatusInvalidState, ErrInvalidState},
		{StatusInvalidArgument, ErrInvalidArgument},
		{StatusNoValue, ErrNoValue},
		{StatusNotImplemented, ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.want.Error(), func(t *testing.T) {
			require.ErrorIs(t, Check(tt.status), tt.want)
		})
	}
}

func TestCheckPanicsOnUnmappedStatus(t *testing.T) {
	require.Panics(t, func() { Check(Status(9)) })
	require.Panics(t, func() { Check(Status(512)) })
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "ok", statusLabel(StatusOK))
	assert.Equal(t, "invalid state", statusLabel(StatusInvalidState))
	assert.Equal(t, "not implemented", statusLabel(StatusNotImplemented))

	// Unknown values must not panic on the diagnostic path.
	assert.Equal(t, "status 9", statusLabel(Status(9)))
}
