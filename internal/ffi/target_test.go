package ffi

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetName(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
	}{
		{"linux", "amd64", "libspla_x64.so"},
		{"linux", "arm64", "libspla_arm64.so"},
		{"darwin", "amd64", "libspla_x64.dylib"},
		{"darwin", "arm64", "libspla_arm64.dylib"},
		{"windows", "amd64", "spla_x64.dll"},
		{"windows", "arm64", "spla_arm64.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			name, err := TargetName(tt.goos, tt.goarch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestTargetNameUnsupported(t *testing.T) {
	_, err := TargetName("linux", "386")
	require.ErrorIs(t, err, ErrPlatformNotFound)

	_, err = TargetName("plan9", "amd64")
	require.ErrorIs(t, err, ErrPlatformNotFound)
}

func TestTargetPathOverride(t *testing.T) {
	t.Setenv(EnvPath, "/opt/spla/libspla_x64.so")

	path, err := TargetPath()
	require.NoError(t, err)
	assert.Equal(t, "/opt/spla/libspla_x64.so", path)
}

func TestTargetPathNextToExecutable(t *testing.T) {
	t.Setenv(EnvPath, "")

	path, err := TargetPath()
	require.NoError(t, err)
	name, err := TargetName(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	assert.Contains(t, path, name)
}
