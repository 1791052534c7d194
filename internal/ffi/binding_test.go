package ffi

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBinding returns a binding whose OS and native hooks never touch a
// real shared library.
func testBinding() *Binding {
	b := NewBinding()
	b.stat = func(string) error { return nil }
	b.open = func(string) (uintptr, error) { return 1, nil }
	b.register = func(uintptr) {}
	b.nativeInit = func() Status { return StatusOK }
	b.nativeFinalize = func() {}
	return b
}

func TestInitializeTransitionsToInitialized(t *testing.T) {
	t.Setenv(EnvDocs, "")
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvPath, "/tmp/libspla_x64.so")

	b := testBinding()
	registered := false
	b.register = func(handle uintptr) {
		registered = true
		assert.Equal(t, uintptr(1), handle)
	}

	require.NoError(t, b.Initialize())
	assert.True(t, registered)
	assert.True(t, b.Loaded())
	assert.True(t, b.Initialized())
	assert.NoError(t, b.Ready())
	assert.Equal(t, "/tmp/libspla_x64.so", b.Path())
}

func TestInitializeTwiceReturnsInvalidState(t *testing.T) {
	t.Setenv(EnvDocs, "")
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvPath, "/tmp/libspla_x64.so")

	b := testBinding()
	require.NoError(t, b.Initialize())
	require.ErrorIs(t, b.Initialize(), ErrInvalidState)
}

func TestInitializeDocsMode(t *testing.T) {
	t.Setenv(EnvDocs, "1")

	b := testBinding()
	b.stat = func(string) error {
		t.Fatal("docs mode must not touch the filesystem")
		return nil
	}

	require.NoError(t, b.Initialize())
	assert.True(t, b.Docs())
	assert.False(t, b.Loaded())
	assert.False(t, b.Initialized())
	assert.ErrorIs(t, b.Ready(), ErrInvalidState)

	// Docs mode is terminal for this binding.
	require.ErrorIs(t, b.Initialize(), ErrInvalidState)
}

func TestInitializeMissingArtifact(t *testing.T) {
	t.Setenv(EnvDocs, "")
	t.Setenv(EnvPath, "/nonexistent/libspla_x64.so")

	b := testBinding()
	b.stat = func(string) error { return os.ErrNotExist }

	err := b.Initialize()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "/nonexistent/libspla_x64.so")
	assert.False(t, b.Loaded())
	assert.False(t, b.Initialized())
}

func TestInitializeNativeFailure(t *testing.T) {
	t.Setenv(EnvDocs, "")
	t.Setenv(EnvPath, "/tmp/libspla_x64.so")

	b := testBinding()
	b.nativeInit = func() Status { return StatusError }

	err := b.Initialize()
	require.ErrorIs(t, err, ErrFailedInitialize)
	assert.True(t, b.Loaded())
	assert.False(t, b.Initialized())
}

func TestInitializeOpenFailure(t *testing.T) {
	t.Setenv(EnvDocs, "")
	t.Setenv(EnvPath, "/tmp/libspla_x64.so")

	openErr := errors.New("dlopen: wrong ELF class")
	b := testBinding()
	b.open = func(string) (uintptr, error) { return 0, openErr }

	require.ErrorIs(t, b.Initialize(), openErr)
	assert.False(t, b.Loaded())
}

func TestFinalizeBeforeInitializeIsNoOp(t *testing.T) {
	b := testBinding()
	finalized := false
	b.nativeFinalize = func() { finalized = true }

	b.Finalize()
	assert.False(t, finalized)
	assert.False(t, b.Initialized())
}

func TestFinalizeIsIdempotent(t *testing.T) {
	t.Setenv(EnvDocs, "")
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvPath, "/tmp/libspla_x64.so")

	b := testBinding()
	calls := 0
	b.nativeFinalize = func() { calls++ }

	require.NoError(t, b.Initialize())
	b.Finalize()
	b.Finalize()
	assert.Equal(t, 1, calls)
	assert.False(t, b.Initialized())
	assert.True(t, b.Loaded())

	// A finalized binding rejects re-initialization.
	require.ErrorIs(t, b.Initialize(), ErrInvalidState)
}

func TestReadyBeforeInitialize(t *testing.T) {
	b := testBinding()
	require.ErrorIs(t, b.Ready(), ErrInvalidState)
}
