package spla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Parzival-05/spla/internal/ffi"
)

// freshBinding swaps the process-wide binding for a clean instance so each
// test sees the unloaded state.
func freshBinding(t *testing.T) {
	t.Helper()
	prev := ffi.Default
	ffi.Default = ffi.NewBinding()
	t.Cleanup(func() { ffi.Default = prev })
}

func TestOperationsRequireInitialize(t *testing.T) {
	freshBinding(t)

	tests := []struct {
		name string
		call func() error
	}{
		{"TypeInt", func() error { _, err := TypeInt(); return err }},
		{"NewScalar", func() error { _, err := NewScalar(Type{}); return err }},
		{"NewArray", func() error { _, err := NewArray(8, Type{}); return err }},
		{"NewVector", func() error { _, err := NewVector(8, Type{}); return err }},
		{"NewMatrix", func() error { _, err := NewMatrix(4, 4, Type{}); return err }},
		{"NewMemView", func() error { _, err := NewMemView(make([]byte, 16), true); return err }},
		{"Unary", func() error { _, err := Unary(); return err }},
		{"Binary", func() error { _, err := Binary(); return err }},
		{"Select", func() error { _, err := Select(); return err }},
		{"SetAccelerator", func() error { return SetAccelerator(AcceleratorNone) }},
		{"AcceleratorInfo", func() error { _, err := AcceleratorInfo(); return err }},
		{"SetMessageCallback", func() error {
			return SetMessageCallback(func(status ffi.Status, msg, file, function string, line int) {})
		}},
		{"Bfs", func() error { return Bfs(nil, nil, 0, nil) }},
		{"MxM", func() error { return MxM(nil, OpBinary{}, OpBinary{}, nil, nil, nil, nil, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call(), ErrInvalidState)
		})
	}
}

func TestDocsMode(t *testing.T) {
	freshBinding(t)
	t.Setenv("SPLA_DOCS", "1")

	require.NoError(t, Initialize())
	assert.True(t, IsDocs())
	assert.False(t, Loaded())
	assert.False(t, Initialized())
	assert.Empty(t, LibraryPath())

	// No backend: native operations stay unavailable.
	_, err := TypeInt()
	require.ErrorIs(t, err, ErrInvalidState)

	require.ErrorIs(t, Initialize(), ErrInvalidState)

	// Finalize without a native library is a safe no-op.
	Finalize()
}

func TestInitializeMissingArtifactMessage(t *testing.T) {
	freshBinding(t)
	t.Setenv("SPLA_DOCS", "")
	t.Setenv("SPLA_PATH", "/nonexistent/libspla_x64.so")

	err := Initialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no compiled spla library")
	assert.Contains(t, err.Error(), "/nonexistent/libspla_x64.so")
	assert.False(t, Loaded())
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version)
}
