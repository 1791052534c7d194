package ffi

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cString(s string) (uintptr, []byte) {
	buf := append([]byte(s), 0)
	return uintptr(unsafe.Pointer(&buf[0])), buf
}

func TestDispatchMessage(t *testing.T) {
	msgPtr, msgBuf := cString("device out of memory")
	filePtr, fileBuf := cString("cl_accelerator.cpp")
	funcPtr, funcBuf := cString("set_device")

	var (
		gotStatus   Status
		gotMsg      string
		gotFile     string
		gotFunction string
		gotLine     int
	)
	dispatchMessage(func(status Status, msg, file, function string, line int) {
		gotStatus, gotMsg, gotFile, gotFunction, gotLine = status, msg, file, function, line
	}, int32(StatusDeviceNotFound), msgPtr, filePtr, funcPtr, 87)

	assert.Equal(t, StatusDeviceNotFound, gotStatus)
	assert.Equal(t, "device out of memory", gotMsg)
	assert.Equal(t, "cl_accelerator.cpp", gotFile)
	assert.Equal(t, "set_device", gotFunction)
	assert.Equal(t, 87, gotLine)

	_ = msgBuf
	_ = fileBuf
	_ = funcBuf
}

func TestDispatchMessageNullPointers(t *testing.T) {
	called := false
	dispatchMessage(func(status Status, msg, file, function string, line int) {
		called = true
		assert.Empty(t, msg)
		assert.Empty(t, file)
		assert.Empty(t, function)
	}, int32(StatusError), 0, 0, 0, 0)
	require.True(t, called)
}

func TestDefaultMessageCallbackFormat(t *testing.T) {
	var buf bytes.Buffer
	prev := DiagnosticOutput
	DiagnosticOutput = &buf
	defer func() { DiagnosticOutput = prev }()

	DefaultMessageCallback(StatusInvalidState, "bad state", "core.c", "library_init", 42)

	assert.Equal(t, "spla: [core.c:42] invalid state: bad state\n", buf.String())
}

func TestGoString(t *testing.T) {
	ptr, buf := cString("hello")
	assert.Equal(t, "hello", goString(ptr))
	_ = buf

	assert.Equal(t, "", goString(0))

	empty := []byte{0}
	assert.Equal(t, "", goString(uintptr(unsafe.Pointer(&empty[0]))))
}
