// Package spla provides Go bindings to the spla sparse linear algebra
// library via a runtime-loaded native shared object. The package wraps the
// raw C API: object lifetime, storage formats, the operator catalog, graph
// algorithms and execution kernels are all implemented by the native
// library; this layer loads it, declares its entry points and translates
// its status codes into Go errors.
//
// Callers must Initialize once before any other call and should defer
// Finalize. The binding performs no locking of its own: concurrent use is
// subject to the native library's thread-safety guarantees.
package spla

import (
	"unsafe"

	"github.com/Parzival-05/spla/internal/ffi"
)

// Version of the Go binding.
const Version = "0.1.0"

// Accelerator selects the native acceleration backend.
type Accelerator uint32

const (
	// AcceleratorNone runs every operation on the host CPU.
	AcceleratorNone Accelerator = 0

	// AcceleratorOpenCL offloads to the OpenCL backend when available.
	AcceleratorOpenCL Accelerator = 1
)

// MessageCallback receives diagnostics pushed by the native library.
// This is a re-export of ffi.MessageCallback for consumer convenience.
type MessageCallback = ffi.MessageCallback

// Initialize loads the platform artifact and initializes the native
// library. When the SPLA_DOCS environment flag is set no artifact is
// touched and the binding enters docs mode instead. A second call while
// already initialized returns ErrInvalidState.
func Initialize() error {
	return ffi.Default.Initialize()
}

// Finalize releases the native library. Idempotent; calling it when the
// library never initialized is a safe no-op. Callers normally defer it
// right after a successful Initialize.
func Finalize() {
	ffi.Default.Finalize()
}

// Initialized reports whether the native library is ready for calls.
func Initialized() bool {
	return ffi.Default.Initialized()
}

// Loaded reports whether a native artifact is mapped into the process.
// In docs mode this stays false: no backend is available.
func Loaded() bool {
	return ffi.Default.Loaded()
}

// IsDocs reports whether the binding runs in docs-generation mode.
func IsDocs() bool {
	return ffi.Default.Docs()
}

// LibraryPath returns the artifact path the native library was loaded
// from, or "" when nothing was loaded.
func LibraryPath() string {
	return ffi.Default.Path()
}

// SetAccelerator selects the acceleration backend.
func SetAccelerator(acc Accelerator) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	return ffi.Check(ffi.LibrarySetAccelerator(uint32(acc)))
}

// SetPlatform selects the accelerator platform by index.
func SetPlatform(index int) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	return ffi.Check(ffi.LibrarySetPlatform(int32(index)))
}

// SetDevice selects the accelerator device by index.
func SetDevice(index int) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	return ffi.Check(ffi.LibrarySetDevice(int32(index)))
}

// SetQueuesCount sets the number of accelerator queues.
func SetQueuesCount(count int) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	return ffi.Check(ffi.LibrarySetQueuesCount(int32(count)))
}

// AcceleratorInfo returns the description of the selected accelerator.
func AcceleratorInfo() (string, error) {
	if err := ffi.Default.Ready(); err != nil {
		return "", err
	}
	buf := make([]byte, 256)
	if err := ffi.Check(ffi.LibraryGetAcceleratorInfo(uintptr(unsafe.Pointer(&buf[0])), int32(len(buf)))); err != nil {
		return "", err
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i]), nil
		}
	}
	return string(buf), nil
}

// SetMessageCallback registers cb to receive native diagnostics.
func SetMessageCallback(cb MessageCallback) error {
	return ffi.Default.SetMessageCallback(cb)
}

// SetDefaultCallback installs the binding's built-in diagnostic handler,
// which writes one formatted line per message to the standard diagnostic
// stream.
func SetDefaultCallback() error {
	return ffi.Default.SetMessageCallback(ffi.DefaultMessageCallback)
}

// SetLibraryDefaultCallback asks the native library to install its own
// built-in message handler instead of a Go one.
func SetLibraryDefaultCallback() error {
	return ffi.Default.SetDefaultCallback()
}
