package spla

import "github.com/Parzival-05/spla/internal/ffi"

// Error kinds raised by the binding. Every nonzero native status maps to
// exactly one of these; compare with errors.Is. These are re-exports of
// the internal/ffi sentinels so both layers agree on identity.
var (
	// ErrError is the generic native failure.
	ErrError = ffi.ErrError

	// ErrFailedInitialize reports a nonzero status from the native
	// initialize call; the library stays loaded but not initialized.
	ErrFailedInitialize = ffi.ErrFailedInitialize

	ErrNoAcceleration   = ffi.ErrNoAcceleration
	ErrPlatformNotFound = ffi.ErrPlatformNotFound
	ErrDeviceNotFound   = ffi.ErrDeviceNotFound
	ErrInvalidState     = ffi.ErrInvalidState
	ErrInvalidArgument  = ffi.ErrInvalidArgument
	ErrNoValue          = ffi.ErrNoValue

	// ErrCompilationError is reserved by the native taxonomy; the current
	// header assigns it no status code.
	ErrCompilationError = ffi.ErrCompilationError

	ErrNotImplemented = ffi.ErrNotImplemented
)
