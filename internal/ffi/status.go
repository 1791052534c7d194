package ffi

import (
	"errors"
	"fmt"
)

// Status is the integer result of a native spla call. Zero means success,
// every other value maps to exactly one error kind below.
type Status uint32

const (
	StatusOK               Status = 0
	StatusError            Status = 1
	StatusNoAcceleration   Status = 2
	StatusPlatformNotFound Status = 3
	StatusDeviceNotFound   Status = 4
	StatusInvalidState     Status = 5
	StatusInvalidArgument  Status = 6
	StatusNoValue          Status = 7
	StatusNotImplemented   Status = 1024
)

// Error kinds surfaced by the binding. The root package re-exports these;
// ErrCompilationError is part of the native taxonomy but has no status code
// assigned by the current header, so Check never returns it.
var (
	ErrError            = errors.New("error")
	ErrFailedInitialize = errors.New("failed to initialize library")
	ErrNoAcceleration   = errors.New("no acceleration")
	ErrPlatformNotFound = errors.New("platform not found")
	ErrDeviceNotFound   = errors.New("device not found")
	ErrInvalidState     = errors.New("invalid state")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNoValue          = errors.New("no value")
	ErrCompilationError = errors.New("compilation error")
	ErrNotImplemented   = errors.New("not implemented")
)

var statusErrors = map[Status]error{
	StatusError:            ErrError,
	StatusNoAcceleration:   ErrNoAcceleration,
	StatusPlatformNotFound: ErrPlatformNotFound,
	StatusDeviceNotFound:   ErrDeviceNotFound,
	StatusInvalidState:     ErrInvalidState,
	StatusInvalidArgument:  ErrInvalidArgument,
	StatusNoValue:          ErrNoValue,
	StatusNotImplemented:   ErrNotImplemented,
}

// Check translates a native status into its error kind. Every call site
// must route the returned status through here. A status outside the fixed
// table is a binding bug (a signature drifted from the native header), so
// it panics instead of being mistaken for success.
func Check(status Status) error {
	if status == StatusOK {
		return nil
	}
	err, ok := statusErrors[status]
	if !ok {
		panic(fmt.Sprintf("ffi: unmapped native status %d", status))
	}
	return err
}

// statusLabel names a status for diagnostic output without risking the
// Check panic on values pushed by a newer native build.
func statusLabel(status Status) string {
	if status == StatusOK {
		return "ok"
	}
	if err, ok := statusErrors[status]; ok {
		return err.Error()
	}
	return fmt.Sprintf("status %d", status)
}
