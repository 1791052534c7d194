package ffi

import (
	"fmt"
	"io"
	"os"

	"github.com/ebitengine/purego"
)

// MessageCallback receives diagnostics pushed by the native library:
// a status code, the message text, the native source file and function
// that produced it, and the source line.
type MessageCallback func(status Status, msg, file, function string, line int)

// DiagnosticOutput is where DefaultMessageCallback writes. Swappable for
// tests; defaults to the standard diagnostic stream.
var DiagnosticOutput io.Writer = os.Stderr

// messageCallbackPtr keeps the registered trampoline reachable so the
// native side never calls into collected memory.
var messageCallbackPtr uintptr

// DefaultMessageCallback decodes a native diagnostic into one formatted
// line on DiagnosticOutput.
func DefaultMessageCallback(status Status, msg, file, function string, line int) {
	fmt.Fprintf(DiagnosticOutput, "spla: [%s:%d] %s: %s\n", file, line, statusLabel(status), msg)
}

// SetMessageCallback registers cb with the native library. Only valid once
// the binding is initialized.
func (b *Binding) SetMessageCallback(cb MessageCallback) error {
	if err := b.Ready(); err != nil {
		return err
	}
	messageCallbackPtr = purego.NewCallback(func(status int32, msg, file, function uintptr, line int32, userData uintptr) uintptr {
		dispatchMessage(cb, status, msg, file, function, line)
		return 0
	})
	return Check(LibrarySetMessageCallback(messageCallbackPtr, 0))
}

// SetDefaultCallback asks the native library to install its own built-in
// message handler.
func (b *Binding) SetDefaultCallback() error {
	if err := b.Ready(); err != nil {
		return err
	}
	return Check(LibrarySetDefaultCallback())
}

// dispatchMessage decodes the native payload (null-terminated UTF-8
// buffers) and forwards it to the Go callback. Split out of the trampoline
// so the decode path is testable without a native caller.
func dispatchMessage(cb MessageCallback, status int32, msg, file, function uintptr, line int32) {
	cb(Status(status), goString(msg), goString(file), goString(function), int(line))
}
