package spla

import (
	"runtime"

	"github.com/Parzival-05/spla/internal/ffi"
)

// Object wraps an opaque reference-counted native handle. The native
// library owns the underlying resource and destroys it when the reference
// count drops to zero; Go's garbage collector knows nothing about it, so
// callers should Close objects when done. A finalizer is attached as a
// safety net, but explicit Close is the supported path since finalizers
// give no ordering relative to Finalize.
type Object struct {
	h ffi.Object
}

func wrapObject(h ffi.Object) *Object {
	o := &Object{h: h}
	runtime.SetFinalizer(o, (*Object).release)
	return o
}

// Handle exposes the raw native handle for interop with other bindings.
func (o *Object) Handle() uintptr {
	if o == nil {
		return 0
	}
	return uintptr(o.h)
}

// Ref increments the native reference count. Every Ref needs a matching
// Close (or Unref) or the resource leaks.
func (o *Object) Ref() error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	if o == nil || o.h == 0 {
		return ErrInvalidArgument
	}
	return ffi.Check(ffi.RefCntRef(o.h))
}

// Unref decrements the native reference count without invalidating the
// wrapper. Prefer Close unless balancing an explicit Ref.
func (o *Object) Unref() error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	if o == nil || o.h == 0 {
		return ErrInvalidArgument
	}
	return ffi.Check(ffi.RefCntUnref(o.h))
}

// Close releases the wrapper's reference and invalidates it. Idempotent;
// a no-op after Finalize since the native side already tore down.
func (o *Object) Close() error {
	if o == nil || o.h == 0 {
		return nil
	}
	h := o.h
	o.h = 0
	runtime.SetFinalizer(o, nil)
	if !ffi.Default.Initialized() {
		return nil
	}
	return ffi.Check(ffi.RefCntUnref(h))
}

// release is the finalizer path: best effort, errors dropped because
// there is no caller to report them to.
func (o *Object) release() {
	if o.h == 0 || !ffi.Default.Initialized() {
		return
	}
	ffi.RefCntUnref(o.h)
	o.h = 0
}

func objectHandle(o *Object) ffi.Object {
	if o == nil {
		return 0
	}
	return o.h
}
