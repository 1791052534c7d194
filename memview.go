package spla

import (
	"unsafe"

	"github.com/Parzival-05/spla/internal/ffi"
)

// MemView wraps a native view over a linear memory region. Views created
// with NewMemView pin the backing Go slice in the wrapper so the native
// side never observes freed memory; views returned by read operations
// reference buffers owned by the native library.
type MemView struct {
	*Object
	buf []byte
}

// NewMemView creates a view over data. The slice must not be resized while
// the view is alive; mutable controls whether native code may write
// through the view.
func NewMemView(data []byte, mutable bool) (*MemView, error) {
	if err := ffi.Default.Ready(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrInvalidArgument
	}
	var mut int32
	if mutable {
		mut = 1
	}
	var h ffi.Object
	err := ffi.Check(ffi.MemViewMake(
		uintptr(unsafe.Pointer(&h)),
		uintptr(unsafe.Pointer(&data[0])),
		uintptr(len(data)),
		mut,
	))
	if err != nil {
		return nil, err
	}
	return &MemView{Object: wrapObject(h), buf: data}, nil
}

func wrapMemView(h ffi.Object) *MemView {
	return &MemView{Object: wrapObject(h)}
}

// Read copies size bytes starting at offset from the view into dst.
func (v *MemView) Read(offset, size uint, dst []byte) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	if uint(len(dst)) < size {
		return ErrInvalidArgument
	}
	return ffi.Check(ffi.MemViewRead(v.h, uintptr(offset), uintptr(size), uintptr(unsafe.Pointer(&dst[0]))))
}

// Write copies size bytes from src into the view starting at offset. The
// view must be mutable.
func (v *MemView) Write(offset, size uint, src []byte) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	if uint(len(src)) < size {
		return ErrInvalidArgument
	}
	return ffi.Check(ffi.MemViewWrite(v.h, uintptr(offset), uintptr(size), uintptr(unsafe.Pointer(&src[0]))))
}

// Buffer returns the raw native buffer address.
func (v *MemView) Buffer() (uintptr, error) {
	if err := ffi.Default.Ready(); err != nil {
		return 0, err
	}
	var out uintptr
	err := ffi.Check(ffi.MemViewGetBuffer(v.h, uintptr(unsafe.Pointer(&out))))
	return out, err
}

// Size returns the view length in bytes.
func (v *MemView) Size() (uint, error) {
	if err := ffi.Default.Ready(); err != nil {
		return 0, err
	}
	var out uintptr
	err := ffi.Check(ffi.MemViewGetSize(v.h, uintptr(unsafe.Pointer(&out))))
	return uint(out), err
}

// IsMutable reports whether native code may write through the view.
func (v *MemView) IsMutable() (bool, error) {
	if err := ffi.Default.Ready(); err != nil {
		return false, err
	}
	var out int32
	err := ffi.Check(ffi.MemViewIsMutable(v.h, uintptr(unsafe.Pointer(&out))))
	return out != 0, err
}

func memViewHandle(v *MemView) ffi.Object {
	if v == nil {
		return 0
	}
	return v.h
}
