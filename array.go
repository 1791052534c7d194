package spla

import (
	"unsafe"

	"github.com/Parzival-05/spla/internal/ffi"
)

// Array wraps a native dense array of a fixed element type.
type Array struct {
	*Object
}

// NewArray creates an array of n values of the given element type.
func NewArray(n uint, t Type) (*Array, error) {
	if err := ffi.Default.Ready(); err != nil {
		return nil, err
	}
	var h ffi.Object
	if err := ffi.Check(ffi.ArrayMake(uintptr(unsafe.Pointer(&h)), uint32(n), t.h)); err != nil {
		return nil, err
	}
	return &Array{Object: wrapObject(h)}, nil
}

// NValues returns the number of values stored.
func (a *Array) NValues() (uint, error) {
	var out uint32
	err := ffi.Check(ffi.ArrayGetNValues(a.h, uintptr(unsafe.Pointer(&out))))
	return uint(out), err
}

// SetInt stores an int value at index i.
func (a *Array) SetInt(i uint, value int32) error {
	return ffi.Check(ffi.ArraySetInt(a.h, uint32(i), value))
}

// SetUint stores a uint value at index i.
func (a *Array) SetUint(i uint, value uint32) error {
	return ffi.Check(ffi.ArraySetUint(a.h, uint32(i), value))
}

// SetFloat stores a float value at index i.
func (a *Array) SetFloat(i uint, value float32) error {
	return ffi.Check(ffi.ArraySetFloat(a.h, uint32(i), value))
}

// GetInt reads the int value at index i.
func (a *Array) GetInt(i uint) (int32, error) {
	var out int32
	err := ffi.Check(ffi.ArrayGetInt(a.h, uint32(i), uintptr(unsafe.Pointer(&out))))
	return out, err
}

// GetUint reads the uint value at index i.
func (a *Array) GetUint(i uint) (uint32, error) {
	var out uint32
	err := ffi.Check(ffi.ArrayGetUint(a.h, uint32(i), uintptr(unsafe.Pointer(&out))))
	return out, err
}

// GetFloat reads the float value at index i.
func (a *Array) GetFloat(i uint) (float32, error) {
	var out float32
	err := ffi.Check(ffi.ArrayGetFloat(a.h, uint32(i), uintptr(unsafe.Pointer(&out))))
	return out, err
}

// Resize grows or shrinks the array to n values.
func (a *Array) Resize(n uint) error {
	return ffi.Check(ffi.ArrayResize(a.h, uint32(n)))
}

// Build replaces the array contents from a memory view.
func (a *Array) Build(view *MemView) error {
	return ffi.Check(ffi.ArrayBuild(a.h, memViewHandle(view)))
}

// Read returns a view over the array contents. The returned view
// references memory owned by the native library.
func (a *Array) Read() (*MemView, error) {
	var h ffi.Object
	if err := ffi.Check(ffi.ArrayRead(a.h, uintptr(unsafe.Pointer(&h)))); err != nil {
		return nil, err
	}
	return wrapMemView(h), nil
}

// Clear removes all values.
func (a *Array) Clear() error {
	return ffi.Check(ffi.ArrayClear(a.h))
}
