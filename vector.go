package spla

import (
	"unsafe"

	"github.com/Parzival-05/spla/internal/ffi"
)

// Vector wraps a native sparse vector of a fixed element type.
type Vector struct {
	*Object
}

// NewVector creates a vector of dimension n with the given element type.
func NewVector(n uint, t Type) (*Vector, error) {
	if err := ffi.Default.Ready(); err != nil {
		return nil, err
	}
	var h ffi.Object
	if err := ffi.Check(ffi.VectorMake(uintptr(unsafe.Pointer(&h)), uint32(n), t.h)); err != nil {
		return nil, err
	}
	return &Vector{Object: wrapObject(h)}, nil
}

// SetFormat selects the native storage representation.
func (v *Vector) SetFormat(format FormatVector) error {
	return ffi.Check(ffi.VectorSetFormat(v.h, int32(format)))
}

// SetFillValue sets the value implied for indices without an entry.
func (v *Vector) SetFillValue(value *Scalar) error {
	return ffi.Check(ffi.VectorSetFillValue(v.h, scalarHandle(value)))
}

// SetReduce sets the operator used to combine duplicate entries.
func (v *Vector) SetReduce(reduce OpBinary) error {
	return ffi.Check(ffi.VectorSetReduce(v.h, reduce.h))
}

// SetInt stores an int value at index i.
func (v *Vector) SetInt(i uint, value int32) error {
	return ffi.Check(ffi.VectorSetInt(v.h, uint32(i), value))
}

// SetUint stores a uint value at index i.
func (v *Vector) SetUint(i uint, value uint32) error {
	return ffi.Check(ffi.VectorSetUint(v.h, uint32(i), value))
}

// SetFloat stores a float value at index i.
func (v *Vector) SetFloat(i uint, value float32) error {
	return ffi.Check(ffi.VectorSetFloat(v.h, uint32(i), value))
}

// GetInt reads the int value at index i.
func (v *Vector) GetInt(i uint) (int32, error) {
	var out int32
	err := ffi.Check(ffi.VectorGetInt(v.h, uint32(i), uintptr(unsafe.Pointer(&out))))
	return out, err
}

// GetUint reads the uint value at index i.
func (v *Vector) GetUint(i uint) (uint32, error) {
	var out uint32
	err := ffi.Check(ffi.VectorGetUint(v.h, uint32(i), uintptr(unsafe.Pointer(&out))))
	return out, err
}

// GetFloat reads the float value at index i.
func (v *Vector) GetFloat(i uint) (float32, error) {
	var out float32
	err := ffi.Check(ffi.VectorGetFloat(v.h, uint32(i), uintptr(unsafe.Pointer(&out))))
	return out, err
}

// Build replaces the vector contents from key and value views.
func (v *Vector) Build(keys, values *MemView) error {
	return ffi.Check(ffi.VectorBuild(v.h, memViewHandle(keys), memViewHandle(values)))
}

// Read returns views over the vector keys and values. The returned views
// reference memory owned by the native library.
func (v *Vector) Read() (keys, values *MemView, err error) {
	var hKeys, hValues ffi.Object
	err = ffi.Check(ffi.VectorRead(v.h,
		uintptr(unsafe.Pointer(&hKeys)),
		uintptr(unsafe.Pointer(&hValues))))
	if err != nil {
		return nil, nil, err
	}
	return wrapMemView(hKeys), wrapMemView(hValues), nil
}

// Clear removes all entries.
func (v *Vector) Clear() error {
	return ffi.Check(ffi.VectorClear(v.h))
}

func vectorHandle(v *Vector) ffi.Object {
	if v == nil {
		return 0
	}
	return v.h
}
