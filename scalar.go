package spla

import (
	"unsafe"

	"github.com/Parzival-05/spla/internal/ffi"
)

// Scalar wraps a native scalar value of a fixed element type.
type Scalar struct {
	*Object
}

// NewScalar creates a scalar of the given element type.
func NewScalar(t Type) (*Scalar, error) {
	if err := ffi.Default.Ready(); err != nil {
		return nil, err
	}
	var h ffi.Object
	if err := ffi.Check(ffi.ScalarMake(uintptr(unsafe.Pointer(&h)), t.h)); err != nil {
		return nil, err
	}
	return &Scalar{Object: wrapObject(h)}, nil
}

// SetInt stores an int value.
func (s *Scalar) SetInt(value int32) error {
	return ffi.Check(ffi.ScalarSetInt(s.h, value))
}

// SetUint stores a uint value.
func (s *Scalar) SetUint(value uint32) error {
	return ffi.Check(ffi.ScalarSetUint(s.h, value))
}

// SetFloat stores a float value.
func (s *Scalar) SetFloat(value float32) error {
	return ffi.Check(ffi.ScalarSetFloat(s.h, value))
}

// GetInt reads the value as int.
func (s *Scalar) GetInt() (int32, error) {
	var out int32
	err := ffi.Check(ffi.ScalarGetInt(s.h, uintptr(unsafe.Pointer(&out))))
	return out, err
}

// GetUint reads the value as uint.
func (s *Scalar) GetUint() (uint32, error) {
	var out uint32
	err := ffi.Check(ffi.ScalarGetUint(s.h, uintptr(unsafe.Pointer(&out))))
	return out, err
}

// GetFloat reads the value as float.
func (s *Scalar) GetFloat() (float32, error) {
	var out float32
	err := ffi.Check(ffi.ScalarGetFloat(s.h, uintptr(unsafe.Pointer(&out))))
	return out, err
}

func scalarHandle(s *Scalar) ffi.Object {
	if s == nil {
		return 0
	}
	return s.h
}
