package spla

import (
	"unsafe"

	"github.com/Parzival-05/spla/internal/ffi"
)

// Matrix wraps a native sparse matrix of a fixed element type.
type Matrix struct {
	*Object
}

// NewMatrix creates an nRows by nCols matrix with the given element type.
func NewMatrix(nRows, nCols uint, t Type) (*Matrix, error) {
	if err := ffi.Default.Ready(); err != nil {
		return nil, err
	}
	var h ffi.Object
	if err := ffi.Check(ffi.MatrixMake(uintptr(unsafe.Pointer(&h)), uint32(nRows), uint32(nCols), t.h)); err != nil {
		return nil, err
	}
	return &Matrix{Object: wrapObject(h)}, nil
}

// SetFormat selects the native storage representation.
func (m *Matrix) SetFormat(format FormatMatrix) error {
	return ffi.Check(ffi.MatrixSetFormat(m.h, int32(format)))
}

// SetFillValue sets the value implied for positions without an entry.
func (m *Matrix) SetFillValue(value *Scalar) error {
	return ffi.Check(ffi.MatrixSetFillValue(m.h, scalarHandle(value)))
}

// SetReduce sets the operator used to combine duplicate entries.
func (m *Matrix) SetReduce(reduce OpBinary) error {
	return ffi.Check(ffi.MatrixSetReduce(m.h, reduce.h))
}

// SetInt stores an int value at row i, column j.
func (m *Matrix) SetInt(i, j uint, value int32) error {
	return ffi.Check(ffi.MatrixSetInt(m.h, uint32(i), uint32(j), value))
}

// SetUint stores a uint value at row i, column j.
func (m *Matrix) SetUint(i, j uint, value uint32) error {
	return ffi.Check(ffi.MatrixSetUint(m.h, uint32(i), uint32(j), value))
}

// SetFloat stores a float value at row i, column j.
func (m *Matrix) SetFloat(i, j uint, value float32) error {
	return ffi.Check(ffi.MatrixSetFloat(m.h, uint32(i), uint32(j), value))
}

// GetInt reads the int value at row i, column j.
func (m *Matrix) GetInt(i, j uint) (int32, error) {
	var out int32
	err := ffi.Check(ffi.MatrixGetInt(m.h, uint32(i), uint32(j), uintptr(unsafe.Pointer(&out))))
	return out, err
}

// GetUint reads the uint value at row i, column j.
func (m *Matrix) GetUint(i, j uint) (uint32, error) {
	var out uint32
	err := ffi.Check(ffi.MatrixGetUint(m.h, uint32(i), uint32(j), uintptr(unsafe.Pointer(&out))))
	return out, err
}

// GetFloat reads the float value at row i, column j.
func (m *Matrix) GetFloat(i, j uint) (float32, error) {
	var out float32
	err := ffi.Check(ffi.MatrixGetFloat(m.h, uint32(i), uint32(j), uintptr(unsafe.Pointer(&out))))
	return out, err
}

// Build replaces the matrix contents from row, column and value views.
func (m *Matrix) Build(rows, cols, values *MemView) error {
	return ffi.Check(ffi.MatrixBuild(m.h, memViewHandle(rows), memViewHandle(cols), memViewHandle(values)))
}

// Read returns views over the matrix rows, columns and values. The
// returned views reference memory owned by the native library.
func (m *Matrix) Read() (rows, cols, values *MemView, err error) {
	var hRows, hCols, hValues ffi.Object
	err = ffi.Check(ffi.MatrixRead(m.h,
		uintptr(unsafe.Pointer(&hRows)),
		uintptr(unsafe.Pointer(&hCols)),
		uintptr(unsafe.Pointer(&hValues))))
	if err != nil {
		return nil, nil, nil, err
	}
	return wrapMemView(hRows), wrapMemView(hCols), wrapMemView(hValues), nil
}

// Clear removes all entries.
func (m *Matrix) Clear() error {
	return ffi.Check(ffi.MatrixClear(m.h))
}

func matrixHandle(m *Matrix) ffi.Object {
	if m == nil {
		return 0
	}
	return m.h
}
