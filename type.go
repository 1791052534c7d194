package spla

import "github.com/Parzival-05/spla/internal/ffi"

// Type identifies one of the native element types. Types are process-wide
// constants owned by the native library; they are never mutated and never
// need releasing.
type Type struct {
	h ffi.Object
}

// TypeBool returns the boolean element type.
func TypeBool() (Type, error) {
	if err := ffi.Default.Ready(); err != nil {
		return Type{}, err
	}
	return Type{h: ffi.TypeBool()}, nil
}

// TypeInt returns the signed 32-bit integer element type.
func TypeInt() (Type, error) {
	if err := ffi.Default.Ready(); err != nil {
		return Type{}, err
	}
	return Type{h: ffi.TypeInt()}, nil
}

// TypeUint returns the unsigned 32-bit integer element type.
func TypeUint() (Type, error) {
	if err := ffi.Default.Ready(); err != nil {
		return Type{}, err
	}
	return Type{h: ffi.TypeUint()}, nil
}

// TypeFloat returns the 32-bit float element type.
func TypeFloat() (Type, error) {
	if err := ffi.Default.Ready(); err != nil {
		return Type{}, err
	}
	return Type{h: ffi.TypeFloat()}, nil
}
