package spla

import (
	"unsafe"

	"github.com/Parzival-05/spla/internal/ffi"
)

// Graph algorithm entry points. The algorithms themselves run entirely in
// the native library; these wrappers only dispatch and translate status.
// The desc argument is an optional descriptor handle and may be nil.

// Bfs runs breadth-first search over graph from source, writing the level
// of each reached vertex into v.
func Bfs(v *Vector, graph *Matrix, source uint, desc *Object) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	return ffi.Check(ffi.AlgorithmBfs(vectorHandle(v), matrixHandle(graph), uint32(source), objectHandle(desc)))
}

// Sssp runs single-source shortest paths over graph from source, writing
// the distance of each reached vertex into v.
func Sssp(v *Vector, graph *Matrix, source uint, desc *Object) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	return ffi.Check(ffi.AlgorithmSssp(vectorHandle(v), matrixHandle(graph), uint32(source), objectHandle(desc)))
}

// Pr runs PageRank over graph with damping factor alpha until the rank
// change drops below eps. v supplies the initial ranks and receives the
// result; the native library may replace the underlying handle in place.
func Pr(v *Vector, graph *Matrix, alpha, eps float32, desc *Object) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	if v == nil {
		return ErrInvalidArgument
	}
	return ffi.Check(ffi.AlgorithmPr(uintptr(unsafe.Pointer(&v.h)), matrixHandle(graph), alpha, eps, objectHandle(desc)))
}

// Tc counts triangles using the a*b masked product and returns the count.
func Tc(a, b *Matrix, desc *Object) (int, error) {
	if err := ffi.Default.Ready(); err != nil {
		return 0, err
	}
	var count int32
	err := ffi.Check(ffi.AlgorithmTc(uintptr(unsafe.Pointer(&count)), matrixHandle(a), matrixHandle(b), objectHandle(desc)))
	return int(count), err
}
