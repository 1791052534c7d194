package spla

import (
	"unsafe"

	"github.com/Parzival-05/spla/internal/ffi"
)

// ScheduleTask is a handle to a deferred execution node. Pass a
// *ScheduleTask to an execution kernel to schedule it instead of running
// eagerly; pass nil to execute immediately.
type ScheduleTask struct {
	*Object
}

func taskPtr(th *ffi.Object, task *ScheduleTask) uintptr {
	if task == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(th))
}

func bindTask(task *ScheduleTask, th ffi.Object, err error) error {
	if err == nil && task != nil && th != 0 {
		task.Object = wrapObject(th)
	}
	return err
}

// MxM computes r = a (multOp, addOp) b with accumulation seeded by init.
func MxM(r *Matrix, multOp, addOp OpBinary, a, b *Matrix, init *Scalar, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecMxM(matrixHandle(r), multOp.h, addOp.h, matrixHandle(a), matrixHandle(b), scalarHandle(init), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// MxMTMasked computes r = a (multOp, addOp) b^T under mask filtered by selectOp.
func MxMTMasked(r, mask *Matrix, multOp, addOp OpBinary, selectOp OpSelect, a, b *Matrix, init *Scalar, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecMxMTMasked(matrixHandle(r), matrixHandle(mask), multOp.h, addOp.h, selectOp.h, matrixHandle(a), matrixHandle(b), scalarHandle(init), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// Kron computes the Kronecker product r = a (multOp) b.
func Kron(r *Matrix, multOp OpBinary, a, b *Matrix, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecKron(matrixHandle(r), multOp.h, matrixHandle(a), matrixHandle(b), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// MxVMasked computes r = m (multOp, addOp) v under mask filtered by selectOp.
func MxVMasked(r, mask *Vector, m *Matrix, v *Vector, multOp, addOp OpBinary, selectOp OpSelect, init *Scalar, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecMxVMasked(vectorHandle(r), vectorHandle(mask), matrixHandle(m), vectorHandle(v), multOp.h, addOp.h, selectOp.h, scalarHandle(init), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// VxMMasked computes r = v (multOp, addOp) m under mask filtered by selectOp.
func VxMMasked(r, mask, v *Vector, m *Matrix, multOp, addOp OpBinary, selectOp OpSelect, init *Scalar, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecVxMMasked(vectorHandle(r), vectorHandle(mask), vectorHandle(v), matrixHandle(m), multOp.h, addOp.h, selectOp.h, scalarHandle(init), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// MEAdd computes the element-wise addition r = a (op) b.
func MEAdd(r *Matrix, op OpBinary, a, b *Matrix, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecMEAdd(matrixHandle(r), op.h, matrixHandle(a), matrixHandle(b), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// MEMult computes the element-wise multiplication r = a (op) b over the
// intersection of stored entries.
func MEMult(r *Matrix, op OpBinary, a, b *Matrix, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecMEMult(matrixHandle(r), op.h, matrixHandle(a), matrixHandle(b), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// MReduceByRow reduces each row of m into the vector r.
func MReduceByRow(r *Vector, op OpBinary, m *Matrix, init *Scalar, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecMReduceByRow(vectorHandle(r), op.h, matrixHandle(m), scalarHandle(init), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// MReduceByCol reduces each column of m into the vector r.
func MReduceByCol(r *Vector, op OpBinary, m *Matrix, init *Scalar, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecMReduceByCol(vectorHandle(r), op.h, matrixHandle(m), scalarHandle(init), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// MReduce reduces all stored entries of m into the scalar r.
func MReduce(r *Scalar, op OpBinary, m *Matrix, init *Scalar, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecMReduce(scalarHandle(r), op.h, matrixHandle(m), scalarHandle(init), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// MTranspose computes r = m^T mapping each entry through op.
func MTranspose(r *Matrix, op OpUnary, m *Matrix, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecMTranspose(matrixHandle(r), op.h, matrixHandle(m), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// MExtractRow extracts row index of m into r mapping entries through op.
func MExtractRow(r *Vector, m *Matrix, index uint, op OpUnary, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecMExtractRow(vectorHandle(r), matrixHandle(m), uint32(index), op.h, objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// MExtractCol extracts column index of m into r mapping entries through op.
func MExtractCol(r *Vector, m *Matrix, index uint, op OpUnary, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecMExtractCol(vectorHandle(r), matrixHandle(m), uint32(index), op.h, objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// VEAdd computes the element-wise addition r = u (op) v.
func VEAdd(r *Vector, op OpBinary, u, v *Vector, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecVEAdd(vectorHandle(r), op.h, vectorHandle(u), vectorHandle(v), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// VEMult computes the element-wise multiplication r = u (op) v over the
// intersection of stored entries.
func VEMult(r *Vector, op OpBinary, u, v *Vector, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecVEMult(vectorHandle(r), op.h, vectorHandle(u), vectorHandle(v), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// VEAddFdb computes r = r (op) v and records changed entries in fdb.
func VEAddFdb(r *Vector, op OpBinary, v, fdb *Vector, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecVEAddFdb(vectorHandle(r), op.h, vectorHandle(v), vectorHandle(fdb), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// VAssignMasked assigns value into r at positions where mask passes selectOp,
// combining with the previous entry through op.
func VAssignMasked(r, mask *Vector, value *Scalar, op OpBinary, selectOp OpSelect, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecVAssignMasked(vectorHandle(r), vectorHandle(mask), scalarHandle(value), op.h, selectOp.h, objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// VMap computes r = op(v) entry-wise.
func VMap(r *Vector, op OpUnary, v *Vector, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecVMap(vectorHandle(r), op.h, vectorHandle(v), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// VReduce reduces all stored entries of v into the scalar r seeded by s.
func VReduce(r *Scalar, op OpBinary, s *Scalar, v *Vector, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecVReduce(scalarHandle(r), op.h, scalarHandle(s), vectorHandle(v), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}

// VCountMf counts entries of v distinct from its fill value into the scalar r.
func VCountMf(r *Scalar, v *Vector, desc *Object, task *ScheduleTask) error {
	if err := ffi.Default.Ready(); err != nil {
		return err
	}
	var th ffi.Object
	err := ffi.Check(ffi.ExecVCountMf(scalarHandle(r), vectorHandle(v), objectHandle(desc), taskPtr(&th, task)))
	return bindTask(task, th, err)
}
