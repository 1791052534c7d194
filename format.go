package spla

// FormatMatrix selects the native storage representation of a matrix. The
// values are descriptive tags passed through to the native library; the
// binding does not interpret their semantics.
type FormatMatrix int32

const (
	// FormatMatrixCPULil stores adjacency lists per vertex in host memory.
	FormatMatrixCPULil FormatMatrix = 0
	// FormatMatrixCPUDok is a hash map of (row, column) to value.
	FormatMatrixCPUDok FormatMatrix = 1
	// FormatMatrixCPUCoo stores rows, columns and values as separate lists.
	FormatMatrixCPUCoo FormatMatrix = 2
	// FormatMatrixCPUCsr is the compressed sparse rows format.
	FormatMatrixCPUCsr FormatMatrix = 3
	// FormatMatrixCPUCsc is the compressed sparse columns format.
	FormatMatrixCPUCsc FormatMatrix = 4
	// FormatMatrixAccCoo is the coordinate list resident on the accelerator.
	FormatMatrixAccCoo FormatMatrix = 5
	// FormatMatrixAccCsr is CSR resident on the accelerator.
	FormatMatrixAccCsr FormatMatrix = 6
	// FormatMatrixAccCsc is CSC resident on the accelerator.
	FormatMatrixAccCsc FormatMatrix = 7

	// FormatMatrixCount is the number of matrix formats.
	FormatMatrixCount = 8
)

func (f FormatMatrix) String() string {
	switch f {
	case FormatMatrixCPULil:
		return "CPU_LIL"
	case FormatMatrixCPUDok:
		return "CPU_DOK"
	case FormatMatrixCPUCoo:
		return "CPU_COO"
	case FormatMatrixCPUCsr:
		return "CPU_CSR"
	case FormatMatrixCPUCsc:
		return "CPU_CSC"
	case FormatMatrixAccCoo:
		return "ACC_COO"
	case FormatMatrixAccCsr:
		return "ACC_CSR"
	case FormatMatrixAccCsc:
		return "ACC_CSC"
	default:
		return "unknown"
	}
}

// FormatVector selects the native storage representation of a vector.
type FormatVector int32

const (
	// FormatVectorCPUDok is a hash map of index to value in host memory.
	FormatVectorCPUDok FormatVector = 0
	// FormatVectorCPUDense is a dense array with direct indexing.
	FormatVectorCPUDense FormatVector = 1
	// FormatVectorCPUCoo stores indices and values as separate lists.
	FormatVectorCPUCoo FormatVector = 2
	// FormatVectorAccDense is the dense array resident on the accelerator.
	FormatVectorAccDense FormatVector = 3
	// FormatVectorAccCoo is the coordinate list resident on the accelerator.
	FormatVectorAccCoo FormatVector = 4

	// FormatVectorCount is the number of vector formats.
	FormatVectorCount = 5
)

func (f FormatVector) String() string {
	switch f {
	case FormatVectorCPUDok:
		return "CPU_DOK"
	case FormatVectorCPUDense:
		return "CPU_DENSE"
	case FormatVectorCPUCoo:
		return "CPU_COO"
	case FormatVectorAccDense:
		return "ACC_DENSE"
	case FormatVectorAccCoo:
		return "ACC_COO"
	default:
		return "unknown"
	}
}
