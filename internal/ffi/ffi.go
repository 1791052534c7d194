package ffi

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Object is an opaque reference-counted native handle. The native library
// owns the underlying resource; the binding only passes handles back to
// other native calls and to the explicit ref/unref entry points.
type Object uintptr

// Native entry points, populated by registerAll once the shared library is
// loaded. Return and parameter types mirror the native header exactly: a
// mismatched declaration here is undefined behavior at call time, not a
// caught error. Out-parameters are passed as uintptr of a Go pointer.

// Library lifecycle.
var (
	LibraryFinalize           func()
	LibraryInitialize         func() Status
	LibrarySetAccelerator     func(accelerator uint32) Status
	LibrarySetPlatform        func(index int32) Status
	LibrarySetDevice          func(index int32) Status
	LibrarySetQueuesCount     func(count int32) Status
	LibrarySetMessageCallback func(callback, userData uintptr) Status
	LibrarySetDefaultCallback func() Status
	LibraryGetAcceleratorInfo func(buffer uintptr, length int32) Status
)

// Typed constants, one per element type.
var (
	TypeBool  func() Object
	TypeInt   func() Object
	TypeUint  func() Object
	TypeFloat func() Object
)

// Unary operator catalog.
var (
	OpUnaryIdentityInt   func() Object
	OpUnaryIdentityUint  func() Object
	OpUnaryIdentityFloat func() Object
	OpUnaryAinvInt       func() Object
	OpUnaryAinvUint      func() Object
	OpUnaryAinvFloat     func() Object
	OpUnaryMinvInt       func() Object
	OpUnaryMinvUint      func() Object
	OpUnaryMinvFloat     func() Object
	OpUnaryLnotInt       func() Object
	OpUnaryLnotUint      func() Object
	OpUnaryLnotFloat     func() Object
	OpUnaryUoneInt       func() Object
	OpUnaryUoneUint      func() Object
	OpUnaryUoneFloat     func() Object
	OpUnaryAbsInt        func() Object
	OpUnaryAbsUint       func() Object
	OpUnaryAbsFloat      func() Object
	OpUnaryBnotInt       func() Object
	OpUnaryBnotUint      func() Object
	OpUnarySqrtFloat     func() Object
	OpUnaryLogFloat      func() Object
	OpUnaryExpFloat      func() Object
	OpUnarySinFloat      func() Object
	OpUnaryCosFloat      func() Object
	OpUnaryTanFloat      func() Object
	OpUnaryAsinFloat     func() Object
	OpUnaryAcosFloat     func() Object
	OpUnaryAtanFloat     func() Object
	OpUnaryCeilFloat     func() Object
	OpUnaryFloorFloat    func() Object
	OpUnaryRoundFloat    func() Object
	OpUnaryTruncFloat    func() Object
)

// Binary operator catalog, plus the graph-algorithm specializations.
var (
	OpBinaryPlusInt        func() Object
	OpBinaryPlusUint       func() Object
	OpBinaryPlusFloat      func() Object
	OpBinaryMinusInt       func() Object
	OpBinaryMinusUint      func() Object
	OpBinaryMinusFloat     func() Object
	OpBinaryMultInt        func() Object
	OpBinaryMultUint       func() Object
	OpBinaryMultFloat      func() Object
	OpBinaryDivInt         func() Object
	OpBinaryDivUint        func() Object
	OpBinaryDivFloat       func() Object
	OpBinaryMinusPow2Int   func() Object
	OpBinaryMinusPow2Uint  func() Object
	OpBinaryMinusPow2Float func() Object
	OpBinaryFirstInt       func() Object
	OpBinaryFirstUint      func() Object
	OpBinaryFirstFloat     func() Object
	OpBinarySecondInt      func() Object
	OpBinarySecondUint     func() Object
	OpBinarySecondFloat    func() Object
	OpBinaryBoneInt        func() Object
	OpBinaryBoneUint       func() Object
	OpBinaryBoneFloat      func() Object
	OpBinaryMinInt         func() Object
	OpBinaryMinUint        func() Object
	OpBinaryMinFloat       func() Object
	OpBinaryMaxInt         func() Object
	OpBinaryMaxUint        func() Object
	OpBinaryMaxFloat       func() Object
	OpBinaryLorInt         func() Object
	OpBinaryLorUint        func() Object
	OpBinaryLorFloat       func() Object
	OpBinaryLandInt        func() Object
	OpBinaryLandUint       func() Object
	OpBinaryLandFloat      func() Object
	OpBinaryBorInt         func() Object
	OpBinaryBorUint        func() Object
	OpBinaryBandInt        func() Object
	OpBinaryBandUint       func() Object
	OpBinaryBxorInt        func() Object
	OpBinaryBxorUint       func() Object

	OpBinaryFirstNonMaxInt      func() Object
	OpBinaryMinNonMaxInt        func() Object
	OpBinaryConstMaxInt         func() Object
	OpBinarySecondMaxInt        func() Object
	OpBinaryMinNonZeroInt       func() Object
	OpBinaryS1stIfSndMaxInt     func() Object
	OpBinaryFstMinusOneInt      func() Object
	OpBinarySelectMinWeightUint func() Object
	OpBinaryConstructPairUint   func() Object
)

// Selection predicate catalog.
var (
	OpSelectEqZeroInt   func() Object
	OpSelectEqZeroUint  func() Object
	OpSelectEqZeroFloat func() Object
	OpSelectNqZeroInt   func() Object
	OpSelectNqZeroUint  func() Object
	OpSelectNqZeroFloat func() Object
	OpSelectGtZeroInt   func() Object
	OpSelectGtZeroUint  func() Object
	OpSelectGtZeroFloat func() Object
	OpSelectGeZeroInt   func() Object
	OpSelectGeZeroUint  func() Object
	OpSelectGeZeroFloat func() Object
	OpSelectLtZeroInt   func() Object
	OpSelectLtZeroUint  func() Object
	OpSelectLtZeroFloat func() Object
	OpSelectLeZeroInt   func() Object
	OpSelectLeZeroUint  func() Object
	OpSelectLeZeroFloat func() Object
	OpSelectAlwaysInt   func() Object
	OpSelectAlwaysUint  func() Object
	OpSelectAlwaysFloat func() Object
	OpSelectNeverInt    func() Object
	OpSelectNeverUint   func() Object
	OpSelectNeverFloat  func() Object

	OpSelectEqualsMinfFloat func() Object
	OpSelectEqualsMaxInt    func() Object
	OpSelectEqualsMaxUint   func() Object
	OpSelectNequalsMaxInt   func() Object
	OpSelectNequalsMaxUint  func() Object
)

// Reference counting.
var (
	RefCntRef   func(object Object) Status
	RefCntUnref func(object Object) Status
)

// Memory views.
var (
	MemViewMake      func(out uintptr, buffer uintptr, size uintptr, mutable int32) Status
	MemViewRead      func(view Object, offset uintptr, size uintptr, dst uintptr) Status
	MemViewWrite     func(view Object, offset uintptr, size uintptr, src uintptr) Status
	MemViewGetBuffer func(view Object, out uintptr) Status
	MemViewGetSize   func(view Object, out uintptr) Status
	MemViewIsMutable func(view Object, out uintptr) Status
)

// Scalars.
var (
	ScalarMake     func(out uintptr, typ Object) Status
	ScalarSetInt   func(scalar Object, value int32) Status
	ScalarSetUint  func(scalar Object, value uint32) Status
	ScalarSetFloat func(scalar Object, value float32) Status
	ScalarGetInt   func(scalar Object, out uintptr) Status
	ScalarGetUint  func(scalar Object, out uintptr) Status
	ScalarGetFloat func(scalar Object, out uintptr) Status
)

// Arrays.
var (
	ArrayMake       func(out uintptr, n uint32, typ Object) Status
	ArrayGetNValues func(array Object, out uintptr) Status
	ArraySetInt     func(array Object, i uint32, value int32) Status
	ArraySetUint    func(array Object, i uint32, value uint32) Status
	ArraySetFloat   func(array Object, i uint32, value float32) Status
	ArrayGetInt     func(array Object, i uint32, out uintptr) Status
	ArrayGetUint    func(array Object, i uint32, out uintptr) Status
	ArrayGetFloat   func(array Object, i uint32, out uintptr) Status
	ArrayResize     func(array Object, n uint32) Status
	ArrayBuild      func(array Object, view Object) Status
	ArrayRead       func(array Object, out uintptr) Status
	ArrayClear      func(array Object) Status
)

// Vectors.
var (
	VectorMake         func(out uintptr, n uint32, typ Object) Status
	VectorSetFormat    func(vector Object, format int32) Status
	VectorSetFillValue func(vector Object, value Object) Status
	VectorSetReduce    func(vector Object, reduce Object) Status
	VectorSetInt       func(vector Object, i uint32, value int32) Status
	VectorSetUint      func(vector Object, i uint32, value uint32) Status
	VectorSetFloat     func(vector Object, i uint32, value float32) Status
	VectorGetInt       func(vector Object, i uint32, out uintptr) Status
	VectorGetUint      func(vector Object, i uint32, out uintptr) Status
	VectorGetFloat     func(vector Object, i uint32, out uintptr) Status
	VectorBuild        func(vector Object, keys Object, values Object) Status
	VectorRead         func(vector Object, outKeys uintptr, outValues uintptr) Status
	VectorClear        func(vector Object) Status
)

// Matrices.
var (
	MatrixMake         func(out uintptr, nRows uint32, nCols uint32, typ Object) Status
	MatrixSetFormat    func(matrix Object, format int32) Status
	MatrixSetFillValue func(matrix Object, value Object) Status
	MatrixSetReduce    func(matrix Object, reduce Object) Status
	MatrixSetInt       func(matrix Object, i uint32, j uint32, value int32) Status
	MatrixSetUint      func(matrix Object, i uint32, j uint32, value uint32) Status
	MatrixSetFloat     func(matrix Object, i uint32, j uint32, value float32) Status
	MatrixGetInt       func(matrix Object, i uint32, j uint32, out uintptr) Status
	MatrixGetUint      func(matrix Object, i uint32, j uint32, out uintptr) Status
	MatrixGetFloat     func(matrix Object, i uint32, j uint32, out uintptr) Status
	MatrixBuild        func(matrix Object, keys1 Object, keys2 Object, values Object) Status
	MatrixRead         func(matrix Object, outKeys1 uintptr, outKeys2 uintptr, outValues uintptr) Status
	MatrixClear        func(matrix Object) Status
)

// Graph algorithms. Implemented entirely by the native library; the binding
// only dispatches.
var (
	AlgorithmBfs  func(v Object, a Object, source uint32, desc Object) Status
	AlgorithmSssp func(v Object, a Object, source uint32, desc Object) Status
	AlgorithmPr   func(inOutV uintptr, a Object, alpha float32, eps float32, desc Object) Status
	AlgorithmTc   func(outCount uintptr, a Object, b Object, desc Object) Status
)

// Execution kernels.
var (
	ExecMxM           func(r, multOp, addOp, a, b, init, desc Object, outTask uintptr) Status
	ExecMxMTMasked    func(r, mask, multOp, addOp, selectOp, a, b, init, desc Object, outTask uintptr) Status
	ExecKron          func(r, multOp, a, b, desc Object, outTask uintptr) Status
	ExecMxVMasked     func(r, mask, m, v, multOp, addOp, selectOp, init, desc Object, outTask uintptr) Status
	ExecVxMMasked     func(r, mask, v, m, multOp, addOp, selectOp, init, desc Object, outTask uintptr) Status
	ExecMEAdd         func(r, op, a, b, desc Object, outTask uintptr) Status
	ExecMEMult        func(r, op, a, b, desc Object, outTask uintptr) Status
	ExecMReduceByRow  func(r, op, m, init, desc Object, outTask uintptr) Status
	ExecMReduceByCol  func(r, op, m, init, desc Object, outTask uintptr) Status
	ExecMReduce       func(r, op, m, init, desc Object, outTask uintptr) Status
	ExecMTranspose    func(r, op, m, desc Object, outTask uintptr) Status
	ExecMExtractRow   func(r, m Object, index uint32, op, desc Object, outTask uintptr) Status
	ExecMExtractCol   func(r, m Object, index uint32, op, desc Object, outTask uintptr) Status
	ExecVEAdd         func(r, op, u, v, desc Object, outTask uintptr) Status
	ExecVEMult        func(r, op, u, v, desc Object, outTask uintptr) Status
	ExecVEAddFdb      func(r, op, v, fdb, desc Object, outTask uintptr) Status
	ExecVAssignMasked func(r, mask, value, op, selectOp, desc Object, outTask uintptr) Status
	ExecVMap          func(r, op, v, desc Object, outTask uintptr) Status
	ExecVReduce       func(r, op, s, v, desc Object, outTask uintptr) Status
	ExecVCountMf      func(r, v, desc Object, outTask uintptr) Status
)

// registerAll declares every native entry point against the loaded library.
// Registration is purely descriptive; nothing is called here. A missing
// symbol panics, which is the wanted fail-fast behavior for an artifact
// that does not match this binding.
func registerAll(handle uintptr) {
	registerLibraryFuncs(handle)
	registerTypeFuncs(handle)
	registerOpUnaryFuncs(handle)
	registerOpBinaryFuncs(handle)
	registerOpSelectFuncs(handle)
	registerRefCntFuncs(handle)
	registerMemViewFuncs(handle)
	registerScalarFuncs(handle)
	registerArrayFuncs(handle)
	registerVectorFuncs(handle)
	registerMatrixFuncs(handle)
	registerAlgorithmFuncs(handle)
	registerExecFuncs(handle)
}

func registerLibraryFuncs(handle uintptr) {
	purego.RegisterLibFunc(&LibraryFinalize, handle, "spla_Library_finalize")
	purego.RegisterLibFunc(&LibraryInitialize, handle, "spla_Library_initialize")
	purego.RegisterLibFunc(&LibrarySetAccelerator, handle, "spla_Library_set_accelerator")
	purego.RegisterLibFunc(&LibrarySetPlatform, handle, "spla_Library_set_platform")
	purego.RegisterLibFunc(&LibrarySetDevice, handle, "spla_Library_set_device")
	purego.RegisterLibFunc(&LibrarySetQueuesCount, handle, "spla_Library_set_queues_count")
	purego.RegisterLibFunc(&LibrarySetMessageCallback, handle, "spla_Library_set_message_callback")
	purego.RegisterLibFunc(&LibrarySetDefaultCallback, handle, "spla_Library_set_default_callback")
	purego.RegisterLibFunc(&LibraryGetAcceleratorInfo, handle, "spla_Library_get_accelerator_info")
}

func registerTypeFuncs(handle uintptr) {
	purego.RegisterLibFunc(&TypeBool, handle, "spla_Type_BOOL")
	purego.RegisterLibFunc(&TypeInt, handle, "spla_Type_INT")
	purego.RegisterLibFunc(&TypeUint, handle, "spla_Type_UINT")
	purego.RegisterLibFunc(&TypeFloat, handle, "spla_Type_FLOAT")
}

func registerOpUnaryFuncs(handle uintptr) {
	purego.RegisterLibFunc(&OpUnaryIdentityInt, handle, "spla_OpUnary_IDENTITY_INT")
	purego.RegisterLibFunc(&OpUnaryIdentityUint, handle, "spla_OpUnary_IDENTITY_UINT")
	purego.RegisterLibFunc(&OpUnaryIdentityFloat, handle, "spla_OpUnary_IDENTITY_FLOAT")
	purego.RegisterLibFunc(&OpUnaryAinvInt, handle, "spla_OpUnary_AINV_INT")
	purego.RegisterLibFunc(&OpUnaryAinvUint, handle, "spla_OpUnary_AINV_UINT")
	purego.RegisterLibFunc(&OpUnaryAinvFloat, handle, "spla_OpUnary_AINV_FLOAT")
	purego.RegisterLibFunc(&OpUnaryMinvInt, handle, "spla_OpUnary_MINV_INT")
	purego.RegisterLibFunc(&OpUnaryMinvUint, handle, "spla_OpUnary_MINV_UINT")
	purego.RegisterLibFunc(&OpUnaryMinvFloat, handle, "spla_OpUnary_MINV_FLOAT")
	purego.RegisterLibFunc(&OpUnaryLnotInt, handle, "spla_OpUnary_LNOT_INT")
	purego.RegisterLibFunc(&OpUnaryLnotUint, handle, "spla_OpUnary_LNOT_UINT")
	purego.RegisterLibFunc(&OpUnaryLnotFloat, handle, "spla_OpUnary_LNOT_FLOAT")
	purego.RegisterLibFunc(&OpUnaryUoneInt, handle, "spla_OpUnary_UONE_INT")
	purego.RegisterLibFunc(&OpUnaryUoneUint, handle, "spla_OpUnary_UONE_UINT")
	purego.RegisterLibFunc(&OpUnaryUoneFloat, handle, "spla_OpUnary_UONE_FLOAT")
	purego.RegisterLibFunc(&OpUnaryAbsInt, handle, "spla_OpUnary_ABS_INT")
	purego.RegisterLibFunc(&OpUnaryAbsUint, handle, "spla_OpUnary_ABS_UINT")
	purego.RegisterLibFunc(&OpUnaryAbsFloat, handle, "spla_OpUnary_ABS_FLOAT")
	purego.RegisterLibFunc(&OpUnaryBnotInt, handle, "spla_OpUnary_BNOT_INT")
	purego.RegisterLibFunc(&OpUnaryBnotUint, handle, "spla_OpUnary_BNOT_UINT")
	purego.RegisterLibFunc(&OpUnarySqrtFloat, handle, "spla_OpUnary_SQRT_FLOAT")
	purego.RegisterLibFunc(&OpUnaryLogFloat, handle, "spla_OpUnary_LOG_FLOAT")
	purego.RegisterLibFunc(&OpUnaryExpFloat, handle, "spla_OpUnary_EXP_FLOAT")
	purego.RegisterLibFunc(&OpUnarySinFloat, handle, "spla_OpUnary_SIN_FLOAT")
	purego.RegisterLibFunc(&OpUnaryCosFloat, handle, "spla_OpUnary_COS_FLOAT")
	purego.RegisterLibFunc(&OpUnaryTanFloat, handle, "spla_OpUnary_TAN_FLOAT")
	purego.RegisterLibFunc(&OpUnaryAsinFloat, handle, "spla_OpUnary_ASIN_FLOAT")
	purego.RegisterLibFunc(&OpUnaryAcosFloat, handle, "spla_OpUnary_ACOS_FLOAT")
	purego.RegisterLibFunc(&OpUnaryAtanFloat, handle, "spla_OpUnary_ATAN_FLOAT")
	purego.RegisterLibFunc(&OpUnaryCeilFloat, handle, "spla_OpUnary_CEIL_FLOAT")
	purego.RegisterLibFunc(&OpUnaryFloorFloat, handle, "spla_OpUnary_FLOOR_FLOAT")
	purego.RegisterLibFunc(&OpUnaryRoundFloat, handle, "spla_OpUnary_ROUND_FLOAT")
	purego.RegisterLibFunc(&OpUnaryTruncFloat, handle, "spla_OpUnary_TRUNC_FLOAT")
}

func registerOpBinaryFuncs(handle uintptr) {
	purego.RegisterLibFunc(&OpBinaryPlusInt, handle, "spla_OpBinary_PLUS_INT")
	purego.RegisterLibFunc(&OpBinaryPlusUint, handle, "spla_OpBinary_PLUS_UINT")
	purego.RegisterLibFunc(&OpBinaryPlusFloat, handle, "spla_OpBinary_PLUS_FLOAT")
	purego.RegisterLibFunc(&OpBinaryMinusInt, handle, "spla_OpBinary_MINUS_INT")
	purego.RegisterLibFunc(&OpBinaryMinusUint, handle, "spla_OpBinary_MINUS_UINT")
	purego.RegisterLibFunc(&OpBinaryMinusFloat, handle, "spla_OpBinary_MINUS_FLOAT")
	purego.RegisterLibFunc(&OpBinaryMultInt, handle, "spla_OpBinary_MULT_INT")
	purego.RegisterLibFunc(&OpBinaryMultUint, handle, "spla_OpBinary_MULT_UINT")
	purego.RegisterLibFunc(&OpBinaryMultFloat, handle, "spla_OpBinary_MULT_FLOAT")
	purego.RegisterLibFunc(&OpBinaryDivInt, handle, "spla_OpBinary_DIV_INT")
	purego.RegisterLibFunc(&OpBinaryDivUint, handle, "spla_OpBinary_DIV_UINT")
	purego.RegisterLibFunc(&OpBinaryDivFloat, handle, "spla_OpBinary_DIV_FLOAT")
	purego.RegisterLibFunc(&OpBinaryMinusPow2Int, handle, "spla_OpBinary_MINUS_POW2_INT")
	purego.RegisterLibFunc(&OpBinaryMinusPow2Uint, handle, "spla_OpBinary_MINUS_POW2_UINT")
	purego.RegisterLibFunc(&OpBinaryMinusPow2Float, handle, "spla_OpBinary_MINUS_POW2_FLOAT")
	purego.RegisterLibFunc(&OpBinaryFirstInt, handle, "spla_OpBinary_FIRST_INT")
	purego.RegisterLibFunc(&OpBinaryFirstUint, handle, "spla_OpBinary_FIRST_UINT")
	purego.RegisterLibFunc(&OpBinaryFirstFloat, handle, "spla_OpBinary_FIRST_FLOAT")
	purego.RegisterLibFunc(&OpBinarySecondInt, handle, "spla_OpBinary_SECOND_INT")
	purego.RegisterLibFunc(&OpBinarySecondUint, handle, "spla_OpBinary_SECOND_UINT")
	purego.RegisterLibFunc(&OpBinarySecondFloat, handle, "spla_OpBinary_SECOND_FLOAT")
	purego.RegisterLibFunc(&OpBinaryBoneInt, handle, "spla_OpBinary_BONE_INT")
	purego.RegisterLibFunc(&OpBinaryBoneUint, handle, "spla_OpBinary_BONE_UINT")
	purego.RegisterLibFunc(&OpBinaryBoneFloat, handle, "spla_OpBinary_BONE_FLOAT")
	purego.RegisterLibFunc(&OpBinaryMinInt, handle, "spla_OpBinary_MIN_INT")
	purego.RegisterLibFunc(&OpBinaryMinUint, handle, "spla_OpBinary_MIN_UINT")
	purego.RegisterLibFunc(&OpBinaryMinFloat, handle, "spla_OpBinary_MIN_FLOAT")
	purego.RegisterLibFunc(&OpBinaryMaxInt, handle, "spla_OpBinary_MAX_INT")
	purego.RegisterLibFunc(&OpBinaryMaxUint, handle, "spla_OpBinary_MAX_UINT")
	purego.RegisterLibFunc(&OpBinaryMaxFloat, handle, "spla_OpBinary_MAX_FLOAT")
	purego.RegisterLibFunc(&OpBinaryLorInt, handle, "spla_OpBinary_LOR_INT")
	purego.RegisterLibFunc(&OpBinaryLorUint, handle, "spla_OpBinary_LOR_UINT")
	purego.RegisterLibFunc(&OpBinaryLorFloat, handle, "spla_OpBinary_LOR_FLOAT")
	purego.RegisterLibFunc(&OpBinaryLandInt, handle, "spla_OpBinary_LAND_INT")
	purego.RegisterLibFunc(&OpBinaryLandUint, handle, "spla_OpBinary_LAND_UINT")
	purego.RegisterLibFunc(&OpBinaryLandFloat, handle, "spla_OpBinary_LAND_FLOAT")
	purego.RegisterLibFunc(&OpBinaryBorInt, handle, "spla_OpBinary_BOR_INT")
	purego.RegisterLibFunc(&OpBinaryBorUint, handle, "spla_OpBinary_BOR_UINT")
	purego.RegisterLibFunc(&OpBinaryBandInt, handle, "spla_OpBinary_BAND_INT")
	purego.RegisterLibFunc(&OpBinaryBandUint, handle, "spla_OpBinary_BAND_UINT")
	purego.RegisterLibFunc(&OpBinaryBxorInt, handle, "spla_OpBinary_BXOR_INT")
	purego.RegisterLibFunc(&OpBinaryBxorUint, handle, "spla_OpBinary_BXOR_UINT")

	purego.RegisterLibFunc(&OpBinaryFirstNonMaxInt, handle, "spla_OpBinary_FIRST_NON_MAX_INT")
	purego.RegisterLibFunc(&OpBinaryMinNonMaxInt, handle, "spla_OpBinary_MIN_NON_MAX_INT")
	purego.RegisterLibFunc(&OpBinaryConstMaxInt, handle, "spla_OpBinary_CONST_MAX_INT")
	purego.RegisterLibFunc(&OpBinarySecondMaxInt, handle, "spla_OpBinary_SECOND_MAX_INT")
	purego.RegisterLibFunc(&OpBinaryMinNonZeroInt, handle, "spla_OpBinary_MIN_NON_ZERO_INT")
	purego.RegisterLibFunc(&OpBinaryS1stIfSndMaxInt, handle, "spla_OpBinary_S1ST_IF_SND_MAX_INT")
	purego.RegisterLibFunc(&OpBinaryFstMinusOneInt, handle, "spla_OpBinary_FST_MINUS_ONE_INT")
	purego.RegisterLibFunc(&OpBinarySelectMinWeightUint, handle, "spla_OpBinary_SELECT_MIN_WEIGHT_UINT")
	purego.RegisterLibFunc(&OpBinaryConstructPairUint, handle, "spla_OpBinary_CONSTRUCT_PAIR_UINT")
}

func registerOpSelectFuncs(handle uintptr) {
	purego.RegisterLibFunc(&OpSelectEqZeroInt, handle, "spla_OpSelect_EQZERO_INT")
	purego.RegisterLibFunc(&OpSelectEqZeroUint, handle, "spla_OpSelect_EQZERO_UINT")
	purego.RegisterLibFunc(&OpSelectEqZeroFloat, handle, "spla_OpSelect_EQZERO_FLOAT")
	purego.RegisterLibFunc(&OpSelectNqZeroInt, handle, "spla_OpSelect_NQZERO_INT")
	purego.RegisterLibFunc(&OpSelectNqZeroUint, handle, "spla_OpSelect_NQZERO_UINT")
	purego.RegisterLibFunc(&OpSelectNqZeroFloat, handle, "spla_OpSelect_NQZERO_FLOAT")
	purego.RegisterLibFunc(&OpSelectGtZeroInt, handle, "spla_OpSelect_GTZERO_INT")
	purego.RegisterLibFunc(&OpSelectGtZeroUint, handle, "spla_OpSelect_GTZERO_UINT")
	purego.RegisterLibFunc(&OpSelectGtZeroFloat, handle, "spla_OpSelect_GTZERO_FLOAT")
	purego.RegisterLibFunc(&OpSelectGeZeroInt, handle, "spla_OpSelect_GEZERO_INT")
	purego.RegisterLibFunc(&OpSelectGeZeroUint, handle, "spla_OpSelect_GEZERO_UINT")
	purego.RegisterLibFunc(&OpSelectGeZeroFloat, handle, "spla_OpSelect_GEZERO_FLOAT")
	purego.RegisterLibFunc(&OpSelectLtZeroInt, handle, "spla_OpSelect_LTZERO_INT")
	purego.RegisterLibFunc(&OpSelectLtZeroUint, handle, "spla_OpSelect_LTZERO_UINT")
	purego.RegisterLibFunc(&OpSelectLtZeroFloat, handle, "spla_OpSelect_LTZERO_FLOAT")
	purego.RegisterLibFunc(&OpSelectLeZeroInt, handle, "spla_OpSelect_LEZERO_INT")
	purego.RegisterLibFunc(&OpSelectLeZeroUint, handle, "spla_OpSelect_LEZERO_UINT")
	purego.RegisterLibFunc(&OpSelectLeZeroFloat, handle, "spla_OpSelect_LEZERO_FLOAT")
	purego.RegisterLibFunc(&OpSelectAlwaysInt, handle, "spla_OpSelect_ALWAYS_INT")
	purego.RegisterLibFunc(&OpSelectAlwaysUint, handle, "spla_OpSelect_ALWAYS_UINT")
	purego.RegisterLibFunc(&OpSelectAlwaysFloat, handle, "spla_OpSelect_ALWAYS_FLOAT")
	purego.RegisterLibFunc(&OpSelectNeverInt, handle, "spla_OpSelect_NEVER_INT")
	purego.RegisterLibFunc(&OpSelectNeverUint, handle, "spla_OpSelect_NEVER_UINT")
	purego.RegisterLibFunc(&OpSelectNeverFloat, handle, "spla_OpSelect_NEVER_FLOAT")

	purego.RegisterLibFunc(&OpSelectEqualsMinfFloat, handle, "spla_OpSelect_EQUALS_MINF_FLOAT")
	purego.RegisterLibFunc(&OpSelectEqualsMaxInt, handle, "spla_OpSelect_EQUALS_MAX_INT")
	purego.RegisterLibFunc(&OpSelectEqualsMaxUint, handle, "spla_OpSelect_EQUALS_MAX_UINT")
	purego.RegisterLibFunc(&OpSelectNequalsMaxInt, handle, "spla_OpSelect_NEQUALS_MAX_INT")
	purego.RegisterLibFunc(&OpSelectNequalsMaxUint, handle, "spla_OpSelect_NEQUALS_MAX_UINT")
}

func registerRefCntFuncs(handle uintptr) {
	purego.RegisterLibFunc(&RefCntRef, handle, "spla_RefCnt_ref")
	purego.RegisterLibFunc(&RefCntUnref, handle, "spla_RefCnt_unref")
}

func registerMemViewFuncs(handle uintptr) {
	purego.RegisterLibFunc(&MemViewMake, handle, "spla_MemView_make")
	purego.RegisterLibFunc(&MemViewRead, handle, "spla_MemView_read")
	purego.RegisterLibFunc(&MemViewWrite, handle, "spla_MemView_write")
	purego.RegisterLibFunc(&MemViewGetBuffer, handle, "spla_MemView_get_buffer")
	purego.RegisterLibFunc(&MemViewGetSize, handle, "spla_MemView_get_size")
	purego.RegisterLibFunc(&MemViewIsMutable, handle, "spla_MemView_is_mutable")
}

func registerScalarFuncs(handle uintptr) {
	purego.RegisterLibFunc(&ScalarMake, handle, "spla_Scalar_make")
	purego.RegisterLibFunc(&ScalarSetInt, handle, "spla_Scalar_set_int")
	purego.RegisterLibFunc(&ScalarSetUint, handle, "spla_Scalar_set_uint")
	purego.RegisterLibFunc(&ScalarSetFloat, handle, "spla_Scalar_set_float")
	purego.RegisterLibFunc(&ScalarGetInt, handle, "spla_Scalar_get_int")
	purego.RegisterLibFunc(&ScalarGetUint, handle, "spla_Scalar_get_uint")
	purego.RegisterLibFunc(&ScalarGetFloat, handle, "spla_Scalar_get_float")
}

func registerArrayFuncs(handle uintptr) {
	purego.RegisterLibFunc(&ArrayMake, handle, "spla_Array_make")
	purego.RegisterLibFunc(&ArrayGetNValues, handle, "spla_Array_get_n_values")
	purego.RegisterLibFunc(&ArraySetInt, handle, "spla_Array_set_int")
	purego.RegisterLibFunc(&ArraySetUint, handle, "spla_Array_set_uint")
	purego.RegisterLibFunc(&ArraySetFloat, handle, "spla_Array_set_float")
	purego.RegisterLibFunc(&ArrayGetInt, handle, "spla_Array_get_int")
	purego.RegisterLibFunc(&ArrayGetUint, handle, "spla_Array_get_uint")
	purego.RegisterLibFunc(&ArrayGetFloat, handle, "spla_Array_get_float")
	purego.RegisterLibFunc(&ArrayResize, handle, "spla_Array_resize")
	purego.RegisterLibFunc(&ArrayBuild, handle, "spla_Array_build")
	purego.RegisterLibFunc(&ArrayRead, handle, "spla_Array_read")
	purego.RegisterLibFunc(&ArrayClear, handle, "spla_Array_clear")
}

func registerVectorFuncs(handle uintptr) {
	purego.RegisterLibFunc(&VectorMake, handle, "spla_Vector_make")
	purego.RegisterLibFunc(&VectorSetFormat, handle, "spla_Vector_set_format")
	purego.RegisterLibFunc(&VectorSetFillValue, handle, "spla_Vector_set_fill_value")
	purego.RegisterLibFunc(&VectorSetReduce, handle, "spla_Vector_set_reduce")
	purego.RegisterLibFunc(&VectorSetInt, handle, "spla_Vector_set_int")
	purego.RegisterLibFunc(&VectorSetUint, handle, "spla_Vector_set_uint")
	purego.RegisterLibFunc(&VectorSetFloat, handle, "spla_Vector_set_float")
	purego.RegisterLibFunc(&VectorGetInt, handle, "spla_Vector_get_int")
	purego.RegisterLibFunc(&VectorGetUint, handle, "spla_Vector_get_uint")
	purego.RegisterLibFunc(&VectorGetFloat, handle, "spla_Vector_get_float")
	purego.RegisterLibFunc(&VectorBuild, handle, "spla_Vector_build")
	purego.RegisterLibFunc(&VectorRead, handle, "spla_Vector_read")
	purego.RegisterLibFunc(&VectorClear, handle, "spla_Vector_clear")
}

func registerMatrixFuncs(handle uintptr) {
	purego.RegisterLibFunc(&MatrixMake, handle, "spla_Matrix_make")
	purego.RegisterLibFunc(&MatrixSetFormat, handle, "spla_Matrix_set_format")
	purego.RegisterLibFunc(&MatrixSetFillValue, handle, "spla_Matrix_set_fill_value")
	purego.RegisterLibFunc(&MatrixSetReduce, handle, "spla_Matrix_set_reduce")
	purego.RegisterLibFunc(&MatrixSetInt, handle, "spla_Matrix_set_int")
	purego.RegisterLibFunc(&MatrixSetUint, handle, "spla_Matrix_set_uint")
	purego.RegisterLibFunc(&MatrixSetFloat, handle, "spla_Matrix_set_float")
	purego.RegisterLibFunc(&MatrixGetInt, handle, "spla_Matrix_get_int")
	purego.RegisterLibFunc(&MatrixGetUint, handle, "spla_Matrix_get_uint")
	purego.RegisterLibFunc(&MatrixGetFloat, handle, "spla_Matrix_get_float")
	purego.RegisterLibFunc(&MatrixBuild, handle, "spla_Matrix_build")
	purego.RegisterLibFunc(&MatrixRead, handle, "spla_Matrix_read")
	purego.RegisterLibFunc(&MatrixClear, handle, "spla_Matrix_clear")
}

func registerAlgorithmFuncs(handle uintptr) {
	purego.RegisterLibFunc(&AlgorithmBfs, handle, "spla_Algorithm_bfs")
	purego.RegisterLibFunc(&AlgorithmSssp, handle, "spla_Algorithm_sssp")
	purego.RegisterLibFunc(&AlgorithmPr, handle, "spla_Algorithm_pr")
	purego.RegisterLibFunc(&AlgorithmTc, handle, "spla_Algorithm_tc")
}

func registerExecFuncs(handle uintptr) {
	purego.RegisterLibFunc(&ExecMxM, handle, "spla_Exec_mxm")
	purego.RegisterLibFunc(&ExecMxMTMasked, handle, "spla_Exec_mxmT_masked")
	purego.RegisterLibFunc(&ExecKron, handle, "spla_Exec_kron")
	purego.RegisterLibFunc(&ExecMxVMasked, handle, "spla_Exec_mxv_masked")
	purego.RegisterLibFunc(&ExecVxMMasked, handle, "spla_Exec_vxm_masked")
	purego.RegisterLibFunc(&ExecMEAdd, handle, "spla_Exec_m_eadd")
	purego.RegisterLibFunc(&ExecMEMult, handle, "spla_Exec_m_emult")
	purego.RegisterLibFunc(&ExecMReduceByRow, handle, "spla_Exec_m_reduce_by_row")
	purego.RegisterLibFunc(&ExecMReduceByCol, handle, "spla_Exec_m_reduce_by_column")
	purego.RegisterLibFunc(&ExecMReduce, handle, "spla_Exec_m_reduce")
	purego.RegisterLibFunc(&ExecMTranspose, handle, "spla_Exec_m_transpose")
	purego.RegisterLibFunc(&ExecMExtractRow, handle, "spla_Exec_m_extract_row")
	purego.RegisterLibFunc(&ExecMExtractCol, handle, "spla_Exec_m_extract_column")
	purego.RegisterLibFunc(&ExecVEAdd, handle, "spla_Exec_v_eadd")
	purego.RegisterLibFunc(&ExecVEMult, handle, "spla_Exec_v_emult")
	purego.RegisterLibFunc(&ExecVEAddFdb, handle, "spla_Exec_v_eadd_fdb")
	purego.RegisterLibFunc(&ExecVAssignMasked, handle, "spla_Exec_v_assign_masked")
	purego.RegisterLibFunc(&ExecVMap, handle, "spla_Exec_v_map")
	purego.RegisterLibFunc(&ExecVReduce, handle, "spla_Exec_v_reduce")
	purego.RegisterLibFunc(&ExecVCountMf, handle, "spla_Exec_v_count_mf")
}

// goString converts a null-terminated C string pointer to a Go string.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	p := *(*unsafe.Pointer)(unsafe.Pointer(&ptr))
	var length int
	for {
		b := *(*byte)(unsafe.Add(p, length))
		if b == 0 {
			break
		}
		length++
		if length > 1<<20 { // safety limit
			break
		}
	}
	if length == 0 {
		return ""
	}
	buf := make([]byte, length)
	for i := 0; i < length; i++ {
		buf[i] = *(*byte)(unsafe.Add(p, i))
	}
	return string(buf)
}
