package spla

import "github.com/Parzival-05/spla/internal/ffi"

// OpUnary is a stateless native operator descriptor with one argument.
type OpUnary struct {
	h ffi.Object
}

// OpBinary is a stateless native operator descriptor with two arguments.
type OpBinary struct {
	h ffi.Object
}

// OpSelect is a stateless native selection predicate descriptor.
type OpSelect struct {
	h ffi.Object
}

// UnaryOps is the closed catalog of built-in unary operators, parameterized
// by element type where the native library provides the variant.
type UnaryOps struct {
	IdentityInt   OpUnary
	IdentityUint  OpUnary
	IdentityFloat OpUnary
	AinvInt       OpUnary
	AinvUint      OpUnary
	AinvFloat     OpUnary
	MinvInt       OpUnary
	MinvUint      OpUnary
	MinvFloat     OpUnary
	LnotInt       OpUnary
	LnotUint      OpUnary
	LnotFloat     OpUnary
	UoneInt       OpUnary
	UoneUint      OpUnary
	UoneFloat     OpUnary
	AbsInt        OpUnary
	AbsUint       OpUnary
	AbsFloat      OpUnary
	BnotInt       OpUnary
	BnotUint      OpUnary
	SqrtFloat     OpUnary
	LogFloat      OpUnary
	ExpFloat      OpUnary
	SinFloat      OpUnary
	CosFloat      OpUnary
	TanFloat      OpUnary
	AsinFloat     OpUnary
	AcosFloat     OpUnary
	AtanFloat     OpUnary
	CeilFloat     OpUnary
	FloorFloat    OpUnary
	RoundFloat    OpUnary
	TruncFloat    OpUnary
}

// BinaryOps is the closed catalog of built-in binary operators, including
// the specialized operators the native graph algorithms are built from.
type BinaryOps struct {
	PlusInt        OpBinary
	PlusUint       OpBinary
	PlusFloat      OpBinary
	MinusInt       OpBinary
	MinusUint      OpBinary
	MinusFloat     OpBinary
	MultInt        OpBinary
	MultUint       OpBinary
	MultFloat      OpBinary
	DivInt         OpBinary
	DivUint        OpBinary
	DivFloat       OpBinary
	MinusPow2Int   OpBinary
	MinusPow2Uint  OpBinary
	MinusPow2Float OpBinary
	FirstInt       OpBinary
	FirstUint      OpBinary
	FirstFloat     OpBinary
	SecondInt      OpBinary
	SecondUint     OpBinary
	SecondFloat    OpBinary
	BoneInt        OpBinary
	BoneUint       OpBinary
	BoneFloat      OpBinary
	MinInt         OpBinary
	MinUint        OpBinary
	MinFloat       OpBinary
	MaxInt         OpBinary
	MaxUint        OpBinary
	MaxFloat       OpBinary
	LorInt         OpBinary
	LorUint        OpBinary
	LorFloat       OpBinary
	LandInt        OpBinary
	LandUint       OpBinary
	LandFloat      OpBinary
	BorInt         OpBinary
	BorUint        OpBinary
	BandInt        OpBinary
	BandUint       OpBinary
	BxorInt        OpBinary
	BxorUint       OpBinary

	FirstNonMaxInt      OpBinary
	MinNonMaxInt        OpBinary
	ConstMaxInt         OpBinary
	SecondMaxInt        OpBinary
	MinNonZeroInt       OpBinary
	S1stIfSndMaxInt     OpBinary
	FstMinusOneInt      OpBinary
	SelectMinWeightUint OpBinary
	ConstructPairUint   OpBinary
}

// SelectOps is the closed catalog of built-in selection predicates.
type SelectOps struct {
	EqZeroInt   OpSelect
	EqZeroUint  OpSelect
	EqZeroFloat OpSelect
	NqZeroInt   OpSelect
	NqZeroUint  OpSelect
	NqZeroFloat OpSelect
	GtZeroInt   OpSelect
	GtZeroUint  OpSelect
	GtZeroFloat OpSelect
	GeZeroInt   OpSelect
	GeZeroUint  OpSelect
	GeZeroFloat OpSelect
	LtZeroInt   OpSelect
	LtZeroUint  OpSelect
	LtZeroFloat OpSelect
	LeZeroInt   OpSelect
	LeZeroUint  OpSelect
	LeZeroFloat OpSelect
	AlwaysInt   OpSelect
	AlwaysUint  OpSelect
	AlwaysFloat OpSelect
	NeverInt    OpSelect
	NeverUint   OpSelect
	NeverFloat  OpSelect

	EqualsMinfFloat OpSelect
	EqualsMaxInt    OpSelect
	EqualsMaxUint   OpSelect
	NequalsMaxInt   OpSelect
	NequalsMaxUint  OpSelect
}

var (
	unaryOps  *UnaryOps
	binaryOps *BinaryOps
	selectOps *SelectOps
)

// Unary returns the unary operator catalog. The descriptors are fetched
// once; the native library returns the same process-wide handles for the
// life of the process.
func Unary() (*UnaryOps, error) {
	if err := ffi.Default.Ready(); err != nil {
		return nil, err
	}
	if unaryOps == nil {
		unaryOps = &UnaryOps{
			IdentityInt:   OpUnary{h: ffi.OpUnaryIdentityInt()},
			IdentityUint:  OpUnary{h: ffi.OpUnaryIdentityUint()},
			IdentityFloat: OpUnary{h: ffi.OpUnaryIdentityFloat()},
			AinvInt:       OpUnary{h: ffi.OpUnaryAinvInt()},
			AinvUint:      OpUnary{h: ffi.OpUnaryAinvUint()},
			AinvFloat:     OpUnary{h: ffi.OpUnaryAinvFloat()},
			MinvInt:       OpUnary{h: ffi.OpUnaryMinvInt()},
			MinvUint:      OpUnary{h: ffi.OpUnaryMinvUint()},
			MinvFloat:     OpUnary{h: ffi.OpUnaryMinvFloat()},
			LnotInt:       OpUnary{h: ffi.OpUnaryLnotInt()},
			LnotUint:      OpUnary{h: ffi.OpUnaryLnotUint()},
			LnotFloat:     OpUnary{h: ffi.OpUnaryLnotFloat()},
			UoneInt:       OpUnary{h: ffi.OpUnaryUoneInt()},
			UoneUint:      OpUnary{h: ffi.OpUnaryUoneUint()},
			UoneFloat:     OpUnary{h: ffi.OpUnaryUoneFloat()},
			AbsInt:        OpUnary{h: ffi.OpUnaryAbsInt()},
			AbsUint:       OpUnary{h: ffi.OpUnaryAbsUint()},
			AbsFloat:      OpUnary{h: ffi.OpUnaryAbsFloat()},
			BnotInt:       OpUnary{h: ffi.OpUnaryBnotInt()},
			BnotUint:      OpUnary{h: ffi.OpUnaryBnotUint()},
			SqrtFloat:     OpUnary{h: ffi.OpUnarySqrtFloat()},
			LogFloat:      OpUnary{h: ffi.OpUnaryLogFloat()},
			ExpFloat:      OpUnary{h: ffi.OpUnaryExpFloat()},
			SinFloat:      OpUnary{h: ffi.OpUnarySinFloat()},
			CosFloat:      OpUnary{h: ffi.OpUnaryCosFloat()},
			TanFloat:      OpUnary{h: ffi.OpUnaryTanFloat()},
			AsinFloat:     OpUnary{h: ffi.OpUnaryAsinFloat()},
			AcosFloat:     OpUnary{h: ffi.OpUnaryAcosFloat()},
			AtanFloat:     OpUnary{h: ffi.OpUnaryAtanFloat()},
			CeilFloat:     OpUnary{h: ffi.OpUnaryCeilFloat()},
			FloorFloat:    OpUnary{h: ffi.OpUnaryFloorFloat()},
			RoundFloat:    OpUnary{h: ffi.OpUnaryRoundFloat()},
			TruncFloat:    OpUnary{h: ffi.OpUnaryTruncFloat()},
		}
	}
	return unaryOps, nil
}

// Binary returns the binary operator catalog.
func Binary() (*BinaryOps, error) {
	if err := ffi.Default.Ready(); err != nil {
		return nil, err
	}
	if binaryOps == nil {
		binaryOps = &BinaryOps{
			PlusInt:        OpBinary{h: ffi.OpBinaryPlusInt()},
			PlusUint:       OpBinary{h: ffi.OpBinaryPlusUint()},
			PlusFloat:      OpBinary{h: ffi.OpBinaryPlusFloat()},
			MinusInt:       OpBinary{h: ffi.OpBinaryMinusInt()},
			MinusUint:      OpBinary{h: ffi.OpBinaryMinusUint()},
			MinusFloat:     OpBinary{h: ffi.OpBinaryMinusFloat()},
			MultInt:        OpBinary{h: ffi.OpBinaryMultInt()},
			MultUint:       OpBinary{h: ffi.OpBinaryMultUint()},
			MultFloat:      OpBinary{h: ffi.OpBinaryMultFloat()},
			DivInt:         OpBinary{h: ffi.OpBinaryDivInt()},
			DivUint:        OpBinary{h: ffi.OpBinaryDivUint()},
			DivFloat:       OpBinary{h: ffi.OpBinaryDivFloat()},
			MinusPow2Int:   OpBinary{h: ffi.OpBinaryMinusPow2Int()},
			MinusPow2Uint:  OpBinary{h: ffi.OpBinaryMinusPow2Uint()},
			MinusPow2Float: OpBinary{h: ffi.OpBinaryMinusPow2Float()},
			FirstInt:       OpBinary{h: ffi.OpBinaryFirstInt()},
			FirstUint:      OpBinary{h: ffi.OpBinaryFirstUint()},
			FirstFloat:     OpBinary{h: ffi.OpBinaryFirstFloat()},
			SecondInt:      OpBinary{h: ffi.OpBinarySecondInt()},
			SecondUint:     OpBinary{h: ffi.OpBinarySecondUint()},
			SecondFloat:    OpBinary{h: ffi.OpBinarySecondFloat()},
			BoneInt:        OpBinary{h: ffi.OpBinaryBoneInt()},
			BoneUint:       OpBinary{h: ffi.OpBinaryBoneUint()},
			BoneFloat:      OpBinary{h: ffi.OpBinaryBoneFloat()},
			MinInt:         OpBinary{h: ffi.OpBinaryMinInt()},
			MinUint:        OpBinary{h: ffi.OpBinaryMinUint()},
			MinFloat:       OpBinary{h: ffi.OpBinaryMinFloat()},
			MaxInt:         OpBinary{h: ffi.OpBinaryMaxInt()},
			MaxUint:        OpBinary{h: ffi.OpBinaryMaxUint()},
			MaxFloat:       OpBinary{h: ffi.OpBinaryMaxFloat()},
			LorInt:         OpBinary{h: ffi.OpBinaryLorInt()},
			LorUint:        OpBinary{h: ffi.OpBinaryLorUint()},
			LorFloat:       OpBinary{h: ffi.OpBinaryLorFloat()},
			LandInt:        OpBinary{h: ffi.OpBinaryLandInt()},
			LandUint:       OpBinary{h: ffi.OpBinaryLandUint()},
			LandFloat:      OpBinary{h: ffi.OpBinaryLandFloat()},
			BorInt:         OpBinary{h: ffi.OpBinaryBorInt()},
			BorUint:        OpBinary{h: ffi.OpBinaryBorUint()},
			BandInt:        OpBinary{h: ffi.OpBinaryBandInt()},
			BandUint:       OpBinary{h: ffi.OpBinaryBandUint()},
			BxorInt:        OpBinary{h: ffi.OpBinaryBxorInt()},
			BxorUint:       OpBinary{h: ffi.OpBinaryBxorUint()},

			FirstNonMaxInt:      OpBinary{h: ffi.OpBinaryFirstNonMaxInt()},
			MinNonMaxInt:        OpBinary{h: ffi.OpBinaryMinNonMaxInt()},
			ConstMaxInt:         OpBinary{h: ffi.OpBinaryConstMaxInt()},
			SecondMaxInt:        OpBinary{h: ffi.OpBinarySecondMaxInt()},
			MinNonZeroInt:       OpBinary{h: ffi.OpBinaryMinNonZeroInt()},
			S1stIfSndMaxInt:     OpBinary{h: ffi.OpBinaryS1stIfSndMaxInt()},
			FstMinusOneInt:      OpBinary{h: ffi.OpBinaryFstMinusOneInt()},
			SelectMinWeightUint: OpBinary{h: ffi.OpBinarySelectMinWeightUint()},
			ConstructPairUint:   OpBinary{h: ffi.OpBinaryConstructPairUint()},
		}
	}
	return binaryOps, nil
}

// Select returns the selection predicate catalog.
func Select() (*SelectOps, error) {
	if err := ffi.Default.Ready(); err != nil {
		return nil, err
	}
	if selectOps == nil {
		selectOps = &SelectOps{
			EqZeroInt:   OpSelect{h: ffi.OpSelectEqZeroInt()},
			EqZeroUint:  OpSelect{h: ffi.OpSelectEqZeroUint()},
			EqZeroFloat: OpSelect{h: ffi.OpSelectEqZeroFloat()},
			NqZeroInt:   OpSelect{h: ffi.OpSelectNqZeroInt()},
			NqZeroUint:  OpSelect{h: ffi.OpSelectNqZeroUint()},
			NqZeroFloat: OpSelect{h: ffi.OpSelectNqZeroFloat()},
			GtZeroInt:   OpSelect{h: ffi.OpSelectGtZeroInt()},
			GtZeroUint:  OpSelect{h: ffi.OpSelectGtZeroUint()},
			GtZeroFloat: OpSelect{h: ffi.OpSelectGtZeroFloat()},
			GeZeroInt:   OpSelect{h: ffi.OpSelectGeZeroInt()},
			GeZeroUint:  OpSelect{h: ffi.OpSelectGeZeroUint()},
			GeZeroFloat: OpSelect{h: ffi.OpSelectGeZeroFloat()},
			LtZeroInt:   OpSelect{h: ffi.OpSelectLtZeroInt()},
			LtZeroUint:  OpSelect{h: ffi.OpSelectLtZeroUint()},
			LtZeroFloat: OpSelect{h: ffi.OpSelectLtZeroFloat()},
			LeZeroInt:   OpSelect{h: ffi.OpSelectLeZeroInt()},
			LeZeroUint:  OpSelect{h: ffi.OpSelectLeZeroUint()},
			LeZeroFloat: OpSelect{h: ffi.OpSelectLeZeroFloat()},
			AlwaysInt:   OpSelect{h: ffi.OpSelectAlwaysInt()},
			AlwaysUint:  OpSelect{h: ffi.OpSelectAlwaysUint()},
			AlwaysFloat: OpSelect{h: ffi.OpSelectAlwaysFloat()},
			NeverInt:    OpSelect{h: ffi.OpSelectNeverInt()},
			NeverUint:   OpSelect{h: ffi.OpSelectNeverUint()},
			NeverFloat:  OpSelect{h: ffi.OpSelectNeverFloat()},

			EqualsMinfFloat: OpSelect{h: ffi.OpSelectEqualsMinfFloat()},
			EqualsMaxInt:    OpSelect{h: ffi.OpSelectEqualsMaxInt()},
			EqualsMaxUint:   OpSelect{h: ffi.OpSelectEqualsMaxUint()},
			NequalsMaxInt:   OpSelect{h: ffi.OpSelectNequalsMaxInt()},
			NequalsMaxUint:  OpSelect{h: ffi.OpSelectNequalsMaxUint()},
		}
	}
	return selectOps, nil
}
