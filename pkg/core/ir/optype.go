// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

// OpType is an enum of the operators a partitioner may find in an exported graph.
//
// The set mirrors the edge-dialect operators accelerator delegates usually inspect: it is
// intentionally coarser than a full operator set, and operators not listed here are imported
// as OpTypeUnknown (never delegated).
type OpType int

//go:generate go tool enumer -type=OpType -trimprefix=OpType -text -yaml -output=gen_optype_enumer.go optype.go

const (
	OpTypeInvalid OpType = iota
	OpTypeUnknown
	OpTypeParameter
	OpTypeConstant
	OpTypeOutput

	// Elementwise binary operations.

	OpTypeAdd
	OpTypeSub
	OpTypeMul
	OpTypeDiv
	OpTypeMaximum
	OpTypeMinimum
	OpTypePow

	// Elementwise unary operations.

	OpTypeAbs
	OpTypeCeil
	OpTypeFloor
	OpTypeRound
	OpTypeNeg
	OpTypeSqrt
	OpTypeRsqrt
	OpTypeLog
	OpTypeExp
	OpTypeRelu
	OpTypeSigmoid
	OpTypeTanh
	OpTypeGelu
	OpTypeHardswish
	OpTypeElu

	// Activations with parameters.

	OpTypeClamp
	OpTypeHardtanh
	OpTypeLeakyRelu
	OpTypePrelu
	OpTypeSoftmax

	// Reductions and pooling.

	OpTypeMeanDim
	OpTypeMaxDim
	OpTypeAvgPool2d
	OpTypeMaxPool2d

	// Convolution and matrix multiplications.

	OpTypeConvolution
	OpTypeLinear
	OpTypeAddmm
	OpTypeMm
	OpTypeBmm

	// Shape manipulation.

	OpTypePermute
	OpTypeCat
	OpTypeSliceCopy
	OpTypeConstantPad
	OpTypeUpsampleBilinear2d
	OpTypeReshape

	// Normalization.

	OpTypeBatchNorm

	// Quantization.

	OpTypeQuantizePerTensor
	OpTypeDequantizePerTensor
	OpTypeQuantizeAffine
	OpTypeDequantizeAffine
	OpTypeChooseQParamsAffine

	// Attention.

	OpTypeScaledDotProductAttention

	// OpTypeLast should always be kept the last, it is used as a counter/marker for OpType.
	OpTypeLast
)

// IsQuantizeAffine returns whether op is one of the affine quantization operators, whose
// decomposition must be handled as a single chain by delegates.
func (op OpType) IsQuantizeAffine() bool {
	return op == OpTypeQuantizeAffine || op == OpTypeDequantizeAffine || op == OpTypeChooseQParamsAffine
}

// IsGraphBoundary returns whether op is a graph input/output marker, which is never delegated.
func (op OpType) IsGraphBoundary() bool {
	return op == OpTypeParameter || op == OpTypeConstant || op == OpTypeOutput
}
