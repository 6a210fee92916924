// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rules

import (
	"github.com/gomlx/delegation/pkg/core/dtypes"
	"github.com/gomlx/delegation/pkg/core/ir"
	"github.com/gomlx/delegation/pkg/partition"
)

// zeroPointRange returns the range of valid zero points for a quantized storage dtype.
func zeroPointRange(dtype dtypes.DType) (low, high int) {
	if dtype.IsUnsigned() {
		return 0, 1<<dtype.Bits() - 1
	}
	return -(1 << (dtype.Bits() - 1)), 1<<(dtype.Bits()-1) - 1
}

func checkQuantizePerTensor(g *ir.Graph, n *ir.Node) partition.Decision {
	operands, issue := inputs(g, n, 1)
	if issue != "" {
		return partition.Ineligiblef("%s: %s", n.Op, issue)
	}
	floatSide, quantSide := operands[0], n
	if n.Op == ir.OpTypeDequantizePerTensor {
		floatSide, quantSide = n, operands[0]
	}
	if !floatDTypes.Has(floatSide.DType) {
		return partition.Ineligiblef("%s: float side dtype %s not supported", n.Op, floatSide.DType)
	}
	if !quantizedDTypes.Has(quantSide.DType) {
		return partition.Ineligiblef("%s: quantized dtype %s not supported", n.Op, quantSide.DType)
	}
	if n.IsDynamic() {
		return partition.Ineligiblef("%s: dynamic shapes not supported", n.Op)
	}
	scale, found := n.FloatAttr("scale")
	if !found || scale <= 0 {
		return partition.Ineligiblef("%s: scale must be static and positive", n.Op)
	}
	zeroPoint, _ := n.IntAttr("zero_point")
	if low, high := zeroPointRange(quantSide.DType); zeroPoint < low || zeroPoint > high {
		return partition.Ineligiblef("%s: zero_point=%d out of range [%d, %d] for %s",
			n.Op, zeroPoint, low, high, quantSide.DType)
	}
	return partition.Eligiblef("%s to %s", n.Op, quantSide.DType)
}

func newQuantizePerTensor() partition.Rule {
	return newOpRule(FamilyQuantizePerTensor, checkQuantizePerTensor,
		ir.OpTypeQuantizePerTensor, ir.OpTypeDequantizePerTensor)
}

// affineSourceFns are the names of the affine quantization operators, as found in Node.SourceFn of the
// nodes they decompose into.
var affineSourceFns = map[string]bool{
	"quantize_affine":       true,
	"dequantize_affine":     true,
	"choose_qparams_affine": true,
}

// quantizeAffineRule claims the affine quantization operators, and vetoes the nodes of their
// decomposition: the delegate must receive the affine chain whole, so the generic rules must not
// pick its pieces.
type quantizeAffineRule struct{}

func newQuantizeAffine() partition.Rule { return quantizeAffineRule{} }

// Name implements partition.Rule.
func (quantizeAffineRule) Name() string { return FamilyQuantizeAffine }

// Classify implements partition.Rule.
func (quantizeAffineRule) Classify(g *ir.Graph, n *ir.Node) partition.Decision {
	if n.Op.IsQuantizeAffine() {
		return checkQuantizeAffine(g, n)
	}
	if affineSourceFns[n.SourceFn] {
		return partition.Vetof("%s is part of a decomposed %s", n.Op, n.SourceFn)
	}
	for _, p := range g.Producers(n) {
		if p != nil && p.Op == ir.OpTypeChooseQParamsAffine {
			return partition.Vetof("%s consumes the quantization parameters of #%d", n.Op, p.ID)
		}
	}
	return partition.NotApplicable()
}

func checkQuantizeAffine(g *ir.Graph, n *ir.Node) partition.Decision {
	operands, issue := inputs(g, n, -1)
	if issue != "" || len(operands) == 0 {
		return partition.Ineligiblef("%s: missing input", n.Op)
	}
	if n.IsDynamic() {
		return partition.Ineligiblef("%s: dynamic shapes not supported", n.Op)
	}
	if _, found := n.IntsAttr("block_size"); !found {
		return partition.Ineligiblef("%s: missing block_size", n.Op)
	}
	switch n.Op {
	case ir.OpTypeQuantizeAffine:
		if !n.DType.IsQuantizedStorage() {
			return partition.Ineligiblef("QuantizeAffine: output dtype %s is not a quantized storage type", n.DType)
		}
	case ir.OpTypeDequantizeAffine:
		if !operands[0].DType.IsQuantizedStorage() {
			return partition.Ineligiblef("DequantizeAffine: input dtype %s is not a quantized storage type", operands[0].DType)
		}
	case ir.OpTypeChooseQParamsAffine:
		if !floatDTypes.Has(operands[0].DType) {
			return partition.Ineligiblef("ChooseQParamsAffine: input dtype %s not supported", operands[0].DType)
		}
	}
	return partition.Eligiblef("%s preserved whole", n.Op)
}
