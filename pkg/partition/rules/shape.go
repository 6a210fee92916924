// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rules

import (
	"github.com/gomlx/delegation/pkg/core/ir"
	"github.com/gomlx/delegation/pkg/partition"
)

// maxCatInputs is the largest number of tensors the concatenation kernel joins in one call.
const maxCatInputs = 5

func isPermutation(perm []int, rank int) bool {
	if len(perm) != rank {
		return false
	}
	seen := make([]bool, rank)
	for _, p := range perm {
		axis, ok := normalizeAxis(p, rank)
		if !ok || seen[axis] {
			return false
		}
		seen[axis] = true
	}
	return true
}

func checkShape(g *ir.Graph, n *ir.Node) partition.Decision {
	if issue := tensorIssue(n, floatOrQuantizedDTypes); issue != "" {
		return partition.Ineligiblef("%s: %s", n.Op, issue)
	}
	operands, issue := inputs(g, n, -1)
	if issue != "" || len(operands) == 0 {
		return partition.Ineligiblef("%s: missing input", n.Op)
	}
	switch n.Op {
	case ir.OpTypePermute:
		perm, found := n.IntsAttr("dims")
		if !found || !isPermutation(perm, operands[0].Rank()) {
			return partition.Ineligiblef("Permute: dims %v is not a permutation of %d axes", perm, operands[0].Rank())
		}
		return partition.Eligiblef("Permute")

	case ir.OpTypeCat:
		if len(operands) > maxCatInputs {
			return partition.Ineligiblef("Cat: %d inputs, at most %d supported", len(operands), maxCatInputs)
		}
		for _, operand := range operands {
			if operand.DType != n.DType {
				return partition.Ineligiblef("Cat: mixed dtypes %s and %s", operand.DType, n.DType)
			}
			if operand.Rank() != n.Rank() {
				return partition.Ineligiblef("Cat: operands of different ranks")
			}
		}
		dim, _ := n.IntAttr("dim")
		if _, ok := normalizeAxis(dim, n.Rank()); !ok {
			return partition.Ineligiblef("Cat: dim=%d out of range", dim)
		}
		return partition.Eligiblef("Cat of %d inputs", len(operands))

	case ir.OpTypeSliceCopy:
		if step, found := n.IntAttr("step"); found && step != 1 {
			return partition.Ineligiblef("SliceCopy: step=%d not supported", step)
		}
		if operands[0].IsDynamic() {
			return partition.Ineligiblef("SliceCopy: dynamic input shape")
		}
		return partition.Eligiblef("SliceCopy")

	case ir.OpTypeConstantPad:
		if n.Rank() > 4 {
			return partition.Ineligiblef("ConstantPad: only up to rank 4 supported")
		}
		padding, found := n.IntsAttr("pad")
		if !found || len(padding)%2 != 0 || len(padding)/2 > n.Rank() {
			return partition.Ineligiblef("ConstantPad: malformed pad %v", padding)
		}
		for _, p := range padding {
			if p < 0 {
				return partition.Ineligiblef("ConstantPad: negative padding (cropping) not supported")
			}
		}
		return partition.Eligiblef("ConstantPad")

	case ir.OpTypeUpsampleBilinear2d:
		if n.Rank() != 4 {
			return partition.Ineligiblef("UpsampleBilinear2d: only rank-4 tensors are supported")
		}
		if !floatDTypes.Has(n.DType) {
			return partition.Ineligiblef("UpsampleBilinear2d: dtype %s not supported", n.DType)
		}
		return partition.Eligiblef("UpsampleBilinear2d")
	}
	return partition.Ineligiblef("%s: not a shape operation", n.Op)
}

func newShape() partition.Rule {
	return newOpRule(FamilyShape, checkShape,
		ir.OpTypePermute, ir.OpTypeCat, ir.OpTypeSliceCopy, ir.OpTypeConstantPad, ir.OpTypeUpsampleBilinear2d)
}
