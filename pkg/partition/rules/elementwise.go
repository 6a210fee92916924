// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rules

import (
	"math"

	"github.com/gomlx/delegation/pkg/core/dtypes"
	"github.com/gomlx/delegation/pkg/core/ir"
	"github.com/gomlx/delegation/pkg/partition"
	"github.com/gomlx/delegation/pkg/support/sets"
)

var (
	floatOrQuantizedDTypes = floatDTypes.Union(quantizedDTypes)
	inf                    = math.Inf(1)
)

func binaryCheck(allowed sets.Set[dtypes.DType]) check {
	return func(g *ir.Graph, n *ir.Node) partition.Decision {
		if issue := tensorIssue(n, allowed); issue != "" {
			return partition.Ineligiblef("%s: %s", n.Op, issue)
		}
		operands, issue := inputs(g, n, 2)
		if issue != "" {
			return partition.Ineligiblef("%s: %s", n.Op, issue)
		}
		for _, operand := range operands {
			if operand.DType != n.DType {
				return partition.Ineligiblef("%s: mixed dtypes %s and %s", n.Op, operand.DType, n.DType)
			}
			if operand.Rank() > MaxRank {
				return partition.Ineligiblef("%s: operand rank %d above the supported maximum", n.Op, operand.Rank())
			}
		}
		return partition.Eligiblef("%s", n.Op)
	}
}

// checkPow only accepts squaring, the only power with a kernel.
func checkPow(g *ir.Graph, n *ir.Node) partition.Decision {
	d := binaryCheck(floatDTypes)(g, n)
	if d.Verdict != partition.VerdictEligible {
		return d
	}
	exponent := g.Node(n.Inputs[1])
	if exponent.Op != ir.OpTypeConstant {
		return partition.Ineligiblef("pow: exponent must be a constant")
	}
	value, found := exponent.FloatAttr("value")
	if !found || value != 2 {
		return partition.Ineligiblef("pow: only exponent 2 is supported")
	}
	return partition.Eligiblef("pow: square")
}

func newElementwiseBinary() partition.Rule {
	r := newOpRule(FamilyElementwiseBinary, binaryCheck(floatOrQuantizedDTypes),
		ir.OpTypeAdd, ir.OpTypeSub, ir.OpTypeMul)
	floatOnly := binaryCheck(floatDTypes)
	r.checks[ir.OpTypeDiv] = floatOnly
	r.checks[ir.OpTypeMaximum] = floatOnly
	r.checks[ir.OpTypeMinimum] = floatOnly
	r.checks[ir.OpTypePow] = checkPow
	return r
}

func checkUnary(g *ir.Graph, n *ir.Node) partition.Decision {
	if issue := tensorIssue(n, floatDTypes); issue != "" {
		return partition.Ineligiblef("%s: %s", n.Op, issue)
	}
	if _, issue := inputs(g, n, 1); issue != "" {
		return partition.Ineligiblef("%s: %s", n.Op, issue)
	}
	if n.Op == ir.OpTypeGelu {
		if approximate, found := n.StringAttr("approximate"); found && approximate != "none" && approximate != "tanh" {
			return partition.Ineligiblef("gelu: approximate=%q not supported", approximate)
		}
	}
	return partition.Eligiblef("%s", n.Op)
}

func newElementwiseUnary() partition.Rule {
	return newOpRule(FamilyElementwiseUnary, checkUnary,
		ir.OpTypeAbs, ir.OpTypeCeil, ir.OpTypeFloor, ir.OpTypeNeg, ir.OpTypeSqrt, ir.OpTypeRsqrt, ir.OpTypeLog,
		ir.OpTypeRelu, ir.OpTypeSigmoid, ir.OpTypeTanh, ir.OpTypeGelu, ir.OpTypeHardswish)
}

// checkBounds validates the clamping bounds of clamp-like activations. Under float16 the bounds are
// converted to half precision by the kernel, so they must fit.
func checkBounds(n *ir.Node, minKey, maxKey string, defaultMin, defaultMax float64, required bool) partition.Decision {
	minValue, hasMin := n.FloatAttr(minKey)
	maxValue, hasMax := n.FloatAttr(maxKey)
	if required && !hasMin && !hasMax {
		return partition.Ineligiblef("%s: no %s or %s bound", n.Op, minKey, maxKey)
	}
	if !hasMin {
		minValue = defaultMin
	}
	if !hasMax {
		maxValue = defaultMax
	}
	if minValue > maxValue {
		return partition.Ineligiblef("%s: %s=%g above %s=%g", n.Op, minKey, minValue, maxKey, maxValue)
	}
	if n.DType == dtypes.Float16 {
		for _, bound := range []struct {
			key   string
			value float64
			given bool
		}{{minKey, minValue, hasMin}, {maxKey, maxValue, hasMax}} {
			if bound.given && !dtypes.FitsFloat16(bound.value) {
				return partition.Ineligiblef("%s: %s=%g overflows float16", n.Op, bound.key, bound.value)
			}
		}
	}
	return partition.Eligiblef("%s", n.Op)
}

func checkActivation(g *ir.Graph, n *ir.Node) partition.Decision {
	if issue := tensorIssue(n, floatDTypes); issue != "" {
		return partition.Ineligiblef("%s: %s", n.Op, issue)
	}
	switch n.Op {
	case ir.OpTypeClamp:
		if _, issue := inputs(g, n, 1); issue != "" {
			return partition.Ineligiblef("clamp: %s", issue)
		}
		return checkBounds(n, "min", "max", -inf, inf, true)
	case ir.OpTypeHardtanh:
		if _, issue := inputs(g, n, 1); issue != "" {
			return partition.Ineligiblef("hardtanh: %s", issue)
		}
		return checkBounds(n, "min_val", "max_val", -1, 1, false)
	case ir.OpTypeLeakyRelu:
		if _, issue := inputs(g, n, 1); issue != "" {
			return partition.Ineligiblef("leaky_relu: %s", issue)
		}
		if slope, found := n.FloatAttr("negative_slope"); found && n.DType == dtypes.Float16 && !dtypes.FitsFloat16(slope) {
			return partition.Ineligiblef("leaky_relu: negative_slope=%g overflows float16", slope)
		}
		return partition.Eligiblef("leaky_relu")
	case ir.OpTypePrelu:
		operands, issue := inputs(g, n, 2)
		if issue != "" {
			return partition.Ineligiblef("prelu: %s", issue)
		}
		weight := operands[1]
		if !isStatic(g, weight) {
			return partition.Ineligiblef("prelu: weight must be static")
		}
		numWeights := 1
		for _, dim := range weight.Shape {
			numWeights *= dim
		}
		if numWeights != 1 && (n.Rank() < 2 || numWeights != n.Shape[1]) {
			return partition.Ineligiblef("prelu: %d weights, expected 1 or one per channel", numWeights)
		}
		return partition.Eligiblef("prelu")
	}
	return partition.Ineligiblef("%s: not an activation", n.Op)
}

func newActivation() partition.Rule {
	return newOpRule(FamilyActivation, checkActivation,
		ir.OpTypeClamp, ir.OpTypeHardtanh, ir.OpTypeLeakyRelu, ir.OpTypePrelu)
}

func checkElu(g *ir.Graph, n *ir.Node) partition.Decision {
	if issue := tensorIssue(n, floatDTypes); issue != "" {
		return partition.Ineligiblef("elu: %s", issue)
	}
	if _, issue := inputs(g, n, 1); issue != "" {
		return partition.Ineligiblef("elu: %s", issue)
	}
	if !n.HasAttr("alpha") {
		return partition.Ineligiblef("elu: missing alpha")
	}
	return partition.Eligiblef("elu")
}

func newElu() partition.Rule {
	return newOpRule(FamilyElu, checkElu, ir.OpTypeElu)
}
