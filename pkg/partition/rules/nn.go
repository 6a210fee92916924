// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rules

import (
	"slices"

	"github.com/gomlx/delegation/pkg/core/ir"
	"github.com/gomlx/delegation/pkg/partition"
)

// checkSoftmax only accepts softmax over the last axis.
func checkSoftmax(g *ir.Graph, n *ir.Node) partition.Decision {
	if issue := tensorIssue(n, floatDTypes); issue != "" {
		return partition.Ineligiblef("Softmax: %s", issue)
	}
	if _, issue := inputs(g, n, 1); issue != "" {
		return partition.Ineligiblef("Softmax: %s", issue)
	}
	dim, found := n.IntAttr("dim")
	if !found {
		dim = -1
	}
	axis, ok := normalizeAxis(dim, n.Rank())
	if !ok || axis != n.Rank()-1 {
		return partition.Ineligiblef("Softmax: only the last axis is supported, got dim=%d", dim)
	}
	return partition.Eligiblef("Softmax over the last axis")
}

func newSoftmax() partition.Rule {
	return newOpRule(FamilySoftmax, checkSoftmax, ir.OpTypeSoftmax)
}

// checkReduction accepts reductions over the spatial (last two) axes of a rank-4 tensor, keeping the
// reduced axes: the global pooling kernels.
func checkReduction(g *ir.Graph, n *ir.Node) partition.Decision {
	if issue := tensorIssue(n, floatDTypes); issue != "" {
		return partition.Ineligiblef("%s: %s", n.Op, issue)
	}
	operands, issue := inputs(g, n, 1)
	if issue != "" {
		return partition.Ineligiblef("%s: %s", n.Op, issue)
	}
	if operands[0].Rank() != 4 {
		return partition.Ineligiblef("%s: only rank-4 inputs are supported", n.Op)
	}
	if keepDim, _ := n.BoolAttr("keepdim"); !keepDim {
		return partition.Ineligiblef("%s: keepdim=false not supported", n.Op)
	}
	dims, found := n.IntsAttr("dim")
	if !found || len(dims) == 0 {
		return partition.Ineligiblef("%s: missing dim", n.Op)
	}
	axes := make([]int, len(dims))
	for ii, dim := range dims {
		axis, ok := normalizeAxis(dim, 4)
		if !ok || axis < 2 {
			return partition.Ineligiblef("%s: only the spatial axes can be reduced, got dim=%v", n.Op, dims)
		}
		axes[ii] = axis
	}
	slices.Sort(axes)
	axes = slices.Compact(axes)
	if n.Op == ir.OpTypeMeanDim && len(axes) != 2 {
		return partition.Ineligiblef("MeanDim: both spatial axes must be reduced, got dim=%v", dims)
	}
	if n.Op == ir.OpTypeMaxDim && len(axes) != 1 {
		return partition.Ineligiblef("MaxDim: reduces a single axis, got dim=%v", dims)
	}
	return partition.Eligiblef("%s over spatial axes", n.Op)
}

func newReduction() partition.Rule {
	return newOpRule(FamilyReduction, checkReduction, ir.OpTypeMeanDim, ir.OpTypeMaxDim)
}

func allOnes(values []int) bool {
	for _, v := range values {
		if v != 1 {
			return false
		}
	}
	return true
}

// checkPooling accepts 2D pooling of rank-4 tensors without ceil mode.
func checkPooling(g *ir.Graph, n *ir.Node) partition.Decision {
	if issue := tensorIssue(n, floatOrQuantizedDTypes); issue != "" {
		return partition.Ineligiblef("%s: %s", n.Op, issue)
	}
	if _, issue := inputs(g, n, 1); issue != "" {
		return partition.Ineligiblef("%s: %s", n.Op, issue)
	}
	if n.Rank() != 4 {
		return partition.Ineligiblef("%s: only rank-4 tensors are supported", n.Op)
	}
	if ceilMode, _ := n.BoolAttr("ceil_mode"); ceilMode {
		return partition.Ineligiblef("%s: ceil_mode not supported", n.Op)
	}
	switch n.Op {
	case ir.OpTypeAvgPool2d:
		if n.HasAttr("divisor_override") {
			return partition.Ineligiblef("AvgPool2d: divisor_override not supported")
		}
	case ir.OpTypeMaxPool2d:
		if dilation, found := n.IntsAttr("dilation"); found && !allOnes(dilation) {
			return partition.Ineligiblef("MaxPool2d: dilation %v not supported", dilation)
		}
	}
	return partition.Eligiblef("%s", n.Op)
}

func newPooling() partition.Rule {
	return newOpRule(FamilyPooling, checkPooling, ir.OpTypeAvgPool2d, ir.OpTypeMaxPool2d)
}

// checkConvolution accepts 1D and 2D convolutions with static weights (and bias, if given).
func checkConvolution(g *ir.Graph, n *ir.Node) partition.Decision {
	if issue := tensorIssue(n, floatOrQuantizedDTypes); issue != "" {
		return partition.Ineligiblef("Convolution: %s", issue)
	}
	operands, issue := inputs(g, n, -1)
	if issue != "" {
		return partition.Ineligiblef("Convolution: %s", issue)
	}
	if len(operands) < 2 || len(operands) > 3 {
		return partition.Ineligiblef("Convolution: expected input, weight and optional bias operands")
	}
	if n.Rank() != 3 && n.Rank() != 4 {
		return partition.Ineligiblef("Convolution: only 1D and 2D convolutions are supported")
	}
	for _, param := range operands[1:] {
		if !isStatic(g, param) {
			return partition.Ineligiblef("Convolution: weight and bias must be static, operand %s is computed", param)
		}
	}
	if transposed, _ := n.BoolAttr("transposed"); transposed {
		if groups, found := n.IntAttr("groups"); found && groups > 1 {
			return partition.Ineligiblef("Convolution: grouped transposed convolution not supported")
		}
	}
	return partition.Eligiblef("Convolution")
}

func newConvolution() partition.Rule {
	return newOpRule(FamilyConvolution, checkConvolution, ir.OpTypeConvolution)
}

func checkGemm(g *ir.Graph, n *ir.Node) partition.Decision {
	if issue := tensorIssue(n, floatOrQuantizedDTypes); issue != "" {
		return partition.Ineligiblef("%s: %s", n.Op, issue)
	}
	operands, issue := inputs(g, n, -1)
	if issue != "" {
		return partition.Ineligiblef("%s: %s", n.Op, issue)
	}
	switch n.Op {
	case ir.OpTypeLinear:
		// input, weight, optional bias.
		if len(operands) < 2 || len(operands) > 3 {
			return partition.Ineligiblef("Linear: expected input, weight and optional bias operands")
		}
		for _, param := range operands[1:] {
			if !isStatic(g, param) {
				return partition.Ineligiblef("Linear: weight and bias must be static")
			}
		}
		return partition.Eligiblef("Linear")

	case ir.OpTypeAddmm:
		// bias, input, weight.
		if len(operands) != 3 {
			return partition.Ineligiblef("Addmm: expected bias, input and weight operands")
		}
		if !isStatic(g, operands[0]) || !isStatic(g, operands[2]) {
			return partition.Ineligiblef("Addmm: bias and weight must be static")
		}
		return partition.Eligiblef("Addmm as a fully connected layer")

	case ir.OpTypeBmm:
		if len(operands) != 2 || operands[0].Rank() != 3 || operands[1].Rank() != 3 {
			return partition.Ineligiblef("Bmm: expected two rank-3 operands")
		}
		return partition.Eligiblef("Bmm")

	case ir.OpTypeMm:
		// Mm is only lowered as the matmul half of a fully connected layer: it must be followed by the
		// add of a static bias, which is delegated together with it.
		if len(operands) != 2 {
			return partition.Ineligiblef("Mm: expected two operands")
		}
		if !isStatic(g, operands[1]) {
			return partition.Ineligiblef("Mm: weight must be static")
		}
		users := g.Users(n.ID)
		if len(users) != 1 || users[0].Op != ir.OpTypeAdd {
			return partition.Ineligiblef("Mm: not followed by a bias add")
		}
		add := users[0]
		for _, id := range add.Inputs {
			if id == n.ID {
				continue
			}
			if bias := g.Node(id); bias == nil || !isStatic(g, bias) {
				return partition.Ineligiblef("Mm: followed by an add of a computed tensor")
			}
		}
		return partition.Constrainedf([]ir.NodeID{add.ID}, "Mm fused with bias add #%d", add.ID)
	}
	return partition.Ineligiblef("%s: not a matrix multiplication", n.Op)
}

func newGemm() partition.Rule {
	return newOpRule(FamilyGemm, checkGemm, ir.OpTypeLinear, ir.OpTypeAddmm, ir.OpTypeMm, ir.OpTypeBmm)
}

// checkBatchNorm only accepts batch normalization folded into the preceding convolution.
func checkBatchNorm(g *ir.Graph, n *ir.Node) partition.Decision {
	if issue := tensorIssue(n, floatDTypes); issue != "" {
		return partition.Ineligiblef("BatchNorm: %s", issue)
	}
	operands, issue := inputs(g, n, -1)
	if issue != "" || len(operands) == 0 {
		return partition.Ineligiblef("BatchNorm: missing input")
	}
	if training, _ := n.BoolAttr("training"); training {
		return partition.Ineligiblef("BatchNorm: training mode not supported")
	}
	for _, param := range operands[1:] {
		if !isStatic(g, param) {
			return partition.Ineligiblef("BatchNorm: statistics and affine parameters must be static")
		}
	}
	conv := operands[0]
	if conv.Op != ir.OpTypeConvolution || len(g.Users(conv.ID)) != 1 {
		return partition.Ineligiblef("BatchNorm: can only be folded into a convolution it is the only user of")
	}
	return partition.Constrainedf([]ir.NodeID{conv.ID}, "BatchNorm folded into convolution #%d", conv.ID)
}

func newBatchNorm() partition.Rule {
	return newOpRule(FamilyBatchNorm, checkBatchNorm, ir.OpTypeBatchNorm)
}
