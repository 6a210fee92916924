// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package rules registers the operator families the accelerator delegate supports with the
// partition registry. Import it for its side effects:
//
//	import _ "github.com/gomlx/delegation/pkg/partition/rules"
//
// Each family is one partition.Rule handling a group of related operators; the checks mirror what the
// delegate kernels accept (dtypes, ranks, static attributes and fusion patterns).
package rules

import (
	"github.com/gomlx/delegation/pkg/core/dtypes"
	"github.com/gomlx/delegation/pkg/core/ir"
	"github.com/gomlx/delegation/pkg/partition"
	"github.com/gomlx/delegation/pkg/support/sets"
)

// Family names, in registration order.
const (
	FamilyElementwiseBinary = "elementwise_binary"
	FamilyElementwiseUnary  = "elementwise_unary"
	FamilyActivation        = "activation"
	FamilyElu               = "elu"
	FamilySoftmax           = "softmax"
	FamilyReduction         = "reduction"
	FamilyPooling           = "pooling"
	FamilyConvolution       = "convolution"
	FamilyGemm              = "gemm"
	FamilyShape             = "shape"
	FamilyBatchNorm         = "batch_norm"
	FamilyQuantizePerTensor = "quantize_per_tensor"
	FamilyQuantizeAffine    = "quantize_affine"
)

func init() {
	partition.Register(FamilyElementwiseBinary, newElementwiseBinary)
	partition.Register(FamilyElementwiseUnary, newElementwiseUnary)
	partition.Register(FamilyActivation, newActivation)
	// Kernel available, but the exported elu doesn't carry its alpha/scale attributes yet.
	partition.RegisterDisabled(FamilyElu, newElu)
	partition.Register(FamilySoftmax, newSoftmax)
	partition.Register(FamilyReduction, newReduction)
	partition.Register(FamilyPooling, newPooling)
	partition.Register(FamilyConvolution, newConvolution)
	partition.Register(FamilyGemm, newGemm)
	partition.Register(FamilyShape, newShape)
	partition.Register(FamilyBatchNorm, newBatchNorm)
	partition.Register(FamilyQuantizePerTensor, newQuantizePerTensor)
	partition.Register(FamilyQuantizeAffine, newQuantizeAffine)
}

// MaxRank is the largest tensor rank the delegate kernels accept.
const MaxRank = 6

var (
	// floatDTypes are the dtypes of float kernels.
	floatDTypes = sets.MakeWith(dtypes.Float32, dtypes.Float16)

	// quantizedDTypes are the storage dtypes of quantized kernels.
	quantizedDTypes = sets.MakeWith(dtypes.Int8, dtypes.Uint8)
)

// check classifies a node whose operator is known to be handled by the rule.
type check func(g *ir.Graph, n *ir.Node) partition.Decision

// opRule is a family rule: a table from the operators it handles to their checks.
type opRule struct {
	name   string
	checks map[ir.OpType]check
}

// Name implements partition.Rule.
func (r *opRule) Name() string { return r.name }

// Classify implements partition.Rule.
func (r *opRule) Classify(g *ir.Graph, n *ir.Node) partition.Decision {
	c, found := r.checks[n.Op]
	if !found {
		return partition.NotApplicable()
	}
	return c(g, n)
}

// newOpRule creates a rule applying the same check to all ops.
func newOpRule(name string, c check, ops ...ir.OpType) *opRule {
	r := &opRule{name: name, checks: make(map[ir.OpType]check, len(ops))}
	for _, op := range ops {
		r.checks[op] = c
	}
	return r
}

// tensorIssue returns the reason n's output can't be handled by a kernel supporting the given dtypes,
// or "" if it can.
func tensorIssue(n *ir.Node, allowed sets.Set[dtypes.DType]) string {
	if !allowed.Has(n.DType) {
		return "dtype " + n.DType.String() + " not supported"
	}
	if n.IsDynamic() {
		return "dynamic shapes not supported"
	}
	if n.Rank() > MaxRank {
		return "rank above the supported maximum"
	}
	return ""
}

// inputs returns the producers of n, or a reason if it doesn't have exactly count valid operands.
func inputs(g *ir.Graph, n *ir.Node, count int) ([]*ir.Node, string) {
	if count >= 0 && len(n.Inputs) != count {
		return nil, "unexpected number of operands"
	}
	producers := g.Producers(n)
	for _, p := range producers {
		if p == nil {
			return nil, "operand not in graph"
		}
	}
	return producers, ""
}

// isStatic returns whether the tensor produced by p is known at compile time: a constant, a
// parameter (weights lifted as inputs), or the dequantization of one of those.
func isStatic(g *ir.Graph, p *ir.Node) bool {
	switch p.Op {
	case ir.OpTypeConstant, ir.OpTypeParameter:
		return true
	case ir.OpTypeDequantizePerTensor, ir.OpTypeDequantizeAffine:
		if len(p.Inputs) == 0 {
			return false
		}
		src := g.Node(p.Inputs[0])
		return src != nil && (src.Op == ir.OpTypeConstant || src.Op == ir.OpTypeParameter)
	}
	return false
}

// normalizeAxis converts a possibly negative axis to its positive equivalent, returning false if out of range.
func normalizeAxis(axis, rank int) (int, bool) {
	if axis < 0 {
		axis += rank
	}
	return axis, axis >= 0 && axis < rank
}
