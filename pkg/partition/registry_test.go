// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package partition

import (
	"fmt"
	"testing"

	"github.com/gomlx/delegation/pkg/core/dtypes"
	"github.com/gomlx/delegation/pkg/core/ir"
	"github.com/gomlx/delegation/pkg/support/sets"
	"github.com/janpfeifer/must"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// claimAll claims every non-boundary node.
var claimAll = NewRuleFunc("claim_all", func(_ *ir.Graph, n *ir.Node) Decision {
	if n.Op.IsGraphBoundary() {
		return NotApplicable()
	}
	return Eligiblef("all welcome")
})

// vetoOp returns a rule vetoing the given op.
func vetoOp(name string, op ir.OpType) Rule {
	return NewRuleFunc(name, func(_ *ir.Graph, n *ir.Node) Decision {
		if n.Op != op {
			return NotApplicable()
		}
		return Vetof("%s not wanted", op)
	})
}

// testGraph builds: x, y -> add -> mul(add, y) -> relu.
func testGraph(t *testing.T) (g *ir.Graph, add, mul, relu *ir.Node) {
	b := ir.NewBuilder("test")
	x := b.Parameter(dtypes.Float32, 2, 3)
	y := b.Parameter(dtypes.Float32, 2, 3)
	add = b.Op(ir.OpTypeAdd, dtypes.Float32, []int{2, 3}, x.ID, y.ID)
	mul = b.Op(ir.OpTypeMul, dtypes.Float32, []int{2, 3}, add.ID, y.ID)
	relu = b.Op(ir.OpTypeRelu, dtypes.Float32, []int{2, 3}, mul.ID)
	g, err := b.Done()
	require.NoError(t, err)
	return
}

func TestEligibleNodes(t *testing.T) {
	g, add, mul, relu := testGraph(t)
	r := Build(WithRules(claimAll))
	assert.Equal(t, PolicyVetoWins, r.Policy())
	got := r.EligibleNodes(g)
	assert.True(t, got.Equal(sets.MakeWith(add.ID, mul.ID, relu.ID)), "got %v", sets.Sorted(got))

	// Idempotent.
	assert.True(t, got.Equal(r.EligibleNodes(g)))

	// Graph boundaries are never claimed.
	d := r.Classify(g, g.Nodes()[0])
	assert.Equal(t, VerdictIneligible, d.Verdict)
	assert.Empty(t, d.Rule)
	assert.Contains(t, d.Reason, "no rule handles")
}

func TestVetoWins(t *testing.T) {
	g, add, mul, relu := testGraph(t)
	for _, rules := range [][]Rule{
		{claimAll, vetoOp("no_mul", ir.OpTypeMul)},
		{vetoOp("no_mul", ir.OpTypeMul), claimAll},
	} {
		r := Build(WithRules(rules...))
		got := r.EligibleNodes(g)
		assert.True(t, got.Equal(sets.MakeWith(add.ID, relu.ID)), "got %v", sets.Sorted(got))
		d := r.Classify(g, mul)
		assert.Equal(t, VerdictVeto, d.Verdict)
		assert.Equal(t, "no_mul", d.Rule)
	}

	// The earliest vetoing rule is reported.
	r := Build(WithRules(claimAll, vetoOp("first", ir.OpTypeMul), vetoOp("second", ir.OpTypeMul)))
	assert.Equal(t, "first", r.Classify(g, mul).Rule)
}

func TestPolicyFirstDecisive(t *testing.T) {
	g, add, mul, relu := testGraph(t)

	// Claim registered first: the later veto is ignored.
	r := Build(WithPolicy(PolicyFirstDecisive), WithRules(claimAll, vetoOp("no_mul", ir.OpTypeMul)))
	assert.True(t, r.EligibleNodes(g).Equal(sets.MakeWith(add.ID, mul.ID, relu.ID)))
	assert.Equal(t, "claim_all", r.Classify(g, mul).Rule)

	// Veto registered first: it decides.
	r = Build(WithPolicy(PolicyFirstDecisive), WithRules(vetoOp("no_mul", ir.OpTypeMul), claimAll))
	assert.True(t, r.EligibleNodes(g).Equal(sets.MakeWith(add.ID, relu.ID)))

	require.Panics(t, func() { Build(WithPolicy(Policy(7))) })
}

func TestIneligibleReasonReported(t *testing.T) {
	g, _, mul, _ := testGraph(t)
	picky := NewRuleFunc("picky", func(_ *ir.Graph, n *ir.Node) Decision {
		if n.Op != ir.OpTypeMul {
			return NotApplicable()
		}
		return Ineligiblef("mul of %s not supported", n.DType)
	})
	r := Build(WithRules(picky))
	d := r.Classify(g, mul)
	assert.Equal(t, VerdictIneligible, d.Verdict)
	assert.Equal(t, "picky", d.Rule)
	assert.Equal(t, "mul of Float32 not supported", d.Reason)

	// An ineligible verdict doesn't block another rule's claim.
	r = Build(WithRules(picky, claimAll))
	assert.Equal(t, VerdictEligible, r.Classify(g, mul).Verdict)
}

func TestConstrained(t *testing.T) {
	g, add, mul, relu := testGraph(t)

	// Relu claimed only if mul is delegated.
	reluNeedsMul := NewRuleFunc("relu_needs_mul", func(g *ir.Graph, n *ir.Node) Decision {
		if n.Op != ir.OpTypeRelu {
			return NotApplicable()
		}
		return Constrainedf(n.Inputs, "fused with #%d", n.Inputs[0])
	})
	binaryOnly := NewRuleFunc("binary", func(_ *ir.Graph, n *ir.Node) Decision {
		if n.Op == ir.OpTypeAdd || n.Op == ir.OpTypeMul {
			return Eligiblef("binary")
		}
		return NotApplicable()
	})

	r := Build(WithRules(binaryOnly, reluNeedsMul))
	assert.True(t, r.EligibleNodes(g).Equal(sets.MakeWith(add.ID, mul.ID, relu.ID)))
	d := r.Classify(g, relu)
	assert.Equal(t, VerdictEligibleWithConstraints, d.Verdict)
	assert.Equal(t, []ir.NodeID{mul.ID}, d.Requires)

	// Veto mul: relu loses its requirement and is dropped.
	r = Build(WithRules(binaryOnly, reluNeedsMul, vetoOp("no_mul", ir.OpTypeMul)))
	res := r.Partition(g)
	assert.True(t, res.Eligible.Equal(sets.MakeWith(add.ID)))
	assert.False(t, res.Nodes[4].Delegated)
	assert.Equal(t, VerdictEligibleWithConstraints, res.Nodes[4].Decision.Verdict)
	assert.Equal(t, "1 of 5 nodes delegated, 1 vetoed, 1 constrained claims dropped", res.Summary())

	// An unconditional claim takes precedence over a constrained one.
	r = Build(WithRules(reluNeedsMul, claimAll, vetoOp("no_mul", ir.OpTypeMul)))
	assert.True(t, r.EligibleNodes(g).Equal(sets.MakeWith(add.ID, relu.ID)))
}

func TestConstrainedChain(t *testing.T) {
	// A chain of constrained nodes, each requiring its user: vetoing the last one drops them all.
	b := ir.NewBuilder("chain")
	prev := b.Parameter(dtypes.Float32, 4)
	for range 10 {
		prev = b.Op(ir.OpTypeNeg, dtypes.Float32, []int{4}, prev.ID)
	}
	b.Op(ir.OpTypeAbs, dtypes.Float32, []int{4}, prev.ID)
	g := must.M1(b.Done())

	needsUser := NewRuleFunc("needs_user", func(g *ir.Graph, n *ir.Node) Decision {
		if n.Op != ir.OpTypeNeg {
			return NotApplicable()
		}
		return Constrainedf([]ir.NodeID{g.Users(n.ID)[0].ID}, "needs user")
	})
	claimAbs := NewRuleFunc("abs", func(_ *ir.Graph, n *ir.Node) Decision {
		if n.Op != ir.OpTypeAbs {
			return NotApplicable()
		}
		return Eligiblef("abs")
	})
	r := Build(WithRules(needsUser, claimAbs))
	assert.Len(t, r.EligibleNodes(g), 11)

	r = Build(WithRules(needsUser, claimAbs, vetoOp("no_abs", ir.OpTypeAbs)))
	res := r.Partition(g)
	assert.Empty(t, res.Eligible)
	assert.Equal(t, "0 of 12 nodes delegated, 1 vetoed, 10 constrained claims dropped", res.Summary())
}

func TestRulePanicRecovered(t *testing.T) {
	g, add, mul, relu := testGraph(t)
	panicky := NewRuleFunc("panicky", func(_ *ir.Graph, n *ir.Node) Decision {
		if n.Op == ir.OpTypeAdd {
			panic("boom")
		}
		return NotApplicable()
	})
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	r := Build(WithRules(panicky), WithMetrics(metrics))
	var got sets.Set[ir.NodeID]
	require.NotPanics(t, func() { got = r.EligibleNodes(g) })
	assert.Empty(t, got)
	d := r.Classify(g, add)
	assert.Equal(t, VerdictIneligible, d.Verdict)
	assert.Equal(t, "panicky", d.Rule)
	assert.Contains(t, d.Reason, "boom")
	assert.Equal(t, 2.0, counterValue(t, reg, "delegation_partition_rule_panics_total", map[string]string{"rule": "panicky"}))

	// Another rule can still claim the node.
	r = Build(WithRules(panicky, claimAll))
	assert.True(t, r.EligibleNodes(g).Equal(sets.MakeWith(add.ID, mul.ID, relu.ID)))
}

// unnamedRule panics in Name and claims everything.
type unnamedRule struct{}

func (unnamedRule) Name() string { panic("no name") }

func (unnamedRule) Classify(*ir.Graph, *ir.Node) Decision { return Eligiblef("claimed") }

func TestRuleNamePanicRecovered(t *testing.T) {
	g, add, _, _ := testGraph(t)
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	var r *Registry
	require.NotPanics(t, func() { r = Build(WithRules(unnamedRule{}), WithMetrics(metrics)) })
	var d Decision
	require.NotPanics(t, func() { d = r.Classify(g, add) })
	assert.Equal(t, VerdictIneligible, d.Verdict)
	assert.Equal(t, "partition.unnamedRule", d.Rule)
	assert.Contains(t, d.Reason, "no name")
	assert.Equal(t, 1.0, counterValue(t, reg, "delegation_partition_rule_panics_total",
		map[string]string{"rule": "partition.unnamedRule"}))
	assert.Empty(t, r.EligibleNodes(g))
}

func TestNilRule(t *testing.T) {
	require.Panics(t, func() { Build(WithRules(claimAll, nil)) })
	require.Panics(t, func() { Build(WithRules((*RuleFunc)(nil))) })
}

func TestUnknownOpNotDelegated(t *testing.T) {
	g, err := ir.ParseYAML([]byte(`
nodes:
  - {id: 0, op: Parameter, dtype: Float32, shape: [8]}
  - {id: 1, op: Erf, dtype: Float32, shape: [8], inputs: [0]}
  - {id: 2, op: Relu, dtype: Float32, shape: [8], inputs: [1]}
`))
	require.NoError(t, err)
	r := Build(WithRules(NewRuleFunc("relu_only", func(_ *ir.Graph, n *ir.Node) Decision {
		if n.Op != ir.OpTypeRelu {
			return NotApplicable()
		}
		return Eligiblef("relu")
	})))
	result := r.Partition(g)
	require.Len(t, result.Nodes, 3)
	assert.False(t, result.Nodes[1].Delegated)
	assert.Equal(t, VerdictIneligible, result.Nodes[1].Decision.Verdict)
	assert.Contains(t, result.Nodes[1].Decision.Reason, "Unknown")
	assert.True(t, result.Nodes[2].Delegated)
}

func TestInvalidVerdict(t *testing.T) {
	g, add, _, _ := testGraph(t)
	broken := NewRuleFunc("broken", func(*ir.Graph, *ir.Node) Decision { return Decision{Verdict: Verdict(42)} })
	d := Build(WithRules(broken)).Classify(g, add)
	assert.Equal(t, VerdictIneligible, d.Verdict)
	assert.Equal(t, "broken", d.Rule)
}

func TestCapabilities(t *testing.T) {
	g, add, mul, _ := testGraph(t)
	caps := Capabilities{
		Operations: map[ir.OpType]bool{ir.OpTypeAdd: true, ir.OpTypeMul: true},
		DTypes:     map[dtypes.DType]bool{dtypes.Float32: true},
	}
	r := Build(WithRules(claimAll), WithCapabilities(caps))
	assert.True(t, r.EligibleNodes(g).Equal(sets.MakeWith(add.ID, mul.ID)))
	d := r.Classify(g, g.Nodes()[4])
	assert.Equal(t, "capabilities", d.Rule)
	assert.Contains(t, d.Reason, "Relu")

	// The registry keeps its own copy.
	caps.Operations[ir.OpTypeRelu] = true
	assert.Len(t, r.EligibleNodes(g), 2)
}

func TestParallelMatchesSequential(t *testing.T) {
	b := ir.NewBuilder("wide")
	x := b.Parameter(dtypes.Float32, 8)
	for ii := range 500 {
		op := []ir.OpType{ir.OpTypeAdd, ir.OpTypeMul, ir.OpTypeSub}[ii%3]
		b.Op(op, dtypes.Float32, []int{8}, x.ID, x.ID)
	}
	g := must.M1(b.Done())
	rules := []Rule{claimAll, vetoOp("no_sub", ir.OpTypeSub)}

	sequential := Build(WithRules(rules...)).Partition(g)
	for _, parallelism := range []int{0, 2, 16} {
		t.Run(fmt.Sprintf("parallelism=%d", parallelism), func(t *testing.T) {
			parallel := Build(WithRules(rules...), WithParallelism(parallelism)).Partition(g)
			assert.True(t, sequential.Eligible.Equal(parallel.Eligible))
			assert.Equal(t, sequential.Nodes, parallel.Nodes)
		})
	}
	assert.Len(t, sequential.Eligible, 334)
}

func TestMetrics(t *testing.T) {
	g, _, _, _ := testGraph(t)
	reg := prometheus.NewRegistry()
	metrics := must.M1(NewMetrics(reg))
	r := Build(WithRules(claimAll, vetoOp("no_mul", ir.OpTypeMul)), WithMetrics(metrics))
	r.EligibleNodes(g)

	assert.Equal(t, 2.0, counterValue(t, reg, "delegation_partition_decisions_total",
		map[string]string{"rule": "claim_all", "verdict": "eligible"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "delegation_partition_decisions_total",
		map[string]string{"rule": "no_mul", "verdict": "veto"}))
	assert.Equal(t, 2.0, counterValue(t, reg, "delegation_partition_decisions_total",
		map[string]string{"rule": "none", "verdict": "ineligible"}))
	assert.Equal(t, 2.0, counterValue(t, reg, "delegation_partition_delegated_nodes_total", nil))

	// Registering twice on the same registry fails.
	_, err := NewMetrics(reg)
	require.Error(t, err)
	// A nil registerer is fine.
	require.NotNil(t, must.M1(NewMetrics(nil)))
}

func TestFamilies(t *testing.T) {
	saved := registeredFamilies
	t.Cleanup(func() { registeredFamilies = saved })
	registeredFamilies = nil

	Register("all", func() Rule { return claimAll })
	Register("no_mul", func() Rule { return vetoOp("no_mul", ir.OpTypeMul) })
	RegisterDisabled("no_add", func() Rule { return vetoOp("no_add", ir.OpTypeAdd) })
	require.Panics(t, func() { Register("all", func() Rule { return claimAll }) })
	assert.Equal(t, []FamilyInfo{{"all", true}, {"no_mul", true}, {"no_add", false}}, Families())

	names := func(r *Registry) (names []string) {
		for _, rule := range r.Rules() {
			names = append(names, rule.Name())
		}
		return
	}
	assert.Equal(t, []string{"claim_all", "no_mul"}, names(Build()))
	assert.Equal(t, []string{"claim_all", "no_add"}, names(Build(WithFamilies("no_add", "all"))))
	assert.Equal(t, []string{"claim_all"}, names(Build(WithoutFamilies("no_mul"))))
	require.Panics(t, func() { Build(WithFamilies("unknown")) })

	g, add, _, relu := testGraph(t)
	assert.True(t, Build().EligibleNodes(g).Equal(sets.MakeWith(add.ID, relu.ID)))
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metricLoop:
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if labels[pair.GetName()] != pair.GetValue() {
					continue metricLoop
				}
			}
			return metric.GetCounter().GetValue()
		}
	}
	return 0
}

func TestDecisionString(t *testing.T) {
	d := Constrainedf([]ir.NodeID{3, 5}, "fused")
	d.Rule = "gemm"
	assert.Equal(t, "eligible_with_constraints by gemm: fused (requires [3 5])", d.String())
	assert.Equal(t, "not_applicable", NotApplicable().String())
	assert.True(t, VerdictVeto.IsDecisive())
	assert.False(t, VerdictIneligible.IsDecisive())
	assert.False(t, VerdictVeto.IsClaim())
}
