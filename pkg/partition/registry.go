// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package partition implements the eligibility registry: an ordered set of rules, one per operator
// family, that decides which nodes of a graph can be delegated to the accelerator backend.
//
// Rule families register themselves (see Register) from init functions, usually by importing
// package github.com/gomlx/delegation/pkg/partition/rules. A Registry is built once with Build and is
// read-only afterwards, so it can be queried concurrently.
//
// Example:
//
//	import _ "github.com/gomlx/delegation/pkg/partition/rules"
//
//	registry := partition.Build()
//	delegated := registry.EligibleNodes(graph)
package partition

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/gomlx/delegation/pkg/core/ir"
	"github.com/gomlx/delegation/pkg/support/sets"
	"github.com/gomlx/exceptions"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

type registryOptions struct {
	policy          Policy
	rules           []Rule
	families        []string
	withoutFamilies sets.Set[string]
	parallelism     int
	capabilities    *Capabilities
	metrics         *Metrics
}

// Option configures Build.
type Option func(opts *registryOptions)

// WithPolicy sets how the decisions of several rules on the same node are aggregated.
// The default is PolicyVetoWins.
func WithPolicy(policy Policy) Option {
	return func(opts *registryOptions) {
		opts.policy = policy
	}
}

// WithRules uses exactly the given rules, in the given order, instead of the registered families.
func WithRules(rules ...Rule) Option {
	return func(opts *registryOptions) {
		opts.rules = append(opts.rules, rules...)
	}
}

// WithFamilies selects the registered families to use, including disabled ones. They are still
// used in registration order. Unknown family names make Build panic.
func WithFamilies(families ...string) Option {
	return func(opts *registryOptions) {
		opts.families = append(opts.families, families...)
	}
}

// WithoutFamilies excludes registered families.
func WithoutFamilies(families ...string) Option {
	return func(opts *registryOptions) {
		opts.withoutFamilies.Insert(families...)
	}
}

// WithParallelism classifies up to n nodes concurrently. If n <= 0, runtime.NumCPU() is used.
// The default is 1: sequential classification. Results don't depend on the parallelism.
func WithParallelism(n int) Option {
	return func(opts *registryOptions) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		opts.parallelism = n
	}
}

// WithCapabilities restricts delegation to the operations and dtypes supported by the backend.
// It's checked before any rule.
func WithCapabilities(capabilities Capabilities) Option {
	return func(opts *registryOptions) {
		c := capabilities.Clone()
		opts.capabilities = &c
	}
}

// WithMetrics reports the decisions to m.
func WithMetrics(m *Metrics) Option {
	return func(opts *registryOptions) {
		opts.metrics = m
	}
}

// Registry is an ordered collection of rules. It is read-only after Build and safe for concurrent use.
type Registry struct {
	rules        []Rule
	policy       Policy
	parallelism  int
	capabilities *Capabilities
	metrics      *Metrics
}

// Build creates a Registry with the registered families (or the rules given by WithRules).
// Invalid options (unknown policy or family names) panic, since they are programming errors.
func Build(options ...Option) *Registry {
	opts := &registryOptions{
		policy:          PolicyVetoWins,
		parallelism:     1,
		withoutFamilies: sets.Make[string](),
	}
	for _, option := range options {
		option(opts)
	}
	if !opts.policy.IsAPolicy() {
		exceptions.Panicf("partition.Build: invalid policy %s, expected one of %v", opts.policy, PolicyStrings())
	}

	r := &Registry{
		policy:       opts.policy,
		parallelism:  opts.parallelism,
		capabilities: opts.capabilities,
		metrics:      opts.metrics,
	}
	for ii, rule := range opts.rules {
		if fn, ok := rule.(*RuleFunc); rule == nil || (ok && fn == nil) {
			exceptions.Panicf("partition.Build: WithRules given a nil rule at position %d", ii)
		}
	}
	if len(opts.rules) > 0 {
		r.rules = slices.Clone(opts.rules)
	} else {
		r.rules = rulesFromFamilies(opts.families, opts.withoutFamilies)
	}
	if klog.V(1).Enabled() {
		names := make([]string, len(r.rules))
		for ii, rule := range r.rules {
			names[ii] = ruleName(rule)
		}
		klog.Infof("partition registry built with policy %s and %d rules: %v", r.policy, len(r.rules), names)
	}
	return r
}

func rulesFromFamilies(selected []string, without sets.Set[string]) []Rule {
	selectedSet := sets.MakeWith(selected...)
	for name := range selectedSet {
		if !slices.ContainsFunc(registeredFamilies, func(f family) bool { return f.name == name }) {
			exceptions.Panicf("partition.Build: unknown family %q, registered families: %v", name, Families())
		}
	}
	var rules []Rule
	for _, f := range registeredFamilies {
		if without.Has(f.name) {
			continue
		}
		if len(selected) > 0 && !selectedSet.Has(f.name) {
			continue
		}
		if len(selected) == 0 && !f.enabled {
			continue
		}
		rules = append(rules, f.constructor())
	}
	return rules
}

// Policy returns the aggregation policy of the registry.
func (r *Registry) Policy() Policy { return r.policy }

// Rules returns the rules of the registry, in priority order.
func (r *Registry) Rules() []Rule { return slices.Clone(r.rules) }

// Classify returns the aggregated decision on node n, according to the registry policy.
//
// For VerdictEligibleWithConstraints, whether the node is finally delegated depends on its required
// nodes: see EligibleNodes.
func (r *Registry) Classify(g *ir.Graph, n *ir.Node) Decision {
	d := r.classify(g, n)
	r.metrics.observeDecision(d)
	return d
}

func (r *Registry) classify(g *ir.Graph, n *ir.Node) Decision {
	if n == nil {
		return Ineligiblef("nil node")
	}
	if r.capabilities != nil {
		if reason := r.capabilities.check(n); reason != "" {
			d := Ineligiblef("%s", reason)
			d.Rule = capabilitiesRuleName
			return d
		}
	}

	var firstEligible, firstConstrained, firstIneligible *Decision
	for _, rule := range r.rules {
		d := r.classifyWithRule(rule, g, n)
		if r.policy == PolicyFirstDecisive && d.Verdict.IsDecisive() {
			return d
		}
		switch d.Verdict {
		case VerdictVeto:
			// PolicyVetoWins: the earliest veto decides.
			return d
		case VerdictEligible:
			if firstEligible == nil {
				firstEligible = &d
			}
		case VerdictEligibleWithConstraints:
			if firstConstrained == nil {
				firstConstrained = &d
			}
		case VerdictIneligible:
			if firstIneligible == nil {
				firstIneligible = &d
			}
		}
	}
	switch {
	case firstEligible != nil:
		return *firstEligible
	case firstConstrained != nil:
		return *firstConstrained
	case firstIneligible != nil:
		return *firstIneligible
	}
	return Ineligiblef("no rule handles operation %s", n.Op)
}

// classifyWithRule runs one rule, converting panics and malformed decisions to ineligible decisions.
func (r *Registry) classifyWithRule(rule Rule, g *ir.Graph, n *ir.Node) (d Decision) {
	var name string
	exception := exceptions.Try(func() {
		name = rule.Name()
		d = rule.Classify(g, n)
	})
	if name == "" {
		name = fmt.Sprintf("%T", rule)
	}
	if exception != nil {
		klog.Warningf("partition rule %q panicked classifying node %s, taking it as ineligible: %v", name, n, exception)
		r.metrics.observePanic(name)
		d = Ineligiblef("rule failed: %v", exception)
	} else if !d.Verdict.IsAVerdict() {
		d = Ineligiblef("rule returned invalid verdict %s", d.Verdict)
	} else if d.Verdict == VerdictEligibleWithConstraints && len(d.Requires) == 0 {
		d.Verdict = VerdictEligible
	}
	d.Rule = name
	return d.clone()
}

// ruleName returns rule.Name(), or the rule's type if Name panics or is empty.
func ruleName(rule Rule) (name string) {
	_ = exceptions.Try(func() { name = rule.Name() })
	if name == "" {
		name = fmt.Sprintf("%T", rule)
	}
	return name
}

// NodeDecision is the outcome of partitioning for one node.
type NodeDecision struct {
	Node     *ir.Node
	Decision Decision

	// Delegated is whether the node is in the eligible set: claimed, not vetoed, and with all its
	// required nodes delegated.
	Delegated bool
}

// Result of partitioning a graph.
type Result struct {
	// Nodes holds one entry per graph node, in topological order.
	Nodes []NodeDecision

	// Eligible is the set of delegated node ids.
	Eligible sets.Set[ir.NodeID]
}

// Partition classifies every node of g and resolves the constrained claims.
func (r *Registry) Partition(g *ir.Graph) *Result {
	nodes := g.Nodes()
	decisions := make([]Decision, len(nodes))
	if r.parallelism > 1 && len(nodes) > 1 {
		var eg errgroup.Group
		eg.SetLimit(r.parallelism)
		for ii, node := range nodes {
			eg.Go(func() error {
				decisions[ii] = r.classify(g, node)
				return nil
			})
		}
		_ = eg.Wait()
	} else {
		for ii, node := range nodes {
			decisions[ii] = r.classify(g, node)
		}
	}

	eligible := sets.Make[ir.NodeID](len(nodes))
	for ii, d := range decisions {
		r.metrics.observeDecision(d)
		if d.Verdict.IsClaim() {
			eligible.Insert(nodes[ii].ID)
		}
	}

	// Drop constrained claims with a required node not delegated, until nothing changes:
	// dropping one node may invalidate the claims that required it.
	var dropped int
	for changed := true; changed; {
		changed = false
		for ii, d := range decisions {
			id := nodes[ii].ID
			if d.Verdict != VerdictEligibleWithConstraints || !eligible.Has(id) {
				continue
			}
			for _, required := range d.Requires {
				if !eligible.Has(required) {
					delete(eligible, id)
					dropped++
					changed = true
					if klog.V(2).Enabled() {
						klog.Infof("graph %q: node %s dropped, it requires node #%d which is not delegated",
							g.Name(), nodes[ii], required)
					}
					break
				}
			}
		}
	}
	r.metrics.observePartition(len(eligible), dropped)

	result := &Result{Nodes: make([]NodeDecision, len(nodes)), Eligible: eligible}
	for ii, node := range nodes {
		result.Nodes[ii] = NodeDecision{Node: node, Decision: decisions[ii], Delegated: eligible.Has(node.ID)}
		if klog.V(2).Enabled() {
			klog.Infof("graph %q: node %s: %s (delegated=%v)", g.Name(), node, decisions[ii], result.Nodes[ii].Delegated)
		}
	}
	if klog.V(1).Enabled() {
		klog.Infof("graph %q: %d of %d nodes delegated (%d constrained claims dropped)",
			g.Name(), len(eligible), len(nodes), dropped)
	}
	return result
}

// EligibleNodes returns the ids of the nodes of g to delegate: nodes claimed by at least one rule and
// not vetoed (under the registry policy), whose required nodes, if any, are delegated as well.
//
// It is deterministic: calling it again on the same graph returns the same set.
func (r *Registry) EligibleNodes(g *ir.Graph) sets.Set[ir.NodeID] {
	return r.Partition(g).Eligible
}

// Summary returns a one-line description of a partition result.
func (res *Result) Summary() string {
	var vetoed, dropped int
	for _, nd := range res.Nodes {
		switch {
		case nd.Decision.Verdict == VerdictVeto:
			vetoed++
		case nd.Decision.Verdict.IsClaim() && !nd.Delegated:
			dropped++
		}
	}
	return fmt.Sprintf("%d of %d nodes delegated, %d vetoed, %d constrained claims dropped",
		len(res.Eligible), len(res.Nodes), vetoed, dropped)
}
