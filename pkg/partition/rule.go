// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package partition

import (
	"slices"

	"github.com/gomlx/delegation/pkg/core/ir"
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Rule classifies graph nodes of one operator family.
//
// Rules must be stateless (or at least safe for concurrent use): one Registry is queried concurrently
// by several compilation jobs. They must not modify the graph.
//
// A rule that can't make sense of a node (missing attributes, unexpected shapes) should return an
// ineligible decision. A panic is recovered by the Registry and also taken as ineligible.
type Rule interface {
	// Name identifies the rule in decisions, logs and metrics.
	Name() string

	// Classify returns the rule's decision on node n of graph g.
	Classify(g *ir.Graph, n *ir.Node) Decision
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc struct {
	name     string
	classify func(g *ir.Graph, n *ir.Node) Decision
}

// NewRuleFunc returns a Rule with the given name that uses classify.
func NewRuleFunc(name string, classify func(g *ir.Graph, n *ir.Node) Decision) *RuleFunc {
	return &RuleFunc{name: name, classify: classify}
}

// Name implements Rule.
func (r *RuleFunc) Name() string { return r.name }

// Classify implements Rule.
func (r *RuleFunc) Classify(g *ir.Graph, n *ir.Node) Decision { return r.classify(g, n) }

// Constructor creates the Rule of a family.
type Constructor func() Rule

type family struct {
	name        string
	constructor Constructor
	enabled     bool
}

// registeredFamilies in registration order. Registration happens in init functions, before any Build.
var registeredFamilies []family

func register(name string, constructor Constructor, enabled bool) {
	if constructor == nil {
		exceptions.Panicf("partition.Register(%q): nil constructor", name)
	}
	if slices.ContainsFunc(registeredFamilies, func(f family) bool { return f.name == name }) {
		exceptions.Panicf("partition.Register(%q): family already registered", name)
	}
	registeredFamilies = append(registeredFamilies, family{name: name, constructor: constructor, enabled: enabled})
	if klog.V(3).Enabled() {
		klog.Infof("registered operator family %q (enabled=%v)", name, enabled)
	}
}

// Register an operator family with the constructor of its rule. Families are used by Build in
// registration order, which is the order that breaks ties between rules.
//
// It's meant to be called from init functions: see package github.com/gomlx/delegation/pkg/partition/rules.
// Registering the same family twice panics.
func Register(family string, constructor Constructor) {
	register(family, constructor, true)
}

// RegisterDisabled registers a family that Build only uses when selected explicitly with WithFamilies.
func RegisterDisabled(family string, constructor Constructor) {
	register(family, constructor, false)
}

// FamilyInfo describes a registered family.
type FamilyInfo struct {
	Name    string
	Enabled bool
}

// Families returns the registered families, in registration order.
func Families() []FamilyInfo {
	infos := make([]FamilyInfo, len(registeredFamilies))
	for ii, f := range registeredFamilies {
		infos[ii] = FamilyInfo{Name: f.name, Enabled: f.enabled}
	}
	return infos
}
