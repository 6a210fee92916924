// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package partition

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the partitioner decisions. Create it with NewMetrics and pass it to Build with WithMetrics.
// It is safe for concurrent use, and can be shared by several registries.
type Metrics struct {
	// Decisions counts the aggregated decision of every classified node, by deciding rule and verdict.
	Decisions *prometheus.CounterVec

	// RulePanics counts the rules that panicked, by rule.
	RulePanics *prometheus.CounterVec

	// DelegatedNodes counts the nodes selected by EligibleNodes.
	DelegatedNodes prometheus.Counter

	// DroppedConstrained counts constrained claims dropped because their required nodes were not delegated.
	DroppedConstrained prometheus.Counter
}

// NewMetrics creates the partitioner metrics and registers them with reg, if it is not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "delegation_partition_decisions_total",
				Help: "Total number of nodes classified, by deciding rule and verdict",
			},
			[]string{"rule", "verdict"},
		),
		RulePanics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "delegation_partition_rule_panics_total",
				Help: "Total number of panics recovered from eligibility rules",
			},
			[]string{"rule"},
		),
		DelegatedNodes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "delegation_partition_delegated_nodes_total",
				Help: "Total number of nodes selected for delegation",
			},
		),
		DroppedConstrained: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "delegation_partition_dropped_constrained_total",
				Help: "Total number of constrained claims dropped because a required node was not delegated",
			},
		),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.Decisions, m.RulePanics, m.DelegatedNodes, m.DroppedConstrained} {
			if err := reg.Register(c); err != nil {
				return nil, errors.Wrap(err, "failed to register partition metrics")
			}
		}
	}
	return m, nil
}

func (m *Metrics) observeDecision(d Decision) {
	if m == nil {
		return
	}
	rule := d.Rule
	if rule == "" {
		rule = "none"
	}
	m.Decisions.WithLabelValues(rule, d.Verdict.String()).Inc()
}

func (m *Metrics) observePanic(rule string) {
	if m == nil {
		return
	}
	m.RulePanics.WithLabelValues(rule).Inc()
}

func (m *Metrics) observePartition(delegated, dropped int) {
	if m == nil {
		return
	}
	m.DelegatedNodes.Add(float64(delegated))
	m.DroppedConstrained.Add(float64(dropped))
}
