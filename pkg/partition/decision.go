// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package partition

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/delegation/pkg/core/ir"
)

// Verdict is the outcome of classifying one node.
type Verdict int

//go:generate go tool enumer -type=Verdict -trimprefix=Verdict -transform=snake -text -yaml -output=gen_verdict_enumer.go decision.go

const (
	// VerdictNotApplicable means the rule doesn't handle the node's operator.
	VerdictNotApplicable Verdict = iota

	// VerdictIneligible means the rule handles the operator, but not this node (e.g. unsupported dtype).
	VerdictIneligible

	// VerdictEligible claims the node for delegation.
	VerdictEligible

	// VerdictEligibleWithConstraints claims the node only if the nodes listed in Decision.Requires are
	// delegated as well (e.g. a matmul that is only supported fused with the following add).
	VerdictEligibleWithConstraints

	// VerdictVeto excludes the node, even if another rule claims it.
	VerdictVeto
)

// IsClaim returns whether the verdict claims the node, with or without constraints.
func (v Verdict) IsClaim() bool {
	return v == VerdictEligible || v == VerdictEligibleWithConstraints
}

// IsDecisive returns whether the verdict settles the node under PolicyFirstDecisive.
func (v Verdict) IsDecisive() bool {
	return v.IsClaim() || v == VerdictVeto
}

// Decision is a rule's classification of a node, or the aggregated classification of the Registry.
type Decision struct {
	Verdict Verdict

	// Rule is the name of the rule that decided. It's filled by the Registry, and empty if no rule handles the node.
	Rule string

	// Reason is a human-readable explanation, used for reports and logs.
	Reason string

	// Requires lists the nodes that must be delegated too, for VerdictEligibleWithConstraints.
	Requires []ir.NodeID
}

// String implements fmt.Stringer.
func (d Decision) String() string {
	var sb strings.Builder
	sb.WriteString(d.Verdict.String())
	if d.Rule != "" {
		fmt.Fprintf(&sb, " by %s", d.Rule)
	}
	if d.Reason != "" {
		fmt.Fprintf(&sb, ": %s", d.Reason)
	}
	if len(d.Requires) > 0 {
		fmt.Fprintf(&sb, " (requires %v)", d.Requires)
	}
	return sb.String()
}

func (d Decision) clone() Decision {
	d.Requires = slices.Clone(d.Requires)
	return d
}

// NotApplicable is returned by rules that don't handle the node's operator.
func NotApplicable() Decision {
	return Decision{Verdict: VerdictNotApplicable}
}

// Ineligiblef returns a VerdictIneligible decision with the formatted reason.
func Ineligiblef(format string, args ...any) Decision {
	return Decision{Verdict: VerdictIneligible, Reason: fmt.Sprintf(format, args...)}
}

// Eligiblef returns a VerdictEligible decision with the formatted reason.
func Eligiblef(format string, args ...any) Decision {
	return Decision{Verdict: VerdictEligible, Reason: fmt.Sprintf(format, args...)}
}

// Constrainedf returns a VerdictEligibleWithConstraints decision requiring the given nodes.
func Constrainedf(requires []ir.NodeID, format string, args ...any) Decision {
	return Decision{
		Verdict:  VerdictEligibleWithConstraints,
		Reason:   fmt.Sprintf(format, args...),
		Requires: slices.Clone(requires),
	}
}

// Vetof returns a VerdictVeto decision with the formatted reason.
func Vetof(format string, args ...any) Decision {
	return Decision{Verdict: VerdictVeto, Reason: fmt.Sprintf(format, args...)}
}
