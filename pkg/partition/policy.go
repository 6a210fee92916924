// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package partition

// Policy defines how the decisions of several rules on the same node are aggregated.
type Policy int

//go:generate go tool enumer -type=Policy -trimprefix=Policy -transform=snake -text -yaml -output=gen_policy_enumer.go policy.go

const (
	// PolicyVetoWins includes a node if at least one rule claims it and no rule vetoes it.
	// The earliest registered vetoing rule is the one reported.
	//
	// An unconditional claim takes precedence over constrained ones; among claims of the same kind the
	// earliest registered rule decides.
	PolicyVetoWins Policy = iota

	// PolicyFirstDecisive lets the earliest registered rule with a decisive verdict (a claim or a veto)
	// decide, ignoring the verdicts of later rules.
	PolicyFirstDecisive
)
