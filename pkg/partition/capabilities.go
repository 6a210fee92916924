// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package partition

import (
	"maps"

	"github.com/gomlx/delegation/pkg/core/dtypes"
	"github.com/gomlx/delegation/pkg/core/ir"
)

// Capabilities lists what a target backend executes at all. It is checked before any rule: a node
// whose operator or dtype is not listed is ineligible.
type Capabilities struct {
	// Operations supported by the backend.
	// If not listed, it's assumed to be false, hence not supported.
	Operations map[ir.OpType]bool

	// DTypes list the data types supported by the backend.
	// If not listed, it's assumed to be false, hence not supported.
	DTypes map[dtypes.DType]bool
}

// Clone makes a deep copy of the Capabilities.
func (c Capabilities) Clone() Capabilities {
	var c2 Capabilities
	c2.Operations = make(map[ir.OpType]bool, len(c.Operations))
	maps.Copy(c2.Operations, c.Operations)
	c2.DTypes = make(map[dtypes.DType]bool, len(c.DTypes))
	maps.Copy(c2.DTypes, c.DTypes)
	return c2
}

// check returns a non-empty reason if n can't run on a backend with these capabilities.
func (c Capabilities) check(n *ir.Node) string {
	if !c.Operations[n.Op] {
		return "operation " + n.Op.String() + " not supported by the backend"
	}
	if !c.DTypes[n.DType] {
		return "dtype " + n.DType.String() + " not supported by the backend"
	}
	return ""
}

const capabilitiesRuleName = "capabilities"
