// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"strings"

	"github.com/gomlx/delegation/pkg/core/dtypes"
)

// NodeID identifies a node within a Graph. It is assigned by the graph compiler and is stable for the
// lifetime of the graph.
type NodeID int

// Node is the read-only view of one operator of a computation graph, as exported by the graph compiler.
//
// Nodes are never mutated once the Graph is built: eligibility rules only inspect them.
type Node struct {
	// ID of the node, unique within the graph.
	ID NodeID

	// Op is the operator type.
	Op OpType

	// Inputs are the ids of the nodes producing this node's operands, in operand order.
	Inputs []NodeID

	// DType of the (first) output.
	DType dtypes.DType

	// Shape of the (first) output. A negative dimension means the axis is dynamic.
	Shape []int

	// Attrs are the static attributes of the operator (padding, strides, axes, scales, ...).
	// Values are ints, float64s, bools, strings or slices of those.
	Attrs map[string]any

	// SourceFn is the name of the higher level operator this node was decomposed from, if any.
	// E.g.: a "mul" produced by decomposing "quantize_affine" has SourceFn "quantize_affine".
	SourceFn string
}

// Rank returns the number of axes of the node's output.
func (n *Node) Rank() int {
	return len(n.Shape)
}

// IsDynamic returns whether any axis of the output shape is unknown at compile time.
func (n *Node) IsDynamic() bool {
	for _, dim := range n.Shape {
		if dim < 0 {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	dims := make([]string, len(n.Shape))
	for ii, dim := range n.Shape {
		if dim < 0 {
			dims[ii] = "?"
		} else {
			dims[ii] = fmt.Sprint(dim)
		}
	}
	return fmt.Sprintf("#%d %s(%s)[%s]", n.ID, n.Op, n.DType, strings.Join(dims, " "))
}

// HasAttr returns whether the attribute is set.
func (n *Node) HasAttr(key string) bool {
	_, found := n.Attrs[key]
	return found
}

// IntAttr returns the attribute as an int. It accepts any Go integer type, or a float64 holding an
// integral value (which is how YAML/JSON decoders deliver numbers).
func (n *Node) IntAttr(key string) (int, bool) {
	value, found := n.Attrs[key]
	if !found {
		return 0, false
	}
	return toInt(value)
}

// IntsAttr returns the attribute as a list of ints. A scalar int is returned as a one-element list.
func (n *Node) IntsAttr(key string) ([]int, bool) {
	value, found := n.Attrs[key]
	if !found {
		return nil, false
	}
	if v, ok := toInt(value); ok {
		return []int{v}, true
	}
	var items []any
	switch list := value.(type) {
	case []int:
		return list, true
	case []int64:
		items = make([]any, len(list))
		for ii, v := range list {
			items[ii] = v
		}
	case []any:
		items = list
	default:
		return nil, false
	}
	ints := make([]int, len(items))
	for ii, item := range items {
		v, ok := toInt(item)
		if !ok {
			return nil, false
		}
		ints[ii] = v
	}
	return ints, true
}

// FloatAttr returns the attribute as a float64, converting from integers if needed.
func (n *Node) FloatAttr(key string) (float64, bool) {
	value, found := n.Attrs[key]
	if !found {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	if v, ok := toInt(value); ok {
		return float64(v), true
	}
	return 0, false
}

// BoolAttr returns the attribute as a bool.
func (n *Node) BoolAttr(key string) (bool, bool) {
	v, ok := n.Attrs[key].(bool)
	return v, ok
}

// StringAttr returns the attribute as a string.
func (n *Node) StringAttr(key string) (string, bool) {
	v, ok := n.Attrs[key].(string)
	return v, ok
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}
