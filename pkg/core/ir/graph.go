// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ir holds the minimal, read-only view of a computation graph that eligibility rules inspect.
//
// The graph compiler owns the real representation; it exports a Graph (usually through a Builder, or a
// YAML dump with ParseYAML) that is then handed to the partitioner. Nothing in this module mutates a Graph
// after Builder.Done returns, so a Graph can be shared by concurrent readers.
package ir

import (
	"slices"

	"github.com/gomlx/delegation/pkg/core/dtypes"
	"github.com/pkg/errors"
)

// Graph is an immutable computation graph: nodes in topological order plus the reverse (users) edges.
type Graph struct {
	name  string
	nodes []*Node
	byID  map[NodeID]*Node
	users map[NodeID][]NodeID
}

// Name of the graph (e.g.: "forward").
func (g *Graph) Name() string { return g.name }

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Nodes returns the nodes in topological order. The returned slice must not be modified.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Node returns the node with the given id, or nil if it doesn't exist.
func (g *Graph) Node(id NodeID) *Node { return g.byID[id] }

// Producers returns the nodes feeding the operands of n, in operand order.
func (g *Graph) Producers(n *Node) []*Node {
	producers := make([]*Node, len(n.Inputs))
	for ii, id := range n.Inputs {
		producers[ii] = g.byID[id]
	}
	return producers
}

// Users returns the nodes that consume the output of the node with the given id, in topological order.
func (g *Graph) Users(id NodeID) []*Node {
	ids := g.users[id]
	users := make([]*Node, len(ids))
	for ii, userID := range ids {
		users[ii] = g.byID[userID]
	}
	return users
}

// Builder accumulates nodes for a new Graph. Nodes must be added in topological order: every input
// must refer to a node already added.
//
// Errors are deferred and returned by Done, so calls can be chained.
type Builder struct {
	graph  *Graph
	nextID NodeID
	err    error
}

// NewBuilder creates a Builder for a graph with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		graph: &Graph{
			name:  name,
			byID:  make(map[NodeID]*Node),
			users: make(map[NodeID][]NodeID),
		},
	}
}

func (b *Builder) setError(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Op adds a node with an automatically assigned id and returns it. The returned node can still be
// edited (Attrs, SourceFn) until Done is called.
func (b *Builder) Op(op OpType, dtype dtypes.DType, shape []int, inputs ...NodeID) *Node {
	id := b.nextID
	for b.graph.byID[id] != nil {
		id++
	}
	return b.AddNode(&Node{ID: id, Op: op, DType: dtype, Shape: slices.Clone(shape), Inputs: inputs})
}

// Parameter is a shortcut to add an OpTypeParameter node.
func (b *Builder) Parameter(dtype dtypes.DType, shape ...int) *Node {
	return b.Op(OpTypeParameter, dtype, shape)
}

// AddNode adds a fully specified node. Its id must be unique and its inputs must already be in the graph.
func (b *Builder) AddNode(n *Node) *Node {
	if b.graph == nil {
		b.setError(errors.New("ir.Builder used after Done"))
		return n
	}
	if _, found := b.graph.byID[n.ID]; found {
		b.setError(errors.Errorf("graph %q: duplicate node id %d", b.graph.name, n.ID))
		return n
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]any)
	}
	for _, input := range n.Inputs {
		if _, found := b.graph.byID[input]; !found {
			b.setError(errors.Errorf("graph %q: node #%d (%s) uses input #%d which is not defined before it",
				b.graph.name, n.ID, n.Op, input))
			return n
		}
	}
	b.graph.nodes = append(b.graph.nodes, n)
	b.graph.byID[n.ID] = n
	for _, input := range n.Inputs {
		users := b.graph.users[input]
		if len(users) == 0 || users[len(users)-1] != n.ID {
			b.graph.users[input] = append(users, n.ID)
		}
	}
	if n.ID >= b.nextID {
		b.nextID = n.ID + 1
	}
	return n
}

// Done returns the built Graph, or the first error found while adding nodes.
// The Builder can't be used afterwards.
func (b *Builder) Done() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.graph == nil {
		return nil, errors.New("ir.Builder.Done called twice")
	}
	g := b.graph
	b.graph = nil
	return g, nil
}
