// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"github.com/gomlx/delegation/pkg/core/dtypes"
	"github.com/gomlx/delegation/pkg/support/fsutil"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// yamlGraph is the on-disk form of a Graph, as dumped by graph compilers for offline partitioning reports.
//
//	name: forward
//	nodes:
//	  - {id: 0, op: Parameter, dtype: Float32, shape: [1, 64]}
//	  - {id: 1, op: Relu, dtype: Float32, shape: [1, 64], inputs: [0]}
type yamlGraph struct {
	Name  string     `yaml:"name"`
	Nodes []yamlNode `yaml:"nodes"`
}

// yamlOpType reads operator names leniently: operators outside OpType are imported as OpTypeUnknown.
type yamlOpType OpType

// UnmarshalYAML implements yaml.Unmarshaler.
func (op *yamlOpType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return errors.Wrapf(err, "line %d: op", value.Line)
	}
	opType, err := OpTypeString(name)
	if err != nil {
		if klog.V(1).Enabled() {
			klog.Infof("graph dump line %d: operator %q imported as %s", value.Line, name, OpTypeUnknown)
		}
		opType = OpTypeUnknown
	}
	*op = yamlOpType(opType)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (op yamlOpType) MarshalYAML() (any, error) {
	return OpType(op).String(), nil
}

type yamlNode struct {
	ID       NodeID         `yaml:"id"`
	Op       yamlOpType     `yaml:"op"`
	Inputs   []NodeID       `yaml:"inputs,omitempty"`
	DType    dtypes.DType   `yaml:"dtype"`
	Shape    []int          `yaml:"shape,flow"`
	Attrs    map[string]any `yaml:"attrs,omitempty"`
	SourceFn string         `yaml:"source_fn,omitempty"`
}

// ParseYAML decodes a graph dump. Nodes must be listed in topological order.
func ParseYAML(data []byte) (*Graph, error) {
	var dump yamlGraph
	if err := yaml.Unmarshal(data, &dump); err != nil {
		return nil, errors.Wrap(err, "failed to parse graph YAML")
	}
	if dump.Name == "" {
		dump.Name = "forward"
	}
	b := NewBuilder(dump.Name)
	for _, n := range dump.Nodes {
		b.AddNode(&Node{
			ID:       n.ID,
			Op:       OpType(n.Op),
			Inputs:   n.Inputs,
			DType:    n.DType,
			Shape:    n.Shape,
			Attrs:    n.Attrs,
			SourceFn: n.SourceFn,
		})
	}
	return b.Done()
}

// LoadYAML reads and decodes a graph dump from filePath.
func LoadYAML(filePath string) (*Graph, error) {
	data, err := fsutil.ReadFile(filePath, "graph")
	if err != nil {
		return nil, err
	}
	g, err := ParseYAML(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "graph file %q", filePath)
	}
	return g, nil
}

// MarshalYAML implements yaml.Marshaler, producing the dump format read by ParseYAML.
func (g *Graph) MarshalYAML() (any, error) {
	dump := yamlGraph{Name: g.name, Nodes: make([]yamlNode, len(g.nodes))}
	for ii, n := range g.nodes {
		attrs := n.Attrs
		if len(attrs) == 0 {
			attrs = nil
		}
		dump.Nodes[ii] = yamlNode{
			ID:       n.ID,
			Op:       yamlOpType(n.Op),
			Inputs:   n.Inputs,
			DType:    n.DType,
			Shape:    n.Shape,
			Attrs:    attrs,
			SourceFn: n.SourceFn,
		}
	}
	return dump, nil
}
