// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"testing"

	"github.com/gomlx/delegation/pkg/core/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder("forward")
	x := b.Parameter(dtypes.Float32, 2, 3)
	y := b.Parameter(dtypes.Float32, 2, 3)
	sum := b.Op(OpTypeAdd, dtypes.Float32, []int{2, 3}, x.ID, y.ID)
	sq := b.Op(OpTypeMul, dtypes.Float32, []int{2, 3}, sum.ID, sum.ID)
	sq.Attrs["note"] = "square"
	g, err := b.Done()
	require.NoError(t, err)

	assert.Equal(t, "forward", g.Name())
	assert.Equal(t, 4, g.NumNodes())
	assert.Same(t, sum, g.Node(sum.ID))
	assert.Nil(t, g.Node(100))

	// Using the same input twice lists the user once.
	users := g.Users(sum.ID)
	require.Len(t, users, 1)
	assert.Equal(t, sq.ID, users[0].ID)
	assert.Equal(t, []*Node{sum, sum}, g.Producers(sq))

	_, err = b.Done()
	require.Error(t, err)
}

func TestBuilderErrors(t *testing.T) {
	b := NewBuilder("bad")
	b.Op(OpTypeRelu, dtypes.Float32, []int{1}, 7)
	_, err := b.Done()
	require.ErrorContains(t, err, "input #7")

	b = NewBuilder("dup")
	b.AddNode(&Node{ID: 3, Op: OpTypeParameter, DType: dtypes.Float32})
	b.AddNode(&Node{ID: 3, Op: OpTypeParameter, DType: dtypes.Float32})
	_, err = b.Done()
	require.ErrorContains(t, err, "duplicate node id 3")
}

func TestNodeAttrs(t *testing.T) {
	n := &Node{
		ID: 1, Op: OpTypeConvolution, DType: dtypes.Float32, Shape: []int{1, -1, 8, 8},
		Attrs: map[string]any{
			"groups":  1,
			"stride":  []any{2, 2.0},
			"padding": []int64{0, 1},
			"alpha":   0.5,
			"scale":   3,
			"mode":    "bilinear",
			"aligned": true,
			"bad":     []any{"x"},
		},
	}
	assert.Equal(t, 4, n.Rank())
	assert.True(t, n.IsDynamic())
	assert.Equal(t, "#1 Convolution(Float32)[1 ? 8 8]", n.String())

	v, ok := n.IntAttr("groups")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	ints, ok := n.IntsAttr("stride")
	assert.True(t, ok)
	assert.Equal(t, []int{2, 2}, ints)
	ints, ok = n.IntsAttr("padding")
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1}, ints)
	ints, ok = n.IntsAttr("groups")
	assert.True(t, ok)
	assert.Equal(t, []int{1}, ints)
	_, ok = n.IntsAttr("bad")
	assert.False(t, ok)
	_, ok = n.IntAttr("alpha")
	assert.False(t, ok)

	f, ok := n.FloatAttr("scale")
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)
	s, ok := n.StringAttr("mode")
	assert.True(t, ok)
	assert.Equal(t, "bilinear", s)
	flag, ok := n.BoolAttr("aligned")
	assert.True(t, ok)
	assert.True(t, flag)
	assert.False(t, n.HasAttr("missing"))
}

func TestYAML(t *testing.T) {
	const dump = `
name: forward
nodes:
  - {id: 0, op: Parameter, dtype: Float32, shape: [1, 64]}
  - {id: 1, op: Parameter, dtype: f32, shape: [1, 64]}
  - {id: 5, op: add, dtype: Float32, shape: [1, 64], inputs: [0, 1]}
  - id: 6
    op: LeakyRelu
    dtype: Float32
    shape: [1, 64]
    inputs: [5]
    attrs: {negative_slope: 0.01}
    source_fn: leaky_relu
`
	g, err := ParseYAML([]byte(dump))
	require.NoError(t, err)
	require.Equal(t, 4, g.NumNodes())
	add := g.Node(5)
	require.NotNil(t, add)
	assert.Equal(t, OpTypeAdd, add.Op)
	assert.Equal(t, dtypes.Float32, g.Node(1).DType)
	leaky := g.Node(6)
	slope, ok := leaky.FloatAttr("negative_slope")
	assert.True(t, ok)
	assert.InDelta(t, 0.01, slope, 1e-9)
	assert.Equal(t, "leaky_relu", leaky.SourceFn)

	// Round trip through the dump format.
	data, err := yaml.Marshal(g)
	require.NoError(t, err)
	g2, err := ParseYAML(data)
	require.NoError(t, err)
	require.Equal(t, g.NumNodes(), g2.NumNodes())
	for _, n := range g.Nodes() {
		n2 := g2.Node(n.ID)
		require.NotNil(t, n2)
		assert.Equal(t, n.Op, n2.Op)
		assert.Equal(t, n.DType, n2.DType)
		assert.Equal(t, n.Shape, n2.Shape)
		assert.Equal(t, n.SourceFn, n2.SourceFn)
	}

	_, err = ParseYAML([]byte("nodes:\n  - {id: 0, op: [Add, Mul]}\n"))
	require.Error(t, err)
}

func TestYAMLUnknownOp(t *testing.T) {
	g, err := ParseYAML([]byte(`
nodes:
  - {id: 0, op: Parameter, dtype: Float32, shape: [8]}
  - {id: 1, op: Erf, dtype: Float32, shape: [8], inputs: [0]}
  - {id: 2, op: NotAnOp, dtype: Float32, shape: [8], inputs: [1]}
`))
	require.NoError(t, err)
	assert.Equal(t, OpTypeParameter, g.Node(0).Op)
	assert.Equal(t, OpTypeUnknown, g.Node(1).Op)
	assert.Equal(t, OpTypeUnknown, g.Node(2).Op)

	// Unknown operators are written back by their OpType name.
	data, err := yaml.Marshal(g)
	require.NoError(t, err)
	assert.Contains(t, string(data), "op: Unknown")
	assert.NotContains(t, string(data), "Erf")
}

func TestOpTypeNames(t *testing.T) {
	op, err := OpTypeString("QuantizeAffine")
	require.NoError(t, err)
	assert.True(t, op.IsQuantizeAffine())
	assert.False(t, OpTypeQuantizePerTensor.IsQuantizeAffine())
	assert.True(t, OpTypeConstant.IsGraphBoundary())
	assert.Equal(t, "UpsampleBilinear2d", OpTypeUpsampleBilinear2d.String())
	assert.Equal(t, "OpType(1000)", OpType(1000).String())
	assert.Len(t, OpTypeValues(), int(OpTypeLast)+1)
}
