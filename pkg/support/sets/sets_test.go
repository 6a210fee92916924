// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetOperations(t *testing.T) {
	claimed := Make[int](4)
	assert.Empty(t, claimed)
	claimed.Insert(2, 3, 5, 3)
	assert.Equal(t, []int{2, 3, 5}, Sorted(claimed))

	vetoed := MakeWith(3, 8)
	delegated := claimed.Sub(vetoed)
	assert.Equal(t, []int{2, 5}, Sorted(delegated))
	assert.True(t, delegated.Has(5))
	assert.False(t, delegated.Has(3))

	assert.True(t, delegated.Equal(MakeWith(5, 2)))
	assert.False(t, delegated.Equal(MakeWith(5, 3)))
	assert.False(t, delegated.Equal(MakeWith(5)))
	assert.True(t, Make[int]().Equal(nil))
}

func TestUnionAndClone(t *testing.T) {
	a, b := MakeWith(3, 1), MakeWith(2, 3)
	u := a.Union(b)
	assert.Equal(t, []int{1, 2, 3}, Sorted(u))
	assert.Len(t, a, 2, "Union must not modify its operands")
	assert.Len(t, b, 2, "Union must not modify its operands")

	c := u.Clone()
	delete(c, 2)
	assert.True(t, u.Has(2))
	assert.Equal(t, []int{1, 3}, Sorted(c))
}
