package node_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sayotte/glcplan/internal/node"
	"github.com/sayotte/glcplan/internal/state"
)

func TestInfiniteCostNodeIsSentinel(t *testing.T) {
	n := node.InfiniteCostNode()
	assert.True(t, n.IsSentinel())
	assert.True(t, math.IsInf(n.Cost, 1))
}

func TestAddChildLinksAndIndexes(t *testing.T) {
	parent := node.New(3)
	parent.Depth = 2
	parent.T = 1.0

	child := node.New(3)
	child.UIdx = 1
	child.X = state.Vector{1, 2}

	node.AddChild(parent, child, 0.5)

	assert.Same(t, parent, child.Parent)
	assert.Equal(t, 3, child.Depth)
	assert.InDelta(t, 1.5, child.T, 1e-12)
	assert.Same(t, child, parent.Children[1])
	assert.Nil(t, parent.Children[0])
}
