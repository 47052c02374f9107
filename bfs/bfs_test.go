package bfs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tree is 0→{1,2}, 1→3, 2→4 plus an isolated node 5.
func tree() *matrix.AdjacencyMatrix {
	return matrix.Build([]matrix.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}, {U: 2, V: 4}}, 6)
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	am := tree()
	_, err = bfs.Search(am, 6, bfs.WithRoot(0))
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	_, err = bfs.Search(am, -1, bfs.WithRoot(0))
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	// the default root does not exist in a six-node graph
	_, err = bfs.Search(am, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	_, err = bfs.Search(am, 1, bfs.WithRoot(-2))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestSearch_LIFOOrder pins the stack-based visit order.
func TestSearch_LIFOOrder(t *testing.T) {
	var order []int
	found, err := bfs.Search(tree(), 3,
		bfs.WithRoot(0),
		bfs.WithOnVisit(func(node, _ int) error {
			order = append(order, node)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{0, 2, 4, 1, 3}, order)
}

// TestSearch_PushOrder checks that neighbors are pushed ascending and once.
func TestSearch_PushOrder(t *testing.T) {
	am := matrix.Build([]matrix.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 0, V: 1}}, 3)
	var pushed []int
	found, err := bfs.Search(am, 2, bfs.WithRoot(0), bfs.WithOnPush(func(node, _ int) {
		pushed = append(pushed, node)
	}))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{0, 1, 2}, pushed)
}

// TestSearch_NotFound explores the whole component and returns false.
func TestSearch_NotFound(t *testing.T) {
	var visits int
	found, err := bfs.Search(tree(), 5, bfs.WithRoot(0), bfs.WithOnVisit(func(int, int) error {
		visits++
		return nil
	}))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 5, visits)
}

// TestSearch_RootIsTarget succeeds on the first pop.
func TestSearch_RootIsTarget(t *testing.T) {
	found, err := bfs.Search(tree(), 5, bfs.WithRoot(5))
	require.NoError(t, err)
	assert.True(t, found)
}

// TestSearch_DefaultRoot uses node 107 when no root is given.
func TestSearch_DefaultRoot(t *testing.T) {
	am := matrix.Build([]matrix.Edge{{U: bfs.DefaultRoot, V: 3}, {U: 3, V: 9}}, 120)

	found, err := bfs.Search(am, 9)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = bfs.Search(am, 0)
	require.NoError(t, err)
	assert.False(t, found)
}

// TestSearch_HookAbort propagates the hook error.
func TestSearch_HookAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.Search(tree(), 4, bfs.WithRoot(0), bfs.WithOnVisit(func(node, step int) error {
		if step == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}
