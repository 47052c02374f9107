// Package bfs answers "is target reachable from the root?" over a
// matrix.AdjacencyMatrix.
//
// The frontier is a stack: the most recently pushed node is popped first,
// which gives depth-first exploration order even though the search is named
// after breadth-first search.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/matrix"
)

// walker encapsulates mutable search state.
type walker struct {
	am      *matrix.AdjacencyMatrix
	opts    Options
	target  int
	stack   []int
	visited []bool
	step    int
}

// Search reports whether target is reachable from the configured root.
//
// Behavior:
//   - The root is pushed and marked visited.
//   - Each round pops the most recently pushed node; if it equals target the
//     search returns true immediately.
//   - Otherwise every unvisited neighbor (nonzero multiplicity) is marked
//     visited and pushed, in ascending index order.
//   - An exhausted frontier returns false.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrIndexOutOfRange for a bad matrix, root
//     or target.
//   - ErrOptionViolation for invalid options.
//   - Wrapped OnVisit hook errors.
//
// Complexity: O(N²) time on the dense matrix, O(N) memory.
func Search(am *matrix.AdjacencyMatrix, target int, opts ...Option) (bool, error) {
	if am == nil {
		return false, matrix.ErrNilMatrix
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, o.err
	}

	if err := am.CheckIndex(target); err != nil {
		return false, fmt.Errorf("bfs: target: %w", err)
	}
	if err := am.CheckIndex(o.Root); err != nil {
		return false, fmt.Errorf("bfs: root: %w", err)
	}

	n := am.Size()
	w := &walker{
		am:      am,
		opts:    o,
		target:  target,
		stack:   make([]int, 0, n),
		visited: make([]bool, n),
	}
	w.push(o.Root)

	return w.loop()
}

// push marks node visited, calls OnPush and adds it to the frontier.
func (w *walker) push(node int) {
	w.visited[node] = true
	w.opts.OnPush(node, w.step)
	w.stack = append(w.stack, node)
}

// pop removes and returns the most recently pushed node.
func (w *walker) pop() int {
	last := len(w.stack) - 1
	node := w.stack[last]
	w.stack = w.stack[:last]
	w.step++

	return node
}

// loop processes the frontier until the target is popped or nothing is left.
func (w *walker) loop() (bool, error) {
	for len(w.stack) > 0 {
		node := w.pop()
		if err := w.opts.OnVisit(node, w.step); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at %d: %w", node, err)
		}
		if node == w.target {
			return true, nil
		}
		w.pushNeighbors(node)
	}

	return false, nil
}

// pushNeighbors pushes each unvisited neighbor of node in ascending order.
func (w *walker) pushNeighbors(node int) {
	row, _ := w.am.Row(node) // node came from the frontier, so it is in range
	for next, mult := range row {
		if mult != 0 && !w.visited[next] {
			w.push(next)
		}
	}
}
