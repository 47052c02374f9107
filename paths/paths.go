// Package paths enumerates all geodesics (minimum-hop paths) between two
// nodes of a matrix.AdjacencyMatrix.
//
// Enumeration is exhaustive: every distinct shortest path is returned, which
// is what betweenness needs. The number of geodesics can grow exponentially
// with graph density; WithMaxPaths bounds the work and flags the result as
// Truncated.
package paths

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/dijkstra"
	"github.com/katalvlaran/socialgraph/matrix"
)

// enumerator encapsulates the mutable state of one enumeration.
type enumerator struct {
	am       *matrix.AdjacencyMatrix
	opts     Options
	fromHead []int // hop distance from Start
	toTail   []int // hop distance to End
	end      int
	want     int     // node count of a geodesic (Length + 1)
	queue    [][]int // FIFO frontier of partial walks
	res      *PathList
}

// AllShortest returns every minimum-length walk from start to end.
//
// Behavior:
//   - end unreachable from start: empty PathList with Length -1, no error.
//   - start == end: the single path [start], Length 0.
//   - Walks are expanded breadth-first in ascending neighbor index, so Paths
//     is in lexicographic order.
//   - A walk is extended to next only if next sits on the following distance
//     layer from start and the matching layer towards end. Every surviving
//     walk is a prefix of a geodesic, so no node repeats within a walk and no
//     walk outgrows the target length.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - matrix.ErrNilMatrix, matrix.ErrIndexOutOfRange for bad inputs.
//
// Complexity:
//   - Two O(N²) distance passes plus O(P·L·N) for P paths of length L;
//     P is exponential in the worst case.
func AllShortest(am *matrix.AdjacencyMatrix, start, end int, opts ...Option) (*PathList, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if am == nil {
		return nil, matrix.ErrNilMatrix
	}
	if err := am.CheckIndex(start); err != nil {
		return nil, fmt.Errorf("paths: start: %w", err)
	}
	if err := am.CheckIndex(end); err != nil {
		return nil, fmt.Errorf("paths: end: %w", err)
	}

	res := &PathList{Start: start, End: end, Length: -1, Paths: [][]int{}}

	head, err := dijkstra.Dijkstra(am, start)
	if err != nil {
		return nil, err
	}
	if !head.Reachable(end) {
		return res, nil
	}
	tail, err := dijkstra.Dijkstra(am, end)
	if err != nil {
		return nil, err
	}

	res.Length = head.Dist[end]
	e := &enumerator{
		am:       am,
		opts:     o,
		fromHead: head.Dist,
		toTail:   tail.Dist,
		end:      end,
		want:     res.Length + 1,
		queue:    [][]int{{start}},
		res:      res,
	}
	e.loop()

	return res, nil
}

// loop drains the frontier, accepting complete geodesics and stopping early
// when the MaxPaths cap is reached.
func (e *enumerator) loop() {
	for len(e.queue) > 0 {
		walk := e.dequeue()
		last := walk[len(walk)-1]

		if last == e.end && len(walk) == e.want {
			e.accept(walk)
			if e.opts.MaxPaths > 0 && len(e.res.Paths) >= e.opts.MaxPaths {
				// every queued walk still completes to another geodesic
				e.res.Truncated = len(e.queue) > 0
				return
			}
			continue
		}
		if len(walk) >= e.want {
			continue
		}
		e.extend(walk, last)
	}
}

// dequeue pops the oldest walk from the frontier.
func (e *enumerator) dequeue() []int {
	walk := e.queue[0]
	e.queue[0] = nil
	e.queue = e.queue[1:]

	return walk
}

// accept records a complete geodesic and fires the OnPath hook.
func (e *enumerator) accept(walk []int) {
	e.res.Paths = append(e.res.Paths, walk)
	e.opts.OnPath(walk)
}

// extend enqueues walk+next for each neighbor next of last lying on both the
// next layer from Start and the matching layer towards End.
func (e *enumerator) extend(walk []int, last int) {
	row, _ := e.am.Row(last) // last is an in-range index
	depth := len(walk)       // distance from Start of the appended node
	remaining := e.want - 1 - depth
	for next, mult := range row {
		if mult == 0 || e.fromHead[next] != depth || e.toTail[next] != remaining {
			continue
		}
		ext := make([]int, depth+1)
		copy(ext, walk)
		ext[depth] = next
		e.queue = append(e.queue, ext)
	}
}
