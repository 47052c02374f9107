package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/socialgraph/matrix"
)

// Dijkstra computes hop distances and predecessors from source to every node
// of am, treating each nonzero adjacency cell as a single unit-cost edge.
//
// Returns:
//
//   - *Result with Dist (Unreachable for disconnected nodes) and Prev
//     (NoPredecessor for the source and disconnected nodes).
//   - err: matrix.ErrNilMatrix, matrix.ErrIndexOutOfRange or ErrBadStrategy.
//
// Relaxation only improves strictly shorter distances, so Prev[v] is the
// first finalized node that reached v. Finalization order is ascending
// distance with the lowest index first among equals.
//
// Complexity:
//
//   - LinearScan:  O(N²) time.
//   - IndexedHeap: O(N² + E log N) time on the dense matrix (row scans dominate).
//   - Space: O(N).
func Dijkstra(am *matrix.AdjacencyMatrix, source int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Strategy != LinearScan && cfg.Strategy != IndexedHeap {
		return nil, fmt.Errorf("%w: %d", ErrBadStrategy, cfg.Strategy)
	}

	// 2) Validate matrix and source
	if am == nil {
		return nil, matrix.ErrNilMatrix
	}
	if err := am.CheckIndex(source); err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}

	// 3) Prepare runner state
	n := am.Size()
	r := &runner{
		am:      am,
		dist:    make([]int, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	r.init(source)

	// 4) Run the selected main loop
	switch cfg.Strategy {
	case IndexedHeap:
		r.processHeap(source)
	default:
		r.processLinear()
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	am      *matrix.AdjacencyMatrix // read-only input
	dist    []int                   // current best distance per node
	prev    []int                   // predecessor per node
	visited []bool                  // finalized flags
}

// init sets every distance to Unreachable and every predecessor to
// NoPredecessor, then seeds the source at distance 0.
func (r *runner) init(source int) {
	for i := range r.dist {
		r.dist[i] = Unreachable
		r.prev[i] = NoPredecessor
	}
	r.dist[source] = 0
}

// processLinear finalizes at most N nodes, each time selecting the minimum by
// an index-ordered scan. It stops early once no unvisited node is reachable.
func (r *runner) processLinear() {
	for range r.dist {
		u := r.minDistance()
		if u == NoPredecessor {
			break
		}
		r.visited[u] = true
		r.relax(u, nil)
	}
}

// minDistance returns the unvisited node with the smallest finite distance,
// lowest index on ties, or NoPredecessor when the frontier is exhausted.
func (r *runner) minDistance() int {
	best, bestIdx := Unreachable, NoPredecessor
	for v, d := range r.dist {
		if !r.visited[v] && d < best {
			best, bestIdx = d, v
		}
	}

	return bestIdx
}

// processHeap is the lazy decrease-key variant: improved distances are pushed
// as new heap entries and stale entries are skipped when popped.
func (r *runner) processHeap(source int) {
	pq := make(nodePQ, 0, len(r.dist))
	heap.Push(&pq, &nodeItem{id: source, dist: 0})
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		r.relax(item.id, &pq)
	}
}

// relax scans row u in ascending column order and improves every unvisited
// neighbor whose distance drops by going through u. When pq is non-nil the
// improved neighbor is pushed onto it.
func (r *runner) relax(u int, pq *nodePQ) {
	row, _ := r.am.Row(u) // u is always a validated index here
	next := r.dist[u] + 1
	for v, mult := range row {
		if mult == 0 || r.visited[v] || next >= r.dist[v] {
			continue
		}
		r.dist[v] = next
		r.prev[v] = u
		if pq != nil {
			heap.Push(pq, &nodeItem{id: v, dist: next})
		}
	}
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int // node index
	dist int // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending, which
// reproduces the lowest-index tie-break of the linear scan.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by node index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
