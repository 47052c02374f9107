// Package dijkstra defines result types and configuration options for the
// unit-weight single-source shortest-path engine.
//
// Every edge of the adjacency matrix costs exactly one hop, regardless of its
// multiplicity. Distances are therefore identical to breadth-first layering;
// the Dijkstra formulation is kept because it also yields the predecessor
// vector with deterministic tie-breaking (lowest index first).
//
// Options:
//
//	– WithStrategy: LinearScan (default) or IndexedHeap selection of the next node.
//
// Errors (sentinel):
//
//	– matrix.ErrNilMatrix       if the adjacency matrix is nil.
//	– matrix.ErrIndexOutOfRange if the source is outside [0, N).
//	– ErrBadStrategy            if an unknown Strategy is supplied.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance recorded for nodes with no path from the
// source. It cannot collide with a finite hop count, which is always < N.
const Unreachable = math.MaxInt

// NoPredecessor marks the source and every unreachable node in Result.Prev.
const NoPredecessor = -1

// ErrBadStrategy indicates an unknown selection Strategy.
var ErrBadStrategy = errors.New("dijkstra: unknown selection strategy")

// Strategy controls how the next unvisited node is selected.
//
// LinearScan  – scan all nodes in index order each round, O(N²) overall.
// IndexedHeap – min-heap keyed by (distance, index), O((N + E) log N) plus the
// O(N) row scans of the dense matrix.
//
// Both strategies pick the unvisited node with the smallest tentative distance
// and, among equals, the lowest index, so Dist and Prev are identical.
type Strategy int

const (
	// LinearScan selects the minimum by scanning every node in index order.
	LinearScan Strategy = iota

	// IndexedHeap selects the minimum with a lazy decrease-key binary heap.
	IndexedHeap
)

// String returns the configuration name of s.
func (s Strategy) String() string {
	switch s {
	case LinearScan:
		return "linear"
	case IndexedHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a configuration name ("linear", "heap") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "linear":
		return LinearScan, nil
	case "heap":
		return IndexedHeap, nil
	default:
		return LinearScan, ErrBadStrategy
	}
}

// Options configures a single Dijkstra run.
type Options struct {
	Strategy Strategy // node selection strategy
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStrategy sets the node selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns the defaults: LinearScan selection.
func DefaultOptions() Options {
	return Options{Strategy: LinearScan}
}

// Result holds the per-source output of Dijkstra. It is produced fresh for
// every call and never shared between sources.
//
// Dist[i] – minimum hop count from the source to i, or Unreachable.
// Prev[i] – predecessor of i on one shortest path, or NoPredecessor.
type Result struct {
	Source int
	Dist   []int
	Prev   []int
}

// Reachable reports whether node i has a finite distance from the source.
// Out-of-range indices report false.
func (r *Result) Reachable(i int) bool {
	return i >= 0 && i < len(r.Dist) && r.Dist[i] != Unreachable
}

// PathTo reconstructs the single predecessor path from the source to dest,
// or nil when dest is unreachable or out of range.
func (r *Result) PathTo(dest int) []int {
	if !r.Reachable(dest) {
		return nil
	}
	path := make([]int, 0, r.Dist[dest]+1)
	for cur := dest; cur != NoPredecessor; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
