// SPDX-License-Identifier: MIT

package analysis

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/katalvlaran/socialgraph/dijkstra"
	"github.com/katalvlaran/socialgraph/metrics"
)

// Metric names used in rankings, logs and metrics labels.
const (
	MetricDegree      = "degree"
	MetricCloseness   = "closeness"
	MetricBetweenness = "betweenness"
	MetricPaths       = "paths"
	MetricDistances   = "distances"
	MetricSearch      = "search"
)

// Score is one node's value in a Ranking.
type Score struct {
	Node  int64   `json:"node"`
	Value float64 `json:"value"`
}

// Ranking is the per-invocation result of a whole-graph metric, sorted
// ascending by Value (ties by Node). Undefined lists nodes for which the
// metric has no value (isolated nodes for closeness).
type Ranking struct {
	Metric    string  `json:"metric"`
	Scores    []Score `json:"scores"`
	Undefined []int64 `json:"undefined,omitempty"`
}

// sort orders scores ascending by value, then by node label.
func (r *Ranking) sort() {
	slices.SortFunc(r.Scores, func(a, b Score) int {
		if c := cmp.Compare(a.Value, b.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Node, b.Node)
	})
	slices.Sort(r.Undefined)
}

// PathReport lists every geodesic between two labelled nodes.
type PathReport struct {
	Start     int64     `json:"start"`
	End       int64     `json:"end"`
	Length    int       `json:"length"`
	Paths     [][]int64 `json:"paths"`
	Truncated bool      `json:"truncated"`
}

// NodeDistance is the hop count to one reachable node.
type NodeDistance struct {
	Node int64 `json:"node"`
	Hops int   `json:"hops"`
}

// DistanceReport is the single-source distance vector in label space.
// Unreachable nodes are listed separately.
type DistanceReport struct {
	Source      int64          `json:"source"`
	Distances   []NodeDistance `json:"distances"`
	Unreachable []int64        `json:"unreachable,omitempty"`
	Closeness   *float64       `json:"closeness,omitempty"`
}

// SearchReport is the outcome of one reachability search.
type SearchReport struct {
	Root    int64   `json:"root"`
	Target  int64   `json:"target"`
	Found   bool    `json:"found"`
	Visited []int64 `json:"visited"`
}

// TripleReport is the betweenness fraction of one (start, end, via) triple.
type TripleReport struct {
	Start int64   `json:"start"`
	End   int64   `json:"end"`
	Via   int64   `json:"via"`
	Value float64 `json:"value"`
}

// Options configures an Analyzer.
type Options struct {
	MaxPaths   int               // enumeration cap per pair, 0 = unlimited
	Workers    int               // parallelism, 0 = GOMAXPROCS
	Strategy   dijkstra.Strategy // shortest-path node selection
	SearchRoot int64             // default root label for Search
	Logger     *slog.Logger
	Recorder   *metrics.Recorder
}

// Option configures an Analyzer via functional arguments.
type Option func(*Options)

// DefaultOptions returns unlimited enumeration, GOMAXPROCS workers, linear
// scan, root 107 and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Strategy:   dijkstra.LinearScan,
		SearchRoot: 107,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithMaxPaths caps geodesic enumeration per pair (0 = unlimited).
func WithMaxPaths(k int) Option {
	return func(o *Options) { o.MaxPaths = k }
}

// WithWorkers bounds aggregation parallelism (0 = GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithStrategy selects the shortest-path node selection strategy.
func WithStrategy(s dijkstra.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithSearchRoot sets the default root label for Search.
func WithSearchRoot(label int64) Option {
	return func(o *Options) { o.SearchRoot = label }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder sets the Prometheus recorder.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}
