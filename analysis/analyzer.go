// SPDX-License-Identifier: MIT

// Package analysis orchestrates the core packages over a whole loaded graph:
// per-node rankings for degree, closeness and betweenness, plus labelled
// single queries (paths, distances, search, one betweenness triple).
//
// Every call returns a fresh result value; nothing accumulates across calls.
// Node arguments and results use the raw labels of the input file; the
// translation to dense indices happens here.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/dijkstra"
	"github.com/katalvlaran/socialgraph/loader"
	"github.com/katalvlaran/socialgraph/matrix"
	"github.com/katalvlaran/socialgraph/paths"
)

// ErrNilGraph is returned by New for a nil graph.
var ErrNilGraph = errors.New("analysis: graph is nil")

// Analyzer answers metric queries over one immutable graph. It is safe for
// concurrent use: the adjacency matrix is only read.
type Analyzer struct {
	graph *loader.Graph
	am    *matrix.AdjacencyMatrix
	opts  Options
}

// New builds the adjacency matrix for g and returns an Analyzer.
func New(g *loader.Graph, opts ...Option) (*Analyzer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxPaths < 0 {
		return nil, fmt.Errorf("analysis: %w: MaxPaths cannot be negative (%d)", paths.ErrOptionViolation, o.MaxPaths)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	a := &Analyzer{graph: g, am: g.Matrix(), opts: o}
	o.Logger.Debug("analyzer ready",
		"nodes", g.NodeCount,
		"edges", len(g.Edges),
		"strategy", o.Strategy.String(),
		"workers", o.Workers,
		"max_paths", o.MaxPaths,
	)

	return a, nil
}

// NodeCount returns N.
func (a *Analyzer) NodeCount() int {
	return a.am.Size()
}

// EdgeCount returns the number of loaded edges, duplicates included.
func (a *Analyzer) EdgeCount() int {
	return len(a.graph.Edges)
}

// observe logs and records one finished operation.
func (a *Analyzer) observe(metric string, start time.Time, err error, attrs ...any) {
	took := time.Since(start)
	a.opts.Recorder.Observe(metric, took, err)
	attrs = append(attrs, "metric", metric, "took", took)
	if err != nil {
		a.opts.Logger.Warn("analysis failed", append(attrs, "error", err)...)
		return
	}
	a.opts.Logger.Info("analysis done", attrs...)
}

// Degree ranks every node by its number of distinct neighbors.
func (a *Analyzer) Degree(ctx context.Context) (rk *Ranking, err error) {
	start := time.Now()
	defer func() { a.observe(MetricDegree, start, err) }()

	rk = &Ranking{Metric: MetricDegree, Scores: make([]Score, 0, a.am.Size())}
	for node := 0; node < a.am.Size(); node++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		d, derr := centrality.Degree(a.am, node)
		if derr != nil {
			return nil, derr
		}
		rk.Scores = append(rk.Scores, Score{Node: a.graph.Labels[node], Value: float64(d)})
	}
	rk.sort()

	return rk, nil
}

// Closeness ranks every node by closeness centrality. Isolated nodes are
// reported in Ranking.Undefined instead of receiving a score.
func (a *Analyzer) Closeness(ctx context.Context) (rk *Ranking, err error) {
	start := time.Now()
	defer func() { a.observe(MetricCloseness, start, err) }()

	n := a.am.Size()
	values := make([]float64, n)
	defined := make([]bool, n)
	err = a.forEachNode(ctx, func(node int) error {
		c, cerr := centrality.ClosenessOf(a.am, node, dijkstra.WithStrategy(a.opts.Strategy))
		switch {
		case errors.Is(cerr, centrality.ErrUndefinedMetric):
			return nil
		case cerr != nil:
			return cerr
		}
		// each node owns its slot; no lock needed
		values[node], defined[node] = c, true
		return nil
	})
	if err != nil {
		return nil, err
	}

	rk = &Ranking{Metric: MetricCloseness, Scores: make([]Score, 0, n)}
	for node := 0; node < n; node++ {
		if !defined[node] {
			rk.Undefined = append(rk.Undefined, a.graph.Labels[node])
			continue
		}
		rk.Scores = append(rk.Scores, Score{Node: a.graph.Labels[node], Value: values[node]})
	}
	a.opts.Recorder.Undefined(len(rk.Undefined))
	rk.sort()

	return rk, nil
}

// Betweenness ranks every node v by the sum over ordered pairs (s, t),
// s != t, v ∉ {s, t}, of the fraction of s→t geodesics through v.
//
// Sources are processed in parallel. Each worker accumulates into a private
// vector; only the merge into the shared total takes the lock.
func (a *Analyzer) Betweenness(ctx context.Context) (rk *Ranking, err error) {
	start := time.Now()
	defer func() { a.observe(MetricBetweenness, start, err) }()

	n := a.am.Size()
	total := make([]float64, n)
	var mu sync.Mutex

	err = a.forEachNode(ctx, func(s int) error {
		local, lerr := a.sourceDependencies(ctx, s)
		if lerr != nil {
			return lerr
		}
		mu.Lock()
		for v, x := range local {
			total[v] += x
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	rk = &Ranking{Metric: MetricBetweenness, Scores: make([]Score, n)}
	for v := 0; v < n; v++ {
		rk.Scores[v] = Score{Node: a.graph.Labels[v], Value: total[v]}
	}
	rk.sort()

	return rk, nil
}

// sourceDependencies returns, for every v, the sum over targets t of the
// betweenness fraction of (s, t, v). Each geodesic list is enumerated once
// and every interior node of every path is credited 1/|paths|, which equals
// centrality.Betweenness summed over v because geodesics never repeat a node.
func (a *Analyzer) sourceDependencies(ctx context.Context, s int) ([]float64, error) {
	n := a.am.Size()
	local := make([]float64, n)
	for t := 0; t < n; t++ {
		if t == s {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pl, err := paths.AllShortest(a.am, s, t, paths.WithMaxPaths(a.opts.MaxPaths))
		if err != nil {
			return nil, err
		}
		a.opts.Recorder.Paths(pl.Count(), pl.Truncated)
		if pl.Empty() {
			continue
		}
		share := 1 / float64(pl.Count())
		for _, p := range pl.Paths {
			for _, v := range p[1 : len(p)-1] {
				local[v] += share
			}
		}
	}

	return local, nil
}

// forEachNode runs fn for every node index with at most Workers goroutines.
// The first error cancels the remaining work.
func (a *Analyzer) forEachNode(ctx context.Context, fn func(node int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Workers)
	for node := 0; node < a.am.Size(); node++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(node)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// index translates a raw label into a dense index.
func (a *Analyzer) index(label int64) (int, error) {
	return a.graph.Lookup(label)
}

// labels translates a dense index path into raw labels.
func (a *Analyzer) labels(idx []int) []int64 {
	out := make([]int64, len(idx))
	for i, v := range idx {
		out[i] = a.graph.Labels[v]
	}

	return out
}

// Triple computes the betweenness fraction of via for the pair (start, end).
func (a *Analyzer) Triple(start, end, via int64) (rep *TripleReport, err error) {
	t0 := time.Now()
	defer func() { a.observe(MetricBetweenness, t0, err, "start", start, "end", end, "via", via) }()

	var s, e, v int
	if s, err = a.index(start); err != nil {
		return nil, err
	}
	if e, err = a.index(end); err != nil {
		return nil, err
	}
	if v, err = a.index(via); err != nil {
		return nil, err
	}
	b, err := centrality.Betweenness(a.am, s, e, v, paths.WithMaxPaths(a.opts.MaxPaths))
	if err != nil {
		return nil, err
	}

	return &TripleReport{Start: start, End: end, Via: via, Value: b}, nil
}

// Paths enumerates every geodesic between two labelled nodes.
func (a *Analyzer) Paths(start, end int64) (rep *PathReport, err error) {
	t0 := time.Now()
	defer func() { a.observe(MetricPaths, t0, err, "start", start, "end", end) }()

	var s, e int
	if s, err = a.index(start); err != nil {
		return nil, err
	}
	if e, err = a.index(end); err != nil {
		return nil, err
	}
	pl, err := paths.AllShortest(a.am, s, e, paths.WithMaxPaths(a.opts.MaxPaths))
	if err != nil {
		return nil, err
	}
	a.opts.Recorder.Paths(pl.Count(), pl.Truncated)

	rep = &PathReport{Start: start, End: end, Length: pl.Length, Truncated: pl.Truncated, Paths: make([][]int64, 0, pl.Count())}
	for _, p := range pl.Paths {
		rep.Paths = append(rep.Paths, a.labels(p))
	}

	return rep, nil
}

// Distances reports hop distances from source and, when defined, its
// closeness.
func (a *Analyzer) Distances(source int64) (rep *DistanceReport, err error) {
	t0 := time.Now()
	defer func() { a.observe(MetricDistances, t0, err, "source", source) }()

	s, err := a.index(source)
	if err != nil {
		return nil, err
	}
	res, err := dijkstra.Dijkstra(a.am, s, dijkstra.WithStrategy(a.opts.Strategy))
	if err != nil {
		return nil, err
	}

	rep = &DistanceReport{Source: source, Distances: make([]NodeDistance, 0, len(res.Dist))}
	for v, d := range res.Dist {
		if d == dijkstra.Unreachable {
			rep.Unreachable = append(rep.Unreachable, a.graph.Labels[v])
			continue
		}
		rep.Distances = append(rep.Distances, NodeDistance{Node: a.graph.Labels[v], Hops: d})
	}
	if c, cerr := centrality.Closeness(res.Dist); cerr == nil {
		rep.Closeness = &c
	}

	return rep, nil
}

// Search runs the reachability search for target from the configured root.
func (a *Analyzer) Search(target int64) (*SearchReport, error) {
	return a.SearchFrom(a.opts.SearchRoot, target)
}

// SearchFrom runs the reachability search for target from root, recording
// the visit order.
func (a *Analyzer) SearchFrom(root, target int64) (rep *SearchReport, err error) {
	t0 := time.Now()
	defer func() { a.observe(MetricSearch, t0, err, "root", root, "target", target) }()

	var r, tg int
	if r, err = a.index(root); err != nil {
		return nil, fmt.Errorf("search root: %w", err)
	}
	if tg, err = a.index(target); err != nil {
		return nil, fmt.Errorf("search target: %w", err)
	}

	rep = &SearchReport{Root: root, Target: target, Visited: []int64{}}
	rep.Found, err = bfs.Search(a.am, tg,
		bfs.WithRoot(r),
		bfs.WithOnVisit(func(node, _ int) error {
			rep.Visited = append(rep.Visited, a.graph.Labels[node])
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return rep, nil
}
