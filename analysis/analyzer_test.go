package analysis_test

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/dijkstra"
	"github.com/katalvlaran/socialgraph/loader"
	"github.com/katalvlaran/socialgraph/metrics"
)

// squareWithLoop is the square 10-20-30-40 plus an isolated node 50 that
// only carries a self-loop.
const squareWithLoop = `# square
10 20
20 30
30 40
40 10
50 50
`

func newAnalyzer(t *testing.T, input string, opts ...analysis.Option) *analysis.Analyzer {
	t.Helper()
	g, err := loader.Load(strings.NewReader(input))
	require.NoError(t, err)
	a, err := analysis.New(g, opts...)
	require.NoError(t, err)

	return a
}

func scoreMap(rk *analysis.Ranking) map[int64]float64 {
	m := make(map[int64]float64, len(rk.Scores))
	for _, s := range rk.Scores {
		m[s.Node] = s.Value
	}

	return m
}

// TestNew_Validation rejects a nil graph and a negative cap.
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := analysis.New(nil)
	require.ErrorIs(t, err, analysis.ErrNilGraph)

	g, err := loader.Load(strings.NewReader("1 2\n"))
	require.NoError(t, err)
	_, err = analysis.New(g, analysis.WithMaxPaths(-1))
	require.Error(t, err)

	a, err := analysis.New(g)
	require.NoError(t, err)
	assert.Equal(t, 2, a.NodeCount())
	assert.Equal(t, 1, a.EdgeCount())
}

// TestDegree_Ranking sorts ascending with label tie-break.
func TestDegree_Ranking(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, squareWithLoop)
	rk, err := a.Degree(context.Background())
	require.NoError(t, err)

	assert.Equal(t, analysis.MetricDegree, rk.Metric)
	assert.Equal(t, []analysis.Score{
		{Node: 50, Value: 1},
		{Node: 10, Value: 2},
		{Node: 20, Value: 2},
		{Node: 30, Value: 2},
		{Node: 40, Value: 2},
	}, rk.Scores)
	assert.Empty(t, rk.Undefined)
}

// TestCloseness_UndefinedIsolated reports the isolated node separately.
func TestCloseness_UndefinedIsolated(t *testing.T) {
	t.Parallel()

	for _, s := range []dijkstra.Strategy{dijkstra.LinearScan, dijkstra.IndexedHeap} {
		a := newAnalyzer(t, squareWithLoop, analysis.WithStrategy(s), analysis.WithWorkers(2))
		rk, err := a.Closeness(context.Background())
		require.NoError(t, err, s.String())

		assert.Equal(t, []int64{50}, rk.Undefined, s.String())
		require.Len(t, rk.Scores, 4, s.String())
		for _, sc := range rk.Scores {
			assert.InDelta(t, 0.5, sc.Value, 1e-12, "node %d", sc.Node)
		}
	}
}

// TestBetweenness_Square gives each square node one unit from its opposite pair.
func TestBetweenness_Square(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, squareWithLoop)
	rk, err := a.Betweenness(context.Background())
	require.NoError(t, err)

	got := scoreMap(rk)
	assert.InDelta(t, 0.0, got[50], 1e-12)
	for _, n := range []int64{10, 20, 30, 40} {
		assert.InDelta(t, 1.0, got[n], 1e-12, "node %d", n)
	}
	assert.Equal(t, int64(50), rk.Scores[0].Node)
}

// TestBetweenness_MatchesTripleSum checks the parallel aggregate against the
// sum of single-triple fractions over every ordered pair.
func TestBetweenness_MatchesTripleSum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		// labels with gaps exercise densification
		fmt.Fprintf(&sb, "%d %d\n", 3*rng.Intn(14), 3*rng.Intn(14))
	}
	g, err := loader.Load(strings.NewReader(sb.String()))
	require.NoError(t, err)

	a, err := analysis.New(g, analysis.WithWorkers(4))
	require.NoError(t, err)
	rk, err := a.Betweenness(context.Background())
	require.NoError(t, err)
	got := scoreMap(rk)

	am := g.Matrix()
	n := am.Size()
	for v := 0; v < n; v++ {
		want := 0.0
		for s := 0; s < n; s++ {
			for e := 0; e < n; e++ {
				if s == e {
					continue
				}
				b, err := centrality.Betweenness(am, s, e, v)
				require.NoError(t, err)
				want += b
			}
		}
		assert.InDelta(t, want, got[g.Labels[v]], 1e-9, "node %d", g.Labels[v])
	}
}

// TestBetweenness_Canceled stops on a canceled context.
func TestBetweenness_Canceled(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, squareWithLoop)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Betweenness(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = a.Degree(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// TestRankings_Fresh returns equal but independent values on repeat calls.
func TestRankings_Fresh(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, squareWithLoop)
	first, err := a.Betweenness(context.Background())
	require.NoError(t, err)
	second, err := a.Betweenness(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	first.Scores[0].Value = 99
	assert.NotEqual(t, first.Scores[0].Value, second.Scores[0].Value)
}

// TestTriple covers interior, endpoint and unknown labels.
func TestTriple(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, squareWithLoop)

	rep, err := a.Triple(10, 30, 20)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rep.Value, 1e-12)

	rep, err = a.Triple(10, 30, 10)
	require.NoError(t, err)
	assert.Zero(t, rep.Value)

	rep, err = a.Triple(10, 50, 20)
	require.NoError(t, err)
	assert.Zero(t, rep.Value, "disconnected pair")

	_, err = a.Triple(10, 30, 999)
	require.ErrorIs(t, err, loader.ErrUnknownLabel)
}

// TestPaths translates geodesics back to labels.
func TestPaths(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, squareWithLoop)

	rep, err := a.Paths(10, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Length)
	assert.Equal(t, [][]int64{{10, 20, 30}, {10, 40, 30}}, rep.Paths)
	assert.False(t, rep.Truncated)

	rep, err = a.Paths(10, 50)
	require.NoError(t, err)
	assert.Equal(t, -1, rep.Length)
	assert.Empty(t, rep.Paths)

	_, err = a.Paths(999, 10)
	require.ErrorIs(t, err, loader.ErrUnknownLabel)
}

// TestPaths_Truncated honors the per-pair cap.
func TestPaths_Truncated(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, squareWithLoop, analysis.WithMaxPaths(1))
	rep, err := a.Paths(10, 30)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{10, 20, 30}}, rep.Paths)
	assert.True(t, rep.Truncated)
}

// TestDistances lists reachable hops, unreachable labels and closeness.
func TestDistances(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, squareWithLoop)

	rep, err := a.Distances(10)
	require.NoError(t, err)
	assert.Equal(t, []analysis.NodeDistance{
		{Node: 10, Hops: 0},
		{Node: 20, Hops: 1},
		{Node: 30, Hops: 2},
		{Node: 40, Hops: 1},
	}, rep.Distances)
	assert.Equal(t, []int64{50}, rep.Unreachable)
	require.NotNil(t, rep.Closeness)
	assert.InDelta(t, 0.5, *rep.Closeness, 1e-12)

	rep, err = a.Distances(50)
	require.NoError(t, err)
	assert.Nil(t, rep.Closeness)
	assert.Equal(t, []int64{10, 20, 30, 40}, rep.Unreachable)
}

// TestSearch records the LIFO visit order and the default root.
func TestSearch(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, squareWithLoop)

	rep, err := a.SearchFrom(10, 30)
	require.NoError(t, err)
	assert.True(t, rep.Found)
	assert.Equal(t, []int64{10, 40, 30}, rep.Visited)

	rep, err = a.SearchFrom(10, 50)
	require.NoError(t, err)
	assert.False(t, rep.Found)
	assert.Equal(t, []int64{10, 40, 30, 20}, rep.Visited)

	// the default root 107 is absent from this graph
	_, err = a.Search(30)
	require.ErrorIs(t, err, loader.ErrUnknownLabel)

	b := newAnalyzer(t, squareWithLoop, analysis.WithSearchRoot(40))
	rep, err = b.Search(20)
	require.NoError(t, err)
	assert.Equal(t, int64(40), rep.Root)
	assert.True(t, rep.Found)
}

// TestRecorder counts runs and undefined closeness values.
func TestRecorder(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	a := newAnalyzer(t, squareWithLoop, analysis.WithRecorder(metrics.New(reg)))

	_, err := a.Closeness(context.Background())
	require.NoError(t, err)
	_, err = a.Paths(10, 999)
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				values[mf.GetName()] += c.GetValue()
			}
		}
	}
	assert.Equal(t, 1.0, values["socialgraph_closeness_undefined_total"])
	assert.Equal(t, 2.0, values["socialgraph_analysis_runs_total"])
}
