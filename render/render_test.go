package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/render"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := render.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, render.FormatTable, f)

	f, err = render.ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, render.FormatJSON, f)

	_, err = render.ParseFormat("xml")
	require.ErrorIs(t, err, render.ErrBadFormat)
}

func TestPrecision(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, render.Precision(analysis.MetricCloseness))
	assert.Equal(t, 5, render.Precision(analysis.MetricBetweenness))
	assert.Equal(t, 0, render.Precision(analysis.MetricDegree))
}

// TestRanking_Table rounds for display and lists undefined nodes.
func TestRanking_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rk := &analysis.Ranking{
		Metric:    analysis.MetricCloseness,
		Scores:    []analysis.Score{{Node: 7, Value: 0.123456}, {Node: 3, Value: 0.5}},
		Undefined: []int64{9},
	}
	require.NoError(t, render.New(&buf, render.FormatTable).Ranking(rk))

	out := buf.String()
	assert.Contains(t, out, "0.123")
	assert.NotContains(t, out, "0.1234")
	assert.Contains(t, out, "0.500")
	assert.Contains(t, out, "CLOSENESS")
	assert.Contains(t, out, "undefined: 9")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("0.123")), bytes.Index(buf.Bytes(), []byte("0.500")))
}

// TestRanking_JSON keeps exact values.
func TestRanking_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rk := &analysis.Ranking{
		Metric: analysis.MetricBetweenness,
		Scores: []analysis.Score{{Node: 1, Value: 1.0 / 3}},
	}
	require.NoError(t, render.New(&buf, render.FormatJSON).Ranking(rk))

	var got analysis.Ranking
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *rk, got)
}

func TestPaths_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := render.New(&buf, "")
	require.NoError(t, r.Paths(&analysis.PathReport{
		Start: 1, End: 3, Length: 2,
		Paths:     [][]int64{{1, 2, 3}, {1, 4, 3}},
		Truncated: true,
	}))
	out := buf.String()
	assert.Contains(t, out, "1 → 2 → 3")
	assert.Contains(t, out, "1 → 4 → 3")
	assert.Contains(t, out, "truncated after 2 paths")

	buf.Reset()
	require.NoError(t, r.Paths(&analysis.PathReport{Start: 1, End: 9, Length: -1, Paths: [][]int64{}}))
	assert.Contains(t, buf.String(), "unreachable")
}

func TestDistances_Table(t *testing.T) {
	t.Parallel()

	c := 2.0 / 3
	var buf bytes.Buffer
	require.NoError(t, render.New(&buf, render.FormatTable).Distances(&analysis.DistanceReport{
		Source:      1,
		Distances:   []analysis.NodeDistance{{Node: 1, Hops: 0}, {Node: 2, Hops: 1}},
		Unreachable: []int64{5, 6},
		Closeness:   &c,
	}))
	out := buf.String()
	assert.Contains(t, out, "closeness: 0.667")
	assert.Contains(t, out, "unreachable: 5, 6")
}

// TestSearch hides the visit order unless tracing.
func TestSearch(t *testing.T) {
	t.Parallel()

	rep := &analysis.SearchReport{Root: 107, Target: 3, Found: true, Visited: []int64{107, 5, 3}}

	var buf bytes.Buffer
	require.NoError(t, render.New(&buf, render.FormatTable).Search(rep, false))
	assert.Contains(t, buf.String(), "found")
	assert.NotContains(t, buf.String(), "order:")

	buf.Reset()
	require.NoError(t, render.New(&buf, render.FormatTable).Search(rep, true))
	assert.Contains(t, buf.String(), "order: 107 5 3")

	buf.Reset()
	require.NoError(t, render.New(&buf, render.FormatJSON).Search(rep, false))
	var got analysis.SearchReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.True(t, got.Found)
	assert.Empty(t, got.Visited)
}

func TestTriple(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.New(&buf, render.FormatTable).Triple(&analysis.TripleReport{Start: 1, End: 3, Via: 2, Value: 0.5}))
	assert.Contains(t, buf.String(), "0.50000")
}

func TestError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.New(&buf, render.FormatJSON).Error(render.ErrBadFormat))
	assert.JSONEq(t, `{"error":"render: unknown output format"}`, buf.String())
}
