package paths_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/socialgraph/dijkstra"
	"github.com/katalvlaran/socialgraph/matrix"
	"github.com/katalvlaran/socialgraph/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(n int, pairs ...[2]int) *matrix.AdjacencyMatrix {
	edges := make([]matrix.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, matrix.Edge{U: p[0], V: p[1]})
	}

	return matrix.Build(edges, n)
}

// naiveShortest is the unpruned frontier expansion: extend to any adjacent
// node not yet in the walk, accept at the target length, drop beyond it.
func naiveShortest(t *testing.T, am *matrix.AdjacencyMatrix, start, end int) [][]int {
	t.Helper()
	res, err := dijkstra.Dijkstra(am, start)
	require.NoError(t, err)
	if !res.Reachable(end) {
		return [][]int{}
	}
	want := res.Dist[end] + 1

	out := [][]int{}
	queue := [][]int{{start}}
	for len(queue) > 0 {
		walk := queue[0]
		queue = queue[1:]
		last := walk[len(walk)-1]
		if last == end && len(walk) == want {
			out = append(out, walk)
			continue
		}
		if len(walk) >= want {
			continue
		}
		nbrs, err := am.Neighbors(last)
		require.NoError(t, err)
		for _, next := range nbrs {
			if contains(walk, next) {
				continue
			}
			ext := append(append([]int{}, walk...), next)
			queue = append(queue, ext)
		}
	}

	return out
}

func contains(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}

	return false
}

// TestAllShortest_PathGraph is the 0–1–2 scenario.
func TestAllShortest_PathGraph(t *testing.T) {
	pl, err := paths.AllShortest(build(3, [2]int{0, 1}, [2]int{1, 2}), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, pl.Paths)
	assert.Equal(t, 2, pl.Length)
	assert.False(t, pl.Truncated)
}

// TestAllShortest_Square finds both geodesics of the square in order.
func TestAllShortest_Square(t *testing.T) {
	am := build(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	pl, err := paths.AllShortest(am, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 3, 2}}, pl.Paths)
	assert.Equal(t, 2, pl.Count())
}

// TestAllShortest_Unreachable returns an empty list, not an error.
func TestAllShortest_Unreachable(t *testing.T) {
	am := build(4, [2]int{0, 1}, [2]int{2, 3})
	pl, err := paths.AllShortest(am, 0, 3)
	require.NoError(t, err)
	assert.True(t, pl.Empty())
	assert.Equal(t, -1, pl.Length)
}

// TestAllShortest_SameNode returns the trivial path.
func TestAllShortest_SameNode(t *testing.T) {
	pl, err := paths.AllShortest(build(2, [2]int{0, 1}), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, pl.Paths)
	assert.Equal(t, 0, pl.Length)
}

// TestAllShortest_ParallelEdgesCountOnce ensures multiplicity does not
// duplicate paths.
func TestAllShortest_ParallelEdgesCountOnce(t *testing.T) {
	am := build(3, [2]int{0, 1}, [2]int{0, 1}, [2]int{1, 2}, [2]int{1, 1})
	pl, err := paths.AllShortest(am, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, pl.Paths)
}

// TestAllShortest_Errors covers index and option validation.
func TestAllShortest_Errors(t *testing.T) {
	am := build(2, [2]int{0, 1})

	_, err := paths.AllShortest(am, 2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = paths.AllShortest(am, 0, -1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = paths.AllShortest(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = paths.AllShortest(am, 0, 1, paths.WithMaxPaths(-3))
	require.ErrorIs(t, err, paths.ErrOptionViolation)
}

// TestAllShortest_MaxPaths verifies truncation on K2,3-like fans.
func TestAllShortest_MaxPaths(t *testing.T) {
	// 0 connects to 1,2,3 which all connect to 4: three geodesics 0→4.
	am := build(5,
		[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3},
		[2]int{1, 4}, [2]int{2, 4}, [2]int{3, 4},
	)

	pl, err := paths.AllShortest(am, 0, 4, paths.WithMaxPaths(2))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 4}, {0, 2, 4}}, pl.Paths)
	assert.True(t, pl.Truncated)

	pl, err = paths.AllShortest(am, 0, 4, paths.WithMaxPaths(3))
	require.NoError(t, err)
	assert.Len(t, pl.Paths, 3)
	assert.False(t, pl.Truncated)

	pl, err = paths.AllShortest(am, 0, 4, paths.WithMaxPaths(0))
	require.NoError(t, err)
	assert.Len(t, pl.Paths, 3)
}

// TestAllShortest_OnPath observes accepted paths through the hook.
func TestAllShortest_OnPath(t *testing.T) {
	am := build(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	var seen int
	_, err := paths.AllShortest(am, 1, 3, paths.WithOnPath(func(p []int) {
		seen++
		assert.Equal(t, 1, p[0])
		assert.Equal(t, 3, p[len(p)-1])
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
}

// TestAllShortest_MatchesNaiveExpansion checks output parity with the
// unpruned expansion and the structural properties of every path.
func TestAllShortest_MatchesNaiveExpansion(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		rng := rand.New(rand.NewSource(seed))
		n := 12
		pairs := make([][2]int, 0, 22)
		for i := 0; i < 22; i++ {
			pairs = append(pairs, [2]int{rng.Intn(n), rng.Intn(n)})
		}
		am := build(n, pairs...)

		for s := 0; s < n; s++ {
			res, err := dijkstra.Dijkstra(am, s)
			require.NoError(t, err)
			for e := 0; e < n; e++ {
				pl, err := paths.AllShortest(am, s, e)
				require.NoError(t, err)
				require.Equal(t, naiveShortest(t, am, s, e), pl.Paths, "seed %d (%d,%d)", seed, s, e)

				for _, p := range pl.Paths {
					require.Len(t, p, res.Dist[e]+1)
					require.Equal(t, s, p[0])
					require.Equal(t, e, p[len(p)-1])
					seen := map[int]bool{}
					for _, v := range p {
						require.False(t, seen[v], "repeated node %d in %v", v, p)
						seen[v] = true
					}
				}
			}
		}
	}
}
