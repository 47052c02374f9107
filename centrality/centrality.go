// SPDX-License-Identifier: MIT

package centrality

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/socialgraph/dijkstra"
	"github.com/katalvlaran/socialgraph/matrix"
	"github.com/katalvlaran/socialgraph/paths"
)

// ErrUndefinedMetric is returned by Closeness when the source reaches no
// other node, so the distance sum is zero.
var ErrUndefinedMetric = errors.New("centrality: metric undefined (division by zero)")

// Degree RETURNS the number of columns m with a nonzero [node][m] cell.
// Parallel edges count once; a self-loop counts the node itself once.
//
// Complexity: O(N).
func Degree(am *matrix.AdjacencyMatrix, node int) (int, error) {
	row, err := am.Row(node)
	if err != nil {
		return 0, fmt.Errorf("centrality: degree: %w", err)
	}

	count := 0
	for _, mult := range row {
		if mult != 0 {
			count++
		}
	}

	return count, nil
}

// Closeness COMPUTES (reachable-1)/sum from a distance vector produced by
// dijkstra.Dijkstra, where reachable counts the finite positive distances and
// sum adds them up. The source's own zero distance is excluded by the
// positivity filter.
//
// Errors: ErrUndefinedMetric when no finite positive distance exists.
func Closeness(dist []int) (float64, error) {
	reachable, sum := 0, 0
	for _, d := range dist {
		if d == dijkstra.Unreachable || d == 0 {
			continue
		}
		reachable++
		sum += d
	}
	if sum == 0 {
		return 0, ErrUndefinedMetric
	}

	return float64(reachable-1) / float64(sum), nil
}

// ClosenessOf runs the engine from node and applies Closeness.
func ClosenessOf(am *matrix.AdjacencyMatrix, node int, opts ...dijkstra.Option) (float64, error) {
	res, err := dijkstra.Dijkstra(am, node, opts...)
	if err != nil {
		return 0, fmt.Errorf("centrality: closeness: %w", err)
	}
	c, err := Closeness(res.Dist)
	if err != nil {
		return 0, fmt.Errorf("node %d: %w", node, err)
	}

	return c, nil
}

// Betweenness RETURNS the fraction of geodesics start→end whose interior
// (endpoints excluded) contains via.
//
// Behavior:
//   - via == start or via == end: 0.
//   - start and end disconnected: 0, no error.
//   - Result is always in [0, 1].
//
// opts are forwarded to paths.AllShortest (e.g. paths.WithMaxPaths); with a
// truncated enumeration the fraction is taken over the enumerated subset.
//
// Errors: matrix.ErrIndexOutOfRange for any index outside [0, N).
func Betweenness(am *matrix.AdjacencyMatrix, start, end, via int, opts ...paths.Option) (float64, error) {
	if err := am.CheckIndex(via); err != nil {
		return 0, fmt.Errorf("centrality: betweenness via: %w", err)
	}
	if via == start || via == end {
		if err := am.CheckIndex(start); err != nil {
			return 0, fmt.Errorf("centrality: betweenness start: %w", err)
		}
		if err := am.CheckIndex(end); err != nil {
			return 0, fmt.Errorf("centrality: betweenness end: %w", err)
		}
		return 0, nil
	}

	pl, err := paths.AllShortest(am, start, end, opts...)
	if err != nil {
		return 0, fmt.Errorf("centrality: betweenness: %w", err)
	}

	return InteriorFraction(pl, via), nil
}

// InteriorFraction returns the share of pl's paths that pass through via
// strictly between their endpoints, or 0 for an empty list.
func InteriorFraction(pl *paths.PathList, via int) float64 {
	if pl == nil || pl.Empty() {
		return 0
	}

	hits := 0
	for _, p := range pl.Paths {
		if len(p) > 2 && slices.Contains(p[1:len(p)-1], via) {
			hits++
		}
	}

	return float64(hits) / float64(len(pl.Paths))
}
