// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// topologies.go - deterministic canonical topologies.
//
// Index conventions:
//   - Path, Cycle, Complete: 0..n-1 in order.
//   - Star, Wheel: hub is index 0, rim is 1..n-1.
//   - Grid: row-major r*cols + c.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/matrix"
)

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minGridSide      = 1
)

func tooFew(method string, n, least int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, least, ErrTooFewVertices)
}

// Path builds P_n: 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(*builderConfig) ([]matrix.Edge, int, error) {
		if n < minPathNodes {
			return nil, 0, tooFew("Path", n, minPathNodes)
		}
		edges := make([]matrix.Edge, 0, n-1)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, matrix.Edge{U: i, V: i + 1})
		}

		return edges, n, nil
	}
}

// Cycle builds C_n: a path closed by (n-1, 0).
func Cycle(n int) Constructor {
	return func(*builderConfig) ([]matrix.Edge, int, error) {
		if n < minCycleNodes {
			return nil, 0, tooFew("Cycle", n, minCycleNodes)
		}
		edges := make([]matrix.Edge, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, matrix.Edge{U: i, V: (i + 1) % n})
		}

		return edges, n, nil
	}
}

// Star builds a hub 0 with leaves 1..n-1.
func Star(n int) Constructor {
	return func(*builderConfig) ([]matrix.Edge, int, error) {
		if n < minStarNodes {
			return nil, 0, tooFew("Star", n, minStarNodes)
		}
		edges := make([]matrix.Edge, 0, n-1)
		for leaf := 1; leaf < n; leaf++ {
			edges = append(edges, matrix.Edge{U: 0, V: leaf})
		}

		return edges, n, nil
	}
}

// Wheel builds a hub 0 joined to every node of the rim cycle 1..n-1.
func Wheel(n int) Constructor {
	return func(*builderConfig) ([]matrix.Edge, int, error) {
		if n < minWheelNodes {
			return nil, 0, tooFew("Wheel", n, minWheelNodes)
		}
		rim := n - 1
		edges := make([]matrix.Edge, 0, 2*rim)
		for i := 1; i <= rim; i++ {
			edges = append(edges, matrix.Edge{U: 0, V: i})
			edges = append(edges, matrix.Edge{U: i, V: i%rim + 1})
		}

		return edges, n, nil
	}
}

// Complete builds K_n.
func Complete(n int) Constructor {
	return func(*builderConfig) ([]matrix.Edge, int, error) {
		if n < minCompleteNodes {
			return nil, 0, tooFew("Complete", n, minCompleteNodes)
		}
		edges := make([]matrix.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, matrix.Edge{U: i, V: j})
			}
		}

		return edges, n, nil
	}
}

// Grid builds a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(*builderConfig) ([]matrix.Edge, int, error) {
		if rows < minGridSide || cols < minGridSide {
			return nil, 0, fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		id := func(r, c int) int { return r*cols + c }
		var edges []matrix.Edge
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					edges = append(edges, matrix.Edge{U: id(r, c), V: id(r, c+1)})
				}
				if r+1 < rows {
					edges = append(edges, matrix.Edge{U: id(r, c), V: id(r+1, c)})
				}
			}
		}

		return edges, rows * cols, nil
	}
}

// Isolated adds n nodes each carrying only a self-loop, so they exist in the
// index space without reaching anyone.
func Isolated(n int) Constructor {
	return func(*builderConfig) ([]matrix.Edge, int, error) {
		if n < 1 {
			return nil, 0, tooFew("Isolated", n, 1)
		}
		edges := make([]matrix.Edge, n)
		for i := range edges {
			edges[i] = matrix.Edge{U: i, V: i}
		}

		return edges, n, nil
	}
}

// RandomSparse samples G(n, p): each unordered pair {i, j}, i < j, is an edge
// independently with probability p. Trials run in (i asc, j asc) order.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg *builderConfig) ([]matrix.Edge, int, error) {
		if n < 1 {
			return nil, 0, tooFew("RandomSparse", n, 1)
		}
		if p < 0 || p > 1 {
			return nil, 0, fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
		}
		var edges []matrix.Edge
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					edges = append(edges, matrix.Edge{U: i, V: j})
				}
			}
		}

		return edges, n, nil
	}
}
