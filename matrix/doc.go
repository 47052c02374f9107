// SPDX-License-Identifier: MIT

// Package matrix holds the dense adjacency representation every other
// socialgraph package reads from.
//
// What
//
//   - Edge is an unordered pair of dense node indices in [0, N).
//   - AdjacencyMatrix is an N×N table of edge multiplicities built once by
//     Build and read-only afterwards.
//   - A self-loop (u,u) increments only cell [u][u], exactly once.
//   - Parallel edges increment both mirrored cells once per occurrence.
//
// Why
//
//	Every shortest-path, enumeration and centrality routine performs row
//	scans in ascending column order; a flat row-major slice keeps those
//	scans cache friendly and makes the scan order (and therefore tie
//	breaking downstream) fully deterministic.
//
// Ownership
//
//	The caller that invokes Build owns the matrix. Algorithms receive a
//	*AdjacencyMatrix and only read from it, so one matrix can be shared by
//	any number of concurrent queries without locking.
//
// Complexity (N = nodes, E = edges)
//
//   - Build: O(N² + E) time, O(N²) memory.
//   - At, CheckIndex: O(1).
//   - Row: O(1) (borrowed view); Neighbors: O(N).
//
// Errors
//
//   - ErrIndexOutOfRange for any index outside [0, N).
//   - ErrNilMatrix for a nil receiver.
package matrix
