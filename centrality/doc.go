// SPDX-License-Identifier: MIT

// Package centrality computes per-node structural metrics on top of the
// shortest-path engine and the path enumerator.
//
// What
//
//   - Degree: number of distinct neighbors (nonzero multiplicity). A
//     self-loop makes the node its own neighbor, counted once.
//   - Closeness: (reachable-1) / Σ distance over nodes with finite, positive
//     distance from the source. An isolated source has no defined value and
//     yields ErrUndefinedMetric, never 0 or NaN.
//   - Betweenness: for one (start, end, via) triple, the fraction of
//     geodesics start→end whose interior contains via. Endpoints and
//     disconnected pairs score 0.
//
// The package deliberately exposes only the single-node and single-triple
// primitives. Summing betweenness over all triples is aggregation work and
// lives in package analysis.
package centrality
