// Package socialgraph analyzes undirected social graphs loaded from plain
// edge lists, such as the SNAP facebook_combined dataset.
//
// What it computes:
//
//	• Degree centrality: distinct neighbors per node
//	• Closeness centrality: (reachable-1) / Σ hop distances
//	• Betweenness centrality: share of geodesics through a node, summed over pairs
//	• All shortest paths between two nodes, in lexicographic order
//	• Single-source hop distances (unit-weight Dijkstra, linear or heap selection)
//	• Reachability from a fixed root (107 by default) with a LIFO frontier
//
// Layout:
//
//	matrix/      dense adjacency-multiplicity store over indices [0, N)
//	dijkstra/    unit-weight single-source distances and predecessors
//	paths/       exhaustive geodesic enumeration with an optional cap
//	centrality/  degree, closeness and the betweenness triple primitive
//	bfs/         fixed-root reachability search
//	loader/      edge-list parsing (.gz aware) and label densification
//	builder/     synthetic topologies for tests, benchmarks and demos
//	analysis/    whole-graph rankings, parallel betweenness, label queries
//	render/      lipgloss tables and JSON output
//	menu/        interactive huh menu
//	server/      gin JSON API with Prometheus metrics
//	config/      YAML, .env and SOCIALGRAPH_* configuration
//	metrics/     Prometheus instruments
//	cmd/socialgraph the CLI
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
// Both A→B→C and A→D→C are geodesics, so B and D each carry half of the
// A→C betweenness.
//
// Complexity: the store is O(N²) memory; every distance pass is O(N²);
// betweenness enumerates every geodesic of every ordered pair and can grow
// exponentially on dense graphs, which is what --max-paths bounds.
package socialgraph
