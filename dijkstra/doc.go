// Package dijkstra computes single-source shortest hop distances over a
// matrix.AdjacencyMatrix.
//
// Overview:
//
//   - Every nonzero adjacency cell is one edge of cost 1; multiplicity does
//     not change the cost.
//   - The engine repeatedly finalizes the unvisited node with the smallest
//     tentative distance (lowest index among equals) and relaxes its
//     neighbors by +1.
//   - It stops after N rounds or as soon as no unvisited node is reachable.
//   - Distances equal plain BFS layering; the predecessor vector records one
//     shortest path per node (the first finalized node that reached it).
//
// Strategies:
//
//   - LinearScan (default): index-ordered scan for the minimum each round.
//   - IndexedHeap: container/heap keyed by (distance, index) with lazy
//     decrease-key. Output (Dist and Prev) is identical to LinearScan.
//
// Sentinels:
//
//   - Unreachable (math.MaxInt) in Result.Dist for disconnected nodes.
//   - NoPredecessor (-1) in Result.Prev for the source and disconnected nodes.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(am, 0, dijkstra.WithStrategy(dijkstra.IndexedHeap))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Dist[2], res.PathTo(2))
package dijkstra
