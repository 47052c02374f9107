// Package bfs provides the fixed-root reachability search used by the
// "search for a node" operation.
//
// What
//
//   - Seeds a frontier with the root (DefaultRoot unless WithRoot is given).
//   - Pops the most recently pushed node (LIFO), so exploration is
//     depth-first-like; the visit order is part of the contract and is
//     observable through WithOnVisit.
//   - Returns true the first time the popped node equals the target.
//   - Marks nodes visited when they are pushed, so no node is pushed twice.
//
// Why a fixed root
//
//	The search answers "is this node in the root's component" for a
//	well-known root rather than "is b reachable from a". The root is a
//	parameter with DefaultRoot as the default so callers can ask the general
//	question as well.
//
// Complexity (N = nodes)
//
//   - Time:   O(N²)  (one dense row scan per popped node)
//   - Memory: O(N)   (stack and visited flags)
//
// Usage
//
//	found, err := bfs.Search(am, 42)                 // from DefaultRoot
//	found, err := bfs.Search(am, 42, bfs.WithRoot(0)) // from node 0
//	found, err := bfs.Search(am, 42,
//	    bfs.WithOnVisit(func(node, step int) error {
//	        fmt.Println(step, node)
//	        return nil
//	    }),
//	)
//
// Errors
//
//   - matrix.ErrNilMatrix        if the matrix pointer is nil.
//   - matrix.ErrIndexOutOfRange  if root or target is outside [0, N).
//   - ErrOptionViolation         if an invalid Option is supplied.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
