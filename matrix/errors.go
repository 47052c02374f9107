// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every package that indexes an AdjacencyMatrix.
// Callers match them with errors.Is; the returned error carries call-site
// context through %w wrapping.
var (
	// ErrIndexOutOfRange indicates a node index that is negative or >= N.
	// It is never clamped or ignored.
	ErrIndexOutOfRange = errors.New("matrix: node index out of range")

	// ErrNilMatrix indicates that a nil *AdjacencyMatrix was supplied.
	ErrNilMatrix = errors.New("matrix: adjacency matrix is nil")
)

// outOfRange wraps ErrIndexOutOfRange with the offending index and bound.
func outOfRange(op string, idx, n int) error {
	return fmt.Errorf("%s: index %d not in [0,%d): %w", op, idx, n, ErrIndexOutOfRange)
}
