// SPDX-License-Identifier: MIT

package matrix

// defaultReserve is the initial capacity for neighbor slices
const defaultReserve = 8

// Edge is an unordered pair of dense node indices. U == V is a self-loop.
type Edge struct {
	U int
	V int
}

// AdjacencyMatrix is a dense N×N table of edge multiplicities stored
// row-major. The zero value is an empty (N == 0) matrix.
type AdjacencyMatrix struct {
	n    int   // dimension (node-index space size)
	data []int // n*n multiplicities, data[u*n+v]
}

// Build CONSTRUCTS the multiplicity matrix for edges over n dense indices.
// Implementation:
//   - Stage 1: allocate n*n zeroed cells (n <= 0 yields an empty matrix).
//   - Stage 2: for every edge increment [u][v]; mirror into [v][u] unless u == v.
//
// Behavior highlights:
//   - Duplicate edges accumulate multiplicity.
//   - Self-loops are counted once, never mirrored.
//   - Edges are not validated: densification is the loader's contract, and an
//     index outside [0, n) fails loudly through the runtime bounds check.
//
// Complexity:
//   - Time O(n² + E), Space O(n²).
func Build(edges []Edge, n int) *AdjacencyMatrix {
	if n <= 0 {
		return &AdjacencyMatrix{}
	}

	am := &AdjacencyMatrix{n: n, data: make([]int, n*n)}
	var e Edge
	for _, e = range edges {
		am.data[am.cell(e.U, e.V)]++
		if e.U != e.V {
			am.data[am.cell(e.V, e.U)]++
		}
	}

	return am
}

// cell maps (u, v) to the flat offset. u must be in range.
func (am *AdjacencyMatrix) cell(u, v int) int {
	if u < 0 || u >= am.n || v < 0 || v >= am.n {
		panic(outOfRange("matrix.Build", max(u, v), am.n))
	}

	return u*am.n + v
}

// Size returns N, the dimension of the matrix. A nil receiver has size 0.
func (am *AdjacencyMatrix) Size() int {
	if am == nil {
		return 0
	}

	return am.n
}

// CheckIndex returns ErrIndexOutOfRange unless 0 <= i < N.
func (am *AdjacencyMatrix) CheckIndex(i int) error {
	if am == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= am.n {
		return outOfRange("matrix.CheckIndex", i, am.n)
	}

	return nil
}

// At returns the multiplicity of the (u, v) cell.
func (am *AdjacencyMatrix) At(u, v int) (int, error) {
	if am == nil {
		return 0, ErrNilMatrix
	}
	if u < 0 || u >= am.n {
		return 0, outOfRange("matrix.At", u, am.n)
	}
	if v < 0 || v >= am.n {
		return 0, outOfRange("matrix.At", v, am.n)
	}

	return am.data[u*am.n+v], nil
}

// Row returns a borrowed view of row u. Callers must not modify it.
func (am *AdjacencyMatrix) Row(u int) ([]int, error) {
	if am == nil {
		return nil, ErrNilMatrix
	}
	if u < 0 || u >= am.n {
		return nil, outOfRange("matrix.Row", u, am.n)
	}

	return am.data[u*am.n : (u+1)*am.n : (u+1)*am.n], nil
}

// Neighbors LISTS the indices v with a nonzero [u][v] multiplicity, ascending.
// A self-loop makes u appear in its own neighbor list.
//
// Complexity:
//   - Time O(N), Space O(k) for k neighbors.
func (am *AdjacencyMatrix) Neighbors(u int) ([]int, error) {
	row, err := am.Row(u)
	if err != nil {
		return nil, err
	}

	neighbors := make([]int, 0, defaultReserve)
	var (
		v    int // column index
		mult int // multiplicity
	)
	for v, mult = range row {
		if mult != 0 {
			neighbors = append(neighbors, v)
		}
	}

	return neighbors, nil
}
