// SPDX-License-Identifier: MIT

// Package loader reads whitespace-separated edge lists ("u v" per line) and
// densifies the raw node identifiers into the [0, N) index space required by
// package matrix.
//
// Raw identifiers are sorted ascending before indices are assigned, so an
// input whose ids are already 0..N-1 keeps index == label. Blank lines and
// lines starting with '#' or '%' are skipped. Files ending in ".gz" are
// decompressed transparently.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/socialgraph/matrix"
)

// maxLineBytes bounds a single edge-list line.
const maxLineBytes = 1 << 20

// Sentinel errors for edge-list loading.
var (
	// ErrMalformedLine is returned for a line that is not two integer ids.
	ErrMalformedLine = errors.New("loader: malformed edge line")

	// ErrUnknownLabel is returned by Lookup for an id absent from the input.
	ErrUnknownLabel = errors.New("loader: unknown node label")
)

// Graph is the densified edge list handed to matrix.Build.
//
//   - Edges: pairs of dense indices in input order (duplicates and self-loops kept).
//   - NodeCount: N, the number of distinct raw ids.
//   - Labels: Labels[i] is the raw id of dense index i, ascending.
type Graph struct {
	Edges     []matrix.Edge
	NodeCount int
	Labels    []int64

	index map[int64]int
}

// Matrix builds the adjacency matrix for g.
func (g *Graph) Matrix() *matrix.AdjacencyMatrix {
	return matrix.Build(g.Edges, g.NodeCount)
}

// Lookup maps a raw id to its dense index.
func (g *Graph) Lookup(label int64) (int, error) {
	idx, ok := g.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownLabel, label)
	}

	return idx, nil
}

// Label maps a dense index back to its raw id.
func (g *Graph) Label(idx int) (int64, error) {
	if idx < 0 || idx >= len(g.Labels) {
		return 0, fmt.Errorf("loader: label of index %d: %w", idx, matrix.ErrIndexOutOfRange)
	}

	return g.Labels[idx], nil
}

// LoadFile opens path (gzip-decoded when it ends in ".gz") and calls Load.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("loader: gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	g, err := Load(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Load parses an edge list from r and densifies its ids.
//
// Errors: ErrMalformedLine (with the 1-based line number) or a read error.
func Load(r io.Reader) (*Graph, error) {
	type rawEdge struct{ u, v int64 }

	var (
		raw  []rawEdge
		seen = make(map[int64]struct{})
		line int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}
		u, v, err := parsePair(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		raw = append(raw, rawEdge{u, v})
		seen[u] = struct{}{}
		seen[v] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	labels := make([]int64, 0, len(seen))
	for id := range seen {
		labels = append(labels, id)
	}
	slices.Sort(labels)

	g := &Graph{
		Edges:     make([]matrix.Edge, len(raw)),
		NodeCount: len(labels),
		Labels:    labels,
		index:     make(map[int64]int, len(labels)),
	}
	for i, id := range labels {
		g.index[id] = i
	}
	for i, e := range raw {
		g.Edges[i] = matrix.Edge{U: g.index[e.u], V: g.index[e.v]}
	}

	return g, nil
}

// parsePair splits "u v" into two int64 ids.
func parsePair(text string) (int64, int64, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want 2 fields, got %d", ErrMalformedLine, len(fields))
	}
	u, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrMalformedLine, fields[0], err)
	}
	v, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrMalformedLine, fields[1], err)
	}

	return u, v, nil
}
