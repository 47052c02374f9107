// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// builder.go - entry points that turn topology constructors into edge lists,
// adjacency matrices or loader-compatible edge-list text.
//
// Contract:
//   - Constructors append edges over dense indices [0, n) and report n.
//   - Composition order is the call order; output is deterministic for a
//     fixed seed.
//   - Constructors return sentinel errors and never panic.

// Package builder generates canonical and random undirected topologies as
// dense edge lists. It backs the property tests and benchmarks of the
// centrality packages and the "generate" CLI command.
package builder

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/katalvlaran/socialgraph/matrix"
)

// Sentinel errors.
var (
	// ErrTooFewVertices indicates a size parameter below the topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrConstructFailed indicates a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Constructor emits the edges of one topology. It returns the vertex count
// it needs; indices it uses must lie in [0, n).
type Constructor func(cfg *builderConfig) (edges []matrix.Edge, n int, err error)

// Topology is the output of Build: an edge list over N dense indices.
type Topology struct {
	Edges []matrix.Edge
	N     int
}

// Matrix builds the adjacency matrix of t.
func (t *Topology) Matrix() *matrix.AdjacencyMatrix {
	return matrix.Build(t.Edges, t.N)
}

// WriteEdgeList writes t as "u v" lines, offsetting every index by base so
// that generated files can exercise label densification.
func (t *Topology) WriteEdgeList(w io.Writer, base int64) error {
	for _, e := range t.Edges {
		if _, err := fmt.Fprintf(w, "%d %d\n", base+int64(e.U), base+int64(e.V)); err != nil {
			return err
		}
	}

	return nil
}

// Build resolves options and applies each constructor in order. Disjoint
// composition: constructor k's indices are shifted past those of 0..k-1.
func Build(opts []Option, cons ...Constructor) (*Topology, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	t := &Topology{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		edges, n, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		for _, e := range edges {
			t.Edges = append(t.Edges, matrix.Edge{U: e.U + t.N, V: e.V + t.N})
		}
		t.N += n
	}

	return t, nil
}

// builderConfig is the resolved option set shared by constructors.
type builderConfig struct {
	rng *rand.Rand
	err error
}

// Option customizes Build.
type Option func(*builderConfig)

// WithSeed seeds the RNG of stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. A nil RNG is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(c *builderConfig) {
		if r == nil {
			c.err = fmt.Errorf("builder: WithRand(nil): %w", ErrConstructFailed)
			return
		}
		c.rng = r
	}
}

// defaultSeed keeps unseeded stochastic builds reproducible.
const defaultSeed = 1

func newBuilderConfig(opts ...Option) *builderConfig {
	cfg := &builderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}
