// Package bfs provides tunable options and error definitions
// for the fixed-root reachability search over a matrix.AdjacencyMatrix.
package bfs

import (
	"errors"
	"fmt"
)

// DefaultRoot is the node every search starts from unless WithRoot is given.
const DefaultRoot = 107

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures Search via functional arguments.
// If an Option is invalid (e.g. negative root), it is recorded internally
// and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Root is the node the frontier is seeded with.
	Root int

	// OnPush is called when a node is pushed onto the frontier.
	// step is the number of nodes popped so far.
	OnPush func(node, step int)

	// OnVisit is called for each popped node before it is compared to the
	// target. If it returns an error, the search aborts with that error.
	OnVisit func(node, step int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Root == DefaultRoot
//   - no-op hooks (OnPush, OnVisit)
func DefaultOptions() Options {
	return Options{
		Root:    DefaultRoot,
		OnPush:  func(int, int) {},
		OnVisit: func(int, int) error { return nil },
	}
}

// WithRoot overrides the fixed root.
//
//	r >= 0: search from r (validated against the matrix size by Search)
//	r < 0:  invalid option → ErrOptionViolation
func WithRoot(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: root cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.Root = r
	}
}

// WithOnPush registers a callback to run on push.
func WithOnPush(fn func(node, step int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(node, step int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
