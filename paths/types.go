// Package paths provides options, error definitions and the result type for
// enumerating every shortest path between two nodes.
package paths

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("paths: invalid option supplied")

// Option configures enumeration via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// AllShortest is invoked.
type Option func(*Options)

// Options holds the parameters of a single enumeration.
type Options struct {
	// MaxPaths, if > 0, stops enumeration after that many paths and marks
	// the result Truncated. 0 means unlimited.
	MaxPaths int

	// OnPath, if set, is called for every accepted path in result order.
	// The slice must not be retained or modified.
	OnPath func(path []int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns unlimited enumeration without hooks.
func DefaultOptions() Options {
	return Options{
		MaxPaths: 0,
		OnPath:   func([]int) {},
	}
}

// WithMaxPaths caps the number of enumerated paths.
//
//	k > 0:  stop after k paths, set PathList.Truncated if more existed
//	k == 0: explicit no limit
//	k < 0:  invalid option → ErrOptionViolation
func WithMaxPaths(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxPaths = k
	}
}

// WithOnPath registers a callback invoked for each accepted path.
func WithOnPath(fn func(path []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}

// PathList is the set of minimum-length walks from Start to End.
//
//   - Paths: node sequences in lexicographic order, each of Length+1 nodes,
//     starting with Start, ending with End, without repeated nodes.
//   - Length: the shortest distance in edges; -1 when End is unreachable.
//   - Truncated: true when MaxPaths stopped enumeration early.
type PathList struct {
	Start     int
	End       int
	Length    int
	Paths     [][]int
	Truncated bool
}

// Count returns the number of enumerated paths.
func (pl *PathList) Count() int {
	return len(pl.Paths)
}

// Empty reports whether no path was found (End unreachable).
func (pl *PathList) Empty() bool {
	return len(pl.Paths) == 0
}
